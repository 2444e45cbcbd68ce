package vm

import (
	"fmt"
	"strconv"
	"strings"

	"thornvm/scanner"
)

// Precedence orders the binary/postfix operators the Pratt parser
// climbs through, low to high.
type Precedence int

const (
	PrecNone Precedence = iota
	PrecAssignment // =
	PrecOr         // or
	PrecAnd        // and
	PrecEquality   // == !=
	PrecComparison // < <= > >=
	PrecTerm       // + -
	PrecFactor     // * /
	PrecUnary      // ! -
	PrecCall       // . ()
	PrecPrimary
)

type parseFn func(p *parser, canAssign bool)

type parseRule struct {
	prefix     parseFn
	infix      parseFn
	precedence Precedence
}

const maxLocals = 256
const maxUpvalues = 256
const maxParameters = 255

type funcType int

const (
	funcTypeFunction funcType = iota
	funcTypeScript
)

type localVar struct {
	name       string
	depth      int
	isCaptured bool
}

type upvalueRef struct {
	index   byte
	isLocal bool
}

// loopContext tracks the jumps a break statement needs patched once the
// enclosing loop's end is known, where a continue statement should jump
// back to (the increment clause of a for loop, or the condition of a
// while loop), and the scope depth the loop itself started at, so a
// break or continue knows how many of the compiler's locals belong to
// the loop body and must be unwound before it jumps.
type loopContext struct {
	continueTarget int
	breakJumps     []int
	scopeDepth     int
}

// compilerState is one record per function being compiled. Records form
// a singly linked stack via enclosing so that closures can resolve
// identifiers in outer scopes while they're still being compiled.
type compilerState struct {
	enclosing *compilerState

	function *ObjFunction
	funcType funcType

	locals     [maxLocals]localVar
	localCount int
	upvalues   [maxUpvalues]upvalueRef
	scopeDepth int

	loops []*loopContext
}

type parser struct {
	vm       *VM
	scan     *scanner.Scanner
	current  scanner.Token
	previous scanner.Token

	hadError   bool
	panicMode  bool
	errors     []string

	compiler *compilerState
}

// compile realizes the single-pass Pratt compile: source goes straight
// to bytecode with no intermediate AST, resolving locals and upvalues
// as each identifier is encountered.
func compile(vm *VM, source string) (*ObjFunction, error) {
	p := &parser{vm: vm, scan: scanner.New(source)}
	p.initCompiler(funcTypeScript, "")

	p.advance()
	for !p.matchTok(scanner.EOF) {
		p.declaration()
	}

	fn := p.endCompiler()
	if p.hadError {
		return nil, fmt.Errorf("%s", strings.Join(p.errors, ""))
	}
	return fn, nil
}

func (p *parser) initCompiler(ft funcType, name string) {
	c := &compilerState{funcType: ft, enclosing: p.compiler}
	c.function = p.vm.newFunction()
	// Root the new function through the compiler chain before interning
	// its name, since that allocation may trigger a collection.
	p.compiler = c
	p.vm.activeCompiler = c
	if name != "" {
		c.function.Name = p.vm.internString(name)
	}
	// Slot 0 is reserved for the callee itself (an empty name means
	// user code can never shadow it by declaring a local named "").
	c.locals[0] = localVar{name: "", depth: 0}
	c.localCount = 1
}

func (p *parser) endCompiler() *ObjFunction {
	p.emitReturn()
	fn := p.compiler.function
	p.compiler = p.compiler.enclosing
	p.vm.activeCompiler = p.compiler
	return fn
}

func (p *parser) chunk() *Chunk { return p.compiler.function.Chunk }

// --- token stream plumbing -------------------------------------------------

func (p *parser) advance() {
	p.previous = p.current
	for {
		p.current = p.scan.Next()
		if p.current.Kind != scanner.Error {
			break
		}
		p.errorAtCurrent(p.current.Message)
	}
}

func (p *parser) check(kind scanner.Kind) bool { return p.current.Kind == kind }

func (p *parser) matchTok(kind scanner.Kind) bool {
	if !p.check(kind) {
		return false
	}
	p.advance()
	return true
}

func (p *parser) consume(kind scanner.Kind, message string) {
	if p.current.Kind == kind {
		p.advance()
		return
	}
	p.errorAtCurrent(message)
}

func (p *parser) errorAtCurrent(message string) { p.errorAt(p.current, message) }
func (p *parser) errorMsg(message string)       { p.errorAt(p.previous, message) }

func (p *parser) errorAt(tok scanner.Token, message string) {
	if p.panicMode {
		return
	}
	p.panicMode = true

	var where string
	switch tok.Kind {
	case scanner.EOF:
		where = " at end"
	case scanner.Error:
		where = ""
	default:
		where = fmt.Sprintf(" at '%s'", tok.Lexeme)
	}
	p.errors = append(p.errors, fmt.Sprintf("[line %d] Error%s: %s\n", tok.Line, where, message))
	p.hadError = true
}

// synchronize consumes tokens up to the next statement boundary after a
// panic-mode error: past a semicolon, or at the next keyword that can
// start a statement.
func (p *parser) synchronize() {
	p.panicMode = false
	for p.current.Kind != scanner.EOF {
		if p.previous.Kind == scanner.Semicolon {
			return
		}
		switch p.current.Kind {
		case scanner.Class, scanner.Fun, scanner.Var, scanner.For,
			scanner.If, scanner.While, scanner.Print, scanner.Return:
			return
		}
		p.advance()
	}
}

// --- emission ---------------------------------------------------------

func (p *parser) emitByte(b byte) { p.chunk().Write(b, p.previous.Line) }

func (p *parser) emitOp(op OpCode) { p.emitByte(byte(op)) }

func (p *parser) emitBytes(a, b byte) {
	p.emitByte(a)
	p.emitByte(b)
}

func (p *parser) emitOpByte(op OpCode, b byte) { p.emitBytes(byte(op), b) }

func (p *parser) emitReturn() {
	p.emitOp(OpNil)
	p.emitOp(OpReturn)
}

func (p *parser) makeConstant(v Value) byte {
	if len(p.chunk().Constants) >= maxConstants {
		p.errorMsg("Too many constants in one chunk.")
		return 0
	}
	return byte(p.chunk().AddConstant(v))
}

func (p *parser) emitConstant(v Value) {
	p.emitOpByte(OpConstant, p.makeConstant(v))
}

// emitJump writes the opcode plus two placeholder bytes and returns the
// index of the first, for patchJump to fill in later.
func (p *parser) emitJump(op OpCode) int {
	p.emitOp(op)
	p.emitByte(0xff)
	p.emitByte(0xff)
	return len(p.chunk().Code) - 2
}

func (p *parser) patchJump(offset int) {
	jump := len(p.chunk().Code) - offset - 2
	if jump > 65535 {
		p.errorMsg("Too much code to jump over.")
	}
	p.chunk().Code[offset] = byte(jump >> 8)
	p.chunk().Code[offset+1] = byte(jump & 0xff)
}

func (p *parser) emitLoop(loopStart int) {
	p.emitOp(OpLoop)
	offset := len(p.chunk().Code) - loopStart + 2
	if offset > 65535 {
		p.errorMsg("Loop body too large.")
	}
	p.emitByte(byte(offset >> 8))
	p.emitByte(byte(offset & 0xff))
}

// --- scopes, locals, upvalues ------------------------------------------

func (p *parser) beginScope() { p.compiler.scopeDepth++ }

func (p *parser) endScope() {
	p.compiler.scopeDepth--
	for p.compiler.localCount > 0 &&
		p.compiler.locals[p.compiler.localCount-1].depth > p.compiler.scopeDepth {
		if p.compiler.locals[p.compiler.localCount-1].isCaptured {
			p.emitOp(OpCloseUpvalue)
		} else {
			p.emitOp(OpPop)
		}
		p.compiler.localCount--
	}
}

func (p *parser) identifierConstant(name string) byte {
	return p.makeConstant(ObjVal(p.vm.internString(name)))
}

func identifiersEqual(a, b string) bool { return a == b }

// resolveLocal scans the current compiler's locals top-down. depth == -1
// marks "declared but not yet initialised"; reading it in its own
// initializer is an error.
func resolveLocal(c *compilerState, name string) int {
	for i := c.localCount - 1; i >= 0; i-- {
		local := &c.locals[i]
		if identifiersEqual(local.name, name) {
			if local.depth == -1 {
				return -2
			}
			return i
		}
	}
	return -1
}

// resolveUpvalue asks the enclosing compiler to resolve name; if found
// as a local there, marks it captured and adds/reuses an upvalue entry
// pointing at that local; if found as an upvalue further out, adds/
// reuses one pointing at that upvalue.
func resolveUpvalue(c *compilerState, name string) int {
	if c.enclosing == nil {
		return -1
	}
	if local := resolveLocal(c.enclosing, name); local >= 0 {
		c.enclosing.locals[local].isCaptured = true
		return addUpvalue(c, byte(local), true)
	} else if local == -2 {
		return -2
	}
	if up := resolveUpvalue(c.enclosing, name); up >= 0 {
		return addUpvalue(c, byte(up), false)
	} else if up == -2 {
		return -2
	}
	return -1
}

func addUpvalue(c *compilerState, index byte, isLocal bool) int {
	count := c.function.UpvalueCount
	for i := 0; i < count; i++ {
		up := &c.upvalues[i]
		if up.index == index && up.isLocal == isLocal {
			return i
		}
	}
	if count == maxUpvalues {
		return 0
	}
	c.upvalues[count] = upvalueRef{index: index, isLocal: isLocal}
	c.function.UpvalueCount++
	return count
}

func (p *parser) addLocal(name string) {
	if p.compiler.localCount == maxLocals {
		p.errorMsg("Too many local variables in function.")
		return
	}
	p.compiler.locals[p.compiler.localCount] = localVar{name: name, depth: -1}
	p.compiler.localCount++
}

func (p *parser) declareVariable() {
	if p.compiler.scopeDepth == 0 {
		return
	}
	name := p.previous.Lexeme
	for i := p.compiler.localCount - 1; i >= 0; i-- {
		local := &p.compiler.locals[i]
		if local.depth != -1 && local.depth < p.compiler.scopeDepth {
			break
		}
		if identifiersEqual(name, local.name) {
			p.errorMsg("Already a variable with this name in this scope.")
		}
	}
	p.addLocal(name)
}

func (p *parser) parseVariable(errorMessage string) byte {
	p.consume(scanner.Identifier, errorMessage)
	p.declareVariable()
	if p.compiler.scopeDepth > 0 {
		return 0
	}
	return p.identifierConstant(p.previous.Lexeme)
}

func (p *parser) markInitialized() {
	if p.compiler.scopeDepth == 0 {
		return
	}
	p.compiler.locals[p.compiler.localCount-1].depth = p.compiler.scopeDepth
}

func (p *parser) defineVariable(global byte) {
	if p.compiler.scopeDepth > 0 {
		p.markInitialized()
		return
	}
	p.emitOpByte(OpDefineGlobal, global)
}

func (p *parser) argumentList() byte {
	argCount := 0
	if !p.check(scanner.RightParen) {
		for {
			p.expression()
			if argCount == 255 {
				p.errorMsg("Can't have more than 255 arguments.")
			}
			argCount++
			if !p.matchTok(scanner.Comma) {
				break
			}
		}
	}
	p.consume(scanner.RightParen, "Expect ')' after arguments.")
	return byte(argCount)
}

// --- declarations & statements ------------------------------------------

func (p *parser) declaration() {
	switch {
	case p.matchTok(scanner.Fun):
		p.funDeclaration()
	case p.matchTok(scanner.Var):
		p.varDeclaration(false)
	case p.matchTok(scanner.Const):
		p.varDeclaration(true)
	default:
		p.statement()
	}
	if p.panicMode {
		p.synchronize()
	}
}

func (p *parser) funDeclaration() {
	global := p.parseVariable("Expect function name.")
	p.markInitialized()
	p.function(funcTypeFunction)
	p.defineVariable(global)
}

func (p *parser) function(ft funcType) {
	name := p.previous.Lexeme
	p.initCompiler(ft, name)
	p.beginScope()

	p.consume(scanner.LeftParen, "Expect '(' after function name.")
	if !p.check(scanner.RightParen) {
		for {
			p.compiler.function.Arity++
			if p.compiler.function.Arity > maxParameters {
				p.errorAtCurrent("Cannot have more than 255 parameters.")
			}
			constant := p.parseVariable("Expect parameter name.")
			p.defineVariable(constant)
			if !p.matchTok(scanner.Comma) {
				break
			}
		}
	}
	p.consume(scanner.RightParen, "Expect ')' after parameters.")
	p.consume(scanner.LeftBrace, "Expect '{' before function body.")
	p.block()

	child := p.compiler
	fn := p.endCompiler()
	p.emitOpByte(OpClosure, p.makeConstant(ObjVal(fn)))
	for i := 0; i < fn.UpvalueCount; i++ {
		if child.upvalues[i].isLocal {
			p.emitByte(1)
		} else {
			p.emitByte(0)
		}
		p.emitByte(child.upvalues[i].index)
	}
}

func (p *parser) varDeclaration(isConst bool) {
	global := p.parseVariable("Expect variable name.")

	if p.matchTok(scanner.Equal) {
		p.expression()
	} else if isConst {
		p.errorMsg("Const declarations must be initialized.")
	} else {
		p.emitOp(OpNil)
	}
	p.consume(scanner.Semicolon, "Expect ';' after variable declaration.")
	p.defineVariable(global)
}

func (p *parser) statement() {
	switch {
	case p.matchTok(scanner.Print):
		p.printStatement()
	case p.matchTok(scanner.If):
		p.ifStatement()
	case p.matchTok(scanner.Return):
		p.returnStatement()
	case p.matchTok(scanner.While):
		p.whileStatement()
	case p.matchTok(scanner.For):
		p.forStatement()
	case p.matchTok(scanner.Break):
		p.breakStatement()
	case p.matchTok(scanner.Continue):
		p.continueStatement()
	case p.matchTok(scanner.LeftBrace):
		p.beginScope()
		p.block()
		p.endScope()
	default:
		p.expressionStatement()
	}
}

func (p *parser) block() {
	for !p.check(scanner.RightBrace) && !p.check(scanner.EOF) {
		p.declaration()
	}
	p.consume(scanner.RightBrace, "Expect '}' after block.")
}

func (p *parser) printStatement() {
	p.expression()
	p.consume(scanner.Semicolon, "Expect ';' after value.")
	p.emitOp(OpPrint)
}

func (p *parser) returnStatement() {
	if p.compiler.funcType == funcTypeScript {
		p.errorMsg("Can't return from top-level code.")
	}
	if p.matchTok(scanner.Semicolon) {
		p.emitReturn()
		return
	}
	p.expression()
	p.consume(scanner.Semicolon, "Expect ';' after return value.")
	p.emitOp(OpReturn)
}

func (p *parser) expressionStatement() {
	p.expression()
	p.consume(scanner.Semicolon, "Expect ';' after expression.")
	p.emitOp(OpPop)
}

func (p *parser) ifStatement() {
	p.consume(scanner.LeftParen, "Expect '(' after 'if'.")
	p.expression()
	p.consume(scanner.RightParen, "Expect ')' after condition.")

	thenJump := p.emitJump(OpJumpIfFalse)
	p.emitOp(OpPop)
	p.statement()

	elseJump := p.emitJump(OpJump)
	p.patchJump(thenJump)
	p.emitOp(OpPop)

	if p.matchTok(scanner.Else) {
		p.statement()
	}
	p.patchJump(elseJump)
}

func (p *parser) pushLoop() *loopContext {
	lc := &loopContext{scopeDepth: p.compiler.scopeDepth}
	p.compiler.loops = append(p.compiler.loops, lc)
	return lc
}

func (p *parser) popLoop() {
	lc := p.compiler.loops[len(p.compiler.loops)-1]
	p.compiler.loops = p.compiler.loops[:len(p.compiler.loops)-1]
	for _, jump := range lc.breakJumps {
		p.patchJump(jump)
	}
}

func (p *parser) currentLoop() *loopContext {
	if len(p.compiler.loops) == 0 {
		return nil
	}
	return p.compiler.loops[len(p.compiler.loops)-1]
}

func (p *parser) whileStatement() {
	loopStart := len(p.chunk().Code)
	lc := p.pushLoop()
	lc.continueTarget = loopStart

	p.consume(scanner.LeftParen, "Expect '(' after 'while'.")
	p.expression()
	p.consume(scanner.RightParen, "Expect ')' after condition.")

	exitJump := p.emitJump(OpJumpIfFalse)
	p.emitOp(OpPop)
	p.statement()
	p.emitLoop(loopStart)

	p.patchJump(exitJump)
	p.emitOp(OpPop)
	p.popLoop()
}

func (p *parser) forStatement() {
	p.beginScope()
	p.consume(scanner.LeftParen, "Expect '(' after 'for'.")
	switch {
	case p.matchTok(scanner.Semicolon):
		// no initializer
	case p.matchTok(scanner.Var):
		p.varDeclaration(false)
	default:
		p.expressionStatement()
	}

	loopStart := len(p.chunk().Code)
	lc := p.pushLoop()
	lc.continueTarget = loopStart

	exitJump := -1
	if !p.matchTok(scanner.Semicolon) {
		p.expression()
		p.consume(scanner.Semicolon, "Expect ';' after loop condition.")
		exitJump = p.emitJump(OpJumpIfFalse)
		p.emitOp(OpPop)
	}

	if !p.matchTok(scanner.RightParen) {
		bodyJump := p.emitJump(OpJump)
		incrStart := len(p.chunk().Code)
		p.expression()
		p.emitOp(OpPop)
		p.consume(scanner.RightParen, "Expect ')' after for clauses.")

		p.emitLoop(loopStart)
		loopStart = incrStart
		lc.continueTarget = incrStart
		p.patchJump(bodyJump)
	}

	p.statement()
	p.emitLoop(loopStart)

	if exitJump != -1 {
		p.patchJump(exitJump)
		p.emitOp(OpPop)
	}

	p.popLoop()
	p.endScope()
}

// emitLoopExitPops unwinds every local declared inside the loop (depth
// strictly greater than the loop's own scope depth) before a break or
// continue jumps past the code that would otherwise pop them — the same
// OP_POP/OP_CLOSE_UPVALUE choice endScope makes, just emitted early
// since the jump skips over endScope's own bookkeeping for this pass.
// It does not touch localCount: compilation is still inside the block.
func (p *parser) emitLoopExitPops(loopDepth int) {
	for i := p.compiler.localCount - 1; i >= 0 && p.compiler.locals[i].depth > loopDepth; i-- {
		if p.compiler.locals[i].isCaptured {
			p.emitOp(OpCloseUpvalue)
		} else {
			p.emitOp(OpPop)
		}
	}
}

func (p *parser) breakStatement() {
	lc := p.currentLoop()
	if lc == nil {
		p.errorMsg("Can't use 'break' outside of a loop.")
		return
	}
	p.consume(scanner.Semicolon, "Expect ';' after 'break'.")
	p.emitLoopExitPops(lc.scopeDepth)
	lc.breakJumps = append(lc.breakJumps, p.emitJump(OpJump))
}

func (p *parser) continueStatement() {
	lc := p.currentLoop()
	if lc == nil {
		p.errorMsg("Can't use 'continue' outside of a loop.")
		return
	}
	p.consume(scanner.Semicolon, "Expect ';' after 'continue'.")
	p.emitLoopExitPops(lc.scopeDepth)
	p.emitLoop(lc.continueTarget)
}

// --- expressions ----------------------------------------------------------

func (p *parser) expression() { p.parsePrecedence(PrecAssignment) }

// parsePrecedence implements precedence climbing: advance, dispatch the
// previous token's prefix rule, then keep consuming infix operators
// whose precedence is at least prec.
func (p *parser) parsePrecedence(prec Precedence) {
	p.advance()
	rule := getRule(p.previous.Kind)
	if rule.prefix == nil {
		p.errorMsg("Expect expression.")
		return
	}
	canAssign := prec <= PrecAssignment
	rule.prefix(p, canAssign)

	for prec <= getRule(p.current.Kind).precedence {
		p.advance()
		infix := getRule(p.previous.Kind).infix
		infix(p, canAssign)
	}

	if canAssign && p.matchTok(scanner.Equal) {
		p.errorMsg("Invalid assignment target.")
	}
}

func parseNumber(p *parser, canAssign bool) {
	n, err := strconv.ParseFloat(p.previous.Lexeme, 64)
	if err != nil {
		p.errorMsg("Invalid number literal.")
		return
	}
	p.emitConstant(NumberVal(n))
}

func parseString(p *parser, canAssign bool) {
	p.emitConstant(ObjVal(p.vm.internString(scanner.Unescape(p.previous.Lexeme))))
}

func parseLiteral(p *parser, canAssign bool) {
	switch p.previous.Kind {
	case scanner.False:
		p.emitOp(OpFalse)
	case scanner.True:
		p.emitOp(OpTrue)
	case scanner.Nil:
		p.emitOp(OpNil)
	}
}

func parseGrouping(p *parser, canAssign bool) {
	p.expression()
	p.consume(scanner.RightParen, "Expect ')' after expression.")
}

func parseUnary(p *parser, canAssign bool) {
	kind := p.previous.Kind
	p.parsePrecedence(PrecUnary)
	switch kind {
	case scanner.Bang:
		p.emitOp(OpNot)
	case scanner.Minus:
		p.emitOp(OpNegate)
	}
}

func parseBinary(p *parser, canAssign bool) {
	kind := p.previous.Kind
	rule := getRule(kind)
	p.parsePrecedence(rule.precedence + 1)

	switch kind {
	case scanner.BangEqual:
		p.emitOp(OpEqual)
		p.emitOp(OpNot)
	case scanner.EqualEqual:
		p.emitOp(OpEqual)
	case scanner.Greater:
		p.emitOp(OpGreater)
	case scanner.GreaterEqual:
		p.emitOp(OpLess)
		p.emitOp(OpNot)
	case scanner.Less:
		p.emitOp(OpLess)
	case scanner.LessEqual:
		p.emitOp(OpGreater)
		p.emitOp(OpNot)
	case scanner.Plus:
		p.emitOp(OpAdd)
	case scanner.Minus:
		p.emitOp(OpSubtract)
	case scanner.Star:
		p.emitOp(OpMultiply)
	case scanner.Slash:
		p.emitOp(OpDivide)
	}
}

func parseCall(p *parser, canAssign bool) {
	argCount := p.argumentList()
	p.emitOpByte(OpCall, argCount)
}

func parseAnd(p *parser, canAssign bool) {
	endJump := p.emitJump(OpJumpIfFalse)
	p.emitOp(OpPop)
	p.parsePrecedence(PrecAnd)
	p.patchJump(endJump)
}

func parseOr(p *parser, canAssign bool) {
	elseJump := p.emitJump(OpJumpIfFalse)
	endJump := p.emitJump(OpJump)
	p.patchJump(elseJump)
	p.emitOp(OpPop)
	p.parsePrecedence(PrecOr)
	p.patchJump(endJump)
}

func parseVariableExpr(p *parser, canAssign bool) {
	p.namedVariable(p.previous.Lexeme, canAssign)
}

func (p *parser) namedVariable(name string, canAssign bool) {
	var getOp, setOp OpCode
	arg := resolveLocal(p.compiler, name)
	if arg == -2 {
		p.errorMsg("Cannot read local variable in its own initializer.")
		arg = 0
	}
	if arg >= 0 {
		getOp, setOp = OpGetLocal, OpSetLocal
	} else if arg = resolveUpvalue(p.compiler, name); arg == -2 {
		p.errorMsg("Cannot read local variable in its own initializer.")
		arg, getOp, setOp = 0, OpGetUpvalue, OpSetUpvalue
	} else if arg != -1 {
		getOp, setOp = OpGetUpvalue, OpSetUpvalue
	} else {
		arg = int(p.identifierConstant(name))
		getOp, setOp = OpGetGlobal, OpSetGlobal
	}

	if canAssign && p.matchTok(scanner.Equal) {
		p.expression()
		p.emitOpByte(setOp, byte(arg))
	} else {
		p.emitOpByte(getOp, byte(arg))
	}
}

var rules map[scanner.Kind]parseRule

func getRule(kind scanner.Kind) parseRule {
	if rule, ok := rules[kind]; ok {
		return rule
	}
	return parseRule{precedence: PrecNone}
}

func init() {
	rules = map[scanner.Kind]parseRule{
		scanner.LeftParen:    {parseGrouping, parseCall, PrecCall},
		scanner.Minus:        {parseUnary, parseBinary, PrecTerm},
		scanner.Plus:         {nil, parseBinary, PrecTerm},
		scanner.Slash:        {nil, parseBinary, PrecFactor},
		scanner.Star:         {nil, parseBinary, PrecFactor},
		scanner.Bang:         {parseUnary, nil, PrecNone},
		scanner.BangEqual:    {nil, parseBinary, PrecEquality},
		scanner.EqualEqual:   {nil, parseBinary, PrecEquality},
		scanner.Greater:      {nil, parseBinary, PrecComparison},
		scanner.GreaterEqual: {nil, parseBinary, PrecComparison},
		scanner.Less:         {nil, parseBinary, PrecComparison},
		scanner.LessEqual:    {nil, parseBinary, PrecComparison},
		scanner.Identifier:   {parseVariableExpr, nil, PrecNone},
		scanner.String:       {parseString, nil, PrecNone},
		scanner.Number:       {parseNumber, nil, PrecNone},
		scanner.And:          {nil, parseAnd, PrecAnd},
		scanner.Or:           {nil, parseOr, PrecOr},
		scanner.False:        {parseLiteral, nil, PrecNone},
		scanner.Nil:          {parseLiteral, nil, PrecNone},
		scanner.True:         {parseLiteral, nil, PrecNone},
	}
}
