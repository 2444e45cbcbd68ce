package vm

import "fmt"

// Kind tags a Value's payload. Values are a small tagged union rather
// than a Go interface{} so that arithmetic and equality can switch on a
// single byte instead of doing a type assertion on every operand.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindObj
)

// Value is the VM's tagged union: nil, boolean, IEEE-754 double, or a
// reference to a heap Object. Exactly one of the payload fields is
// meaningful, selected by Kind.
type Value struct {
	Kind    Kind
	boolean bool
	number  float64
	obj     Object
}

var Nil = Value{Kind: KindNil}

func BoolVal(b bool) Value      { return Value{Kind: KindBool, boolean: b} }
func NumberVal(n float64) Value { return Value{Kind: KindNumber, number: n} }
func ObjVal(o Object) Value     { return Value{Kind: KindObj, obj: o} }

func (v Value) IsNil() bool    { return v.Kind == KindNil }
func (v Value) IsBool() bool   { return v.Kind == KindBool }
func (v Value) IsNumber() bool { return v.Kind == KindNumber }
func (v Value) IsObj() bool    { return v.Kind == KindObj }

func (v Value) AsBool() bool      { return v.boolean }
func (v Value) AsNumber() float64 { return v.number }
func (v Value) AsObj() Object     { return v.obj }

func (v Value) IsString() bool {
	_, ok := v.obj.(*ObjString)
	return v.Kind == KindObj && ok
}

func (v Value) AsString() *ObjString { return v.obj.(*ObjString) }

func (v Value) IsFunction() bool {
	_, ok := v.obj.(*ObjFunction)
	return v.Kind == KindObj && ok
}
func (v Value) AsFunction() *ObjFunction { return v.obj.(*ObjFunction) }

func (v Value) IsClosure() bool {
	_, ok := v.obj.(*ObjClosure)
	return v.Kind == KindObj && ok
}
func (v Value) AsClosure() *ObjClosure { return v.obj.(*ObjClosure) }

func (v Value) IsNative() bool {
	_, ok := v.obj.(*ObjNative)
	return v.Kind == KindObj && ok
}
func (v Value) AsNative() *ObjNative { return v.obj.(*ObjNative) }

// IsFalsey implements the language's truthiness rule: nil and boolean
// false are falsey, everything else (including 0 and "") is truthy.
func IsFalsey(v Value) bool {
	return v.IsNil() || (v.IsBool() && !v.AsBool())
}

// ValuesEqual implements spec equality: same tag required, nil==nil,
// booleans by value, numbers by IEEE equality (NaN != NaN), heap
// objects by identity (which is sufficient for strings too, because
// strings are interned).
func ValuesEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNil:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindNumber:
		return a.number == b.number
	case KindObj:
		return a.obj == b.obj
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.boolean {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.number)
	case KindObj:
		return v.obj.String()
	default:
		return "?"
	}
}

func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}

// ObjType discriminates the heap object variants. It is recorded in each
// object's header at allocation and printed by the GC trace log; the
// sweep and the disassembler themselves tell variants apart with Go type
// switches and assertions.
type ObjType uint8

const (
	ObjTypeString ObjType = iota
	ObjTypeFunction
	ObjTypeClosure
	ObjTypeUpvalue
	ObjTypeNative
)

// Object is the shared interface over every heap object variant. It
// plays the role of the C original's object header: a type tag, a mark
// bit for the collector, and a successor pointer threading the object
// into the VM's "all objects ever allocated" list.
type Object interface {
	objType() ObjType
	header() *objHeader
	String() string
}

type objHeader struct {
	typ    ObjType
	marked bool
	next   Object
}

func (h *objHeader) header() *objHeader { return h }
func (h *objHeader) objType() ObjType   { return h.typ }

// ObjString is an immutable, interned byte sequence. Two content-equal
// strings are always the same *ObjString, so string equality reduces to
// pointer equality (see ValuesEqual).
type ObjString struct {
	objHeader
	Chars string
	Hash  uint32
}

func (s *ObjString) String() string { return s.Chars }

// fnv1a is the 32-bit FNV-1a hash, preserved byte-for-byte from the
// original so that interning stays stable across runs of the same VM.
func fnv1a(s string) uint32 {
	const offsetBasis uint32 = 2166136261
	const prime uint32 = 16777619
	h := offsetBasis
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime
	}
	return h
}

// ObjFunction is a fixed-arity, compiled function: an owned chunk, an
// upvalue count (how many captures its CLOSURE instruction expects) and
// an optional name (nil for the top-level script).
type ObjFunction struct {
	objHeader
	Arity        int
	UpvalueCount int
	Chunk        *Chunk
	Name         *ObjString
}

func (f *ObjFunction) String() string {
	if f.Name == nil {
		return "<script>"
	}
	return fmt.Sprintf("<fn %s>", f.Name.Chars)
}

// ObjUpvalue indirects to a variable captured by a closure. While Open
// it refers to a live slot on the VM's operand stack by index; Go slices
// can reallocate their backing array on growth, so (unlike the raw
// stack-slot pointer the original C VM keeps) this rewrite tracks the
// slot as an index into vm.stack and resolves it through the owning VM,
// which keeps the reference valid across any stack growth. Once Closed
// it owns its value directly and StackIndex is no longer consulted.
type ObjUpvalue struct {
	objHeader
	StackIndex int
	Closed     Value
	Open       bool
	NextOpen   *ObjUpvalue // next entry in the VM's open-upvalue list, sorted by descending StackIndex
}

func (u *ObjUpvalue) String() string { return "upvalue" }

// ObjClosure pairs a function with the upvalues it captured at creation
// time. Its Upvalues length always equals Function.UpvalueCount.
type ObjClosure struct {
	objHeader
	Function *ObjFunction
	Upvalues []*ObjUpvalue
}

func (c *ObjClosure) String() string { return c.Function.String() }

// NativeFn is a host function exposed to Thorn code. It receives a copy
// of its arguments taken from the operand stack (the original passes argc
// plus a pointer to the first stack argument); the VM pops the arguments
// and the callee only after the native returns.
type NativeFn func(args []Value) (Value, error)

type ObjNative struct {
	objHeader
	Name string
	Fn   NativeFn
}

func (n *ObjNative) String() string { return fmt.Sprintf("<native %s>", n.Name) }
