package vm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSimpleProgram(t *testing.T) {
	machine := New()
	defer machine.Free()

	fn, err := machine.Compile(`print 1 + 2;`)
	require.NoError(t, err)
	assert.NotNil(t, fn)
	assert.Nil(t, fn.Name)
}

func TestCompileErrorReportsLineAndMessage(t *testing.T) {
	machine := New()
	defer machine.Free()

	_, err := machine.Compile(`var x = ;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[line 1] Error")
}

func TestCompileCollectsMultipleErrors(t *testing.T) {
	machine := New()
	defer machine.Free()

	_, err := machine.Compile("var = ;\nvar also = ;")
	require.Error(t, err)
	lines := strings.Count(err.Error(), "[line")
	assert.GreaterOrEqual(t, lines, 2)
}

func TestConstRequiresInitializer(t *testing.T) {
	machine := New()
	defer machine.Free()

	_, err := machine.Compile(`const x;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Const declarations must be initialized.")
}

func TestConstWithInitializerCompiles(t *testing.T) {
	machine := New()
	defer machine.Free()

	_, err := machine.Compile(`const x = 1;`)
	require.NoError(t, err)
}

func TestReturnFromTopLevelIsAnError(t *testing.T) {
	machine := New()
	defer machine.Free()

	_, err := machine.Compile(`return 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't return from top-level code.")
}

func TestBreakOutsideLoopIsAnError(t *testing.T) {
	machine := New()
	defer machine.Free()

	_, err := machine.Compile(`break;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't use 'break' outside of a loop.")
}

func TestContinueOutsideLoopIsAnError(t *testing.T) {
	machine := New()
	defer machine.Free()

	_, err := machine.Compile(`continue;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't use 'continue' outside of a loop.")
}

func TestTooManyParametersIsAnError(t *testing.T) {
	machine := New()
	defer machine.Free()

	var params []string
	for i := 0; i < 256; i++ {
		params = append(params, fmt.Sprintf("p%d", i))
	}
	src := fmt.Sprintf("fun f(%s) { return 0; }", strings.Join(params, ", "))
	_, err := machine.Compile(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot have more than 255 parameters.")
}

func TestExactly255ParametersCompiles(t *testing.T) {
	machine := New()
	defer machine.Free()

	var params []string
	for i := 0; i < 255; i++ {
		params = append(params, fmt.Sprintf("p%d", i))
	}
	src := fmt.Sprintf("fun f(%s) { return 0; }", strings.Join(params, ", "))
	_, err := machine.Compile(src)
	require.NoError(t, err)
}

func TestTooManyArgumentsIsAnError(t *testing.T) {
	machine := New()
	defer machine.Free()

	var args []string
	for i := 0; i < 256; i++ {
		args = append(args, "nil")
	}
	src := fmt.Sprintf("fun f() { return 0; } f(%s);", strings.Join(args, ", "))
	_, err := machine.Compile(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't have more than 255 arguments.")
}

func TestTooManyConstantsIsAnError(t *testing.T) {
	machine := New()
	defer machine.Free()

	var src strings.Builder
	for i := 0; i < 257; i++ {
		fmt.Fprintf(&src, "%d;\n", i)
	}
	_, err := machine.Compile(src.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Too many constants in one chunk.")
}

func TestInvalidAssignmentTargetIsAnError(t *testing.T) {
	machine := New()
	defer machine.Free()

	_, err := machine.Compile(`1 + 2 = 3;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid assignment target.")
}

func TestReadingLocalInItsOwnInitializerIsAnError(t *testing.T) {
	machine := New()
	defer machine.Free()

	_, err := machine.Compile(`{ var a = a; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot read local variable in its own initializer.")
}

func TestRedeclaringLocalInSameScopeIsAnError(t *testing.T) {
	machine := New()
	defer machine.Free()

	_, err := machine.Compile(`{ var a = 1; var a = 2; }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Already a variable with this name in this scope.")
}

func TestShadowingInNestedScopeIsAllowed(t *testing.T) {
	machine := New()
	defer machine.Free()

	_, err := machine.Compile(`{ var a = 1; { var a = 2; } }`)
	require.NoError(t, err)
}

func TestTooManyLocalsIsAnError(t *testing.T) {
	machine := New()
	defer machine.Free()

	var src strings.Builder
	src.WriteString("{\n")
	for i := 0; i < 257; i++ {
		fmt.Fprintf(&src, "var v%d = %d;\n", i, i)
	}
	src.WriteString("}\n")
	_, err := machine.Compile(src.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Too many local variables in function.")
}
