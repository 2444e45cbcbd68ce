package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkObjectIsIdempotent(t *testing.T) {
	machine := New()
	defer machine.Free()

	s := machine.internString("x")
	machine.markObject(s)
	require.Len(t, machine.grayStack, 1)

	machine.markObject(s)
	assert.Len(t, machine.grayStack, 1)
}

func TestCollectGarbageSweepsUnreachableStrings(t *testing.T) {
	machine := New(WithStressGC(false))
	defer machine.Free()

	// Allocate a string that nothing roots, then force a collection.
	machine.push(ObjVal(machine.internString("unrooted")))
	machine.pop()

	before := machine.objectCount
	machine.collectGarbage()
	assert.Less(t, machine.objectCount, before)
}

func TestCollectGarbageKeepsGlobalsReachable(t *testing.T) {
	machine := New()
	defer machine.Free()

	require.Equal(t, InterpretOK, machine.Interpret(`var kept = "value";`))
	machine.collectGarbage()

	name := machine.internString("kept")
	val, ok := machine.globals.Get(name)
	require.True(t, ok)
	assert.Equal(t, "value", val.String())
}

func TestStressGCRunsOnEveryAllocation(t *testing.T) {
	machine := New(WithStressGC(true))
	defer machine.Free()

	res := machine.Interpret(`
		var a = "one";
		var b = "two";
		print a + b;
	`)
	assert.Equal(t, InterpretOK, res)
}

func TestRemoveWhiteDropsUnmarkedInternEntries(t *testing.T) {
	machine := New()
	defer machine.Free()

	machine.push(ObjVal(machine.internString("transient")))
	machine.pop()

	machine.markRoots()
	machine.traceReferences()
	machine.strings.removeWhite()

	found := machine.strings.FindString("transient", fnv1a("transient"))
	assert.Nil(t, found)
}

func TestNextGCStaysAtOrAboveInitialThreshold(t *testing.T) {
	machine := New()
	defer machine.Free()

	for i := 0; i < 300; i++ {
		machine.push(ObjVal(machine.internString(string(rune('a' + i%26)) + string(rune(i)))))
		machine.pop()
	}
	machine.collectGarbage()
	assert.GreaterOrEqual(t, machine.nextGC, initialGCThreshold)
}
