package vm

// This file owns heap allocation: every ObjXxx is born here so that the
// VM can thread it onto the object list and charge it against the GC's
// trigger count in one place.

// allocate links o into the object list and charges it against the GC
// trigger. The trigger check runs before o is linked in or counted, the
// same order the original collector's reallocate() uses: a collection
// triggered by this very allocation can't see o yet (it isn't reachable
// from the object list, let alone any root), so there's no window where
// o could be swept before its caller has a chance to root it.
func (vm *VM) allocate(o Object, typ ObjType) {
	if vm.stressGC || vm.objectCount+1 > vm.nextGC {
		vm.collectGarbage()
	}

	h := o.header()
	h.typ = typ
	h.marked = false
	h.next = vm.objects
	vm.objects = o
	vm.objectCount++

	if vm.traceGC {
		vm.logf("-- alloc %p %s", o, typ)
	}
}

// internString returns the canonical *ObjString for chars, allocating
// and interning a new one only if an equal string doesn't already
// exist. Any newly allocated string is pushed onto the operand stack
// before the intern-table insert can itself allocate and trigger a
// collection, so it is never collected out from under us while
// unreachable from anywhere else.
func (vm *VM) internString(chars string) *ObjString {
	hash := fnv1a(chars)
	if existing := vm.strings.FindString(chars, hash); existing != nil {
		return existing
	}
	s := &ObjString{Chars: chars, Hash: hash}
	vm.allocate(s, ObjTypeString)
	vm.push(ObjVal(s))
	vm.strings.Set(s, Nil)
	vm.pop()
	return s
}

func (vm *VM) newFunction() *ObjFunction {
	fn := &ObjFunction{Chunk: NewChunk()}
	vm.allocate(fn, ObjTypeFunction)
	return fn
}

func (vm *VM) newClosure(fn *ObjFunction) *ObjClosure {
	c := &ObjClosure{Function: fn, Upvalues: make([]*ObjUpvalue, fn.UpvalueCount)}
	vm.allocate(c, ObjTypeClosure)
	return c
}

func (vm *VM) newUpvalue(stackIndex int) *ObjUpvalue {
	u := &ObjUpvalue{StackIndex: stackIndex, Open: true}
	vm.allocate(u, ObjTypeUpvalue)
	return u
}

func (vm *VM) newNative(name string, fn NativeFn) *ObjNative {
	n := &ObjNative{Name: name, Fn: fn}
	vm.allocate(n, ObjTypeNative)
	return n
}
