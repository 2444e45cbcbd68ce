package vm

// This is a precise, stop-the-world, tri-colour mark-sweep collector.
// Stop-the-world is free here: the VM is single-threaded by spec, so a
// collection triggered mid-allocation always completes before the
// instruction that triggered it resumes; there is no other goroutine
// that could observe a half-swept heap.
//
// Adaptation note: the original C collector triggers on bytes
// allocated, doubling a byte threshold (GC_HEAP_GROW_FACTOR = 2). Go's
// allocator doesn't expose per-object byte sizes to us without unsafe
// tricks, so this rewrite triggers on live *object count* instead,
// doubling the same way. The trigger shape (grow threshold
// proportional to live set, stress mode forces it every allocation) is
// preserved; only the unit changed. See DESIGN.md.
const gcHeapGrowFactor = 2
const initialGCThreshold = 256

// markObject is idempotent: it only pushes to the gray worklist on the
// first white-to-gray transition, so re-marking an already-gray or
// already-black object is a no-op.
func (vm *VM) markObject(o Object) {
	if o == nil {
		return
	}
	h := o.header()
	if h.marked {
		return
	}
	h.marked = true
	if vm.traceGC {
		vm.logf("-- mark %p", o)
	}
	// The gray worklist is a plain Go slice growing via append, never
	// through vm.allocate: it must not itself be GC-managed, or
	// growing it mid-collection could recurse into collectGarbage.
	vm.grayStack = append(vm.grayStack, o)
}

func (vm *VM) markValue(v Value) {
	if v.IsObj() {
		vm.markObject(v.AsObj())
	}
}

func (vm *VM) markTable(t *Table) {
	for _, e := range t.entries {
		if e.key != nil {
			vm.markObject(e.key)
		}
		vm.markValue(e.value)
	}
}

func (vm *VM) markRoots() {
	for i := 0; i < vm.sp; i++ {
		vm.markValue(vm.stack[i])
	}
	for i := range vm.frames[:vm.frameCount] {
		vm.markObject(vm.frames[i].closure)
	}
	for u := vm.openUpvalues; u != nil; u = u.NextOpen {
		vm.markObject(u)
	}
	vm.markTable(vm.globals)

	for c := vm.activeCompiler; c != nil; c = c.enclosing {
		vm.markObject(c.function)
	}
}

// traceReferences pops from the gray worklist until empty, blackening
// each object: tracing its outgoing references (which may turn more
// objects gray) without re-adding itself.
func (vm *VM) traceReferences() {
	for len(vm.grayStack) > 0 {
		n := len(vm.grayStack) - 1
		o := vm.grayStack[n]
		vm.grayStack = vm.grayStack[:n]
		vm.blackenObject(o)
	}
}

func (vm *VM) blackenObject(o Object) {
	if vm.traceGC {
		vm.logf("-- blacken %p", o)
	}
	switch obj := o.(type) {
	case *ObjString, *ObjNative:
		// no outgoing references
	case *ObjFunction:
		if obj.Name != nil {
			vm.markObject(obj.Name)
		}
		for _, c := range obj.Chunk.Constants {
			vm.markValue(c)
		}
	case *ObjClosure:
		vm.markObject(obj.Function)
		for _, u := range obj.Upvalues {
			// Entries are nil while OP_CLOSURE is still capturing.
			if u != nil {
				vm.markObject(u)
			}
		}
	case *ObjUpvalue:
		// An open upvalue's live value is already reachable through
		// the operand stack; only a closed upvalue owns its value.
		if !obj.Open {
			vm.markValue(obj.Closed)
		}
	}
}

// sweep walks the object list, freeing (unlinking) anything left white
// and clearing the mark bit on survivors for the next cycle.
func (vm *VM) sweep() {
	var previous Object
	object := vm.objects
	for object != nil {
		h := object.header()
		if h.marked {
			h.marked = false
			previous = object
			object = h.next
			continue
		}
		unreached := object
		object = h.next
		if previous != nil {
			previous.header().next = object
		} else {
			vm.objects = object
		}
		vm.freeObject(unreached)
	}
}

// freeObject runs type-specific teardown. Strings and natives have
// nothing extra to release; functions drop their chunk; closures drop
// their upvalue vector. Go's own GC reclaims the backing memory once
// nothing in our structures still points at it.
func (vm *VM) freeObject(o Object) {
	vm.objectCount--
	if vm.traceGC {
		vm.logf("-- free %p", o)
	}
	switch obj := o.(type) {
	case *ObjFunction:
		obj.Chunk = nil
	case *ObjClosure:
		obj.Upvalues = nil
	}
}

// collectGarbage runs one full mark-sweep cycle.
func (vm *VM) collectGarbage() {
	if vm.traceGC {
		vm.logf("-- gc begin")
	}
	vm.markRoots()
	vm.traceReferences()
	vm.strings.removeWhite()
	vm.sweep()
	vm.nextGC = vm.objectCount * gcHeapGrowFactor
	if vm.nextGC < initialGCThreshold {
		vm.nextGC = initialGCThreshold
	}
	if vm.traceGC {
		vm.logf("-- gc end")
	}
}
