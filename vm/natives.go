package vm

import (
	"fmt"
	"math"
	"time"
)

// defineNatives registers the native prelude: clock() and str() from
// the core spec, plus a math library and a millis() timer adapted from
// the teacher repo's libraries/fmaths.go and libraries/time.go. Every
// native pushes its result only through the normal allocation path
// (internString, NumberVal) so it participates in GC rooting exactly
// like VM-produced values.
func (vm *VM) defineNatives() {
	// spec.md §4.5 names clock()/CLOCKS_PER_SEC CPU time; nothing in the
	// retrieved pack grounds a portable CPU-time reading (that needs
	// syscall.Getrusage or similar, platform-specific and unrepresented
	// anywhere in the corpus), so this is wall-clock elapsed seconds
	// instead — sufficient for the scripts this VM runs, but a known
	// deviation from the spec's literal wording.
	vm.defineNative("clock", func(args []Value) (Value, error) {
		return NumberVal(float64(time.Now().UnixNano()) / float64(time.Second)), nil
	})
	vm.defineNative("millis", func(args []Value) (Value, error) {
		return NumberVal(float64(time.Now().UnixNano()) / float64(time.Millisecond)), nil
	})
	vm.defineNative("str", func(args []Value) (Value, error) {
		if len(args) != 1 {
			return Nil, fmt.Errorf("str() takes exactly one argument")
		}
		return ObjVal(vm.internString(args[0].String())), nil
	})

	vm.defineNative("sqrt", mathUnary("sqrt", func(x float64) (float64, error) {
		if x < 0 {
			return 0, fmt.Errorf("sqrt of negative number")
		}
		return math.Sqrt(x), nil
	}))
	vm.defineNative("abs", mathUnary("abs", func(x float64) (float64, error) { return math.Abs(x), nil }))
	vm.defineNative("floor", mathUnary("floor", func(x float64) (float64, error) { return math.Floor(x), nil }))
	vm.defineNative("ceil", mathUnary("ceil", func(x float64) (float64, error) { return math.Ceil(x), nil }))
	vm.defineNative("round", mathUnary("round", func(x float64) (float64, error) { return math.Round(x), nil }))
	vm.defineNative("sin", mathUnary("sin", func(x float64) (float64, error) { return math.Sin(x), nil }))
	vm.defineNative("cos", mathUnary("cos", func(x float64) (float64, error) { return math.Cos(x), nil }))
	vm.defineNative("tan", mathUnary("tan", func(x float64) (float64, error) { return math.Tan(x), nil }))
	vm.defineNative("exp", mathUnary("exp", func(x float64) (float64, error) { return math.Exp(x), nil }))
	vm.defineNative("log", mathUnary("log", func(x float64) (float64, error) {
		if x <= 0 {
			return 0, fmt.Errorf("log of non-positive number")
		}
		return math.Log(x), nil
	}))

	vm.defineNative("pow", func(args []Value) (Value, error) {
		if len(args) != 2 {
			return Nil, fmt.Errorf("pow() requires 2 arguments")
		}
		if !args[0].IsNumber() || !args[1].IsNumber() {
			return Nil, fmt.Errorf("pow() requires numeric arguments")
		}
		return NumberVal(math.Pow(args[0].AsNumber(), args[1].AsNumber())), nil
	})
	vm.defineNative("min", mathVariadic("min", math.Inf(1), func(acc, x float64) float64 {
		if x < acc {
			return x
		}
		return acc
	}))
	vm.defineNative("max", mathVariadic("max", math.Inf(-1), func(acc, x float64) float64 {
		if x > acc {
			return x
		}
		return acc
	}))

	vm.globals.Set(vm.internString("pi"), NumberVal(math.Pi))
	vm.globals.Set(vm.internString("e"), NumberVal(math.E))
}

func mathUnary(name string, fn func(float64) (float64, error)) NativeFn {
	return func(args []Value) (Value, error) {
		if len(args) != 1 {
			return Nil, fmt.Errorf("%s() requires 1 argument", name)
		}
		if !args[0].IsNumber() {
			return Nil, fmt.Errorf("%s() requires a numeric argument", name)
		}
		result, err := fn(args[0].AsNumber())
		if err != nil {
			return Nil, err
		}
		return NumberVal(result), nil
	}
}

func mathVariadic(name string, seed float64, reduce func(acc, x float64) float64) NativeFn {
	return func(args []Value) (Value, error) {
		if len(args) < 2 {
			return Nil, fmt.Errorf("%s() requires at least 2 arguments", name)
		}
		acc := seed
		for _, a := range args {
			if !a.IsNumber() {
				return Nil, fmt.Errorf("%s() requires numeric arguments", name)
			}
			acc = reduce(acc, a.AsNumber())
		}
		return NumberVal(acc), nil
	}
}

func (vm *VM) defineNative(name string, fn NativeFn) {
	vm.push(ObjVal(vm.internString(name)))
	vm.push(ObjVal(vm.newNative(name, fn)))
	vm.globals.Set(vm.peek(1).AsString(), vm.peek(0))
	vm.pop()
	vm.pop()
}
