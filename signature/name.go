package signature

import (
	"reflect"
	"runtime"
	"strings"
)

// DisplayName returns the name used in error messages for a callable whose
// package-qualified name (see QualifiedName) is qualified.
//
// Go names anonymous functions after their enclosing function ("Outer.func1",
// "Outer.func1.2"). A function defined inside another function drops the
// enclosing function's name and keeps only the trailing segment starting at
// the first closure marker. Methods keep "Type.Method".
//
// Example:
//
//	DisplayName("TestWrap.func1")  // "func1"
//	DisplayName("Yada.Func")       // "Yada.Func"
//	DisplayName("Handler.func2.1") // "func2.1"
func DisplayName(qualified string) string {
	segments := strings.Split(qualified, ".")

	for i := 1; i < len(segments); i++ {
		if isClosureMarker(segments[i]) {
			return strings.Join(segments[i:], ".")
		}
	}

	return qualified
}

func isClosureMarker(segment string) bool {
	digits, ok := strings.CutPrefix(segment, "func")
	if !ok || digits == "" {
		return false
	}

	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	return true
}

// QualifiedName turns a runtime function name into a name qualified within
// its package: the import path and package name are dropped, pointer
// receivers are written as plain "Type.Method", and method-value and generic
// instantiation decorations are removed.
//
// Example:
//
//	QualifiedName("github.com/acme/svc.(*Yada).Func-fm") // "Yada.Func"
//	QualifiedName("github.com/acme/svc.TestWrap.func1")  // "TestWrap.func1"
func QualifiedName(runtimeName string) string {
	name := runtimeName

	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}

	name = strings.TrimSuffix(name, "-fm")
	name = strings.ReplaceAll(name, "[...]", "")
	name = strings.ReplaceAll(name, "(*", "")
	name = strings.ReplaceAll(name, ")", "")

	return name
}

// functionName returns the runtime name of the function held by fn. It
// returns "" when fn is nil or the runtime cannot name it.
func functionName(fn reflect.Value) string {
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return ""
	}

	funcPtr := runtime.FuncForPC(fn.Pointer())
	if funcPtr == nil {
		return ""
	}

	return funcPtr.Name()
}
