// File: environment.go
// Title: Variable Scopes
// Description: Lexically nested variable scopes. Reads fall through to the
//              enclosing scope; assignments update the nearest scope that
//              already binds the name and otherwise bind in the current one.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Drop unused Define and Outer

package evaluator

import "sort"

// Environment is one scope of variable bindings
type Environment struct {
	values map[string]Value
	outer  *Environment
}

// NewEnvironment creates a scope nested in outer; outer is nil for globals
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		outer:  outer,
	}
}

// Get looks name up in this scope and then in the enclosing ones
func (e *Environment) Get(name string) (Value, bool) {
	for scope := e; scope != nil; scope = scope.outer {
		if v, ok := scope.values[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Assign stores v in the nearest scope binding name, or binds it here
func (e *Environment) Assign(name string, v Value) {
	for scope := e; scope != nil; scope = scope.outer {
		if _, ok := scope.values[name]; ok {
			scope.values[name] = v
			return
		}
	}
	e.values[name] = v
}

// Names returns the names bound in this scope, sorted
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
