package interp

import "github.com/cwbudde/go-lox/pkg/token"

// Environment is a lexical scope: a mapping from name to runtime
// value, parent-linked to its enclosing scope. Lox identifiers are
// case-sensitive, so (unlike the teacher's ident.Map-backed
// environment) this is a plain map (see DESIGN.md's "Dropped
// dependencies" entry for why the case-insensitive map is not carried
// forward).
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a root environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnclosed creates a new scope nested inside enclosing.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]Value), enclosing: enclosing}
}

// Define binds name to value in this environment, overwriting any
// existing binding of the same name in this scope.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get reads name from this environment, walking outward through
// enclosing scopes. Raises a runtime error if the name is undefined
// anywhere in the chain.
func (e *Environment) Get(name token.Token) Value {
	if v, ok := e.values[name.Literal]; ok {
		return v
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	panic(&runtimeError{Token: name, Message: "Undefined variable '" + name.Literal + "'."})
}

// Assign sets an existing binding of name, walking outward through
// enclosing scopes to find where it is defined. Raises a runtime
// error if the name is undefined anywhere in the chain.
func (e *Environment) Assign(name token.Token, value Value) {
	if _, ok := e.values[name.Literal]; ok {
		e.values[name.Literal] = value
		return
	}
	if e.enclosing != nil {
		e.enclosing.Assign(name, value)
		return
	}
	panic(&runtimeError{Token: name, Message: "Undefined variable '" + name.Literal + "'."})
}

// ancestor walks exactly distance enclosing links outward.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the frame exactly distance enclosing links
// outward, as recorded by the resolver side-table.
func (e *Environment) GetAt(distance int, name string) Value {
	return e.ancestor(distance).values[name]
}

// AssignAt assigns name in the frame exactly distance enclosing links
// outward, as recorded by the resolver side-table.
func (e *Environment) AssignAt(distance int, name token.Token, value Value) {
	e.ancestor(distance).values[name.Literal] = value
}
