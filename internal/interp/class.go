package interp

import "github.com/cwbudde/go-lox/pkg/token"

// Class is a Lox class: its name, optional superclass, and method
// table. Calling a Class constructs an Instance.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) Type() string   { return "class" }
func (c *Class) String() string { return c.Name }

// FindMethod looks up name in this class's method table, walking the
// superclass chain on a miss.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the constructor's arity: the `init` method's arity if one
// is defined, zero otherwise.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class defines `init`,
// binds and invokes it with the given arguments. The instance is
// returned regardless of what `init` returns (spec.md §4.4's "Class
// call" rule).
func (c *Class) Call(in *Interpreter, args []Value) Value {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init, ok := c.FindMethod("init"); ok {
		init.Bind(instance).Call(in, args)
	}
	return instance
}

// Instance is a runtime object: a reference to its class and a field
// map. Field access that misses the field map falls through to a
// bound method lookup on the class (and its superclasses).
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (i *Instance) Type() string   { return "instance" }
func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get reads a field or bound method by name, per spec.md §4.4's
// "Field and method access" rule. Raises a runtime error on a miss.
func (i *Instance) Get(name token.Token) Value {
	if v, ok := i.Fields[name.Literal]; ok {
		return v
	}
	if method, ok := i.Class.FindMethod(name.Literal); ok {
		return method.Bind(i)
	}
	panic(&runtimeError{Token: name, Message: "Undefined property '" + name.Literal + "'."})
}

// Set writes a field, creating it if absent.
func (i *Instance) Set(name token.Token, value Value) {
	i.Fields[name.Literal] = value
}
