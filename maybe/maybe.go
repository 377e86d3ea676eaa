/*
Package maybe implements an option type.

A Maybe either holds a value (Just) or holds nothing (Nothing). The shorthand
parser uses it to signal "no usable element" without resorting to errors or
nil-checks scattered across clients. Clients branch on presence by matching:

    var node *element.Node
    switch m := shorthand.Parse(s).Match(); m {
    case m.Just(&node):
        …
    case m.Nothing():
        …
    }

Matching compares matcher values, therefore the payload type T has to be
comparable at run-time (pointers, strings, plain structs).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an option type for values of type T.
type Maybe[T any] interface {
	Match() Matcher[T]      // pattern match on Just / Nothing
	WithDefault(T) T        // unwrap, substituting a default for Nothing
	Map(func(T) T) Maybe[T] // apply a function to a Just value
	Get() (T, bool)         // unwrap Go-style
	IsNothing() bool        // predicate: is this Nothing?
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing creates an empty option.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// From creates an option from a Go-style (value, ok) pair.
func From[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// AndThen chains a computation which may fail onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to a Just value, possibly changing the type of the payload.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
