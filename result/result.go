/*
Package result implements a result type for computations that may fail.

A Result either holds a value (Ok) or an error (Err). Line expansion returns
a Result, which lets callers fall back to a default action uniformly:

    var x expand.Expansion
    var err error
    switch m := expand.Expand(line, col, settings).Match(); m {
    case m.Ok(&x):
        …
    case m.Err(&err):
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import "github.com/npillmayer/shorthand/maybe"

// Result holds either a value of type T or an error.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. err must not be nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// FromMaybe converts an option into a Result, using err for Nothing.
func FromMaybe[T any](m maybe.Maybe[T], err error) Result[T] {
	if v, ok := m.Get(); ok {
		return Ok(v)
	}
	return Err[T](err)
}

// AndThen chains a computation which may fail onto r.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
