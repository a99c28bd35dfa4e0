// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package errs implements the error values returned by the kernels, the graph and the drivers
package errs

import (
	"errors"
	"strings"

	"github.com/cpmech/gosl/io"
)

// Kind classifies failures
type Kind int

const (
	Precondition Kind = iota // wrong sizes, non-unit normals, det(χnl) ≤ 0, wrong number of parameters
	Numerical                // non-convergence, line search failure, singular systems
	Propagated               // relayed from a dependency
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case Precondition:
		return "precondition"
	case Numerical:
		return "numerical"
	}
	return "propagated"
}

// Error holds a failure and the chain of callers that relayed it
type Error struct {
	Kind Kind   // classification
	Func string // function raising or relaying the error
	Msg  string // message
	Err  error  // inner error, if any
}

// Error implements the error interface. The message of every link is included
func (o *Error) Error() string {
	if o.Err == nil {
		return io.Sf("%s: %s", o.Func, o.Msg)
	}
	if o.Msg == "" {
		return io.Sf("%s:\n%v", o.Func, o.Err)
	}
	return io.Sf("%s: %s:\n%v", o.Func, o.Msg, o.Err)
}

// Unwrap returns the inner error
func (o *Error) Unwrap() error { return o.Err }

// New returns a new error of given kind
func New(kind Kind, fn, msg string, prm ...interface{}) error {
	return &Error{Kind: kind, Func: fn, Msg: io.Sf(msg, prm...)}
}

// Prec returns a precondition error
func Prec(fn, msg string, prm ...interface{}) error {
	return New(Precondition, fn, msg, prm...)
}

// Num returns a numerical error
func Num(fn, msg string, prm ...interface{}) error {
	return New(Numerical, fn, msg, prm...)
}

// Size returns a precondition error for an input with the wrong number of entries
func Size(fn, name string, observed, expected int) error {
	return New(Precondition, fn, "%s has %d entries but %d were expected", name, observed, expected)
}

// CheckSize returns a Size error if len(v) != expected; nil otherwise
func CheckSize(fn, name string, v []float64, expected int) error {
	if len(v) != expected {
		return Size(fn, name, len(v), expected)
	}
	return nil
}

// Wrap adds a link to the chain. It returns nil if err is nil
func Wrap(fn string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: Propagated, Func: fn, Err: err}
}

// Wrapf adds a link with a message to the chain. It returns nil if err is nil
func Wrapf(fn string, err error, msg string, prm ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: Propagated, Func: fn, Msg: io.Sf(msg, prm...), Err: err}
}

// Root returns the innermost *Error in the chain or nil if there is none
func Root(err error) (root *Error) {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return
		}
		root = e
		err = e.Err
	}
	return
}

// KindOf returns the kind of the error that started the chain
func KindOf(err error) Kind {
	if r := Root(err); r != nil {
		return r.Kind
	}
	return Propagated
}

// Trace returns one line per link, outermost first
func Trace(err error) string {
	var sb strings.Builder
	depth := 0
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			sb.WriteString(io.Sf("%s%v\n", strings.Repeat("  ", depth), err))
			break
		}
		line := e.Func
		if e.Msg != "" {
			line += ": " + e.Msg
		}
		if e.Kind != Propagated {
			line += io.Sf(" [%v]", e.Kind)
		}
		sb.WriteString(strings.Repeat("  ", depth) + line + "\n")
		err = e.Err
		depth++
	}
	return sb.String()
}
