// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package errors provides utilities for working with different types of errors.
package errors

import (
	"bytes"
	"errors"
)

// InnerError returns the packaged inner error if this is an error that
// contains another.
func InnerError(err error) error {
	contained, ok := err.(containedError) //nolint:errorlint
	if !ok {
		return nil
	}
	return contained.innerError()
}

type containedError interface {
	innerError() error
}

type renamedError struct {
	renamed error
	inner   error
}

// NewRenamedError returns a new error that packages an inner error with
// a renamed error.
func NewRenamedError(inner, renamed error) error {
	return renamedError{renamed: renamed, inner: inner}
}

func (e renamedError) Error() string {
	return e.renamed.Error()
}

func (e renamedError) innerError() error {
	return e.inner
}

func (e renamedError) Unwrap() error {
	return e.inner
}

type invalidParamsError struct {
	err error
}

// NewInvalidParamsError creates a new invalid params error.
func NewInvalidParamsError(inner error) error {
	return invalidParamsError{err: inner}
}

func (e invalidParamsError) Error() string {
	return e.err.Error()
}

func (e invalidParamsError) innerError() error {
	return e.err
}

func (e invalidParamsError) Unwrap() error {
	return e.err
}

// IsInvalidParams returns true if this is an invalid params error.
func IsInvalidParams(err error) bool {
	return GetInnerInvalidParamsError(err) != nil
}

// GetInnerInvalidParamsError returns an inner invalid params error
// if contained by this error, nil otherwise.
func GetInnerInvalidParamsError(err error) error {
	for err != nil {
		if _, ok := err.(invalidParamsError); ok { //nolint:errorlint
			return InnerError(err)
		}
		err = InnerError(err)
	}
	return nil
}

// MultiError is an immutable error that packages a list of errors.
type MultiError struct {
	err    error // optimization for single error case
	errors []error
}

// NewMultiError creates a new MultiError object.
func NewMultiError() MultiError {
	return MultiError{}
}

// Empty returns true if the MultiError has no errors.
func (e MultiError) Empty() bool {
	return e.err == nil
}

func (e MultiError) Error() string {
	if e.err == nil {
		return ""
	}
	if len(e.errors) == 0 {
		return e.err.Error()
	}
	var b bytes.Buffer
	for i, err := range e.errors {
		b.WriteString(err.Error())
		if i < len(e.errors)-1 {
			b.WriteString(", ")
		}
	}
	b.WriteString(", ")
	b.WriteString(e.err.Error())
	return b.String()
}

// Errors returns all errors contained in the MultiError.
func (e MultiError) Errors() []error {
	if e.err == nil {
		return nil
	}
	errs := make([]error, 0, len(e.errors)+1)
	errs = append(errs, e.errors...)
	return append(errs, e.err)
}

// Contains returns true if any of the errors match the provided error
// using errors.Is.
func (e MultiError) Contains(err error) bool {
	for _, curr := range e.Errors() {
		if errors.Is(curr, err) {
			return true
		}
	}
	return false
}

// Add adds an error returns a new MultiError object.
func (e MultiError) Add(err error) MultiError {
	if err == nil {
		return e
	}
	me := e
	if me.err == nil {
		me.err = err
		return me
	}
	me.errors = append(me.errors, me.err)
	me.err = err
	return me
}

// FinalError returns all concatenated error messages if any.
func (e MultiError) FinalError() error {
	if e.err == nil {
		return nil
	}
	if len(e.errors) == 0 {
		return e.err
	}
	return e
}

// LastError returns the last received error if any.
func (e MultiError) LastError() error {
	return e.err
}

// NumErrors returns the total number of errors.
func (e MultiError) NumErrors() int {
	if e.err == nil {
		return 0
	}
	return len(e.errors) + 1
}
