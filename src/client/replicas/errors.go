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

package replicas

import (
	"errors"
	"fmt"

	xerrors "github.com/m3db/m3replica/src/x/errors"
)

var (
	// ErrNoAvailableReplica is returned when no replica is ready to be read,
	// either because none is valid anymore or because the poll timed out.
	ErrNoAvailableReplica = errors.New("no available replica")

	// ErrMismatchReplicasDataSources is returned when the number of external
	// tables data sources differs from the number of replicas.
	ErrMismatchReplicasDataSources = errors.New("mismatch between replicas and data sources")

	errNilConnection          = errors.New("nil replica connection")
	errDuplicateReplicaHandle = errors.New("duplicate replica handle")
)

// UnexpectedReplicaError is returned when the poller reports a handle that
// does not belong to any replica.
type UnexpectedReplicaError struct {
	Handle int
}

func (e *UnexpectedReplicaError) Error() string {
	return fmt.Sprintf("unexpected replica: handle %d", e.Handle)
}

// IsUnexpectedReplica returns true if the error is an unexpected replica error.
func IsUnexpectedReplica(err error) bool {
	var target *UnexpectedReplicaError
	return errors.As(err, &target)
}

// ResidualPacketsError holds the failures met while draining replicas after
// another replica ended its stream.
type ResidualPacketsError struct {
	errs xerrors.MultiError
}

func (e *ResidualPacketsError) Error() string {
	return fmt.Sprintf("draining replicas failed: %s", e.errs.Error())
}

// Errors returns the per replica failures, each annotated with the address
// of the replica.
func (e *ResidualPacketsError) Errors() []error {
	return e.errs.Errors()
}

// Unwrap returns the aggregated failures.
func (e *ResidualPacketsError) Unwrap() error {
	return e.errs.FinalError()
}

// IsResidualPackets returns true if the error is a residual packets error.
func IsResidualPackets(err error) bool {
	var target *ResidualPacketsError
	return errors.As(err, &target)
}

func newReplicaError(address string, err error) error {
	return xerrors.NewRenamedError(err, fmt.Errorf("replica %s: %v", address, err))
}
