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
	"github.com/uber-go/tally"

	"github.com/m3db/m3replica/src/x/instrument"
)

const (
	invalidateReasonTag = "reason"

	invalidateReasonTerminal  = "terminal"
	invalidateReasonInvalid   = "invalid-packet"
	invalidateReasonReadError = "read-error"
	invalidateReasonDrain     = "drain"
)

type coordinatorMetrics struct {
	receivePacket         instrument.MethodMetrics
	packetsDelivered      tally.Counter
	packetsSkipped        tally.Counter
	pollTimeouts          tally.Counter
	pollLatency           tally.Timer
	packetsDrained        tally.Counter
	drainErrors           tally.Counter
	invalidatedTerminal   tally.Counter
	invalidatedInvalid    tally.Counter
	invalidatedReadError  tally.Counter
	invalidatedDrain      tally.Counter
	unexpectedReplicas    tally.Counter
	noAvailableReplicas   tally.Counter
	externalTablesSends   tally.Counter
	externalTablesRejects tally.Counter
}

func newCoordinatorMetrics(scope tally.Scope, samplingRate float64) coordinatorMetrics {
	invalidated := func(reason string) tally.Counter {
		return scope.Tagged(map[string]string{invalidateReasonTag: reason}).
			Counter("replicas-invalidated")
	}
	return coordinatorMetrics{
		receivePacket:         instrument.NewMethodMetrics(scope, "receive-packet", samplingRate),
		packetsDelivered:      scope.Counter("packets-delivered"),
		packetsSkipped:        scope.Counter("packets-skipped"),
		pollTimeouts:          scope.Counter("poll-timeouts"),
		pollLatency:           instrument.MustCreateSampledTimer(scope.Timer("poll-latency"), samplingRate),
		packetsDrained:        scope.Counter("packets-drained"),
		drainErrors:           scope.Counter("drain-errors"),
		invalidatedTerminal:   invalidated(invalidateReasonTerminal),
		invalidatedInvalid:    invalidated(invalidateReasonInvalid),
		invalidatedReadError:  invalidated(invalidateReasonReadError),
		invalidatedDrain:      invalidated(invalidateReasonDrain),
		unexpectedReplicas:    scope.Counter("unexpected-replicas"),
		noAvailableReplicas:   scope.Counter("no-available-replicas"),
		externalTablesSends:   scope.Counter("external-tables-sends"),
		externalTablesRejects: scope.Counter("external-tables-rejects"),
	}
}

func (m coordinatorMetrics) invalidated(reason string) tally.Counter {
	switch reason {
	case invalidateReasonTerminal:
		return m.invalidatedTerminal
	case invalidateReasonInvalid:
		return m.invalidatedInvalid
	case invalidateReasonReadError:
		return m.invalidatedReadError
	default:
		return m.invalidatedDrain
	}
}
