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
	"fmt"
	"time"

	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"

	"github.com/m3db/m3replica/src/client/protocol"
)

type coordinator struct {
	poller       Poller
	pollInterval time.Duration
	separator    string
	logger       *zap.Logger
	tracer       opentracing.Tracer
	metrics      coordinatorMetrics
	nowFn        NowFn

	table   replicaTable
	handles []int

	// nextPacketNumber is the position of the next packet returned to the
	// caller; it only ever grows by one per returned packet.
	nextPacketNumber   uint64
	validReplicasCount int
}

// NewCoordinator creates a coordinator over established connections that
// run the same query. No I/O is performed.
func NewCoordinator(conns []Connection, opts Options) (Coordinator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	table, err := newReplicaTable(conns)
	if err != nil {
		return nil, err
	}

	iOpts := opts.InstrumentOptions()
	scope := iOpts.MetricsScope().SubScope("replicas")
	return &coordinator{
		poller:             opts.Poller(),
		pollInterval:       opts.PollInterval(),
		separator:          opts.AddressSeparator(),
		logger:             iOpts.Logger(),
		tracer:             iOpts.Tracer(),
		metrics:            newCoordinatorMetrics(scope, iOpts.MetricsSamplingRate()),
		nowFn:              time.Now,
		table:              table,
		handles:            make([]int, 0, table.len()),
		validReplicasCount: table.len(),
	}, nil
}

// NewCoordinatorFromPool creates a coordinator over the connections the pool
// hands out for a query.
func NewCoordinatorFromPool(pool ConnectionPool, opts Options) (Coordinator, error) {
	conns, err := pool.GetMany()
	if err != nil {
		return nil, fmt.Errorf("unable to get replica connections: %w", err)
	}
	return NewCoordinator(conns, opts)
}

func (c *coordinator) ValidReplicasCount() int {
	return c.validReplicasCount
}

func (c *coordinator) NextPacketNumber() uint64 {
	return c.nextPacketNumber
}

func (c *coordinator) PollReady() (int, error) {
	for _, r := range c.table.replicas {
		r.canRead = false
	}
	if c.validReplicasCount == 0 {
		return 0, nil
	}

	c.handles = c.table.validHandles(c.handles[:0])
	start := c.nowFn()
	ready, err := c.poller.Poll(c.handles, c.pollInterval)
	c.metrics.pollLatency.Record(c.nowFn().Sub(start))
	if err != nil {
		return 0, fmt.Errorf("unable to poll replicas: %w", err)
	}

	for _, handle := range ready {
		if r, ok := c.table.lookup(handle); !ok || !r.isValid {
			c.metrics.unexpectedReplicas.Inc(1)
			return 0, &UnexpectedReplicaError{Handle: handle}
		}
	}

	n := 0
	for _, handle := range ready {
		r, _ := c.table.lookup(handle)
		if !r.canRead {
			r.canRead = true
			n++
		}
	}

	if n == 0 {
		c.metrics.pollTimeouts.Inc(1)
		c.logger.Debug("no replica ready within poll interval",
			zap.Duration("pollInterval", c.pollInterval),
			zap.Int("validReplicas", c.validReplicasCount))
	}
	return n, nil
}

// pick returns the most advanced readable replica. Ties go to the replica
// that comes first in the table.
func (c *coordinator) pick() (*replica, error) {
	n, err := c.PollReady()
	if err != nil {
		return nil, err
	}

	var res *replica
	if n > 0 {
		for _, r := range c.table.replicas {
			if !r.isValid || !r.canRead {
				continue
			}
			if res == nil || r.nextPacketNumber > res.nextPacketNumber {
				res = r
			}
		}
	}

	if res == nil {
		c.metrics.noAvailableReplicas.Inc(1)
		return nil, ErrNoAvailableReplica
	}
	return res, nil
}

func (c *coordinator) ReceivePacket() (protocol.Packet, error) {
	start := c.nowFn()
	packet, err := c.receivePacket()
	c.metrics.receivePacket.ReportSuccessOrError(err, c.nowFn().Sub(start))
	return packet, err
}

func (c *coordinator) receivePacket() (protocol.Packet, error) {
	for {
		r, err := c.pick()
		if err != nil {
			return protocol.Packet{}, err
		}

		retry := false
		for r.isValid {
			packet, err := r.conn.ReceivePacket()
			if err != nil {
				c.invalidate(r, invalidateReasonReadError)
				c.logger.Warn("unable to read packet from replica",
					zap.String("address", r.conn.ServerAddress()),
					zap.Int("validReplicas", c.validReplicasCount),
					zap.Error(err))
				return protocol.Packet{}, newReplicaError(r.conn.ServerAddress(), err)
			}

			var drainErr error
			switch packet.Class() {
			case protocol.ClassForwardable:
			case protocol.ClassTerminal:
				// Nothing else is read from the others: cancel them and consume
				// what they already sent so their connections stay in sync.
				c.invalidate(r, invalidateReasonTerminal)
				drainErr = c.cancelAndDrain()
			default:
				c.invalidate(r, invalidateReasonInvalid)
				c.logger.Warn("invalid packet from replica",
					zap.String("address", r.conn.ServerAddress()),
					zap.Stringer("packetType", packet.Type),
					zap.Int("validReplicas", c.validReplicasCount))
				if c.validReplicasCount > 0 {
					retry = true
				}
			}

			position := r.nextPacketNumber
			r.nextPacketNumber++
			if position == c.nextPacketNumber && !retry {
				c.nextPacketNumber++
				c.metrics.packetsDelivered.Inc(1)
				return packet, drainErr
			}

			retry = false
			c.metrics.packetsSkipped.Inc(1)
			if drainErr != nil {
				return protocol.Packet{}, drainErr
			}
		}
	}
}

func (c *coordinator) invalidate(r *replica, reason string) {
	if !r.isValid {
		return
	}
	r.isValid = false
	r.canRead = false
	c.validReplicasCount--
	c.metrics.invalidated(reason).Inc(1)
}
