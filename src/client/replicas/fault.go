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

	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"

	"github.com/m3db/m3replica/src/client/protocol"
	xerrors "github.com/m3db/m3replica/src/x/errors"
)

var errEmptyException = errors.New("exception packet without exception")

// cancelAndDrain cancels the query on every valid replica and then reads
// each of them to the end of its stream.
func (c *coordinator) cancelAndDrain() error {
	span := c.tracer.StartSpan("replicas.cancel-and-drain")
	defer span.Finish()
	span.SetTag("replicas.valid", c.validReplicasCount)

	multiErr := c.sendCancelToValid(xerrors.NewMultiError())
	multiErr = c.drainResidual(multiErr)
	if multiErr.Empty() {
		return nil
	}

	ext.Error.Set(span, true)
	span.SetTag("replicas.errors", multiErr.NumErrors())
	c.metrics.drainErrors.Inc(int64(multiErr.NumErrors()))
	return &ResidualPacketsError{errs: multiErr}
}

func (c *coordinator) drainResidual(multiErr xerrors.MultiError) xerrors.MultiError {
	for _, r := range c.table.replicas {
		if !r.isValid {
			continue
		}
		if err := c.drain(r); err != nil {
			c.logger.Error("error draining replica",
				zap.String("address", r.conn.ServerAddress()),
				zap.Error(err))
			multiErr = multiErr.Add(newReplicaError(r.conn.ServerAddress(), err))
		}
	}
	return multiErr
}

// drain reads from the replica until its stream ends. The replica is
// invalidated if it stops making protocol sense.
func (c *coordinator) drain(r *replica) error {
	for {
		packet, err := r.conn.ReceivePacket()
		if err != nil {
			c.invalidate(r, invalidateReasonDrain)
			return err
		}
		r.nextPacketNumber++

		switch packet.Class() {
		case protocol.ClassForwardable:
			c.metrics.packetsDrained.Inc(1)
		case protocol.ClassTerminal:
			if packet.Type != protocol.PacketException {
				return nil
			}
			if packet.Exception == nil {
				return errEmptyException
			}
			return packet.Exception
		default:
			c.invalidate(r, invalidateReasonDrain)
			return fmt.Errorf("unexpected packet while draining: %s", packet.Type)
		}
	}
}
