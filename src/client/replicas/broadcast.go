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
	"strings"

	"github.com/m3db/m3replica/src/client/protocol"
	xerrors "github.com/m3db/m3replica/src/x/errors"
)

// SendQuery is sent to every replica regardless of validity since it is
// issued before any packet is read.
func (c *coordinator) SendQuery(query protocol.Query) error {
	multiErr := xerrors.NewMultiError()
	for _, r := range c.table.replicas {
		if err := r.conn.SendQuery(query); err != nil {
			multiErr = multiErr.Add(newReplicaError(r.conn.ServerAddress(), err))
		}
	}
	return multiErr.FinalError()
}

func (c *coordinator) SendExternalTablesData(data []protocol.ExternalTablesData) error {
	if len(data) != c.table.len() {
		c.metrics.externalTablesRejects.Inc(1)
		return xerrors.NewInvalidParamsError(fmt.Errorf("%w: %d data sources for %d replicas",
			ErrMismatchReplicasDataSources, len(data), c.table.len()))
	}

	multiErr := xerrors.NewMultiError()
	for i, r := range c.table.replicas {
		if err := r.conn.SendExternalTablesData(data[i]); err != nil {
			multiErr = multiErr.Add(newReplicaError(r.conn.ServerAddress(), err))
		}
	}
	c.metrics.externalTablesSends.Inc(int64(c.table.len()))
	return multiErr.FinalError()
}

func (c *coordinator) SendCancel() error {
	return c.sendCancelToValid(xerrors.NewMultiError()).FinalError()
}

func (c *coordinator) sendCancelToValid(multiErr xerrors.MultiError) xerrors.MultiError {
	for _, r := range c.table.replicas {
		if !r.isValid {
			continue
		}
		if err := r.conn.SendCancel(); err != nil {
			multiErr = multiErr.Add(newReplicaError(r.conn.ServerAddress(), err))
		}
	}
	return multiErr
}

// Disconnect closes the valid replicas' connections. Their table entries stay.
func (c *coordinator) Disconnect() error {
	multiErr := xerrors.NewMultiError()
	for _, r := range c.table.replicas {
		if !r.isValid {
			continue
		}
		if err := r.conn.Disconnect(); err != nil {
			multiErr = multiErr.Add(newReplicaError(r.conn.ServerAddress(), err))
		}
	}
	return multiErr.FinalError()
}

func (c *coordinator) DumpAddresses() string {
	if c.validReplicasCount == 0 {
		return ""
	}

	var (
		b     strings.Builder
		first = true
	)
	for _, r := range c.table.replicas {
		if !r.isValid {
			continue
		}
		if !first {
			b.WriteString(c.separator)
		}
		first = false
		b.WriteString(r.conn.ServerAddress())
	}
	return b.String()
}
