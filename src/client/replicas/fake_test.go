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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"

	"github.com/m3db/m3replica/src/client/protocol"
	"github.com/m3db/m3replica/src/x/instrument"
)

var errStreamExhausted = errors.New("stream exhausted")

// testConn replays a fixed stream of packets.
type testConn struct {
	handle  int
	address string
	packets []protocol.Packet
	// errAt makes the read at the given index fail.
	errAt map[int]error

	reads       int
	errReads    int
	cancels     int
	disconnects int
	queries     []protocol.Query
	tables      []protocol.ExternalTablesData
	cancelErr   error
}

func newTestConn(handle int, packets ...protocol.Packet) *testConn {
	return &testConn{
		handle:  handle,
		address: fmt.Sprintf("replica-%d:9000", handle),
		packets: packets,
	}
}

func (c *testConn) Handle() int          { return c.handle }
func (c *testConn) ServerAddress() string { return c.address }

func (c *testConn) SendQuery(q protocol.Query) error {
	c.queries = append(c.queries, q)
	return nil
}

func (c *testConn) ReceivePacket() (protocol.Packet, error) {
	if err, ok := c.errAt[c.reads]; ok {
		c.reads++
		c.errReads++
		return protocol.Packet{}, err
	}
	if c.reads >= len(c.packets) {
		return protocol.Packet{}, errStreamExhausted
	}
	p := c.packets[c.reads]
	c.reads++
	return p, nil
}

func (c *testConn) SendCancel() error {
	c.cancels++
	return c.cancelErr
}

func (c *testConn) Disconnect() error {
	c.disconnects++
	return nil
}

func (c *testConn) SendExternalTablesData(data protocol.ExternalTablesData) error {
	c.tables = append(c.tables, data)
	return nil
}

func (c *testConn) hasData() bool {
	for idx := range c.errAt {
		if idx >= c.reads {
			return true
		}
	}
	return c.reads < len(c.packets)
}

// scriptedPoller reports the scripted handles for each round, limited to the
// submitted handles. Once the script runs out every submitted connection
// with unread data is ready.
type scriptedPoller struct {
	conns  map[int]*testConn
	rounds [][]int
	polls  int
}

func newScriptedPoller(conns []*testConn, rounds ...[]int) *scriptedPoller {
	p := &scriptedPoller{conns: make(map[int]*testConn, len(conns)), rounds: rounds}
	for _, c := range conns {
		p.conns[c.handle] = c
	}
	return p
}

func (p *scriptedPoller) Poll(handles []int, _ time.Duration) ([]int, error) {
	round := p.polls
	p.polls++

	submitted := make(map[int]struct{}, len(handles))
	for _, h := range handles {
		submitted[h] = struct{}{}
	}

	var ready []int
	if round < len(p.rounds) {
		for _, h := range p.rounds[round] {
			if _, ok := submitted[h]; ok {
				ready = append(ready, h)
			}
		}
		return ready, nil
	}
	for _, h := range handles {
		if p.conns[h].hasData() {
			ready = append(ready, h)
		}
	}
	return ready, nil
}

func newTestOptions(t *testing.T, poller Poller) (Options, tally.TestScope) {
	scope := tally.NewTestScope("", nil)
	iOpts := instrument.NewTestOptions(t).SetMetricsScope(scope)
	opts := NewOptions().
		SetInstrumentOptions(iOpts).
		SetPollInterval(time.Millisecond).
		SetPoller(poller)
	return opts, scope
}

func newTestCoordinator(t *testing.T, poller Poller, conns ...Connection) (*coordinator, tally.TestScope) {
	opts, scope := newTestOptions(t, poller)
	c, err := NewCoordinator(conns, opts)
	require.NoError(t, err)
	return c.(*coordinator), scope
}

func asConnections(conns ...*testConn) []Connection {
	res := make([]Connection, 0, len(conns))
	for _, c := range conns {
		res = append(res, c)
	}
	return res
}

func dataPackets(n int) []protocol.Packet {
	packets := make([]protocol.Packet, 0, n+1)
	for i := 0; i < n; i++ {
		packets = append(packets, protocol.NewDataPacket([]byte{byte(i)}))
	}
	return append(packets, protocol.NewEndOfStreamPacket())
}

// requireTableInvariants checks the invariants that hold between operations.
func requireTableInvariants(t *testing.T, c *coordinator) {
	valid := 0
	for _, r := range c.table.replicas {
		if r.isValid {
			valid++
		}
		conn, ok := r.conn.(*testConn)
		if ok {
			require.Equal(t, uint64(conn.reads-conn.errReads), r.nextPacketNumber,
				"replica %s counter must match packets read", conn.address)
		}
	}
	require.Equal(t, valid, c.ValidReplicasCount())
}
