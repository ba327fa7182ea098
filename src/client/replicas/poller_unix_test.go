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

//go:build linux || darwin || freebsd || netbsd || openbsd
// +build linux darwin freebsd netbsd openbsd

package replicas

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3db/m3replica/src/client/protocol"
)

func newPipe(t *testing.T) (*os.File, *os.File) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	return r, w
}

func TestFDPollerReadable(t *testing.T) {
	r1, _ := newPipe(t)
	r2, w2 := newPipe(t)

	_, err := w2.Write([]byte{1})
	require.NoError(t, err)

	p := NewPoller()
	ready, err := p.Poll([]int{int(r1.Fd()), int(r2.Fd())}, time.Second)
	require.NoError(t, err)
	require.Equal(t, []int{int(r2.Fd())}, ready)
}

func TestFDPollerTimeout(t *testing.T) {
	r, _ := newPipe(t)

	p := NewPoller()
	start := time.Now()
	ready, err := p.Poll([]int{int(r.Fd())}, 20*time.Millisecond)
	require.NoError(t, err)
	require.Empty(t, ready)
	assert.True(t, time.Since(start) >= 15*time.Millisecond)
}

func TestFDPollerHangup(t *testing.T) {
	r, w := newPipe(t)
	require.NoError(t, w.Close())

	ready, err := NewPoller().Poll([]int{int(r.Fd())}, time.Second)
	require.NoError(t, err)
	require.Equal(t, []int{int(r.Fd())}, ready)
}

func TestTimeoutMillis(t *testing.T) {
	assert.Equal(t, 0, timeoutMillis(0))
	assert.Equal(t, 1, timeoutMillis(time.Microsecond))
	assert.Equal(t, 1500, timeoutMillis(1500*time.Millisecond))
}

// pipeConn is a connection whose readiness is driven by a pipe.
type pipeConn struct {
	*testConn
	r *os.File
	w *os.File
}

func (c *pipeConn) Handle() int { return int(c.r.Fd()) }

func (c *pipeConn) ReceivePacket() (protocol.Packet, error) {
	var b [1]byte
	if _, err := c.r.Read(b[:]); err != nil {
		return protocol.Packet{}, err
	}
	return c.testConn.ReceivePacket()
}

func (c *pipeConn) push(t *testing.T, n int) {
	_, err := c.w.Write(make([]byte, n))
	require.NoError(t, err)
}

func TestCoordinatorWithFDPoller(t *testing.T) {
	r1, w1 := newPipe(t)
	r2, w2 := newPipe(t)
	a := &pipeConn{testConn: newTestConn(0, dataPackets(2)...), r: r1, w: w1}
	b := &pipeConn{testConn: newTestConn(0, dataPackets(2)...), r: r2, w: w2}

	opts, _ := newTestOptions(t, NewPoller())
	c, err := NewCoordinator([]Connection{a, b}, opts.SetPollInterval(time.Second))
	require.NoError(t, err)

	// Only b has data: it wins the first round.
	b.push(t, 1)
	p, err := c.ReceivePacket()
	require.NoError(t, err)
	require.Equal(t, b.packets[0], p)

	// a catches up, skipping the packet b already returned.
	a.push(t, 2)
	p, err = c.ReceivePacket()
	require.NoError(t, err)
	require.Equal(t, a.packets[1], p)
	require.Equal(t, 2, a.reads)

	// a ends the stream, b is drained.
	a.push(t, 1)
	b.push(t, 2)
	p, err = c.ReceivePacket()
	require.NoError(t, err)
	require.Equal(t, protocol.PacketEndOfStream, p.Type)
	require.Equal(t, 3, b.reads)
	require.Equal(t, 1, b.cancels)
	require.Equal(t, uint64(3), c.NextPacketNumber())
}
