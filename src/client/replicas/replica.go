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

// replica is the coordinator's view of a single connection.
type replica struct {
	conn   Connection
	handle int

	// isValid only ever goes from true to false. Invalid replicas are never
	// read from or written to again, except for query dispatch.
	isValid bool
	// canRead is set by the last readiness round.
	canRead bool
	// nextPacketNumber is the number of packets read from the connection.
	nextPacketNumber uint64
}

// replicaTable is the fixed, insertion ordered set of replicas of a query.
type replicaTable struct {
	replicas []*replica
	byHandle map[int]*replica
}

func newReplicaTable(conns []Connection) (replicaTable, error) {
	t := replicaTable{
		replicas: make([]*replica, 0, len(conns)),
		byHandle: make(map[int]*replica, len(conns)),
	}
	for _, conn := range conns {
		if conn == nil {
			return replicaTable{}, errNilConnection
		}
		handle := conn.Handle()
		if _, ok := t.byHandle[handle]; ok {
			return replicaTable{}, errDuplicateReplicaHandle
		}
		r := &replica{
			conn:    conn,
			handle:  handle,
			isValid: true,
		}
		t.replicas = append(t.replicas, r)
		t.byHandle[handle] = r
	}
	return t, nil
}

func (t replicaTable) len() int {
	return len(t.replicas)
}

func (t replicaTable) lookup(handle int) (*replica, bool) {
	r, ok := t.byHandle[handle]
	return r, ok
}

func (t replicaTable) validHandles(dst []int) []int {
	for _, r := range t.replicas {
		if r.isValid {
			dst = append(dst, r.handle)
		}
	}
	return dst
}
