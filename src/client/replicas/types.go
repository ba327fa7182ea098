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
	"time"

	"github.com/m3db/m3replica/src/client/protocol"
	"github.com/m3db/m3replica/src/x/instrument"
)

// Connection is an established connection to a single replica. Connections
// are owned by whoever supplied them; the coordinator only closes them
// through Disconnect.
type Connection interface {
	// Handle returns the pollable file descriptor of the connection.
	Handle() int

	// ServerAddress returns the address of the server.
	ServerAddress() string

	// SendQuery sends a query to the server.
	SendQuery(query protocol.Query) error

	// ReceivePacket blocks until the next packet is read from the server.
	ReceivePacket() (protocol.Packet, error)

	// SendCancel asks the server to cancel the running query.
	SendCancel() error

	// Disconnect closes the connection.
	Disconnect() error

	// SendExternalTablesData sends temporary tables used by the query.
	SendExternalTablesData(data protocol.ExternalTablesData) error
}

// ConnectionPool supplies the connections used for a single query.
type ConnectionPool interface {
	// GetMany returns established connections to distinct replicas.
	GetMany() ([]Connection, error)
}

// Poller waits for handles to become readable.
type Poller interface {
	// Poll blocks until at least one of the handles is readable or the
	// timeout elapses, and returns the readable handles. An empty result
	// means the timeout elapsed.
	Poll(handles []int, timeout time.Duration) ([]int, error)
}

// Coordinator multiplexes a single query over several replicas, returning
// one deduplicated stream of packets.
type Coordinator interface {
	// PollReady waits up to the poll interval for valid replicas to become
	// readable and returns how many did.
	PollReady() (int, error)

	// ReceivePacket returns the next packet of the result stream. Together
	// with a terminal packet it may return a *ResidualPacketsError describing
	// failures met while draining the other replicas; the packet must be
	// processed before the error.
	ReceivePacket() (protocol.Packet, error)

	// SendQuery sends the query to every replica.
	SendQuery(query protocol.Query) error

	// SendExternalTablesData sends one data source to each replica, in order.
	SendExternalTablesData(data []protocol.ExternalTablesData) error

	// SendCancel sends a cancel request to every valid replica.
	SendCancel() error

	// Disconnect disconnects every valid replica.
	Disconnect() error

	// DumpAddresses returns the addresses of valid replicas.
	DumpAddresses() string

	// ValidReplicasCount returns the number of valid replicas.
	ValidReplicasCount() int

	// NextPacketNumber returns the position of the next packet to be returned.
	NextPacketNumber() uint64
}

// Options are the coordinator options.
type Options interface {
	// Validate validates the options.
	Validate() error

	// SetInstrumentOptions sets the instrument options.
	SetInstrumentOptions(value instrument.Options) Options

	// InstrumentOptions returns the instrument options.
	InstrumentOptions() instrument.Options

	// SetPollInterval sets how long a readiness round waits for a replica.
	SetPollInterval(value time.Duration) Options

	// PollInterval returns how long a readiness round waits for a replica.
	PollInterval() time.Duration

	// SetPoller sets the readiness poller.
	SetPoller(value Poller) Options

	// Poller returns the readiness poller.
	Poller() Poller

	// SetAddressSeparator sets the separator used by DumpAddresses.
	SetAddressSeparator(value string) Options

	// AddressSeparator returns the separator used by DumpAddresses.
	AddressSeparator() string
}
