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

// Package protocol describes the server packets and client requests exchanged
// with a database server, as seen by the replica coordinator.
package protocol

import (
	"fmt"
	"io"
	"strings"
)

// PacketType is the code of a packet sent by the server.
type PacketType int

// Server packet codes.
const (
	PacketHello PacketType = iota
	PacketData
	PacketException
	PacketProgress
	PacketPong
	PacketEndOfStream
	PacketProfileInfo
	PacketTotals
	PacketExtremes
)

type packetTypeInfo struct {
	name  string
	class PacketClass
}

var packetTypes = map[PacketType]packetTypeInfo{
	PacketHello:       {name: "Hello", class: ClassInvalid},
	PacketData:        {name: "Data", class: ClassForwardable},
	PacketException:   {name: "Exception", class: ClassTerminal},
	PacketProgress:    {name: "Progress", class: ClassForwardable},
	PacketPong:        {name: "Pong", class: ClassInvalid},
	PacketEndOfStream: {name: "EndOfStream", class: ClassTerminal},
	PacketProfileInfo: {name: "ProfileInfo", class: ClassForwardable},
	PacketTotals:      {name: "Totals", class: ClassForwardable},
	PacketExtremes:    {name: "Extremes", class: ClassForwardable},
}

func (t PacketType) String() string {
	if info, ok := packetTypes[t]; ok {
		return info.name
	}
	return fmt.Sprintf("Unknown(%d)", int(t))
}

// PacketClass is the role a packet plays in a result stream.
type PacketClass int

const (
	// ClassInvalid is a packet that must not appear in a result stream.
	ClassInvalid PacketClass = iota
	// ClassForwardable is a packet whose payload is passed to the caller as is.
	ClassForwardable
	// ClassTerminal is a packet that ends a result stream.
	ClassTerminal
)

func (c PacketClass) String() string {
	switch c {
	case ClassForwardable:
		return "forwardable"
	case ClassTerminal:
		return "terminal"
	default:
		return "invalid"
	}
}

// Class returns the class of the packet type. Unknown codes are invalid.
func (t PacketType) Class() PacketClass {
	if info, ok := packetTypes[t]; ok {
		return info.class
	}
	return ClassInvalid
}

// Packet is a single packet read from a server connection.
type Packet struct {
	Type PacketType
	// Payload is the opaque body of forwardable packets.
	Payload []byte
	// Exception is set for PacketException.
	Exception *Exception
}

// Class returns the class of the packet.
func (p Packet) Class() PacketClass {
	return p.Type.Class()
}

func (p Packet) String() string {
	if p.Type == PacketException && p.Exception != nil {
		return fmt.Sprintf("%s: %s", p.Type, p.Exception.Error())
	}
	return fmt.Sprintf("%s(%d bytes)", p.Type, len(p.Payload))
}

// NewEndOfStreamPacket returns an end of stream packet.
func NewEndOfStreamPacket() Packet {
	return Packet{Type: PacketEndOfStream}
}

// NewExceptionPacket returns an exception packet carrying the given exception.
func NewExceptionPacket(e *Exception) Packet {
	return Packet{Type: PacketException, Exception: e}
}

// NewDataPacket returns a data packet with the given payload.
func NewDataPacket(payload []byte) Packet {
	return Packet{Type: PacketData, Payload: payload}
}

// Exception is an error reported by the server.
type Exception struct {
	Code       int32
	Name       string
	Message    string
	StackTrace string
	Nested     *Exception
}

func (e *Exception) Error() string {
	var b strings.Builder
	for curr := e; curr != nil; curr = curr.Nested {
		if curr != e {
			b.WriteString(": ")
		}
		fmt.Fprintf(&b, "code %d, %s: %s", curr.Code, curr.Name, curr.Message)
	}
	return b.String()
}

// QueryProcessingStage is the stage up to which the server processes a query.
type QueryProcessingStage uint64

// Query processing stages.
const (
	StageFetchColumns QueryProcessingStage = iota
	StageWithMergeableState
	StageComplete
)

// Settings are per query server settings.
type Settings map[string]string

// Query is a query sent to every replica.
type Query struct {
	Text            string
	ID              string
	Stage           QueryProcessingStage
	Settings        Settings
	WithPendingData bool
}

// ExternalTable is a temporary table shipped alongside a query.
type ExternalTable struct {
	Name string
	Data io.Reader
}

// ExternalTablesData is the set of external tables sent to a single replica.
type ExternalTablesData []ExternalTable
