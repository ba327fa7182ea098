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

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacketTypeClass(t *testing.T) {
	tests := []struct {
		packetType PacketType
		expected   PacketClass
	}{
		{PacketData, ClassForwardable},
		{PacketProgress, ClassForwardable},
		{PacketProfileInfo, ClassForwardable},
		{PacketTotals, ClassForwardable},
		{PacketExtremes, ClassForwardable},
		{PacketEndOfStream, ClassTerminal},
		{PacketException, ClassTerminal},
		{PacketHello, ClassInvalid},
		{PacketPong, ClassInvalid},
		{PacketType(42), ClassInvalid},
		{PacketType(-1), ClassInvalid},
	}
	for _, test := range tests {
		t.Run(test.packetType.String(), func(t *testing.T) {
			assert.Equal(t, test.expected, test.packetType.Class())
			assert.Equal(t, test.expected, Packet{Type: test.packetType}.Class())
		})
	}
}

func TestPacketTypeKnownCodes(t *testing.T) {
	for code := PacketHello; code <= PacketExtremes; code++ {
		_, ok := packetTypes[code]
		require.True(t, ok, "code %d", int(code))
		assert.NotContains(t, code.String(), "Unknown")
	}
	assert.Equal(t, int(PacketExtremes)+1, len(packetTypes))
}

func TestPacketTypeString(t *testing.T) {
	assert.Equal(t, "EndOfStream", PacketEndOfStream.String())
	assert.Equal(t, "Unknown(42)", PacketType(42).String())
}

func TestExceptionError(t *testing.T) {
	e := &Exception{
		Code:    60,
		Name:    "DB::Exception",
		Message: "table doesn't exist",
		Nested: &Exception{
			Code:    999,
			Name:    "DB::NetException",
			Message: "connection reset",
		},
	}
	require.Equal(t,
		"code 60, DB::Exception: table doesn't exist: code 999, DB::NetException: connection reset",
		e.Error())

	p := NewExceptionPacket(e)
	assert.Equal(t, ClassTerminal, p.Class())
	assert.Contains(t, p.String(), "table doesn't exist")
}
