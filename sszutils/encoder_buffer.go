// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package sszutils

import (
	"encoding/binary"
)

// BufferEncoder writes into a single pre-sized buffer at a monotonically
// advancing position, with EncodeOffsetAt allowing the serializer to patch
// an earlier offset slot once a variable-size child's length is known.
type BufferEncoder struct {
	buffer []byte
	pos    int
}

var _ Encoder = (*BufferEncoder)(nil)

// NewBufferEncoder creates a new BufferEncoder using the provided buffer.
// The buffer should have sufficient capacity for the expected output.
func NewBufferEncoder(buffer []byte) *BufferEncoder {
	return &BufferEncoder{
		buffer: buffer[:cap(buffer)],
		pos:    len(buffer),
	}
}

func (e *BufferEncoder) GetPosition() int {
	return e.pos
}

func (e *BufferEncoder) GetBuffer() []byte {
	return e.buffer[:e.pos]
}

func (e *BufferEncoder) EncodeBool(v bool) {
	if v {
		e.buffer[e.pos] = 0x01
	} else {
		e.buffer[e.pos] = 0x00
	}
	e.pos++
}

func (e *BufferEncoder) EncodeBytes(v []byte) {
	copy(e.buffer[e.pos:], v)
	e.pos += len(v)
}

func (e *BufferEncoder) EncodeOffsetAt(pos int, v uint32) {
	binary.LittleEndian.PutUint32(e.buffer[pos:], v)
}

func (e *BufferEncoder) EncodeZeroPadding(n int) {
	clear(e.buffer[e.pos : e.pos+n])
	e.pos += n
}
