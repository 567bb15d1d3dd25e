// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package sszutils

// Encoder is the low-level sink the serializer writes bytes into. It is
// always backed by a single pre-sized buffer (spec: "the codec operates on
// in-memory byte buffers" — there is no streaming variant), trimmed to the
// primitives the serializer's reserve-then-patch offset table idiom
// actually drives.
type Encoder interface {
	GetPosition() int
	GetBuffer() []byte // the output buffer written so far
	EncodeBool(v bool)
	EncodeBytes(v []byte)
	EncodeOffsetAt(pos int, v uint32) // patches a previously reserved offset slot
	EncodeZeroPadding(n int)          // reserves an offset slot, patched later via EncodeOffsetAt
}
