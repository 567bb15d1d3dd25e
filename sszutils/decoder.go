// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package sszutils

// Decoder is the low-level source the deserializer reads bytes from,
// always backed by the full in-memory SSZ buffer (see Encoder), trimmed to
// the primitives the recursive readValue dispatch actually drives.
type Decoder interface {
	GetPosition() int // current read position
	GetLength() int   // remaining bytes within the innermost limit
	PushLimit(limit int)
	PopLimit() int // returns bytes left unconsumed within the popped limit
	DecodeBool() (bool, error)
	DecodeBytesBuf(n int) ([]byte, error)
	DecodeOffset() (uint32, error)
}
