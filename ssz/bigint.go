// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package ssz

import "math/big"

// positiveInfinity is the sentinel value for a wide Uint (byteLength > 6,
// useNumber set) that cannot be represented as a native number by the
// caller. It encodes as all-ones and is otherwise treated as equivalent to
// the maximum representable value for that width (spec §9 DESIGN NOTES).
type positiveInfinity struct{}

// PositiveInfinity is the sentinel accepted in place of a concrete *big.Int
// or uint64 for a Uint field with byteLength > 6 and useNumber set.
var PositiveInfinity any = positiveInfinity{}

// uintBound returns 2^(8*byteLength), the exclusive upper bound for a Uint
// of the given width.
func uintBound(byteLength int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(8*byteLength))
}

// asBigInt normalizes the two accepted native Uint value shapes (uint64 for
// narrow widths, *big.Int for wide ones — either is accepted regardless of
// width, spec §3 "widths <= 6 bytes may be represented as native integers")
// into a *big.Int for range checking and arithmetic. The bool result is
// false if v is neither shape.
func asBigInt(v any) (*big.Int, bool) {
	switch x := v.(type) {
	case uint64:
		return new(big.Int).SetUint64(x), true
	case *big.Int:
		if x == nil {
			return nil, false
		}
		return x, true
	default:
		return nil, false
	}
}

// leBytes renders value as a byteLength-wide little-endian byte sequence.
// value must already be known to fit in [0, 2^(8*byteLength)).
func leBytes(value *big.Int, byteLength int) []byte {
	be := value.Bytes() // big-endian, minimal length
	out := make([]byte, byteLength)
	for i, b := range be {
		pos := len(be) - 1 - i
		if pos < byteLength {
			out[pos] = b
		}
	}
	return out
}

// bigIntFromLE parses a little-endian byte sequence into a *big.Int.
func bigIntFromLE(data []byte) *big.Int {
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}

func allOnes(byteLength int) []byte {
	out := make([]byte, byteLength)
	for i := range out {
		out[i] = 0xFF
	}
	return out
}

func isAllOnes(data []byte) bool {
	for _, b := range data {
		if b != 0xFF {
			return false
		}
	}
	return true
}

// fitsInUint64 reports whether a Uint of byteLength is decoded as a native
// uint64 (used to decide whether Deserialize returns uint64 or *big.Int for a Uint
// field, per the byteLength <= 8 / > 8 split in the Go value model).
func fitsInUint64(byteLength int) bool {
	return byteLength <= 8
}
