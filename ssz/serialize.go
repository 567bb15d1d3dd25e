// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package ssz

import (
	"math/big"

	"github.com/pk910/go-ssz-schema/sszutils"
	"github.com/pk910/go-ssz-schema/ssztypes"
)

// Serialize writes v into a freshly allocated, exactly-sized byte slice
// per t (spec §4.4): normalize (t is already a *ssztypes.Type), validate,
// size, allocate, dispatch.
func Serialize(v any, t *ssztypes.Type) ([]byte, error) {
	if err := Validate(v, t); err != nil {
		return nil, err
	}
	size, err := Size(v, t)
	if err != nil {
		return nil, err
	}

	enc := sszutils.NewBufferEncoder(make([]byte, 0, size))
	if err := writeValue(enc, v, t); err != nil {
		return nil, err
	}

	out := enc.GetBuffer()
	if len(out) != size {
		return nil, bufferOverrun("", "writer stopped short of computed size")
	}
	return out, nil
}

// writeValue dispatches on t.Kind(), writing v into enc (spec §4.4
// Dispatcher). It advances the encoder's position by exactly size(v, t).
func writeValue(enc sszutils.Encoder, v any, t *ssztypes.Type) error {
	switch t.Kind() {
	case ssztypes.KindBool:
		enc.EncodeBool(v.(bool))
		return nil

	case ssztypes.KindUint:
		return writeUint(enc, v, t)

	case ssztypes.KindByteVector, ssztypes.KindByteList:
		enc.EncodeBytes(v.([]byte))
		return nil

	case ssztypes.KindVector, ssztypes.KindList:
		return writeSequence(enc, v.([]any), t.Elem())

	case ssztypes.KindContainer:
		return writeContainer(enc, v.(*Container), t)

	default:
		return bufferOverrun("", "unknown type kind")
	}
}

// writeUint writes value + offset in little-endian across byteLength bytes
// (spec §4.4 Uint), or all-ones when the PositiveInfinity sentinel applies.
func writeUint(enc sszutils.Encoder, v any, t *ssztypes.Type) error {
	byteLength := t.ByteLength()
	if _, isInf := v.(positiveInfinity); isInf {
		enc.EncodeBytes(allOnes(byteLength))
		return nil
	}

	val, _ := asBigInt(v)
	biased := new(big.Int).Add(val, t.Offset())
	enc.EncodeBytes(leBytes(biased, byteLength))
	return nil
}

// writeSequence writes a Vector or List whose declared element type is
// elem. Fixed-size elements are written contiguously; variable-size
// elements get an offset table followed by their bodies (spec §4.4 Array).
// The offset table is reserved as zero padding and patched in place once
// each element's body has been written and its length is known, mirroring
// the teacher's marshalDynamicList.
func writeSequence(enc sszutils.Encoder, elems []any, elem *ssztypes.Type) error {
	if !elem.IsVariableSize() {
		for i, e := range elems {
			if err := writeValue(enc, e, elem); err != nil {
				return pathError(err, indexPath(i))
			}
		}
		return nil
	}

	n := len(elems)
	startPos := enc.GetPosition()
	enc.EncodeZeroPadding(n * BytesPerLengthPrefix)

	bufLen := enc.GetPosition()
	offset := n * BytesPerLengthPrefix
	for i, e := range elems {
		if err := writeValue(enc, e, elem); err != nil {
			return pathError(err, indexPath(i))
		}
		enc.EncodeOffsetAt(startPos+i*BytesPerLengthPrefix, uint32(offset))
		newPos := enc.GetPosition()
		offset += newPos - bufLen
		bufLen = newPos
	}
	return nil
}

// writeContainer writes each field in declared order: fixed-size fields go
// directly into the fixed region, variable-size fields get a 4-byte offset
// slot in the fixed region and their body in the variable region (spec
// §4.4 Container). The offset slots are reserved inline as the fixed
// region is written, then patched once each variable field's body has been
// written, mirroring the teacher's marshalContainer.
func writeContainer(enc sszutils.Encoder, c *Container, t *ssztypes.Type) error {
	fields := t.Fields()
	startPos := enc.GetPosition()

	var varSlots []int
	var varFields []ssztypes.Field
	for _, f := range fields {
		if f.Type.IsVariableSize() {
			varSlots = append(varSlots, enc.GetPosition())
			enc.EncodeZeroPadding(BytesPerLengthPrefix)
			varFields = append(varFields, f)
			continue
		}
		fv, _ := c.Get(f.Name)
		if err := writeValue(enc, fv, f.Type); err != nil {
			return pathError(err, f.Name)
		}
	}

	bufLen := enc.GetPosition()
	offset := bufLen - startPos
	for i, f := range varFields {
		fv, _ := c.Get(f.Name)
		if err := writeValue(enc, fv, f.Type); err != nil {
			return pathError(err, f.Name)
		}
		enc.EncodeOffsetAt(varSlots[i], uint32(offset))
		newPos := enc.GetPosition()
		offset += newPos - bufLen
		bufLen = newPos
	}
	return nil
}
