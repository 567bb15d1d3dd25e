// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package ssz

import (
	"github.com/pk910/go-ssz-schema/sszutils"
	"github.com/pk910/go-ssz-schema/ssztypes"
)

// Deserialize is the mirror image of Serialize: it recovers a value of
// shape t from data, enforcing every layout rule in spec §4.5 (offset
// monotonicity, first-offset-equals-fixedLen, no offset past buffer end).
//
// Unlike spec.md §4.5, which treats the decoder as a contract the encoder's
// layout must honor and defers the algorithm to implementers, this package
// implements it fully — a codec needs both directions to exercise the §8
// round-trip property.
func Deserialize(data []byte, t *ssztypes.Type) (any, error) {
	dec := sszutils.NewBufferDecoder(data)
	v, err := readValue(dec, t)
	if err != nil {
		return nil, err
	}
	if dec.GetPosition() != len(data) {
		return nil, invalidValue("", "trailing bytes after decode")
	}
	return v, nil
}

func readValue(dec *sszutils.BufferDecoder, t *ssztypes.Type) (any, error) {
	switch t.Kind() {
	case ssztypes.KindBool:
		b, err := dec.DecodeBool()
		if err != nil {
			return nil, invalidValue("", err.Error())
		}
		return b, nil

	case ssztypes.KindUint:
		return readUint(dec, t)

	case ssztypes.KindByteVector:
		buf, err := dec.DecodeBytesBuf(t.Length())
		if err != nil {
			return nil, invalidValue("", err.Error())
		}
		return append([]byte(nil), buf...), nil

	case ssztypes.KindByteList:
		n := dec.GetLength()
		if n > t.MaxLength() {
			return nil, invalidValueWrap("", sszutils.ErrListTooBig, "byte list exceeds maxLength")
		}
		buf, err := dec.DecodeBytesBuf(n)
		if err != nil {
			return nil, invalidValue("", err.Error())
		}
		return append([]byte(nil), buf...), nil

	case ssztypes.KindVector:
		return readVector(dec, t)

	case ssztypes.KindList:
		return readList(dec, t)

	case ssztypes.KindContainer:
		return readContainer(dec, t)

	default:
		return nil, invalidValue("", "unknown type kind")
	}
}

func readUint(dec *sszutils.BufferDecoder, t *ssztypes.Type) (any, error) {
	byteLength := t.ByteLength()
	buf, err := dec.DecodeBytesBuf(byteLength)
	if err != nil {
		return nil, invalidValue("", err.Error())
	}

	if byteLength > 6 && t.UseNumber() && isAllOnes(buf) {
		return PositiveInfinity, nil
	}

	val := bigIntFromLE(buf)
	val.Sub(val, t.Offset())

	if fitsInUint64(byteLength) {
		return val.Uint64(), nil
	}
	return val, nil
}

func readVector(dec *sszutils.BufferDecoder, t *ssztypes.Type) (any, error) {
	elem := t.Elem()
	n := t.Length()

	if !elem.IsVariableSize() {
		vals := make([]any, n)
		for i := 0; i < n; i++ {
			v, err := readValue(dec, elem)
			if err != nil {
				return nil, pathError(err, indexPath(i))
			}
			vals[i] = v
		}
		return vals, nil
	}

	return readVariableSequence(dec, elem, n)
}

func readList(dec *sszutils.BufferDecoder, t *ssztypes.Type) (any, error) {
	elem := t.Elem()

	if !elem.IsVariableSize() {
		total := dec.GetLength()
		if total == 0 {
			return []any{}, nil
		}
		elemSize, err := FixedSize(elem)
		if err != nil {
			return nil, err
		}
		if elemSize == 0 || total%elemSize != 0 {
			return nil, invalidValue("", "list byte length is not a multiple of its element size")
		}
		n := total / elemSize
		if n > t.MaxLength() {
			return nil, invalidValueWrap("", sszutils.ErrListTooBig, "list exceeds maxLength")
		}
		vals := make([]any, n)
		for i := 0; i < n; i++ {
			v, err := readValue(dec, elem)
			if err != nil {
				return nil, pathError(err, indexPath(i))
			}
			vals[i] = v
		}
		return vals, nil
	}

	total := dec.GetLength()
	if total == 0 {
		return []any{}, nil
	}

	first, err := dec.DecodeOffset()
	if err != nil {
		return nil, invalidValue("", err.Error())
	}
	if first%BytesPerLengthPrefix != 0 {
		return nil, invalidValueWrap("", sszutils.ErrOffset, "first offset is not a multiple of the length prefix")
	}
	n := int(first) / BytesPerLengthPrefix
	if n > t.MaxLength() {
		return nil, invalidValueWrap("", sszutils.ErrListTooBig, "list exceeds maxLength")
	}

	return readVariableBody(dec, elem, n, first, total)
}

// readVariableSequence reads a fixed element count n of variable-size
// elements: the offset table, then each body scoped by PushLimit.
func readVariableSequence(dec *sszutils.BufferDecoder, elem *ssztypes.Type, n int) (any, error) {
	total := dec.GetLength()
	if n == 0 {
		return []any{}, nil
	}
	first, err := dec.DecodeOffset()
	if err != nil {
		return nil, invalidValue("", err.Error())
	}
	return readVariableBody(dec, elem, n, first, total)
}

// readVariableBody reads the remaining n-1 offsets (first has already been
// consumed) and then each element body in sequence, validating the
// offset-table-monotonicity invariant (spec §3 Invariant 5, §4.5).
func readVariableBody(dec *sszutils.BufferDecoder, elem *ssztypes.Type, n int, first uint32, total int) (any, error) {
	if first != uint32(n*BytesPerLengthPrefix) {
		return nil, invalidValueWrap("", sszutils.ErrOffset, "first offset does not match the fixed region length")
	}

	offsets := make([]uint32, n)
	offsets[0] = first
	for i := 1; i < n; i++ {
		off, err := dec.DecodeOffset()
		if err != nil {
			return nil, invalidValue("", err.Error())
		}
		if off < offsets[i-1] {
			return nil, invalidValueWrap("", sszutils.ErrOffset, "offsets are not monotonically non-decreasing")
		}
		offsets[i] = off
	}

	vals := make([]any, n)
	for i := 0; i < n; i++ {
		var childLen uint32
		if i+1 < n {
			childLen = offsets[i+1] - offsets[i]
		} else {
			if uint32(total) < offsets[i] {
				return nil, invalidValueWrap("", sszutils.ErrOffset, "offset exceeds buffer length")
			}
			childLen = uint32(total) - offsets[i]
		}
		dec.PushLimit(int(childLen))
		v, err := readValue(dec, elem)
		leftover := dec.PopLimit()
		if err != nil {
			return nil, pathError(err, indexPath(i))
		}
		if leftover != 0 {
			return nil, invalidValue(indexPath(i), "element did not consume its full byte range")
		}
		vals[i] = v
	}
	return vals, nil
}

func readContainer(dec *sszutils.BufferDecoder, t *ssztypes.Type) (any, error) {
	fields := t.Fields()
	total := dec.GetLength()

	values := make([]any, len(fields))
	var offsets []uint32
	var varIdx []int

	for i, f := range fields {
		if f.Type.IsVariableSize() {
			off, err := dec.DecodeOffset()
			if err != nil {
				return nil, invalidValue(f.Name, err.Error())
			}
			offsets = append(offsets, off)
			varIdx = append(varIdx, i)
			continue
		}
		v, err := readValue(dec, f.Type)
		if err != nil {
			return nil, pathError(err, f.Name)
		}
		values[i] = v
	}

	fixedLen := 0
	for _, f := range fields {
		if f.Type.IsVariableSize() {
			fixedLen += BytesPerLengthPrefix
		} else {
			fs, err := FixedSize(f.Type)
			if err != nil {
				return nil, err
			}
			fixedLen += fs
		}
	}

	if len(offsets) > 0 && offsets[0] != uint32(fixedLen) {
		return nil, invalidValueWrap("", sszutils.ErrOffset, "first offset does not match the fixed region length")
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, invalidValueWrap("", sszutils.ErrOffset, "offsets are not monotonically non-decreasing")
		}
	}

	for i, off := range offsets {
		fieldIdx := varIdx[i]
		var childLen uint32
		if i+1 < len(offsets) {
			childLen = offsets[i+1] - off
		} else {
			if uint32(total) < off {
				return nil, invalidValueWrap(fields[fieldIdx].Name, sszutils.ErrOffset, "offset exceeds buffer length")
			}
			childLen = uint32(total) - off
		}
		dec.PushLimit(int(childLen))
		v, err := readValue(dec, fields[fieldIdx].Type)
		leftover := dec.PopLimit()
		if err != nil {
			return nil, pathError(err, fields[fieldIdx].Name)
		}
		if leftover != 0 {
			return nil, invalidValue(fields[fieldIdx].Name, "field did not consume its full byte range")
		}
		values[fieldIdx] = v
	}

	c := NewContainer()
	for i, f := range fields {
		c.Set(f.Name, values[i])
	}
	return c, nil
}
