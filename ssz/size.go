// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package ssz

import "github.com/pk910/go-ssz-schema/ssztypes"

// BytesPerLengthPrefix is the width of every offset slot: P in spec §4.2.
const BytesPerLengthPrefix = 4

// FixedSize returns the serialized length of any value of t, valid only
// when t is not variable-size. Calling it on a variable-size type returns
// ErrNotFixedSize.
func FixedSize(t *ssztypes.Type) (int, error) {
	if t.IsVariableSize() {
		return 0, ErrNotFixedSize
	}
	switch t.Kind() {
	case ssztypes.KindBool:
		return 1, nil
	case ssztypes.KindUint:
		return t.ByteLength(), nil
	case ssztypes.KindByteVector:
		return t.Length(), nil
	case ssztypes.KindVector:
		elemSize, err := FixedSize(t.Elem())
		if err != nil {
			return 0, err
		}
		return t.Length() * elemSize, nil
	case ssztypes.KindContainer:
		total := 0
		for _, f := range t.Fields() {
			fieldSize, err := FixedSize(f.Type)
			if err != nil {
				return 0, err
			}
			total += fieldSize
		}
		return total, nil
	default:
		return 0, ErrNotFixedSize
	}
}

// Size returns the serialized length of v under t, defined for every valid
// (v, t) pair (spec §4.2). It does not validate v beyond what it needs to
// compute a length — call Validate first for a complete conformance check.
func Size(v any, t *ssztypes.Type) (int, error) {
	if !t.IsVariableSize() {
		return FixedSize(t)
	}

	switch t.Kind() {
	case ssztypes.KindByteList:
		b, ok := v.([]byte)
		if !ok {
			return 0, invalidValue("", "expected []byte for ByteList")
		}
		return len(b), nil

	case ssztypes.KindList:
		elems, ok := v.([]any)
		if !ok {
			return 0, invalidValue("", "expected []any for List")
		}
		elem := t.Elem()
		if !elem.IsVariableSize() {
			elemSize, err := FixedSize(elem)
			if err != nil {
				return 0, err
			}
			return len(elems) * elemSize, nil
		}
		total := len(elems) * BytesPerLengthPrefix
		for i, ev := range elems {
			s, err := Size(ev, elem)
			if err != nil {
				return 0, pathError(err, indexPath(i))
			}
			total += s
		}
		return total, nil

	case ssztypes.KindContainer:
		c, ok := v.(*Container)
		if !ok {
			return 0, invalidValue("", "expected *ssz.Container for Container")
		}
		total := 0
		for _, f := range t.Fields() {
			if !f.Type.IsVariableSize() {
				fieldSize, err := FixedSize(f.Type)
				if err != nil {
					return 0, err
				}
				total += fieldSize
				continue
			}
			fv, ok := c.Get(f.Name)
			if !ok {
				return 0, invalidValue(f.Name, "missing field")
			}
			s, err := Size(fv, f.Type)
			if err != nil {
				return 0, pathError(err, f.Name)
			}
			total += BytesPerLengthPrefix + s
		}
		return total, nil

	default:
		// KindVector with a variable-size element is the only remaining
		// variable-size case: same offset-table shape as List, fixed count.
		elems, ok := v.([]any)
		if !ok {
			return 0, invalidValue("", "expected []any for Vector")
		}
		elem := t.Elem()
		total := len(elems) * BytesPerLengthPrefix
		for i, ev := range elems {
			s, err := Size(ev, elem)
			if err != nil {
				return 0, pathError(err, indexPath(i))
			}
			total += s
		}
		return total, nil
	}
}
