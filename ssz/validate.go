// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package ssz

import (
	"github.com/pk910/go-ssz-schema/sszutils"
	"github.com/pk910/go-ssz-schema/ssztypes"
)

// Validate asserts v conforms to t, recursing into aggregates and
// accumulating a dotted path for diagnostics (spec §4.3). It returns nil or
// an *InvalidValueError.
func Validate(v any, t *ssztypes.Type) error {
	return validateAt("", v, t)
}

func validateAt(path string, v any, t *ssztypes.Type) error {
	switch t.Kind() {
	case ssztypes.KindBool:
		if _, ok := v.(bool); !ok {
			return invalidValue(path, "expected bool")
		}
		return nil

	case ssztypes.KindUint:
		return validateUint(path, v, t)

	case ssztypes.KindByteVector:
		b, ok := v.([]byte)
		if !ok {
			return invalidValue(path, "expected []byte")
		}
		if len(b) != t.Length() {
			return invalidValueWrap(path, sszutils.ErrVectorLength, "byte vector length mismatch")
		}
		return nil

	case ssztypes.KindByteList:
		b, ok := v.([]byte)
		if !ok {
			return invalidValue(path, "expected []byte")
		}
		if len(b) > t.MaxLength() {
			return invalidValueWrap(path, sszutils.ErrListTooBig, "byte list exceeds maxLength")
		}
		return nil

	case ssztypes.KindVector:
		elems, ok := v.([]any)
		if !ok {
			return invalidValue(path, "expected []any")
		}
		if len(elems) != t.Length() {
			return invalidValueWrap(path, sszutils.ErrVectorLength, "vector length mismatch")
		}
		for i, e := range elems {
			if err := validateAt(joinPath(path, indexPath(i)), e, t.Elem()); err != nil {
				return err
			}
		}
		return nil

	case ssztypes.KindList:
		elems, ok := v.([]any)
		if !ok {
			return invalidValue(path, "expected []any")
		}
		if len(elems) > t.MaxLength() {
			return invalidValueWrap(path, sszutils.ErrListTooBig, "list exceeds maxLength")
		}
		for i, e := range elems {
			if err := validateAt(joinPath(path, indexPath(i)), e, t.Elem()); err != nil {
				return err
			}
		}
		return nil

	case ssztypes.KindContainer:
		c, ok := v.(*Container)
		if !ok {
			return invalidValue(path, "expected *ssz.Container")
		}
		fields := t.Fields()
		if c.Len() != len(fields) {
			return invalidValue(path, "container field count mismatch")
		}
		for _, f := range fields {
			fv, ok := c.Get(f.Name)
			if !ok {
				return invalidValue(joinPath(path, f.Name), "missing field")
			}
			if err := validateAt(joinPath(path, f.Name), fv, f.Type); err != nil {
				return err
			}
		}
		return nil

	default:
		return invalidValue(path, "unknown type kind")
	}
}

func validateUint(path string, v any, t *ssztypes.Type) error {
	byteLength := t.ByteLength()

	if _, isInf := v.(positiveInfinity); isInf {
		if byteLength > 6 && t.UseNumber() {
			return nil
		}
		// Explicit resolution of spec §9 Open Question 1: the sentinel is
		// honored only for byteLength > 6 with useNumber set, never for a
		// plain 64-bit field even though 8 > 6 — useNumber must be set too.
		return invalidValue(path, "PositiveInfinity sentinel requires byteLength > 6 and useNumber")
	}

	val, ok := asBigInt(v)
	if !ok {
		return invalidValue(path, "expected uint64 or *big.Int")
	}
	if val.Sign() < 0 {
		return invalidValue(path, "uint value must be non-negative")
	}
	if val.Cmp(uintBound(byteLength)) >= 0 {
		return invalidValue(path, "uint value out of range")
	}
	return nil
}
