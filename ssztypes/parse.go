// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package ssztypes

import (
	"strconv"
	"strings"
	"sync"
)

// Shorthand is the accepted input to ParseType: a primitive shorthand
// string, a VectorSpec/ListSpec/ContainerSpec composite, or an
// already-built *Type passed straight through.
//
// Go's static type system makes an untyped "sequence" shorthand ambiguous
// between List and Vector the way a dynamically-typed host language can get
// away with (spec §4.1's "a sequence containing exactly one type element" /
// "a sequence of (elementType, length)"); VectorSpec/ListSpec/ContainerSpec
// spell the same three composite shapes out unambiguously instead of
// sniffing a []any at runtime.
type Shorthand = any

// VectorSpec is the composite shorthand for Vector<Elem, Length>.
type VectorSpec struct {
	Elem   Shorthand
	Length int
}

// ListSpec is the composite shorthand for List<Elem, MaxLength>. With an
// Elem of plain uint8 it builds ByteList{MaxLength} instead.
type ListSpec struct {
	Elem      Shorthand
	MaxLength int
}

// FieldSpec is one named field of a ContainerSpec, in declaration order.
type FieldSpec struct {
	Name string
	Type Shorthand
}

// ContainerSpec is the composite shorthand for a Container.
type ContainerSpec struct {
	Name   string
	Fields []FieldSpec
}

var (
	primitiveCacheMu sync.RWMutex
	primitiveCache   = map[string]*Type{}
)

// ParseType normalizes a shorthand value into a fully-qualified *Type.
//
// Accepted string shorthands: "bool"; "uintN" for N in
// {8,16,32,64,128,256}; "bytesN" for any positive N (ByteVector{N}). The
// bare "bytes" string is rejected — spec §9 resolves the ambiguity of an
// implicit-unbounded ByteList by requiring every ByteList to carry an
// explicit maxLength, via NewByteListType or a ListSpec of bytes.
func ParseType(shorthand Shorthand) (*Type, error) {
	switch v := shorthand.(type) {
	case *Type:
		return v, nil
	case string:
		return parsePrimitiveString(v)
	case VectorSpec:
		elem, err := ParseType(v.Elem)
		if err != nil {
			return nil, err
		}
		return NewVectorType(elem, v.Length)
	case ListSpec:
		elem, err := ParseType(v.Elem)
		if err != nil {
			return nil, err
		}
		// A list of plain (unbiased) bytes is a ByteList, valued as []byte.
		if elem.Kind() == KindUint && elem.ByteLength() == 1 && elem.Offset().Sign() == 0 {
			return NewByteListType(v.MaxLength)
		}
		return NewListType(elem, v.MaxLength)
	case ContainerSpec:
		fields := make([]Field, len(v.Fields))
		for i, f := range v.Fields {
			fieldType, err := ParseType(f.Type)
			if err != nil {
				return nil, badType(joinPath(v.Name, f.Name), err.Error())
			}
			fields[i] = Field{Name: f.Name, Type: fieldType}
		}
		return NewContainerType(v.Name, fields)
	default:
		return nil, badType("", "unsupported shorthand value")
	}
}

func parsePrimitiveString(s string) (*Type, error) {
	primitiveCacheMu.RLock()
	cached, ok := primitiveCache[s]
	primitiveCacheMu.RUnlock()
	if ok {
		return cached, nil
	}

	t, err := buildPrimitiveString(s)
	if err != nil {
		return nil, err
	}

	primitiveCacheMu.Lock()
	primitiveCache[s] = t
	primitiveCacheMu.Unlock()
	return t, nil
}

func buildPrimitiveString(s string) (*Type, error) {
	if s == "bool" {
		return NewBoolType(), nil
	}

	if s == "bytes" {
		return nil, badType("", `"bytes" has no explicit maxLength; use ListSpec{Elem: "uint8", MaxLength: N} or NewByteListType`)
	}

	if rest, ok := strings.CutPrefix(s, "uint"); ok {
		bits, err := strconv.Atoi(rest)
		if err != nil {
			return nil, badType("", "unknown shorthand "+strconv.Quote(s))
		}
		if bits%8 != 0 {
			return nil, badType("", "unsupported uint width "+rest)
		}
		return NewUintType(bits / 8)
	}

	if rest, ok := strings.CutPrefix(s, "bytes"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n <= 0 {
			return nil, badType("", "unknown shorthand "+strconv.Quote(s))
		}
		return NewByteVectorType(n)
	}

	return nil, badType("", "unknown shorthand "+strconv.Quote(s))
}
