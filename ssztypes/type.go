// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package ssztypes

import (
	"math/big"
)

// DefaultMaxDepth bounds the nesting depth of a Type descriptor tree
// (Container-of-List-of-Vector-of-Container-of-...). It exists so a
// maliciously or accidentally self-referential schema fails fast at
// construction time instead of exhausting the call stack the first time a
// recursive serialize/validate/size walk touches it (spec §5).
const DefaultMaxDepth = 64

// MaxDepth is the depth bound enforced by the aggregate constructors
// (NewVectorType, NewListType, NewContainerType). It is a package variable
// rather than a per-call option because descriptors are built once and
// reused for the lifetime of a process; callers with legitimately deep
// schemas can raise it before constructing their types.
var MaxDepth = DefaultMaxDepth

// validUintByteLengths are the only widths the wire format defines.
var validUintByteLengths = map[int]bool{1: true, 2: true, 4: true, 8: true, 16: true, 32: true}

// Field is one (name, type) pair of a Container, in declaration order.
type Field struct {
	Name string
	Type *Type
}

// Type is the closed, immutable descriptor for a single SSZ type. Build one
// with the New*Type constructors or ParseType — the zero Type is not a
// valid descriptor.
type Type struct {
	kind  Kind
	depth int

	// Uint
	byteLength int
	useNumber  bool
	offset     *big.Int

	// ByteVector / Vector: element count
	// ByteList / List: maximum element count
	length    int
	maxLength int

	// Vector / List
	elem *Type

	// Container
	name       string
	fields     []Field
	fieldIndex map[string]int
}

func (t *Type) Kind() Kind        { return t.kind }
func (t *Type) ByteLength() int   { return t.byteLength }
func (t *Type) UseNumber() bool   { return t.useNumber }
func (t *Type) Length() int       { return t.length }
func (t *Type) MaxLength() int    { return t.maxLength }
func (t *Type) Elem() *Type       { return t.elem }
func (t *Type) Name() string      { return t.name }
func (t *Type) Fields() []Field   { return t.fields }

// Offset returns the additive bias applied to a Uint value before encoding
// (spec §9: "encoded = value + offset"), defaulting to big.NewInt(0).
func (t *Type) Offset() *big.Int {
	if t.offset == nil {
		return big.NewInt(0)
	}
	return t.offset
}

// FieldIndex returns the declaration-order index of a Container field name.
func (t *Type) FieldIndex(name string) (int, bool) {
	idx, ok := t.fieldIndex[name]
	return idx, ok
}

// IsVariableSize reports whether the serialized length of a value of this
// type depends on the value itself (spec §3, the is_variable_size predicate).
func (t *Type) IsVariableSize() bool {
	switch t.kind {
	case KindByteList, KindList:
		return true
	case KindVector:
		return t.elem.IsVariableSize()
	case KindContainer:
		for _, f := range t.fields {
			if f.Type.IsVariableSize() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// NewBoolType returns the singleton-shaped Bool descriptor.
func NewBoolType() *Type {
	return &Type{kind: KindBool}
}

// UintOption configures an optional Uint parameter.
type UintOption func(*Type)

// WithOffset sets the additive offset biasing the encoded value (default 0).
func WithOffset(offset *big.Int) UintOption {
	return func(t *Type) {
		if offset == nil {
			t.offset = nil
			return
		}
		t.offset = new(big.Int).Set(offset)
	}
}

// WithUseNumber marks a wide Uint (byteLength > 6) as accepting the
// PositiveInfinity sentinel, which encodes as all-ones (spec §4.3, §9).
func WithUseNumber(useNumber bool) UintOption {
	return func(t *Type) {
		t.useNumber = useNumber
	}
}

// NewUintType builds a Uint descriptor. byteLength must be one of
// {1,2,4,8,16,32}; any other value is a BadTypeError.
func NewUintType(byteLength int, opts ...UintOption) (*Type, error) {
	if !validUintByteLengths[byteLength] {
		return nil, badType("", "uint byteLength must be one of 1, 2, 4, 8, 16, 32")
	}
	t := &Type{kind: KindUint, byteLength: byteLength}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// NewByteVectorType builds a fixed-length byte sequence descriptor.
func NewByteVectorType(length int) (*Type, error) {
	if length <= 0 {
		return nil, badType("", "ByteVector length must be positive")
	}
	return &Type{kind: KindByteVector, length: length}, nil
}

// NewByteListType builds a bounded-length byte sequence descriptor.
// maxLength must be explicit and positive; spec §9 resolves the "bytes"
// shorthand's implicit-unbounded ambiguity by requiring this everywhere.
func NewByteListType(maxLength int) (*Type, error) {
	if maxLength <= 0 {
		return nil, badType("", "ByteList maxLength must be positive")
	}
	return &Type{kind: KindByteList, maxLength: maxLength}, nil
}

// NewVectorType builds a fixed-length homogeneous sequence descriptor.
func NewVectorType(elem *Type, length int) (*Type, error) {
	if elem == nil {
		return nil, badType("", "Vector element type is required")
	}
	if length <= 0 {
		return nil, badType("", "Vector length must be positive")
	}
	depth := elem.depth + 1
	if depth > MaxDepth {
		return nil, badType("", "type nesting exceeds MaxDepth")
	}
	return &Type{kind: KindVector, elem: elem, length: length, depth: depth}, nil
}

// NewListType builds a bounded-length homogeneous sequence descriptor.
func NewListType(elem *Type, maxLength int) (*Type, error) {
	if elem == nil {
		return nil, badType("", "List element type is required")
	}
	if maxLength <= 0 {
		return nil, badType("", "List maxLength must be positive")
	}
	depth := elem.depth + 1
	if depth > MaxDepth {
		return nil, badType("", "type nesting exceeds MaxDepth")
	}
	return &Type{kind: KindList, elem: elem, maxLength: maxLength, depth: depth}, nil
}

// NewContainerType builds a Container descriptor from an ordered field list.
// Field names must be unique; this is validated once, here, rather than on
// every serialize call.
func NewContainerType(name string, fields []Field) (*Type, error) {
	if len(fields) == 0 {
		return nil, badType(name, "Container must declare at least one field")
	}

	maxDepth := 0
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Type == nil {
			return nil, badType(joinPath(name, f.Name), "field type is required")
		}
		if _, dup := index[f.Name]; dup {
			return nil, badType(name, "duplicate field name "+f.Name)
		}
		index[f.Name] = i
		if f.Type.depth > maxDepth {
			maxDepth = f.Type.depth
		}
	}

	depth := maxDepth + 1
	if depth > MaxDepth {
		return nil, badType(name, "type nesting exceeds MaxDepth")
	}

	return &Type{
		kind:       KindContainer,
		name:       name,
		fields:     append([]Field(nil), fields...),
		fieldIndex: index,
		depth:      depth,
	}, nil
}
