// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

package ssz_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pk910/go-ssz-schema/ssz"
	"github.com/pk910/go-ssz-schema/ssztypes"
)

func TestValidate_UintOutOfRange(t *testing.T) {
	u8 := mustType(t, "uint8")
	err := ssz.Validate(uint64(256), u8)
	require.ErrorIs(t, err, ssz.ErrInvalidValue)
}

func TestValidate_UintNegativeBigInt(t *testing.T) {
	u256 := mustType(t, "uint256")
	err := ssz.Validate(big.NewInt(-1), u256)
	require.ErrorIs(t, err, ssz.ErrInvalidValue)
}

func TestValidate_PositiveInfinityRequiresUseNumberAndWideWidth(t *testing.T) {
	u64NoUseNumber := mustType(t, "uint64")
	err := ssz.Validate(ssz.PositiveInfinity, u64NoUseNumber)
	require.ErrorIs(t, err, ssz.ErrInvalidValue, "byteLength==8 with useNumber false must not accept the sentinel")

	u128UseNumber, err := ssztypes.NewUintType(16, ssztypes.WithUseNumber(true))
	require.NoError(t, err)
	require.NoError(t, ssz.Validate(ssz.PositiveInfinity, u128UseNumber))
}

func TestValidate_ByteVectorWrongLength(t *testing.T) {
	bv := mustType(t, "bytes4")
	err := ssz.Validate([]byte{1, 2, 3}, bv)
	require.ErrorIs(t, err, ssz.ErrInvalidValue)
}

func TestValidate_ListExceedsMaxLength(t *testing.T) {
	listT := mustType(t, ssztypes.ListSpec{Elem: "uint16", MaxLength: 2})
	err := ssz.Validate([]any{uint64(1), uint64(2), uint64(3)}, listT)
	require.ErrorIs(t, err, ssz.ErrInvalidValue)
}

func TestValidate_VectorWrongLength(t *testing.T) {
	vecT := mustType(t, ssztypes.VectorSpec{Elem: "uint8", Length: 3})
	err := ssz.Validate([]any{uint64(1), uint64(2)}, vecT)
	require.ErrorIs(t, err, ssz.ErrInvalidValue)
}

func TestValidate_ContainerMissingField(t *testing.T) {
	containerT := mustType(t, ssztypes.ContainerSpec{
		Name: "C",
		Fields: []ssztypes.FieldSpec{
			{Name: "a", Type: "uint8"},
			{Name: "b", Type: "bool"},
		},
	})
	c := ssz.NewContainer().Set("a", uint64(1))
	err := ssz.Validate(c, containerT)
	require.ErrorIs(t, err, ssz.ErrInvalidValue)
}

func TestValidate_ContainerFieldInvalid(t *testing.T) {
	containerT := mustType(t, ssztypes.ContainerSpec{
		Name: "C",
		Fields: []ssztypes.FieldSpec{
			{Name: "a", Type: "bool"},
		},
	})
	c := ssz.NewContainer().Set("a", "not a bool")
	err := ssz.Validate(c, containerT)
	require.ErrorIs(t, err, ssz.ErrInvalidValue)

	var ive *ssz.InvalidValueError
	require.ErrorAs(t, err, &ive)
	require.Equal(t, "a", ive.Path)
}

func TestValidate_NestedPathReporting(t *testing.T) {
	vecT := mustType(t, ssztypes.VectorSpec{Elem: "bool", Length: 2})
	err := ssz.Validate([]any{true, "oops"}, vecT)

	var ive *ssz.InvalidValueError
	require.ErrorAs(t, err, &ive)
	require.Equal(t, "[1]", ive.Path)
}
