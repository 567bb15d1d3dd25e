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

func roundtrip(t *testing.T, v any, ty *ssztypes.Type) any {
	t.Helper()
	out, err := ssz.Serialize(v, ty)
	require.NoError(t, err)

	size, err := ssz.Size(v, ty)
	require.NoError(t, err)
	require.Len(t, out, size, "invariant 1: size faithfulness")

	again, err := ssz.Serialize(v, ty)
	require.NoError(t, err)
	require.Equal(t, out, again, "invariant 3: determinism")

	decoded, err := ssz.Deserialize(out, ty)
	require.NoError(t, err)
	return decoded
}

func TestRoundtrip_Bool(t *testing.T) {
	boolT := mustType(t, "bool")
	require.Equal(t, true, roundtrip(t, true, boolT))
	require.Equal(t, false, roundtrip(t, false, boolT))
}

func TestRoundtrip_Uint64(t *testing.T) {
	u64 := mustType(t, "uint64")
	require.Equal(t, uint64(123456789), roundtrip(t, uint64(123456789), u64))
}

func TestRoundtrip_Uint256(t *testing.T) {
	u256 := mustType(t, "uint256")
	value := new(big.Int).Lsh(big.NewInt(1), 200)
	decoded := roundtrip(t, value, u256)
	require.Equal(t, 0, value.Cmp(decoded.(*big.Int)))
}

func TestRoundtrip_Uint128_PositiveInfinitySentinel(t *testing.T) {
	u128, err := ssztypes.NewUintType(16, ssztypes.WithUseNumber(true))
	require.NoError(t, err)

	decoded := roundtrip(t, ssz.PositiveInfinity, u128)
	require.Equal(t, ssz.PositiveInfinity, decoded)
}

func TestRoundtrip_UintOffset(t *testing.T) {
	withOffset, err := ssztypes.NewUintType(4, ssztypes.WithOffset(big.NewInt(10)))
	require.NoError(t, err)

	decoded := roundtrip(t, uint64(5), withOffset)
	require.Equal(t, uint64(5), decoded)
}

func TestRoundtrip_ByteVector(t *testing.T) {
	bv := mustType(t, "bytes4")
	decoded := roundtrip(t, []byte{1, 2, 3, 4}, bv)
	require.Equal(t, []byte{1, 2, 3, 4}, decoded)
}

func TestRoundtrip_ByteList(t *testing.T) {
	bl := mustType(t, ssztypes.ListSpec{Elem: "uint8", MaxLength: 64})
	decoded := roundtrip(t, []byte{9, 8, 7}, bl)
	require.Equal(t, []byte{9, 8, 7}, decoded)
}

func TestRoundtrip_VectorOfUint32(t *testing.T) {
	vecT := mustType(t, ssztypes.VectorSpec{Elem: "uint32", Length: 3})
	value := []any{uint64(10), uint64(20), uint64(30)}
	require.Equal(t, value, roundtrip(t, value, vecT))
}

func TestRoundtrip_ListOfUint32(t *testing.T) {
	listT := mustType(t, ssztypes.ListSpec{Elem: "uint32", MaxLength: 16})
	value := []any{uint64(10), uint64(20), uint64(30)}
	require.Equal(t, value, roundtrip(t, value, listT))
}

func TestRoundtrip_EmptyList(t *testing.T) {
	listT := mustType(t, ssztypes.ListSpec{Elem: "uint32", MaxLength: 16})
	decoded := roundtrip(t, []any{}, listT)
	require.Equal(t, []any{}, decoded)
}

func TestRoundtrip_NestedVariableList(t *testing.T) {
	innerT := mustType(t, ssztypes.ListSpec{Elem: "uint32", MaxLength: 16})
	outerT := mustType(t, ssztypes.ListSpec{Elem: innerT, MaxLength: 16})
	value := []any{
		[]any{uint64(1)},
		[]any{uint64(2), uint64(3)},
	}
	require.Equal(t, value, roundtrip(t, value, outerT))
}

func TestRoundtrip_FixedContainer(t *testing.T) {
	containerT := mustType(t, ssztypes.ContainerSpec{
		Name: "Fixed",
		Fields: []ssztypes.FieldSpec{
			{Name: "a", Type: "uint16"},
			{Name: "b", Type: "bool"},
			{Name: "c", Type: "bytes3"},
		},
	})
	c := ssz.NewContainer().Set("a", uint64(0x0102)).Set("b", true).Set("c", []byte{0xaa, 0xbb, 0xcc})

	decoded := roundtrip(t, c, containerT).(*ssz.Container)
	require.Equal(t, 3, decoded.Len())
	a, _ := decoded.Get("a")
	require.Equal(t, uint64(0x0102), a)
}

func TestRoundtrip_ContainerFieldOrderIndependenceOfInput(t *testing.T) {
	containerT := mustType(t, ssztypes.ContainerSpec{
		Name: "Fixed",
		Fields: []ssztypes.FieldSpec{
			{Name: "a", Type: "uint16"},
			{Name: "b", Type: "bool"},
		},
	})

	c1 := ssz.NewContainer().Set("a", uint64(7)).Set("b", true)
	c2 := ssz.NewContainer().Set("b", true).Set("a", uint64(7))

	out1, err := ssz.Serialize(c1, containerT)
	require.NoError(t, err)
	out2, err := ssz.Serialize(c2, containerT)
	require.NoError(t, err)
	require.Equal(t, out1, out2, "invariant 6: declared order wins regardless of Set order")
}

func TestDeserialize_RejectsNonMonotonicOffsets(t *testing.T) {
	listT := mustType(t, ssztypes.ListSpec{Elem: "uint32", MaxLength: 16})
	outerT := mustType(t, ssztypes.ListSpec{Elem: listT, MaxLength: 16})

	value := []any{[]any{uint64(1), uint64(2)}, []any{uint64(3)}}
	out, err := ssz.Serialize(value, outerT)
	require.NoError(t, err)

	// corrupt: swap the two offset words so the second is smaller than the first
	corrupt := append([]byte(nil), out...)
	copy(corrupt[0:4], out[4:8])
	copy(corrupt[4:8], out[0:4])

	_, err = ssz.Deserialize(corrupt, outerT)
	require.ErrorIs(t, err, ssz.ErrInvalidValue)
}

func TestDeserialize_RejectsTrailingBytes(t *testing.T) {
	boolT := mustType(t, "bool")
	_, err := ssz.Deserialize([]byte{0x01, 0x00}, boolT)
	require.Error(t, err)
}
