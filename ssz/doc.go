// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the go-ssz-schema library.

// Package ssz implements a Simple Serialize (SSZ) encoder and decoder: a
// deterministic, length-prefixed, little-endian binary codec for values
// shaped by a ssztypes.Type descriptor.
//
// Serialize and Deserialize are pure functions over caller-owned data and
// immutable type descriptors; a *ssztypes.Type built once may be shared
// across goroutines calling either concurrently without synchronization.
package ssz
