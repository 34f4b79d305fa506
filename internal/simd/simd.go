// Copyright 2026 The Vistrutah Authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package simd provides selected intrinsics for the AES-NI and VAES
// instruction extensions emulation
package simd

import (
	"encoding/binary"
	"fmt"
)

type Vec8x64 [64]uint8
type Vec64x8 [8]uint64
type Vec8x16 [16]uint8
type Vec64x2 [2]uint64

func (v Vec8x16) ToVec64x2() Vec64x2 {
	return Vec64x2{
		binary.LittleEndian.Uint64(v[0:8]),
		binary.LittleEndian.Uint64(v[8:16]),
	}
}

func (v Vec64x2) ToVec8x16() Vec8x16 {
	return Vec8x16{
		uint8(v[0] >> 0), uint8(v[0] >> 8), uint8(v[0] >> 16), uint8(v[0] >> 24),
		uint8(v[0] >> 32), uint8(v[0] >> 40), uint8(v[0] >> 48), uint8(v[0] >> 56),
		uint8(v[1] >> 0), uint8(v[1] >> 8), uint8(v[1] >> 16), uint8(v[1] >> 24),
		uint8(v[1] >> 32), uint8(v[1] >> 40), uint8(v[1] >> 48), uint8(v[1] >> 56),
	}
}

func (v Vec8x64) ToVec64x8() Vec64x8 {
	return Vec64x8{
		binary.LittleEndian.Uint64(v[0:8]),
		binary.LittleEndian.Uint64(v[8:16]),
		binary.LittleEndian.Uint64(v[16:24]),
		binary.LittleEndian.Uint64(v[24:32]),
		binary.LittleEndian.Uint64(v[32:40]),
		binary.LittleEndian.Uint64(v[40:48]),
		binary.LittleEndian.Uint64(v[48:56]),
		binary.LittleEndian.Uint64(v[56:64]),
	}
}

func (v Vec64x8) ToVec8x64() Vec8x64 {
	var r Vec8x64
	for i := range v {
		binary.LittleEndian.PutUint64(r[i*8:], v[i])
	}
	return r
}

// Lane extracts the n-th 128-bit lane.
func (v Vec8x64) Lane(n int) Vec8x16 {
	var r Vec8x16
	copy(r[:], v[n*16:])
	return r
}

// SetLane overwrites the n-th 128-bit lane.
func (v *Vec8x64) SetLane(n int, x Vec8x16) {
	copy(v[n*16:], x[:])
}

func (v Vec64x8) String() string {
	return fmt.Sprintf("{%016x, %016x, %016x, %016x, %016x, %016x, %016x, %016x}",
		v[7], v[6], v[5], v[4], v[3], v[2], v[1], v[0])
}

func (v Vec8x16) String() string {
	return fmt.Sprintf("{%02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x}",
		v[15], v[14], v[13], v[12], v[11], v[10], v[9], v[8],
		v[7], v[6], v[5], v[4], v[3], v[2], v[1], v[0])
}

func (v Vec64x2) String() string {
	return fmt.Sprintf("{%016x, %016x}", v[1], v[0])
}
