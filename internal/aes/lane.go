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

package aes

import (
	"github.com/vistrutah/vistrutah/internal/simd"
)

// laneKernel issues one 128-bit AES operation per lane.
type laneKernel struct{}

func (laneKernel) Name() string { return "lane" }

func load128(b []byte) simd.Vec8x16 {
	var v simd.Vec8x16
	copy(v[:], b[:LaneSize])
	return v
}

func (laneKernel) EncRound(state, keys []byte) {
	for off := 0; off < len(state); off += LaneSize {
		s, k := load128(state[off:]), load128(keys[off:])
		simd.AESENC(&k, &s, &s)
		copy(state[off:off+LaneSize], s[:])
	}
}

func (laneKernel) EncRoundLast(state, keys []byte) {
	for off := 0; off < len(state); off += LaneSize {
		s, k := load128(state[off:]), load128(keys[off:])
		simd.AESENCLAST(&k, &s, &s)
		copy(state[off:off+LaneSize], s[:])
	}
}

func (laneKernel) DecRound(state, keys []byte) {
	for off := 0; off < len(state); off += LaneSize {
		s, k := load128(state[off:]), load128(keys[off:])
		simd.AESDEC(&k, &s, &s)
		copy(state[off:off+LaneSize], s[:])
	}
}

func (laneKernel) DecRoundLast(state, keys []byte) {
	for off := 0; off < len(state); off += LaneSize {
		s, k := load128(state[off:]), load128(keys[off:])
		simd.AESDECLAST(&k, &s, &s)
		copy(state[off:off+LaneSize], s[:])
	}
}

func (laneKernel) InvMixColumns(block []byte) {
	v := load128(block)
	simd.AESIMC(&v, &v)
	copy(block[:LaneSize], v[:])
}
