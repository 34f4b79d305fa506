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

// wideKernel packs the state lanes into one 512-bit register group and
// runs the VAES forms. A 32-byte state occupies the low two lanes; the
// unused upper lanes are processed as zeros and discarded on store.
type wideKernel struct{}

func (wideKernel) Name() string { return "wide" }

func load512(b []byte) simd.Vec64x8 {
	var v simd.Vec8x64
	copy(v[:], b)
	return v.ToVec64x8()
}

func store512(v simd.Vec64x8, b []byte) {
	vb := v.ToVec8x64()
	copy(b, vb[:len(b)])
}

func (wideKernel) EncRound(state, keys []byte) {
	s, k := load512(state), load512(keys)
	simd.VAESENC(&k, &s, &s)
	store512(s, state)
}

func (wideKernel) EncRoundLast(state, keys []byte) {
	s, k := load512(state), load512(keys)
	simd.VAESENCLAST(&k, &s, &s)
	store512(s, state)
}

func (wideKernel) DecRound(state, keys []byte) {
	s, k := load512(state), load512(keys)
	simd.VAESDEC(&k, &s, &s)
	store512(s, state)
}

func (wideKernel) DecRoundLast(state, keys []byte) {
	s, k := load512(state), load512(keys)
	simd.VAESDECLAST(&k, &s, &s)
	store512(s, state)
}

func (wideKernel) InvMixColumns(block []byte) {
	var v simd.Vec8x16
	copy(v[:], block)
	simd.AESIMC(&v, &v)
	copy(block, v[:])
}
