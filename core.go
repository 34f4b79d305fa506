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

package vistrutah

import (
	"crypto/subtle"

	"github.com/vistrutah/vistrutah/internal/aes"
	"github.com/vistrutah/vistrutah/internal/mix"
	"github.com/vistrutah/vistrutah/internal/schedule"
)

// zeroKeys feeds the whitening-free AES round at the top of each step.
var zeroKeys [BlockSize512]byte

// encrypt runs the step-and-mix loop: an initial half-step of whitening
// plus one fixed-key round, then steps-1 iterations of zero-key round,
// cross-slice mix, round-key and round-constant injection and fixed-key
// round, and a final round keyed with the last round key.
func encrypt(k aes.Kernel, dst, src, key []byte, rounds int) {
	width := len(src)
	steps := rounds / roundsPerStep

	var scratch [BlockSize512]byte
	state := scratch[:width]
	copy(state, src)

	sch := schedule.New(key, width)
	subtle.XORBytes(state, state, sch.Round())
	k.EncRound(state, sch.Fixed())

	for i := 1; i < steps; i++ {
		k.EncRound(state, zeroKeys[:width])
		mix.Forward(state)
		sch.Advance()
		subtle.XORBytes(state, state, sch.Round())
		subtle.XORBytes(state[:16], state[:16], schedule.RC(i-1))
		k.EncRound(state, sch.Fixed())
	}

	sch.Advance()
	k.EncRoundLast(state, sch.Round())
	copy(dst, state)
}

// decrypt inverts encrypt. The fixed keys are pre-transformed with
// InvMixColumns so the inverse round's key addition lands inside the
// linear layer, and the round key is walked backward from its final
// position.
func decrypt(k aes.Kernel, dst, src, key []byte, rounds int) {
	width := len(src)
	steps := rounds / roundsPerStep

	var scratch [BlockSize512]byte
	state := scratch[:width]
	copy(state, src)

	sch := schedule.New(key, width)
	sch.Seek(steps)

	var fkbuf [BlockSize512]byte
	fixed := fkbuf[:width]
	copy(fixed, sch.Fixed())
	for off := 0; off < width; off += aes.LaneSize {
		k.InvMixColumns(fixed[off : off+aes.LaneSize])
	}

	subtle.XORBytes(state, state, sch.Round())
	k.DecRound(state, fixed)

	for i := 1; i < steps; i++ {
		sch.Retreat()
		k.DecRoundLast(state, sch.Round())
		subtle.XORBytes(state[:16], state[:16], schedule.RC(steps-i-1))
		mix.Inverse(state)
		for off := 0; off < width; off += aes.LaneSize {
			k.InvMixColumns(state[off : off+aes.LaneSize])
		}
		k.DecRound(state, fixed)
	}

	sch.Retreat()
	k.DecRoundLast(state, sch.Round())
	copy(dst, state)
}
