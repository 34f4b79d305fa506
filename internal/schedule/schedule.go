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

// Package schedule derives the per-call key material of the cipher: the
// fixed keys, constant across all steps, and the round key, which evolves
// between steps by a fixed byte permutation (32-byte state) or byte
// rotations (64-byte state). Both evolutions are key-independent
// bijections, so the round-key sequence can be walked in either direction.
package schedule

// A Schedule holds the key state of one encrypt or decrypt call.
// The zero value is not usable; construct with New.
type Schedule struct {
	width int // state bytes, 32 or 64
	fixed [64]byte
	round [64]byte
}

// New canonicalizes the master key for the given state width and derives
// the fixed keys and the step-0 round key. The key must already be of an
// accepted length for the width: 16 or 32 bytes when width is 32, and 32
// or 64 bytes when width is 64.
func New(key []byte, width int) *Schedule {
	s := &Schedule{width: width}
	switch {
	case width == 32 && len(key) == 16:
		copy(s.fixed[0:16], key)
		copy(s.fixed[16:32], key)
	case width == 32 && len(key) == 32:
		copy(s.fixed[0:32], key)
	case width == 64 && len(key) == 32:
		copy(s.fixed[0:32], key)
		copy(s.fixed[32:64], key)
	case width == 64 && len(key) == 64:
		copy(s.fixed[0:32], key)
		for i, j := range KexpShuffle {
			s.fixed[32+i] = key[32+int(j)]
		}
	default:
		panic("schedule: key length not valid for state width")
	}
	s.reset()
	return s
}

// reset rewinds the round key to its step-0 value: the fixed-key halves
// swapped within each 32-byte pair.
func (s *Schedule) reset() {
	for off := 0; off < s.width; off += 32 {
		copy(s.round[off:off+16], s.fixed[off+16:off+32])
		copy(s.round[off+16:off+32], s.fixed[off:off+16])
	}
}

// Fixed returns the per-slice fixed keys, 16 bytes per slice.
// The slice aliases the schedule's state; callers must not modify it.
func (s *Schedule) Fixed() []byte {
	return s.fixed[:s.width]
}

// Round returns the current round key, 16 bytes per slice.
// The slice aliases the schedule's state and changes on Advance/Retreat.
func (s *Schedule) Round() []byte {
	return s.round[:s.width]
}

// Advance steps the round key forward once.
func (s *Schedule) Advance() {
	if s.width == 32 {
		permute(s.round[0:16], &P4)
		permute(s.round[16:32], &P5)
		return
	}
	rotl(s.round[0:16], 5)
	rotl(s.round[16:32], 10)
	rotl(s.round[32:48], 5)
	rotl(s.round[48:64], 10)
}

// Retreat steps the round key backward once, undoing Advance.
func (s *Schedule) Retreat() {
	if s.width == 32 {
		permute(s.round[0:16], &P4Inv)
		permute(s.round[16:32], &P5Inv)
		return
	}
	rotl(s.round[0:16], 11)
	rotl(s.round[16:32], 6)
	rotl(s.round[32:48], 11)
	rotl(s.round[48:64], 6)
}

// Seek positions the round key at the given step, counting from the
// step-0 value. The rotation-based evolution of the 64-byte width has a
// closed form; the permutation-based one is replayed.
func (s *Schedule) Seek(step int) {
	s.reset()
	if s.width == 32 {
		for i := 0; i < step; i++ {
			s.Advance()
		}
		return
	}
	rotl(s.round[0:16], (5*step)%16)
	rotl(s.round[16:32], (10*step)%16)
	rotl(s.round[32:48], (5*step)%16)
	rotl(s.round[48:64], (10*step)%16)
}

func permute(data []byte, perm *[16]uint8) {
	var t [16]byte
	copy(t[:], data)
	for i, j := range perm {
		data[i] = t[j]
	}
}

func rotl(data []byte, n int) {
	var t [16]byte
	copy(t[:], data)
	for i := range t {
		data[i] = t[(i+n)%16]
	}
}
