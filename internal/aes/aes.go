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

// Package aes provides the AES round primitives used by the cipher core.
// A cipher state is a sequence of 128-bit lanes, each an AES state in the
// FIPS-197 column-major byte order; the primitives act on every lane in
// parallel, with one 128-bit round key per lane packed the same way.
// Three interchangeable kernels implement the primitive set: a wide kernel
// that processes four lanes per 512-bit vector operation, a per-lane
// kernel, and a pure table-based software kernel.
package aes

import (
	"golang.org/x/sys/cpu"
)

// LaneSize is the width of one AES state in bytes.
const LaneSize = 16

// Kernel is the AES primitive set the cipher core is parametrized over.
// The state and keys arguments have equal length, a multiple of LaneSize;
// key lane j is applied to state lane j. All methods work in place.
type Kernel interface {
	Name() string

	// EncRound computes MixColumns(ShiftRows(SubBytes(lane))) ^ key
	// for every lane.
	EncRound(state, keys []byte)

	// EncRoundLast is EncRound without MixColumns.
	EncRoundLast(state, keys []byte)

	// DecRound computes InvMixColumns(InvSubBytes(InvShiftRows(lane))) ^ key
	// for every lane.
	DecRound(state, keys []byte)

	// DecRoundLast is DecRound without InvMixColumns.
	DecRoundLast(state, keys []byte)

	// InvMixColumns applies the standalone InvMixColumns transformation
	// to a single 16-byte block.
	InvMixColumns(block []byte)
}

// Wide processes four 128-bit lanes per vector operation.
var Wide Kernel = wideKernel{}

// Lane processes one 128-bit lane per operation.
var Lane Kernel = laneKernel{}

// Soft is the table-based software fallback. It performs data-dependent
// table reads and is not timing-oblivious.
var Soft Kernel = softKernel{}

// Kernels returns all kernels, preferred first. Every kernel produces
// identical results for identical inputs; the split exists so each can be
// backed by the matching instruction set where available.
func Kernels() []Kernel {
	return []Kernel{Wide, Lane, Soft}
}

// Default selects the kernel matching the host CPU capabilities.
func Default() Kernel {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512VAES:
		return Wide
	case cpu.X86.HasAES || cpu.ARM64.HasAES:
		return Lane
	default:
		return Soft
	}
}

// Accelerated reports whether Default resolves to a kernel other than Soft,
// that is, whether the host CPU reports the AES feature flags Default
// checks. The Wide and Lane kernels are Go emulations of the AES
// instructions; no kernel issues hardware AES instructions.
func Accelerated() bool {
	return Default() != Soft
}
