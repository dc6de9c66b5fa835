// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tobj

import "github.com/g3n/engine/loader/tobj/internal/lex"

// parseFaceOperands reads a face's triplet list and, when triangulate
// is set, fans it into triangles on the fly. For an N-gon this
// produces 3*(N-2) triplets and N-2 triangles; a 3-gon (N=3) is left
// as-is with triangleCount 1. A face with fewer than three triplets is
// rejected, as is one whose operand scan hits a stray character that
// is neither a valid triplet nor whitespace.
func parseFaceOperands(data []byte, pos, end int, triangulate bool) (triplets []rawTriplet, triangleCount int, ok bool) {
	var raw []rawTriplet
	p := pos
	for p < end {
		p = lex.SkipSpaces(data, p, end)
		if p >= end {
			break
		}
		t, next, tok := parseTriplet(data, p, end)
		if !tok {
			return nil, 0, false
		}
		raw = append(raw, t)
		p = next
	}
	if len(raw) < 3 {
		return nil, 0, false
	}
	if !triangulate {
		return raw, 1, true
	}

	out := make([]rawTriplet, 0, 3*(len(raw)-2))
	t0 := raw[0]
	prev := raw[1]
	for i := 2; i < len(raw); i++ {
		cur := raw[i]
		out = append(out, t0, prev, cur)
		prev = cur
	}
	return out, len(raw) - 2, true
}
