// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tobj

import (
	"github.com/g3n/engine/loader/tobj/internal/lex"
	"github.com/g3n/engine/loader/tobj/internal/numeric"
)

// rawTriplet holds a triplet's three fields in their raw, unrectified
// form: a signed decimal as written by the author, or rawAbsent when
// the field was not supplied. fixIndex converts these during
// materialization.
type rawTriplet struct {
	v, vt, vn int32
}

// parseTriplet reads one of v, v/vt, v//vn or v/vt/vn starting at pos,
// stopping at whitespace, CR or NUL. It returns the parsed triplet,
// the offset just past it, and whether a syntactically valid triplet
// was found (a missing v field is always an error: v is mandatory).
func parseTriplet(data []byte, pos, end int) (t rawTriplet, next int, ok bool) {
	t = rawTriplet{v: rawAbsent, vt: rawAbsent, vn: rawAbsent}
	tokEnd := lex.UntilSpace(data, pos, end)
	if tokEnd == pos {
		return t, pos, false
	}

	// Slash-delimited fields within [pos, tokEnd).
	var fieldStart [3]int
	var fieldEnd [3]int
	nFields := 1
	fieldStart[0] = pos
	i := pos
	for i < tokEnd {
		if data[i] == '/' {
			fieldEnd[nFields-1] = i
			nFields++
			if nFields > 3 {
				return t, tokEnd, false
			}
			fieldStart[nFields-1] = i + 1
		}
		i++
	}
	fieldEnd[nFields-1] = tokEnd

	v, vEnd, vOK := numeric.ParseInt(data, fieldStart[0], fieldEnd[0])
	if !vOK || vEnd != fieldEnd[0] {
		return t, tokEnd, false
	}
	t.v = int32(v)

	if nFields >= 2 && fieldEnd[1] > fieldStart[1] {
		vt, vtEnd, vtOK := numeric.ParseInt(data, fieldStart[1], fieldEnd[1])
		if !vtOK || vtEnd != fieldEnd[1] {
			return t, tokEnd, false
		}
		t.vt = int32(vt)
	}

	if nFields >= 3 && fieldEnd[2] > fieldStart[2] {
		vn, vnEnd, vnOK := numeric.ParseInt(data, fieldStart[2], fieldEnd[2])
		if !vnOK || vnEnd != fieldEnd[2] {
			return t, tokEnd, false
		}
		t.vn = int32(vn)
	}

	return t, tokEnd, true
}

// fixIndex rectifies a raw triplet field: absolute positive indices
// convert from 1-based to 0-based, a literal 0 remaps deterministically
// to 0, negative indices resolve relative to currentCount (the number
// of same-kind entries seen so far in the stream), and the absent
// sentinel passes through unchanged.
func fixIndex(raw int32, currentCount int) uint32 {
	switch {
	case raw == rawAbsent:
		return InvalidIndex
	case raw > 0:
		return uint32(raw - 1)
	case raw == 0:
		return 0
	default:
		return uint32(currentCount + int(raw))
	}
}
