// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tobj

import "github.com/g3n/engine/loader/tobj/internal/strhash"

// materialize walks the parsed command list once, copying vertex data
// into dense arrays and rectifying every face/line/point index against
// the count of same-kind entries seen so far in the stream (not the
// final total — §4.9 step 2). Material and smoothing group bindings
// track the most recent usemtl/s directive in source order.
func materialize(cmds []command, c counters, materials []Material) *Attrib {
	a := &Attrib{
		V:  make([]GeometricVertex, 0, c.v),
		VN: make([]VertexNormal, 0, c.vn),
		VT: make([]VertexTexture, 0, c.vt),
		VP: make([]ParamSpaceVertex, 0, c.vp),
		F:  make([]Face, 0, c.f),
		L:  make([]Line, 0, c.l),
		P:  Point{VIdx: make([]uint32, 0, c.p)},
	}

	names := strhash.New()
	for i, m := range materials {
		names.Set(m.Name, int64(i))
	}

	curMaterial := -1
	curSmoothing := 0

	for _, cmd := range cmds {
		switch cmd.kind {
		case cmdV:
			a.V = append(a.V, cmd.gv)
		case cmdVN:
			a.VN = append(a.VN, cmd.vn)
		case cmdVT:
			a.VT = append(a.VT, cmd.vt)
		case cmdVP:
			a.VP = append(a.VP, cmd.vp)

		case cmdF:
			triplets := make([]VertexIndexTriplet, len(cmd.faceTriplets))
			for i, rt := range cmd.faceTriplets {
				triplets[i] = VertexIndexTriplet{
					VIdx:  fixIndex(rt.v, len(a.V)),
					VTIdx: fixIndex(rt.vt, len(a.VT)),
					VNIdx: fixIndex(rt.vn, len(a.VN)),
				}
			}
			a.TriangleCountTotal += cmd.faceTriangleCount
			a.F = append(a.F, Face{
				Triplets:      triplets,
				TriangleCount: cmd.faceTriangleCount,
				MaterialID:    curMaterial,
				SmoothingID:   curSmoothing,
			})

		case cmdL:
			couples := make([]LineCouple, len(cmd.lineCouples))
			for i, rc := range cmd.lineCouples {
				couples[i] = LineCouple{
					VIdx:  fixIndex(rc.v, len(a.V)),
					VTIdx: fixIndex(rc.vt, len(a.VT)),
				}
			}
			a.L = append(a.L, Line{Couples: couples})

		case cmdP:
			for _, raw := range cmd.pointIdx {
				a.P.VIdx = append(a.P.VIdx, fixIndex(raw, len(a.V)))
			}

		case cmdUsemtl:
			if id, ok := names.Get(string(cmd.name)); ok {
				curMaterial = int(id)
			} else {
				curMaterial = -1
			}

		case cmdS:
			curSmoothing = cmd.smoothID
		}
	}

	return a
}
