// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tobj

import (
	"errors"
	"testing"
)

const cubeObj = `
v -1 -1  1
v  1 -1  1
v  1  1  1
v -1  1  1
v -1  1 -1
v  1  1 -1
v  1 -1 -1
v -1 -1 -1
vn 0 0 1
vn 0 0 -1
vn 0 1 0
vn 0 -1 0
vn 1 0 0
vn -1 0 0
f 1//1 2//1 3//1 4//1
f 8//2 7//2 6//2 5//2
f 4//3 3//3 6//3 5//3
f 8//4 1//4 2//4 7//4
f 2//5 7//5 6//5 3//5
f 8//6 5//6 4//6 1//6
`

// S1: 8 vertices, 6 normals, 0 texcoords, 6 quad faces; after
// triangulation each face has 6 triplets / triangle_count 2 and the
// total triangle count is 12.
func TestCubeTriangulated(t *testing.T) {
	attrib, _, err := ParseObj([]byte(cubeObj), nil, ParseOptions{Flags: Triangulate})
	if err != nil {
		t.Fatalf("ParseObj: %v", err)
	}
	if len(attrib.V) != 8 {
		t.Errorf("V: got %d, want 8", len(attrib.V))
	}
	if len(attrib.VN) != 6 {
		t.Errorf("VN: got %d, want 6", len(attrib.VN))
	}
	if len(attrib.VT) != 0 {
		t.Errorf("VT: got %d, want 0", len(attrib.VT))
	}
	if len(attrib.F) != 6 {
		t.Fatalf("F: got %d, want 6", len(attrib.F))
	}
	for i, f := range attrib.F {
		if len(f.Triplets) != 6 {
			t.Errorf("face %d: Triplets len got %d, want 6", i, len(f.Triplets))
		}
		if f.TriangleCount != 2 {
			t.Errorf("face %d: TriangleCount got %d, want 2", i, f.TriangleCount)
		}
		if f.SmoothingID != 0 {
			t.Errorf("face %d: SmoothingID got %d, want 0", i, f.SmoothingID)
		}
	}
	if attrib.TriangleCountTotal != 12 {
		t.Errorf("TriangleCountTotal: got %d, want 12", attrib.TriangleCountTotal)
	}

	// Representative fan expansion of "f 1//1 2//1 3//1 4//1".
	want := []VertexIndexTriplet{
		{VIdx: 0, VTIdx: InvalidIndex, VNIdx: 0},
		{VIdx: 1, VTIdx: InvalidIndex, VNIdx: 0},
		{VIdx: 2, VTIdx: InvalidIndex, VNIdx: 0},
		{VIdx: 0, VTIdx: InvalidIndex, VNIdx: 0},
		{VIdx: 2, VTIdx: InvalidIndex, VNIdx: 0},
		{VIdx: 3, VTIdx: InvalidIndex, VNIdx: 0},
	}
	for i, tr := range attrib.F[0].Triplets {
		if tr != want[i] {
			t.Errorf("face 0 triplet %d: got %+v, want %+v", i, tr, want[i])
		}
	}
}

func TestCubeNotTriangulated(t *testing.T) {
	attrib, _, err := ParseObj([]byte(cubeObj), nil, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseObj: %v", err)
	}
	for i, f := range attrib.F {
		if len(f.Triplets) != 4 {
			t.Errorf("face %d: got %d triplets, want 4", i, len(f.Triplets))
		}
		if f.TriangleCount != 1 {
			t.Errorf("face %d: TriangleCount got %d, want 1", i, f.TriangleCount)
		}
	}
	if attrib.TriangleCountTotal != 6 {
		t.Errorf("TriangleCountTotal: got %d, want 6", attrib.TriangleCountTotal)
	}
}

// S4: negative-exponent.obj
func TestNegativeExponentVertex(t *testing.T) {
	data := []byte("v 2.0e+5 2.0e-5 2.0e-0\n")
	attrib, _, err := ParseObj(data, nil, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseObj: %v", err)
	}
	if len(attrib.V) != 1 {
		t.Fatalf("V: got %d, want 1", len(attrib.V))
	}
	v := attrib.V[0]
	if v.X != 200000.0 || v.Y != 0.00002 || v.Z != 2.0 {
		t.Errorf("got %+v", v)
	}
}

// S5: relative index resolution.
func TestRelativeIndex(t *testing.T) {
	data := []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n")
	attrib, _, err := ParseObj(data, nil, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseObj: %v", err)
	}
	if len(attrib.F) != 1 {
		t.Fatalf("F: got %d, want 1", len(attrib.F))
	}
	got := attrib.F[0].Triplets
	want := []uint32{0, 1, 2}
	for i, w := range want {
		if got[i].VIdx != w {
			t.Errorf("triplet %d: VIdx got %d, want %d", i, got[i].VIdx, w)
		}
	}
}

// S6: unknown directives are skipped without altering counters or
// return status.
func TestUnknownDirectiveSkipped(t *testing.T) {
	data := []byte("v 1 2 3\nxyzzy 1 2 3\nv 4 5 6\n")
	attrib, _, err := ParseObj(data, nil, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseObj: %v", err)
	}
	if len(attrib.V) != 2 {
		t.Errorf("V: got %d, want 2", len(attrib.V))
	}
}

func TestEmptyInputIsInvalidParameter(t *testing.T) {
	_, _, err := ParseObj(nil, nil, ParseOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	var code ErrCode
	if !errors.As(err, &code) || code != InvalidParameter {
		t.Errorf("got %v, want InvalidParameter", err)
	}
}

func TestVertexDefaultWeight(t *testing.T) {
	data := []byte("v 1 2 3\nv 1 2 3 0.5\n")
	attrib, _, err := ParseObj(data, nil, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseObj: %v", err)
	}
	if attrib.V[0].W != 1 {
		t.Errorf("default weight got %v, want 1", attrib.V[0].W)
	}
	if attrib.V[1].W != 0.5 {
		t.Errorf("explicit weight got %v, want 0.5", attrib.V[1].W)
	}
}

func TestLineRejectsNormalIndex(t *testing.T) {
	data := []byte("v 0 0 0\nv 1 0 0\nvn 0 0 1\nl 1//1 2\n")
	attrib, _, err := ParseObj(data, nil, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseObj: %v", err)
	}
	if len(attrib.L) != 0 {
		t.Errorf("expected malformed line to be skipped, got %d lines", len(attrib.L))
	}
}

func TestLineCouples(t *testing.T) {
	data := []byte("v 0 0 0\nv 1 0 0\nv 2 0 0\nl 1 2 3\n")
	attrib, _, err := ParseObj(data, nil, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseObj: %v", err)
	}
	if len(attrib.L) != 1 || len(attrib.L[0].Couples) != 3 {
		t.Fatalf("got %+v", attrib.L)
	}
}

// A literal 0 index is syntactically valid (per original_source's
// unchecked atoi) and is remapped deterministically to 0 by fixIndex,
// rather than rejected at parse time.
func TestZeroIndexRemapsToZero(t *testing.T) {
	data := []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n")
	attrib, _, err := ParseObj(data, nil, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseObj: %v", err)
	}
	if len(attrib.F) != 1 {
		t.Fatalf("F: got %d, want 1", len(attrib.F))
	}
	if attrib.F[0].Triplets[0].VIdx != 0 {
		t.Errorf("VIdx: got %d, want 0", attrib.F[0].Triplets[0].VIdx)
	}
}

func TestShapeSpans(t *testing.T) {
	data := []byte(
		"v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\n" +
			"f 1 2 3\n" + // before any g/o: lives in the gap
			"g first\n" +
			"f 1 2 3\n" +
			"g second\n" +
			"f 2 3 4\n" +
			"f 1 3 4\n",
	)
	attrib, shapes, err := ParseObj(data, nil, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseObj: %v", err)
	}
	if len(attrib.F) != 4 {
		t.Fatalf("F: got %d, want 4", len(attrib.F))
	}
	if len(shapes) != 2 {
		t.Fatalf("shapes: got %d, want 2", len(shapes))
	}
	if shapes[0].Name != "first" || shapes[0].FaceOffset != 1 || shapes[0].Length != 1 {
		t.Errorf("shape 0: got %+v", shapes[0])
	}
	if shapes[1].Name != "second" || shapes[1].FaceOffset != 2 || shapes[1].Length != 2 {
		t.Errorf("shape 1: got %+v", shapes[1])
	}
}

func TestUsemtlBinding(t *testing.T) {
	data := []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl red\nf 1 2 3\n")
	materials := []Material{defaultMaterial("red"), defaultMaterial("blue")}
	attrib, _, err := ParseObj(data, materials, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseObj: %v", err)
	}
	if attrib.F[0].MaterialID != 0 {
		t.Errorf("got %d, want 0", attrib.F[0].MaterialID)
	}
}

func TestUsemtlUnresolvedIsMinusOne(t *testing.T) {
	data := []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl nosuch\nf 1 2 3\n")
	attrib, _, err := ParseObj(data, nil, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseObj: %v", err)
	}
	if attrib.F[0].MaterialID != -1 {
		t.Errorf("got %d, want -1", attrib.F[0].MaterialID)
	}
}

