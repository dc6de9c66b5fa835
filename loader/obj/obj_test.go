// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"strings"
	"testing"
)

const planeObj = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
o plane
usemtl red
f 1/1/1 2/2/1 3/3/1 4/4/1
`

const planeMtl = `
newmtl red
Kd 1 0 0
Ks 0.5 0.25 0.125
illum 2
`

func TestDecodeReader(t *testing.T) {
	dec, err := DecodeReader(strings.NewReader(planeObj), strings.NewReader(planeMtl))
	if err != nil {
		t.Fatalf("DecodeReader: %v", err)
	}

	if len(dec.Vertices) != 4*3 {
		t.Errorf("Vertices: got %d floats, want %d", len(dec.Vertices), 4*3)
	}
	if len(dec.Normals) != 1*3 {
		t.Errorf("Normals: got %d floats, want %d", len(dec.Normals), 1*3)
	}
	if len(dec.Uvs) != 4*2 {
		t.Errorf("Uvs: got %d floats, want %d", len(dec.Uvs), 4*2)
	}

	if len(dec.Objects) != 1 {
		t.Fatalf("Objects: got %d, want 1", len(dec.Objects))
	}
	obj := dec.Objects[0]
	if obj.Name != "plane" {
		t.Errorf("Object name: got %q, want %q", obj.Name, "plane")
	}
	// Triangulate is requested by parseOptions, so the quad face becomes
	// two fan triangles flattened into a single Face per tobj.Face.
	if len(obj.Faces) != 1 {
		t.Fatalf("Faces: got %d, want 1", len(obj.Faces))
	}
	face := obj.Faces[0]
	if len(face.Vertices) != 6 {
		t.Errorf("Face triplets: got %d, want 6 (2 fan triangles)", len(face.Vertices))
	}
	if face.Material != "red" {
		t.Errorf("Face material: got %q, want %q", face.Material, "red")
	}

	mat, ok := dec.Materials["red"]
	if !ok {
		t.Fatal("Materials: \"red\" not found")
	}
	if mat.Diffuse.R != 1 || mat.Diffuse.G != 0 || mat.Diffuse.B != 0 {
		t.Errorf("Diffuse: got %+v", mat.Diffuse)
	}
	if mat.Specular.R != 0.5 || mat.Specular.G != 0.25 || mat.Specular.B != 0.125 {
		t.Errorf("Specular: got %+v", mat.Specular)
	}
	if mat.Illum != 2 {
		t.Errorf("Illum: got %d, want 2", mat.Illum)
	}
}

func TestDecodeReaderWarningsCollected(t *testing.T) {
	dec, err := DecodeReader(strings.NewReader("xyzzy 1 2 3\nv 0 0 0\nv 1 0 0\nv 0 1 0\n"), strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeReader: %v", err)
	}
	if len(dec.Warnings) == 0 {
		t.Error("expected at least one warning for the unknown directive")
	}
}

func TestDecodeMissingFileIsError(t *testing.T) {
	_, err := Decode("/nonexistent/path/does/not/exist.obj", "")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
