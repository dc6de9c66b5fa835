// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tobjutil flattens a tobj.Attrib/[]tobj.Shape pair back into
// the older per-object flat-array layout loader/obj.Decoder exposed,
// for callers migrating off that decoder who are not yet ready to
// consume tobj's dense attribute arrays directly. This is the
// compatibility shim spec.md §1 calls out as deliberately outside THE
// CORE: it has no part in parsing and exists purely to ease adoption.
package tobjutil

import (
	"github.com/g3n/engine/loader/tobj"
	"github.com/g3n/engine/math32"
)

// invINDEX is the value a flattened Face stores for an absent uv or
// normal index: math.MaxInt. (The older loader/obj decoder used
// math.MaxUint32 for this, so the two values differ.)
const invINDEX = int(^uint(0) >> 1) // math.MaxInt

// Face is a flattened face, one slice entry per triplet, matching
// loader/obj.Face's field layout.
type Face struct {
	Vertices []int
	Uvs      []int
	Normals  []int
	Material string
	Smooth   bool
}

// Object is a flattened shape: a named span of Faces.
type Object struct {
	Name  string
	Faces []Face
}

// Flatten converts a tobj.Attrib/[]tobj.Shape/[]tobj.Material triple
// into the dense-array-of-structs layout the old decoder returned.
func Flatten(attrib *tobj.Attrib, shapes []tobj.Shape, materials []tobj.Material) (vertices, normals, uvs math32.ArrayF32, objects []Object) {
	vertices = math32.NewArrayF32(0, len(attrib.V)*3)
	for _, v := range attrib.V {
		vertices.Append(v.X, v.Y, v.Z)
	}
	normals = math32.NewArrayF32(0, len(attrib.VN)*3)
	for _, n := range attrib.VN {
		normals.Append(n.I, n.J, n.K)
	}
	uvs = math32.NewArrayF32(0, len(attrib.VT)*2)
	for _, t := range attrib.VT {
		uvs.Append(t.U, t.V)
	}

	objects = make([]Object, 0, len(shapes))
	for _, s := range shapes {
		obj := Object{Name: s.Name, Faces: make([]Face, 0, s.Length)}
		for _, f := range attrib.F[s.FaceOffset : s.FaceOffset+s.Length] {
			obj.Faces = append(obj.Faces, flattenFace(f, materials))
		}
		objects = append(objects, obj)
	}
	return vertices, normals, uvs, objects
}

func flattenFace(f tobj.Face, materials []tobj.Material) Face {
	ff := Face{
		Vertices: make([]int, len(f.Triplets)),
		Uvs:      make([]int, len(f.Triplets)),
		Normals:  make([]int, len(f.Triplets)),
		Smooth:   f.SmoothingID != 0,
	}
	if f.MaterialID >= 0 && f.MaterialID < len(materials) {
		ff.Material = materials[f.MaterialID].Name
	}
	for i, t := range f.Triplets {
		ff.Vertices[i] = flattenIdx(t.VIdx)
		ff.Uvs[i] = flattenIdx(t.VTIdx)
		ff.Normals[i] = flattenIdx(t.VNIdx)
	}
	return ff
}

func flattenIdx(idx uint32) int {
	if idx == tobj.InvalidIndex {
		return invINDEX
	}
	return int(idx)
}
