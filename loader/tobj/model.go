// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tobj parses Wavefront OBJ geometry together with its
// companion MTL material file into a dense, random-access attribute
// model suitable for direct submission to a rendering pipeline. It is
// the engine's in-house replacement for the older loader/obj.Decoder's
// own parser: tobj returns dense attribute arrays, a list of named
// shape spans and a material list, leaving mesh/material construction
// to the caller. loader/obj is now a decode adapter over this package
// that exposes the older per-object flat layout, built with tobjutil.
package tobj

// InvalidIndex is the sentinel stored in a VertexIndexTriplet field
// when no value is present. Chosen so it can never collide with a
// valid resolved index. Face.MaterialID does not use it: an absent
// material is -1 there.
const InvalidIndex uint32 = 0x80000000

// rawAbsent is the sentinel raw (pre-rectification) index value that
// the triplet parser stores for a field the author left out. It is
// numerically identical to InvalidIndex reinterpreted as a signed
// 32-bit integer.
const rawAbsent int32 = -1 << 31 // 0x80000000 as int32

// GeometricVertex is a "v" record: position plus an optional
// homogeneous weight, defaulting to 1.
type GeometricVertex struct {
	X, Y, Z, W float32
}

// VertexNormal is a "vn" record.
type VertexNormal struct {
	I, J, K float32
}

// VertexTexture is a "vt" record. V and W default to 0 when absent.
type VertexTexture struct {
	U, V, W float32
}

// ParamSpaceVertex is a "vp" record. V and Weight default to 0.
type ParamSpaceVertex struct {
	U, V, Weight float32
}

// VertexIndexTriplet is a resolved v/vt/vn reference. Every non-sentinel
// field lies within the bounds of its corresponding attribute array
// after materialization.
type VertexIndexTriplet struct {
	VIdx, VTIdx, VNIdx uint32
}

// Face is an ordered sequence of vertex index triplets, optionally
// triangulated. TriangleCount is 1 unless the TRIANGULATE flag was set
// and the face had more than 3 vertices, in which case it is
// len(Triplets)/3. MaterialID is -1 for "no material" and SmoothingID
// is 0 for "no smoothing group".
type Face struct {
	Triplets      []VertexIndexTriplet
	TriangleCount int
	MaterialID    int
	SmoothingID   int
}

// LineCouple is a v/vt pair used by polyline ("l") records; the
// vertex-normal slot is never meaningful for a line and is rejected at
// parse time if the author supplied one.
type LineCouple struct {
	VIdx, VTIdx uint32
}

// Line is a polyline: an ordered sequence of v/vt couples.
type Line struct {
	Couples []LineCouple
}

// Point is a "p" record: a sequence of plain vertex indices.
type Point struct {
	VIdx []uint32
}

// Shape is a contiguous, half-open span over Attrib.F, labeled by the
// group or object name that introduced it.
type Shape struct {
	Name       string
	FaceOffset int
	Length     int
}

// Color is an {r,g,b} coefficient triple used by several Material
// fields.
type Color struct {
	R, G, B float32
}

// Material mirrors the MTL record set recognized by this package.
// Unset texture fields are the empty string.
type Material struct {
	Name string

	Ambient      Color
	Diffuse      Color
	Specular     Color
	Transmittance Color
	Emission     Color

	Shininess float32
	IOR       float32
	Dissolve  float32
	Illum     int

	AmbientTexname     string
	DiffuseTexname     string
	SpecularTexname     string
	ShininessTexname    string
	BumpTexname        string
	DisplacementTexname string
	AlphaTexname       string
}

// defaultMaterial returns a Material with the defaults spec.md §3
// documents: all colors zero, illum 0, dissolve 1, shininess 1, ior 1.
func defaultMaterial(name string) Material {
	return Material{
		Name:      name,
		Dissolve:  1,
		Shininess: 1,
		IOR:       1,
	}
}

// Attrib is the top-level output of ParseObj: dense, index-rectified
// attribute arrays plus the face/line/point tables that reference
// them. The order of every slice matches source order.
type Attrib struct {
	V  []GeometricVertex
	VN []VertexNormal
	VT []VertexTexture
	VP []ParamSpaceVertex
	F  []Face
	L  []Line
	P  Point

	TriangleCountTotal int
}

// Reset clears a (possibly zero-valued) Attrib in place. Go's garbage
// collector makes the original C API's explicit free routine
// unnecessary; this exists only so callers ported from that API who
// still call a "free" step have a safe, idempotent one to call (on a
// nil or zero-valued Attrib it does nothing).
func (a *Attrib) Reset() {
	if a == nil {
		return
	}
	*a = Attrib{}
}

// MaterialSet is the result of parsing an MTL file or reader.
type MaterialSet struct {
	Materials []Material
}

// Reset clears a (possibly zero-valued) MaterialSet in place.
func (m *MaterialSet) Reset() {
	if m == nil {
		return
	}
	*m = MaterialSet{}
}
