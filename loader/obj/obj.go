// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj decodes Wavefront OBJ/MTL files into the flat
// per-object/per-face layout the original g3n-engine decoder exposed.
// All parsing is delegated to loader/tobj; this package is a thin
// compatibility adapter over tobjutil.Flatten for callers that still
// want that shape instead of tobj's dense attribute arrays directly.
package obj

import (
	"io"

	"github.com/g3n/engine/loader/tobj"
	"github.com/g3n/engine/loader/tobj/tobjutil"
	"github.com/g3n/engine/math32"
	"github.com/g3n/engine/util/logger"
)

// warnCollector is a logger.LoggerWriter that appends every WARN-or-above
// event's message to a Decoder's Warnings slice, so callers that relied on
// loader/obj's old inline warning collection still see skipped/malformed
// line reports.
type warnCollector struct {
	dec *Decoder
}

func (w *warnCollector) Write(e *logger.Event) {
	if e.Level() < logger.WARN {
		return
	}
	w.dec.Warnings = append(w.dec.Warnings, e.Message())
}

func (w *warnCollector) Close() {}
func (w *warnCollector) Sync()  {}

// Decoder contains all decoded data from the obj and mtl files.
type Decoder struct {
	Objects   []Object             // decoded objects
	Materials map[string]*Material // maps material name to object
	Vertices  math32.ArrayF32      // vertices positions array
	Normals   math32.ArrayF32      // vertices normals
	Uvs       math32.ArrayF32      // vertices texture coordinates
	Warnings  []string             // warning messages (from tobj's diagnostic log)
}

// Object contains all information about one decoded object.
type Object = tobjutil.Object

// Face contains all information about an object face.
type Face = tobjutil.Face

// Material contains all information about an object material.
type Material struct {
	Name       string       // Material name
	Illum      int          // Illumination model
	Opacity    float32      // Opacity factor
	Refraction float32      // Refraction factor
	Shininess  float32      // Shininess (specular exponent)
	Ambient    math32.Color // Ambient color reflectivity
	Diffuse    math32.Color // Diffuse color reflectivity
	Specular   math32.Color // Specular color reflectivity
	Emissive   math32.Color // Emissive color
	MapKd      string       // Texture file linked to diffuse color
}

// Decode decodes the specified obj and mtl files returning a decoder
// object and an error.
func Decode(objpath string, mtlpath string) (*Decoder, error) {

	dec := new(Decoder)
	opts := dec.parseOptions()

	attrib, shapes, matset, err := tobj.ParseObjFile(objpath, mtlpath, opts)
	if err != nil {
		return nil, err
	}
	dec.fill(attrib, shapes, matset)
	return dec, nil
}

// DecodeReader decodes the specified obj and mtl readers returning a decoder
// object and an error.
func DecodeReader(objreader, mtlreader io.Reader) (*Decoder, error) {

	dec := new(Decoder)
	opts := dec.parseOptions()

	matset, err := tobj.ParseMTLFromReader(mtlreader, opts)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(objreader)
	if err != nil {
		return nil, err
	}
	attrib, shapes, err := tobj.ParseObj(data, matset.Materials, opts)
	if err != nil {
		return nil, err
	}
	dec.fill(attrib, shapes, matset)
	return dec, nil
}

// parseOptions builds the tobj.ParseOptions for this decode, with a
// private logger whose only writer collects warnings into dec.Warnings.
func (dec *Decoder) parseOptions() tobj.ParseOptions {

	log := logger.New("obj", nil)
	log.SetLevel(logger.WARN)
	log.AddWriter(&warnCollector{dec: dec})
	return tobj.ParseOptions{Flags: tobj.Triangulate, Logger: log}
}

// fill flattens a tobj parse result into the dense-array-of-objects shape
// this package's callers expect, populating the receiver in place.
func (dec *Decoder) fill(attrib *tobj.Attrib, shapes []tobj.Shape, matset *tobj.MaterialSet) {

	vertices, normals, uvs, objects := tobjutil.Flatten(attrib, shapes, matset.Materials)

	dec.Objects = objects
	dec.Vertices = vertices
	dec.Normals = normals
	dec.Uvs = uvs
	dec.Materials = make(map[string]*Material, len(matset.Materials))
	for i := range matset.Materials {
		m := &matset.Materials[i]
		dec.Materials[m.Name] = &Material{
			Name:       m.Name,
			Illum:      m.Illum,
			Opacity:    m.Dissolve,
			Refraction: m.IOR,
			Shininess:  m.Shininess,
			Ambient:    math32.Color{R: m.Ambient.R, G: m.Ambient.G, B: m.Ambient.B},
			Diffuse:    math32.Color{R: m.Diffuse.R, G: m.Diffuse.G, B: m.Diffuse.B},
			Specular:   math32.Color{R: m.Specular.R, G: m.Specular.G, B: m.Specular.B},
			Emissive:   math32.Color{R: m.Emission.R, G: m.Emission.G, B: m.Emission.B},
			MapKd:      m.DiffuseTexname,
		}
	}
}
