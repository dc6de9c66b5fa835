// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tobj

// ParseObj parses a complete OBJ file image held in data. materials,
// when non-nil, is the material list already produced by ParseMTLFile
// for whatever file the OBJ's mtllib directive names — ParseObj itself
// never opens a file (§5: "the OBJ parser does not do I/O at all").
// Faces reference materials by binding their usemtl name against this
// list; an unresolved or absent binding yields MaterialID -1.
//
// On success every output array is populated (or explicitly
// zero-sized); on failure no partial output is returned.
func ParseObj(data []byte, materials []Material, opts ParseOptions) (*Attrib, []Shape, error) {
	if len(data) == 0 {
		return nil, nil, fail(InvalidParameter, "nil or zero-length input")
	}

	cmds, c, err := traverseObj(data, opts)
	if err != nil {
		return nil, nil, err
	}
	if len(cmds) == 0 {
		return nil, nil, fail(Empty, "zero-line input")
	}

	attrib := materialize(cmds, c, materials)
	shapes := buildShapes(cmds)
	return attrib, shapes, nil
}

// mtllibName returns the name referenced by the first mtllib directive
// in data, and whether one was found. Callers use this to decide what
// to hand ParseMTLFile before calling ParseObj with the result.
func mtllibName(data []byte, opts ParseOptions) (string, bool) {
	cmds, c, err := traverseObj(data, opts)
	if err != nil || c.mtllibIdx < 0 {
		return "", false
	}
	return string(cmds[c.mtllibIdx].name), true
}

// MtllibName reports the filename named by the first "mtllib"
// directive found in an OBJ file image, or ("", false) if none is
// present. It is a thin convenience over the same two-pass scan
// ParseObj performs, useful for callers that want to resolve and load
// the material file themselves before calling ParseObj.
func MtllibName(data []byte, opts ParseOptions) (string, bool) {
	return mtllibName(data, opts)
}
