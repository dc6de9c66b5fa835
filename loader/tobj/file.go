// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tobj

import (
	"os"
	"path/filepath"
)

// ParseObjFile is the file-system convenience wrapper around the core
// ParseObj/ParseMTLFile pair: it reads objPath, resolves and parses
// its referenced MTL file (or mtlPath, when non-empty, overriding that
// resolution), and returns the fully bound attribute set. When mtlPath
// is empty and the OBJ has no mtllib directive, no MTL file is read.
// This glue — opening files, resolving the mtllib name against the
// OBJ file's directory — is
// explicitly outside THE CORE (spec.md §1 lists "file-I/O/mmap glue"
// as an out-of-scope external collaborator); it exists only so callers
// are not forced to hand-roll it themselves, the way
// loader/obj.Decode wraps loader/obj.DecodeReader.
func ParseObjFile(objPath, mtlPath string, opts ParseOptions) (*Attrib, []Shape, *MaterialSet, error) {
	data, err := os.ReadFile(objPath)
	if err != nil {
		return nil, nil, nil, fail(FileOperation, "%s: %v", objPath, err)
	}

	if mtlPath == "" {
		if name, ok := MtllibName(data, opts); ok {
			mtlPath = filepath.Join(filepath.Dir(objPath), name)
		}
	}

	var materials *MaterialSet
	if mtlPath != "" {
		materials, err = ParseMTLFile(mtlPath, opts)
		if err != nil {
			return nil, nil, nil, err
		}
	} else {
		materials = &MaterialSet{}
	}

	attrib, shapes, err := ParseObj(data, materials.Materials, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	return attrib, shapes, materials, nil
}
