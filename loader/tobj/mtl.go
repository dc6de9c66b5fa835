// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tobj

import (
	"io"
	"os"

	"github.com/g3n/engine/loader/tobj/internal/lex"
	"github.com/g3n/engine/loader/tobj/internal/numeric"
	"github.com/g3n/engine/util/logger"
)

// ParseMTLFile opens path and parses it as a Wavefront MTL file. It
// returns FileOperation if the file cannot be opened.
func ParseMTLFile(path string, opts ParseOptions) (*MaterialSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fail(FileOperation, "%s: %v", path, err)
	}
	defer f.Close()
	return ParseMTLFromReader(f, opts)
}

// ParseMTLFromReader parses MTL-formatted content from r. Unlike
// ParseObj, the MTL parser is allowed to perform I/O: it is the
// filesystem-path-accepting half of this package's public surface
// (spec §1), but the actual opening of the file is delegated to
// ParseMTLFile / the caller so this function itself stays I/O-free and
// testable against an in-memory reader.
func ParseMTLFromReader(r io.Reader, opts ParseOptions) (*MaterialSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fail(FileOperation, "%v", err)
	}

	set := &MaterialSet{Materials: make([]Material, 0, 2)}
	var cur *Material
	log := opts.log()

	pos := 0
	end := len(data)
	lineNo := 1
	for pos < end {
		contentEnd, next := lex.FindLine(data, pos, end)
		contentEnd = lex.TrimTrailing(data, pos, contentEnd)
		parseMtlLine(data, pos, contentEnd, set, &cur, lineNo, log)
		pos = next
		lineNo++
	}

	return set, nil
}

func parseMtlLine(data []byte, pos, end int, set *MaterialSet, cur **Material, lineNo int, log *logger.Logger) {
	p := lex.SkipSpaces(data, pos, end)
	if p >= end || data[p] == '#' {
		return
	}
	tokEnd := lex.UntilSpace(data, p, end)
	directive := string(data[p:tokEnd])
	rest := lex.SkipSpaces(data, tokEnd, end)

	switch directive {
	case "newmtl":
		name := restOfLine(data, rest, end)
		set.Materials = append(set.Materials, defaultMaterial(name))
		*cur = &set.Materials[len(set.Materials)-1]
		return
	}

	if *cur == nil {
		log.Warn("mtl(%d): directive '%s' before any newmtl", lineNo, directive)
		return
	}
	m := *cur

	switch directive {
	case "Ka":
		if c, ok := parseColor3(data, rest, end); ok {
			m.Ambient = c
		} else {
			log.Warn("mtl(%d): malformed Ka", lineNo)
		}
	case "Kd":
		if c, ok := parseColor3(data, rest, end); ok {
			m.Diffuse = c
		} else {
			log.Warn("mtl(%d): malformed Kd", lineNo)
		}
	case "Ks":
		if c, ok := parseColor3(data, rest, end); ok {
			m.Specular = c
		} else {
			log.Warn("mtl(%d): malformed Ks", lineNo)
		}
	case "Kt":
		if c, ok := parseColor3(data, rest, end); ok {
			m.Transmittance = c
		} else {
			log.Warn("mtl(%d): malformed Kt", lineNo)
		}
	case "Ke":
		if c, ok := parseColor3(data, rest, end); ok {
			m.Emission = c
		} else {
			log.Warn("mtl(%d): malformed Ke", lineNo)
		}

	case "Ni":
		if v, ok := parseScalar(data, rest, end); ok {
			m.IOR = v
		} else {
			log.Warn("mtl(%d): malformed Ni", lineNo)
		}
	case "Ns":
		if v, ok := parseScalar(data, rest, end); ok {
			m.Shininess = v
		} else {
			log.Warn("mtl(%d): malformed Ns", lineNo)
		}

	case "d":
		v, ok := parseScalar(data, rest, end)
		if !ok || v < 0 || v > 1 {
			log.Warn("mtl(%d): 'd' out of range [0,1]", lineNo)
			return
		}
		m.Dissolve = v
	case "Tr":
		v, ok := parseScalar(data, rest, end)
		if !ok || v < 0 || v > 1 {
			log.Warn("mtl(%d): 'Tr' out of range [0,1]", lineNo)
			return
		}
		m.Dissolve = 1 - v
	case "disp":
		m.DisplacementTexname = restOfLine(data, rest, end)

	case "map_Ka":
		m.AmbientTexname = restOfLine(data, rest, end)
	case "map_Kd":
		m.DiffuseTexname = restOfLine(data, rest, end)
	case "map_Ks":
		m.SpecularTexname = restOfLine(data, rest, end)
	case "map_Ns":
		m.ShininessTexname = restOfLine(data, rest, end)
	case "map_d":
		m.AlphaTexname = restOfLine(data, rest, end)
	case "map_bump", "bump":
		m.BumpTexname = parseBumpFilename(data, rest, end)

	case "illum":
		v, _, ok := numeric.ParseInt(data, rest, end)
		if !ok {
			log.Warn("mtl(%d): malformed illum", lineNo)
			return
		}
		m.Illum = v

	default:
		log.Warn("mtl(%d): field not supported: %s", lineNo, directive)
	}
}

// restOfLine trims trailing blanks/CR from [pos,end) and returns an
// owned copy — the string conversion copies out of the read buffer,
// which ParseMTLFromReader discards once parsing finishes.
func restOfLine(data []byte, pos, end int) string {
	end = lex.TrimTrailing(data, pos, end)
	if end <= pos {
		return ""
	}
	return string(data[pos:end])
}

// parseBumpFilename skips a leading "-bm <multiplier>" option (the
// bump multiplier, which this package does not expose) before taking
// the rest of the line as the filename; see SPEC_FULL.md §5.
func parseBumpFilename(data []byte, pos, end int) string {
	p := lex.SkipSpaces(data, pos, end)
	tokEnd := lex.UntilSpace(data, p, end)
	if string(data[p:tokEnd]) == "-bm" {
		p = lex.SkipSpaces(data, tokEnd, end)
		argEnd := lex.UntilSpace(data, p, end)
		p = lex.SkipSpaces(data, argEnd, end)
	}
	return restOfLine(data, p, end)
}

func parseColor3(data []byte, pos, end int) (Color, bool) {
	p := pos
	var vals [3]float32
	for i := 0; i < 3; i++ {
		p = lex.SkipSpaces(data, p, end)
		v, next, ok := numeric.ParseFloat32(data, p, end)
		if !ok {
			return Color{}, false
		}
		vals[i] = v
		p = next
	}
	return Color{R: vals[0], G: vals[1], B: vals[2]}, true
}

func parseScalar(data []byte, pos, end int) (float32, bool) {
	p := lex.SkipSpaces(data, pos, end)
	v, _, ok := numeric.ParseFloat32(data, p, end)
	if !ok {
		return 0, false
	}
	return v, true
}
