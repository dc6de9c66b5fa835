// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tobj

import (
	"github.com/g3n/engine/loader/tobj/internal/lex"
	"github.com/g3n/engine/loader/tobj/internal/numeric"
)

// commandKind classifies one parsed OBJ line.
type commandKind uint8

const (
	cmdEmpty commandKind = iota
	cmdV
	cmdVN
	cmdVT
	cmdVP
	cmdF
	cmdL
	cmdP
	cmdG
	cmdO
	cmdS
	cmdUsemtl
	cmdMtllib
)

// rawLineCouple is a line ("l") operand field pair before rectification.
type rawLineCouple struct {
	v, vt int32
}

// command is the parsed representation of a single OBJ line.
type command struct {
	kind commandKind

	gv GeometricVertex
	vn VertexNormal
	vt VertexTexture
	vp ParamSpaceVertex

	faceTriplets      []rawTriplet
	faceTriangleCount int

	lineCouples []rawLineCouple
	pointIdx    []int32

	// name is a borrowed slice into the original input buffer, used
	// by G, O, USEMTL and MTLLIB. It is copied into an owned string
	// only where the spec requires it to outlive the input buffer
	// (shape construction, material lookup).
	name []byte

	smoothID int
}

// parseFloatsRequired parses exactly `required` floats, then up to
// (total-required) further optional floats, skipping spaces between
// tokens. Optional slots not present keep their zero value. count
// reports how many floats were actually found, so callers can tell an
// explicit 0 apart from an absent optional field. ok is false if
// fewer than `required` floats could be parsed.
func parseFloatsRequired(data []byte, pos, end, required, total int) (vals [4]float32, count, next int, ok bool) {
	p := pos
	n := 0
	for n < total {
		p = lex.SkipSpaces(data, p, end)
		if p >= end {
			break
		}
		v, np, vok := numeric.ParseFloat32(data, p, end)
		if !vok {
			break
		}
		vals[n] = v
		p = np
		n++
	}
	if n < required {
		return vals, n, p, false
	}
	return vals, n, p, true
}

// parseObjLine classifies and parses a single OBJ line (the content
// span [pos, end), with no line terminator included). Unknown
// directives and malformed operands produce a cmdEmpty command and a
// diagnostic on opts' logger; they never fail the overall parse.
func parseObjLine(data []byte, pos, end int, opts ParseOptions, lineNo int) command {
	p := lex.SkipSpaces(data, pos, end)
	if p >= end || data[p] == '#' {
		return command{kind: cmdEmpty}
	}

	tokEnd := lex.UntilSpace(data, p, end)
	directive := string(data[p:tokEnd])
	rest := lex.SkipSpaces(data, tokEnd, end)
	log := opts.log()

	switch directive {
	case "v":
		vals, n, _, ok := parseFloatsRequired(data, rest, end, 3, 4)
		if !ok {
			log.Warn("obj(%d): malformed 'v' line", lineNo)
			return command{kind: cmdEmpty}
		}
		gv := GeometricVertex{X: vals[0], Y: vals[1], Z: vals[2], W: 1}
		if n >= 4 {
			gv.W = vals[3]
		}
		return command{kind: cmdV, gv: gv}

	case "vn":
		vals, _, _, ok := parseFloatsRequired(data, rest, end, 3, 3)
		if !ok {
			log.Warn("obj(%d): malformed 'vn' line", lineNo)
			return command{kind: cmdEmpty}
		}
		return command{kind: cmdVN, vn: VertexNormal{I: vals[0], J: vals[1], K: vals[2]}}

	case "vt":
		vals, _, _, ok := parseFloatsRequired(data, rest, end, 1, 3)
		if !ok {
			log.Warn("obj(%d): malformed 'vt' line", lineNo)
			return command{kind: cmdEmpty}
		}
		return command{kind: cmdVT, vt: VertexTexture{U: vals[0], V: vals[1], W: vals[2]}}

	case "vp":
		vals, _, _, ok := parseFloatsRequired(data, rest, end, 1, 3)
		if !ok {
			log.Warn("obj(%d): malformed 'vp' line", lineNo)
			return command{kind: cmdEmpty}
		}
		return command{kind: cmdVP, vp: ParamSpaceVertex{U: vals[0], V: vals[1], Weight: vals[2]}}

	case "f":
		triplets, triCount, ok := parseFaceOperands(data, rest, end, opts.triangulate())
		if !ok {
			log.Warn("obj(%d): malformed face (need >= 3 vertices)", lineNo)
			return command{kind: cmdEmpty}
		}
		return command{kind: cmdF, faceTriplets: triplets, faceTriangleCount: triCount}

	case "l":
		couples, ok := parseLineOperands(data, rest, end)
		if !ok {
			log.Warn("obj(%d): malformed line (need >= 2 vertices, no normal index)", lineNo)
			return command{kind: cmdEmpty}
		}
		return command{kind: cmdL, lineCouples: couples}

	case "p":
		idx, ok := parsePointOperands(data, rest, end)
		if !ok {
			log.Warn("obj(%d): malformed point statement", lineNo)
			return command{kind: cmdEmpty}
		}
		return command{kind: cmdP, pointIdx: idx}

	case "g":
		nameEnd := lex.TrimTrailing(data, rest, lex.NameEnd(data, rest, end))
		return command{kind: cmdG, name: data[rest:nameEnd]}

	case "o":
		nameEnd := lex.TrimTrailing(data, rest, lex.NameEnd(data, rest, end))
		return command{kind: cmdO, name: data[rest:nameEnd]}

	case "s":
		id, ok := parseSmoothingOperand(data, rest, end)
		if !ok {
			log.Warn("obj(%d): malformed smoothing group", lineNo)
			return command{kind: cmdEmpty}
		}
		return command{kind: cmdS, smoothID: id}

	case "usemtl":
		nameEnd := lex.TrimTrailing(data, rest, lex.NameEnd(data, rest, end))
		return command{kind: cmdUsemtl, name: data[rest:nameEnd]}

	case "mtllib":
		nameEnd := lex.TrimTrailing(data, rest, lex.NameEnd(data, rest, end))
		return command{kind: cmdMtllib, name: data[rest:nameEnd]}

	default:
		log.Warn("obj(%d): field not supported: %s", lineNo, directive)
		return command{kind: cmdEmpty}
	}
}


// parseLineOperands parses the operand list of an "l" statement: a
// sequence of v or v/vt tokens (never v//vn or v/vt/vn — a normal
// index makes the statement malformed).
func parseLineOperands(data []byte, pos, end int) ([]rawLineCouple, bool) {
	var couples []rawLineCouple
	p := pos
	for p < end {
		p = lex.SkipSpaces(data, p, end)
		if p >= end {
			break
		}
		t, next, ok := parseTriplet(data, p, end)
		if !ok || t.vn != rawAbsent {
			return nil, false
		}
		couples = append(couples, rawLineCouple{v: t.v, vt: t.vt})
		p = next
	}
	if len(couples) < 2 {
		return nil, false
	}
	return couples, true
}

// parsePointOperands parses the operand list of a "p" statement: a
// sequence of plain (no slash) vertex indices.
func parsePointOperands(data []byte, pos, end int) ([]int32, bool) {
	var idx []int32
	p := pos
	for p < end {
		p = lex.SkipSpaces(data, p, end)
		if p >= end {
			break
		}
		v, next, ok := numeric.ParseInt(data, p, end)
		if !ok {
			return nil, false
		}
		idx = append(idx, int32(v))
		p = next
	}
	if len(idx) < 1 {
		return nil, false
	}
	return idx, true
}

// parseSmoothingOperand parses an "s" statement's single operand.
func parseSmoothingOperand(data []byte, pos, end int) (int, bool) {
	tokEnd := lex.UntilSpace(data, pos, end)
	if tokEnd == pos {
		return 0, false
	}
	tok := data[pos:tokEnd]
	switch {
	case string(tok) == "on":
		return 1, true
	case lex.IsDigit(tok[0]) || tok[0] == '+' || tok[0] == '-':
		v, next, ok := numeric.ParseInt(data, pos, tokEnd)
		if !ok || next != tokEnd {
			return 0, false
		}
		return v, true
	case tok[0] == 'f' || tok[0] == 'F':
		return 0, true
	default:
		return 0, false
	}
}
