// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tobj

import "github.com/g3n/engine/loader/tobj/internal/lex"

// counters accumulates, during the second traversal, the totals
// needed to size the final dense attribute arrays exactly, plus the
// position of the first mtllib reference.
type counters struct {
	v, vn, vt, vp, f, l, p int
	shapeMarks             int // number of g/o lines, used only as a capacity hint
	mtllibIdx              int // index into the command slice, or -1
}

// countLines counts the line spans in data, including a final line
// with no terminator.
func countLines(data []byte) int {
	n := 0
	pos := 0
	end := len(data)
	for pos < end {
		_, next := lex.FindLine(data, pos, end)
		n++
		pos = next
	}
	return n
}

// traverseObj runs the two-pass scan: pass 1 sizes the command slice
// from the exact line count, pass 2 parses every line into it while
// accumulating counters.
func traverseObj(data []byte, opts ParseOptions) ([]command, counters, error) {
	n := countLines(data)
	cmds := make([]command, n)
	var c counters
	c.mtllibIdx = -1

	pos := 0
	end := len(data)
	lineNo := 1
	for i := 0; i < n; i++ {
		contentEnd, next := lex.FindLine(data, pos, end)
		contentEnd = lex.TrimTrailing(data, pos, contentEnd)
		cmd := parseObjLine(data, pos, contentEnd, opts, lineNo)
		cmds[i] = cmd

		switch cmd.kind {
		case cmdV:
			c.v++
		case cmdVN:
			c.vn++
		case cmdVT:
			c.vt++
		case cmdVP:
			c.vp++
		case cmdF:
			c.f++
		case cmdL:
			c.l++
		case cmdP:
			c.p++
		case cmdG, cmdO:
			c.shapeMarks++
		case cmdMtllib:
			if c.mtllibIdx == -1 {
				c.mtllibIdx = i
			}
		}

		pos = next
		lineNo++
	}
	return cmds, c, nil
}
