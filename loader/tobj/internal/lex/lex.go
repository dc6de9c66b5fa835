// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lex holds the lexical primitives shared by the OBJ and MTL
// parsers: whitespace skipping, line-ending detection and
// name-terminator scanning. Every function here is bounded by an
// explicit end offset and never reads past it.
package lex

// IsSpace reports whether b is a blank (space or tab).
func IsSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// SkipSpaces advances pos past any run of spaces/tabs, stopping at end.
func SkipSpaces(data []byte, pos, end int) int {
	for pos < end && IsSpace(data[pos]) {
		pos++
	}
	return pos
}

// SkipSpacesCR advances pos past spaces, tabs and carriage returns.
func SkipSpacesCR(data []byte, pos, end int) int {
	for pos < end && (IsSpace(data[pos]) || data[pos] == '\r') {
		pos++
	}
	return pos
}

// UntilSpace returns the offset of the next space/tab/CR/NUL/newline
// starting from pos, or end if none is found before it.
func UntilSpace(data []byte, pos, end int) int {
	i := pos
	for i < end {
		switch data[i] {
		case ' ', '\t', '\r', '\n', 0:
			return i
		}
		i++
	}
	return i
}

// NameEnd scans a group/object/material name, stopping at newline, NUL,
// space, tab or '#' (start of a trailing comment).
func NameEnd(data []byte, pos, end int) int {
	i := pos
	for i < end {
		switch data[i] {
		case '\n', 0, ' ', '\t', '#':
			return i
		}
		i++
	}
	return i
}

// FindLine locates the content span of the line starting at pos: it
// returns contentEnd, the offset one past the last content byte, and
// next, the offset at which the following line begins. A lone '\r' is
// a terminator only when it is not immediately followed by '\n'; both
// '\n' and NUL terminate unconditionally. A final line with no
// terminator is reported with contentEnd == next == end.
func FindLine(data []byte, pos, end int) (contentEnd, next int) {
	i := pos
	for i < end {
		switch data[i] {
		case '\n':
			return i, i + 1
		case 0:
			return i, i + 1
		case '\r':
			if i+1 < end && data[i+1] == '\n' {
				return i, i + 2
			}
			return i, i + 1
		}
		i++
	}
	return end, end
}

// TrimTrailing removes trailing spaces, tabs and carriage returns from
// the content span [pos, end).
func TrimTrailing(data []byte, pos, end int) int {
	for end > pos {
		c := data[end-1]
		if c == ' ' || c == '\t' || c == '\r' {
			end--
			continue
		}
		break
	}
	return end
}
