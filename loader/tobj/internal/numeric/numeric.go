// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric implements a locale-independent decimal literal
// recognizer for the OBJ/MTL core. It exists because the host's
// numeric conversion routines (strconv included) are locale sensitive
// in C and, even in Go where strconv is not locale-bound, the grammar
// accepted here is narrower and its assembly method (power-of-five
// times power-of-two, rather than a library strtod) is specified
// explicitly so results are reproducible bit-for-bit across hosts.
package numeric

import "github.com/g3n/engine/loader/tobj/internal/lex"

// ParseFloat32 parses a float literal of the grammar
//
//	[sign] digit {digit} ["." digit {digit}] [("e"|"E") [sign] digit {digit}]
//
// starting at pos and bounded by end. It returns the parsed value, the
// offset just past the recognized literal, and whether parsing
// succeeded. On failure the returned value is 0 and next is the offset
// of the first non-conforming character.
func ParseFloat32(data []byte, pos, end int) (value float32, next int, ok bool) {
	v, n, ok := parseDouble(data, pos, end)
	if !ok {
		return 0, n, false
	}
	return float32(v), n, true
}

// ParseInt parses an optionally-signed decimal integer starting at
// pos, bounded by end. It returns the parsed value, the offset just
// past the recognized literal, and whether parsing succeeded.
func ParseInt(data []byte, pos, end int) (value int, next int, ok bool) {
	sign := 1
	i := pos
	if i < end && (data[i] == '+' || data[i] == '-') {
		if data[i] == '-' {
			sign = -1
		}
		i++
	}
	start := i
	n := 0
	for i < end && lex.IsDigit(data[i]) {
		n = n*10 + int(data[i]-'0')
		i++
	}
	if i == start {
		return 0, i, false
	}
	return sign * n, i, true
}

// parseInteger parses [sign] digit {digit}; it is the building block
// tryParseDouble_integer covers for both the mantissa and the exponent
// of a float literal.
func parseInteger(data []byte, pos, end int) (sign int, value int, next int, ok bool) {
	sign = 1
	i := pos
	if i < end && (data[i] == '+' || data[i] == '-') {
		if data[i] == '-' {
			sign = -1
		}
		i++
		if i >= end {
			return sign, 0, i, false
		}
	} else if i >= end || !lex.IsDigit(data[i]) {
		return sign, 0, i, false
	}
	start := i
	for i < end && lex.IsDigit(data[i]) {
		value = value*10 + int(data[i]-'0')
		i++
	}
	return sign, value, i, i > start
}

// parseDouble implements the grammar described in the package comment,
// assembling the result as sign * mantissa * 5^exponent * 2^exponent
// (the exponent inverted when negative) rather than delegating to a
// host strtod.
func parseDouble(data []byte, pos, end int) (value float64, next int, ok bool) {
	if pos >= end {
		return 0, pos, false
	}
	sign, intPart, i, good := parseInteger(data, pos, end)
	if !good {
		return 0, i, false
	}
	mantissa := float64(intPart)

	if i < end && data[i] == '.' {
		j := i + 1
		read := 0
		for j < end && lex.IsDigit(data[j]) {
			frac := 1.0
			for f := 0; f <= read; f++ {
				frac *= 0.1
			}
			mantissa += float64(data[j]-'0') * frac
			read++
			j++
		}
		i = j
	}

	expSign := 1
	exponent := 0
	if i < end && (data[i] == 'e' || data[i] == 'E') {
		es, ev, j, good := parseInteger(data, i+1, end)
		if !good {
			return 0, i + 1, false
		}
		expSign, exponent, i = es, ev, j
	}

	a := 1.0
	b := 1.0
	for k := 0; k < exponent; k++ {
		a *= 5.0
		b *= 2.0
	}
	if expSign < 0 {
		a = 1.0 / a
		b = 1.0 / b
	}
	result := mantissa * a * b
	if sign < 0 {
		result = -result
	}
	return result, i, true
}
