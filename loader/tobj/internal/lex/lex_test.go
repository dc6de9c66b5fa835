// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lex

import "testing"

func TestFindLineLF(t *testing.T) {
	data := []byte("abc\ndef")
	ce, next := FindLine(data, 0, len(data))
	if ce != 3 || next != 4 {
		t.Errorf("got (%d,%d), want (3,4)", ce, next)
	}
}

func TestFindLineCRLF(t *testing.T) {
	data := []byte("abc\r\ndef")
	ce, next := FindLine(data, 0, len(data))
	if ce != 3 || next != 5 {
		t.Errorf("got (%d,%d), want (3,5)", ce, next)
	}
}

func TestFindLineLoneCR(t *testing.T) {
	data := []byte("abc\rdef")
	ce, next := FindLine(data, 0, len(data))
	if ce != 3 || next != 4 {
		t.Errorf("got (%d,%d), want (3,4)", ce, next)
	}
}

func TestFindLineNUL(t *testing.T) {
	data := []byte("abc\x00def")
	ce, next := FindLine(data, 0, len(data))
	if ce != 3 || next != 4 {
		t.Errorf("got (%d,%d), want (3,4)", ce, next)
	}
}

func TestFindLineNoTerminator(t *testing.T) {
	data := []byte("abc")
	ce, next := FindLine(data, 0, len(data))
	if ce != 3 || next != 3 {
		t.Errorf("got (%d,%d), want (3,3)", ce, next)
	}
}

func TestNameEndStopsAtHash(t *testing.T) {
	data := []byte("knuckle#comment")
	end := NameEnd(data, 0, len(data))
	if string(data[:end]) != "knuckle" {
		t.Errorf("got %q", data[:end])
	}
}

func TestSkipSpaces(t *testing.T) {
	data := []byte("   x")
	pos := SkipSpaces(data, 0, len(data))
	if pos != 3 {
		t.Errorf("got %d, want 3", pos)
	}
}
