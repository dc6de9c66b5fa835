// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"testing"
)

func TestParseFloat32Basic(t *testing.T) {
	cases := []struct {
		in   string
		want float32
	}{
		{"2.0e+5", 200000.0},
		{"2.0e-5", 0.00002},
		{"2.0e-0", 2.0},
		{"-0.0E-3", 0.0},
		{"1.0324", 1.0324},
		{"-1.41", -1.41},
		{"11e2", 1100},
		{"0", 0},
		{"-0", 0},
	}
	for _, c := range cases {
		data := []byte(c.in)
		got, next, ok := ParseFloat32(data, 0, len(data))
		if !ok {
			t.Errorf("%q: parse failed", c.in)
			continue
		}
		if next != len(data) {
			t.Errorf("%q: consumed %d of %d bytes", c.in, next, len(data))
		}
		diff := math.Abs(float64(got) - float64(c.want))
		if diff > 1e-6*math.Max(1, math.Abs(float64(c.want))) {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseFloat32Malformed(t *testing.T) {
	cases := []string{"+", "-", "1e", "1e+", "."}
	for _, in := range cases {
		data := []byte(in)
		_, _, ok := ParseFloat32(data, 0, len(data))
		if ok {
			t.Errorf("%q: expected failure", in)
		}
	}
}

func TestParseFloat32StopsAtNonConforming(t *testing.T) {
	data := []byte("3.14 rest")
	got, next, ok := ParseFloat32(data, 0, len(data))
	if !ok || got != 3.14 {
		t.Fatalf("got (%v,%v)", got, ok)
	}
	if next != 4 {
		t.Errorf("got next=%d, want 4", next)
	}
}

func TestParseFloat32LocaleIndependent(t *testing.T) {
	// No decimal-comma form is ever recognized regardless of host
	// locale, because no locale-aware conversion is used at all.
	data := []byte("3,14")
	got, next, ok := ParseFloat32(data, 0, len(data))
	if !ok || got != 3 || next != 1 {
		t.Errorf("got (%v,%v,%v)", got, next, ok)
	}
}

func TestParseInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"123", 123},
		{"-42", -42},
		{"+7", 7},
		{"0", 0},
	}
	for _, c := range cases {
		data := []byte(c.in)
		got, next, ok := ParseInt(data, 0, len(data))
		if !ok || got != c.want || next != len(data) {
			t.Errorf("%q: got (%v,%v,%v), want %v", c.in, got, next, ok, c.want)
		}
	}
}
