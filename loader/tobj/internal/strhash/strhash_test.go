// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strhash

import (
	"fmt"
	"testing"
)

func TestSetGet(t *testing.T) {
	tb := New()
	tb.Set("red", 1)
	tb.Set("green", 2)
	tb.Set("blue", 3)

	if v, ok := tb.Get("green"); !ok || v != 2 {
		t.Errorf("got (%v,%v), want (2,true)", v, ok)
	}
	if _, ok := tb.Get("yellow"); ok {
		t.Error("expected yellow to be absent")
	}
}

func TestSetOverwrites(t *testing.T) {
	tb := New()
	tb.Set("mat", 1)
	tb.Set("mat", 2)
	if v, ok := tb.Get("mat"); !ok || v != 2 {
		t.Errorf("got (%v,%v), want (2,true)", v, ok)
	}
	if tb.Len() != 1 {
		t.Errorf("got Len()=%d, want 1", tb.Len())
	}
}

func TestGrowthPreservesAllEntries(t *testing.T) {
	tb := NewSize(2)
	const n = 500
	for i := 0; i < n; i++ {
		tb.Set(fmt.Sprintf("material-%d", i), int64(i))
	}
	for i := 0; i < n; i++ {
		v, ok := tb.Get(fmt.Sprintf("material-%d", i))
		if !ok || v != int64(i) {
			t.Fatalf("material-%d: got (%v,%v)", i, v, ok)
		}
	}
	if tb.Len() != n {
		t.Errorf("got Len()=%d, want %d", tb.Len(), n)
	}
}

func TestExists(t *testing.T) {
	tb := New()
	if tb.Exists("anything") {
		t.Error("expected empty table to report absent")
	}
	tb.Set("anything", 0)
	if !tb.Exists("anything") {
		t.Error("expected inserted key to exist")
	}
}
