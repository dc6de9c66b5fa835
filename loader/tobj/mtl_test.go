// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tobj

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// S2: cube.mtl
const cubeMtl = `
newmtl CubeMaterial
Ka 1.000000 1.000000 1.000000
Kd 1.000000 0.000000 0.000000
Ks 0.500000 0.250000 0.125000
Ke 0.000000 1.000000 0.000000
illum 2
d 1.000000
`

func TestCubeMaterial(t *testing.T) {
	set, err := ParseMTLFromReader(strings.NewReader(cubeMtl), ParseOptions{})
	require.NoError(t, err)
	require.Len(t, set.Materials, 1)

	m := set.Materials[0]
	require.Equal(t, "CubeMaterial", m.Name)
	require.Equal(t, Color{R: 1, G: 0, B: 0}, m.Diffuse)
	require.Equal(t, Color{R: 0.5, G: 0.25, B: 0.125}, m.Specular)
	require.Equal(t, Color{R: 1, G: 1, B: 1}, m.Ambient)
	require.Equal(t, Color{R: 0, G: 1, B: 0}, m.Emission)
	require.Equal(t, 2, m.Illum)
	require.Equal(t, float32(1.0), m.Dissolve)
}

// S3: texname-crlf.mtl — CRLF line endings, texture name must not
// carry a trailing carriage return.
func TestMtlCRLFTexname(t *testing.T) {
	content := "newmtl m\r\nmap_Kd input.jpg\r\n"
	set, err := ParseMTLFromReader(strings.NewReader(content), ParseOptions{})
	require.NoError(t, err)
	require.Len(t, set.Materials, 1)
	require.Equal(t, "input.jpg", set.Materials[0].DiffuseTexname)
}

func TestMtlDefaults(t *testing.T) {
	set, err := ParseMTLFromReader(strings.NewReader("newmtl plain\n"), ParseOptions{})
	require.NoError(t, err)
	require.Len(t, set.Materials, 1)
	m := set.Materials[0]
	require.Equal(t, float32(1), m.Dissolve)
	require.Equal(t, float32(1), m.Shininess)
	require.Equal(t, float32(1), m.IOR)
	require.Equal(t, 0, m.Illum)
	require.Equal(t, "", m.DiffuseTexname)
}

func TestMtlTrDissolveInverse(t *testing.T) {
	set, err := ParseMTLFromReader(strings.NewReader("newmtl m\nTr 0.25\n"), ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, float32(0.75), set.Materials[0].Dissolve)
}

func TestMtlDissolveOutOfRangeRejected(t *testing.T) {
	set, err := ParseMTLFromReader(strings.NewReader("newmtl m\nd 1.5\n"), ParseOptions{})
	require.NoError(t, err)
	// Malformed per-directive operand: the line is skipped, default
	// dissolve (1) is left in place, and parsing still succeeds overall.
	require.Equal(t, float32(1), set.Materials[0].Dissolve)
}

func TestMtlBumpMultiplierOptionSkipped(t *testing.T) {
	set, err := ParseMTLFromReader(strings.NewReader("newmtl m\nbump -bm 2.0 bump.png\n"), ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, "bump.png", set.Materials[0].BumpTexname)
}

func TestMtlMaterialCountMatchesNewmtlCount(t *testing.T) {
	content := "newmtl a\nKd 1 0 0\nnewmtl b\nKd 0 1 0\n"
	set, err := ParseMTLFromReader(strings.NewReader(content), ParseOptions{})
	require.NoError(t, err)
	require.Len(t, set.Materials, 2)
	require.Equal(t, "a", set.Materials[0].Name)
	require.Equal(t, "b", set.Materials[1].Name)
}

func TestParseMTLFileMissingIsFileOperation(t *testing.T) {
	_, err := ParseMTLFile("/nonexistent/path/does/not/exist.mtl", ParseOptions{})
	require.Error(t, err)
	var code ErrCode
	require.ErrorAs(t, err, &code)
	require.Equal(t, FileOperation, code)
}
