// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tobj

import "github.com/g3n/engine/util/logger"

// ParseFlag controls optional OBJ-parsing behavior.
type ParseFlag uint32

// Triangulate enables triangle-fan triangulation of faces with more
// than 3 vertices.
const Triangulate ParseFlag = 1 << 0

// ParseOptions configures ParseObj, ParseMTLFile and
// ParseMTLFromReader. The zero value is valid: no triangulation, and
// diagnostics go to logger.Default.
type ParseOptions struct {
	Flags  ParseFlag
	Logger *logger.Logger
}

func (o ParseOptions) triangulate() bool {
	return o.Flags&Triangulate != 0
}

func (o ParseOptions) log() *logger.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logger.Default
}
