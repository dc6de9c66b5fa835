// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tobj

// buildShapes makes a second traversal of the command list, splitting
// the face array into spans separated by g/o boundaries. Faces seen
// before the first g/o are a deliberate gap: no shape covers them,
// since no name was ever declared for them. Shape names are duplicated
// out of the borrowed command.name slice into owned strings — the
// string([]byte) conversion below always copies.
func buildShapes(cmds []command) []Shape {
	var shapes []Shape
	haveOpen := false
	var curName string
	curOffset := 0
	faceCount := 0

	for _, cmd := range cmds {
		switch cmd.kind {
		case cmdF:
			faceCount++
		case cmdG, cmdO:
			if haveOpen && faceCount > curOffset {
				shapes = append(shapes, Shape{
					Name:       curName,
					FaceOffset: curOffset,
					Length:     faceCount - curOffset,
				})
			}
			curName = string(cmd.name)
			curOffset = faceCount
			haveOpen = true
		}
	}
	if haveOpen && faceCount > curOffset {
		shapes = append(shapes, Shape{
			Name:       curName,
			FaceOffset: curOffset,
			Length:     faceCount - curOffset,
		})
	}
	return shapes
}
