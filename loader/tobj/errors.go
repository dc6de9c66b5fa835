// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tobj

import "fmt"

// ErrCode is the closed set of fatal return codes the parsers can
// report. Its integer values form the ABI and must not change.
type ErrCode int

// Return codes, matching the original C API's values exactly.
const (
	NoCommand          ErrCode = 1
	Success            ErrCode = 0
	NotSet             ErrCode = -1
	Memory             ErrCode = -2
	Empty              ErrCode = -3
	FileOperation      ErrCode = -4
	InvalidParameter   ErrCode = -5
	UnknownParameter   ErrCode = -6
	MalformedParameter ErrCode = -7
)

var errCodeText = map[ErrCode]string{
	NoCommand:          "line carried no directive",
	Success:            "success",
	NotSet:             "not set",
	Memory:             "allocation failed",
	Empty:              "empty input",
	FileOperation:      "file could not be opened",
	InvalidParameter:   "invalid parameter",
	UnknownParameter:   "unrecognized directive",
	MalformedParameter: "malformed parameter",
}

func (e ErrCode) Error() string {
	if s, ok := errCodeText[e]; ok {
		return s
	}
	return fmt.Sprintf("tobj: unknown error code %d", int(e))
}

// parseError wraps an ErrCode with the extra context (line number,
// offending text) useful for diagnosing a fatal failure.
type parseError struct {
	code ErrCode
	msg  string
}

func (e *parseError) Error() string {
	if e.msg == "" {
		return e.code.Error()
	}
	return fmt.Sprintf("%s: %s", e.code.Error(), e.msg)
}

func (e *parseError) Unwrap() error {
	return e.code
}

func fail(code ErrCode, format string, args ...interface{}) error {
	return &parseError{code: code, msg: fmt.Sprintf(format, args...)}
}
