// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import "errors"

// Error kinds surfaced by this package. Callers match them with
// errors.Is; the concrete errors carry additional context such as the
// entity kind and index. File access failures from ParseFile and
// LoadBuffers are returned as the underlying os error instead.
var (
	// ErrDataTooShort reports an input, chunk or buffer smaller than a
	// declared or required length.
	ErrDataTooShort = errors.New("gltf: data too short")

	// ErrUnknownFormat reports an input that is neither the expected
	// container form nor a loadable URI scheme.
	ErrUnknownFormat = errors.New("gltf: unknown format")

	// ErrInvalidJSON reports a malformed JSON document.
	ErrInvalidJSON = errors.New("gltf: invalid json")

	// ErrInvalidGLTF reports well-formed JSON that violates the glTF
	// schema: a mismatched token type, a missing or out-of-range
	// reference, a node with two parents, or a failed validator type or
	// count check. Validator size and index-bound failures report
	// ErrDataTooShort.
	ErrInvalidGLTF = errors.New("gltf: invalid gltf")

	// ErrInvalidOptions reports a nil Options value.
	ErrInvalidOptions = errors.New("gltf: invalid options")
)
