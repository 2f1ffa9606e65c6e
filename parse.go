// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import (
	"fmt"
	"os"
)

// Parse decodes a glTF asset from data, auto-detecting the text and
// binary container forms unless opts pins one. The returned document
// keeps data alive: the JSON span and any BIN payload alias it.
// A nil opts is rejected; the zero Options value is the default
// configuration.
func Parse(opts *Options, data []byte) (*Document, error) {

	if opts == nil {
		return nil, ErrInvalidOptions
	}
	if len(data) < glbHeaderSize {
		return nil, fmt.Errorf("%w: input is %d bytes", ErrDataTooShort, len(data))
	}

	fileType := opts.FileType
	isGLB := data[0] == 'g' && data[1] == 'l' && data[2] == 'T' && data[3] == 'F'
	switch {
	case !isGLB && fileType == FileTypeAuto:
		fileType = FileTypeGLTF
	case !isGLB && fileType == FileTypeGLB:
		return nil, fmt.Errorf("%w: missing GLB magic", ErrUnknownFormat)
	case isGLB && fileType == FileTypeAuto:
		fileType = FileTypeGLB
	case isGLB && fileType == FileTypeGLTF:
		return nil, fmt.Errorf("%w: GLB magic in pinned text input", ErrUnknownFormat)
	}

	if fileType == FileTypeGLTF {
		log.Debug("parsing text form, %d bytes", len(data))
		doc, err := parseJSON(opts, data)
		if err != nil {
			return nil, err
		}
		doc.FileType = FileTypeGLTF
		return doc, nil
	}

	jsonChunk, bin, err := demuxGLB(data)
	if err != nil {
		return nil, err
	}
	log.Debug("parsing binary form, %d JSON bytes, %d BIN bytes", len(jsonChunk), len(bin))
	doc, err := parseJSON(opts, jsonChunk)
	if err != nil {
		return nil, err
	}
	doc.FileType = FileTypeGLB
	doc.BIN = bin
	return doc, nil
}

// ParseFile reads path and parses its contents. The file bytes stay
// referenced by the returned document.
func ParseFile(opts *Options, path string) (*Document, error) {

	if opts == nil {
		return nil, ErrInvalidOptions
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(opts, data)
}

// parseJSON tokenizes js and decodes the document graph from it.
func parseJSON(opts *Options, js []byte) (*Document, error) {

	tokenCount := opts.JSONTokenCount
	if tokenCount == 0 {
		n, err := newTokenizer().parse(js, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidJSON)
		}
		tokenCount = n
	}

	tokens := make([]token, tokenCount)
	n, err := newTokenizer().parse(js, tokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidJSON)
	}

	doc := &Document{}
	dec := &decoder{js: js, toks: tokens[:n], doc: doc}
	if _, err := dec.parseRoot(0); err != nil {
		return nil, err
	}
	if err := doc.fixup(); err != nil {
		return nil, err
	}
	doc.JSON = js
	return doc, nil
}
