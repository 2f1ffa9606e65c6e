// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import (
	"encoding/binary"
	"fmt"
)

// GLB container framing. All fields are little-endian.
const (
	glbHeaderSize      = 12
	glbChunkHeaderSize = 8

	GLBMagic      = 0x46546C67 // "glTF"
	GLBVersion    = 2
	GLBChunkJSON  = 0x4E4F534A // "JSON"
	GLBChunkBIN   = 0x004E4942 // "BIN\0"
)

// demuxGLB splits a binary envelope into its JSON bytes and optional BIN
// payload. Both returned slices alias the input.
func demuxGLB(data []byte) (jsonChunk, bin []byte, err error) {

	version := binary.LittleEndian.Uint32(data[4:8])
	if version != GLBVersion {
		return nil, nil, fmt.Errorf("%w: GLB version %d", ErrUnknownFormat, version)
	}

	total := binary.LittleEndian.Uint32(data[8:12])
	if int64(total) > int64(len(data)) {
		return nil, nil, fmt.Errorf("%w: GLB declares %d bytes, input has %d", ErrDataTooShort, total, len(data))
	}

	if glbHeaderSize+glbChunkHeaderSize > len(data) {
		return nil, nil, fmt.Errorf("%w: missing JSON chunk header", ErrDataTooShort)
	}
	jsonLength := int(binary.LittleEndian.Uint32(data[glbHeaderSize : glbHeaderSize+4]))
	if glbHeaderSize+glbChunkHeaderSize+jsonLength > len(data) {
		return nil, nil, fmt.Errorf("%w: JSON chunk overruns input", ErrDataTooShort)
	}
	if binary.LittleEndian.Uint32(data[glbHeaderSize+4:glbHeaderSize+8]) != GLBChunkJSON {
		return nil, nil, fmt.Errorf("%w: first GLB chunk is not JSON", ErrUnknownFormat)
	}
	jsonStart := glbHeaderSize + glbChunkHeaderSize
	jsonChunk = data[jsonStart : jsonStart+jsonLength]

	// The BIN chunk is optional; chunks after it are ignored.
	if jsonStart+jsonLength+glbChunkHeaderSize <= len(data) {
		binHeader := jsonStart + jsonLength
		binLength := int(binary.LittleEndian.Uint32(data[binHeader : binHeader+4]))
		if binHeader+glbChunkHeaderSize+binLength > len(data) {
			return nil, nil, fmt.Errorf("%w: BIN chunk overruns input", ErrDataTooShort)
		}
		if binary.LittleEndian.Uint32(data[binHeader+4:binHeader+8]) != GLBChunkBIN {
			return nil, nil, fmt.Errorf("%w: second GLB chunk is not BIN", ErrUnknownFormat)
		}
		bin = data[binHeader+glbChunkHeaderSize : binHeader+glbChunkHeaderSize+binLength]
	}

	return jsonChunk, bin, nil
}
