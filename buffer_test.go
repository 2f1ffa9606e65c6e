// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadBuffersBINAlias(t *testing.T) {

	data := buildGLB(`{"asset":{"version":"2.0"},"buffers":[{"byteLength":4}]}`, []byte{1, 2, 3, 4})
	doc, err := Parse(&Options{}, data)
	assert.NoError(t, err)

	assert.NoError(t, doc.LoadBuffers(""))
	assert.Equal(t, []byte{1, 2, 3, 4}, doc.Buffers[0].Data)
	assert.Equal(t, BufferSourceBIN, doc.Buffers[0].Source)

	// The payload aliases the BIN chunk, not a copy of it.
	assert.Same(t, &doc.BIN[0], &doc.Buffers[0].Data[0])

	// A second call leaves loaded buffers alone.
	assert.NoError(t, doc.LoadBuffers(""))
	assert.Same(t, &doc.BIN[0], &doc.Buffers[0].Data[0])
}

func TestLoadBuffersBINTooShort(t *testing.T) {

	data := buildGLB(`{"asset":{"version":"2.0"},"buffers":[{"byteLength":16}]}`, []byte{1, 2, 3, 4})
	doc, err := Parse(&Options{}, data)
	assert.NoError(t, err)

	assert.ErrorIs(t, doc.LoadBuffers(""), ErrDataTooShort)
	assert.Nil(t, doc.Buffers[0].Data)
}

func TestLoadBuffersDataURI(t *testing.T) {

	payload := []byte{10, 20, 30, 40}
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(payload)
	js := `{"asset":{"version":"2.0"},"buffers":[{"byteLength":4,"uri":"` + uri + `"}]}`
	doc := parseString(t, js)

	assert.NoError(t, doc.LoadBuffers(""))
	assert.Equal(t, payload, doc.Buffers[0].Data)
	assert.Equal(t, BufferSourceOwned, doc.Buffers[0].Source)
}

func TestLoadBuffersDataURINotBase64(t *testing.T) {

	js := `{"asset":{"version":"2.0"},"buffers":[{"byteLength":4,"uri":"data:application/octet-stream,abcd"}]}`
	doc := parseString(t, js)
	assert.ErrorIs(t, doc.LoadBuffers(""), ErrUnknownFormat)
}

func TestLoadBuffersRemoteURIRejected(t *testing.T) {

	js := `{"asset":{"version":"2.0"},"buffers":[{"byteLength":4,"uri":"https://example.com/b.bin"}]}`
	doc := parseString(t, js)
	assert.ErrorIs(t, doc.LoadBuffers("model.gltf"), ErrUnknownFormat)
}

func TestLoadBuffersFromFile(t *testing.T) {

	dir := t.TempDir()
	payload := []byte{9, 8, 7, 6, 5}
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "mesh data.bin"), payload, 0644))

	js := `{"asset":{"version":"2.0"},"buffers":[{"byteLength":5,"uri":"mesh%20data.bin"}]}`
	doc := parseString(t, js)

	assert.NoError(t, doc.LoadBuffers(filepath.Join(dir, "model.gltf")))
	assert.Equal(t, payload, doc.Buffers[0].Data)
	assert.Equal(t, BufferSourceOwned, doc.Buffers[0].Source)
}

func TestLoadBuffersMissingFile(t *testing.T) {

	js := `{"asset":{"version":"2.0"},"buffers":[{"byteLength":4,"uri":"missing.bin"}]}`
	doc := parseString(t, js)

	err := doc.LoadBuffers(filepath.Join(t.TempDir(), "model.gltf"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadBuffersFileTooShort(t *testing.T) {

	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "b.bin"), []byte{1, 2}, 0644))

	js := `{"asset":{"version":"2.0"},"buffers":[{"byteLength":8,"uri":"b.bin"}]}`
	doc := parseString(t, js)
	assert.ErrorIs(t, doc.LoadBuffers(filepath.Join(dir, "model.gltf")), ErrDataTooShort)
}

func TestLoadBuffersPartialProgressSurvives(t *testing.T) {

	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "ok.bin"), []byte{1, 2, 3, 4}, 0644))

	js := `{"asset":{"version":"2.0"},"buffers":[
		{"byteLength":4,"uri":"ok.bin"},
		{"byteLength":4,"uri":"missing.bin"}
	]}`
	doc := parseString(t, js)

	err := doc.LoadBuffers(filepath.Join(dir, "model.gltf"))
	assert.Error(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, doc.Buffers[0].Data)
	assert.Nil(t, doc.Buffers[1].Data)
}

func TestParseFile(t *testing.T) {

	dir := t.TempDir()
	path := filepath.Join(dir, "model.gltf")
	assert.NoError(t, os.WriteFile(path, []byte(`{"asset":{"version":"2.0"}}`), 0644))

	doc, err := ParseFile(&Options{}, path)
	assert.NoError(t, err)
	assert.Equal(t, "2.0", doc.Asset.Version)

	_, err = ParseFile(&Options{}, filepath.Join(dir, "missing.gltf"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
