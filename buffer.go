// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const dataURIPrefix = "data:"

// decodeBase64 decodes s with the standard alphabet, accepting both
// padded and unpadded payloads.
func decodeBase64(s string) ([]byte, error) {

	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}

// unescapeURI decodes %XX octets in a relative file URI.
func unescapeURI(uri string) string {

	if !strings.ContainsRune(uri, '%') {
		return uri
	}
	var b strings.Builder
	for i := 0; i < len(uri); i++ {
		if uri[i] == '%' && i+2 < len(uri) && isHexDigit(uri[i+1]) && isHexDigit(uri[i+2]) {
			b.WriteByte(hexValue(uri[i+1])<<4 | hexValue(uri[i+2]))
			i += 2
			continue
		}
		b.WriteByte(uri[i])
	}
	return b.String()
}

func hexValue(c byte) byte {

	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}

// LoadBuffers populates the Data field of every buffer. Buffer 0 with no
// URI aliases the BIN payload when one exists; data URIs are decoded in
// place; relative URIs are read from disk, resolved against the
// directory of docPath. Other URIs containing "://" are rejected.
// Buffers loaded before a failure stay loaded.
func (d *Document) LoadBuffers(docPath string) error {

	if len(d.Buffers) > 0 && d.Buffers[0].Data == nil && d.Buffers[0].URI == "" && d.BIN != nil {
		if len(d.BIN) < d.Buffers[0].ByteLength {
			return fmt.Errorf("%w: BIN payload is %d bytes, buffer 0 declares %d",
				ErrDataTooShort, len(d.BIN), d.Buffers[0].ByteLength)
		}
		d.Buffers[0].Data = d.BIN
		d.Buffers[0].Source = BufferSourceBIN
		log.Debug("buffer 0 aliases the BIN payload")
	}

	for i := range d.Buffers {
		b := &d.Buffers[i]
		if b.Data != nil || b.URI == "" {
			continue
		}

		switch {
		case strings.HasPrefix(b.URI, dataURIPrefix):
			comma := strings.IndexByte(b.URI, ',')
			if comma < 7 || b.URI[comma-7:comma] != ";base64" {
				return fmt.Errorf("%w: buffer %d data URI is not base64", ErrUnknownFormat, i)
			}
			data, err := decodeBase64(b.URI[comma+1:])
			if err != nil {
				return fmt.Errorf("%w: buffer %d: %v", ErrInvalidGLTF, i, err)
			}
			if len(data) < b.ByteLength {
				return fmt.Errorf("%w: buffer %d decoded to %d bytes, declares %d",
					ErrDataTooShort, i, len(data), b.ByteLength)
			}
			b.Data = data
			b.Source = BufferSourceOwned

		case !strings.Contains(b.URI, "://"):
			path := filepath.Join(filepath.Dir(docPath), unescapeURI(b.URI))
			log.Debug("loading buffer %d from %s", i, path)
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if len(data) < b.ByteLength {
				return fmt.Errorf("%w: buffer %d file has %d bytes, declares %d",
					ErrDataTooShort, i, len(data), b.ByteLength)
			}
			b.Data = data
			b.Source = BufferSourceOwned

		default:
			return fmt.Errorf("%w: buffer %d uri scheme is not loadable", ErrUnknownFormat, i)
		}
	}
	return nil
}
