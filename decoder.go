// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// decoder walks the token stream and populates the document. Each parse
// method takes the index of the token it consumes and returns the index
// of the first token after it. Cross-references are stored as plain
// array indices; the fixup pass bounds-checks them once every sibling
// array exists. Required index fields are seeded with -1 so that fixup
// can tell "missing" from "index 0".
type decoder struct {
	js   []byte
	toks []token
	doc  *Document
}

func (d *decoder) structural(i int, what string) error {

	if i >= 0 && i < len(d.toks) {
		return fmt.Errorf("%w: %s at byte %d", ErrInvalidGLTF, what, d.toks[i].start)
	}
	return fmt.Errorf("%w: %s", ErrInvalidGLTF, what)
}

func (d *decoder) bytes(i int) []byte {

	t := d.toks[i]
	return d.js[t.start:t.end]
}

// strEq reports whether token i is a string with exactly the value s.
func (d *decoder) strEq(i int, s string) bool {

	t := d.toks[i]
	return t.kind == tokenString && t.end-t.start == len(s) && string(d.js[t.start:t.end]) == s
}

// checkKey verifies that token i is an object key (a string with an
// attached value).
func (d *decoder) checkKey(i int) error {

	if t := d.toks[i]; t.kind != tokenString || t.size == 0 {
		return d.structural(i, "expected object key")
	}
	return nil
}

func (d *decoder) checkKind(i int, k tokenKind) error {

	if d.toks[i].kind != k {
		return d.structural(i, "unexpected token type")
	}
	return nil
}

func (d *decoder) toInt(i int) (int, error) {

	if err := d.checkKind(i, tokenPrimitive); err != nil {
		return 0, err
	}
	s := string(d.bytes(i))
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, d.structural(i, "expected integer")
	}
	return int(f), nil
}

func (d *decoder) toFloat(i int) (float32, error) {

	if err := d.checkKind(i, tokenPrimitive); err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(string(d.bytes(i)), 32)
	if err != nil {
		return 0, d.structural(i, "expected number")
	}
	return float32(f), nil
}

func (d *decoder) toBool(i int) (bool, error) {

	if err := d.checkKind(i, tokenPrimitive); err != nil {
		return false, err
	}
	return string(d.bytes(i)) == "true", nil
}

func (d *decoder) toString(i int) (string, error) {

	if err := d.checkKind(i, tokenString); err != nil {
		return "", err
	}
	return string(d.bytes(i)), nil
}

// toIndex reads an integer cross-reference into an optional field.
func (d *decoder) toIndex(i int) (*int, error) {

	v, err := d.toInt(i)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// skip consumes token i and its entire sub-tree by child count.
func (d *decoder) skip(i int) (int, error) {

	switch d.toks[i].kind {
	case tokenArray:
		size := d.toks[i].size
		i++
		for j := 0; j < size; j++ {
			var err error
			if i, err = d.skip(i); err != nil {
				return 0, err
			}
		}
		return i, nil
	case tokenObject:
		size := d.toks[i].size
		i++
		for j := 0; j < size; j++ {
			if err := d.checkKey(i); err != nil {
				return 0, err
			}
			i++
			var err error
			if i, err = d.skip(i); err != nil {
				return 0, err
			}
		}
		return i, nil
	default:
		return i + 1, nil
	}
}

// extras records the byte span of the value at token i without copying.
func (d *decoder) extras(i int, out *Extras) (int, error) {

	out.Start = d.toks[i].start
	out.End = d.toks[i].end
	return d.skip(i)
}

// floatArray reads an array of exactly n numbers.
func (d *decoder) floatArray(i int, out []float32, n int) (int, error) {

	if err := d.checkKind(i, tokenArray); err != nil {
		return 0, err
	}
	if d.toks[i].size != n {
		return 0, d.structural(i, "unexpected array length")
	}
	i++
	for j := 0; j < n; j++ {
		f, err := d.toFloat(i)
		if err != nil {
			return 0, err
		}
		out[j] = f
		i++
	}
	return i, nil
}

// floatSlice reads an array of numbers of whatever length it has.
func (d *decoder) floatSlice(i int) ([]float32, int, error) {

	if err := d.checkKind(i, tokenArray); err != nil {
		return nil, 0, err
	}
	out := make([]float32, d.toks[i].size)
	i, err := d.floatArray(i, out, len(out))
	return out, i, err
}

// intSlice reads an array of integers of whatever length it has.
func (d *decoder) intSlice(i int) ([]int, int, error) {

	if err := d.checkKind(i, tokenArray); err != nil {
		return nil, 0, err
	}
	out := make([]int, d.toks[i].size)
	i++
	for j := range out {
		v, err := d.toInt(i)
		if err != nil {
			return nil, 0, err
		}
		out[j] = v
		i++
	}
	return out, i, nil
}

// stringSlice reads an array of strings of whatever length it has.
func (d *decoder) stringSlice(i int) ([]string, int, error) {

	if err := d.checkKind(i, tokenArray); err != nil {
		return nil, 0, err
	}
	out := make([]string, d.toks[i].size)
	i++
	for j := range out {
		s, err := d.toString(i)
		if err != nil {
			return nil, 0, err
		}
		out[j] = s
		i++
	}
	return out, i, nil
}

// arraySize verifies token i is an array and returns its child count.
func (d *decoder) arraySize(i int) (int, error) {

	if err := d.checkKind(i, tokenArray); err != nil {
		return 0, err
	}
	return d.toks[i].size, nil
}

// objectSize verifies token i is an object and returns its member count.
func (d *decoder) objectSize(i int) (int, error) {

	if err := d.checkKind(i, tokenObject); err != nil {
		return 0, err
	}
	return d.toks[i].size, nil
}

// componentType maps the glTF componentType integer. Unknown values
// decode as invalid and are caught downstream.
func componentTypeFrom(v int) ComponentType {

	switch v {
	case BYTE:
		return ComponentTypeI8
	case UNSIGNED_BYTE:
		return ComponentTypeU8
	case SHORT:
		return ComponentTypeI16
	case UNSIGNED_SHORT:
		return ComponentTypeU16
	case UNSIGNED_INT:
		return ComponentTypeU32
	case FLOAT:
		return ComponentTypeF32
	}
	return ComponentTypeInvalid
}

// parseAttributeName splits an attribute name into its semantic tag and
// optional trailing _<integer> set index. Unrecognized prefixes keep the
// invalid tag; the caller preserves the name verbatim either way.
func parseAttributeName(name string) (AttributeKind, int) {

	base := name
	us := strings.IndexByte(name, '_')
	if us >= 0 {
		base = name[:us]
	}

	var kind AttributeKind
	switch base {
	case "POSITION":
		kind = AttributePosition
	case "NORMAL":
		kind = AttributeNormal
	case "TANGENT":
		kind = AttributeTangent
	case "TEXCOORD":
		kind = AttributeTexCoord
	case "COLOR":
		kind = AttributeColor
	case "JOINTS":
		kind = AttributeJoints
	case "WEIGHTS":
		kind = AttributeWeights
	default:
		kind = AttributeInvalid
	}

	set := 0
	if us >= 0 && kind != AttributeInvalid {
		set, _ = strconv.Atoi(name[us+1:])
	}
	return kind, set
}

// parseRoot decodes the top-level glTF object.
func (d *decoder) parseRoot(i int) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}

		switch {
		case d.strEq(i, "asset"):
			i, err = d.parseAsset(i + 1)
		case d.strEq(i, "buffers"):
			i, err = d.parseBuffers(i + 1)
		case d.strEq(i, "bufferViews"):
			i, err = d.parseBufferViews(i + 1)
		case d.strEq(i, "accessors"):
			i, err = d.parseAccessors(i + 1)
		case d.strEq(i, "images"):
			i, err = d.parseImages(i + 1)
		case d.strEq(i, "samplers"):
			i, err = d.parseSamplers(i + 1)
		case d.strEq(i, "textures"):
			i, err = d.parseTextures(i + 1)
		case d.strEq(i, "materials"):
			i, err = d.parseMaterials(i + 1)
		case d.strEq(i, "meshes"):
			i, err = d.parseMeshes(i + 1)
		case d.strEq(i, "skins"):
			i, err = d.parseSkins(i + 1)
		case d.strEq(i, "cameras"):
			i, err = d.parseCameras(i + 1)
		case d.strEq(i, "nodes"):
			i, err = d.parseNodes(i + 1)
		case d.strEq(i, "scenes"):
			i, err = d.parseScenes(i + 1)
		case d.strEq(i, "scene"):
			d.doc.Scene, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "animations"):
			i, err = d.parseAnimations(i + 1)
		case d.strEq(i, "extensionsUsed"):
			d.doc.ExtensionsUsed, i, err = d.stringSlice(i + 1)
		case d.strEq(i, "extensionsRequired"):
			d.doc.ExtensionsRequired, i, err = d.stringSlice(i + 1)
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &d.doc.Extras)
		case d.strEq(i, "extensions"):
			i, err = d.parseRootExtensions(i + 1)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

// parseRootExtensions recognizes KHR_lights_punctual and skips the rest.
func (d *decoder) parseRootExtensions(i int) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		if d.strEq(i, KhrLightsPunctual) {
			i++
			var lightsSize int
			if lightsSize, err = d.objectSize(i); err != nil {
				return 0, err
			}
			i++
			for k := 0; k < lightsSize; k++ {
				if err := d.checkKey(i); err != nil {
					return 0, err
				}
				if d.strEq(i, "lights") {
					i, err = d.parseLights(i + 1)
				} else {
					i, err = d.skip(i + 1)
				}
				if err != nil {
					return 0, err
				}
			}
		} else {
			if i, err = d.skip(i + 1); err != nil {
				return 0, err
			}
		}
	}
	return i, nil
}

func (d *decoder) parseAsset(i int) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	a := &d.doc.Asset
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "copyright"):
			a.Copyright, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "generator"):
			a.Generator, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "version"):
			a.Version, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "minVersion"):
			a.MinVersion, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &a.Extras)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseBuffers(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.Buffers = make([]Buffer, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseBuffer(i, &d.doc.Buffers[j]); err != nil {
			return 0, err
		}
	}
	log.Debug("decoded %d buffers", size)
	return i, nil
}

func (d *decoder) parseBuffer(i int, out *Buffer) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "byteLength"):
			out.ByteLength, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "uri"):
			out.URI, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseBufferViews(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.BufferViews = make([]BufferView, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseBufferView(i, &d.doc.BufferViews[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseBufferView(i int, out *BufferView) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	out.Buffer = -1
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "buffer"):
			out.Buffer, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "byteOffset"):
			out.ByteOffset, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "byteLength"):
			out.ByteLength, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "byteStride"):
			out.ByteStride, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "target"):
			var v int
			v, err = d.toInt(i + 1)
			switch v {
			case ARRAY_BUFFER:
				out.Target = BufferViewTypeVertices
			case ELEMENT_ARRAY_BUFFER:
				out.Target = BufferViewTypeIndices
			default:
				out.Target = BufferViewTypeInvalid
			}
			i += 2
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseAccessors(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.Accessors = make([]Accessor, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseAccessor(i, &d.doc.Accessors[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseAccessor(i int, out *Accessor) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "bufferView"):
			out.BufferView, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "byteOffset"):
			out.ByteOffset, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "componentType"):
			var v int
			v, err = d.toInt(i + 1)
			out.ComponentType = componentTypeFrom(v)
			i += 2
		case d.strEq(i, "normalized"):
			out.Normalized, err = d.toBool(i + 1)
			i += 2
		case d.strEq(i, "count"):
			out.Count, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "type"):
			i++
			switch {
			case d.strEq(i, "SCALAR"):
				out.Type = TypeScalar
			case d.strEq(i, "VEC2"):
				out.Type = TypeVec2
			case d.strEq(i, "VEC3"):
				out.Type = TypeVec3
			case d.strEq(i, "VEC4"):
				out.Type = TypeVec4
			case d.strEq(i, "MAT2"):
				out.Type = TypeMat2
			case d.strEq(i, "MAT3"):
				out.Type = TypeMat3
			case d.strEq(i, "MAT4"):
				out.Type = TypeMat4
			}
			i++
		case d.strEq(i, "min"):
			// min may precede type, so the expected length is unknown
			// here; the element count bounds it instead.
			out.HasMin = true
			n, aerr := d.arraySize(i + 1)
			if aerr != nil {
				return 0, aerr
			}
			if n > 16 {
				return 0, d.structural(i+1, "min array too long")
			}
			i, err = d.floatArray(i+1, out.Min[:n], n)
		case d.strEq(i, "max"):
			out.HasMax = true
			n, aerr := d.arraySize(i + 1)
			if aerr != nil {
				return 0, aerr
			}
			if n > 16 {
				return 0, d.structural(i+1, "max array too long")
			}
			i, err = d.floatArray(i+1, out.Max[:n], n)
		case d.strEq(i, "sparse"):
			out.IsSparse = true
			i, err = d.parseAccessorSparse(i+1, &out.Sparse)
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseAccessorSparse(i int, out *AccessorSparse) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	out.IndicesBufferView = -1
	out.ValuesBufferView = -1
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "count"):
			out.Count, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "indices"):
			i, err = d.parseSparseIndices(i+1, out)
		case d.strEq(i, "values"):
			i, err = d.parseSparseValues(i+1, out)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseSparseIndices(i int, out *AccessorSparse) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "bufferView"):
			out.IndicesBufferView, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "byteOffset"):
			out.IndicesByteOffset, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "componentType"):
			var v int
			v, err = d.toInt(i + 1)
			out.IndicesComponentType = componentTypeFrom(v)
			i += 2
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseSparseValues(i int, out *AccessorSparse) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "bufferView"):
			out.ValuesBufferView, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "byteOffset"):
			out.ValuesByteOffset, err = d.toInt(i + 1)
			i += 2
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseImages(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.Images = make([]Image, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseImage(i, &d.doc.Images[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseImage(i int, out *Image) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "uri"):
			out.URI, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "mimeType"):
			out.MimeType, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "bufferView"):
			out.BufferView, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseSamplers(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.Samplers = make([]Sampler, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseSampler(i, &d.doc.Samplers[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseSampler(i int, out *Sampler) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	out.WrapS = REPEAT
	out.WrapT = REPEAT
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "magFilter"):
			out.MagFilter, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "minFilter"):
			out.MinFilter, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "wrapS"):
			out.WrapS, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "wrapT"):
			out.WrapT, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseTextures(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.Textures = make([]Texture, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseTexture(i, &d.doc.Textures[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseTexture(i int, out *Texture) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "source"):
			out.Image, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "sampler"):
			out.Sampler, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

// seedTextureView applies the decode-time defaults of a texture view.
func seedTextureView(v *TextureView) {

	v.Scale = 1
	v.Transform.Scale = [2]float32{1, 1}
}

func (d *decoder) parseTextureView(i int, out *TextureView) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "index"):
			out.Texture, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "texCoord"):
			out.TexCoord, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "scale"), d.strEq(i, "strength"):
			out.Scale, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "extensions"):
			i, err = d.parseTextureViewExtensions(i+1, out)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseTextureViewExtensions(i int, out *TextureView) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		if d.strEq(i, KhrTextureTransform) {
			out.HasTransform = true
			i, err = d.parseTextureTransform(i+1, &out.Transform)
		} else {
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseTextureTransform(i int, out *TextureTransform) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "offset"):
			i, err = d.floatArray(i+1, out.Offset[:], 2)
		case d.strEq(i, "rotation"):
			out.Rotation, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "scale"):
			i, err = d.floatArray(i+1, out.Scale[:], 2)
		case d.strEq(i, "texCoord"):
			out.TexCoord, err = d.toInt(i + 1)
			i += 2
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseMaterials(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.Materials = make([]Material, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseMaterial(i, &d.doc.Materials[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseMaterial(i int, out *Material) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	// glTF defaults that zero values cannot express.
	out.PBRMetallicRoughness.BaseColorFactor = [4]float32{1, 1, 1, 1}
	out.PBRMetallicRoughness.MetallicFactor = 1
	out.PBRMetallicRoughness.RoughnessFactor = 1
	out.PBRSpecularGlossiness.DiffuseFactor = [4]float32{1, 1, 1, 1}
	out.PBRSpecularGlossiness.SpecularFactor = [3]float32{1, 1, 1}
	out.PBRSpecularGlossiness.GlossinessFactor = 1
	out.AlphaCutoff = 0.5
	seedTextureView(&out.PBRMetallicRoughness.BaseColorTexture)
	seedTextureView(&out.PBRMetallicRoughness.MetallicRoughnessTexture)
	seedTextureView(&out.PBRSpecularGlossiness.DiffuseTexture)
	seedTextureView(&out.PBRSpecularGlossiness.SpecularGlossinessTexture)
	seedTextureView(&out.NormalTexture)
	seedTextureView(&out.OcclusionTexture)
	seedTextureView(&out.EmissiveTexture)

	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "pbrMetallicRoughness"):
			out.HasPBRMetallicRoughness = true
			i, err = d.parsePBRMetallicRoughness(i+1, &out.PBRMetallicRoughness)
		case d.strEq(i, "normalTexture"):
			i, err = d.parseTextureView(i+1, &out.NormalTexture)
		case d.strEq(i, "occlusionTexture"):
			i, err = d.parseTextureView(i+1, &out.OcclusionTexture)
		case d.strEq(i, "emissiveTexture"):
			i, err = d.parseTextureView(i+1, &out.EmissiveTexture)
		case d.strEq(i, "emissiveFactor"):
			i, err = d.floatArray(i+1, out.EmissiveFactor[:], 3)
		case d.strEq(i, "alphaMode"):
			i++
			switch {
			case d.strEq(i, "OPAQUE"):
				out.AlphaMode = AlphaModeOpaque
			case d.strEq(i, "MASK"):
				out.AlphaMode = AlphaModeMask
			case d.strEq(i, "BLEND"):
				out.AlphaMode = AlphaModeBlend
			}
			i++
		case d.strEq(i, "alphaCutoff"):
			out.AlphaCutoff, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "doubleSided"):
			out.DoubleSided, err = d.toBool(i + 1)
			i += 2
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		case d.strEq(i, "extensions"):
			i, err = d.parseMaterialExtensions(i+1, out)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseMaterialExtensions(i int, out *Material) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, KhrMaterialsPbrSpecularGlossiness):
			out.HasPBRSpecularGlossiness = true
			i, err = d.parsePBRSpecularGlossiness(i+1, &out.PBRSpecularGlossiness)
		case d.strEq(i, KhrMaterialsUnlit):
			out.Unlit = true
			i, err = d.skip(i + 1)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parsePBRMetallicRoughness(i int, out *PBRMetallicRoughness) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "baseColorFactor"):
			i, err = d.floatArray(i+1, out.BaseColorFactor[:], 4)
		case d.strEq(i, "baseColorTexture"):
			i, err = d.parseTextureView(i+1, &out.BaseColorTexture)
		case d.strEq(i, "metallicFactor"):
			out.MetallicFactor, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "roughnessFactor"):
			out.RoughnessFactor, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "metallicRoughnessTexture"):
			i, err = d.parseTextureView(i+1, &out.MetallicRoughnessTexture)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parsePBRSpecularGlossiness(i int, out *PBRSpecularGlossiness) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "diffuseFactor"):
			i, err = d.floatArray(i+1, out.DiffuseFactor[:], 4)
		case d.strEq(i, "diffuseTexture"):
			i, err = d.parseTextureView(i+1, &out.DiffuseTexture)
		case d.strEq(i, "specularFactor"):
			i, err = d.floatArray(i+1, out.SpecularFactor[:], 3)
		case d.strEq(i, "glossinessFactor"):
			out.GlossinessFactor, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "specularGlossinessTexture"):
			i, err = d.parseTextureView(i+1, &out.SpecularGlossinessTexture)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseMeshes(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.Meshes = make([]Mesh, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseMesh(i, &d.doc.Meshes[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseMesh(i int, out *Mesh) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "primitives"):
			i, err = d.parsePrimitives(i+1, out)
		case d.strEq(i, "weights"):
			out.Weights, i, err = d.floatSlice(i + 1)
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parsePrimitives(i int, out *Mesh) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	out.Primitives = make([]Primitive, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parsePrimitive(i, &out.Primitives[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parsePrimitive(i int, out *Primitive) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	out.Type = PrimitiveTypeTriangles
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "mode"):
			var v int
			v, err = d.toInt(i + 1)
			out.Type = PrimitiveType(v)
			i += 2
		case d.strEq(i, "indices"):
			out.Indices, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "material"):
			out.Material, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "attributes"):
			out.Attributes, i, err = d.parseAttributes(i + 1)
		case d.strEq(i, "targets"):
			i, err = d.parseMorphTargets(i+1, out)
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

// parseAttributes decodes an attribute dictionary into an ordered list,
// classifying each name into a semantic tag and set index.
func (d *decoder) parseAttributes(i int) ([]Attribute, int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return nil, 0, err
	}
	out := make([]Attribute, size)
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return nil, 0, err
		}
		a := &out[j]
		a.Name = string(d.bytes(i))
		a.Kind, a.Set = parseAttributeName(a.Name)
		i++
		if a.Accessor, err = d.toInt(i); err != nil {
			return nil, 0, err
		}
		i++
	}
	return out, i, nil
}

func (d *decoder) parseMorphTargets(i int, out *Primitive) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	out.Targets = make([]MorphTarget, size)
	i++
	for j := 0; j < size; j++ {
		if out.Targets[j].Attributes, i, err = d.parseAttributes(i); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseSkins(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.Skins = make([]Skin, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseSkin(i, &d.doc.Skins[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseSkin(i int, out *Skin) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "joints"):
			out.Joints, i, err = d.intSlice(i + 1)
		case d.strEq(i, "skeleton"):
			out.Skeleton, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "inverseBindMatrices"):
			out.InverseBindMatrices, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseCameras(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.Cameras = make([]Camera, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseCamera(i, &d.doc.Cameras[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseCamera(i int, out *Camera) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "type"):
			i++
			switch {
			case d.strEq(i, "perspective"):
				out.Type = CameraTypePerspective
			case d.strEq(i, "orthographic"):
				out.Type = CameraTypeOrthographic
			}
			i++
		case d.strEq(i, "perspective"):
			i, err = d.parseCameraPerspective(i+1, &out.Perspective)
		case d.strEq(i, "orthographic"):
			i, err = d.parseCameraOrthographic(i+1, &out.Orthographic)
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseCameraPerspective(i int, out *CameraPerspective) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "aspectRatio"):
			out.AspectRatio, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "yfov"):
			out.YFov, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "zfar"):
			out.ZFar, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "znear"):
			out.ZNear, err = d.toFloat(i + 1)
			i += 2
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseCameraOrthographic(i int, out *CameraOrthographic) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "xmag"):
			out.XMag, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "ymag"):
			out.YMag, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "zfar"):
			out.ZFar, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "znear"):
			out.ZNear, err = d.toFloat(i + 1)
			i += 2
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseLights(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.Lights = make([]Light, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseLight(i, &d.doc.Lights[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseLight(i int, out *Light) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	out.Color = [3]float32{1, 1, 1}
	out.Intensity = 1
	out.SpotOuterConeAngle = float32(math.Pi / 4)
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "color"):
			i, err = d.floatArray(i+1, out.Color[:], 3)
		case d.strEq(i, "intensity"):
			out.Intensity, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "type"):
			i++
			switch {
			case d.strEq(i, "directional"):
				out.Type = LightTypeDirectional
			case d.strEq(i, "point"):
				out.Type = LightTypePoint
			case d.strEq(i, "spot"):
				out.Type = LightTypeSpot
			}
			i++
		case d.strEq(i, "range"):
			out.Range, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "spot"):
			i, err = d.parseLightSpot(i+1, out)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseLightSpot(i int, out *Light) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "innerConeAngle"):
			out.SpotInnerConeAngle, err = d.toFloat(i + 1)
			i += 2
		case d.strEq(i, "outerConeAngle"):
			out.SpotOuterConeAngle, err = d.toFloat(i + 1)
			i += 2
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseNodes(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.Nodes = make([]Node, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseNode(i, &d.doc.Nodes[j]); err != nil {
			return 0, err
		}
	}
	log.Debug("decoded %d nodes", size)
	return i, nil
}

func (d *decoder) parseNode(i int, out *Node) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	out.Rotation = [4]float32{0, 0, 0, 1}
	out.Scale = [3]float32{1, 1, 1}
	out.Matrix = [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "children"):
			out.Children, i, err = d.intSlice(i + 1)
		case d.strEq(i, "mesh"):
			out.Mesh, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "skin"):
			out.Skin, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "camera"):
			out.Camera, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "matrix"):
			out.HasMatrix = true
			i, err = d.floatArray(i+1, out.Matrix[:], 16)
		case d.strEq(i, "translation"):
			out.HasTranslation = true
			i, err = d.floatArray(i+1, out.Translation[:], 3)
		case d.strEq(i, "rotation"):
			out.HasRotation = true
			i, err = d.floatArray(i+1, out.Rotation[:], 4)
		case d.strEq(i, "scale"):
			out.HasScale = true
			i, err = d.floatArray(i+1, out.Scale[:], 3)
		case d.strEq(i, "weights"):
			out.Weights, i, err = d.floatSlice(i + 1)
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		case d.strEq(i, "extensions"):
			i, err = d.parseNodeExtensions(i+1, out)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseNodeExtensions(i int, out *Node) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		if d.strEq(i, KhrLightsPunctual) {
			i++
			var extSize int
			if extSize, err = d.objectSize(i); err != nil {
				return 0, err
			}
			i++
			for k := 0; k < extSize; k++ {
				if err := d.checkKey(i); err != nil {
					return 0, err
				}
				if d.strEq(i, "light") {
					out.Light, err = d.toIndex(i + 1)
					i += 2
				} else {
					i, err = d.skip(i + 1)
				}
				if err != nil {
					return 0, err
				}
			}
		} else {
			if i, err = d.skip(i + 1); err != nil {
				return 0, err
			}
		}
	}
	return i, nil
}

func (d *decoder) parseScenes(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.Scenes = make([]Scene, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseScene(i, &d.doc.Scenes[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseScene(i int, out *Scene) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "nodes"):
			out.Nodes, i, err = d.intSlice(i + 1)
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseAnimations(i int) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	d.doc.Animations = make([]Animation, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseAnimation(i, &d.doc.Animations[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseAnimation(i int, out *Animation) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "name"):
			out.Name, err = d.toString(i + 1)
			i += 2
		case d.strEq(i, "samplers"):
			i, err = d.parseAnimationSamplers(i+1, out)
		case d.strEq(i, "channels"):
			i, err = d.parseAnimationChannels(i+1, out)
		case d.strEq(i, "extras"):
			i, err = d.extras(i+1, &out.Extras)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseAnimationSamplers(i int, out *Animation) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	out.Samplers = make([]AnimationSampler, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseAnimationSampler(i, &out.Samplers[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseAnimationSampler(i int, out *AnimationSampler) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	out.Input = -1
	out.Output = -1
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "input"):
			out.Input, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "output"):
			out.Output, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "interpolation"):
			i++
			switch {
			case d.strEq(i, "LINEAR"):
				out.Interpolation = InterpolationLinear
			case d.strEq(i, "STEP"):
				out.Interpolation = InterpolationStep
			case d.strEq(i, "CUBICSPLINE"):
				out.Interpolation = InterpolationCubicSpline
			}
			i++
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseAnimationChannels(i int, out *Animation) (int, error) {

	size, err := d.arraySize(i)
	if err != nil {
		return 0, err
	}
	out.Channels = make([]AnimationChannel, size)
	i++
	for j := 0; j < size; j++ {
		if i, err = d.parseAnimationChannel(i, &out.Channels[j]); err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseAnimationChannel(i int, out *AnimationChannel) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++

	out.Sampler = -1
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "sampler"):
			out.Sampler, err = d.toInt(i + 1)
			i += 2
		case d.strEq(i, "target"):
			i, err = d.parseAnimationChannelTarget(i+1, out)
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}

func (d *decoder) parseAnimationChannelTarget(i int, out *AnimationChannel) (int, error) {

	size, err := d.objectSize(i)
	if err != nil {
		return 0, err
	}
	i++
	for j := 0; j < size; j++ {
		if err := d.checkKey(i); err != nil {
			return 0, err
		}
		switch {
		case d.strEq(i, "node"):
			out.TargetNode, err = d.toIndex(i + 1)
			i += 2
		case d.strEq(i, "path"):
			i++
			switch {
			case d.strEq(i, "translation"):
				out.TargetPath = AnimationPathTranslation
			case d.strEq(i, "rotation"):
				out.TargetPath = AnimationPathRotation
			case d.strEq(i, "scale"):
				out.TargetPath = AnimationPathScale
			case d.strEq(i, "weights"):
				out.TargetPath = AnimationPathWeights
			}
			i++
		default:
			i, err = d.skip(i + 1)
		}
		if err != nil {
			return 0, err
		}
	}
	return i, nil
}
