// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import (
	"encoding/binary"
	"math"
)

// NumComponents returns the number of components of an element of the
// specified type.
func NumComponents(t Type) int {

	switch t {
	case TypeVec2:
		return 2
	case TypeVec3:
		return 3
	case TypeVec4:
		return 4
	case TypeMat2:
		return 4
	case TypeMat3:
		return 9
	case TypeMat4:
		return 16
	}
	return 1
}

// ComponentSize returns the byte size of a single component, or 0 for
// the invalid component type.
func ComponentSize(c ComponentType) int {

	switch c {
	case ComponentTypeI8, ComponentTypeU8:
		return 1
	case ComponentTypeI16, ComponentTypeU16:
		return 2
	case ComponentTypeU32, ComponentTypeF32:
		return 4
	}
	return 0
}

// ElementSize returns the byte size of one element. Matrix columns are
// 4-byte aligned, which pads mat2 and mat3 elements with small
// components beyond the plain component*count product.
func ElementSize(t Type, c ComponentType) int {

	size := ComponentSize(c)
	if t == TypeMat2 && size == 1 {
		return 8 * size
	}
	if t == TypeMat3 && (size == 1 || size == 2) {
		return 12 * size
	}
	return size * NumComponents(t)
}

// componentInt reads one component as a signed integer.
func componentInt(data []byte, c ComponentType) int64 {

	switch c {
	case ComponentTypeI16:
		return int64(int16(binary.LittleEndian.Uint16(data)))
	case ComponentTypeU16:
		return int64(binary.LittleEndian.Uint16(data))
	case ComponentTypeU32:
		return int64(binary.LittleEndian.Uint32(data))
	case ComponentTypeF32:
		return int64(math.Float32frombits(binary.LittleEndian.Uint32(data)))
	case ComponentTypeI8:
		return int64(int8(data[0]))
	default:
		return int64(data[0])
	}
}

// componentReadIndex reads one component as an index value. Float
// components truncate.
func componentReadIndex(data []byte, c ComponentType) uint {

	return uint(componentInt(data, c))
}

// componentReadFloat reads one component as a float, applying normalized
// integer conversion when requested.
func componentReadFloat(data []byte, c ComponentType, normalized bool) float32 {

	if c == ComponentTypeF32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(data))
	}

	if normalized {
		switch c {
		case ComponentTypeU32:
			return float32(binary.LittleEndian.Uint32(data)) / float32(math.MaxUint32)
		case ComponentTypeI16:
			return float32(int16(binary.LittleEndian.Uint16(data))) / float32(math.MaxInt16)
		case ComponentTypeU16:
			return float32(binary.LittleEndian.Uint16(data)) / float32(math.MaxUint16)
		case ComponentTypeI8:
			return float32(int8(data[0])) / float32(math.MaxInt8)
		default:
			return float32(data[0]) / float32(math.MaxUint8)
		}
	}

	return float32(componentInt(data, c))
}

// Matrix columns with sub-4-byte components are padded to 4-byte
// alignment, so their components sit at fixed byte offsets instead of
// striding contiguously.
var (
	mat2Offsets1 = [4]int{0, 1, 4, 5}
	mat3Offsets1 = [9]int{0, 1, 2, 4, 5, 6, 8, 9, 10}
	mat3Offsets2 = [9]int{0, 2, 4, 8, 10, 12, 16, 18, 20}
)

// elementReadFloat fills out with the components of the element starting
// at data. Returns false when out cannot hold them.
func elementReadFloat(data []byte, t Type, c ComponentType, normalized bool, out []float32) bool {

	n := NumComponents(t)
	if len(out) < n {
		return false
	}
	size := ComponentSize(c)

	if t == TypeMat2 && size == 1 {
		for i, off := range mat2Offsets1 {
			out[i] = componentReadFloat(data[off:], c, normalized)
		}
		return true
	}
	if t == TypeMat3 && size == 1 {
		for i, off := range mat3Offsets1 {
			out[i] = componentReadFloat(data[off:], c, normalized)
		}
		return true
	}
	if t == TypeMat3 && size == 2 {
		for i, off := range mat3Offsets2 {
			out[i] = componentReadFloat(data[off:], c, normalized)
		}
		return true
	}

	for i := 0; i < n; i++ {
		out[i] = componentReadFloat(data[size*i:], c, normalized)
	}
	return true
}

// accessorElement returns the byte slice of element index of accessor a,
// or nil when the accessor has no view or its buffer is not loaded.
func (d *Document) accessorElement(a *Accessor, index int) []byte {

	if a.BufferView == nil {
		return nil
	}
	view := &d.BufferViews[*a.BufferView]
	buf := d.Buffers[view.Buffer].Data
	if buf == nil {
		return nil
	}
	offset := view.ByteOffset + a.ByteOffset + a.Stride*index
	if offset < 0 || offset+ElementSize(a.Type, a.ComponentType) > len(buf) {
		return nil
	}
	return buf[offset:]
}

// AccessorReadFloat reads element index of accessor ai into out.
// It returns false when the accessor is sparse, has no buffer view, its
// buffer is not loaded, or out is smaller than the component count.
func (d *Document) AccessorReadFloat(ai, index int, out []float32) bool {

	a := &d.Accessors[ai]
	if a.IsSparse {
		return false
	}
	element := d.accessorElement(a, index)
	if element == nil {
		return false
	}
	return elementReadFloat(element, a.Type, a.ComponentType, a.Normalized, out)
}

// AccessorReadIndex reads element index of scalar accessor ai as an
// index value. It returns 0 when the accessor has no buffer view or its
// buffer is not loaded.
func (d *Document) AccessorReadIndex(ai, index int) uint {

	a := &d.Accessors[ai]
	element := d.accessorElement(a, index)
	if element == nil {
		return 0
	}
	return componentReadIndex(element, a.ComponentType)
}
