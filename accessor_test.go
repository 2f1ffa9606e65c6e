// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import (
	"encoding/binary"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumComponents(t *testing.T) {

	tests := []struct {
		t Type
		n int
	}{
		{TypeScalar, 1},
		{TypeVec2, 2},
		{TypeVec3, 3},
		{TypeVec4, 4},
		{TypeMat2, 4},
		{TypeMat3, 9},
		{TypeMat4, 16},
	}
	for _, test := range tests {
		assert.Equal(t, test.n, NumComponents(test.t))
	}
}

func TestComponentSize(t *testing.T) {

	assert.Equal(t, 1, ComponentSize(ComponentTypeI8))
	assert.Equal(t, 1, ComponentSize(ComponentTypeU8))
	assert.Equal(t, 2, ComponentSize(ComponentTypeI16))
	assert.Equal(t, 2, ComponentSize(ComponentTypeU16))
	assert.Equal(t, 4, ComponentSize(ComponentTypeU32))
	assert.Equal(t, 4, ComponentSize(ComponentTypeF32))
	assert.Equal(t, 0, ComponentSize(ComponentTypeInvalid))
}

func TestElementSizeMatrixAlignment(t *testing.T) {

	// Matrix columns are 4-byte aligned.
	assert.Equal(t, 8, ElementSize(TypeMat2, ComponentTypeI8))
	assert.Equal(t, 12, ElementSize(TypeMat3, ComponentTypeU8))
	assert.Equal(t, 24, ElementSize(TypeMat3, ComponentTypeU16))

	// No padding for everything else.
	assert.Equal(t, 16, ElementSize(TypeMat2, ComponentTypeF32))
	assert.Equal(t, 36, ElementSize(TypeMat3, ComponentTypeF32))
	assert.Equal(t, 64, ElementSize(TypeMat4, ComponentTypeF32))
	assert.Equal(t, 12, ElementSize(TypeVec3, ComponentTypeF32))
	assert.Equal(t, 2, ElementSize(TypeVec2, ComponentTypeU8))
}

// accessorDoc builds a single accessor document over a loaded buffer.
func accessorDoc(t *testing.T, accessorJSON string, data []byte) *Document {

	size := strconv.Itoa(len(data))
	js := `{
		"asset":{"version":"2.0"},
		"buffers":[{"byteLength":` + size + `}],
		"bufferViews":[{"buffer":0,"byteLength":` + size + `}],
		"accessors":[` + accessorJSON + `]
	}`
	doc := parseString(t, js)
	doc.Buffers[0].Data = data
	doc.Buffers[0].Source = BufferSourceOwned
	return doc
}

func TestReadFloatNormalizedU16(t *testing.T) {

	doc := accessorDoc(t,
		`{"bufferView":0,"componentType":5123,"normalized":true,"count":1,"type":"SCALAR"}`,
		[]byte{0xFF, 0xFF})

	var out [1]float32
	assert.True(t, doc.AccessorReadFloat(0, 0, out[:]))
	assert.InDelta(t, 1.0, float64(out[0]), 1e-6)
}

func TestReadFloatNormalizedU8(t *testing.T) {

	doc := accessorDoc(t,
		`{"bufferView":0,"componentType":5121,"normalized":true,"count":2,"type":"SCALAR"}`,
		[]byte{0xFF, 0x7F})

	var out [1]float32
	assert.True(t, doc.AccessorReadFloat(0, 0, out[:]))
	assert.InDelta(t, 1.0, float64(out[0]), 1e-6)

	// 127/255, not 127/127
	assert.True(t, doc.AccessorReadFloat(0, 1, out[:]))
	assert.InDelta(t, 127.0/255.0, float64(out[0]), 1e-6)
}

func TestReadFloatNormalizedSigned(t *testing.T) {

	data := make([]byte, 4)
	binary.LittleEndian.PutUint16(data[0:2], uint16(0x7FFF))
	data[2] = 0x81 // int8 -127

	doc := accessorDoc(t,
		`{"bufferView":0,"componentType":5122,"normalized":true,"count":1,"type":"SCALAR"}`,
		data)
	var out [1]float32
	assert.True(t, doc.AccessorReadFloat(0, 0, out[:]))
	assert.InDelta(t, 1.0, float64(out[0]), 1e-6)

	doc = accessorDoc(t,
		`{"bufferView":0,"byteOffset":2,"componentType":5120,"normalized":true,"count":1,"type":"SCALAR"}`,
		data)
	assert.True(t, doc.AccessorReadFloat(0, 0, out[:]))
	assert.InDelta(t, -1.0, float64(out[0]), 1e-6)
}

func TestReadFloatVec3(t *testing.T) {

	data := make([]byte, 24)
	for i, f := range []float32{1, 2, 3, 4, 5, 6} {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(f))
	}
	doc := accessorDoc(t,
		`{"bufferView":0,"componentType":5126,"count":2,"type":"VEC3"}`,
		data)

	var out [3]float32
	assert.True(t, doc.AccessorReadFloat(0, 0, out[:]))
	assert.Equal(t, [3]float32{1, 2, 3}, out)
	assert.True(t, doc.AccessorReadFloat(0, 1, out[:]))
	assert.Equal(t, [3]float32{4, 5, 6}, out)

	// Output capacity below the component count is refused.
	var small [2]float32
	assert.False(t, doc.AccessorReadFloat(0, 0, small[:]))
}

func TestReadFloatIntegerCast(t *testing.T) {

	doc := accessorDoc(t,
		`{"bufferView":0,"componentType":5120,"count":2,"type":"SCALAR"}`,
		[]byte{0xFE, 5})

	var out [1]float32
	assert.True(t, doc.AccessorReadFloat(0, 0, out[:]))
	assert.Equal(t, float32(-2), out[0])
	assert.True(t, doc.AccessorReadFloat(0, 1, out[:]))
	assert.Equal(t, float32(5), out[0])
}

func TestReadFloatMat2ByteAligned(t *testing.T) {

	// Two 4-byte-aligned columns of two 1-byte components each.
	data := []byte{1, 2, 0, 0, 3, 4, 0, 0}
	doc := accessorDoc(t,
		`{"bufferView":0,"componentType":5120,"count":1,"type":"MAT2"}`,
		data)

	var out [4]float32
	assert.True(t, doc.AccessorReadFloat(0, 0, out[:]))
	assert.Equal(t, [4]float32{1, 2, 3, 4}, out)
}

func TestReadFloatMat3ShortAligned(t *testing.T) {

	data := make([]byte, 24)
	values := []int{0, 2, 4, 8, 10, 12, 16, 18, 20}
	for i, off := range values {
		binary.LittleEndian.PutUint16(data[off:], uint16(i+1))
	}
	doc := accessorDoc(t,
		`{"bufferView":0,"componentType":5123,"count":1,"type":"MAT3"}`,
		data)

	var out [9]float32
	assert.True(t, doc.AccessorReadFloat(0, 0, out[:]))
	assert.Equal(t, [9]float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, out)
}

func TestReadFloatRefusals(t *testing.T) {

	// No buffer view.
	doc := parseString(t, `{
		"asset":{"version":"2.0"},
		"accessors":[{"componentType":5126,"count":1,"type":"SCALAR"}]
	}`)
	var out [1]float32
	assert.False(t, doc.AccessorReadFloat(0, 0, out[:]))

	// Unloaded buffer.
	doc = parseString(t, `{
		"asset":{"version":"2.0"},
		"buffers":[{"byteLength":4}],
		"bufferViews":[{"buffer":0,"byteLength":4}],
		"accessors":[{"bufferView":0,"componentType":5126,"count":1,"type":"SCALAR"}]
	}`)
	assert.False(t, doc.AccessorReadFloat(0, 0, out[:]))

	// Sparse accessors are not supported by the flat reader.
	doc = accessorDoc(t,
		`{"bufferView":0,"componentType":5126,"count":1,"type":"SCALAR",
			"sparse":{"count":1,"indices":{"bufferView":0,"componentType":5121},"values":{"bufferView":0}}}`,
		[]byte{0, 0, 0, 0})
	assert.False(t, doc.AccessorReadFloat(0, 0, out[:]))
}

func TestReadIndex(t *testing.T) {

	data := make([]byte, 12)
	binary.LittleEndian.PutUint16(data[0:], 513)
	binary.LittleEndian.PutUint16(data[2:], 7)

	doc := accessorDoc(t,
		`{"bufferView":0,"componentType":5123,"count":2,"type":"SCALAR"}`,
		data)
	assert.Equal(t, uint(513), doc.AccessorReadIndex(0, 0))
	assert.Equal(t, uint(7), doc.AccessorReadIndex(0, 1))

	// u8
	doc = accessorDoc(t,
		`{"bufferView":0,"componentType":5121,"count":2,"type":"SCALAR"}`,
		[]byte{9, 200})
	assert.Equal(t, uint(9), doc.AccessorReadIndex(0, 0))
	assert.Equal(t, uint(200), doc.AccessorReadIndex(0, 1))

	// u32
	data = make([]byte, 8)
	binary.LittleEndian.PutUint32(data[0:], 70000)
	doc = accessorDoc(t,
		`{"bufferView":0,"componentType":5125,"count":1,"type":"SCALAR"}`,
		data)
	assert.Equal(t, uint(70000), doc.AccessorReadIndex(0, 0))

	// f32 truncates
	data = make([]byte, 4)
	binary.LittleEndian.PutUint32(data, math.Float32bits(41.75))
	doc = accessorDoc(t,
		`{"bufferView":0,"componentType":5126,"count":1,"type":"SCALAR"}`,
		data)
	assert.Equal(t, uint(41), doc.AccessorReadIndex(0, 0))
}

func TestReadIndexNoView(t *testing.T) {

	doc := parseString(t, `{
		"asset":{"version":"2.0"},
		"accessors":[{"componentType":5125,"count":1,"type":"SCALAR"}]
	}`)
	assert.Equal(t, uint(0), doc.AccessorReadIndex(0, 0))
}
