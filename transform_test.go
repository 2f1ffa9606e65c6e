// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vilya/gltf/math32"
)

func TestNodeTransformLocalIdentity(t *testing.T) {

	doc := parseString(t, `{"asset":{"version":"2.0"},"nodes":[{}]}`)
	m := doc.NodeTransformLocal(0)
	assert.Equal(t, math32.NewMatrix4(), m)
}

func TestNodeTransformLocalMatrix(t *testing.T) {

	doc := parseString(t, `{
		"asset":{"version":"2.0"},
		"nodes":[{"matrix":[2,0,0,0, 0,2,0,0, 0,0,2,0, 3,4,5,1]}]
	}`)
	m := doc.NodeTransformLocal(0)

	assert.Equal(t, float32(2), m[0])
	assert.Equal(t, float32(2), m[5])
	assert.Equal(t, float32(2), m[10])
	assert.Equal(t, float32(3), m[12])
	assert.Equal(t, float32(4), m[13])
	assert.Equal(t, float32(5), m[14])
}

func TestNodeTransformLocalTRS(t *testing.T) {

	// 90 degrees about Z, uniform scale 2, translation (1,2,3).
	doc := parseString(t, `{
		"asset":{"version":"2.0"},
		"nodes":[{
			"translation":[1,2,3],
			"rotation":[0,0,0.70710678,0.70710678],
			"scale":[2,2,2]
		}]
	}`)
	m := doc.NodeTransformLocal(0)

	// First column: rotated unit X scaled by 2 -> (0,2,0).
	assert.InDelta(t, 0, float64(m[0]), 1e-5)
	assert.InDelta(t, 2, float64(m[1]), 1e-5)
	assert.InDelta(t, 0, float64(m[2]), 1e-5)

	// Second column: rotated unit Y scaled by 2 -> (-2,0,0).
	assert.InDelta(t, -2, float64(m[4]), 1e-5)
	assert.InDelta(t, 0, float64(m[5]), 1e-5)

	// Translation column.
	assert.Equal(t, float32(1), m[12])
	assert.Equal(t, float32(2), m[13])
	assert.Equal(t, float32(3), m[14])
	assert.Equal(t, float32(1), m[15])
}

func TestNodeTransformWorld(t *testing.T) {

	doc := parseString(t, `{
		"asset":{"version":"2.0"},
		"nodes":[
			{"translation":[0,0,1],"children":[1]},
			{"translation":[1,0,0],"children":[2]},
			{"translation":[0,2,0]}
		],
		"scenes":[{"nodes":[0]}]
	}`)

	m := doc.NodeTransformWorld(2)
	assert.InDelta(t, 1, float64(m[12]), 1e-6)
	assert.InDelta(t, 2, float64(m[13]), 1e-6)
	assert.InDelta(t, 1, float64(m[14]), 1e-6)

	// The root's world transform is its local transform.
	assert.Equal(t, doc.NodeTransformLocal(0), doc.NodeTransformWorld(0))
}

func TestNodeTransformWorldWithScale(t *testing.T) {

	// Parent scales by 2, child translates by (1,0,0): the child's origin
	// lands at (2,0,0) under a conventional matrix product.
	doc := parseString(t, `{
		"asset":{"version":"2.0"},
		"nodes":[
			{"scale":[2,2,2],"children":[1]},
			{"translation":[1,0,0]}
		]
	}`)

	m := doc.NodeTransformWorld(1)
	assert.InDelta(t, 2, float64(m[12]), 1e-6)
	assert.InDelta(t, 0, float64(m[13]), 1e-6)
	assert.InDelta(t, 2, float64(m[0]), 1e-6)
}
