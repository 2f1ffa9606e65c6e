// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import (
	"github.com/vilya/gltf/math32"
)

// NodeTransformLocal returns the local transform of node ni as a
// column-major matrix: the explicit matrix when present, otherwise the
// composition T * R * S of the TRS properties.
func (d *Document) NodeTransformLocal(ni int) *math32.Matrix4 {

	n := &d.Nodes[ni]
	m := math32.NewMatrix4()
	if n.HasMatrix {
		m.FromArray(n.Matrix[:], 0)
		return m
	}

	position := math32.NewVector3(n.Translation[0], n.Translation[1], n.Translation[2])
	rotation := math32.NewQuaternion(n.Rotation[0], n.Rotation[1], n.Rotation[2], n.Rotation[3])
	scale := math32.NewVector3(n.Scale[0], n.Scale[1], n.Scale[2])
	return m.Compose(position, rotation, scale)
}

// NodeTransformWorld returns the world transform of node ni: its local
// matrix premultiplied by every ancestor's, root first.
func (d *Document) NodeTransformWorld(ni int) *math32.Matrix4 {

	m := d.NodeTransformLocal(ni)
	for p := d.nodeParent[ni]; p >= 0; p = d.nodeParent[p] {
		m.MultiplyMatrices(d.NodeTransformLocal(p), m)
	}
	return m
}
