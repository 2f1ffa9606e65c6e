// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import "fmt"

// indexBound returns the largest index stored in the given range of a
// loaded buffer view. The caller guarantees the component type is one of
// the unsigned widths and the range is inside the buffer.
func (d *Document) indexBound(viewIndex, offset int, c ComponentType, count int) uint {

	view := &d.BufferViews[viewIndex]
	data := d.Buffers[view.Buffer].Data[view.ByteOffset+offset:]
	size := ComponentSize(c)

	var bound uint
	for i := 0; i < count; i++ {
		if v := componentReadIndex(data[i*size:], c); v > bound {
			bound = v
		}
	}
	return bound
}

func isUnsignedIndexComponent(c ComponentType) bool {

	return c == ComponentTypeU8 || c == ComponentTypeU16 || c == ComponentTypeU32
}

// Validate cross-checks the decoded graph: accessor and sparse ranges
// against their buffer views, buffer views against their buffers,
// attribute and morph target count uniformity within meshes, index
// component types, and node morph weights. Size under-runs report
// ErrDataTooShort; schema violations report ErrInvalidGLTF. The graph is
// never mutated and callers may ignore the verdict.
func (d *Document) Validate() error {

	for i := range d.Accessors {
		a := &d.Accessors[i]
		elementSize := ElementSize(a.Type, a.ComponentType)

		if a.BufferView != nil {
			req := a.ByteOffset + a.Stride*(a.Count-1) + elementSize
			if d.BufferViews[*a.BufferView].ByteLength < req {
				return fmt.Errorf("%w: accessor %d needs %d bytes, view has %d",
					ErrDataTooShort, i, req, d.BufferViews[*a.BufferView].ByteLength)
			}
		}

		if a.IsSparse {
			s := &a.Sparse
			indicesSize := ElementSize(TypeScalar, s.IndicesComponentType)
			indicesReq := s.IndicesByteOffset + indicesSize*s.Count
			valuesReq := s.ValuesByteOffset + elementSize*s.Count

			if d.BufferViews[s.IndicesBufferView].ByteLength < indicesReq ||
				d.BufferViews[s.ValuesBufferView].ByteLength < valuesReq {
				return fmt.Errorf("%w: sparse block of accessor %d overruns its views", ErrDataTooShort, i)
			}

			if !isUnsignedIndexComponent(s.IndicesComponentType) {
				return fmt.Errorf("%w: sparse indices of accessor %d have a non unsigned integer component type", ErrInvalidGLTF, i)
			}

			if d.Buffers[d.BufferViews[s.IndicesBufferView].Buffer].Data != nil {
				bound := d.indexBound(s.IndicesBufferView, s.IndicesByteOffset, s.IndicesComponentType, s.Count)
				if bound >= uint(a.Count) {
					return fmt.Errorf("%w: sparse index %d exceeds accessor %d count %d", ErrDataTooShort, bound, i, a.Count)
				}
			}
		}
	}

	for i := range d.BufferViews {
		v := &d.BufferViews[i]
		if req := v.ByteOffset + v.ByteLength; d.Buffers[v.Buffer].ByteLength < req {
			return fmt.Errorf("%w: buffer view %d needs %d bytes, buffer has %d",
				ErrDataTooShort, i, req, d.Buffers[v.Buffer].ByteLength)
		}
	}

	for i := range d.Meshes {
		m := &d.Meshes[i]

		if len(m.Weights) > 0 && len(m.Primitives) > 0 &&
			len(m.Primitives[0].Targets) != len(m.Weights) {
			return fmt.Errorf("%w: mesh %d has %d weights for %d morph targets",
				ErrInvalidGLTF, i, len(m.Weights), len(m.Primitives[0].Targets))
		}

		for j := range m.Primitives {
			p := &m.Primitives[j]

			if len(p.Targets) != len(m.Primitives[0].Targets) {
				return fmt.Errorf("%w: mesh %d primitives disagree on morph target count", ErrInvalidGLTF, i)
			}

			if len(p.Attributes) == 0 {
				continue
			}
			first := &d.Accessors[p.Attributes[0].Accessor]

			for k := range p.Attributes {
				if d.Accessors[p.Attributes[k].Accessor].Count != first.Count {
					return fmt.Errorf("%w: mesh %d primitive %d attributes disagree on element count", ErrInvalidGLTF, i, j)
				}
			}
			for k := range p.Targets {
				for _, attr := range p.Targets[k].Attributes {
					if d.Accessors[attr.Accessor].Count != first.Count {
						return fmt.Errorf("%w: mesh %d primitive %d morph target attributes disagree on element count", ErrInvalidGLTF, i, j)
					}
				}
			}

			if p.Indices == nil {
				continue
			}
			indices := &d.Accessors[*p.Indices]
			if !isUnsignedIndexComponent(indices.ComponentType) {
				return fmt.Errorf("%w: mesh %d primitive %d indices have a non unsigned integer component type", ErrInvalidGLTF, i, j)
			}
			if indices.BufferView != nil &&
				d.Buffers[d.BufferViews[*indices.BufferView].Buffer].Data != nil {
				bound := d.indexBound(*indices.BufferView, indices.ByteOffset, indices.ComponentType, indices.Count)
				if bound >= uint(first.Count) {
					return fmt.Errorf("%w: mesh %d primitive %d index %d exceeds vertex count %d",
						ErrDataTooShort, i, j, bound, first.Count)
				}
			}
		}
	}

	for i := range d.Nodes {
		n := &d.Nodes[i]
		if len(n.Weights) > 0 && n.Mesh != nil {
			mesh := &d.Meshes[*n.Mesh]
			if len(mesh.Primitives) > 0 && len(mesh.Primitives[0].Targets) != len(n.Weights) {
				return fmt.Errorf("%w: node %d has %d weights for %d morph targets",
					ErrInvalidGLTF, i, len(n.Weights), len(mesh.Primitives[0].Targets))
			}
		}
	}

	return nil
}
