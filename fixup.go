// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import "fmt"

// The decoder stores cross-references as raw integers. fixup is the
// single post-pass that bounds-checks every one of them against the
// owning array, enforces presence of the required edges, resolves
// accessor strides, and builds the node parent table. It runs after all
// sibling arrays exist and never mutates anything else.

// fixOptional validates an optional reference. nil means absent.
func fixOptional(ref *int, length int, what string) error {

	if ref == nil {
		return nil
	}
	if *ref < 0 || *ref >= length {
		return fmt.Errorf("%w: %s index %d out of range [0,%d)", ErrInvalidGLTF, what, *ref, length)
	}
	return nil
}

// fixRequired validates a required reference. The decoder seeds required
// fields with -1, so a missing member fails the range check.
func fixRequired(ref int, length int, what string) error {

	if ref < 0 || ref >= length {
		return fmt.Errorf("%w: %s index %d out of range [0,%d)", ErrInvalidGLTF, what, ref, length)
	}
	return nil
}

func (d *Document) fixup() error {

	for i := range d.Meshes {
		for j := range d.Meshes[i].Primitives {
			p := &d.Meshes[i].Primitives[j]
			if err := fixOptional(p.Indices, len(d.Accessors), "primitive indices accessor"); err != nil {
				return err
			}
			if err := fixOptional(p.Material, len(d.Materials), "primitive material"); err != nil {
				return err
			}
			for k := range p.Attributes {
				if err := fixRequired(p.Attributes[k].Accessor, len(d.Accessors), "attribute accessor"); err != nil {
					return err
				}
			}
			for k := range p.Targets {
				for m := range p.Targets[k].Attributes {
					if err := fixRequired(p.Targets[k].Attributes[m].Accessor, len(d.Accessors), "morph target accessor"); err != nil {
						return err
					}
				}
			}
		}
	}

	for i := range d.Accessors {
		a := &d.Accessors[i]
		if err := fixOptional(a.BufferView, len(d.BufferViews), "accessor buffer view"); err != nil {
			return err
		}
		if a.IsSparse {
			if err := fixRequired(a.Sparse.IndicesBufferView, len(d.BufferViews), "sparse indices buffer view"); err != nil {
				return err
			}
			if err := fixRequired(a.Sparse.ValuesBufferView, len(d.BufferViews), "sparse values buffer view"); err != nil {
				return err
			}
		}

		// Stride comes from the view when it declares one, otherwise
		// from the accessor's own element geometry.
		if a.BufferView != nil {
			a.Stride = d.BufferViews[*a.BufferView].ByteStride
		}
		if a.Stride == 0 {
			a.Stride = ElementSize(a.Type, a.ComponentType)
		}
	}

	for i := range d.Textures {
		if err := fixOptional(d.Textures[i].Image, len(d.Images), "texture image"); err != nil {
			return err
		}
		if err := fixOptional(d.Textures[i].Sampler, len(d.Samplers), "texture sampler"); err != nil {
			return err
		}
	}

	for i := range d.Images {
		if err := fixOptional(d.Images[i].BufferView, len(d.BufferViews), "image buffer view"); err != nil {
			return err
		}
	}

	for i := range d.Materials {
		m := &d.Materials[i]
		views := []*TextureView{
			&m.NormalTexture,
			&m.OcclusionTexture,
			&m.EmissiveTexture,
			&m.PBRMetallicRoughness.BaseColorTexture,
			&m.PBRMetallicRoughness.MetallicRoughnessTexture,
			&m.PBRSpecularGlossiness.DiffuseTexture,
			&m.PBRSpecularGlossiness.SpecularGlossinessTexture,
		}
		for _, v := range views {
			if err := fixOptional(v.Texture, len(d.Textures), "material texture"); err != nil {
				return err
			}
		}
	}

	for i := range d.BufferViews {
		if err := fixRequired(d.BufferViews[i].Buffer, len(d.Buffers), "buffer view buffer"); err != nil {
			return err
		}
	}

	for i := range d.Skins {
		s := &d.Skins[i]
		for _, j := range s.Joints {
			if err := fixRequired(j, len(d.Nodes), "skin joint"); err != nil {
				return err
			}
		}
		if err := fixOptional(s.Skeleton, len(d.Nodes), "skin skeleton"); err != nil {
			return err
		}
		if err := fixOptional(s.InverseBindMatrices, len(d.Accessors), "skin inverse bind matrices"); err != nil {
			return err
		}
	}

	// Node children establish the parent table. Every node may be
	// claimed by at most one parent: the scene graph is a forest.
	d.nodeParent = make([]int, len(d.Nodes))
	for i := range d.nodeParent {
		d.nodeParent[i] = -1
	}
	for i := range d.Nodes {
		n := &d.Nodes[i]
		for _, c := range n.Children {
			if err := fixRequired(c, len(d.Nodes), "node child"); err != nil {
				return err
			}
			if d.nodeParent[c] >= 0 {
				return fmt.Errorf("%w: node %d has more than one parent", ErrInvalidGLTF, c)
			}
			d.nodeParent[c] = i
		}
		if err := fixOptional(n.Mesh, len(d.Meshes), "node mesh"); err != nil {
			return err
		}
		if err := fixOptional(n.Skin, len(d.Skins), "node skin"); err != nil {
			return err
		}
		if err := fixOptional(n.Camera, len(d.Cameras), "node camera"); err != nil {
			return err
		}
		if err := fixOptional(n.Light, len(d.Lights), "node light"); err != nil {
			return err
		}
	}

	rooted := make([]bool, len(d.Nodes))
	for i := range d.Scenes {
		for _, r := range d.Scenes[i].Nodes {
			if err := fixRequired(r, len(d.Nodes), "scene root node"); err != nil {
				return err
			}
			if d.nodeParent[r] >= 0 {
				return fmt.Errorf("%w: scene root node %d has a parent", ErrInvalidGLTF, r)
			}
			if rooted[r] {
				return fmt.Errorf("%w: node %d roots more than one scene", ErrInvalidGLTF, r)
			}
			rooted[r] = true
		}
	}

	if err := fixOptional(d.Scene, len(d.Scenes), "default scene"); err != nil {
		return err
	}

	for i := range d.Animations {
		a := &d.Animations[i]
		for j := range a.Samplers {
			if err := fixRequired(a.Samplers[j].Input, len(d.Accessors), "animation sampler input"); err != nil {
				return err
			}
			if err := fixRequired(a.Samplers[j].Output, len(d.Accessors), "animation sampler output"); err != nil {
				return err
			}
		}
		for j := range a.Channels {
			if err := fixRequired(a.Channels[j].Sampler, len(a.Samplers), "animation channel sampler"); err != nil {
				return err
			}
			if err := fixOptional(a.Channels[j].TargetNode, len(d.Nodes), "animation channel target node"); err != nil {
				return err
			}
		}
	}

	return nil
}
