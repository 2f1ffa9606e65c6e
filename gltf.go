// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltf decodes glTF 2.0 assets, in both the standalone JSON form
// and the GLB binary container form, into a fully linked in-memory
// document, and validates the structural and referential integrity of the
// decoded graph. Image pixels are never decoded and animations are never
// sampled; the document records the references and leaves interpretation
// to the caller.
package gltf

// glTF extensions recognized by the decoder.
const (
	KhrMaterialsUnlit                 = "KHR_materials_unlit"
	KhrMaterialsPbrSpecularGlossiness = "KHR_materials_pbrSpecularGlossiness"
	KhrTextureTransform               = "KHR_texture_transform"
	KhrLightsPunctual                 = "KHR_lights_punctual"
)

// FileType identifies the container form of a parsed asset.
type FileType int

const (
	FileTypeAuto FileType = iota // Detect from the leading magic bytes
	FileTypeGLTF                 // Standalone JSON text
	FileTypeGLB                  // Binary container
)

// Options configures Parse and ParseFile.
// The zero value selects container auto-detection and automatic token sizing.
type Options struct {
	FileType       FileType // Pin the expected container form. Mismatches are rejected.
	JSONTokenCount int      // Token array capacity. 0 sizes it with a counting pre-pass.
}

// ComponentType is the data type of the components of an accessor element.
type ComponentType int

const (
	ComponentTypeInvalid ComponentType = iota
	ComponentTypeI8
	ComponentTypeU8
	ComponentTypeI16
	ComponentTypeU16
	ComponentTypeU32
	ComponentTypeF32
)

// Type is the element type of an accessor: a scalar, vector or matrix.
type Type int

const (
	TypeInvalid Type = iota
	TypeScalar
	TypeVec2
	TypeVec3
	TypeVec4
	TypeMat2
	TypeMat3
	TypeMat4
)

// BufferViewType is the usage hint of a buffer view.
type BufferViewType int

const (
	BufferViewTypeInvalid BufferViewType = iota
	BufferViewTypeIndices
	BufferViewTypeVertices
)

// PrimitiveType is the topology of a mesh primitive.
type PrimitiveType int

const (
	PrimitiveTypePoints PrimitiveType = iota
	PrimitiveTypeLines
	PrimitiveTypeLineLoop
	PrimitiveTypeLineStrip
	PrimitiveTypeTriangles
	PrimitiveTypeTriangleStrip
	PrimitiveTypeTriangleFan
)

// AlphaMode is the alpha rendering mode of a material.
type AlphaMode int

const (
	AlphaModeOpaque AlphaMode = iota
	AlphaModeMask
	AlphaModeBlend
)

// AttributeKind is the semantic class of a primitive attribute name.
type AttributeKind int

const (
	AttributeInvalid AttributeKind = iota
	AttributePosition
	AttributeNormal
	AttributeTangent
	AttributeTexCoord
	AttributeColor
	AttributeJoints
	AttributeWeights
)

// InterpolationType is the keyframe interpolation algorithm of an
// animation sampler.
type InterpolationType int

const (
	InterpolationLinear InterpolationType = iota
	InterpolationStep
	InterpolationCubicSpline
)

// AnimationPath is the node property targeted by an animation channel.
type AnimationPath int

const (
	AnimationPathInvalid AnimationPath = iota
	AnimationPathTranslation
	AnimationPathRotation
	AnimationPathScale
	AnimationPathWeights
)

// CameraType discriminates the projection payload of a Camera.
type CameraType int

const (
	CameraTypeInvalid CameraType = iota
	CameraTypePerspective
	CameraTypeOrthographic
)

// LightType discriminates the payload of a KHR_lights_punctual light.
type LightType int

const (
	LightTypeInvalid LightType = iota
	LightTypeDirectional
	LightTypePoint
	LightTypeSpot
)

// BufferSource records where a loaded buffer payload came from.
// Payloads tagged BufferSourceBIN alias the document's BIN chunk and
// share its backing array; mutating one mutates the other.
type BufferSource int

const (
	BufferSourceNone  BufferSource = iota // Not loaded
	BufferSourceOwned                     // Decoded or read into its own allocation
	BufferSourceBIN                       // Aliases the GLB BIN payload
)

// glTF componentType integer values.
const (
	BYTE           = 5120
	UNSIGNED_BYTE  = 5121
	SHORT          = 5122
	UNSIGNED_SHORT = 5123
	UNSIGNED_INT   = 5125
	FLOAT          = 5126
)

// bufferView.target values.
const (
	ARRAY_BUFFER         = 34962 // For vertex attributes
	ELEMENT_ARRAY_BUFFER = 34963 // For indices
)

// Texture filtering modes.
const (
	NEAREST                = 9728
	LINEAR                 = 9729
	NEAREST_MIPMAP_NEAREST = 9984
	LINEAR_MIPMAP_NEAREST  = 9985
	NEAREST_MIPMAP_LINEAR  = 9986
	LINEAR_MIPMAP_LINEAR   = 9987
)

// Texture wrapping modes.
const (
	CLAMP_TO_EDGE   = 33071
	MIRRORED_REPEAT = 33648
	REPEAT          = 10497
)

// Extras is the byte range of an object's "extras" member within the
// original JSON document. The zero value means no extras were present.
type Extras struct {
	Start int // Byte offset of the first byte of the extras value
	End   int // Byte offset one past the last byte
}

// Asset contains metadata about the glTF asset.
type Asset struct {
	Copyright  string // A copyright message suitable for display to credit the content creator. Not required.
	Generator  string // Tool that generated this glTF model. Not required.
	Version    string // The glTF version that this asset targets. Required.
	MinVersion string // The minimum glTF version that this asset targets. Not required.
	Extras     Extras
}

// Buffer points to binary geometry, animation, or skin data.
// Data is nil until LoadBuffers populates it.
type Buffer struct {
	ByteLength int          // The length of the buffer in bytes. Required.
	URI        string       // The URI of the buffer. Empty when the data arrives from the BIN chunk.
	Data       []byte       // Payload populated by LoadBuffers.
	Source     BufferSource // Where Data came from.
	Name       string
	Extras     Extras
}

// BufferView is a contiguous byte range within a buffer.
type BufferView struct {
	Buffer     int            // Index into Document.Buffers. Required.
	ByteOffset int            // The offset into the buffer, in bytes. Default is 0.
	ByteLength int            // The length of the view, in bytes. Required.
	ByteStride int            // The stride, in bytes. 0 means derived from the consuming accessor.
	Target     BufferViewType // Usage hint. Not required.
	Name       string
	Extras     Extras
}

// AccessorSparse overrides a small set of an accessor's elements with
// values taken from a second buffer view.
type AccessorSparse struct {
	Count                int           // Number of overridden entries. Required.
	IndicesBufferView    int           // Index into Document.BufferViews. Required.
	IndicesByteOffset    int           // Offset into the indices view. Default is 0.
	IndicesComponentType ComponentType // Restricted to the unsigned integer widths.
	ValuesBufferView     int           // Index into Document.BufferViews. Required.
	ValuesByteOffset     int           // Offset into the values view. Default is 0.
}

// Accessor is a typed view into a buffer view.
type Accessor struct {
	ComponentType ComponentType // The data type of components. Required.
	Normalized    bool          // Whether integer components map to [0,1] / [-1,1].
	Type          Type          // Scalar, vector or matrix. Required.
	ByteOffset    int           // Offset relative to the start of the buffer view. Default is 0.
	Count         int           // The number of elements. Required.
	Stride        int           // Element stride in bytes, resolved during fixup.
	BufferView    *int          // Index into Document.BufferViews. Not required.
	HasMin        bool
	HasMax        bool
	Min           [16]float32 // Minimum of each component. Only the first NumComponents entries are meaningful.
	Max           [16]float32 // Maximum of each component. Only the first NumComponents entries are meaningful.
	IsSparse      bool
	Sparse        AccessorSparse
	Name          string
	Extras        Extras
}

// Attribute binds a primitive attribute name to an accessor.
// The name is preserved verbatim; Kind and Set are parsed from it.
type Attribute struct {
	Name     string
	Kind     AttributeKind
	Set      int // The trailing _<integer> set index, 0 when absent.
	Accessor int // Index into Document.Accessors. Required.
}

// MorphTarget is a delta over a primitive's attributes.
type MorphTarget struct {
	Attributes []Attribute
}

// Primitive is geometry to be rendered with a single material.
type Primitive struct {
	Type       PrimitiveType // Topology. Default is triangles.
	Indices    *int          // Index into Document.Accessors. Not required.
	Material   *int          // Index into Document.Materials. Not required.
	Attributes []Attribute
	Targets    []MorphTarget
	Extras     Extras
}

// Mesh is a set of primitives.
type Mesh struct {
	Name       string
	Primitives []Primitive
	Weights    []float32 // Morph target weights. Not required.
	Extras     Extras
}

// TextureTransform is the KHR_texture_transform payload of a texture view.
type TextureTransform struct {
	Offset   [2]float32 // Default is [0,0].
	Rotation float32    // Radians, counter-clockwise. Default is 0.
	Scale    [2]float32 // Default is [1,1].
	TexCoord int        // Overriding texcoord set index.
}

// TextureView is a material's reference to a texture.
// The reference is absent when Texture is nil.
type TextureView struct {
	Texture      *int    // Index into Document.Textures.
	TexCoord     int     // The texcoord set index. Default is 0.
	Scale        float32 // Normal scale or occlusion strength. Default is 1.
	HasTransform bool
	Transform    TextureTransform
}

// PBRMetallicRoughness is the metallic-roughness material model.
type PBRMetallicRoughness struct {
	BaseColorTexture         TextureView
	MetallicRoughnessTexture TextureView
	BaseColorFactor          [4]float32 // Default is [1,1,1,1].
	MetallicFactor           float32    // Default is 1.
	RoughnessFactor          float32    // Default is 1.
}

// PBRSpecularGlossiness is the KHR_materials_pbrSpecularGlossiness model.
type PBRSpecularGlossiness struct {
	DiffuseTexture            TextureView
	SpecularGlossinessTexture TextureView
	DiffuseFactor             [4]float32 // Default is [1,1,1,1].
	SpecularFactor            [3]float32 // Default is [1,1,1].
	GlossinessFactor          float32    // Default is 1.
}

// Material describes the appearance of a primitive.
type Material struct {
	Name                     string
	HasPBRMetallicRoughness  bool
	PBRMetallicRoughness     PBRMetallicRoughness
	HasPBRSpecularGlossiness bool
	PBRSpecularGlossiness    PBRSpecularGlossiness
	Unlit                    bool
	NormalTexture            TextureView // Scale field holds the normal scale.
	OcclusionTexture         TextureView // Scale field holds the occlusion strength.
	EmissiveTexture          TextureView
	EmissiveFactor           [3]float32 // Default is [0,0,0].
	AlphaMode                AlphaMode  // Default is opaque.
	AlphaCutoff              float32    // Default is 0.5.
	DoubleSided              bool
	Extras                   Extras
}

// Image records a reference to image data. The pixels are never decoded.
type Image struct {
	Name       string
	URI        string // Not required.
	MimeType   string // Not required.
	BufferView *int   // Index into Document.BufferViews. Not required.
	Extras     Extras
}

// Sampler holds texture filtering and wrapping modes.
type Sampler struct {
	MagFilter int // Not required.
	MinFilter int // Not required.
	WrapS     int // Default is 10497 (REPEAT).
	WrapT     int // Default is 10497 (REPEAT).
	Name      string
	Extras    Extras
}

// Texture pairs an image with a sampler.
type Texture struct {
	Name    string
	Image   *int // Index into Document.Images. Not required.
	Sampler *int // Index into Document.Samplers. Not required.
	Extras  Extras
}

// Node is an element of the scene hierarchy.
// A node carries either an explicit matrix or TRS properties, each
// guarded by its own Has flag; the unset form keeps its identity default.
type Node struct {
	Name           string
	Children       []int // Indices into Document.Nodes.
	Mesh           *int  // Index into Document.Meshes. Not required.
	Skin           *int  // Index into Document.Skins. Not required.
	Camera         *int  // Index into Document.Cameras. Not required.
	Light          *int  // Index into Document.Lights. Not required.
	Weights        []float32
	HasMatrix      bool
	HasTranslation bool
	HasRotation    bool
	HasScale       bool
	Matrix         [16]float32 // Column-major. Default is identity.
	Translation    [3]float32  // Default is [0,0,0].
	Rotation       [4]float32  // Unit quaternion (x,y,z,w). Default is [0,0,0,1].
	Scale          [3]float32  // Default is [1,1,1].
	Extras         Extras
}

// Scene is an ordered list of root nodes.
type Scene struct {
	Name   string
	Nodes  []int // Indices into Document.Nodes.
	Extras Extras
}

// Skin defines joints and inverse-bind matrices.
type Skin struct {
	Name                string
	Joints              []int // Indices into Document.Nodes. Required.
	Skeleton            *int  // Index into Document.Nodes. Not required.
	InverseBindMatrices *int  // Index into Document.Accessors. Not required.
	Extras              Extras
}

// CameraPerspective holds a perspective projection.
type CameraPerspective struct {
	AspectRatio float32 // Not required.
	YFov        float32 // Vertical field of view in radians. Required.
	ZFar        float32 // 0 for an infinite projection.
	ZNear       float32 // Required.
}

// CameraOrthographic holds an orthographic projection.
type CameraOrthographic struct {
	XMag  float32
	YMag  float32
	ZFar  float32
	ZNear float32
}

// Camera is a projection tagged by Type.
type Camera struct {
	Name         string
	Type         CameraType
	Perspective  CameraPerspective
	Orthographic CameraOrthographic
	Extras       Extras
}

// Light is a KHR_lights_punctual light tagged by Type.
type Light struct {
	Name               string
	Type               LightType
	Color              [3]float32 // Default is [1,1,1].
	Intensity          float32    // Default is 1.
	Range              float32    // 0 for infinite range.
	SpotInnerConeAngle float32    // Default is 0.
	SpotOuterConeAngle float32    // Default is pi/4.
}

// AnimationSampler combines input and output accessors with an
// interpolation algorithm.
type AnimationSampler struct {
	Input         int // Index into Document.Accessors. Required.
	Output        int // Index into Document.Accessors. Required.
	Interpolation InterpolationType // Default is linear.
}

// AnimationChannel targets a sampler at a node property.
type AnimationChannel struct {
	Sampler    int  // Index into the owning animation's Samplers. Required.
	TargetNode *int // Index into Document.Nodes. Not required.
	TargetPath AnimationPath
}

// Animation is a named set of samplers and channels.
type Animation struct {
	Name     string
	Samplers []AnimationSampler
	Channels []AnimationChannel
	Extras   Extras
}

// Document is the root of a decoded glTF asset. It owns every entity
// array, the preserved JSON bytes, and the optional BIN payload.
// All cross-references are indices into the sibling arrays and have been
// bounds-checked by the fixup pass.
type Document struct {
	FileType           FileType
	Asset              Asset
	Buffers            []Buffer
	BufferViews        []BufferView
	Accessors          []Accessor
	Images             []Image
	Samplers           []Sampler
	Textures           []Texture
	Materials          []Material
	Meshes             []Mesh
	Skins              []Skin
	Cameras            []Camera
	Lights             []Light
	Nodes              []Node
	Scenes             []Scene
	Animations         []Animation
	Scene              *int // Index of the default scene. Not required.
	ExtensionsUsed     []string
	ExtensionsRequired []string
	Extras             Extras
	JSON               []byte // The original JSON bytes, kept for extras retrieval.
	BIN                []byte // The GLB BIN payload, nil for text form.

	nodeParent []int // Child to parent table built during fixup, -1 for roots.
}

// NodeParent returns the index of the node that lists ni among its
// children. The second result is false when ni is a hierarchy root.
func (d *Document) NodeParent(ni int) (int, bool) {

	p := d.nodeParent[ni]
	if p < 0 {
		return 0, false
	}
	return p, true
}

// ExtrasJSON returns the raw JSON slice recorded by e, or nil when no
// extras were present. The slice aliases the document's preserved bytes.
func (d *Document) ExtrasJSON(e Extras) []byte {

	if e.End <= e.Start {
		return nil
	}
	return d.JSON[e.Start:e.End]
}
