// Package render defines the device-agnostic half of the rendering contract:
// shared renderable resources with weak observer handles, and the conversion
// of per-frame scene captures into backend-neutral render passes.
package render

import "errors"

// Shader is a thin descriptor of a compiled program owned by the backend.
type Shader struct {
	Name        string
	VertexSrc   string
	FragmentSrc string
}

// Mesh is a thin descriptor of uploaded vertex data.
type Mesh struct {
	Name        string
	VertexCount int
	IndexCount  int
}

// Material binds a shader to its per-material uniform values.
type Material struct {
	Shader   *Shader
	Uniforms map[string]any
}

// NewMaterial fails fast on a missing shader; a material without one is a
// setup error, not a per-frame condition.
func NewMaterial(shader *Shader) (*Material, error) {
	if shader == nil {
		return nil, errors.New("render: material requires a shader")
	}
	return &Material{Shader: shader, Uniforms: make(map[string]any)}, nil
}

// Renderable pairs a mesh with a material. Multiple scene nodes may share
// one renderable.
type Renderable struct {
	Mesh     *Mesh
	Material *Material
}

func NewRenderable(mesh *Mesh, material *Material) (*Renderable, error) {
	if mesh == nil {
		return nil, errors.New("render: renderable requires a mesh")
	}
	if material == nil {
		return nil, errors.New("render: renderable requires a material")
	}
	return &Renderable{Mesh: mesh, Material: material}, nil
}
