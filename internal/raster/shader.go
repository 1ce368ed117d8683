package raster

// Shader is a pure per-fragment color function. Implementations may
// sample the noise oracles carried in Uniforms but must have no side
// effects beyond returning a color. One Shader is resolved per
// drawable per render call.
type Shader interface {
	Shade(frag *Fragment, u *Uniforms) Color
}

// ShaderFunc adapts an ordinary function to the Shader interface.
type ShaderFunc func(frag *Fragment, u *Uniforms) Color

func (f ShaderFunc) Shade(frag *Fragment, u *Uniforms) Color {
	return f(frag, u)
}
