package splatter

// VertexMode selects how the fragment stage colors a primitive's triangles.
type VertexMode uint8

const (
	// ColorMode uses the interpolated vertex color.
	ColorMode VertexMode = iota
	// TextureMode samples the bound texture at the interpolated texture
	// coordinates and multiplies by the vertex color.
	TextureMode
)

// String returns a human-readable name of the mode.
func (m VertexMode) String() string {
	switch m {
	case ColorMode:
		return "Color"
	case TextureMode:
		return "Texture"
	default:
		return "Unknown"
	}
}
