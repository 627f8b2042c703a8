package tile

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/boardtile/internal/colorutil"
)

// FaceStyle describes the raised face.
type FaceStyle struct {
	OffsetTop       float64
	BackgroundColor lipgloss.Color
	BorderRadius    float64
}

// ShadowStyle describes the darker depth face drawn beneath the raised one.
// Its top corners stay square because the face covers them.
type ShadowStyle struct {
	OffsetTop               float64
	Height                  float64
	BackgroundColor         lipgloss.Color
	BorderBottomLeftRadius  float64
	BorderBottomRightRadius float64
}

// Faces is the pair of style descriptors for one render.
type Faces struct {
	Depth  float64
	Face   FaceStyle
	Shadow ShadowStyle
}

// ComputeFaces maps tile geometry and press state to the two faces.
//
// Idle, the face floats at half depth and the shadow shows depth+radius
// below it. Pressed, the face sinks by the full depth and the shadow shrinks
// to half. The shadow is pulled up by the radius so no gap shows under the
// face's rounded bottom.
func ComputeFaces(depth, borderRadius float64, background lipgloss.Color, pressed bool) Faces {
	halfDepth := depth / 2

	face := FaceStyle{
		OffsetTop:       halfDepth,
		BackgroundColor: background,
		BorderRadius:    borderRadius,
	}
	shadow := ShadowStyle{
		OffsetTop:               -borderRadius,
		Height:                  depth + borderRadius,
		BackgroundColor:         shadowColor(background),
		BorderBottomLeftRadius:  borderRadius,
		BorderBottomRightRadius: borderRadius,
	}
	if pressed {
		face.OffsetTop = depth
		shadow.Height = halfDepth + borderRadius
	}

	return Faces{Depth: depth, Face: face, Shadow: shadow}
}

// shadowColor falls back to the face colour when the colour cannot be
// derived. Config validation rejects such colours before they get here.
func shadowColor(background lipgloss.Color) lipgloss.Color {
	derived, err := colorutil.Shadow(background)
	if err != nil {
		return background
	}
	return derived
}

// Extent is the distance from the top of the tile's slot to the bottom of
// the shadow face, excluding the face height. It is the same pressed or
// idle, which is what keeps the tile's bottom edge still.
func (f Faces) Extent() float64 {
	return f.Face.OffsetTop + f.Shadow.OffsetTop + f.Shadow.Height
}

// WithFaceOffset moves the face to an intermediate offset, as during an
// animated layout pass, and resizes the shadow so Extent is unchanged.
func (f Faces) WithFaceOffset(offset float64) Faces {
	extent := f.Extent()
	f.Face.OffsetTop = offset
	f.Shadow.Height = extent - offset - f.Shadow.OffsetTop
	return f
}

// Prop keys produced by Faces.Props.
const (
	PropFaceOffsetTop           = "face.offsetTop"
	PropFaceBackgroundColor     = "face.backgroundColor"
	PropFaceBorderRadius        = "face.borderRadius"
	PropShadowOffsetTop         = "shadow.offsetTop"
	PropShadowHeight            = "shadow.height"
	PropShadowBackgroundColor   = "shadow.backgroundColor"
	PropShadowBottomLeftRadius  = "shadow.borderBottomLeftRadius"
	PropShadowBottomRightRadius = "shadow.borderBottomRightRadius"
)

// Props flattens the faces into a property map. extra is copied first, so
// any key that collides with a computed geometry field is overwritten.
func (f Faces) Props(extra map[string]any) map[string]any {
	props := make(map[string]any, len(extra)+8)
	for k, v := range extra {
		props[k] = v
	}

	props[PropFaceOffsetTop] = f.Face.OffsetTop
	props[PropFaceBackgroundColor] = string(f.Face.BackgroundColor)
	props[PropFaceBorderRadius] = f.Face.BorderRadius
	props[PropShadowOffsetTop] = f.Shadow.OffsetTop
	props[PropShadowHeight] = f.Shadow.Height
	props[PropShadowBackgroundColor] = string(f.Shadow.BackgroundColor)
	props[PropShadowBottomLeftRadius] = f.Shadow.BorderBottomLeftRadius
	props[PropShadowBottomRightRadius] = f.Shadow.BorderBottomRightRadius

	return props
}
