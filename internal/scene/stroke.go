package scene

import "github.com/san-kum/hidden/internal/dynamo"

const (
	MinInkShade = 0.0
	MaxInkShade = 10.0
	MinInkAlpha = 90.0
	MaxInkAlpha = 100.0
	MinInkWidth = 1.0
	MaxInkWidth = 10.0

	Paper        = 255 // canvas gray
	TitlePaper   = 240
	OverlayAlpha = 3 // translucent paper laid over each frame
)

// Stroke is how one trail is inked on one draw. Shade and Alpha are on the
// 0..255 scale.
type Stroke struct {
	Shade float64
	Alpha float64
	Width float64
}

// RandomStroke draws a fresh stroke. It is called per trail per draw, so
// the ink flickers independently of which particle it belongs to.
func RandomStroke(r dynamo.Rand) Stroke {
	return Stroke{
		Shade: dynamo.Uniform(r, MinInkShade, MaxInkShade),
		Alpha: dynamo.Uniform(r, MinInkAlpha, MaxInkAlpha),
		Width: dynamo.Uniform(r, MinInkWidth, MaxInkWidth),
	}
}

// RGBA returns the stroke as 8-bit gray plus alpha.
func (s Stroke) RGBA() (r, g, b, a uint8) {
	gray := clampByte(s.Shade)
	return gray, gray, gray, clampByte(s.Alpha)
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
