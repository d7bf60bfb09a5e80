package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/scene"
)

// FrameToSVG renders a composed frame as a standalone SVG document: paper,
// then the backdrop curves, then one path per inked trail.
func FrameToSVG(fr scene.Frame) string {
	w, h := fr.Width, fr.Height
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, gray(scene.Paper)))

	if len(fr.Background) > 0 {
		sb.WriteString(fmt.Sprintf(`<g fill="none" stroke-width="%.0f">
`, scene.LineWidth))
		for _, l := range fr.Background {
			if len(l.Points) < 2 {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<path stroke="%s" d="%s"/>
`, gray(l.Shade), pathData(l.Points)))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString(`<g fill="none" stroke-linecap="round" stroke-linejoin="round">
`)
	for _, t := range fr.Trails {
		if len(t.Points) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path stroke="%s" stroke-opacity="%.3f" stroke-width="%.2f" d="%s"/>
`, gray(t.Stroke.Shade), t.Stroke.Alpha/255, t.Stroke.Width, pathData(t.Points)))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// WriteSVG writes the frame to path.
func WriteSVG(path string, fr scene.Frame) error {
	if err := os.WriteFile(path, []byte(FrameToSVG(fr)), 0644); err != nil {
		return fmt.Errorf("write svg %s: %w", path, err)
	}
	return nil
}

func pathData(pts []dynamo.Vec2) string {
	var sb strings.Builder
	for i, p := range pts {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", p.X, p.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
		}
	}
	return sb.String()
}

func gray(v float64) string {
	g, _, _, _ := scene.Stroke{Shade: v}.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", g, g, g)
}
