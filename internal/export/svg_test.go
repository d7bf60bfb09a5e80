package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/hidden/internal/dynamo"
	"github.com/san-kum/hidden/internal/scene"
)

func testFrame() scene.Frame {
	return scene.Frame{
		Width:  200,
		Height: 100,
		Background: []scene.Line{
			{Shade: 25, Points: []dynamo.Vec2{{X: 0, Y: 10}, {X: 100, Y: 20}, {X: 200, Y: 30}}},
		},
		Trails: []scene.Polyline{
			{Points: []dynamo.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}}, Stroke: scene.Stroke{Shade: 5, Alpha: 95, Width: 4}},
			{Points: []dynamo.Vec2{{X: 3, Y: 3}}, Stroke: scene.Stroke{Shade: 5, Alpha: 95, Width: 4}},
		},
	}
}

func TestFrameToSVG(t *testing.T) {
	svg := FrameToSVG(testFrame())

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete svg document")
	}
	if !strings.Contains(svg, `width="200" height="100"`) {
		t.Error("missing frame size")
	}
	if !strings.Contains(svg, `fill="#ffffff"`) {
		t.Error("missing paper background")
	}
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("expected 2 paths (single-point trail skipped), got %d", n)
	}
	if !strings.Contains(svg, `stroke="#191919"`) {
		t.Error("missing backdrop shade")
	}
	if !strings.Contains(svg, `stroke-opacity="0.373"`) || !strings.Contains(svg, `stroke-width="4.00"`) {
		t.Error("missing trail stroke attributes")
	}
	if !strings.Contains(svg, "M1.0,1.0 L2.0,2.0") {
		t.Error("missing trail path data")
	}
}

func TestFrameToSVGEmpty(t *testing.T) {
	svg := FrameToSVG(scene.Frame{})
	if strings.Contains(svg, "<path") {
		t.Error("empty frame should have no paths")
	}
	if !strings.Contains(svg, `width="1" height="1"`) {
		t.Error("degenerate frame should fall back to a 1x1 canvas")
	}
}

func TestWriteSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.svg")
	if err := WriteSVG(path, testFrame()); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != FrameToSVG(testFrame()) {
		t.Error("file content differs from rendered svg")
	}

	if err := WriteSVG(filepath.Join(t.TempDir(), "missing", "frame.svg"), testFrame()); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
