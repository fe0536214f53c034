// Package qrsvg renders a URL as a QR code in scalable vector markup, so the
// image can be displayed at arbitrary size without re-rendering.
package qrsvg

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultModuleSize is the rendered edge length of one QR module in pixels.
const DefaultModuleSize = 4

// Renderer encodes URLs into QR code SVG strings. Error correction is fixed at
// level Q, which tolerates moderate damage or occlusion of the printed code.
type Renderer struct {
	moduleSize int
}

// NewRenderer creates a renderer with the given module pixel size.
func NewRenderer(moduleSize int) *Renderer {
	if moduleSize <= 0 {
		moduleSize = DefaultModuleSize
	}
	return &Renderer{moduleSize: moduleSize}
}

// Render encodes url into an SVG document string. The output is deterministic
// for a given renderer configuration.
func (r *Renderer) Render(url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("qrsvg: url is empty")
	}

	code, err := qrcode.New(url, qrcode.High)
	if err != nil {
		return "", fmt.Errorf("qrsvg: failed to encode url: %w", err)
	}

	// Bitmap includes the quiet-zone border required by the QR standard.
	bitmap := code.Bitmap()
	modules := len(bitmap)
	size := modules * r.moduleSize

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		size, size, modules, modules)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#ffffff"/>`, modules, modules)

	// One path for all dark modules keeps the document small.
	b.WriteString(`<path fill="#000000" d="`)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&b, "M%d %dh1v1h-1z", x, y)
			}
		}
	}
	b.WriteString(`"/></svg>`)

	return b.String(), nil
}
