package qrsvg

import (
	"strings"
	"testing"
)

func TestRenderProducesSVG(t *testing.T) {
	r := NewRenderer(4)

	svg, err := r.Render("https://example.com/files/report.pdf")
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("output is not a complete SVG document: %.60s...", svg)
	}
	if !strings.Contains(svg, `<path fill="#000000"`) {
		t.Error("output has no dark-module path")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	r := NewRenderer(4)

	first, err := r.Render("https://example.com/a")
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	second, err := r.Render("https://example.com/a")
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	if first != second {
		t.Error("identical input produced different SVG")
	}
}

func TestRenderEmptyURL(t *testing.T) {
	r := NewRenderer(4)

	if _, err := r.Render(""); err == nil {
		t.Error("expected error for empty url")
	}
}

func TestRenderModuleSizeScalesDimensions(t *testing.T) {
	small, err := NewRenderer(2).Render("https://example.com")
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	large, err := NewRenderer(8).Render("https://example.com")
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	if small == large {
		t.Error("module size had no effect on rendered dimensions")
	}
	// Both share the same viewBox; only width/height change.
	if !strings.Contains(small, "viewBox") || !strings.Contains(large, "viewBox") {
		t.Error("missing viewBox attribute")
	}
}

func TestNewRendererDefaultsModuleSize(t *testing.T) {
	r := NewRenderer(0)
	if r.moduleSize != DefaultModuleSize {
		t.Errorf("expected default module size %d, got %d", DefaultModuleSize, r.moduleSize)
	}
}
