package components

import (
	"image/color"
	"testing"

	"github.com/decker502/simon/pkg/sim"
)

// TestButtonVisualComponent_Initialization 测试组件初始化
func TestButtonVisualComponent_Initialization(t *testing.T) {
	c := &ButtonVisualComponent{
		Button:    sim.ButtonBlue,
		X:         100,
		Y:         200,
		Size:      180,
		RestColor: color.RGBA{R: 10, A: 255},
		LitColor:  color.RGBA{R: 200, A: 255},
	}

	if c.Button != sim.ButtonBlue {
		t.Errorf("Expected button Blue, got %s", c.Button)
	}
	if c.Category != sim.CategoryInactive {
		t.Errorf("Expected zero-value category Inactive, got %s", c.Category)
	}
	if c.OffsetY != 0 {
		t.Errorf("Expected no initial offset, got %f", c.OffsetY)
	}
}

// TestClickableComponent_Fields 测试可点击组件字段
func TestClickableComponent_Fields(t *testing.T) {
	c := &ClickableComponent{Width: 180, Height: 180, IsEnabled: true}

	if c.Width != 180 || c.Height != 180 {
		t.Errorf("Expected 180x180 click area, got %fx%f", c.Width, c.Height)
	}
	if !c.IsEnabled {
		t.Errorf("Expected clickable enabled")
	}
}
