package config

import (
	"testing"
)

// TestDefaultGameConfig 测试默认配置的取值
func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if cfg.RevealIntervalSeconds != 1.0 {
		t.Errorf("Expected revealIntervalSeconds = 1.0, got %f", cfg.RevealIntervalSeconds)
	}
	if cfg.PressDurationSeconds != 0.5 {
		t.Errorf("Expected pressDurationSeconds = 0.5, got %f", cfg.PressDurationSeconds)
	}
	if cfg.LitDurationSeconds != 0.8 {
		t.Errorf("Expected litDurationSeconds = 0.8, got %f", cfg.LitDurationSeconds)
	}
	if cfg.InterruptFeedbackOnRoundEnd {
		t.Errorf("Expected interruptFeedbackOnRoundEnd = false by default")
	}
}

// TestLoadGameConfig 测试YAML解析与默认值补全
func TestLoadGameConfig(t *testing.T) {
	data := []byte(`
revealIntervalSeconds: 1.2
litDurationSeconds: 1.0
interruptFeedbackOnRoundEnd: true
`)
	cfg, err := LoadGameConfig(data)
	if err != nil {
		t.Fatalf("Expected successful parse, got %v", err)
	}

	if cfg.RevealIntervalSeconds != 1.2 {
		t.Errorf("Expected revealIntervalSeconds = 1.2, got %f", cfg.RevealIntervalSeconds)
	}
	// 未出现的字段保持默认
	if cfg.PressDurationSeconds != 0.5 {
		t.Errorf("Expected default pressDurationSeconds = 0.5, got %f", cfg.PressDurationSeconds)
	}
	if cfg.LitDurationSeconds != 1.0 {
		t.Errorf("Expected litDurationSeconds = 1.0, got %f", cfg.LitDurationSeconds)
	}
	if !cfg.InterruptFeedbackOnRoundEnd {
		t.Errorf("Expected interruptFeedbackOnRoundEnd = true")
	}
}

// TestLoadGameConfig_Invalid 测试非法配置被拒绝
func TestLoadGameConfig_Invalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"zero interval", "revealIntervalSeconds: 0"},
		{"negative press duration", "pressDurationSeconds: -0.5"},
		{"negative lit duration", "litDurationSeconds: -1"},
		{"malformed yaml", "revealIntervalSeconds: [oops"},
	}

	for _, tc := range cases {
		if _, err := LoadGameConfig([]byte(tc.data)); err == nil {
			t.Errorf("Expected error for %s, got nil", tc.name)
		}
	}
}

// TestButtonLayouts 测试布局覆盖全部按钮且互不重叠
func TestButtonLayouts(t *testing.T) {
	layouts := ButtonLayouts()
	if len(layouts) != 4 {
		t.Fatalf("Expected 4 button layouts, got %d", len(layouts))
	}

	seen := make(map[string]bool)
	for _, l := range layouts {
		key := l.Button.String()
		if seen[key] {
			t.Errorf("Duplicate layout for button %s", key)
		}
		seen[key] = true

		if l.X < 0 || l.Y < 0 || l.X+ButtonSize > GameWindowWidth || l.Y+ButtonSize > GameWindowHeight {
			t.Errorf("Button %s layout out of window bounds: (%f, %f)", key, l.X, l.Y)
		}
		if l.RestColor == l.LitColor {
			t.Errorf("Button %s rest and lit colors must differ", key)
		}
	}

	// 位置互不重叠（简单的矩形相交检查）
	for i := 0; i < len(layouts); i++ {
		for j := i + 1; j < len(layouts); j++ {
			a, b := layouts[i], layouts[j]
			if a.X < b.X+ButtonSize && b.X < a.X+ButtonSize &&
				a.Y < b.Y+ButtonSize && b.Y < a.Y+ButtonSize {
				t.Errorf("Buttons %s and %s overlap", a.Button, b.Button)
			}
		}
	}
}
