package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试默认设置取值
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %f, want 0.8", s.SoundVolume)
	}
	if !s.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if s.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSettingsManager_DegradedMode 测试 nil gdata 的降级模式
// 降级模式下使用默认设置，Save 静默成功
func TestSettingsManager_DegradedMode(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	settings := sm.GetSettings()
	if settings.SoundVolume != 0.8 {
		t.Errorf("Expected default sound volume, got %f", settings.SoundVolume)
	}

	sm.SetSoundVolume(0.3)
	if err := sm.Save(); err != nil {
		t.Errorf("Expected degraded Save to succeed, got %v", err)
	}
}

// TestSettingsManager_SaveAndLoad 测试设置的持久化往返
func TestSettingsManager_SaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_simon_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm.SetSoundVolume(0.25)
	sm.SetSoundEnabled(false)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新的管理器实例应读回相同的值
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	settings := sm2.GetSettings()
	if settings.SoundVolume != 0.25 {
		t.Errorf("SoundVolume: got %f, want 0.25", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("SoundEnabled: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
}

// TestSettingsManager_VolumeClamp 测试音量钳制
func TestSettingsManager_VolumeClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetSoundVolume(1.5)
	if got := sm.GetSettings().SoundVolume; got != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %f", got)
	}

	sm.SetSoundVolume(-0.5)
	if got := sm.GetSettings().SoundVolume; got != 0.0 {
		t.Errorf("Expected volume clamped to 0.0, got %f", got)
	}
}
