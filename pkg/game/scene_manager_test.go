package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene 记录 Update 调用的场景假对象
type stubScene struct {
	updates   int
	lastDelta float64
}

func (s *stubScene) Update(deltaTime float64) {
	s.updates++
	s.lastDelta = deltaTime
}

func (s *stubScene) Draw(screen *ebiten.Image) {}

// TestSceneManager_SwitchTo 测试场景切换
func TestSceneManager_SwitchTo(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Errorf("Expected no initial scene")
	}

	scene := &stubScene{}
	sm.SwitchTo(scene)
	if sm.GetCurrentScene() != scene {
		t.Errorf("Expected current scene after switch")
	}
}

// TestSceneManager_UpdateDelegation 测试 Update 委托给当前场景
func TestSceneManager_UpdateDelegation(t *testing.T) {
	sm := NewSceneManager()

	// 无场景时不崩溃
	sm.Update(1.0 / 60.0)

	scene := &stubScene{}
	sm.SwitchTo(scene)
	sm.Update(1.0 / 60.0)

	if scene.updates != 1 {
		t.Errorf("Expected 1 update, got %d", scene.updates)
	}
	if scene.lastDelta != 1.0/60.0 {
		t.Errorf("Expected deltaTime 1/60, got %f", scene.lastDelta)
	}
}

// TestSceneManager_StartGame 测试通过工厂启动游戏场景
func TestSceneManager_StartGame(t *testing.T) {
	sm := NewSceneManager()

	// 工厂未设置时不崩溃、不切换
	sm.StartGame()
	if sm.GetCurrentScene() != nil {
		t.Errorf("Expected no scene without factory")
	}

	created := &stubScene{}
	sm.SetSceneFactory(func() Scene { return created })
	sm.StartGame()
	if sm.GetCurrentScene() != created {
		t.Errorf("Expected factory-created scene to be active")
	}
}
