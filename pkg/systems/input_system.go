package systems

import (
	"github.com/decker502/simon/pkg/components"
	"github.com/decker502/simon/pkg/ecs"
	"github.com/decker502/simon/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem 把鼠标点击翻译成按钮按下事件
//
// 职责：
//   - 左键按下的那一帧做命中检测，每次物理点击至多产生一个事件
//   - 不关心游戏阶段：回放期间的按键由仿真核心丢弃
type InputSystem struct {
	entityManager *ecs.EntityManager
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager) *InputSystem {
	return &InputSystem{entityManager: em}
}

// CollectPresses 收集本帧产生的按钮按下事件
// 左键刚按下时对所有可点击按钮做命中检测，命中即返回对应标识
func (s *InputSystem) CollectPresses() []sim.Button {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	entities := ecs.GetEntitiesWith2[*components.ButtonVisualComponent, *components.ClickableComponent](s.entityManager)
	for _, id := range entities {
		visual, _ := ecs.GetComponent[*components.ButtonVisualComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.IsEnabled {
			continue
		}
		if hitTest(float64(mx), float64(my), visual, clickable) {
			return []sim.Button{visual.Button}
		}
	}
	return nil
}

// hitTest 点是否落在按钮的点击区域内
// 点击区域不随按下位移移动，命中判定始终用静止位置
func hitTest(px, py float64, visual *components.ButtonVisualComponent, clickable *components.ClickableComponent) bool {
	return px >= visual.X && px < visual.X+clickable.Width &&
		py >= visual.Y && py < visual.Y+clickable.Height
}
