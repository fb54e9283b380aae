package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/simon/pkg/components"
	"github.com/decker502/simon/pkg/config"
	"github.com/decker502/simon/pkg/ecs"
	"github.com/decker502/simon/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 绘制按钮和得分
// 只读取组件状态，不触碰仿真核心
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 绘制一帧
// phase 用于在按钮下方提示当前轮到谁（回放中 / 等待输入）
func (s *RenderSystem) Draw(screen *ebiten.Image, phase sim.GamePhase) {
	// 背景
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})

	// 按钮：配色按类别选择，Y 坐标叠加按下位移
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonVisualComponent](s.entityManager) {
		visual, _ := ecs.GetComponent[*components.ButtonVisualComponent](s.entityManager, id)

		var fill color.RGBA
		switch visual.Category {
		case sim.CategoryLit:
			fill = visual.LitColor
		case sim.CategoryPressed:
			fill = visual.DownColor
		default:
			fill = visual.RestColor
		}

		x := float32(visual.X)
		y := float32(visual.Y + visual.OffsetY)
		size := float32(visual.Size)
		vector.DrawFilledRect(screen, x, y, size, size, fill, false)
	}

	// 得分文字
	for _, id := range ecs.GetEntitiesWith1[*components.ScoreDisplayComponent](s.entityManager) {
		display, _ := ecs.GetComponent[*components.ScoreDisplayComponent](s.entityManager, id)
		text := fmt.Sprintf("Score: %d    High: %d", display.Current, display.High)
		ebitenutil.DebugPrintAt(screen, text, int(display.X), int(display.Y))
	}

	// 阶段提示
	hint := "Watch the pattern..."
	if phase == sim.PhaseAwaitInput {
		hint = "Your turn!"
	}
	ebitenutil.DebugPrintAt(screen, hint, config.ScoreTextX, config.ScoreTextY+20)
}
