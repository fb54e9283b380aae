package components

import (
	"image/color"

	"github.com/decker502/simon/pkg/sim"
)

// ButtonVisualComponent 按钮的视觉表现状态
// 遵循 ECS 原则，组件仅存储数据；更新由 FeedbackSystem 驱动，
// 绘制由 RenderSystem 负责
type ButtonVisualComponent struct {
	Button sim.Button // 对应的仿真按钮标识

	// 几何位置（左上角坐标与边长，像素）
	X    float64
	Y    float64
	Size float64

	// 三档配色
	RestColor color.RGBA // 静止
	LitColor  color.RGBA // 点亮（自发光）
	DownColor color.RGBA // 按下

	// Category 当前反馈类别，由仿真核心的跳变通知写入
	Category sim.ButtonCategory

	// OffsetY 垂直下沉量（像素）
	// 进入 Pressed 时按入，离开 Pressed 时弹出
	OffsetY float64
}
