package config

import (
	"image/color"

	"github.com/decker502/simon/pkg/sim"
)

// 窗口与布局相关的常量配置
// 包括四个按钮的排布、配色和得分文字位置

const (
	// GameWindowWidth 游戏窗口逻辑宽度（像素）
	GameWindowWidth = 800
	// GameWindowHeight 游戏窗口逻辑高度（像素）
	GameWindowHeight = 600

	// ButtonSize 按钮边长（像素）
	ButtonSize = 180.0
	// ButtonGap 按钮间距（像素）
	ButtonGap = 30.0

	// GridOriginX 2×2 按钮网格左上角 X 坐标
	// 计算方式：(800 - (180*2 + 30)) / 2 = 205
	GridOriginX = 205.0
	// GridOriginY 2×2 按钮网格左上角 Y 坐标
	// 上方留出得分文字区域
	GridOriginY = 160.0

	// ButtonPressOffset 按下时的垂直下沉量（像素）
	// 对应原设计里 0.02 单位的按入位移
	ButtonPressOffset = 6.0

	// ScoreTextX 得分文字 X 坐标
	ScoreTextX = 20
	// ScoreTextY 得分文字 Y 坐标
	ScoreTextY = 20
)

// ButtonLayout 单个按钮的位置与配色
type ButtonLayout struct {
	Button    sim.Button // 按钮标识
	X         float64    // 左上角 X 坐标
	Y         float64    // 左上角 Y 坐标
	RestColor color.RGBA // 静止配色（暗）
	LitColor  color.RGBA // 点亮配色（亮，对应自发光材质）
	DownColor color.RGBA // 按下配色（介于两者之间）
}

// ButtonLayouts 返回四个按钮的布局
// 网格顺序：红 绿 / 蓝 黄（行优先）
//
// 调整指南：
//   - 改 ButtonSize/ButtonGap 后需同步调整 GridOriginX 保持居中
//   - 配色分 Rest/Lit/Down 三档，Lit 必须明显亮于 Rest
func ButtonLayouts() []ButtonLayout {
	step := ButtonSize + ButtonGap
	return []ButtonLayout{
		{
			Button:    sim.ButtonRed,
			X:         GridOriginX,
			Y:         GridOriginY,
			RestColor: color.RGBA{R: 110, G: 24, B: 24, A: 255},
			LitColor:  color.RGBA{R: 255, G: 64, B: 64, A: 255},
			DownColor: color.RGBA{R: 160, G: 40, B: 40, A: 255},
		},
		{
			Button:    sim.ButtonGreen,
			X:         GridOriginX + step,
			Y:         GridOriginY,
			RestColor: color.RGBA{R: 22, G: 96, B: 34, A: 255},
			LitColor:  color.RGBA{R: 72, G: 255, B: 96, A: 255},
			DownColor: color.RGBA{R: 36, G: 150, B: 54, A: 255},
		},
		{
			Button:    sim.ButtonBlue,
			X:         GridOriginX,
			Y:         GridOriginY + step,
			RestColor: color.RGBA{R: 24, G: 44, B: 120, A: 255},
			LitColor:  color.RGBA{R: 80, G: 140, B: 255, A: 255},
			DownColor: color.RGBA{R: 40, G: 70, B: 170, A: 255},
		},
		{
			Button:    sim.ButtonYellow,
			X:         GridOriginX + step,
			Y:         GridOriginY + step,
			RestColor: color.RGBA{R: 120, G: 104, B: 16, A: 255},
			LitColor:  color.RGBA{R: 255, G: 228, B: 48, A: 255},
			DownColor: color.RGBA{R: 180, G: 156, B: 28, A: 255},
		},
	}
}
