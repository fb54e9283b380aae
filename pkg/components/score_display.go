package components

// ScoreDisplayComponent 得分文字的显示状态
// Current/High 只在仿真核心上报得分变化时刷新，不是每帧同步
type ScoreDisplayComponent struct {
	Current int     // 当前分
	High    int     // 最高分
	X       float64 // 文字位置 X
	Y       float64 // 文字位置 Y
}
