package sim

// GamePhase 游戏阶段
// 进程内同一时刻只有一个值，阶段切换驱动各组件的副作用
type GamePhase int

const (
	// PhaseShowPattern 回放阶段：系统向玩家展示序列
	PhaseShowPattern GamePhase = iota
	// PhaseAwaitInput 输入阶段：玩家复现序列
	PhaseAwaitInput
)

// String 返回阶段名称（日志与调试输出用）
func (p GamePhase) String() string {
	switch p {
	case PhaseShowPattern:
		return "ShowPattern"
	case PhaseAwaitInput:
		return "AwaitInput"
	default:
		return "Unknown"
	}
}
