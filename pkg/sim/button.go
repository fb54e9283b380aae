package sim

// Button 四个固定按钮的符号标识
// 作为 map 键和序列元素使用，按标识判等
type Button int

const (
	// ButtonRed 红色按钮
	ButtonRed Button = iota
	// ButtonGreen 绿色按钮
	ButtonGreen
	// ButtonBlue 蓝色按钮
	ButtonBlue
	// ButtonYellow 黄色按钮
	ButtonYellow
)

// AllButtons 全部按钮标识，顺序固定
// 随机抽取和表现层遍历都依赖该顺序
var AllButtons = []Button{ButtonRed, ButtonGreen, ButtonBlue, ButtonYellow}

// String 返回按钮名称（日志与调试输出用）
func (b Button) String() string {
	switch b {
	case ButtonRed:
		return "Red"
	case ButtonGreen:
		return "Green"
	case ButtonBlue:
		return "Blue"
	case ButtonYellow:
		return "Yellow"
	default:
		return "Unknown"
	}
}
