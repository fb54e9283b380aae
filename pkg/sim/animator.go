package sim

// ButtonCategory 按钮反馈状态的类别（不含计时信息）
// 表现层只关心类别变化：发光颜色与按下位移都由类别驱动
type ButtonCategory int

const (
	// CategoryInactive 静止状态（无发光，无位移）
	CategoryInactive ButtonCategory = iota
	// CategoryPressed 按下反馈状态（按钮下沉）
	CategoryPressed
	// CategoryLit 点亮反馈状态（回放序列时发光）
	CategoryLit
)

// String 返回类别名称（日志与调试输出用）
func (c ButtonCategory) String() string {
	switch c {
	case CategoryInactive:
		return "Inactive"
	case CategoryPressed:
		return "Pressed"
	case CategoryLit:
		return "Lit"
	default:
		return "Unknown"
	}
}

// Transition 一次类别级状态变化
// 由 ButtonAnimator 在状态跳变时记录，表现层每步取走一次
type Transition struct {
	Button   Button         // 发生变化的按钮
	Category ButtonCategory // 变化后的新类别
}

// timerEpsilon 倒计时归零判定的容差（秒）
// 浮点累减在时长边界可能留下 1e-18 量级的残余，不能据此维持反馈状态
const timerEpsilon = 1e-9

// buttonState 单个按钮的反馈状态
// category 为 Pressed 或 Lit 时 remaining 递减，归零回到 Inactive
type buttonState struct {
	category  ButtonCategory
	remaining float64 // 剩余时间（秒），Inactive 时无意义
}

// ButtonAnimator 按钮反馈状态机
//
// 职责：
//   - 维护每个按钮的 Inactive/Pressed/Lit 状态与倒计时
//   - 记录类别级跳变，供表现层通过 DrainTransitions 轮询
//
// 状态机：
//   - Inactive --Press--> Pressed --超时--> Inactive
//   - Inactive --Light--> Lit --超时--> Inactive
//   - Pressed/Lit 之间可互相覆盖，重复 Press 重置计时
//
// 没有终止状态，随进程一直运行
type ButtonAnimator struct {
	states        map[Button]*buttonState
	pending       []Transition
	pressDuration float64 // 按下反馈时长（秒）
	litDuration   float64 // 点亮反馈时长（秒）
}

// NewButtonAnimator 创建按钮反馈状态机
// 每个按钮初始为 Inactive；时长来自配置，不在此处硬编码
func NewButtonAnimator(pressDuration, litDuration float64) *ButtonAnimator {
	states := make(map[Button]*buttonState, len(AllButtons))
	for _, b := range AllButtons {
		states[b] = &buttonState{category: CategoryInactive}
	}
	return &ButtonAnimator{
		states:        states,
		pending:       make([]Transition, 0, 8),
		pressDuration: pressDuration,
		litDuration:   litDuration,
	}
}

// Press 强制进入 Pressed 状态并重置计时
// 覆盖语义：无论当前状态如何都生效，重复按下只重启计时器
func (a *ButtonAnimator) Press(b Button) {
	a.setCategory(b, CategoryPressed, a.pressDuration)
}

// Light 强制进入 Lit 状态并重置计时
// 覆盖语义与 Press 相同
func (a *ButtonAnimator) Light(b Button) {
	a.setCategory(b, CategoryLit, a.litDuration)
}

// Tick 推进所有按钮的倒计时
// remaining 随 elapsed 递减，降到容差以内时回到 Inactive
// Inactive 状态下为空操作
func (a *ButtonAnimator) Tick(elapsed float64) {
	for _, b := range AllButtons {
		st := a.states[b]
		if st.category == CategoryInactive {
			continue
		}
		st.remaining -= elapsed
		if st.remaining <= timerEpsilon {
			st.remaining = 0
			st.category = CategoryInactive
			a.pending = append(a.pending, Transition{Button: b, Category: CategoryInactive})
		}
	}
}

// ForceInactive 将所有按钮立即复位为 Inactive
// 用于 interruptFeedbackOnRoundEnd 策略：回合切换时打断未完成的反馈
// 只有类别实际变化的按钮才会记录跳变
func (a *ButtonAnimator) ForceInactive() {
	for _, b := range AllButtons {
		st := a.states[b]
		if st.category == CategoryInactive {
			continue
		}
		st.category = CategoryInactive
		st.remaining = 0
		a.pending = append(a.pending, Transition{Button: b, Category: CategoryInactive})
	}
}

// Category 返回指定按钮当前的类别
func (a *ButtonAnimator) Category(b Button) ButtonCategory {
	return a.states[b].category
}

// Remaining 返回指定按钮当前的剩余反馈时间（秒）
// Inactive 状态恒为 0
func (a *ButtonAnimator) Remaining(b Button) float64 {
	return a.states[b].remaining
}

// DrainTransitions 取走自上次调用以来的全部类别跳变
// 这是表现层感知状态变化的唯一入口，每个仿真步调用一次
// 返回的切片按发生顺序排列：同帧内计时器效果先于按键效果
func (a *ButtonAnimator) DrainTransitions() []Transition {
	if len(a.pending) == 0 {
		return nil
	}
	out := a.pending
	a.pending = make([]Transition, 0, 8)
	return out
}

// setCategory 写入新类别并重置计时
// 只有类别实际变化时才记录跳变；同类别覆盖（如 Pressed 再 Press）
// 只重启计时器，不产生新事件
func (a *ButtonAnimator) setCategory(b Button, c ButtonCategory, duration float64) {
	st := a.states[b]
	changed := st.category != c
	st.category = c
	st.remaining = duration
	if changed {
		a.pending = append(a.pending, Transition{Button: b, Category: c})
	}
}
