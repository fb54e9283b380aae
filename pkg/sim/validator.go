package sim

import "log"

// RoundOutcome 单次输入校验的结果分类
type RoundOutcome int

const (
	// OutcomeContinue 按对了，序列还有剩余元素
	OutcomeContinue RoundOutcome = iota
	// OutcomeComplete 按对了，且是序列最后一个元素
	OutcomeComplete
	// OutcomeMistake 按错了
	OutcomeMistake
)

// String 返回结果名称（日志与调试输出用）
func (o RoundOutcome) String() string {
	switch o {
	case OutcomeContinue:
		return "Continue"
	case OutcomeComplete:
		return "Complete"
	case OutcomeMistake:
		return "Mistake"
	default:
		return "Unknown"
	}
}

// InputValidator 输入校验器
//
// 职责：
//   - AwaitInput 阶段逐个校验玩家按下的按钮
//   - 无论对错都先触发按下反馈（玩家应看到自己按了什么）
//
// 按错是预期中的玩家行为，建模为 Outcome 而不是 error
type InputValidator struct {
	store    *PatternStore
	animator *ButtonAnimator
}

// NewInputValidator 创建输入校验器
func NewInputValidator(store *PatternStore, animator *ButtonAnimator) *InputValidator {
	return &InputValidator{store: store, animator: animator}
}

// HandlePress 处理一次按键并分类
//
// 流程：先驱动按下反馈，再与游标处的期望元素比较：
//   - 不匹配 → Mistake
//   - 匹配且游标在最后一格 → Complete
//   - 匹配且还有剩余 → Continue，游标前进
//
// Mistake 和 Complete 都结束当前回合，Continue 继续等待下一次按键
func (v *InputValidator) HandlePress(b Button) RoundOutcome {
	v.animator.Press(b)

	expected, ok := v.store.Current()
	if !ok {
		// 阶段纪律保证 AwaitInput 期间游标不会越界；
		// 真到这里说明有编程错误，按释放版语义钳制为 Mistake
		log.Printf("[InputValidator] ERROR: press with exhausted cursor (progress=%d, len=%d)",
			v.store.Progress(), v.store.Len())
		return OutcomeMistake
	}
	if b != expected {
		return OutcomeMistake
	}
	if v.store.Progress() == v.store.Len()-1 {
		return OutcomeComplete
	}
	if err := v.store.Advance(); err != nil {
		log.Printf("[InputValidator] ERROR: advance failed: %v", err)
		return OutcomeMistake
	}
	return OutcomeContinue
}
