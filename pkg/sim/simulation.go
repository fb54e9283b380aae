package sim

import (
	"log"
	"math/rand"
)

// Config 仿真核心的可调参数
// 全部来自外部配置（pkg/config），核心不持有默认值
type Config struct {
	// RevealInterval 回放阶段的揭示间隔（秒）
	RevealInterval float64
	// PressDuration 按下反馈时长（秒）
	PressDuration float64
	// LitDuration 点亮反馈时长（秒）
	LitDuration float64
	// InterruptFeedbackOnRoundEnd 回合结束时是否打断未完成的按钮反馈
	// false：进行中的 Pressed/Lit 计时跨阶段继续走完（弹起动画总能播完）
	// true：进入 ShowPattern 时全部按钮立即复位（复刻打断式行为）
	InterruptFeedbackOnRoundEnd bool
}

// StepResult 一个仿真步对外可见的全部输出
// 表现层据此更新发光颜色、按下位移、得分文字和音效
type StepResult struct {
	// Transitions 本步发生的按钮类别跳变，按发生顺序排列
	Transitions []Transition
	// Outcomes 本步产生的回合结果（通常最多一个）
	Outcomes []RoundOutcome
	// ScoreChanged 得分是否发生变化
	ScoreChanged bool
}

// Simulation 游戏仿真核心
//
// 职责：
//   - 持有全部可变状态（序列、游标、按钮反馈、阶段、得分）
//   - 实现 ShowPattern/AwaitInput 双阶段状态机
//   - 每帧被表现层步进一次，单线程协作式，无锁
//
// 帧内事件顺序是确定的：先推进计时器（超时复位、节奏揭示），
// 再处理玩家按键，最后结算阶段切换。同一帧里超时和按键同时发生时，
// 计时器效果先落地，按键效果后落地（视觉上按下覆盖超时）
type Simulation struct {
	cfg       Config
	store     *PatternStore
	animator  *ButtonAnimator
	scheduler *RoundScheduler
	validator *InputValidator
	score     *ScoreTracker
	phase     GamePhase
}

// NewSimulation 创建仿真核心并进入第一个 ShowPattern 回合
// rng 为 nil 时不可用，由调用方注入（app 层用时间种子，测试用固定种子）
func NewSimulation(cfg Config, rng *rand.Rand) *Simulation {
	store := NewPatternStore(rng)
	animator := NewButtonAnimator(cfg.PressDuration, cfg.LitDuration)
	s := &Simulation{
		cfg:       cfg,
		store:     store,
		animator:  animator,
		scheduler: NewRoundScheduler(cfg.RevealInterval),
		validator: NewInputValidator(store, animator),
		score:     NewScoreTracker(),
		phase:     PhaseShowPattern,
	}
	s.enterShowPattern()
	return s
}

// Step 推进一个仿真步
//
// 参数：
//   - dt: 时间增量（秒）
//   - presses: 本帧到达的按键事件（每次物理点击至多一个）
//
// ShowPattern 期间到达的按键被丢弃：玩家不能抢在回放前面输入
func (s *Simulation) Step(dt float64, presses []Button) StepResult {
	// 1. 推进反馈计时器（超时回到 Inactive）
	s.animator.Tick(dt)

	// 2. 计时器驱动的揭示
	if s.phase == PhaseShowPattern {
		exhausted := s.scheduler.Tick(dt, s.store, s.animator.Light)
		if exhausted {
			s.enterAwaitInput()
		}
	}

	// 3. 玩家按键
	var outcomes []RoundOutcome
	for _, b := range presses {
		if s.phase != PhaseAwaitInput {
			continue
		}
		outcome := s.validator.HandlePress(b)
		outcomes = append(outcomes, outcome)

		switch outcome {
		case OutcomeContinue:
			// 游标已由校验器前进，继续等待下一次按键
		case OutcomeComplete:
			s.score.RecordSuccess()
			log.Printf("[Simulation] Round complete, score %d (high %d)", s.score.Current(), s.score.High())
			s.enterShowPattern()
		case OutcomeMistake:
			s.score.RecordFailure()
			s.store.Clear()
			log.Printf("[Simulation] Mistake on %s, pattern reset", b)
			s.enterShowPattern()
		}
	}

	// 4. 汇总本步对外可见的变化
	return StepResult{
		Transitions:  s.animator.DrainTransitions(),
		Outcomes:     outcomes,
		ScoreChanged: s.score.DrainChanged(),
	}
}

// enterShowPattern 进入回放阶段
// 入口动作：按策略打断反馈 → 追加一个随机元素 → 游标归零 → 调度器重置
func (s *Simulation) enterShowPattern() {
	s.phase = PhaseShowPattern
	if s.cfg.InterruptFeedbackOnRoundEnd {
		s.animator.ForceInactive()
	}
	s.store.AppendRandom()
	s.store.ResetProgress()
	s.scheduler.Reset()
	log.Printf("[Simulation] ShowPattern, pattern length %d", s.store.Len())
}

// enterAwaitInput 进入输入阶段
// 调度器在发出结束信号前已将游标归零，这里只负责切换阶段
func (s *Simulation) enterAwaitInput() {
	s.phase = PhaseAwaitInput
	log.Printf("[Simulation] AwaitInput, pattern length %d", s.store.Len())
}

// Phase 返回当前阶段
func (s *Simulation) Phase() GamePhase {
	return s.phase
}

// Score 返回当前分和最高分
func (s *Simulation) Score() (current, high int) {
	return s.score.Current(), s.score.High()
}

// PatternLen 返回当前序列长度（表现层与验证工具用）
func (s *Simulation) PatternLen() int {
	return s.store.Len()
}

// ButtonCategory 返回指定按钮当前的反馈类别（表现层初始化用）
func (s *Simulation) ButtonCategory(b Button) ButtonCategory {
	return s.animator.Category(b)
}
