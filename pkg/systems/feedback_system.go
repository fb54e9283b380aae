package systems

import (
	"github.com/decker502/simon/pkg/components"
	"github.com/decker502/simon/pkg/config"
	"github.com/decker502/simon/pkg/ecs"
	"github.com/decker502/simon/pkg/sim"
)

// CuePlayer 音频协作方的最小接口
// 由 game.AudioManager 实现；核心只上报按钮标识，不持有音频资源
type CuePlayer interface {
	// PlayCue 播放指定按钮对应的提示音
	PlayCue(b sim.Button)
	// PlayBuzz 播放按错时的低鸣声
	PlayBuzz()
}

// FeedbackSystem 把仿真核心的跳变通知落到表现层
//
// 职责：
//   - 按类别更新按钮视觉组件（发光配色、按下位移）
//   - 把 Pressed/Lit 跳变转发给音频协作方播放提示音
//   - 得分变化时刷新得分文字组件
type FeedbackSystem struct {
	entityManager *ecs.EntityManager
	audio         CuePlayer // 可为 nil（无声模式）
}

// NewFeedbackSystem 创建反馈系统
// audio 可为 nil，此时只更新视觉不出声
func NewFeedbackSystem(em *ecs.EntityManager, audio CuePlayer) *FeedbackSystem {
	return &FeedbackSystem{entityManager: em, audio: audio}
}

// Apply 应用一个仿真步的全部对外输出
//
// 参数：
//   - res: 仿真步结果（跳变、回合结果、得分变化标记）
//   - current, high: 当前分与最高分（仅在 res.ScoreChanged 时写入组件）
func (s *FeedbackSystem) Apply(res sim.StepResult, current, high int) {
	for _, tr := range res.Transitions {
		s.applyTransition(tr)
	}

	for _, outcome := range res.Outcomes {
		if outcome == sim.OutcomeMistake && s.audio != nil {
			s.audio.PlayBuzz()
		}
	}

	if res.ScoreChanged {
		for _, id := range ecs.GetEntitiesWith1[*components.ScoreDisplayComponent](s.entityManager) {
			display, _ := ecs.GetComponent[*components.ScoreDisplayComponent](s.entityManager, id)
			display.Current = current
			display.High = high
		}
	}
}

// applyTransition 更新单个按钮的视觉状态并转发音频提示
func (s *FeedbackSystem) applyTransition(tr sim.Transition) {
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonVisualComponent](s.entityManager) {
		visual, _ := ecs.GetComponent[*components.ButtonVisualComponent](s.entityManager, id)
		if visual.Button != tr.Button {
			continue
		}
		visual.Category = tr.Category
		if tr.Category == sim.CategoryPressed {
			visual.OffsetY = config.ButtonPressOffset
		} else {
			visual.OffsetY = 0
		}
	}

	if s.audio != nil && (tr.Category == sim.CategoryPressed || tr.Category == sim.CategoryLit) {
		s.audio.PlayCue(tr.Button)
	}
}
