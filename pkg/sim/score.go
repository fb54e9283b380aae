package sim

// ScoreTracker 得分记录
//
// 不变量：high 永不下降，每次更新后 high = max(high, current)
// changed 标记供表现层只在变化时重绘，不必每帧比较
type ScoreTracker struct {
	current int
	high    int
	changed bool
}

// NewScoreTracker 创建归零的得分记录
func NewScoreTracker() *ScoreTracker {
	return &ScoreTracker{}
}

// RecordSuccess 回合成功：当前分 +1，同步刷新最高分
func (s *ScoreTracker) RecordSuccess() {
	s.current++
	if s.current > s.high {
		s.high = s.current
	}
	s.changed = true
}

// RecordFailure 回合失败：当前分归零，最高分保持不变
func (s *ScoreTracker) RecordFailure() {
	if s.current != 0 {
		s.changed = true
	}
	s.current = 0
}

// Current 返回当前分
func (s *ScoreTracker) Current() int {
	return s.current
}

// High 返回最高分
func (s *ScoreTracker) High() int {
	return s.high
}

// DrainChanged 取走"得分发生过变化"标记
// 每个仿真步调用一次，返回 true 时表现层才需要刷新文字
func (s *ScoreTracker) DrainChanged() bool {
	c := s.changed
	s.changed = false
	return c
}
