package sim

// RoundScheduler 回放调度器
//
// 职责：
//   - ShowPattern 阶段按固定节奏逐个揭示序列元素
//   - 检测揭示结束并通知阶段机切换
//
// 计时采用累加器方式：deltaTime 累加，跨过间隔边界时触发一次揭示
// （与波次倒计时同样的小数累积思路，避免帧率抖动丢拍）
type RoundScheduler struct {
	interval float64 // 揭示间隔（秒），来自配置
	elapsed  float64 // 自上次揭示以来累计的时间（秒）
}

// NewRoundScheduler 创建回放调度器
func NewRoundScheduler(interval float64) *RoundScheduler {
	return &RoundScheduler{interval: interval}
}

// Reset 重置累加器
// 每次进入 ShowPattern 阶段时调用，保证第一次揭示在一个完整间隔之后
func (s *RoundScheduler) Reset() {
	s.elapsed = 0
}

// Tick 推进调度器
//
// 跨过间隔边界时读取游标处的元素：
//   - 有元素：通过 light 回调点亮它并前进游标
//   - 无元素（游标已耗尽）：游标归零并返回 exhausted=true，
//     由阶段机切换到 AwaitInput
//
// 参数：
//   - dt: 时间增量（秒）
//   - store: 序列存储（复用其游标作为揭示游标）
//   - light: 点亮回调（驱动 ButtonAnimator.Light）
//
// 返回：
//   - exhausted: 本步是否检测到揭示结束
func (s *RoundScheduler) Tick(dt float64, store *PatternStore, light func(Button)) (exhausted bool) {
	s.elapsed += dt
	for s.elapsed >= s.interval {
		s.elapsed -= s.interval

		b, ok := store.Current()
		if !ok {
			store.ResetProgress()
			return true
		}
		light(b)
		if err := store.Advance(); err != nil {
			// Current 刚刚成功，这里不可能越界
			return true
		}
	}
	return false
}
