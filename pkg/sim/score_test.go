package sim

import (
	"math/rand"
	"testing"
)

// TestScoreTracker_SuccessAndFailure 测试成功加分与失败归零
func TestScoreTracker_SuccessAndFailure(t *testing.T) {
	s := NewScoreTracker()

	s.RecordSuccess()
	s.RecordSuccess()
	if s.Current() != 2 || s.High() != 2 {
		t.Errorf("Expected current=2 high=2, got current=%d high=%d", s.Current(), s.High())
	}

	s.RecordFailure()
	if s.Current() != 0 {
		t.Errorf("Expected current=0 after failure, got %d", s.Current())
	}
	if s.High() != 2 {
		t.Errorf("Expected high preserved at 2, got %d", s.High())
	}
}

// TestScoreTracker_HighMonotonic 测试最高分单调不降
// 对任意成功/失败序列，high 始终等于历史上观察到的最大 current
func TestScoreTracker_HighMonotonic(t *testing.T) {
	s := NewScoreTracker()
	rng := rand.New(rand.NewSource(99))

	maxSeen := 0
	lastHigh := 0
	for i := 0; i < 1000; i++ {
		if rng.Intn(3) == 0 {
			s.RecordFailure()
		} else {
			s.RecordSuccess()
		}
		if s.Current() > maxSeen {
			maxSeen = s.Current()
		}
		if s.High() < lastHigh {
			t.Fatalf("High score decreased from %d to %d at step %d", lastHigh, s.High(), i)
		}
		if s.High() != maxSeen {
			t.Fatalf("Expected high = max observed current (%d), got %d at step %d", maxSeen, s.High(), i)
		}
		lastHigh = s.High()
	}
}

// TestScoreTracker_DrainChanged 测试变化标记只在变化时置位
func TestScoreTracker_DrainChanged(t *testing.T) {
	s := NewScoreTracker()

	if s.DrainChanged() {
		t.Errorf("Expected no change flag on fresh tracker")
	}

	s.RecordSuccess()
	if !s.DrainChanged() {
		t.Errorf("Expected change flag after success")
	}
	if s.DrainChanged() {
		t.Errorf("Expected change flag consumed by drain")
	}

	// current 已经是 0 时失败不算变化
	s.RecordFailure()
	if !s.DrainChanged() {
		t.Errorf("Expected change flag after failure from nonzero score")
	}
	s.RecordFailure()
	if s.DrainChanged() {
		t.Errorf("Expected no change flag when failing at zero score")
	}
}
