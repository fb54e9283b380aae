package sim

import "testing"

// 构造一个指定序列的校验环境（绕过随机追加，直接写入序列）
func newValidatorFixture(pattern []Button) (*InputValidator, *PatternStore, *ButtonAnimator) {
	store := newTestStore(1)
	store.pattern = append(store.pattern, pattern...)
	animator := NewButtonAnimator(0.5, 0.8)
	return NewInputValidator(store, animator), store, animator
}

// TestInputValidator_ContinueThenComplete 测试逐个按对直至完成
func TestInputValidator_ContinueThenComplete(t *testing.T) {
	v, store, _ := newValidatorFixture([]Button{ButtonRed, ButtonGreen, ButtonBlue})

	if got := v.HandlePress(ButtonRed); got != OutcomeContinue {
		t.Errorf("Expected Continue, got %s", got)
	}
	if store.Progress() != 1 {
		t.Errorf("Expected progress 1 after continue, got %d", store.Progress())
	}

	if got := v.HandlePress(ButtonGreen); got != OutcomeContinue {
		t.Errorf("Expected Continue, got %s", got)
	}

	if got := v.HandlePress(ButtonBlue); got != OutcomeComplete {
		t.Errorf("Expected Complete on last element, got %s", got)
	}
}

// TestInputValidator_Mistake 测试按错分类为 Mistake
func TestInputValidator_Mistake(t *testing.T) {
	v, store, _ := newValidatorFixture([]Button{ButtonRed, ButtonGreen})

	if got := v.HandlePress(ButtonYellow); got != OutcomeMistake {
		t.Errorf("Expected Mistake, got %s", got)
	}
	// 分类本身不改动序列，清空由阶段机负责
	if store.Len() != 2 {
		t.Errorf("Expected pattern untouched by validator, got length %d", store.Len())
	}
}

// TestInputValidator_SingleElementComplete 测试长度为一的序列按对即完成
// 第一个元素同时也是最后一个
func TestInputValidator_SingleElementComplete(t *testing.T) {
	v, _, _ := newValidatorFixture([]Button{ButtonRed})

	if got := v.HandlePress(ButtonRed); got != OutcomeComplete {
		t.Errorf("Expected Complete for single-element pattern, got %s", got)
	}
}

// TestInputValidator_PressFeedbackAlways 测试对错都触发按下反馈
func TestInputValidator_PressFeedbackAlways(t *testing.T) {
	v, _, animator := newValidatorFixture([]Button{ButtonRed})

	v.HandlePress(ButtonBlue)
	if animator.Category(ButtonBlue) != CategoryPressed {
		t.Errorf("Expected pressed feedback on wrong button, got %s", animator.Category(ButtonBlue))
	}

	v.HandlePress(ButtonRed)
	if animator.Category(ButtonRed) != CategoryPressed {
		t.Errorf("Expected pressed feedback on correct button, got %s", animator.Category(ButtonRed))
	}
}
