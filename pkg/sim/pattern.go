package sim

import (
	"errors"
	"math/rand"
)

// ErrOutOfRange 游标越过序列末尾
// 属于阶段纪律被破坏的编程错误，正常流程不应出现
var ErrOutOfRange = errors.New("sim: pattern cursor out of range")

// PatternStore 记忆序列与游标
//
// 职责：
//   - 持有只增不改的按钮序列（仅在出错或重置时整体清空）
//   - 维护一个进度游标，回放阶段和输入阶段先后复用
//
// 两个阶段在时间上互斥，因此游标可以安全复用；
// 调用方只通过 ResetProgress/Advance/Current 操作游标，
// 不直接读写内部字段，避免两种角色互相污染
type PatternStore struct {
	pattern  []Button
	progress int
	rng      *rand.Rand
}

// NewPatternStore 创建空序列
// rng 用于均匀抽取按钮，由调用方注入（测试中传固定种子）
func NewPatternStore(rng *rand.Rand) *PatternStore {
	return &PatternStore{
		pattern:  make([]Button, 0, 32),
		progress: 0,
		rng:      rng,
	}
}

// AppendRandom 从四个按钮中均匀随机抽取一个并追加到序列末尾
// 返回新追加的按钮
func (p *PatternStore) AppendRandom() Button {
	b := AllButtons[p.rng.Intn(len(AllButtons))]
	p.pattern = append(p.pattern, b)
	return b
}

// Clear 清空序列并将游标归零
// 仅在回合出错或显式重置时调用
func (p *PatternStore) Clear() {
	p.pattern = p.pattern[:0]
	p.progress = 0
}

// ResetProgress 将游标归零
// 每次进入新的回放或输入阶段时调用
func (p *PatternStore) ResetProgress() {
	p.progress = 0
}

// Advance 游标前进一格
// 越过序列长度时返回 ErrOutOfRange（防御性检查，阶段纪律正确时不会发生）
func (p *PatternStore) Advance() error {
	if p.progress >= len(p.pattern) {
		return ErrOutOfRange
	}
	p.progress++
	return nil
}

// Current 返回游标处的按钮
// 游标已越过末尾时 ok 为 false
func (p *PatternStore) Current() (Button, bool) {
	if p.progress >= len(p.pattern) {
		return 0, false
	}
	return p.pattern[p.progress], true
}

// Len 返回序列长度
func (p *PatternStore) Len() int {
	return len(p.pattern)
}

// Progress 返回当前游标位置
func (p *PatternStore) Progress() int {
	return p.progress
}

// At 返回指定下标的按钮（调试与验证工具用）
func (p *PatternStore) At(i int) (Button, bool) {
	if i < 0 || i >= len(p.pattern) {
		return 0, false
	}
	return p.pattern[i], true
}
