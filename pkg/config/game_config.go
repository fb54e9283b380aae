package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏玩法配置数据结构
// 仿真核心的全部可调参数都集中在这里，不散落为硬编码常量
type GameConfig struct {
	// RevealIntervalSeconds 回放阶段的揭示间隔（秒）
	// 各迭代版本观测到 1.0~1.2 秒，默认取 1.0
	RevealIntervalSeconds float64 `yaml:"revealIntervalSeconds"`

	// PressDurationSeconds 按下反馈时长（秒），默认 0.5
	PressDurationSeconds float64 `yaml:"pressDurationSeconds"`

	// LitDurationSeconds 点亮反馈时长（秒），默认 0.8
	LitDurationSeconds float64 `yaml:"litDurationSeconds"`

	// InterruptFeedbackOnRoundEnd 回合结束时是否打断未完成的按钮反馈
	// false（默认）：反馈计时跨回合继续走完，弹起动画总能播放
	// true：进入新回合时立即复位所有按钮
	InterruptFeedbackOnRoundEnd bool `yaml:"interruptFeedbackOnRoundEnd"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		RevealIntervalSeconds:       1.0,
		PressDurationSeconds:        0.5,
		LitDurationSeconds:          0.8,
		InterruptFeedbackOnRoundEnd: false,
	}
}

// LoadGameConfig 从YAML数据解析游戏配置
//
// 参数：
//   - data: YAML 文件内容（通常来自 pkg/embedded）
//
// 返回：
//   - *GameConfig: 解析后的配置对象，缺省字段补默认值
//   - error: 解析失败或字段非法时返回错误
func LoadGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// validateGameConfig 校验配置字段
// 所有时长必须为正数，否则调度器和反馈计时会失去意义
func validateGameConfig(cfg *GameConfig) error {
	if cfg.RevealIntervalSeconds <= 0 {
		return fmt.Errorf("revealIntervalSeconds must be positive, got %f", cfg.RevealIntervalSeconds)
	}
	if cfg.PressDurationSeconds <= 0 {
		return fmt.Errorf("pressDurationSeconds must be positive, got %f", cfg.PressDurationSeconds)
	}
	if cfg.LitDurationSeconds <= 0 {
		return fmt.Errorf("litDurationSeconds must be positive, got %f", cfg.LitDurationSeconds)
	}
	return nil
}
