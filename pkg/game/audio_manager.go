package game

import (
	"log"

	"github.com/decker502/simon/internal/tone"
	"github.com/decker502/simon/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 提示音参数
const (
	// CueDurationSeconds 按钮提示音时长（秒）
	CueDurationSeconds = 0.45
	// BuzzDurationSeconds 按错低鸣声时长（秒）
	BuzzDurationSeconds = 0.35
	// toneAmplitude 合成振幅（最终音量另由设置控制）
	toneAmplitude = 0.6
)

// AudioManager 音频管理器
//
// 职责：
//   - 启动时为四个按钮和出错低鸣各合成一个 PCM 播放器并缓存
//   - 播放时应用 SettingsManager 中的音量与开关
//
// 核心只上报按钮标识（见 systems.CuePlayer），音频数据由这里持有
type AudioManager struct {
	settingsManager *SettingsManager
	cuePlayers      map[sim.Button]*audio.Player
	buzzPlayer      *audio.Player
}

// NewAudioManager 创建音频管理器并预合成全部提示音
//
// 参数：
//   - ctx: ebiten 音频上下文
//   - sm: 设置管理器（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	rate := ctx.SampleRate()

	freqs := map[sim.Button]float64{
		sim.ButtonRed:    tone.FreqRed,
		sim.ButtonGreen:  tone.FreqGreen,
		sim.ButtonBlue:   tone.FreqBlue,
		sim.ButtonYellow: tone.FreqYellow,
	}

	cuePlayers := make(map[sim.Button]*audio.Player, len(freqs))
	for b, freq := range freqs {
		pcm := tone.Sine(freq, CueDurationSeconds, rate, toneAmplitude)
		cuePlayers[b] = ctx.NewPlayerFromBytes(pcm)
	}

	buzz := ctx.NewPlayerFromBytes(tone.Buzz(BuzzDurationSeconds, rate, toneAmplitude))

	log.Printf("[AudioManager] Synthesized %d cues at %d Hz sample rate", len(cuePlayers)+1, rate)
	return &AudioManager{
		settingsManager: sm,
		cuePlayers:      cuePlayers,
		buzzPlayer:      buzz,
	}
}

// PlayCue 播放指定按钮的提示音
// 实现 systems.CuePlayer
func (am *AudioManager) PlayCue(b sim.Button) {
	player, ok := am.cuePlayers[b]
	if !ok {
		log.Printf("[AudioManager] Warning: no cue for button %s", b)
		return
	}
	am.play(player)
}

// PlayBuzz 播放按错低鸣声
// 实现 systems.CuePlayer
func (am *AudioManager) PlayBuzz() {
	am.play(am.buzzPlayer)
}

// play 重绕并播放，应用设置中的音量与开关
func (am *AudioManager) play(player *audio.Player) {
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return
		}
		player.SetVolume(settings.SoundVolume)
	}

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: failed to rewind player: %v", err)
	}
	player.Play()
}

// SettingsManager 返回关联的设置管理器（可能为 nil）
func (am *AudioManager) SettingsManager() *SettingsManager {
	return am.settingsManager
}
