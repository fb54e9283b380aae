// Package tone 程序化合成按钮提示音
//
// 游戏不携带音频资源，四个按钮的提示音和按错的低鸣声
// 都在启动时合成为 16-bit LE 立体声 PCM，直接喂给 ebiten 的音频上下文。
package tone

import (
	"encoding/binary"
	"math"
)

// 经典 Simon 四音（赫兹）
const (
	// FreqGreen 绿色按钮提示音频率
	FreqGreen = 415.0
	// FreqRed 红色按钮提示音频率
	FreqRed = 310.0
	// FreqYellow 黄色按钮提示音频率
	FreqYellow = 252.0
	// FreqBlue 蓝色按钮提示音频率
	FreqBlue = 209.0
	// FreqBuzz 按错低鸣声频率
	FreqBuzz = 42.0
)

// 包络参数（秒）
// 起音和释音斜坡消除爆音
const (
	attackSeconds  = 0.01
	releaseSeconds = 0.04
)

// Sine 合成一段带起音/释音包络的正弦音
//
// 参数：
//   - freq: 频率（赫兹）
//   - duration: 时长（秒）
//   - sampleRate: 采样率（与音频上下文一致）
//   - amplitude: 振幅 0.0 ~ 1.0
//
// 返回：
//   - 16-bit LE 立体声 PCM 字节流（左右声道相同）
func Sine(freq, duration float64, sampleRate int, amplitude float64) []byte {
	samples := int(duration * float64(sampleRate))
	buf := make([]float64, samples)

	phaseInc := freq / float64(sampleRate)
	phase := 0.0
	for i := 0; i < samples; i++ {
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}

	applyEnvelope(buf, sampleRate)
	return toStereoPCM(buf, amplitude)
}

// Buzz 合成按错时的低鸣声
// 低频方波比正弦更刺耳，符合"出错"的听感
func Buzz(duration float64, sampleRate int, amplitude float64) []byte {
	samples := int(duration * float64(sampleRate))
	buf := make([]float64, samples)

	phaseInc := FreqBuzz / float64(sampleRate)
	phase := 0.0
	for i := 0; i < samples; i++ {
		if phase < 0.5 {
			buf[i] = 1.0
		} else {
			buf[i] = -1.0
		}
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}

	applyEnvelope(buf, sampleRate)
	return toStereoPCM(buf, amplitude)
}

// applyEnvelope 原地施加起音/释音包络
func applyEnvelope(buf []float64, sampleRate int) {
	total := len(buf)
	attackSamples := int(attackSeconds * float64(sampleRate))
	releaseSamples := int(releaseSeconds * float64(sampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// toStereoPCM 把单声道浮点样本转为 16-bit LE 立体声字节流
func toStereoPCM(buf []float64, amplitude float64) []byte {
	out := make([]byte, len(buf)*4)
	for i, v := range buf {
		s := int16(v * amplitude * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
