package tone

import (
	"encoding/binary"
	"math"
	"testing"
)

// TestSine_Length 测试输出长度：时长 × 采样率 × 4 字节（立体声16位）
func TestSine_Length(t *testing.T) {
	pcm := Sine(FreqRed, 0.5, 48000, 0.8)

	expected := int(0.5*48000) * 4
	if len(pcm) != expected {
		t.Errorf("Expected %d bytes, got %d", expected, len(pcm))
	}
}

// TestSine_AmplitudeBound 测试样本不超过给定振幅
func TestSine_AmplitudeBound(t *testing.T) {
	const amplitude = 0.5
	pcm := Sine(FreqGreen, 0.1, 48000, amplitude)

	limit := int16(math.Trunc(float64(amplitude)*math.MaxInt16)) + 1
	for i := 0; i < len(pcm); i += 2 {
		s := int16(binary.LittleEndian.Uint16(pcm[i:]))
		if s > limit || s < -limit {
			t.Fatalf("Sample %d out of amplitude bound: %d", i/2, s)
		}
	}
}

// TestSine_StereoChannelsEqual 测试左右声道一致
func TestSine_StereoChannelsEqual(t *testing.T) {
	pcm := Sine(FreqBlue, 0.05, 48000, 0.8)

	for i := 0; i < len(pcm); i += 4 {
		left := binary.LittleEndian.Uint16(pcm[i:])
		right := binary.LittleEndian.Uint16(pcm[i+2:])
		if left != right {
			t.Fatalf("Channel mismatch at frame %d: %d vs %d", i/4, left, right)
		}
	}
}

// TestSine_EnvelopeRamps 测试包络：起止样本接近静音
func TestSine_EnvelopeRamps(t *testing.T) {
	pcm := Sine(FreqYellow, 0.2, 48000, 1.0)

	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	// 起音第一个样本和释音最后一个样本的音量应远低于满振幅
	if first > 1000 || first < -1000 {
		t.Errorf("Expected near-silent attack start, got %d", first)
	}
	if last > 1000 || last < -1000 {
		t.Errorf("Expected near-silent release end, got %d", last)
	}
}

// TestBuzz_NonEmpty 测试低鸣声输出非空且有能量
func TestBuzz_NonEmpty(t *testing.T) {
	pcm := Buzz(0.3, 48000, 0.8)
	if len(pcm) == 0 {
		t.Fatalf("Expected non-empty buzz")
	}

	var peak int16
	for i := 0; i < len(pcm); i += 2 {
		s := int16(binary.LittleEndian.Uint16(pcm[i:]))
		if s > peak {
			peak = s
		}
	}
	if peak < 1000 {
		t.Errorf("Expected audible buzz, peak sample %d", peak)
	}
}
