package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"coin-rush/content/core"
)

const termSampleRate = beep.SampleRate(44100)

// 背景音乐的音符序列（频率, 时长毫秒）
var melody = []struct {
	freq float64
	ms   int
}{
	{523.25, 180}, {659.25, 180}, {783.99, 180}, {659.25, 180},
	{587.33, 180}, {698.46, 180}, {880.00, 180}, {698.46, 180},
	{523.25, 360}, {0, 180},
}

// beeper 用合成的正弦波实现 core.Sounder
type beeper struct {
	mu      sync.Mutex
	music   *beep.Buffer
	playing bool
}

func newBeeper() (*beeper, error) {
	if err := speaker.Init(termSampleRate, termSampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}

	music := beep.NewBuffer(beep.Format{SampleRate: termSampleRate, NumChannels: 2, Precision: 2})
	var notes []beep.Streamer
	for _, n := range melody {
		notes = append(notes, tone(n.freq, time.Duration(n.ms)*time.Millisecond, -3))
	}
	music.Append(beep.Seq(notes...))

	return &beeper{music: music}, nil
}

func (b *beeper) Play(sound core.Sound) {
	switch sound {
	case core.SoundCoin:
		speaker.Play(beep.Seq(
			tone(987.77, 50*time.Millisecond, -1),
			tone(1318.51, 90*time.Millisecond, -1),
		))
	case core.SoundGameOver:
		speaker.Play(beep.Seq(
			tone(440, 150*time.Millisecond, -1),
			tone(349.23, 150*time.Millisecond, -1),
			tone(261.63, 300*time.Millisecond, -1),
		))
	case core.SoundMusic:
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.playing {
			return
		}
		b.playing = true
		speaker.Play(beep.Loop(-1, b.music.Streamer(0, b.music.Len())))
	}
}

func (b *beeper) Close() {
	speaker.Close()
}

// tone 生成一段正弦音，freq 为 0 时为静音
func tone(freq float64, d time.Duration, volume float64) beep.Streamer {
	n := termSampleRate.N(d)
	if freq == 0 {
		return beep.Silence(n)
	}
	sine, err := generators.SineTone(termSampleRate, freq)
	if err != nil {
		log.Println("sine tone:", err)
		return beep.Silence(n)
	}
	return &effects.Volume{
		Streamer: beep.Take(n, sine),
		Base:     2,
		Volume:   volume,
	}
}
