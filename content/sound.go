package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	raudio "github.com/hajimehoshi/ebiten/v2/examples/resources/audio"

	"coin-rush/content/core"
)

const musicVolume = 0.35

// Sounds 实现 core.Sounder，播放失败只记录日志
type Sounds struct {
	coinPlayer  *audio.Player
	overPlayer  *audio.Player
	musicPlayer *audio.Player
}

func NewSounds() (*Sounds, error) {
	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}

	coinD, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(raudio.Jump_ogg))
	if err != nil {
		return nil, fmt.Errorf("decode coin sound: %w", err)
	}
	overD, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raudio.Jab_wav))
	if err != nil {
		return nil, fmt.Errorf("decode game over sound: %w", err)
	}
	musicD, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(raudio.Ragtime_ogg))
	if err != nil {
		return nil, fmt.Errorf("decode music: %w", err)
	}

	s := &Sounds{}
	if s.coinPlayer, err = audioContext.NewPlayer(coinD); err != nil {
		return nil, fmt.Errorf("coin player: %w", err)
	}
	if s.overPlayer, err = audioContext.NewPlayer(overD); err != nil {
		return nil, fmt.Errorf("game over player: %w", err)
	}
	// 背景音乐循环播放
	loop := audio.NewInfiniteLoop(musicD, musicD.Length())
	if s.musicPlayer, err = audioContext.NewPlayer(loop); err != nil {
		return nil, fmt.Errorf("music player: %w", err)
	}
	s.musicPlayer.SetVolume(musicVolume)

	return s, nil
}

func (s *Sounds) Play(sound core.Sound) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("play sound:", r)
		}
	}()

	switch sound {
	case core.SoundCoin:
		replay(s.coinPlayer)
	case core.SoundGameOver:
		replay(s.overPlayer)
	case core.SoundMusic:
		if !s.musicPlayer.IsPlaying() {
			s.musicPlayer.Play()
		}
	}
}

func replay(p *audio.Player) {
	if err := p.Rewind(); err != nil {
		log.Println("rewind sound:", err)
		return
	}
	p.Play()
}
