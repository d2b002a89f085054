package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 48000

var audioContext *audio.Context
