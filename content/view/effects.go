package view

import (
	"math"

	"coin-rush/content/config"
)

// Effects 只影响画面的状态：背景滚动、金币旋转帧、球的弹跳
type Effects struct {
	BgY       float64
	CoinFrame int

	coinCounter int
	bounceMs    float64
}

// Advance 推进一帧，只在运行状态下生效。coins 为本帧绘制的金币数量
func (e *Effects) Advance(mode config.Mode, coins int) {
	if mode != config.ModeRunning {
		return
	}

	e.BgY += config.BackgroundScrollPx
	if e.BgY >= config.ScreenHeight {
		e.BgY = 0
	}

	e.bounceMs += 1000.0 / config.TPS

	// 每绘制 CoinFrameEvery 个金币切换一帧
	for i := 0; i < coins; i++ {
		e.coinCounter++
		if e.coinCounter%config.CoinFrameEvery == 0 {
			e.CoinFrame = (e.CoinFrame + 1) % config.CoinFrameCount
		}
	}
}

// BallSize 球的绘制直径，在 26 到 30 之间变化
func (e *Effects) BallSize() float64 {
	return math.Sin(e.bounceMs/config.BallBouncePeriodMs)*config.BallBounceAmplitude + config.BallBounceBase
}
