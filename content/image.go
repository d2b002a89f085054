package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"coin-rush/content/config"
)

var (
	ballImage       *ebiten.Image
	obstacleImage   *ebiten.Image
	backgroundImage *ebiten.Image
	coinFrames      []*ebiten.Image
)

var (
	ballColor      = color.RGBA{0x4f, 0xc3, 0xf7, 0xff}
	ballShine      = color.RGBA{0xe1, 0xf5, 0xfe, 0xff}
	coinColor      = color.RGBA{0xff, 0xc1, 0x07, 0xff}
	coinEdge       = color.RGBA{0xc7, 0x91, 0x00, 0xff}
	obstacleColor  = color.RGBA{0xe5, 0x39, 0x35, 0xff}
	obstacleStripe = color.RGBA{0x21, 0x21, 0x21, 0xff}
	skyTop         = color.RGBA{0x0d, 0x1b, 0x2a, 0xff}
	starColor      = color.RGBA{0xcf, 0xd8, 0xdc, 0xff}
)

// InitImage 所有图片都在运行时绘制，不依赖外部资源
func InitImage() {
	ballImage = ebiten.NewImage(2*config.PlayerRadius, 2*config.PlayerRadius)
	vector.DrawFilledCircle(ballImage, config.PlayerRadius, config.PlayerRadius, config.PlayerRadius, ballColor, true)
	vector.DrawFilledCircle(ballImage, config.PlayerRadius*0.7, config.PlayerRadius*0.7, config.PlayerRadius*0.3, ballShine, true)

	// 金币旋转动画：把同一枚金币在水平方向按不同比例压缩
	disc := ebiten.NewImage(2*config.CoinRadius, 2*config.CoinRadius)
	vector.DrawFilledCircle(disc, config.CoinRadius, config.CoinRadius, config.CoinRadius, coinEdge, true)
	vector.DrawFilledCircle(disc, config.CoinRadius, config.CoinRadius, config.CoinRadius-2, coinColor, true)
	coinFrames = make([]*ebiten.Image, config.CoinFrameCount)
	for i := range coinFrames {
		sx := math.Max(math.Abs(math.Cos(float64(i)*math.Pi/config.CoinFrameCount)), 0.15)
		frame := ebiten.NewImage(2*config.CoinRadius, 2*config.CoinRadius)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-config.CoinRadius, 0)
		op.GeoM.Scale(sx, 1)
		op.GeoM.Translate(config.CoinRadius, 0)
		op.Filter = ebiten.FilterLinear
		frame.DrawImage(disc, op)
		coinFrames[i] = frame
	}

	obstacleImage = ebiten.NewImage(config.ObstacleWidth, config.ObstacleHeight)
	obstacleImage.Fill(obstacleColor)
	for x := -config.ObstacleHeight; x < config.ObstacleWidth; x += 12 {
		vector.StrokeLine(obstacleImage, float32(x), config.ObstacleHeight, float32(x+config.ObstacleHeight), 0, 4, obstacleStripe, true)
	}

	// 背景星空，固定种子保证每次启动一致
	backgroundImage = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	backgroundImage.Fill(skyTop)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 60; i++ {
		x := r.Float32() * config.ScreenWidth
		y := r.Float32() * config.ScreenHeight
		vector.DrawFilledCircle(backgroundImage, x, y, 0.5+r.Float32(), starColor, false)
	}
}
