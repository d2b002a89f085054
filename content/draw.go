package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"coin-rush/content/config"
	"coin-rush/content/view"
)

var (
	panelShade  = color.RGBA{0x00, 0x00, 0x00, 0xb0}
	buttonColor = color.RGBA{0x37, 0x47, 0x4f, 0xff}
	buttonEdge  = color.RGBA{0xb0, 0xbe, 0xc5, 0xff}
	padColor    = color.RGBA{0xff, 0xff, 0xff, 0x40}
	gameOverRed = color.RGBA{0xff, 0x52, 0x52, 0xff}
)

// 视差滚动背景，两张图首尾相接
func (g *Game) drawBackground(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if !g.ctrl.Panels().Game {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, g.effects.BgY-config.ScreenHeight)
	screen.DrawImage(backgroundImage, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, g.effects.BgY)
	screen.DrawImage(backgroundImage, op)
}

func (g *Game) drawCoins(screen *ebiten.Image) {
	if !g.ctrl.Panels().Game {
		return
	}
	frame := coinFrames[g.effects.CoinFrame]
	for _, c := range g.ctrl.State().Coins {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(c.Pos[0]-config.CoinRadius, c.Pos[1]-config.CoinRadius)
		screen.DrawImage(frame, op)
	}
}

func (g *Game) drawObstacles(screen *ebiten.Image) {
	if !g.ctrl.Panels().Game {
		return
	}
	for _, o := range g.ctrl.State().Obstacles {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(o.Pos[0], o.Pos[1])
		screen.DrawImage(obstacleImage, op)
	}
}

func (g *Game) drawBall(screen *ebiten.Image) {
	if !g.ctrl.Panels().Game {
		return
	}
	size := g.effects.BallSize()
	scale := size / (2 * config.PlayerRadius)
	p := g.ctrl.State().Player.Pos

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(p[0]-size/2, p[1]-size/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(ballImage, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	if !g.ctrl.Panels().Game {
		return
	}
	drawText(screen, g.ctrl.ScoreText(), 6, 6, config.FontSize, text.AlignStart, color.White)
	drawText(screen, g.ctrl.TimeText(), config.ScreenWidth-6, 6, config.FontSize, text.AlignEnd, color.White)
}

func (g *Game) drawTouchPad(screen *ebiten.Image) {
	if g.ctrl.Mode() != config.ModeRunning {
		return
	}
	for _, r := range view.TouchPad {
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), padColor, false)
	}
}

func (g *Game) drawPanels(screen *ebiten.Image) {
	p := g.ctrl.Panels()
	switch {
	case p.Loading:
		drawTitle(screen, "COIN RUSH", 150)
		drawText(screen, "LOADING...", config.ScreenWidth/2, 220, config.FontSize, text.AlignCenter, color.White)
	case p.Menu:
		drawTitle(screen, "COIN RUSH", 100)
		drawButton(screen, view.StartButton, "START GAME")
		drawButton(screen, view.HowToButton, "HOW TO PLAY")
		if p.Instructions {
			drawText(screen, "ARROWS/WASD OR PAD TO MOVE\nGRAB COINS: +10 PTS, +4 SEC\nDODGE THE RED BARS", config.ScreenWidth/2, 300, config.FontSize*0.8, text.AlignCenter, color.White)
		}
	case p.GameOver:
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, panelShade, false)
		drawText(screen, "GAME OVER", config.ScreenWidth/2, 170, config.TitleFontSize*2, text.AlignCenter, gameOverRed)
		if p.Restart {
			drawButton(screen, view.RestartButton, "RESTART")
		}
	case p.Paused:
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, panelShade, false)
		drawTitle(screen, "PAUSED", 170)
		drawText(screen, "TAP OR PRESS ENTER", config.ScreenWidth/2, 220, config.FontSize, text.AlignCenter, color.White)
	}
}

func drawButton(screen *ebiten.Image, r image.Rectangle, label string) {
	x, y, w, h := float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, buttonColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, buttonEdge, false)
	cy := float64(r.Min.Y) + float64(r.Dy())/2 - config.FontSize/2
	drawText(screen, label, float64(r.Min.X)+float64(r.Dx())/2, cy, config.FontSize, text.AlignCenter, color.White)
}

