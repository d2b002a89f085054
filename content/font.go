package main

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"coin-rush/content/config"
)

var (
	arcadeFaceSource *text.GoTextFaceSource
)

func InitFont() {
	// 加载字体
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		log.Fatal(err)
	}
	arcadeFaceSource = s
}

func drawText(screen *ebiten.Image, str string, x, y, size float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = size * 1.5
	op.PrimaryAlign = align
	text.Draw(screen, str, &text.GoTextFace{
		Source: arcadeFaceSource,
		Size:   size,
	}, op)
}

func drawTitle(screen *ebiten.Image, str string, y float64) {
	drawText(screen, str, config.ScreenWidth/2, y, config.TitleFontSize*2, text.AlignCenter, color.White)
}
