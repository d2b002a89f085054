package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"coin-rush/content/config"
	"coin-rush/content/core"
)

// 400x400 的画布缩放到 80x40 个字符，每格 5x10
const (
	fieldCols = 80
	fieldRows = 40
	fieldTop  = 2 // 第 0 行为状态栏，第 1 行为上边框
	fieldLeft = 1
)

var (
	styleDefault  = tcell.StyleDefault
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleCoin     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleObstacle = tcell.StyleDefault.Background(tcell.ColorRed)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

type renderer struct {
	screen tcell.Screen
}

// cell 画布坐标转换为屏幕坐标
func cell(x, y float64) (int, int) {
	col := int(x * fieldCols / config.ScreenWidth)
	row := int(y * fieldRows / config.ScreenHeight)
	return fieldLeft + col, fieldTop + row
}

func (r *renderer) draw(ctrl *core.Controller) {
	r.screen.Clear()
	r.drawBorder()

	p := ctrl.Panels()
	if p.Game {
		r.drawStatus(ctrl)
		r.drawEntities(ctrl.State())
	}

	switch {
	case p.Loading:
		r.center(fieldRows/2, "COIN RUSH", styleTitle)
		r.center(fieldRows/2+2, "loading...", styleDefault)
	case p.Menu:
		r.center(fieldRows/2-4, "COIN RUSH", styleTitle)
		r.center(fieldRows/2-1, "[enter] start game", styleDefault)
		r.center(fieldRows/2+1, "[h] how to play", styleDefault)
		if p.Instructions {
			r.center(fieldRows/2+4, "arrows/wasd move, coins +10 pts +4 sec", styleDefault)
			r.center(fieldRows/2+5, "dodge the red bars", styleDefault)
		}
	case p.GameOver:
		r.center(fieldRows/2-1, "GAME OVER", styleGameOver)
		if p.Restart {
			r.center(fieldRows/2+1, "[enter] restart  [q] quit", styleDefault)
		}
	case p.Paused:
		r.center(fieldRows/2, "PAUSED  [p] resume", styleTitle)
	}

	r.screen.Show()
}

func (r *renderer) drawBorder() {
	right := fieldLeft + fieldCols
	bottom := fieldTop + fieldRows
	for x := fieldLeft; x < right; x++ {
		r.screen.SetContent(x, fieldTop-1, '─', nil, styleBorder)
		r.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := fieldTop; y < bottom; y++ {
		r.screen.SetContent(fieldLeft-1, y, '│', nil, styleBorder)
		r.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(fieldLeft-1, fieldTop-1, '┌', nil, styleBorder)
	r.screen.SetContent(right, fieldTop-1, '┐', nil, styleBorder)
	r.screen.SetContent(fieldLeft-1, bottom, '└', nil, styleBorder)
	r.screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (r *renderer) drawStatus(ctrl *core.Controller) {
	r.text(0, 0, ctrl.ScoreText(), styleDefault)
	t := ctrl.TimeText()
	r.text(fieldLeft+fieldCols-len(t), 0, t, styleDefault)
}

func (r *renderer) drawEntities(s *core.State) {
	for _, o := range s.Obstacles {
		x0, y0 := cell(o.Pos[0], o.Pos[1])
		x1, y1 := cell(o.Pos[0]+o.Width, o.Pos[1]+o.Height)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				r.put(x, y, ' ', styleObstacle)
			}
		}
	}
	for _, c := range s.Coins {
		x, y := cell(c.Pos[0], c.Pos[1])
		r.put(x, y, '$', styleCoin)
	}
	x, y := cell(s.Player.Pos[0], s.Player.Pos[1])
	r.put(x-1, y, '(', stylePlayer)
	r.put(x, y, '@', stylePlayer)
	r.put(x+1, y, ')', stylePlayer)
}

// put 只在画布范围内绘制
func (r *renderer) put(x, y int, ch rune, style tcell.Style) {
	if x < fieldLeft || x >= fieldLeft+fieldCols || y < fieldTop || y >= fieldTop+fieldRows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *renderer) center(row int, s string, style tcell.Style) {
	s = strings.TrimSpace(s)
	x := fieldLeft + (fieldCols-len([]rune(s)))/2
	r.text(x, fieldTop+row, s, style)
}
