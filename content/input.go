package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"coin-rush/content/core"
	"coin-rush/content/view"
)

var keyboardKeys = map[ebiten.Key]core.Key{
	ebiten.KeyArrowUp:    core.KeyArrowUp,
	ebiten.KeyArrowDown:  core.KeyArrowDown,
	ebiten.KeyArrowLeft:  core.KeyArrowLeft,
	ebiten.KeyArrowRight: core.KeyArrowRight,
	ebiten.KeyW:          core.KeyW,
	ebiten.KeyS:          core.KeyS,
	ebiten.KeyA:          core.KeyA,
	ebiten.KeyD:          core.KeyD,
}

// Input 采集键盘、鼠标和触屏的状态
type Input struct {
	controls *view.Controls
}

func NewInput() *Input {
	return &Input{controls: view.NewControls()}
}

func (in *Input) Update(ctrl *core.Controller) {
	keys := make(map[core.Key]bool, len(keyboardKeys))
	for ek, k := range keyboardKeys {
		keys[k] = ebiten.IsKeyPressed(ek)
	}

	in.controls.Apply(ctrl, view.Frame{
		Keys:     keys,
		Pointers: pressedPointers(),
		Taps:     justPressedPointers(),
		Confirm:  inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Help:     inpututil.IsKeyJustPressed(ebiten.KeyH),
		Restart:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Pause:    inpututil.IsKeyJustPressed(ebiten.KeyP),
		Escape:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	})
}

func pressedPointers() []image.Point {
	var ps []image.Point
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		ps = append(ps, image.Pt(x, y))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		ps = append(ps, image.Pt(x, y))
	}
	return ps
}

func justPressedPointers() []image.Point {
	var ps []image.Point
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		ps = append(ps, image.Pt(x, y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		ps = append(ps, image.Pt(x, y))
	}
	return ps
}
