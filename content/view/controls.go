package view

import (
	"image"

	"coin-rush/content/core"
)

// 屏幕右下角的方向按钮
var TouchPad = map[core.Key]image.Rectangle{
	core.KeyTouchUp:    image.Rect(330, 290, 362, 322),
	core.KeyTouchLeft:  image.Rect(298, 322, 330, 354),
	core.KeyTouchRight: image.Rect(362, 322, 394, 354),
	core.KeyTouchDown:  image.Rect(330, 354, 362, 386),
}

var (
	StartButton   = image.Rect(110, 190, 290, 226)
	HowToButton   = image.Rect(110, 240, 290, 276)
	RestartButton = image.Rect(130, 230, 270, 266)
)

// Frame 一帧内采集到的输入
type Frame struct {
	Keys     map[core.Key]bool // 方向键当前是否按下
	Pointers []image.Point     // 按住的触点和鼠标
	Taps     []image.Point     // 本帧新按下的触点和鼠标

	// 本帧新按下的功能键
	Confirm bool // Enter 或空格
	Help    bool
	Restart bool
	Pause   bool
	Escape  bool
}

// Controls 把每帧的输入转换成命令，方向键只在状态变化时发送
type Controls struct {
	held map[core.Key]bool
}

func NewControls() *Controls {
	return &Controls{held: make(map[core.Key]bool)}
}

func (c *Controls) Apply(ctrl *core.Controller, f Frame) {
	for k, down := range f.Keys {
		c.set(ctrl, k, down)
	}
	for k, r := range TouchPad {
		c.set(ctrl, k, anyIn(f.Pointers, r))
	}

	panels := ctrl.Panels()
	switch {
	case panels.Menu:
		if f.Confirm || anyIn(f.Taps, StartButton) {
			ctrl.Push(core.Command{Kind: core.CmdStart})
		}
		if f.Help || anyIn(f.Taps, HowToButton) {
			ctrl.Push(core.Command{Kind: core.CmdToggleInstructions})
		}
	case panels.Restart:
		if f.Confirm || f.Restart || anyIn(f.Taps, RestartButton) {
			ctrl.Push(core.Command{Kind: core.CmdRestart})
		}
	case panels.Paused:
		if f.Confirm || f.Pause || len(f.Taps) > 0 {
			ctrl.Push(core.Command{Kind: core.CmdResume})
		}
	case panels.Game:
		if f.Pause || f.Escape {
			ctrl.Push(core.Command{Kind: core.CmdPause})
		}
	}
}

func (c *Controls) set(ctrl *core.Controller, k core.Key, down bool) {
	if c.held[k] == down {
		return
	}
	c.held[k] = down
	if down {
		ctrl.Push(core.KeyDown(k))
	} else {
		ctrl.Push(core.KeyUp(k))
	}
}

func anyIn(ps []image.Point, r image.Rectangle) bool {
	for _, p := range ps {
		if p.In(r) {
			return true
		}
	}
	return false
}
