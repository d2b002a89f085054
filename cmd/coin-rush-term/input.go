package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"coin-rush/content/core"
)

// 终端没有按键抬起事件，按下后在一段时间内没有重复事件就视为松开。
// 首次按下要等过终端的自动重复延迟，之后的重复事件间隔很短
const (
	firstHold  = 500 * time.Millisecond
	repeatHold = 150 * time.Millisecond
)

var (
	arrowKeys = map[tcell.Key]core.Key{
		tcell.KeyUp:    core.KeyArrowUp,
		tcell.KeyDown:  core.KeyArrowDown,
		tcell.KeyLeft:  core.KeyArrowLeft,
		tcell.KeyRight: core.KeyArrowRight,
	}
	runeKeys = map[rune]core.Key{
		'w': core.KeyW,
		's': core.KeyS,
		'a': core.KeyA,
		'd': core.KeyD,
	}
	opposite = map[core.Key]core.Key{
		core.KeyArrowUp:    core.KeyArrowDown,
		core.KeyArrowDown:  core.KeyArrowUp,
		core.KeyArrowLeft:  core.KeyArrowRight,
		core.KeyArrowRight: core.KeyArrowLeft,
		core.KeyW:          core.KeyS,
		core.KeyS:          core.KeyW,
		core.KeyA:          core.KeyD,
		core.KeyD:          core.KeyA,
	}
)

type keyHold struct {
	until map[core.Key]time.Time
}

func newKeyHold() *keyHold {
	return &keyHold{until: make(map[core.Key]time.Time)}
}

func (h *keyHold) press(ctrl *core.Controller, k core.Key, now time.Time) {
	if o, ok := opposite[k]; ok {
		h.release(ctrl, o)
	}
	if _, held := h.until[k]; held {
		h.until[k] = now.Add(repeatHold)
		return
	}
	ctrl.Push(core.KeyDown(k))
	h.until[k] = now.Add(firstHold)
}

func (h *keyHold) release(ctrl *core.Controller, k core.Key) {
	if _, held := h.until[k]; !held {
		return
	}
	delete(h.until, k)
	ctrl.Push(core.KeyUp(k))
}

// expire 松开超时的按键
func (h *keyHold) expire(ctrl *core.Controller, now time.Time) {
	for k, t := range h.until {
		if now.After(t) {
			h.release(ctrl, k)
		}
	}
}

// handleKey 处理一个按键事件，返回 false 表示退出
func handleKey(ev *tcell.EventKey, ctrl *core.Controller, h *keyHold, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		confirm(ctrl)
		return true
	}

	if k, ok := arrowKeys[ev.Key()]; ok {
		h.press(ctrl, k, now)
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	r := ev.Rune()
	if k, ok := runeKeys[r]; ok {
		h.press(ctrl, k, now)
		return true
	}
	switch r {
	case 'q':
		return false
	case ' ':
		confirm(ctrl)
	case 'h':
		ctrl.Push(core.Command{Kind: core.CmdToggleInstructions})
	case 'r':
		ctrl.Push(core.Command{Kind: core.CmdRestart})
	case 'p':
		if ctrl.Panels().Paused {
			ctrl.Push(core.Command{Kind: core.CmdResume})
		} else {
			ctrl.Push(core.Command{Kind: core.CmdPause})
		}
	}
	return true
}

// confirm 回车/空格：菜单开始、结束后重开、暂停时继续
func confirm(ctrl *core.Controller) {
	p := ctrl.Panels()
	switch {
	case p.Menu:
		ctrl.Push(core.Command{Kind: core.CmdStart})
	case p.Restart:
		ctrl.Push(core.Command{Kind: core.CmdRestart})
	case p.Paused:
		ctrl.Push(core.Command{Kind: core.CmdResume})
	}
}
