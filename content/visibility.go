//go:build !js

package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"coin-rush/content/core"
	"coin-rush/content/view"
)

// visibility 桌面端以窗口焦点代替页面可见性，需要 SetRunnableOnUnfocused(true)
type visibility struct {
	ctrl  *core.Controller
	focus view.Focus
}

func watchVisibility(ctrl *core.Controller) *visibility {
	return &visibility{ctrl: ctrl}
}

func (v *visibility) Update() {
	v.focus.Update(v.ctrl, ebiten.IsFocused())
}
