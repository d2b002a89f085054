package view

import "coin-rush/content/core"

// Focus 把窗口或终端的焦点变化转换成 CmdHide/CmdShow，零值表示有焦点
type Focus struct {
	lost bool
}

func (f *Focus) Update(ctrl *core.Controller, focused bool) {
	if focused != f.lost {
		return
	}
	f.lost = !focused
	if focused {
		ctrl.Push(core.Command{Kind: core.CmdShow})
	} else {
		ctrl.Push(core.Command{Kind: core.CmdHide})
	}
}
