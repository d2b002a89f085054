//go:build js && wasm

package main

import (
	"syscall/js"

	"coin-rush/content/core"
)

// visibility 监听 document 的 visibilitychange 事件
type visibility struct {
	listener js.Func
}

func watchVisibility(ctrl *core.Controller) *visibility {
	doc := js.Global().Get("document")
	v := &visibility{}
	v.listener = js.FuncOf(func(this js.Value, args []js.Value) any {
		if doc.Get("hidden").Bool() {
			ctrl.Push(core.Command{Kind: core.CmdHide})
		} else {
			ctrl.Push(core.Command{Kind: core.CmdShow})
		}
		return nil
	})
	doc.Call("addEventListener", "visibilitychange", v.listener)
	return v
}

// Update 事件由浏览器回调推送，这里不需要轮询
func (v *visibility) Update() {}
