package view

import (
	"math/rand"

	"coin-rush/content/config"
	"coin-rush/content/core"
)

func menuController() *core.Controller {
	ctrl := core.NewController(rand.New(rand.NewSource(7)), 0, nil, nil)
	ctrl.Push(core.Command{Kind: core.CmdShowMenu})
	ctrl.Update()
	return ctrl
}

// runningController 返回运行中且场上没有障碍物的控制器
func runningController() *core.Controller {
	ctrl := menuController()
	ctrl.Push(core.Command{Kind: core.CmdStart})
	ctrl.Update()
	for ctrl.Mode() == config.ModeGameOver {
		ctrl.Push(core.Command{Kind: core.CmdRestart})
		ctrl.Update()
	}
	ctrl.State().Obstacles = nil
	return ctrl
}

func gameOverController() *core.Controller {
	ctrl := runningController()
	p := ctrl.State().Player.Pos
	ctrl.State().Obstacles = []core.Obstacle{{Pos: p, Width: config.ObstacleWidth, Height: config.ObstacleHeight}}
	ctrl.Update()
	return ctrl
}
