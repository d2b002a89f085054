package core

import (
	"coin-rush/content/config"
	"coin-rush/content/utils"
)

// MovePlayer 按住的方向各自独立生效，移动后把玩家限制在画布内
func MovePlayer(s *State, in Input) {
	p := &s.Player
	if in.Held(DirUp) {
		p.Pos[1] -= config.PlayerSpeed
	}
	if in.Held(DirDown) {
		p.Pos[1] += config.PlayerSpeed
	}
	if in.Held(DirLeft) {
		p.Pos[0] -= config.PlayerSpeed
	}
	if in.Held(DirRight) {
		p.Pos[0] += config.PlayerSpeed
	}

	p.Pos[0] = utils.Clamp(p.Pos[0], config.PlayerRadius, config.ScreenWidth-config.PlayerRadius)
	p.Pos[1] = utils.Clamp(p.Pos[1], config.PlayerRadius, config.ScreenHeight-config.PlayerRadius)
}

// MoveObstacles 障碍物水平移动，碰到左右边界后反向（不做位置修正）
func MoveObstacles(s *State) {
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		o.Pos[0] += o.DX
		if o.Pos[0] <= 0 || o.Pos[0]+o.Width >= config.ScreenWidth {
			o.DX = -o.DX
		}
	}
}
