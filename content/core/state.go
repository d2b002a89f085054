package core

import (
	"math/rand"

	"golang.org/x/image/math/f64"

	"coin-rush/content/config"
)

type Player struct {
	Pos f64.Vec2 // 圆心
}

type Coin struct {
	Pos    f64.Vec2 // 圆心
	Radius float64
}

type Obstacle struct {
	Pos    f64.Vec2 // 左上角
	Width  float64
	Height float64
	DX     float64 // 水平速度，碰到左右边界时取反
}

// State 一局游戏的全部可变数据，由 Controller 持有
type State struct {
	Player    Player
	Coins     []Coin
	Obstacles []Obstacle
	Score     int
	Best      int
	Over      bool
	Tick      int

	timeLeft int // 剩余时间，单位 1/60 秒
}

func NewState(best int) *State {
	return &State{
		Player:   Player{Pos: f64.Vec2{config.PlayerStartX, config.PlayerStartY}},
		Best:     best,
		timeLeft: config.StartTime,
	}
}

// TimeLeft 剩余秒数
func (s *State) TimeLeft() float64 {
	return float64(s.timeLeft) / config.TimePerSec
}

// Reset 重新开始一局，保留最高分
func (s *State) Reset(rng *rand.Rand) {
	s.Player.Pos = f64.Vec2{config.PlayerStartX, config.PlayerStartY}
	s.Score = 0
	s.Over = false
	s.Tick = 0
	s.timeLeft = config.StartTime
	CreateCoins(s, rng)
	CreateObstacles(s, rng)
}
