package core

import (
	"math/rand"

	"golang.org/x/image/math/f64"

	"coin-rush/content/config"
)

func NewCoin(rng *rand.Rand) Coin {
	return Coin{
		Pos: f64.Vec2{
			rng.Float64() * (config.ScreenWidth - config.CoinMargin),
			rng.Float64() * (config.ScreenHeight - config.CoinMargin),
		},
		Radius: config.CoinRadius,
	}
}

// CreateCoins 用新生成的金币替换全部金币
func CreateCoins(s *State, rng *rand.Rand) {
	s.Coins = make([]Coin, 0, config.CoinCount)
	for i := 0; i < config.CoinCount; i++ {
		s.Coins = append(s.Coins, NewCoin(rng))
	}
}

// CreateObstacles 用新生成的障碍物替换全部障碍物，速度大小在 [1, 3)，方向随机
func CreateObstacles(s *State, rng *rand.Rand) {
	s.Obstacles = make([]Obstacle, 0, config.ObstacleCount)
	for i := 0; i < config.ObstacleCount; i++ {
		x := rng.Float64() * config.ObstacleSpawnMax
		y := rng.Float64() * config.ObstacleSpawnMax
		dx := rng.Float64()*(config.ObstacleMaxSpeed-config.ObstacleMinSpeed) + config.ObstacleMinSpeed
		if rng.Float64() <= 0.5 {
			dx = -dx
		}
		s.Obstacles = append(s.Obstacles, Obstacle{
			Pos:    f64.Vec2{x, y},
			Width:  config.ObstacleWidth,
			Height: config.ObstacleHeight,
			DX:     dx,
		})
	}
}
