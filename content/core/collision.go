package core

import (
	"math/rand"

	"coin-rush/content/config"
	"coin-rush/content/utils"
)

// CollectCoins 拾取距离玩家足够近的金币，每拾取一枚立即补一枚新的，返回拾取数量。
// 新补的金币要到下一帧才参与判定。
func CollectCoins(s *State, rng *rand.Rand) int {
	px, py := s.Player.Pos[0], s.Player.Pos[1]

	kept := s.Coins[:0]
	picked := 0
	for _, coin := range s.Coins {
		if utils.GetDistance(px, py, coin.Pos[0], coin.Pos[1]) < config.CoinPickup {
			picked++
			continue
		}
		kept = append(kept, coin)
	}

	for i := 0; i < picked; i++ {
		s.Score += config.CoinScore
		s.timeLeft += config.CoinBonus
		kept = append(kept, NewCoin(rng))
	}
	s.Coins = kept

	return picked
}

// HitObstacle 玩家包围盒与任一障碍物相交
func HitObstacle(s *State) bool {
	x := s.Player.Pos[0] - config.PlayerRadius
	y := s.Player.Pos[1] - config.PlayerRadius
	size := float64(2 * config.PlayerRadius)

	for _, o := range s.Obstacles {
		if utils.Overlap(x, y, size, size, o.Pos[0], o.Pos[1], o.Width, o.Height) {
			return true
		}
	}
	return false
}
