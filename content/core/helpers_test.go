package core

import (
	"math/rand"

	"golang.org/x/image/math/f64"

	"coin-rush/content/config"
)

type recordSounds struct {
	played []Sound
}

func (r *recordSounds) Play(s Sound) { r.played = append(r.played, s) }

func (r *recordSounds) count(s Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

type recordScores struct {
	saved []int
}

func (r *recordScores) SaveBestScore(score int) { r.saved = append(r.saved, score) }

func newRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

// runningController 返回已进入运行状态、场上没有障碍物且金币远离玩家的控制器
func runningController(best int) (*Controller, *recordSounds, *recordScores) {
	sounds := &recordSounds{}
	scores := &recordScores{}
	c := NewController(newRand(), best, sounds, scores)
	c.Push(Command{Kind: CmdShowMenu})
	c.Update()
	c.restart()
	c.state.Obstacles = nil
	c.state.Coins = farCoins()
	return c, sounds, scores
}

func farCoins() []Coin {
	coins := make([]Coin, config.CoinCount)
	for i := range coins {
		coins[i] = Coin{Pos: f64.Vec2{20 + float64(i)*5, 370}, Radius: config.CoinRadius}
	}
	return coins
}
