package core

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"coin-rush/content/config"
)

type Sound int

const (
	SoundCoin Sound = iota
	SoundGameOver
	SoundMusic
)

// Sounder 播放音效，调用方不等待结果
type Sounder interface {
	Play(sound Sound)
}

// ScoreSaver 在新纪录产生时保存最高分
type ScoreSaver interface {
	SaveBestScore(score int)
}

// Panels 各界面元素是否显示
type Panels struct {
	Loading      bool
	Menu         bool
	Instructions bool
	Game         bool
	GameOver     bool
	Restart      bool
	Paused       bool
}

// Controller 驱动游戏的状态机，每帧调用一次 Update
type Controller struct {
	mode         config.Mode
	state        *State
	input        Input
	queue        Queue
	rng          *rand.Rand
	sounds       Sounder
	scores       ScoreSaver
	instructions bool
	loading      int
}

func NewController(rng *rand.Rand, best int, sounds Sounder, scores ScoreSaver) *Controller {
	c := &Controller{
		mode:   config.ModeLoading,
		state:  NewState(best),
		input:  make(Input),
		rng:    rng,
		sounds: sounds,
		scores: scores,
	}
	CreateCoins(c.state, rng)
	CreateObstacles(c.state, rng)
	return c
}

func (c *Controller) Mode() config.Mode { return c.mode }

func (c *Controller) State() *State { return c.state }

// Push 入队一个命令，可在任意 goroutine 调用
func (c *Controller) Push(cmd Command) { c.queue.Push(cmd) }

// Update 处理本帧的命令，并在运行状态下推进一帧
func (c *Controller) Update() {
	for _, cmd := range c.queue.Drain() {
		c.handle(cmd)
	}

	switch c.mode {
	case config.ModeLoading:
		c.loading++
		if c.loading >= config.LoadingTicks {
			c.setMode(config.ModeMenu)
		}
	case config.ModeRunning:
		c.tick()
	}
}

func (c *Controller) handle(cmd Command) {
	switch cmd.Kind {
	case CmdKeyDown:
		c.input[cmd.Key] = true
	case CmdKeyUp:
		c.input[cmd.Key] = false
	case CmdShowMenu:
		if c.mode == config.ModeLoading {
			c.setMode(config.ModeMenu)
		}
	case CmdStart:
		if c.mode == config.ModeMenu {
			c.play(SoundMusic)
			c.restart()
		}
	case CmdToggleInstructions:
		if c.mode == config.ModeMenu {
			c.instructions = !c.instructions
		}
	case CmdRestart:
		if c.mode == config.ModeGameOver {
			c.restart()
		}
	case CmdPause, CmdHide:
		if c.mode == config.ModeRunning {
			c.setMode(config.ModePaused)
		}
	case CmdShow:
		// 重新可见时保持暂停，等待玩家主动继续
	case CmdResume:
		if c.mode == config.ModePaused {
			c.setMode(config.ModeRunning)
		}
	}
}

// restart 重置本局数据并进入运行状态，开始游戏和重新开始共用。
// 调用方负责检查当前模式
func (c *Controller) restart() {
	c.state.Reset(c.rng)
	c.instructions = false
	c.setMode(config.ModeRunning)
}

func (c *Controller) tick() {
	s := c.state
	s.Tick++

	MovePlayer(s, c.input)

	for n := CollectCoins(s, c.rng); n > 0; n-- {
		c.play(SoundCoin)
	}

	MoveObstacles(s)

	if HitObstacle(s) {
		c.endGame()
		return
	}

	if AdvanceTimer(s) {
		c.endGame()
	}
}

func (c *Controller) endGame() {
	s := c.state
	if s.Over {
		return
	}
	s.Over = true
	c.setMode(config.ModeGameOver)
	c.play(SoundGameOver)

	if s.Score > s.Best {
		s.Best = s.Score
		if c.scores != nil {
			c.scores.SaveBestScore(s.Score)
		}
	}
	log.Println("game over, score", s.Score, "best", s.Best, "ticks", s.Tick)
}

func (c *Controller) setMode(m config.Mode) {
	if c.mode != m {
		log.Println("mode", c.mode, "->", m)
	}
	c.mode = m
}

func (c *Controller) play(sound Sound) {
	if c.sounds != nil {
		c.sounds.Play(sound)
	}
}

func (c *Controller) ScoreText() string {
	return fmt.Sprintf("Score: %d | Best: %d", c.state.Score, c.state.Best)
}

func (c *Controller) TimeText() string {
	return fmt.Sprintf("Time: %ds", int(math.Ceil(c.state.TimeLeft())))
}

func (c *Controller) Panels() Panels {
	return Panels{
		Loading:      c.mode == config.ModeLoading,
		Menu:         c.mode == config.ModeMenu,
		Instructions: c.mode == config.ModeMenu && c.instructions,
		Game:         c.mode == config.ModeRunning || c.mode == config.ModePaused || c.mode == config.ModeGameOver,
		GameOver:     c.mode == config.ModeGameOver,
		Restart:      c.mode == config.ModeGameOver,
		Paused:       c.mode == config.ModePaused,
	}
}
