package core

import (
	"testing"

	"golang.org/x/image/math/f64"

	"coin-rush/content/config"
)

func TestLoadingToMenu(t *testing.T) {
	c := NewController(newRand(), 0, nil, nil)
	for i := 1; i < config.LoadingTicks; i++ {
		c.Update()
		if c.Mode() != config.ModeLoading {
			t.Fatalf("left loading early at tick %d", i)
		}
	}
	c.Update()
	if c.Mode() != config.ModeMenu {
		t.Fatalf("mode = %v, want menu", c.Mode())
	}
}

func TestShowMenuFailSafe(t *testing.T) {
	c := NewController(newRand(), 0, nil, nil)
	c.Push(Command{Kind: CmdShowMenu})
	c.Update()
	if c.Mode() != config.ModeMenu {
		t.Fatalf("mode = %v, want menu", c.Mode())
	}

	// 已经在菜单时重复触发不产生影响
	c.Push(Command{Kind: CmdShowMenu})
	c.Update()
	if c.Mode() != config.ModeMenu {
		t.Fatalf("mode = %v, want menu", c.Mode())
	}
}

func TestMenuStartsGame(t *testing.T) {
	sounds := &recordSounds{}
	c := NewController(newRand(), 0, sounds, nil)
	c.Push(Command{Kind: CmdStart}) // 加载中忽略
	c.Update()
	if c.Mode() != config.ModeLoading {
		t.Fatalf("start during loading changed mode to %v", c.Mode())
	}

	c.Push(Command{Kind: CmdShowMenu})
	c.Push(Command{Kind: CmdToggleInstructions})
	c.Update()
	if !c.Panels().Instructions {
		t.Fatal("instructions panel should be visible")
	}

	c.Push(Command{Kind: CmdStart})
	c.Update()
	if c.Mode() != config.ModeRunning {
		t.Fatalf("mode = %v, want running", c.Mode())
	}
	if sounds.count(SoundMusic) != 1 {
		t.Fatalf("music played %d times, want 1", sounds.count(SoundMusic))
	}
	p := c.Panels()
	if p.Menu || p.Instructions || !p.Game {
		t.Fatalf("panels = %+v", p)
	}
}

func TestCoinCountAndScoreWhileRunning(t *testing.T) {
	c := NewController(newRand(), 0, &recordSounds{}, nil)
	c.Push(Command{Kind: CmdShowMenu})
	c.Push(Command{Kind: CmdStart})
	c.Push(KeyDown(KeyArrowRight))
	c.Push(KeyDown(KeyArrowDown))

	lastScore := 0
	for i := 0; i < 3000; i++ {
		c.Update()
		if c.Mode() != config.ModeRunning {
			break
		}
		s := c.State()
		if len(s.Coins) != config.CoinCount {
			t.Fatalf("tick %d: coins = %d", i, len(s.Coins))
		}
		if s.Score < lastScore || (s.Score-lastScore)%config.CoinScore != 0 {
			t.Fatalf("tick %d: score went from %d to %d", i, lastScore, s.Score)
		}
		lastScore = s.Score
	}
}

func TestPickupAddsScoreTimeAndSound(t *testing.T) {
	c, sounds, _ := runningController(0)
	c.state.Coins[0].Pos = f64.Vec2{config.PlayerStartX + 5, config.PlayerStartY}
	before := c.state.timeLeft

	c.Update()
	s := c.State()
	if s.Score != config.CoinScore {
		t.Fatalf("score = %d, want %d", s.Score, config.CoinScore)
	}
	if s.timeLeft != before+config.CoinBonus-1 {
		t.Fatalf("timeLeft = %d, want %d", s.timeLeft, before+config.CoinBonus-1)
	}
	if sounds.count(SoundCoin) != 1 {
		t.Fatalf("coin sound played %d times", sounds.count(SoundCoin))
	}
	if len(s.Coins) != config.CoinCount {
		t.Fatalf("coins = %d", len(s.Coins))
	}
}

func TestTimerEndsGameAfter1800Ticks(t *testing.T) {
	c, sounds, _ := runningController(0)
	for i := 1; i < 1800; i++ {
		c.Update()
		if c.Mode() != config.ModeRunning {
			t.Fatalf("game ended early at tick %d", i)
		}
	}
	c.Update()
	if c.Mode() != config.ModeGameOver || !c.State().Over {
		t.Fatalf("mode = %v after 1800 ticks, want gameover", c.Mode())
	}
	if c.State().Tick != 1800 {
		t.Fatalf("tick = %d", c.State().Tick)
	}
	if sounds.count(SoundGameOver) != 1 {
		t.Fatalf("game over sound played %d times", sounds.count(SoundGameOver))
	}
	if c.TimeText() != "Time: 0s" {
		t.Fatalf("TimeText = %q", c.TimeText())
	}
}

func TestCollisionEndsGameOnSameTick(t *testing.T) {
	c, sounds, _ := runningController(0)
	c.state.Obstacles = []Obstacle{
		{Pos: f64.Vec2{175, 190}, Width: 50, Height: 20, DX: 1},
		{Pos: f64.Vec2{175, 192}, Width: 50, Height: 20, DX: -1},
	}
	before := c.state.timeLeft

	c.Update()
	if c.Mode() != config.ModeGameOver {
		t.Fatalf("mode = %v, want gameover", c.Mode())
	}
	if sounds.count(SoundGameOver) != 1 {
		t.Fatalf("game over sound played %d times, want 1", sounds.count(SoundGameOver))
	}
	if c.state.timeLeft != before {
		t.Fatal("timer advanced on the collision tick")
	}

	// 结束后不再推进
	obs := c.state.Obstacles[0].Pos
	c.Update()
	if c.state.Obstacles[0].Pos != obs || c.state.Tick != 1 {
		t.Fatal("entities changed after game over")
	}
}

func TestBestScorePersistence(t *testing.T) {
	tests := []struct {
		name      string
		best      int
		coins     int
		wantBest  int
		wantSaves int
	}{
		{"not beaten", 50, 4, 50, 0},
		{"beaten", 50, 6, 60, 1},
		{"equal", 50, 5, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, scores := runningController(tt.best)
			c.state.Score = tt.coins * config.CoinScore
			c.state.Obstacles = []Obstacle{{Pos: f64.Vec2{175, 190}, Width: 50, Height: 20}}
			c.Update()

			if c.Mode() != config.ModeGameOver {
				t.Fatalf("mode = %v", c.Mode())
			}
			if c.State().Best != tt.wantBest {
				t.Fatalf("best = %d, want %d", c.State().Best, tt.wantBest)
			}
			if len(scores.saved) != tt.wantSaves {
				t.Fatalf("saves = %v", scores.saved)
			}
		})
	}
}

func TestRestartIdempotence(t *testing.T) {
	c, _, _ := runningController(0)
	prior := []func(s *State){
		func(s *State) { s.Score = 40; s.Player.Pos = f64.Vec2{15, 385} },
		func(s *State) { s.timeLeft = 1 },
		func(s *State) { s.Score = 10; s.timeLeft = 9000; s.Tick = 77 },
	}
	for i, mutate := range prior {
		mutate(c.state)
		c.state.Obstacles = []Obstacle{{Pos: f64.Vec2{c.state.Player.Pos[0] - 25, c.state.Player.Pos[1] - 10}, Width: 50, Height: 20}}
		c.Update()
		if c.Mode() != config.ModeGameOver {
			t.Fatalf("round %d: mode = %v", i, c.Mode())
		}

		c.handle(Command{Kind: CmdRestart})
		s := c.State()
		if c.Mode() != config.ModeRunning {
			t.Fatalf("round %d: mode = %v", i, c.Mode())
		}
		if s.Player.Pos != (f64.Vec2{200, 200}) || s.Score != 0 || s.TimeLeft() != 30 || s.Over {
			t.Fatalf("round %d: restart state = %+v", i, s)
		}
	}
}

func TestRestartResetsState(t *testing.T) {
	c, _, _ := runningController(0)
	c.state.Score = 70
	c.state.Player.Pos = f64.Vec2{30, 30}
	c.state.timeLeft = 5
	c.state.Obstacles = []Obstacle{{Pos: f64.Vec2{10, 20}, Width: 50, Height: 20}}
	c.Update()
	if c.Mode() != config.ModeGameOver {
		t.Fatalf("mode = %v", c.Mode())
	}

	c.restart()
	s := c.State()
	if c.Mode() != config.ModeRunning {
		t.Fatalf("mode = %v", c.Mode())
	}
	if s.Player.Pos != (f64.Vec2{200, 200}) || s.Score != 0 || s.TimeLeft() != 30 || s.Over {
		t.Fatalf("restart state = %+v timeLeft=%f", s, s.TimeLeft())
	}
	if len(s.Coins) != config.CoinCount || len(s.Obstacles) != config.ObstacleCount {
		t.Fatalf("coins=%d obstacles=%d", len(s.Coins), len(s.Obstacles))
	}
	if s.Best != 70 {
		t.Fatalf("best = %d, want 70", s.Best)
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	c, _, _ := runningController(0)
	c.state.Score = 30
	c.Push(Command{Kind: CmdRestart})
	c.Update()
	if c.State().Score != 30 {
		t.Fatal("restart should only apply after game over")
	}
}

func TestPauseAndResume(t *testing.T) {
	c, _, _ := runningController(0)
	c.Update()
	tick := c.State().Tick
	timeLeft := c.State().timeLeft

	c.Push(Command{Kind: CmdHide})
	c.Update()
	if c.Mode() != config.ModePaused || !c.Panels().Paused {
		t.Fatalf("mode = %v, want paused", c.Mode())
	}

	c.Push(Command{Kind: CmdShow})
	for i := 0; i < 10; i++ {
		c.Update()
	}
	if c.Mode() != config.ModePaused {
		t.Fatalf("visibility alone resumed the game: %v", c.Mode())
	}
	if c.State().Tick != tick || c.State().timeLeft != timeLeft {
		t.Fatal("state advanced while paused")
	}

	c.Push(Command{Kind: CmdResume})
	c.Update()
	if c.Mode() != config.ModeRunning || c.State().Tick != tick+1 {
		t.Fatalf("mode = %v tick = %d after resume", c.Mode(), c.State().Tick)
	}
}

func TestTexts(t *testing.T) {
	c, _, _ := runningController(40)
	c.state.Score = 20
	c.state.timeLeft = 1741 // 29.0166 秒
	if got := c.ScoreText(); got != "Score: 20 | Best: 40" {
		t.Fatalf("ScoreText = %q", got)
	}
	if got := c.TimeText(); got != "Time: 30s" {
		t.Fatalf("TimeText = %q", got)
	}
}

func TestGameOverPanels(t *testing.T) {
	c, _, _ := runningController(0)
	c.state.Obstacles = []Obstacle{{Pos: f64.Vec2{175, 190}, Width: 50, Height: 20}}
	c.Update()
	p := c.Panels()
	if !p.GameOver || !p.Restart || !p.Game || p.Menu || p.Loading {
		t.Fatalf("panels = %+v", p)
	}
}

func TestQueueDrain(t *testing.T) {
	var q Queue
	q.Push(KeyDown(KeyW))
	q.Push(KeyUp(KeyW))
	got := q.Drain()
	if len(got) != 2 || got[0].Kind != CmdKeyDown || got[1].Kind != CmdKeyUp {
		t.Fatalf("drain = %+v", got)
	}
	if len(q.Drain()) != 0 {
		t.Fatal("second drain should be empty")
	}
}

func TestManualPause(t *testing.T) {
	c, _, _ := runningController(0)
	c.Push(Command{Kind: CmdPause})
	c.Update()
	if c.Mode() != config.ModePaused {
		t.Fatalf("mode = %v, want paused", c.Mode())
	}
	c.Push(Command{Kind: CmdPause})
	c.Push(Command{Kind: CmdResume})
	c.Update()
	if c.Mode() != config.ModeRunning {
		t.Fatalf("mode = %v, want running", c.Mode())
	}
}

func TestResetCommandsGuardedByMode(t *testing.T) {
	tests := []struct {
		name  string
		pause bool
		cmd   CommandKind
	}{
		{"restart while running", false, CmdRestart},
		{"start while running", false, CmdStart},
		{"restart while paused", true, CmdRestart},
		{"start while paused", true, CmdStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, sounds, _ := runningController(0)
			c.state.Score = 30
			c.state.Player.Pos = f64.Vec2{60, 60}
			want := c.Mode()
			if tt.pause {
				c.Push(Command{Kind: CmdPause})
				c.Update()
				want = config.ModePaused
			}

			c.Push(Command{Kind: tt.cmd})
			c.Update()
			s := c.State()
			if c.Mode() != want {
				t.Fatalf("mode = %v, want %v", c.Mode(), want)
			}
			if s.Score != 30 || s.Player.Pos != (f64.Vec2{60, 60}) {
				t.Fatalf("round was reset: score=%d pos=%v", s.Score, s.Player.Pos)
			}
			if sounds.count(SoundMusic) != 0 {
				t.Fatal("music started outside the menu")
			}
		})
	}
}
