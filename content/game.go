package main

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"coin-rush/content/config"
	"coin-rush/content/core"
	"coin-rush/content/storage"
	"coin-rush/content/view"
)

// drawStep 每帧按顺序执行的绘制步骤
type drawStep func(screen *ebiten.Image)

type Game struct {
	ctrl       *core.Controller
	input      *Input
	visibility *visibility
	steps      []drawStep

	started  time.Time
	failSafe bool

	effects view.Effects

	once sync.Once
}

type options struct {
	storeDir string
	seed     int64
	mute     bool
}

func NewGame(opts options) *Game {
	store, err := storage.Open(opts.storeDir)
	if err != nil {
		log.Println("open score storage:", err, "(best score will not persist)")
		store = storage.NewMemoryStore()
	}
	keeper := storage.NewKeeper(store)
	best := keeper.LoadBestScore()

	var sounder core.Sounder
	if !opts.mute {
		if s, err := NewSounds(); err == nil {
			sounder = s
		} else {
			log.Println("audio initialization failed:", err, "(continuing without audio)")
		}
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		ctrl:    core.NewController(rand.New(rand.NewSource(seed)), best, sounder, keeper),
		input:   NewInput(),
		started: time.Now(),
	}
	g.visibility = watchVisibility(g.ctrl)
	g.steps = []drawStep{
		g.drawBackground,
		g.drawCoins,
		g.drawObstacles,
		g.drawBall,
		g.drawHUD,
		g.drawTouchPad,
		g.drawPanels,
	}
	return g
}

func (g *Game) Update() error {
	g.once.Do(InitImage)

	g.input.Update(g.ctrl)
	g.visibility.Update()

	// 保底：加载界面停留过久时直接进入菜单
	if !g.failSafe && g.ctrl.Mode() == config.ModeLoading &&
		time.Since(g.started) >= config.LoadingFailSafeMs*time.Millisecond {
		g.failSafe = true
		g.ctrl.Push(core.Command{Kind: core.CmdShowMenu})
	}

	g.ctrl.Update()

	g.effects.Advance(g.ctrl.Mode(), len(g.ctrl.State().Coins))
	return nil
}

// Draw 每次绘制都会调用这个函数，依次执行各绘制步骤
func (g *Game) Draw(screen *ebiten.Image) {
	if ballImage == nil {
		return
	}
	for _, step := range g.steps {
		step(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
