package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"coin-rush/content/config"
	"coin-rush/content/core"
	"coin-rush/content/storage"
	"coin-rush/content/view"
)

var (
	debugFlag = flag.Bool("debug", false, "write logs to logs/coin-rush.log")
	muteFlag  = flag.Bool("mute", false, "disable sound")
	storeDir  = flag.String("store", "", "directory for the best score file, defaults to the user config dir")
	seedFlag  = flag.Int64("seed", 0, "random seed, 0 uses the current time")
)

type app struct {
	screen   tcell.Screen
	ctrl     *core.Controller
	render   *renderer
	keys     *keyHold
	focus    view.Focus
	started  time.Time
	failSafe bool
}

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableFocus()

	// 崩溃时先恢复终端再打印堆栈
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "coin-rush crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	var sounder core.Sounder
	if !*muteFlag {
		if b, err := newBeeper(); err == nil {
			sounder = b
			defer b.Close()
		} else {
			log.Println("audio initialization failed:", err, "(continuing without audio)")
		}
	}

	store, err := storage.Open(*storeDir)
	if err != nil {
		log.Println("open score storage:", err)
		store = storage.NewMemoryStore()
	}
	keeper := storage.NewKeeper(store)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &app{
		screen:  screen,
		ctrl:    core.NewController(rand.New(rand.NewSource(seed)), keeper.LoadBestScore(), sounder, keeper),
		render:  &renderer{screen: screen},
		keys:    newKeyHold(),
		started: time.Now(),
	}
	a.run()
}

func (a *app) run() {
	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(ev, a.ctrl, a.keys, time.Now()) {
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventFocus:
				a.focus.Update(a.ctrl, ev.Focused)
			}

		case now := <-ticker.C:
			a.frame(now)
		}
	}
}

// frame 推进一帧并重绘
func (a *app) frame(now time.Time) {
	a.keys.expire(a.ctrl, now)

	if !a.failSafe && a.ctrl.Mode() == config.ModeLoading &&
		now.Sub(a.started) >= config.LoadingFailSafeMs*time.Millisecond {
		a.failSafe = true
		a.ctrl.Push(core.Command{Kind: core.CmdShowMenu})
	}

	a.ctrl.Update()
	a.render.draw(a.ctrl)
}
