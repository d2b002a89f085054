package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"coin-rush/content/config"
)

var (
	storeDir = flag.String("store", "", "directory for the best score file, defaults to the user config dir")
	seed     = flag.Int64("seed", 0, "random seed, 0 uses the current time")
	scale    = flag.Int("scale", 2, "window scale")
	mute     = flag.Bool("mute", false, "disable sound")
)

func Init() {
	InitFont()
}

func main() {
	flag.Parse()
	Init()

	game := NewGame(options{
		storeDir: *storeDir,
		seed:     *seed,
		mute:     *mute,
	})

	ebiten.SetWindowSize(config.ScreenWidth*(*scale), config.ScreenHeight*(*scale))
	ebiten.SetWindowTitle("Coin Rush")
	ebiten.SetTPS(config.TPS)
	// 失去焦点时仍要调用 Update，才能把游戏切到暂停
	ebiten.SetRunnableOnUnfocused(true)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
