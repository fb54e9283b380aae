package main

import (
	"flag"
	"log"

	"github.com/decker502/simon/pkg/app"
	"github.com/decker502/simon/pkg/config"
	"github.com/decker502/simon/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
	seed     = flag.Int64("seed", 0, "图案序列随机种子（0 表示随机）")
	skipMenu = flag.Bool("skip-menu", false, "跳过主菜单直接进入游戏")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（assetsFS 在 embed.go 中声明）
	embedded.Init(assetsFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Seed:     *seed,
		SkipMenu: *skipMenu,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// Set window properties
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Simon - 记忆游戏")

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
