package main

import (
	"errors"
	"flag"
	"log"

	"github.com/decker502/horizon/pkg/app"
	"github.com/decker502/horizon/pkg/config"
	"github.com/decker502/horizon/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "配置文件路径（默认使用内置配置）")
	seed       = flag.Uint64("seed", 0, "星星随机种子（0 表示使用配置文件或当前时间）")
	stars      = flag.Int("stars", -1, "星星数量（小于 0 表示使用配置文件）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		StarCount:  *stars,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Shutdown()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("The Horizon")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
