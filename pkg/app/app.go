// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/decker502/horizon/pkg/config"
	"github.com/decker502/horizon/pkg/game"
	"github.com/decker502/horizon/pkg/render"
	"github.com/decker502/horizon/pkg/scenes"
	"github.com/decker502/horizon/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 配置文件路径，为空则使用内置配置
	ConfigPath string
	// Seed 随机种子，0 表示使用配置文件中的值
	Seed uint64
	// StarCount 星星数量，小于 0 表示使用配置文件中的值
	StarCount int
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scheduler    *game.FrameScheduler
	resize       *game.ResizeNotifier
	verbose      bool

	// deviceScale 返回设备像素比，测试中可替换
	deviceScale func() float64
}

// NewApp 创建并初始化应用
//
// 未指定 ConfigPath 时，调用此函数前必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	constellationConfig, err := loadConfig(cfg)
	if err != nil {
		return nil, err
	}

	seed := constellationConfig.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[App] Star seed: %d", seed)

	font, err := render.LoadDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		scheduler:    game.NewFrameScheduler(),
		resize:       game.NewResizeNotifier(),
		verbose:      cfg.Verbose,
		deviceScale:  monitorScale,
	}

	scene := scenes.NewConstellationScene(scenes.SceneDeps{
		Config:    constellationConfig,
		Scheduler: a.scheduler,
		Resize:    a.resize,
		Pointer:   &utils.EbitenPointer{},
		Keys:      utils.EbitenKeys{},
		Rand:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Font:      font,
	})
	a.sceneManager.SwitchTo(scene)

	return a, nil
}

// loadConfig 加载配置并应用命令行覆盖
func loadConfig(cfg Config) (*config.ConstellationConfig, error) {
	var (
		c   *config.ConstellationConfig
		err error
	)
	if cfg.ConfigPath != "" {
		c, err = config.LoadConstellationConfig(cfg.ConfigPath)
		log.Printf("[Config] 加载配置文件: %s", cfg.ConfigPath)
	} else {
		c, err = config.LoadEmbeddedConstellationConfig()
		log.Printf("[Config] 加载内置配置: %s", config.ConstellationConfigPath)
	}
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	if cfg.Seed != 0 {
		c.Seed = cfg.Seed
	}
	if cfg.StarCount >= 0 {
		c.StarCount = cfg.StarCount
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("配置校验失败: %w", err)
	}
	return c, nil
}

func monitorScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// Escape 退出
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// F11 切换全屏（移动端始终全屏）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		log.Printf("[App] Fullscreen: %v", fullscreen)
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 执行本帧所有已请求的帧回调
// 详细模式下在左上角显示帧率
func (a *App) Draw(screen *ebiten.Image) {
	a.scheduler.RunFrame(screen)

	if a.verbose {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()), 4, 4)
	}
}

// Layout 返回后备缓冲区尺寸（设备像素）
// 尺寸或设备像素比变化时通知订阅者
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := a.deviceScale()
	if scale <= 0 {
		scale = 1
	}
	w, h := float64(outsideWidth), float64(outsideHeight)
	if a.resize.Changed(w, h, scale) {
		a.resize.Notify(w, h, scale)
	}
	return int(math.Ceil(w * scale)), int(math.Ceil(h * scale))
}

// Shutdown 卸载当前场景，停止渲染循环
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
