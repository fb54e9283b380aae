// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载嵌入配置、建立音频与设置管理器、
// 组装场景，并实现 ebiten.Game 接口。
package app

import (
	"io"
	"log"
	"math/rand"

	"github.com/decker502/simon/pkg/config"
	"github.com/decker502/simon/pkg/embedded"
	"github.com/decker502/simon/pkg/game"
	"github.com/decker502/simon/pkg/scenes"
	"github.com/decker502/simon/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

const gameConfigPath = "assets/config/game.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示随机（time-based）
	Seed int64
	// SkipMenu 跳过主菜单直接进入游戏
	SkipMenu bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载嵌入的玩法配置，失败时降级为默认值
	gameConfig := loadGameConfig()

	// 初始化设置持久化，失败时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: "simon"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, err
	}

	// 初始化音频上下文与音频管理器
	audioContext := audio.NewContext(48000)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	// 随机源：种子为 0 时交给 math/rand 的默认随机性
	newRNG := func() *rand.Rand {
		if cfg.Seed != 0 {
			return rand.New(rand.NewSource(cfg.Seed))
		}
		return rand.New(rand.NewSource(rand.Int63()))
	}

	simConfig := sim.Config{
		RevealInterval:              gameConfig.RevealIntervalSeconds,
		PressDuration:               gameConfig.PressDurationSeconds,
		LitDuration:                 gameConfig.LitDurationSeconds,
		InterruptFeedbackOnRoundEnd: gameConfig.InterruptFeedbackOnRoundEnd,
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		return scenes.NewGameScene(sceneManager, audioManager, simConfig, newRNG())
	})

	if cfg.SkipMenu {
		log.Printf("[App] SkipMenu enabled, entering game directly")
		sceneManager.StartGame()
	} else {
		sceneManager.SwitchTo(scenes.NewMainMenuScene(sceneManager, settingsManager))
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadGameConfig 从嵌入资源读取玩法配置，任何失败都回落到默认配置
func loadGameConfig() *config.GameConfig {
	data, err := embedded.ReadFile(gameConfigPath)
	if err != nil {
		log.Printf("[App] Warning: %v (using default game config)", err)
		return config.DefaultGameConfig()
	}
	gameConfig, err := config.LoadGameConfig(data)
	if err != nil {
		log.Printf("[App] Warning: invalid game config: %v (using defaults)", err)
		return config.DefaultGameConfig()
	}
	log.Printf("[App] Loaded game config from %s", gameConfigPath)
	return gameConfig
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
