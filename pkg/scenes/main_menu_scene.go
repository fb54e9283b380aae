package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/simon/pkg/config"
	"github.com/decker502/simon/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MainMenuScene represents the title screen of the game.
// It displays when the game starts and waits for the player to begin a session.
type MainMenuScene struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	elapsed         float64
}

// NewMainMenuScene creates and returns a new MainMenuScene instance.
//
// Parameters:
//   - sm: The SceneManager instance used to switch between scenes.
//   - settings: The SettingsManager holding the sound preferences shown on screen.
//
// Returns:
//   - A pointer to the newly created MainMenuScene.
func NewMainMenuScene(sm *game.SceneManager, settings *game.SettingsManager) *MainMenuScene {
	log.Printf("[MainMenuScene] Created")
	return &MainMenuScene{
		sceneManager:    sm,
		settingsManager: settings,
	}
}

// Update updates the main menu scene logic.
// A left click or the space key starts a new game session.
func (m *MainMenuScene) Update(deltaTime float64) {
	m.elapsed += deltaTime

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		log.Printf("[MainMenuScene] Starting game")
		m.sceneManager.StartGame()
		return
	}

	// M 键切换静音，设置立即持久化
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && m.settingsManager != nil {
		enabled := !m.settingsManager.GetSettings().SoundEnabled
		m.settingsManager.SetSoundEnabled(enabled)
		if err := m.settingsManager.Save(); err != nil {
			log.Printf("[MainMenuScene] Warning: failed to save settings: %v", err)
		}
	}
}

// Draw renders the main menu scene to the screen.
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})

	// 四个按钮以静止色作为标题装饰
	for _, layout := range config.ButtonLayouts() {
		vector.DrawFilledRect(screen,
			float32(layout.X), float32(layout.Y),
			float32(config.ButtonSize), float32(config.ButtonSize),
			layout.RestColor, false)
	}

	ebitenutil.DebugPrintAt(screen, "SIMON", config.GameWindowWidth/2-18, 60)
	ebitenutil.DebugPrintAt(screen, "Click or press Space to start", config.GameWindowWidth/2-90, 90)

	if m.settingsManager != nil {
		sound := "on"
		if !m.settingsManager.GetSettings().SoundEnabled {
			sound = "off"
		}
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Sound: %s (press M to toggle)", sound),
			config.GameWindowWidth/2-90, config.GameWindowHeight-40)
	}
}
