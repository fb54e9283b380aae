package scenes

import (
	"log"
	"math/rand"

	"github.com/decker502/simon/pkg/ecs"
	"github.com/decker502/simon/pkg/entities"
	"github.com/decker502/simon/pkg/game"
	"github.com/decker502/simon/pkg/sim"
	"github.com/decker502/simon/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameScene 游戏主场景
// 职责：持有模拟内核（pkg/sim）并在每帧驱动「输入采集 → 模拟推进 → 反馈应用」链路。
// 模拟内核不感知 ECS，场景负责把 StepResult 翻译成实体状态。
type GameScene struct {
	sceneManager  *game.SceneManager
	audioManager  *game.AudioManager
	entityManager *ecs.EntityManager

	simulation *sim.Simulation

	inputSystem    *systems.InputSystem
	feedbackSystem *systems.FeedbackSystem
	renderSystem   *systems.RenderSystem
}

// NewGameScene 创建游戏场景并初始化模拟内核与 ECS 实体
//
// 参数：
//   - sm: 场景管理器，用于返回主菜单
//   - am: 音频管理器（可为 nil，此时静默运行）
//   - cfg: 模拟时序配置
//   - rng: 随机源，决定图案序列（可注入固定种子用于复现）
//
// 返回：
//   - 新创建的 GameScene 指针
func NewGameScene(sm *game.SceneManager, am *game.AudioManager, cfg sim.Config, rng *rand.Rand) *GameScene {
	scene := &GameScene{
		sceneManager:  sm,
		audioManager:  am,
		entityManager: ecs.NewEntityManager(),
	}

	entities.CreateButtonEntities(scene.entityManager)
	entities.CreateScoreDisplay(scene.entityManager)

	scene.inputSystem = systems.NewInputSystem(scene.entityManager)
	scene.renderSystem = systems.NewRenderSystem(scene.entityManager)

	// AudioManager 实现 systems.CuePlayer；nil 时 FeedbackSystem 跳过音频
	if am != nil {
		scene.feedbackSystem = systems.NewFeedbackSystem(scene.entityManager, am)
	} else {
		scene.feedbackSystem = systems.NewFeedbackSystem(scene.entityManager, nil)
	}

	scene.simulation = sim.NewSimulation(cfg, rng)
	log.Printf("[GameScene] Created (phase=%s)", scene.simulation.Phase())

	// 初始分数显示
	current, high := scene.simulation.Score()
	scene.feedbackSystem.Apply(sim.StepResult{ScoreChanged: true}, current, high)

	return scene
}

// Update 驱动一帧：采集输入、推进模拟、应用反馈
func (g *GameScene) Update(deltaTime float64) {
	// Esc 返回主菜单，当前会话丢弃
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[GameScene] Returning to main menu")
		g.sceneManager.SwitchTo(NewMainMenuScene(g.sceneManager, g.settingsManager()))
		return
	}

	presses := g.inputSystem.CollectPresses()
	res := g.simulation.Step(deltaTime, presses)

	current, high := g.simulation.Score()
	g.feedbackSystem.Apply(res, current, high)

	for _, outcome := range res.Outcomes {
		switch outcome {
		case sim.OutcomeComplete:
			log.Printf("[GameScene] Round complete (score=%d, pattern=%d)", current, g.simulation.PatternLen())
		case sim.OutcomeMistake:
			log.Printf("[GameScene] Mistake (high=%d), restarting from length 1", high)
		}
	}

	g.entityManager.RemoveMarkedEntities()
}

// Draw 渲染当前帧
func (g *GameScene) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(screen, g.simulation.Phase())
}

// Simulation 返回场景持有的模拟内核（测试用）
func (g *GameScene) Simulation() *sim.Simulation {
	return g.simulation
}

func (g *GameScene) settingsManager() *game.SettingsManager {
	if g.audioManager == nil {
		return nil
	}
	return g.audioManager.SettingsManager()
}
