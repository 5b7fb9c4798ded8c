// Package app 提供基于 ebiten 的帧驱动外壳
//
// 模拟本身与渲染无关，这里只负责以固定步长驱动 Director
// 并绘制最小化的调试视图。完整游戏中渲染由外部引擎承担。
package app

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/quasilyte/gdata/v2"

	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/config"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/events"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/game"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/systems"
)

// 逻辑步长：10毫秒固定步
const logicStep = 0.01

// 屏幕尺寸
const (
	screenWidth  = 800
	screenHeight = 600
)

// App 实现 ebiten.Game 接口的应用外壳
type App struct {
	director  *systems.Director
	gameState *game.GameState
	bus       *events.Bus

	lastUpdate  time.Time
	accumulator float64
	started     bool
}

// NewApp 装配完整应用
//
// 配置文件缺失时使用编码默认值，gdata 打开失败时排行榜
// 进入降级内存模式，两者都不阻止启动。
func NewApp(dataDir string) (*App, error) {
	defaults, err := config.LoadEnemyDefaults(dataDir + "/enemy_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load enemy config: %w", err)
	}
	difficultyCfg, err := config.LoadDifficultyConfig(dataDir + "/difficulty.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load difficulty config: %w", err)
	}
	hordeCfg, err := config.LoadHordeConfig(dataDir + "/horde.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load horde config: %w", err)
	}

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "asteroid_miner",
	})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, high scores will not persist: %v", err)
		gdataManager = nil
	}

	em := ecs.NewEntityManager()
	bus := events.NewBus()
	gameState := game.NewGameState()
	resources, err := game.NewResourceManager(dataDir + "/models.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load model registry: %w", err)
	}
	scores := game.NewScoreManager(gdataManager)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	director := systems.NewDirector(systems.DirectorDeps{
		EntityManager: em,
		Bus:           bus,
		GameState:     gameState,
		Resources:     resources,
		Scores:        scores,
		Rand:          rng,
		EnemyDefaults: defaults,
		Difficulty:    difficultyCfg,
		Horde:         hordeCfg,
	})

	return &App{
		director:  director,
		gameState: gameState,
		bus:       bus,
	}, nil
}

// Update 以固定步长推进模拟
func (a *App) Update() error {
	now := time.Now()
	if !a.started {
		a.director.Start()
		a.director.ActivateHordeMode()
		a.lastUpdate = now
		a.started = true
		return nil
	}

	elapsed := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now

	// 帧率骤降时限制单帧补偿步数，避免螺旋式追赶
	if elapsed > 0.25 {
		elapsed = 0.25
	}

	a.accumulator += elapsed
	for a.accumulator >= logicStep {
		a.director.Update(logicStep)
		a.accumulator -= logicStep
	}

	return nil
}

// Draw 绘制调试视图
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 24, A: 255})
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"wave: %d\nscore: %d\nsurvival: %s\nenemies: %d",
		a.director.HordeWave(),
		a.director.HordeScore(),
		a.director.HordeSurvivalTime(),
		a.director.ActiveEnemyCount(),
	))
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Shutdown 停止后台协作方
func (a *App) Shutdown() {
	a.director.Stop()
}
