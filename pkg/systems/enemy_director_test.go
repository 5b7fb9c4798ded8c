package systems

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/components"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/config"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/events"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/game"
)

// newDirector 装配完整的 Director 测试环境
func newDirector(t *testing.T) (*Director, *ecs.EntityManager, *events.Bus, *game.GameState) {
	t.Helper()

	resources, err := game.NewResourceManager(filepath.Join(t.TempDir(), "models.yaml"))
	if err != nil {
		t.Fatalf("NewResourceManager() error: %v", err)
	}

	em := ecs.NewEntityManager()
	bus := events.NewBus()
	gameState := game.NewGameState()

	d := NewDirector(DirectorDeps{
		EntityManager: em,
		Bus:           bus,
		GameState:     gameState,
		Resources:     resources,
		Scores:        game.NewScoreManager(nil),
		Rand:          rand.New(rand.NewSource(1)),
		EnemyDefaults: config.DefaultEnemyDefaults(),
		Difficulty:    config.DefaultDifficultyConfig(),
		Horde:         config.DefaultHordeConfig(),
	})
	return d, em, bus, gameState
}

// TestDirectorUpdateRunsPipeline 测试帧驱动推进常规生成
func TestDirectorUpdateRunsPipeline(t *testing.T) {
	d, _, _, _ := newDirector(t)

	// 推进超过一个生成间隔
	for i := 0; i < 600; i++ {
		d.Update(0.01)
	}

	if d.ActiveEnemyCount() == 0 {
		t.Error("no enemies spawned after a full spawn interval")
	}
}

// TestDockingEventsFreezeAndUnfreeze 测试停靠事件驱动冻结/解冻
func TestDockingEventsFreezeAndUnfreeze(t *testing.T) {
	d, em, bus, gameState := newDirector(t)

	// 先生成几个敌人
	for i := 0; i < 600; i++ {
		d.Update(0.01)
	}
	ids := d.activeSet.IDs()
	if len(ids) == 0 {
		t.Fatal("no enemies to freeze")
	}

	bus.Dispatch(events.Event{Type: events.PlayerDocked})

	if !gameState.IsDocked {
		t.Error("IsDocked: got false, want true")
	}
	for _, id := range ids {
		if !ecs.HasComponent[*components.FrozenComponent](em, id) {
			t.Errorf("enemy %d not frozen after dock", id)
		}
	}

	bus.Dispatch(events.Event{Type: events.PlayerUndocked})

	if gameState.IsDocked {
		t.Error("IsDocked: got true, want false")
	}
	for _, id := range ids {
		if ecs.HasComponent[*components.FrozenComponent](em, id) {
			t.Errorf("enemy %d still frozen after undock", id)
		}
	}
}

// TestDockedStateSuspendsSpawning 测试停靠期间不生成敌人
func TestDockedStateSuspendsSpawning(t *testing.T) {
	d, _, bus, _ := newDirector(t)

	bus.Dispatch(events.Event{Type: events.PlayerDocked})

	for i := 0; i < 600; i++ {
		d.Update(0.01)
	}

	if d.ActiveEnemyCount() != 0 {
		t.Errorf("enemies spawned while docked: got %d, want 0", d.ActiveEnemyCount())
	}
}

// TestDeferredQueueRunsOnFrame 测试延迟队列在帧开始时执行
func TestDeferredQueueRunsOnFrame(t *testing.T) {
	d, _, _, _ := newDirector(t)

	ran := false
	d.Defer(func() {
		ran = true
	})

	if ran {
		t.Fatal("deferred task ran before Update")
	}

	d.Update(0.01)
	if !ran {
		t.Error("deferred task not executed on Update")
	}
}

// TestActivateHordeModeThroughDirector 测试经由 Director 激活无尽模式
func TestActivateHordeModeThroughDirector(t *testing.T) {
	d, _, _, gameState := newDirector(t)

	d.ActivateHordeMode()

	if !gameState.HordeActive {
		t.Error("HordeActive: got false, want true")
	}
	if d.HordeWave() != 1 {
		t.Errorf("HordeWave: got %d, want 1", d.HordeWave())
	}
	if d.HordeSurvivalTime() != "00:00" {
		t.Errorf("HordeSurvivalTime: got %q, want \"00:00\"", d.HordeSurvivalTime())
	}

	// 无尽模式下按波次节奏生成
	for i := 0; i < 200; i++ {
		d.Update(0.01)
	}
	if d.ActiveEnemyCount() == 0 {
		t.Error("no enemies spawned in horde mode")
	}
}

// TestDirectorDiagnosticsPassThrough 测试诊断透传接口
func TestDirectorDiagnosticsPassThrough(t *testing.T) {
	d, em, _, _ := newDirector(t)

	if fixes := d.RunPoolDiagnostics(); fixes != 0 {
		t.Errorf("clean pool diagnostics: got %d fixes, want 0", fixes)
	}
	if fixes := d.ValidateEnemyReferences(); fixes != 0 {
		t.Errorf("clean reference validation: got %d fixes, want 0", fixes)
	}

	// 制造一个漏网敌人再验证
	stray := em.CreateEntity()
	ecs.AddComponent(em, stray, &components.RoleComponent{Role: components.RoleEnemy})
	ecs.AddComponent(em, stray, &components.PositionComponent{X: 1})

	if fixes := d.ValidateEnemyReferences(); fixes != 1 {
		t.Errorf("validation with stray enemy: got %d fixes, want 1", fixes)
	}
}
