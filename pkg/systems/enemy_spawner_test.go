package systems

import (
	"math"
	"testing"

	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/components"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/geom"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/types"
)

// TestGenerateSpawnPointsOnSphere 测试出生点位于以玩家为球心的球面上
func TestGenerateSpawnPointsOnSphere(t *testing.T) {
	env := newTestEnv(t)
	playerPos := geom.Vec3{X: 50, Y: 20, Z: -30}
	env.addPlayer(playerPos)

	env.spawner.GenerateSpawnPoints()

	points := env.spawner.SpawnPoints()
	if len(points) != env.defaults.SpawnPointCount {
		t.Fatalf("spawn points: got %d, want %d", len(points), env.defaults.SpawnPointCount)
	}
	for i, p := range points {
		d := p.Distance(playerPos)
		if math.Abs(d-env.defaults.SpawnRadius) > 1e-6 {
			t.Errorf("point %d: distance %v, want %v", i, d, env.defaults.SpawnRadius)
		}
	}
}

// TestGenerateSpawnPointsFallbackRing 测试玩家位置不可解析时退化为原点环
func TestGenerateSpawnPointsFallbackRing(t *testing.T) {
	env := newTestEnv(t)
	// 不创建玩家实体，游戏状态也不提供位置

	env.spawner.GenerateSpawnPoints()

	points := env.spawner.SpawnPoints()
	if len(points) != FallbackRingPoints {
		t.Fatalf("fallback points: got %d, want %d", len(points), FallbackRingPoints)
	}
	for i, p := range points {
		if p.Y != 0 {
			t.Errorf("fallback point %d: Y=%v, want 0", i, p.Y)
		}
		d := math.Sqrt(p.X*p.X + p.Z*p.Z)
		if math.Abs(d-FallbackRingRadius) > 1e-9 {
			t.Errorf("fallback point %d: radius %v, want %v", i, d, FallbackRingRadius)
		}
	}
}

// TestPlayerPositionFallbackChain 测试玩家位置解析回退链
func TestPlayerPositionFallbackChain(t *testing.T) {
	env := newTestEnv(t)

	// 实体不可用、但游戏状态提供保底位置
	snapshot := geom.Vec3{X: 1, Y: 2, Z: 3}
	env.gameState.SetPlayerPosition(snapshot)

	pos, ok := ResolvePlayerPosition(env.em, env.gameState)
	if !ok {
		t.Fatal("ResolvePlayerPosition: got ok=false, want true (state snapshot available)")
	}
	if pos != snapshot {
		t.Errorf("position: got %+v, want %+v", pos, snapshot)
	}

	// 玩家实体存在时优先于保底位置
	entityPos := geom.Vec3{X: 100}
	env.addPlayer(entityPos)
	pos, ok = ResolvePlayerPosition(env.em, env.gameState)
	if !ok || pos != entityPos {
		t.Errorf("position with player entity: got %+v, want %+v", pos, entityPos)
	}
}

// TestSpawnRefusedAtCap 测试达到数量上限时生成被拒绝且不分配实体
func TestSpawnRefusedAtCap(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.MaxEnemies = 3
	env.spawnEnemies(t, 3)

	before := env.pool.Size()

	id, ok := env.spawner.SpawnSpectralDrone(geom.Vec3{})
	if ok {
		t.Error("SpawnSpectralDrone at cap: got ok=true, want false")
	}
	if id != 0 {
		t.Errorf("SpawnSpectralDrone at cap: got id=%d, want 0", id)
	}
	// 拒绝发生在任何分配之前，池不受影响
	if env.pool.Size() != before {
		t.Errorf("pool size changed on refused spawn: got %d, want %d", env.pool.Size(), before)
	}
	if env.activeSet.Len() != 3 {
		t.Errorf("active count: got %d, want 3", env.activeSet.Len())
	}
}

// TestSpawnedDroneIsFullyEquipped 测试生成的无人机携带完整组件
func TestSpawnedDroneIsFullyEquipped(t *testing.T) {
	env := newTestEnv(t)
	pos := geom.Vec3{X: 30, Y: 10, Z: 5}

	id, ok := env.spawner.SpawnSpectralDrone(pos)
	if !ok {
		t.Fatal("SpawnSpectralDrone failed")
	}

	p, _ := ecs.GetComponent[*components.PositionComponent](env.em, id)
	if p.Vec() != pos {
		t.Errorf("position: got %+v, want %+v", p.Vec(), pos)
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](env.em, id)
	if !ok {
		t.Fatal("spawned drone missing health component")
	}
	if health.Health != env.cfg.Health {
		t.Errorf("health: got %v, want %v", health.Health, env.cfg.Health)
	}
	if health.Shield != env.defaults.BaseShield {
		t.Errorf("shield: got %v, want %v", health.Shield, env.defaults.BaseShield)
	}

	ai, ok := ecs.GetComponent[*components.AIComponent](env.em, id)
	if !ok {
		t.Fatal("spawned drone missing AI component")
	}
	if !ai.Enabled {
		t.Error("AI not enabled on spawn")
	}
	// 速度施加 ±20% 抖动
	if ai.Speed < env.cfg.Speed*0.8 || ai.Speed > env.cfg.Speed*1.2 {
		t.Errorf("AI speed %v outside jitter range [%v, %v]", ai.Speed, env.cfg.Speed*0.8, env.cfg.Speed*1.2)
	}

	mesh, ok := ecs.GetComponent[*components.MeshComponent](env.em, id)
	if !ok {
		t.Fatal("spawned drone missing mesh component")
	}
	if !mesh.Visible {
		t.Error("mesh not visible on spawn")
	}
	// 注册表缺失，应为占位几何
	if !mesh.Placeholder {
		t.Error("mesh not flagged placeholder with missing registry")
	}

	role, _ := ecs.GetComponent[*components.RoleComponent](env.em, id)
	if role.Role != components.RoleEnemy {
		t.Errorf("role: got %v, want enemy", role.Role)
	}
	if !env.activeSet.Contains(id) {
		t.Error("spawned drone not registered in active set")
	}
}

// TestUpdateSpawnTimerGating 测试生成计时门控
func TestUpdateSpawnTimerGating(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.SpawnInterval = 5

	// 未到间隔：不生成
	env.spawner.Update(4.9)
	if env.activeSet.Len() != 0 {
		t.Errorf("active count before interval: got %d, want 0", env.activeSet.Len())
	}

	// 跨过间隔：生成一架并重置计时
	env.spawner.Update(0.2)
	if env.activeSet.Len() != 1 {
		t.Errorf("active count after interval: got %d, want 1", env.activeSet.Len())
	}

	// 计时已重置，下一帧不会立即再生成
	env.spawner.Update(0.1)
	if env.activeSet.Len() != 1 {
		t.Errorf("active count after reset: got %d, want 1", env.activeSet.Len())
	}
}

// TestUpdateRespectsCapWithoutResettingTimer 测试上限期间保留计时
func TestUpdateRespectsCapWithoutResettingTimer(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.MaxEnemies = 1
	env.cfg.SpawnInterval = 5
	env.spawnEnemies(t, 1)

	// 计时已满但数量达上限
	env.spawner.Update(6)
	if env.activeSet.Len() != 1 {
		t.Errorf("active count at cap: got %d, want 1", env.activeSet.Len())
	}

	// 腾出名额后下一帧立即生成（计时未被清零）
	victim := env.activeSet.IDs()[0]
	env.activeSet.Remove(victim)
	env.pool.Release(victim)

	env.spawner.Update(0.001)
	if env.activeSet.Len() != 1 {
		t.Errorf("active count after freeing slot: got %d, want 1", env.activeSet.Len())
	}
}

// TestResetSpawnState 测试看门狗触发的生成状态重置
func TestResetSpawnState(t *testing.T) {
	env := newTestEnv(t)
	env.addPlayer(geom.Vec3{X: 10})

	env.spawner.GenerateSpawnPoints()
	before := len(env.spawner.SpawnPoints())

	env.spawner.ResetSpawnState()

	after := len(env.spawner.SpawnPoints())
	if after != before {
		t.Errorf("spawn points after reset: got %d, want %d", after, before)
	}
}

// TestBossSpawnEquipsBossStats 测试Boss生成的属性放大
func TestBossSpawnEquipsBossStats(t *testing.T) {
	env := newTestEnv(t)

	id, ok := env.spawner.SpawnBoss(types.EnemyBossReaver)
	if !ok {
		t.Fatal("SpawnBoss failed")
	}

	health, _ := ecs.GetComponent[*components.HealthComponent](env.em, id)
	if health.Health <= env.cfg.Health {
		t.Errorf("boss health %v not greater than base %v", health.Health, env.cfg.Health)
	}
	if !env.activeSet.Contains(id) {
		t.Error("boss not registered in active set")
	}
}
