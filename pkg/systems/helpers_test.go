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
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/geom"
)

// geomOrigin 原点，测试中作为默认玩家位置
var geomOrigin = geom.Vec3{}

// testEnv 系统测试的公共装配
type testEnv struct {
	em        *ecs.EntityManager
	bus       *events.Bus
	gameState *game.GameState
	resources *game.ResourceManager
	defaults  *config.EnemyDefaults
	cfg       *config.EnemyConfig
	pool      *EntityPool
	activeSet *ActiveEnemySet
	spawner   *EnemySpawner
	rng       *rand.Rand
}

// newTestEnv 创建确定性的系统测试环境
// 模型注册表指向不存在的路径，所有模型退化为占位几何
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	resources, err := game.NewResourceManager(filepath.Join(t.TempDir(), "models.yaml"))
	if err != nil {
		t.Fatalf("NewResourceManager() error: %v", err)
	}

	em := ecs.NewEntityManager()
	defaults := config.DefaultEnemyDefaults()
	cfg := defaults.ToEnemyConfig()
	rng := rand.New(rand.NewSource(1))
	pool := NewEntityPool(em, rng, defaults.PoolSize)
	activeSet := NewActiveEnemySet()
	gameState := game.NewGameState()

	return &testEnv{
		em:        em,
		bus:       events.NewBus(),
		gameState: gameState,
		resources: resources,
		defaults:  defaults,
		cfg:       cfg,
		pool:      pool,
		activeSet: activeSet,
		spawner: NewEnemySpawner(em, resources, rng, gameState,
			pool, activeSet, cfg, defaults),
		rng: rng,
	}
}

// addPlayer 创建一个携带玩家角色的实体并登记到游戏状态
func (env *testEnv) addPlayer(pos geom.Vec3) ecs.EntityID {
	id := env.em.CreateEntity()
	ecs.AddComponent(env.em, id, &components.RoleComponent{Role: components.RolePlayer})
	ecs.AddComponent(env.em, id, &components.PositionComponent{X: pos.X, Y: pos.Y, Z: pos.Z})
	ecs.AddComponent(env.em, id, &components.HealthComponent{Health: 100, MaxHealth: 100})
	ecs.AddComponent(env.em, id, &components.MeshComponent{
		Visible: true,
		Shape:   components.ShapeSphere,
		Radius:  2,
	})
	env.gameState.PlayerEntity = id
	return id
}

// spawnEnemies 生成 n 个敌人并返回实体ID列表
func (env *testEnv) spawnEnemies(t *testing.T, n int) []ecs.EntityID {
	t.Helper()
	ids := make([]ecs.EntityID, 0, n)
	for i := 0; i < n; i++ {
		id, ok := env.spawner.SpawnSpectralDrone(geom.Vec3{X: float64(i) * 10})
		if !ok {
			t.Fatalf("SpawnSpectralDrone %d failed unexpectedly", i)
		}
		ids = append(ids, id)
	}
	return ids
}
