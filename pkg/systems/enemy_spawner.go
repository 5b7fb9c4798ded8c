package systems

import (
	"log"
	"math/rand"

	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/components"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/config"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/entities"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/game"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/geom"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/types"
)

// 保底出生点环参数
const (
	// FallbackRingRadius 玩家位置无法解析时的原点环半径
	FallbackRingRadius = 100.0
	// FallbackRingPoints 保底环上的出生点数量
	FallbackRingPoints = 8
)

// EnemySpawner 敌人生成系统
//
// 职责：
//   - 围绕移动中的玩家生成球面分布的出生点
//   - 按生成间隔计时、在数量上限内从对象池装配敌人
//   - 玩家位置解析失败时退化为原点环出生点
//
// 架构说明：
//   - 生成参数来自难度系统每帧重算的共享 EnemyConfig
//   - 活跃敌人集合与对象池按引用共享，生成时直接写入
type EnemySpawner struct {
	em        *ecs.EntityManager
	rm        *game.ResourceManager
	rng       *rand.Rand
	gameState *game.GameState
	pool      *EntityPool
	activeSet *ActiveEnemySet
	cfg       *config.EnemyConfig
	defaults  *config.EnemyDefaults

	spawnPoints []geom.Vec3
	spawnTimer  float64

	// TotalSpawned 累计生成数量（监控系统读取）
	TotalSpawned int
}

// NewEnemySpawner 创建敌人生成系统
func NewEnemySpawner(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	rng *rand.Rand,
	gameState *game.GameState,
	pool *EntityPool,
	activeSet *ActiveEnemySet,
	cfg *config.EnemyConfig,
	defaults *config.EnemyDefaults,
) *EnemySpawner {
	return &EnemySpawner{
		em:        em,
		rm:        rm,
		rng:       rng,
		gameState: gameState,
		pool:      pool,
		activeSet: activeSet,
		cfg:       cfg,
		defaults:  defaults,
	}
}

// GenerateSpawnPoints 重新生成出生点列表
//
// 以玩家位置为球心、固定半径的球面上均匀采样 N 个点
// （反余弦纬度采样 + 均匀经度保证面积均匀分布）。
// 玩家位置无法解析时退化为原点周围的水平环。
func (s *EnemySpawner) GenerateSpawnPoints() {
	center, ok := ResolvePlayerPosition(s.em, s.gameState)
	if !ok {
		// 保底：原点环
		s.spawnPoints = s.spawnPoints[:0]
		for i := 0; i < FallbackRingPoints; i++ {
			s.spawnPoints = append(s.spawnPoints, geom.RingPoint(FallbackRingRadius, i, FallbackRingPoints))
		}
		log.Printf("[EnemySpawner] Player position unresolved, using fallback ring (%d points)", FallbackRingPoints)
		return
	}

	s.spawnPoints = s.spawnPoints[:0]
	for i := 0; i < s.defaults.SpawnPointCount; i++ {
		s.spawnPoints = append(s.spawnPoints,
			geom.SpherePoint(center, s.defaults.SpawnRadius, s.rng.Float64(), s.rng.Float64()))
	}
}

// SpawnPoints 返回当前出生点列表（测试与监控用）
func (s *EnemySpawner) SpawnPoints() []geom.Vec3 {
	return s.spawnPoints
}

// GetRandomSpawnPoint 均匀随机选取一个出生点
// 列表为空时先重新生成
func (s *EnemySpawner) GetRandomSpawnPoint() geom.Vec3 {
	if len(s.spawnPoints) == 0 {
		s.GenerateSpawnPoints()
	}
	return s.spawnPoints[s.rng.Intn(len(s.spawnPoints))]
}

// SpawnSpectralDrone 在指定位置生成一架幽灵无人机
//
// 数量上限检查先于任何分配：活跃数量达到上限时直接拒绝，
// 不取池、不创建实体、集合不变。
//
// 返回:
//   - ecs.EntityID: 生成的实体ID，拒绝时为 0
//   - bool: 是否成功生成
func (s *EnemySpawner) SpawnSpectralDrone(pos geom.Vec3) (ecs.EntityID, bool) {
	// 上限检查必须在任何分配之前
	if s.activeSet.Len() >= s.cfg.MaxEnemies {
		return 0, false
	}

	id := s.pool.Acquire()

	if err := entities.EquipSpectralDrone(s.em, s.rm, s.rng, id, s.cfg, s.defaults, pos); err != nil {
		log.Printf("[EnemySpawner] ERROR: Failed to equip drone %d: %v", id, err)
		s.pool.Release(id)
		return 0, false
	}

	// 赋予敌人角色并登记进活跃集合
	ecs.AddComponent(s.em, id, &components.RoleComponent{Role: components.RoleEnemy})
	s.activeSet.Add(id)
	s.TotalSpawned++

	return id, true
}

// SpawnBoss 在随机出生点生成指定类型的 Boss
//
// Boss 同样占用活跃敌人名额并遵守数量上限
//
// 返回:
//   - ecs.EntityID: 生成的实体ID，拒绝时为 0
//   - bool: 是否成功生成
func (s *EnemySpawner) SpawnBoss(bossType types.EnemyType) (ecs.EntityID, bool) {
	if s.activeSet.Len() >= s.cfg.MaxEnemies {
		return 0, false
	}

	pos := s.GetRandomSpawnPoint()
	id := s.pool.Acquire()

	if err := entities.EquipBoss(s.em, s.rm, s.rng, id, bossType, s.cfg, s.defaults, pos); err != nil {
		log.Printf("[EnemySpawner] ERROR: Failed to equip boss %d: %v", id, err)
		s.pool.Release(id)
		return 0, false
	}

	ecs.AddComponent(s.em, id, &components.RoleComponent{Role: components.RoleEnemy})
	s.activeSet.Add(id)
	s.TotalSpawned++

	log.Printf("[EnemySpawner] Boss %s spawned as entity %d at (%.1f, %.1f, %.1f)",
		bossType, id, pos.X, pos.Y, pos.Z)
	return id, true
}

// Update 推进生成计时
//
// 计时超过当前生成间隔且数量未达上限时生成一架无人机；
// 仅在生成成功时重置计时器，失败（如上限竞争）保留计时
// 以便下一帧立即重试。
func (s *EnemySpawner) Update(deltaTime float64) {
	s.spawnTimer += deltaTime
	if s.spawnTimer < s.cfg.SpawnInterval {
		return
	}
	if s.activeSet.Len() >= s.cfg.MaxEnemies {
		return
	}

	pos := s.GetRandomSpawnPoint()
	if _, ok := s.SpawnSpectralDrone(pos); ok {
		s.spawnTimer = 0
	}
}

// ResetSpawnState 重置出生点与生成计时
// 由监控系统在检测到生成停滞时调用
func (s *EnemySpawner) ResetSpawnState() {
	s.spawnPoints = s.spawnPoints[:0]
	s.spawnTimer = 0
	s.GenerateSpawnPoints()
	log.Printf("[EnemySpawner] Spawn state reset: %d spawn points regenerated", len(s.spawnPoints))
}
