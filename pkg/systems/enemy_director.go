package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/config"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/events"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/game"
)

// PoolWarmupDelay 对象池预热的延迟时间
// 启动后稍等片刻再预分配，避开首帧加载高峰
const PoolWarmupDelay = 2 * time.Second

// Director 敌人子系统总指挥
//
// 组合全部子系统并持有帧驱动入口。后台来源的工作
// （看门狗扫描、延迟预热）一律投递到延迟队列，由
// Update 在帧开始时排空，保证实体变更只发生在帧线程。
type Director struct {
	em        *ecs.EntityManager
	bus       *events.Bus
	gameState *game.GameState

	pool       *EntityPool
	activeSet  *ActiveEnemySet
	spawner    *EnemySpawner
	lifecycle  *EnemyLifecycle
	combat     *CombatCollisionSystem
	difficulty *DifficultyScaling
	horde      *HordeSystem
	monitor    *SpawnMonitor

	cfg      *config.EnemyConfig
	defaults *config.EnemyDefaults

	// deferred 帧线程外投递的待执行函数队列
	deferred chan func()
}

// DirectorDeps Director 的外部协作方
type DirectorDeps struct {
	EntityManager *ecs.EntityManager
	Bus           *events.Bus
	GameState     *game.GameState
	Resources     *game.ResourceManager
	Scores        *game.ScoreManager
	Rand          *rand.Rand

	EnemyDefaults *config.EnemyDefaults
	Difficulty    *config.DifficultyConfig
	Horde         *config.HordeConfig
}

// NewDirector 创建并装配全部敌人子系统
func NewDirector(deps DirectorDeps) *Director {
	cfg := deps.EnemyDefaults.ToEnemyConfig()

	pool := NewEntityPool(deps.EntityManager, deps.Rand, deps.EnemyDefaults.PoolSize)
	activeSet := NewActiveEnemySet()
	spawner := NewEnemySpawner(deps.EntityManager, deps.Resources, deps.Rand,
		deps.GameState, pool, activeSet, cfg, deps.EnemyDefaults)
	lifecycle := NewEnemyLifecycle(deps.EntityManager, deps.Bus, deps.GameState, pool, activeSet)
	combat := NewCombatCollisionSystem(deps.EntityManager, deps.Bus, activeSet)
	difficulty := NewDifficultyScaling(deps.GameState, cfg, deps.EnemyDefaults, deps.Difficulty)
	horde := NewHordeSystem(deps.Bus, deps.GameState, spawner, difficulty, deps.Scores, deps.Horde)
	monitor := NewSpawnMonitor(spawner, activeSet)

	d := &Director{
		em:         deps.EntityManager,
		bus:        deps.Bus,
		gameState:  deps.GameState,
		pool:       pool,
		activeSet:  activeSet,
		spawner:    spawner,
		lifecycle:  lifecycle,
		combat:     combat,
		difficulty: difficulty,
		horde:      horde,
		monitor:    monitor,
		cfg:        cfg,
		defaults:   deps.EnemyDefaults,
		deferred:   make(chan func(), 16),
	}

	// 停靠状态切换驱动冻结/解冻
	deps.Bus.SubscribeFunc(events.PlayerDocked, func(events.Event) {
		d.gameState.IsDocked = true
		d.FreezeAllEnemies()
	})
	deps.Bus.SubscribeFunc(events.PlayerUndocked, func(events.Event) {
		d.gameState.IsDocked = false
		d.UnfreezeAllEnemies()
	})

	return d
}

// Start 启动后台协作方并安排池预热
func (d *Director) Start() {
	d.spawner.GenerateSpawnPoints()
	d.monitor.Start()

	// 延迟预热走延迟队列回到帧线程
	time.AfterFunc(PoolWarmupDelay, func() {
		d.Defer(func() {
			d.pool.Preallocate(d.defaults.PoolPreallocate)
			log.Printf("[Director] Pool warmed up with %d entities", d.defaults.PoolPreallocate)
		})
	})
}

// Stop 停止后台协作方
func (d *Director) Stop() {
	d.monitor.Stop()
}

// Defer 投递一个函数到帧线程执行
// 队列已满时丢弃并记录日志，不阻塞投递方
func (d *Director) Defer(fn func()) {
	select {
	case d.deferred <- fn:
	default:
		log.Printf("[Director] Warning: deferred queue full, dropping task")
	}
}

// Update 帧驱动入口
//
// 顺序：排空延迟队列与看门狗信号 → 难度重算 → 集合校验 →
// 生命周期逐实体更新 → 常规生成 → 无尽模式节奏 → 战斗碰撞 →
// 数量上限裁汰 → 提交延迟销毁。
func (d *Director) Update(deltaTime float64) {
	d.drainDeferred()

	d.difficulty.Update(deltaTime)
	d.lifecycle.ValidateEnemyReferences()
	d.lifecycle.Update(deltaTime)

	if !d.gameState.IsDocked {
		if !d.gameState.HordeActive {
			d.spawner.Update(deltaTime)
		}
		d.horde.Update(deltaTime)
	}

	d.combat.Update(deltaTime)
	d.lifecycle.EnforceEnemyLimit(d.cfg.MaxEnemies)

	d.em.RemoveMarkedEntities()
}

// drainDeferred 排空延迟队列与看门狗信号
func (d *Director) drainDeferred() {
	for {
		select {
		case fn := <-d.deferred:
			fn()
		case <-d.monitor.Signal:
			shouldBeActive := !d.gameState.IsDocked && d.activeSet.Len() < d.cfg.MaxEnemies
			d.monitor.Scan(shouldBeActive)
		default:
			return
		}
	}
}

// FreezeAllEnemies 冻结全部敌人（停靠、过场动画）
func (d *Director) FreezeAllEnemies() {
	d.lifecycle.FreezeAllEnemies()
}

// UnfreezeAllEnemies 解冻全部敌人
func (d *Director) UnfreezeAllEnemies() {
	d.lifecycle.UnfreezeAllEnemies()
}

// RunPoolDiagnostics 执行对象池诊断修复，返回修复次数
func (d *Director) RunPoolDiagnostics() int {
	return d.pool.RunDiagnostics(d.activeSet)
}

// ValidateEnemyReferences 执行活跃集合一致性校验，返回修复次数
func (d *Director) ValidateEnemyReferences() int {
	return d.lifecycle.ValidateEnemyReferences()
}

// ActivateHordeMode 激活无尽模式
func (d *Director) ActivateHordeMode() {
	d.horde.Activate()
}

// DeactivateHordeMode 结束无尽模式并结算排行榜
func (d *Director) DeactivateHordeMode() {
	d.horde.Deactivate()
}

// HordeScore 返回当前无尽模式得分
func (d *Director) HordeScore() int {
	return d.horde.Score()
}

// HordeWave 返回当前波次号
func (d *Director) HordeWave() int {
	return d.horde.CurrentWave()
}

// HordeSurvivalTime 返回格式化的存活时间
func (d *Director) HordeSurvivalTime() string {
	return d.horde.GetFormattedSurvivalTime()
}

// ActiveEnemyCount 返回当前活跃敌人数量
func (d *Director) ActiveEnemyCount() int {
	return d.activeSet.Len()
}
