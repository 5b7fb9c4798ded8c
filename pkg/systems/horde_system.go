package systems

import (
	"log"

	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/config"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/events"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/game"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/types"
)

// HordeSystem 无尽模式系统
//
// 管理波次推进、击杀计分、Boss里程碑与局终结算。
// 通过订阅 entity.destroyed 计分，不直接参与战斗结算。
type HordeSystem struct {
	bus        *events.Bus
	gameState  *game.GameState
	spawner    *EnemySpawner
	difficulty *DifficultyScaling
	scores     *game.ScoreManager
	cfg        *config.HordeConfig

	active           bool
	currentWave      int
	score            int
	enemiesRemaining int
	pendingSpawns    int // 本波尚未生成的敌人数量
	waveSpawnTimer   float64
}

// WaveSpawnInterval 波次内敌人的生成节奏（秒）
// 无尽模式接管生成节奏，不走常规难度曲线的间隔
const WaveSpawnInterval = 1.5

// NewHordeSystem 创建无尽模式系统并订阅摧毁事件
func NewHordeSystem(
	bus *events.Bus,
	gameState *game.GameState,
	spawner *EnemySpawner,
	difficulty *DifficultyScaling,
	scores *game.ScoreManager,
	cfg *config.HordeConfig,
) *HordeSystem {
	h := &HordeSystem{
		bus:        bus,
		gameState:  gameState,
		spawner:    spawner,
		difficulty: difficulty,
		scores:     scores,
		cfg:        cfg,
	}

	bus.SubscribeFunc(events.EntityDestroyed, func(event events.Event) {
		if payload, ok := event.Data.(events.DestroyedPayload); ok {
			h.OnEnemyDestroyed(payload)
		}
	})

	return h
}

// IsActive 返回无尽模式是否激活
func (h *HordeSystem) IsActive() bool {
	return h.active
}

// CurrentWave 返回当前波次号（未激活时为0）
func (h *HordeSystem) CurrentWave() int {
	return h.currentWave
}

// Score 返回当前得分
func (h *HordeSystem) Score() int {
	return h.score
}

// GetFormattedSurvivalTime 返回 "MM:SS" 格式的存活时间
func (h *HordeSystem) GetFormattedSurvivalTime() string {
	return game.FormatSurvivalTime(int(h.difficulty.SurvivalTime()))
}

// Activate 激活无尽模式
//
// 重置得分、存活时间与波次；玩家处于停靠状态时强制解除停靠
// 并发布 player.undocked；随后发布 horde.activated 并开始第1波。
// 重复激活是空操作。
func (h *HordeSystem) Activate() {
	if h.active {
		return
	}

	h.active = true
	h.score = 0
	h.currentWave = 0
	h.enemiesRemaining = 0
	h.pendingSpawns = 0
	h.difficulty.ResetSurvivalTime()
	h.gameState.HordeActive = true

	if h.gameState.IsDocked {
		// 无尽模式与停靠不兼容
		h.gameState.IsDocked = false
		h.bus.Dispatch(events.Event{Type: events.PlayerUndocked})
		log.Printf("[HordeSystem] Forced undock on activation")
	}

	h.bus.Dispatch(events.Event{Type: events.HordeActivated})
	log.Printf("[HordeSystem] Horde mode activated")

	h.StartWave(1)
}

// Deactivate 结束无尽模式并结算排行榜
func (h *HordeSystem) Deactivate() {
	if !h.active {
		return
	}

	h.active = false
	h.gameState.HordeActive = false

	survivalSeconds := int(h.difficulty.SurvivalTime())
	entered, err := h.scores.SaveHighScore(h.score, h.currentWave, survivalSeconds)
	if err != nil {
		log.Printf("[HordeSystem] Warning: failed to persist high score: %v", err)
	}
	log.Printf("[HordeSystem] Horde mode ended: score=%d, wave=%d, survival=%s, leaderboard=%v",
		h.score, h.currentWave, game.FormatSurvivalTime(survivalSeconds), entered)
}

// StartWave 开始指定波次
//
// 计算本波敌人数量与属性倍率、发布 horde.waveStart；
// 命中Boss里程碑时生成对应Boss并发布 horde.bossSpawn。
func (h *HordeSystem) StartWave(wave int) {
	h.currentWave = wave
	enemies := h.cfg.EnemiesInWave(wave)
	h.enemiesRemaining = enemies
	h.pendingSpawns = enemies
	h.waveSpawnTimer = 0

	h.bus.Dispatch(events.Event{Type: events.HordeWaveStart, Data: events.WaveStartPayload{
		Wave:             wave,
		EnemiesInWave:    enemies,
		HealthMultiplier: h.cfg.HealthMultiplier(wave),
		SpeedMultiplier:  h.cfg.SpeedMultiplier(wave),
	}})
	log.Printf("[HordeSystem] Wave %d started: %d enemies", wave, enemies)

	if bossType, ok := BossForWave(wave); ok {
		if id, spawned := h.spawner.SpawnBoss(bossType); spawned {
			// Boss计入本波敌人数量
			h.enemiesRemaining++
			h.bus.Dispatch(events.Event{Type: events.HordeBossSpawn, Data: events.BossSpawnPayload{
				Wave:     wave,
				BossType: bossType.String(),
			}})
			log.Printf("[HordeSystem] Boss %s spawned for wave %d (entity %d)", bossType, wave, id)
		}
	}
}

// BossForWave 返回指定波次的Boss类型
//
// 里程碑判定为固定优先级链，首个命中的分支生效：
//
//	波次能被5整除且不能被10整除 → Reaver
//	波次能被7整除且不能被10整除 → Wraith
//	波次能被10整除              → Dreadnought
//
// 因此第35波（5和7都整除）生成 Reaver，第10波生成 Dreadnought。
func BossForWave(wave int) (types.EnemyType, bool) {
	if wave%5 == 0 && wave%10 != 0 {
		return types.EnemyBossReaver, true
	} else if wave%7 == 0 && wave%10 != 0 {
		return types.EnemyBossWraith, true
	} else if wave%10 == 0 && wave > 0 {
		return types.EnemyBossDreadnought, true
	}
	return types.EnemySpectralDrone, false
}

// OnEnemyDestroyed 摧毁事件回调：击杀计分与波次完成判定
func (h *HordeSystem) OnEnemyDestroyed(payload events.DestroyedPayload) {
	if !h.active || !payload.IsEnemy {
		return
	}

	h.score += h.cfg.PointsPerKill
	h.enemiesRemaining--

	if h.enemiesRemaining <= 0 && h.pendingSpawns <= 0 {
		h.onWaveComplete()
	}
}

// onWaveComplete 波次完成结算：波次奖励分并推进下一波
func (h *HordeSystem) onWaveComplete() {
	h.score += h.cfg.PointsPerWave
	log.Printf("[HordeSystem] Wave %d complete: score=%d", h.currentWave, h.score)
	h.StartWave(h.currentWave + 1)
}

// Update 推进波次内的敌人生成节奏
func (h *HordeSystem) Update(deltaTime float64) {
	if !h.active || h.pendingSpawns <= 0 {
		return
	}

	h.waveSpawnTimer += deltaTime
	if h.waveSpawnTimer < WaveSpawnInterval {
		return
	}

	pos := h.spawner.GetRandomSpawnPoint()
	if _, ok := h.spawner.SpawnSpectralDrone(pos); ok {
		h.pendingSpawns--
		h.waveSpawnTimer = 0
	}
	// 生成失败（数量达上限）时保留计时器，下一帧立即重试
}

// PlayerDestroyed 玩家阵亡入口：结束本局
func (h *HordeSystem) PlayerDestroyed() {
	h.Deactivate()
}
