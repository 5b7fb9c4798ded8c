package systems

import (
	"math"

	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/config"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/game"
)

// DifficultyScaling 难度缩放系统
//
// 每帧重算共享的运行时敌人参数记录：
//   - 外部难度源存在时直接采用其参数快照
//   - 无尽模式下由存活时间驱动两阶段曲线（前段线性、后段乘法）
//   - 两者都不可用时回落到基础参数
//
// 只做纯算术写入，不做分配。
type DifficultyScaling struct {
	gameState *game.GameState
	cfg       *config.EnemyConfig
	defaults  *config.EnemyDefaults
	curve     *config.DifficultyConfig

	survivalTime float64 // 无尽模式存活时间（秒）
}

// NewDifficultyScaling 创建难度缩放系统
func NewDifficultyScaling(
	gameState *game.GameState,
	cfg *config.EnemyConfig,
	defaults *config.EnemyDefaults,
	curve *config.DifficultyConfig,
) *DifficultyScaling {
	return &DifficultyScaling{
		gameState: gameState,
		cfg:       cfg,
		defaults:  defaults,
		curve:     curve,
	}
}

// SurvivalTime 返回当前存活时间（秒）
func (d *DifficultyScaling) SurvivalTime() float64 {
	return d.survivalTime
}

// ResetSurvivalTime 清零存活时间（无尽模式激活时调用）
func (d *DifficultyScaling) ResetSurvivalTime() {
	d.survivalTime = 0
}

// Update 推进存活时间并重算运行时参数
func (d *DifficultyScaling) Update(deltaTime float64) {
	if d.gameState.HordeActive {
		d.survivalTime += deltaTime
	}

	// 外部难度源优先
	if d.gameState.Difficulty != nil {
		d.applyExternal(d.gameState.Difficulty.Params())
		return
	}

	if d.gameState.HordeActive {
		d.applySurvivalCurve(d.survivalTime)
		return
	}

	// 无外部源且非无尽模式：基础参数
	d.applyMultipliers(1, 1, 1, d.defaults.BaseSpawnInterval, d.defaults.BaseMaxEnemies)
}

// applyExternal 采用外部难度源的参数快照
func (d *DifficultyScaling) applyExternal(p game.DifficultyParams) {
	d.applyMultipliers(p.HealthMultiplier, p.DamageMultiplier, p.SpeedMultiplier, p.SpawnInterval, p.MaxEnemies)
}

// applySurvivalCurve 按存活时间计算两阶段难度曲线
//
// 线性阶段（前 LinearPhaseSeconds 秒）：数量上限与生成间隔随
// 分钟数线性变化。之后转为乘法增长：数量上限在线性阶段终值
// 基础上按每分钟 GrowthRatePerMinute 复利放大，生成间隔按同样
// 速率衰减。数量上限钳制在 HardMaxEnemies，间隔钳制在
// MinSpawnInterval。属性倍率始终与分钟数线性相关。
func (d *DifficultyScaling) applySurvivalCurve(survivalSeconds float64) {
	minutes := survivalSeconds / 60.0
	c := d.curve

	linearMinutes := c.LinearPhaseSeconds / 60.0

	var maxEnemies float64
	var interval float64
	if survivalSeconds <= c.LinearPhaseSeconds {
		maxEnemies = float64(d.defaults.BaseMaxEnemies) + c.MaxEnemiesPerMinute*minutes
		interval = d.defaults.BaseSpawnInterval - c.IntervalDecayPerMinute*minutes
	} else {
		extraMinutes := minutes - linearMinutes
		growth := math.Pow(1+c.GrowthRatePerMinute, extraMinutes)

		linearEndMax := float64(d.defaults.BaseMaxEnemies) + c.MaxEnemiesPerMinute*linearMinutes
		linearEndInterval := d.defaults.BaseSpawnInterval - c.IntervalDecayPerMinute*linearMinutes

		maxEnemies = linearEndMax * growth
		interval = linearEndInterval / growth
	}

	if maxEnemies > float64(c.HardMaxEnemies) {
		maxEnemies = float64(c.HardMaxEnemies)
	}
	if interval < c.MinSpawnInterval {
		interval = c.MinSpawnInterval
	}

	healthMul := 1 + c.HealthPerMinute*minutes
	damageMul := 1 + c.DamagePerMinute*minutes
	speedMul := 1 + c.SpeedPerMinute*minutes

	d.applyMultipliers(healthMul, damageMul, speedMul, interval, int(maxEnemies))
}

// applyMultipliers 将倍率写入共享运行时记录
func (d *DifficultyScaling) applyMultipliers(healthMul, damageMul, speedMul, interval float64, maxEnemies int) {
	d.cfg.Health = d.defaults.BaseHealth * healthMul
	d.cfg.Damage = d.defaults.BaseDamage * damageMul
	d.cfg.Speed = d.defaults.BaseSpeed * speedMul
	d.cfg.SpiralAmplitude = d.defaults.BaseSpiralAmplitude
	d.cfg.SpiralFrequency = d.defaults.BaseSpiralFrequency
	d.cfg.SpawnInterval = interval
	d.cfg.MaxEnemies = maxEnemies
}
