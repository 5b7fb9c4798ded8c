package entities

import (
	"fmt"
	"math/rand"

	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/components"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/config"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/game"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/geom"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/types"
)

// bossStats 各 Boss 类型相对普通无人机的数值倍率
type bossStats struct {
	healthMult float64 // 生命倍率
	speedMult  float64 // 速度倍率
	sizeMult   float64 // 尺寸倍率
	model      string  // 模型资源名称
}

var bossStatsMap = map[types.EnemyType]bossStats{
	types.EnemyBossReaver:      {healthMult: 8, speedMult: 1.2, sizeMult: 2.5, model: "boss_reaver"},
	types.EnemyBossWraith:      {healthMult: 12, speedMult: 1.5, sizeMult: 2.0, model: "boss_wraith"},
	types.EnemyBossDreadnought: {healthMult: 25, speedMult: 0.8, sizeMult: 4.0, model: "boss_dreadnought"},
}

// lookupBossStats 查找 Boss 数值倍率
// 未知类型回退为掠夺者数值，保证装配总能完成
func lookupBossStats(t types.EnemyType) bossStats {
	if stats, ok := bossStatsMap[t]; ok {
		return stats
	}
	return bossStatsMap[types.EnemyBossReaver]
}

// EquipBoss 将对象池取出的空白实体装配为 Boss
//
// Boss 与普通无人机共享组件布局，只是数值与模型不同：
// 生命/速度/尺寸按类型倍率放大，不施加逐个体抖动（Boss 唯一性）。
//
// 返回:
//   - error: 实体不存在时返回错误
func EquipBoss(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	rng *rand.Rand,
	entityID ecs.EntityID,
	bossType types.EnemyType,
	cfg *config.EnemyConfig,
	defaults *config.EnemyDefaults,
	pos geom.Vec3,
) error {
	if !em.Exists(entityID) {
		return fmt.Errorf("entity %d does not exist", entityID)
	}

	stats := lookupBossStats(bossType)

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: pos.X, Y: pos.Y, Z: pos.Z,
	})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{})

	ecs.AddComponent(em, entityID, &components.HealthComponent{
		Health:           cfg.Health * stats.healthMult,
		MaxHealth:        cfg.Health * stats.healthMult,
		Shield:           defaults.BaseShield * stats.healthMult / 2,
		MaxShield:        defaults.BaseShield * stats.healthMult / 2,
		ShieldRegenRate:  defaults.ShieldRegenRate * 2,
		ShieldRegenDelay: defaults.ShieldRegenDelay,
	})

	ecs.AddComponent(em, entityID, &components.AIComponent{
		Enabled:         true,
		Speed:           cfg.Speed * stats.speedMult,
		SpiralAmplitude: cfg.SpiralAmplitude * 0.5, // Boss 轨迹更平直
		SpiralFrequency: cfg.SpiralFrequency * 0.5,
		Phase:           rng.Float64() * 2 * 3.141592653589793,
	})

	spec, real := rm.LoadModel(stats.model, defaults.BaseMeshRadius*stats.sizeMult)
	mesh := &components.MeshComponent{
		Visible:   true,
		ModelName: stats.model,
		Variant:   types.VariantElite, // Boss 始终使用精英外观
	}
	if spec.Shape == "box" {
		mesh.Shape = components.ShapeBox
		mesh.HalfX = spec.HalfX
		mesh.HalfY = spec.HalfY
		mesh.HalfZ = spec.HalfZ
		mesh.Radius = maxOf3(spec.HalfX, spec.HalfY, spec.HalfZ)
	} else {
		mesh.Shape = components.ShapeSphere
		mesh.Radius = spec.Radius
	}
	mesh.Placeholder = !real
	ecs.AddComponent(em, entityID, mesh)

	return nil
}
