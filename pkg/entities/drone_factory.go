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

// 视觉变体出现概率
const (
	// EliteVariantChance 精英外观概率
	EliteVariantChance = 0.15
	// DamagedVariantChance 破损外观概率
	DamagedVariantChance = 0.15
)

// jitterFactor 返回 [1-spread, 1+spread] 区间内的随机倍率
// 用于逐个体打散生成参数，避免同批敌人完全同步
func jitterFactor(rng *rand.Rand, spread float64) float64 {
	return 1 + (rng.Float64()*2-1)*spread
}

// rollVariant 随机选择视觉变体
func rollVariant(rng *rand.Rand) types.MeshVariant {
	r := rng.Float64()
	switch {
	case r < EliteVariantChance:
		return types.VariantElite
	case r < EliteVariantChance+DamagedVariantChance:
		return types.VariantDamaged
	default:
		return types.VariantStandard
	}
}

// EquipSpectralDrone 将对象池取出的空白实体装配为幽灵无人机
//
// 在实体上装配变换、生命值、AI、网格与速度组件，
// 数值来自当前 EnemyConfig 并施加 ±20–30% 的逐个体抖动
// （振幅/频率 ±30%，速度/尺寸 ±20%）。
// 模型解析失败时使用程序生成的占位几何，不阻塞装配。
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源管理器（解析无人机模型几何）
//   - rng: 随机数生成器（注入以便测试确定性）
//   - entityID: 对象池取出的实体ID
//   - cfg: 当前敌人生成参数
//   - defaults: 敌人基础参数（护盾、模型名称等不随难度变化的项）
//   - pos: 生成位置
//
// 返回:
//   - error: 实体不存在时返回错误
func EquipSpectralDrone(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	rng *rand.Rand,
	entityID ecs.EntityID,
	cfg *config.EnemyConfig,
	defaults *config.EnemyDefaults,
	pos geom.Vec3,
) error {
	if !em.Exists(entityID) {
		return fmt.Errorf("entity %d does not exist", entityID)
	}

	// 位置
	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: pos.X, Y: pos.Y, Z: pos.Z,
	})

	// 速度（初始静止，由AI驱动）
	ecs.AddComponent(em, entityID, &components.VelocityComponent{})

	// 生命值与护盾
	ecs.AddComponent(em, entityID, &components.HealthComponent{
		Health:           cfg.Health,
		MaxHealth:        cfg.Health,
		Shield:           defaults.BaseShield,
		MaxShield:        defaults.BaseShield,
		ShieldRegenRate:  defaults.ShieldRegenRate,
		ShieldRegenDelay: defaults.ShieldRegenDelay,
	})

	// AI：螺旋追踪参数施加逐个体抖动
	ecs.AddComponent(em, entityID, &components.AIComponent{
		Enabled:         true,
		Speed:           cfg.Speed * jitterFactor(rng, 0.2),
		SpiralAmplitude: cfg.SpiralAmplitude * jitterFactor(rng, 0.3),
		SpiralFrequency: cfg.SpiralFrequency * jitterFactor(rng, 0.3),
		Phase:           rng.Float64() * 2 * 3.141592653589793,
	})

	// 网格：模型缺失退化为占位几何
	spec, real := rm.LoadModel(defaults.DroneModel, defaults.BaseMeshRadius)
	mesh := &components.MeshComponent{
		Visible:   true,
		ModelName: defaults.DroneModel,
		Variant:   rollVariant(rng),
	}
	applyModelSpec(mesh, spec, rng)
	mesh.Placeholder = !real

	// 精英变体携带尾迹效果实体
	if mesh.Variant == types.VariantElite {
		mesh.TrailEffect = NewTrailEffectEntity(em, pos)
	}
	ecs.AddComponent(em, entityID, mesh)

	return nil
}

// applyModelSpec 将模型几何描述写入网格组件，尺寸施加 ±20% 抖动
func applyModelSpec(mesh *components.MeshComponent, spec game.ModelSpec, rng *rand.Rand) {
	sizeJitter := jitterFactor(rng, 0.2)
	if spec.Shape == "box" {
		mesh.Shape = components.ShapeBox
		mesh.HalfX = spec.HalfX * sizeJitter
		mesh.HalfY = spec.HalfY * sizeJitter
		mesh.HalfZ = spec.HalfZ * sizeJitter
		// 包围球半径用于粗测
		mesh.Radius = maxOf3(mesh.HalfX, mesh.HalfY, mesh.HalfZ)
		return
	}
	mesh.Shape = components.ShapeSphere
	mesh.Radius = spec.Radius * sizeJitter
}

// maxOf3 返回三个数中的最大值
func maxOf3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
