package entities

import (
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/components"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/geom"
)

// 击中效果参数
const (
	// HitEffectDuration 击中效果持续时间（秒）
	HitEffectDuration = 0.4

	// HitEffectBaseSize 普通击中效果尺寸
	HitEffectBaseSize = 1.0
	// HitEffectCriticalSize 暴击效果尺寸
	HitEffectCriticalSize = 2.2
	// HitEffectShieldSize 护盾吸收效果尺寸
	HitEffectShieldSize = 1.5
)

// NewHitEffectEntity 创建击中效果实体
//
// 效果实体是短生命周期实体，不走对象池，由 TimerComponent
// 倒计时控制、生命周期系统到期销毁。
// 尺寸由命中结算结果决定：暴击 > 护盾吸收 > 普通。
//
// 参数:
//   - em: 实体管理器
//   - pos: 命中位置
//   - critical: 是否为高伤害暴击
//   - shieldAbsorbed: 伤害是否主要被护盾吸收
//
// 返回:
//   - ecs.EntityID: 效果实体ID
func NewHitEffectEntity(em *ecs.EntityManager, pos geom.Vec3, critical, shieldAbsorbed bool) ecs.EntityID {
	entityID := em.CreateEntity()

	size := HitEffectBaseSize
	if shieldAbsorbed {
		size = HitEffectShieldSize
	}
	if critical {
		// 暴击优先于护盾配色
		size = HitEffectCriticalSize
	}

	ecs.AddComponent(em, entityID, &components.RoleComponent{Role: components.RoleEffect})
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: pos.X, Y: pos.Y, Z: pos.Z})
	ecs.AddComponent(em, entityID, &components.HitEffectComponent{
		Size:           size,
		Critical:       critical,
		ShieldAbsorbed: shieldAbsorbed,
	})
	ecs.AddComponent(em, entityID, &components.TimerComponent{
		Name:       "hit_effect",
		TargetTime: HitEffectDuration,
	})

	return entityID
}

// NewTrailEffectEntity 创建尾迹效果实体
//
// 精英变体无人机的附属视觉效果，位置每帧由生命周期系统
// 镜像到宿主无人机，宿主回收入池时由池分离并销毁。
func NewTrailEffectEntity(em *ecs.EntityManager, pos geom.Vec3) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.RoleComponent{Role: components.RoleEffect})
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: pos.X, Y: pos.Y, Z: pos.Z})
	return entityID
}
