package events

import (
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/geom"
)

// 事件类型常量
//
// 武器类事件由外部武器系统发布，本子系统订阅以追踪弹丸；
// 其余事件由本子系统发布，供UI、音频、渲染等外部协作方消费。
const (
	WeaponFired  EventType = "weapon.fired"  // 玩家武器开火（负载: ProjectilePayload）
	TurretFire   EventType = "turret.fire"   // 炮塔开火（负载: ProjectilePayload）
	MissileFired EventType = "missile.fired" // 导弹发射（负载: ProjectilePayload）

	EntityDamaged   EventType = "entity.damaged"   // 实体受到伤害（负载: DamagePayload）
	EntityDestroyed EventType = "entity.destroyed" // 实体被摧毁（负载: DestroyedPayload）

	PlayerDocked   EventType = "player.docked"   // 玩家停靠（无负载）
	PlayerUndocked EventType = "player.undocked" // 玩家解除停靠（无负载）

	HordeActivated EventType = "horde.activated" // 无尽模式激活（无负载）
	HordeWaveStart EventType = "horde.waveStart" // 波次开始（负载: WaveStartPayload）
	HordeBossSpawn EventType = "horde.bossSpawn" // Boss出现（负载: BossSpawnPayload）

	CombatHit EventType = "combat.hit" // 命中结算（负载: HitPayload）

	VFXExplosion EventType = "vfx.explosion" // 爆炸特效请求（负载: VFXPayload）
	VFXPulse     EventType = "vfx.pulse"     // 粒子脉冲特效请求（负载: VFXPayload）
)

// ProjectilePayload 武器类事件负载
type ProjectilePayload struct {
	Entity ecs.EntityID // 弹丸实体ID
}

// DamagePayload 伤害事件负载
type DamagePayload struct {
	Entity         ecs.EntityID // 受击实体ID
	ShieldAbsorbed float64      // 被护盾吸收的伤害
	HealthDamage   float64      // 实际扣除生命值的伤害
}

// DestroyedPayload 摧毁事件负载
type DestroyedPayload struct {
	Entity  ecs.EntityID // 被摧毁实体ID
	IsEnemy bool         // 是否为敌人（无尽模式计分依据）
}

// WaveStartPayload 波次开始事件负载
type WaveStartPayload struct {
	Wave             int     // 波次号（从1开始）
	EnemiesInWave    int     // 本波敌人数量
	HealthMultiplier float64 // 本波生命值倍率
	SpeedMultiplier  float64 // 本波速度倍率
}

// BossSpawnPayload Boss出现事件负载
type BossSpawnPayload struct {
	Wave     int    // 触发波次
	BossType string // Boss类型字符串（types.EnemyType.String()）
}

// HitPayload 命中事件负载
type HitPayload struct {
	Target         ecs.EntityID // 被命中实体ID
	Projectile     ecs.EntityID // 弹丸实体ID
	Position       geom.Vec3    // 命中位置
	TotalDamage    float64      // 总伤害
	ShieldAbsorbed float64      // 护盾吸收部分
	HealthDamage   float64      // 生命值伤害部分
	Critical       bool         // 是否为高伤害暴击
}

// VFXPayload 特效请求事件负载
type VFXPayload struct {
	Position geom.Vec3 // 特效位置
	Size     float64   // 特效尺寸
}
