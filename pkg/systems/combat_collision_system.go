package systems

import (
	"log"

	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/components"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/entities"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/events"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/geom"
)

// 命中检测参数
const (
	// MinProjectileSpeed 弹丸速度阈值，低于此值跳过检测（不销毁）
	MinProjectileSpeed = 0.5
	// RayBackoffDistance 射线起点沿速度反方向的回退距离
	// 补偿高速弹丸单帧位移越过目标导致的点检测漏判
	RayBackoffDistance = 5.0
	// RayForwardDistance 射线有效前向距离上限
	RayForwardDistance = 25.0
	// DefaultProjectileDamage 弹丸未携带伤害元数据时的默认伤害
	DefaultProjectileDamage = 10.0
	// CriticalDamageThreshold 判定为暴击的单次伤害阈值
	CriticalDamageThreshold = 25.0
)

// CombatCollisionSystem 战斗碰撞系统
//
// 追踪弹丸实体并做基于射线的命中检测：
//   - 通过武器事件与角色扫描两条途径登记弹丸
//   - 每帧按阵营划分候选桶，逐弹丸向对立阵营投射射线
//   - 最近交点获胜，每颗弹丸每帧至多命中一个目标
//
// 弹丸生命周期归武器系统所有，本系统只销毁确认命中的弹丸。
type CombatCollisionSystem struct {
	em        *ecs.EntityManager
	bus       *events.Bus
	activeSet *ActiveEnemySet

	// trackedProjectiles 登记在案的弹丸（事件途径）
	trackedProjectiles map[ecs.EntityID]struct{}
}

// NewCombatCollisionSystem 创建战斗碰撞系统并订阅武器事件
func NewCombatCollisionSystem(em *ecs.EntityManager, bus *events.Bus, activeSet *ActiveEnemySet) *CombatCollisionSystem {
	s := &CombatCollisionSystem{
		em:                 em,
		bus:                bus,
		activeSet:          activeSet,
		trackedProjectiles: make(map[ecs.EntityID]struct{}),
	}

	onFired := func(event events.Event) {
		if payload, ok := event.Data.(events.ProjectilePayload); ok {
			s.TrackProjectile(payload.Entity)
		}
	}
	bus.SubscribeFunc(events.WeaponFired, onFired)
	bus.SubscribeFunc(events.TurretFire, onFired)
	bus.SubscribeFunc(events.MissileFired, onFired)

	return s
}

// TrackProjectile 登记一颗弹丸
func (s *CombatCollisionSystem) TrackProjectile(id ecs.EntityID) {
	if !s.em.Exists(id) {
		return
	}
	s.trackedProjectiles[id] = struct{}{}
}

// TrackedCount 返回当前登记的弹丸数量
func (s *CombatCollisionSystem) TrackedCount() int {
	return len(s.trackedProjectiles)
}

// Update 执行一帧命中检测
func (s *CombatCollisionSystem) Update(deltaTime float64) {
	// 事件途径之外兜底：扫描携带弹丸角色的实体
	for _, id := range ecs.GetEntitiesWith2[*components.RoleComponent, *components.ProjectileComponent](s.em) {
		role, _ := ecs.GetComponent[*components.RoleComponent](s.em, id)
		if role.Role == components.RoleProjectile {
			s.trackedProjectiles[id] = struct{}{}
		}
	}

	enemies, players := s.collectTargets()

	for id := range s.trackedProjectiles {
		if !s.em.Exists(id) {
			delete(s.trackedProjectiles, id)
			continue
		}
		s.resolveProjectile(id, enemies, players)
	}
}

// collectTargets 按阵营划分候选目标桶
func (s *CombatCollisionSystem) collectTargets() (enemies, players []ecs.EntityID) {
	for _, id := range ecs.GetEntitiesWith1[*components.RoleComponent](s.em) {
		role, _ := ecs.GetComponent[*components.RoleComponent](s.em, id)
		switch role.Role {
		case components.RoleEnemy:
			enemies = append(enemies, id)
		case components.RolePlayer:
			players = append(players, id)
		}
	}
	return enemies, players
}

// resolveProjectile 单颗弹丸的命中结算
// 内部 recover 保证个别弹丸的异常不会中断整帧检测
func (s *CombatCollisionSystem) resolveProjectile(id ecs.EntityID, enemies, players []ecs.EntityID) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[CombatCollision] Recovered from projectile %d resolution panic: %v", id, r)
			delete(s.trackedProjectiles, id)
		}
	}()

	pos, okPos := ecs.GetComponent[*components.PositionComponent](s.em, id)
	vel, okVel := ecs.GetComponent[*components.VelocityComponent](s.em, id)
	proj, okProj := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
	if !okPos || !okVel || !okProj {
		delete(s.trackedProjectiles, id)
		return
	}

	// 低速弹丸跳过本帧，生命周期仍归武器系统
	if vel.Speed() < MinProjectileSpeed {
		return
	}

	candidates := enemies
	if proj.FromEnemy {
		candidates = players
	}
	if len(candidates) == 0 {
		return
	}

	dir := vel.Vec().Normalize()
	origin := pos.Vec().Sub(dir.Scale(RayBackoffDistance))
	ray := geom.NewRay(origin, dir)

	target, hitT, found := s.closestHit(ray, candidates)
	if !found {
		return
	}

	s.applyHit(id, proj, target, ray.At(hitT))
}

// closestHit 对候选目标求最近射线交点
func (s *CombatCollisionSystem) closestHit(ray geom.Ray, candidates []ecs.EntityID) (ecs.EntityID, float64, bool) {
	var bestID ecs.EntityID
	bestT := RayForwardDistance + RayBackoffDistance
	found := false

	for _, candidate := range candidates {
		mesh, ok := ecs.GetComponent[*components.MeshComponent](s.em, candidate)
		if !ok || !mesh.Visible {
			continue
		}
		targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.em, candidate)
		if !ok {
			continue
		}

		var t float64
		var hit bool
		switch mesh.Shape {
		case components.ShapeBox:
			t, hit = ray.IntersectBox(targetPos.Vec(), mesh.HalfX, mesh.HalfY, mesh.HalfZ)
		default:
			t, hit = ray.IntersectSphere(targetPos.Vec(), mesh.Radius)
		}

		if hit && t < bestT {
			bestT = t
			bestID = candidate
			found = true
		}
	}

	return bestID, bestT, found
}

// applyHit 结算命中：伤害分摊、事件发布、效果实体、弹丸销毁
func (s *CombatCollisionSystem) applyHit(projectileID ecs.EntityID, proj *components.ProjectileComponent, target ecs.EntityID, hitPos geom.Vec3) {
	damage := proj.Damage
	if damage <= 0 {
		damage = DefaultProjectileDamage
	}

	var shieldAbsorbed, healthDamage float64
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.em, target); ok {
		shieldAbsorbed, healthDamage = health.ApplyDamage(damage)
	} else {
		healthDamage = damage
	}

	critical := damage >= CriticalDamageThreshold
	mostlyShield := shieldAbsorbed > healthDamage

	s.bus.Dispatch(events.Event{Type: events.EntityDamaged, Data: events.DamagePayload{
		Entity:         target,
		ShieldAbsorbed: shieldAbsorbed,
		HealthDamage:   healthDamage,
	}})
	s.bus.Dispatch(events.Event{Type: events.CombatHit, Data: events.HitPayload{
		Target:         target,
		Projectile:     projectileID,
		Position:       hitPos,
		TotalDamage:    damage,
		ShieldAbsorbed: shieldAbsorbed,
		HealthDamage:   healthDamage,
		Critical:       critical,
	}})

	entities.NewHitEffectEntity(s.em, hitPos, critical, mostlyShield)

	delete(s.trackedProjectiles, projectileID)
	s.em.DestroyEntity(projectileID)
}
