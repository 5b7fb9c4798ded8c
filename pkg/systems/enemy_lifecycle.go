package systems

import (
	"log"
	"math"

	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/components"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/events"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/game"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/geom"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/types"
)

// 视觉变体动画参数
const (
	// ElitePulseInterval 精英变体粒子脉冲间隔（秒）
	ElitePulseInterval = 2.0
	// DamagedFlickerPeriod 破损变体材质闪烁周期（秒）
	DamagedFlickerPeriod = 0.3
)

// EnemyLifecycle 敌人生命周期系统
//
// 职责：
//   - 校验活跃敌人集合与实体角色的一致性（成员关系重同步）
//   - 冻结/解冻全部敌人（过场动画、停靠控制）
//   - 超出数量上限时按插入顺序裁汰最老的敌人
//   - 驱动每实体每帧更新：场景挂接、变换镜像、变体动画、AI、护盾恢复
//   - 发现已摧毁的敌人时结算摧毁事件并回收入池
type EnemyLifecycle struct {
	em        *ecs.EntityManager
	bus       *events.Bus
	gameState *game.GameState
	pool      *EntityPool
	activeSet *ActiveEnemySet
}

// NewEnemyLifecycle 创建敌人生命周期系统
func NewEnemyLifecycle(
	em *ecs.EntityManager,
	bus *events.Bus,
	gameState *game.GameState,
	pool *EntityPool,
	activeSet *ActiveEnemySet,
) *EnemyLifecycle {
	return &EnemyLifecycle{
		em:        em,
		bus:       bus,
		gameState: gameState,
		pool:      pool,
		activeSet: activeSet,
	}
}

// ValidateEnemyReferences 重同步活跃敌人集合与实体角色
//
// 两个方向的修复：
//   - 集合中的ID指向已销毁实体或 RolePooled 实体时丢弃
//   - 携带 RoleEnemy 角色却不在集合中的实体重新登记
//
// 角色是单一权威字段，不存在旧设计中派生布尔缓存与
// 标签漂移后的对账问题，这里只处理集合成员关系的漂移。
//
// 返回：
//
//	修复次数
func (l *EnemyLifecycle) ValidateEnemyReferences() int {
	fixes := 0

	// 丢弃无效条目
	for _, id := range l.activeSet.IDs() {
		if !l.em.Exists(id) {
			l.activeSet.Remove(id)
			log.Printf("[EnemyLifecycle] Dropped dangling active entry %d", id)
			fixes++
			continue
		}
		role, ok := ecs.GetComponent[*components.RoleComponent](l.em, id)
		if !ok {
			l.activeSet.Remove(id)
			log.Printf("[EnemyLifecycle] Dropped active entry %d without role", id)
			fixes++
			continue
		}
		if role.Role == components.RolePooled {
			l.activeSet.Remove(id)
			log.Printf("[EnemyLifecycle] Dropped pooled entity %d from active set", id)
			fixes++
		}
	}

	// 重新登记漏网的敌人
	for _, id := range ecs.GetEntitiesWith1[*components.RoleComponent](l.em) {
		role, _ := ecs.GetComponent[*components.RoleComponent](l.em, id)
		if role.Role == components.RoleEnemy && !l.activeSet.Contains(id) {
			l.activeSet.Add(id)
			log.Printf("[EnemyLifecycle] Re-added untracked enemy %d to active set", id)
			fixes++
		}
	}

	return fixes
}

// FreezeAllEnemies 冻结全部活跃敌人
//
// 清零线速度与角速度、保存并关闭AI启用标志、打上冻结标记。
// 已冻结的敌人跳过，保证标志保存的是真正的冻结前状态。
func (l *EnemyLifecycle) FreezeAllEnemies() {
	frozen := 0
	for _, id := range l.activeSet.IDs() {
		if !l.em.Exists(id) {
			continue
		}
		if role, ok := ecs.GetComponent[*components.RoleComponent](l.em, id); !ok || role.Role == components.RolePooled {
			continue
		}
		if ecs.HasComponent[*components.FrozenComponent](l.em, id) {
			continue
		}

		if vel, ok := ecs.GetComponent[*components.VelocityComponent](l.em, id); ok {
			vel.Zero()
		}

		prevEnabled := false
		if ai, ok := ecs.GetComponent[*components.AIComponent](l.em, id); ok {
			prevEnabled = ai.Enabled
			ai.Enabled = false
		}

		ecs.AddComponent(l.em, id, &components.FrozenComponent{PrevAIEnabled: prevEnabled})
		frozen++
	}
	log.Printf("[EnemyLifecycle] Froze %d enemies", frozen)
}

// UnfreezeAllEnemies 解冻全部活跃敌人
// 恢复冻结前保存的AI启用标志（而不是无条件重新启用）并清除冻结标记
func (l *EnemyLifecycle) UnfreezeAllEnemies() {
	unfrozen := 0
	for _, id := range l.activeSet.IDs() {
		if !l.em.Exists(id) {
			continue
		}
		frozenComp, ok := ecs.GetComponent[*components.FrozenComponent](l.em, id)
		if !ok {
			continue
		}

		if ai, ok := ecs.GetComponent[*components.AIComponent](l.em, id); ok {
			ai.Enabled = frozenComp.PrevAIEnabled
		}
		ecs.RemoveComponent[*components.FrozenComponent](l.em, id)
		unfrozen++
	}
	log.Printf("[EnemyLifecycle] Unfroze %d enemies", unfrozen)
}

// EnforceEnemyLimit 数量上限裁汰
//
// 超出上限时按插入顺序（最老优先）销毁敌人直到回到上限内，
// 每次裁汰发布一次爆炸特效事件，结束后重新校验集合。
func (l *EnemyLifecycle) EnforceEnemyLimit(maxEnemies int) {
	if l.activeSet.Len() <= maxEnemies {
		return
	}

	removed := 0
	for l.activeSet.Len() > maxEnemies {
		id, ok := l.activeSet.Oldest()
		if !ok {
			break
		}

		if pos, found := ecs.GetComponent[*components.PositionComponent](l.em, id); found {
			l.bus.Dispatch(events.Event{Type: events.VFXExplosion, Data: events.VFXPayload{
				Position: pos.Vec(),
				Size:     1.0,
			}})
		}

		l.activeSet.Remove(id)
		l.pool.Release(id)
		removed++
	}

	log.Printf("[EnemyLifecycle] Enforced enemy limit %d: removed %d oldest enemies", maxEnemies, removed)
	l.ValidateEnemyReferences()
}

// Update 驱动全部活跃敌人与效果实体的每帧更新
func (l *EnemyLifecycle) Update(deltaTime float64) {
	playerPos, hasPlayer := ResolvePlayerPosition(l.em, l.gameState)

	for _, id := range l.activeSet.IDs() {
		if !l.em.Exists(id) {
			continue
		}

		// 已摧毁的敌人：结算摧毁并回收
		if health, ok := ecs.GetComponent[*components.HealthComponent](l.em, id); ok && health.Destroyed {
			l.handleEnemyDestroyed(id)
			continue
		}

		l.ProcessEntityUpdate(id, deltaTime, playerPos, hasPlayer)
	}

	l.updateEffects(deltaTime)
}

// handleEnemyDestroyed 结算敌人摧毁：特效、事件、回收入池
func (l *EnemyLifecycle) handleEnemyDestroyed(id ecs.EntityID) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](l.em, id); ok {
		l.bus.Dispatch(events.Event{Type: events.VFXExplosion, Data: events.VFXPayload{
			Position: pos.Vec(),
			Size:     1.5,
		}})
	}

	l.activeSet.Remove(id)
	l.pool.Release(id)

	l.bus.Dispatch(events.Event{Type: events.EntityDestroyed, Data: events.DestroyedPayload{
		Entity:  id,
		IsEnemy: true,
	}})
}

// ProcessEntityUpdate 单个敌人的每帧更新
//
// 顺序：场景挂接（仅一次）→ 变换镜像到渲染网格 →
// 视觉变体动画 → AI追踪 → 护盾恢复。
// 缺失组件的实体跳过对应步骤并继续，不中断本帧。
func (l *EnemyLifecycle) ProcessEntityUpdate(id ecs.EntityID, deltaTime float64, playerPos geom.Vec3, hasPlayer bool) {
	pos, hasPos := ecs.GetComponent[*components.PositionComponent](l.em, id)
	if !hasPos {
		log.Printf("[EnemyLifecycle] Warning: enemy %d missing position component, skipped", id)
		return
	}

	if mesh, ok := ecs.GetComponent[*components.MeshComponent](l.em, id); ok {
		// 场景挂接仅发生一次
		if !mesh.Attached {
			mesh.Attached = true
		}

		// 将模拟变换镜像到渲染网格
		mesh.SyncX, mesh.SyncY, mesh.SyncZ = pos.X, pos.Y, pos.Z

		l.updateVariantAnimation(id, mesh, pos, deltaTime)
	}

	l.updateAI(id, pos, playerPos, hasPlayer, deltaTime)

	if health, ok := ecs.GetComponent[*components.HealthComponent](l.em, id); ok {
		health.RegenTick(deltaTime)
	}
}

// updateVariantAnimation 驱动视觉变体的装饰性动画
func (l *EnemyLifecycle) updateVariantAnimation(id ecs.EntityID, mesh *components.MeshComponent, pos *components.PositionComponent, deltaTime float64) {
	switch mesh.Variant {
	case types.VariantElite:
		// 周期性粒子脉冲
		mesh.PulseElapsed += deltaTime
		if mesh.PulseElapsed >= ElitePulseInterval {
			mesh.PulseElapsed = 0
			l.bus.Dispatch(events.Event{Type: events.VFXPulse, Data: events.VFXPayload{
				Position: pos.Vec(),
				Size:     mesh.Radius * 1.5,
			}})
		}
		// 尾迹效果跟随宿主
		if mesh.TrailEffect != 0 && l.em.Exists(mesh.TrailEffect) {
			if trailPos, ok := ecs.GetComponent[*components.PositionComponent](l.em, mesh.TrailEffect); ok {
				trailPos.X, trailPos.Y, trailPos.Z = pos.X, pos.Y, pos.Z
			}
		}

	case types.VariantDamaged:
		// 材质闪烁：按固定周期在明暗相之间切换
		mesh.FlickerElapsed += deltaTime
		if mesh.FlickerElapsed >= DamagedFlickerPeriod {
			mesh.FlickerElapsed = 0
			mesh.FlickerDim = !mesh.FlickerDim
		}
	}
}

// updateAI 螺旋追踪：沿指向玩家的方向前进，垂直平面内正弦摆动
func (l *EnemyLifecycle) updateAI(id ecs.EntityID, pos *components.PositionComponent, playerPos geom.Vec3, hasPlayer bool, deltaTime float64) {
	ai, ok := ecs.GetComponent[*components.AIComponent](l.em, id)
	if !ok || !ai.Enabled {
		return
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](l.em, id)
	if !ok {
		return
	}

	ai.Elapsed += deltaTime

	var dir geom.Vec3
	if hasPlayer {
		dir = playerPos.Sub(pos.Vec()).Normalize()
	}
	if dir.LengthSq() == 0 {
		// 玩家位置不可用或已重合：保持当前朝向漂移
		dir = vel.Vec().Normalize()
	}

	// 垂直于前进方向的侧向基向量（前进方向接近竖直时退化用X轴）
	up := geom.Vec3{Y: 1}
	side := geom.Vec3{
		X: dir.Y*up.Z - dir.Z*up.Y,
		Y: dir.Z*up.X - dir.X*up.Z,
		Z: dir.X*up.Y - dir.Y*up.X,
	}
	if side.LengthSq() < 1e-9 {
		side = geom.Vec3{X: 1}
	}
	side = side.Normalize()

	lateral := ai.SpiralAmplitude * math.Sin(ai.SpiralFrequency*ai.Elapsed+ai.Phase)
	newVel := dir.Scale(ai.Speed).Add(side.Scale(lateral))
	vel.SetVec(newVel)

	// 积分位置
	pos.X += vel.VX * deltaTime
	pos.Y += vel.VY * deltaTime
	pos.Z += vel.VZ * deltaTime
}

// updateEffects 推进效果实体的生命周期计时，到期销毁
func (l *EnemyLifecycle) updateEffects(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.RoleComponent, *components.TimerComponent](l.em) {
		role, _ := ecs.GetComponent[*components.RoleComponent](l.em, id)
		if role.Role != components.RoleEffect {
			continue
		}
		timer, _ := ecs.GetComponent[*components.TimerComponent](l.em, id)
		timer.CurrentTime += deltaTime
		if timer.CurrentTime >= timer.TargetTime {
			timer.IsReady = true
			l.em.DestroyEntity(id)
		}
	}
}
