package systems

import (
	"log"
	"math/rand"

	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/components"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
)

// EntityPool 敌人实体对象池
//
// 职责：
//   - 回收利用敌人实体，避免高频创建/销毁的分配开销
//   - 维护池化/活跃的互斥不变量：池中实体必须为 RolePooled，
//     绝不出现在活跃敌人集合中
//   - RunDiagnostics 检测并就地修复兄弟系统共享修改
//     造成的成员关系漂移
//
// 池列表按引用共享给 spawner 等系统，所有修改都发生在
// 同一帧内的同步调用中。
type EntityPool struct {
	em      *ecs.EntityManager
	rng     *rand.Rand
	maxSize int
	pool    []ecs.EntityID
}

// NewEntityPool 创建对象池
//
// 参数：
//   - em: 实体管理器
//   - rng: 随机数生成器（Acquire 重置AI相位用）
//   - maxSize: 池容量上限，超出的实体在 Release 时永久销毁
func NewEntityPool(em *ecs.EntityManager, rng *rand.Rand, maxSize int) *EntityPool {
	if maxSize < 1 {
		maxSize = 1
	}
	return &EntityPool{
		em:      em,
		rng:     rng,
		maxSize: maxSize,
		pool:    make([]ecs.EntityID, 0, maxSize),
	}
}

// Size 返回当前池中实体数量
func (p *EntityPool) Size() int {
	return len(p.pool)
}

// MaxSize 返回池容量上限
func (p *EntityPool) MaxSize() int {
	return p.maxSize
}

// Preallocate 预分配 n 个池化实体
// 实体仅携带最小组件集且标记为 RolePooled
func (p *EntityPool) Preallocate(n int) {
	for i := 0; i < n && len(p.pool) < p.maxSize; i++ {
		id := p.newPooledEntity()
		p.pool = append(p.pool, id)
	}
	log.Printf("[EntityPool] Preallocated %d entities (pool size %d/%d)", n, len(p.pool), p.maxSize)
}

// newPooledEntity 创建一个带最小组件集的池化实体
func (p *EntityPool) newPooledEntity() ecs.EntityID {
	id := p.em.CreateEntity()
	ecs.AddComponent(p.em, id, &components.RoleComponent{Role: components.RolePooled})
	ecs.AddComponent(p.em, id, &components.PositionComponent{})
	ecs.AddComponent(p.em, id, &components.VelocityComponent{})
	ecs.AddComponent(p.em, id, &components.HealthComponent{Destroyed: true})
	ecs.AddComponent(p.em, id, &components.MeshComponent{Visible: false, Placeholder: true})
	return id
}

// Acquire 从池中取出一个实体
//
// 取出的实体角色被清除（无角色状态），AI计时器重置并
// 随机重置相位，由调用方重新装配并赋予角色。
// 池为空时构造新实体——Acquire 永不失败。
func (p *EntityPool) Acquire() ecs.EntityID {
	var id ecs.EntityID
	if len(p.pool) > 0 {
		id = p.pool[len(p.pool)-1]
		p.pool = p.pool[:len(p.pool)-1]
		if !p.em.Exists(id) {
			// 池中残留了已销毁的实体，构造新实体补位
			log.Printf("[EntityPool] Warning: pooled entity %d no longer exists, constructing new", id)
			id = p.newPooledEntity()
		}
	} else {
		id = p.newPooledEntity()
	}

	// 清除角色：取出的实体处于无角色状态，由调用方赋予
	ecs.RemoveComponent[*components.RoleComponent](p.em, id)

	// 重置AI计时器并随机重置相位，避免复用实体的轨迹同步
	if ai, ok := ecs.GetComponent[*components.AIComponent](p.em, id); ok {
		ai.Elapsed = 0
		ai.Phase = p.rng.Float64() * 2 * 3.141592653589793
		ai.Enabled = false
	}
	// 清除残留的冻结标记
	ecs.RemoveComponent[*components.FrozenComponent](p.em, id)

	return id
}

// Release 将实体回收入池
//
// 回收动作：分离并销毁附属视觉效果、速度清零、生命标记为已摧毁、
// 隐藏网格、标记 RolePooled。池已满时实体被永久销毁。
func (p *EntityPool) Release(id ecs.EntityID) {
	if !p.em.Exists(id) {
		return
	}

	// 分离附属视觉效果并销毁其资源实体
	if mesh, ok := ecs.GetComponent[*components.MeshComponent](p.em, id); ok {
		if mesh.TrailEffect != 0 {
			if p.em.Exists(mesh.TrailEffect) {
				p.em.DestroyEntity(mesh.TrailEffect)
			}
			mesh.TrailEffect = 0
		}
		mesh.Visible = false
		mesh.Attached = false
		mesh.PulseElapsed = 0
		mesh.FlickerElapsed = 0
	}

	// 速度清零
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](p.em, id); ok {
		vel.Zero()
	}

	// 生命标记为已摧毁
	if health, ok := ecs.GetComponent[*components.HealthComponent](p.em, id); ok {
		health.Health = 0
		health.Shield = 0
		health.Destroyed = true
	}

	// 清除冻结标记
	ecs.RemoveComponent[*components.FrozenComponent](p.em, id)

	// 池满时永久销毁
	if len(p.pool) >= p.maxSize {
		p.em.DestroyEntity(id)
		return
	}

	// 标记池化并入池
	if role, ok := ecs.GetComponent[*components.RoleComponent](p.em, id); ok {
		role.Role = components.RolePooled
	} else {
		ecs.AddComponent(p.em, id, &components.RoleComponent{Role: components.RolePooled})
	}
	p.pool = append(p.pool, id)
}

// RunDiagnostics 扫描并就地修复池与活跃敌人集合的不变量违例
//
// 检测并修复四类违例：
//  1. 池中的重复条目（去重）
//  2. 同时出现在池和活跃集合中的实体（从活跃集合移除）
//  3. 池中实体缺失 RolePooled 角色（补标记）
//  4. 活跃集合中被标记为 RolePooled 但不在池中的实体（恢复 RoleEnemy）
//
// 幂等且不抛异常：连续两次调用且期间无修改时，第二次返回0。
//
// 返回：
//
//	修复次数
func (p *EntityPool) RunDiagnostics(activeSet *ActiveEnemySet) int {
	fixes := 0

	// 1. 去重 + 清理已不存在的池条目
	seen := make(map[ecs.EntityID]struct{}, len(p.pool))
	deduped := p.pool[:0]
	for _, id := range p.pool {
		if _, dup := seen[id]; dup {
			log.Printf("[EntityPool] Diagnostics: removed duplicate pool entry %d", id)
			fixes++
			continue
		}
		if !p.em.Exists(id) {
			log.Printf("[EntityPool] Diagnostics: removed dead pool entry %d", id)
			fixes++
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}
	p.pool = deduped

	for _, id := range p.pool {
		// 2. 池与活跃集合的交集：实体物理上在池中，活跃条目是脏数据
		if activeSet != nil && activeSet.Contains(id) {
			activeSet.Remove(id)
			log.Printf("[EntityPool] Diagnostics: entity %d was in both pool and active set, removed from active set", id)
			fixes++
		}

		// 3. 池中实体必须为 RolePooled
		role, ok := ecs.GetComponent[*components.RoleComponent](p.em, id)
		if !ok {
			ecs.AddComponent(p.em, id, &components.RoleComponent{Role: components.RolePooled})
			log.Printf("[EntityPool] Diagnostics: pool entity %d was missing role, re-tagged pooled", id)
			fixes++
		} else if role.Role != components.RolePooled {
			prev := role.Role
			role.Role = components.RolePooled
			log.Printf("[EntityPool] Diagnostics: pool entity %d had role %s, re-tagged pooled", id, prev)
			fixes++
		}
	}

	// 4. 活跃集合中被标记为池化但不在池中的实体：池化标记是脏数据
	if activeSet != nil {
		for _, id := range activeSet.IDs() {
			if _, inPool := seen[id]; inPool {
				continue // 第2类已处理
			}
			if !p.em.Exists(id) {
				continue // 悬空引用由 ValidateEnemyReferences 负责
			}
			if role, ok := ecs.GetComponent[*components.RoleComponent](p.em, id); ok && role.Role == components.RolePooled {
				role.Role = components.RoleEnemy
				log.Printf("[EntityPool] Diagnostics: active entity %d had stale pooled role, restored enemy role", id)
				fixes++
			}
		}
	}

	if fixes > 0 {
		log.Printf("[EntityPool] Diagnostics completed: %d fixes applied", fixes)
	}
	return fixes
}
