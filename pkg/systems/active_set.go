package systems

import "github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"

// ActiveEnemySet 活跃敌人集合
//
// 保序集合：遍历顺序即插入顺序，数量上限裁汰时
// 最早插入的敌人最先被销毁（FIFO）。
// 集合由生命周期系统拥有，但按引用传入 spawner、碰撞等
// 兄弟系统直接修改——共享可变状态换取每帧性能，
// 一致性风险由诊断例程兜底。
type ActiveEnemySet struct {
	ids   []ecs.EntityID
	index map[ecs.EntityID]struct{}
}

// NewActiveEnemySet 创建空集合
func NewActiveEnemySet() *ActiveEnemySet {
	return &ActiveEnemySet{
		ids:   make([]ecs.EntityID, 0),
		index: make(map[ecs.EntityID]struct{}),
	}
}

// Add 加入实体ID，已存在时不重复加入
func (s *ActiveEnemySet) Add(id ecs.EntityID) {
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
}

// Remove 移除实体ID
func (s *ActiveEnemySet) Remove(id ecs.EntityID) {
	if _, ok := s.index[id]; !ok {
		return
	}
	delete(s.index, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
}

// Contains 检查实体ID是否在集合中
func (s *ActiveEnemySet) Contains(id ecs.EntityID) bool {
	_, ok := s.index[id]
	return ok
}

// Len 返回集合大小
func (s *ActiveEnemySet) Len() int {
	return len(s.ids)
}

// IDs 返回按插入顺序排列的ID切片副本
// 返回副本以便调用方在遍历中安全地修改集合
func (s *ActiveEnemySet) IDs() []ecs.EntityID {
	out := make([]ecs.EntityID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Oldest 返回最早插入的实体ID
// 集合为空时返回 0 和 false
func (s *ActiveEnemySet) Oldest() (ecs.EntityID, bool) {
	if len(s.ids) == 0 {
		return 0, false
	}
	return s.ids[0], true
}
