package systems

import (
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/components"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/game"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/geom"
)

// ResolvePlayerPosition 解析玩家当前位置
//
// 回退链（依次尝试）：
//  1. 游戏状态登记的玩家实体的位置组件
//  2. 世界级查找：遍历角色组件找 RolePlayer 实体
//  3. 外部游戏状态维护的位置快照
//
// 全部失败时返回 false，调用方自行决定保底行为。
func ResolvePlayerPosition(em *ecs.EntityManager, gs *game.GameState) (geom.Vec3, bool) {
	if gs.PlayerEntity != 0 && em.Exists(gs.PlayerEntity) {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, gs.PlayerEntity); ok {
			return pos.Vec(), true
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.RoleComponent, *components.PositionComponent](em) {
		role, _ := ecs.GetComponent[*components.RoleComponent](em, id)
		if role.Role == components.RolePlayer {
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			return pos.Vec(), true
		}
	}

	if gs.HasPlayerPosition {
		return gs.PlayerPosition, true
	}

	return geom.Vec3{}, false
}
