package game

import (
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/geom"
)

// DifficultyParams 外部难度源提供的参数快照
type DifficultyParams struct {
	HealthMultiplier float64 // 生命倍率
	DamageMultiplier float64 // 伤害倍率
	SpeedMultiplier  float64 // 速度倍率
	SpawnInterval    float64 // 生成间隔（秒）
	MaxEnemies       int     // 敌人数量上限
}

// DifficultySource 只读难度参数源
// 由关卡/区域系统等外部协作方实现；无尽模式下不使用，
// 难度改由存活时间曲线驱动
type DifficultySource interface {
	Params() DifficultyParams
}

// GameState 存储跨系统共享的全局游戏状态
//
// 通过构造函数显式注入到各系统，而不是全局单例解析，
// 使诊断与碰撞逻辑可以独立测试。
type GameState struct {
	// PlayerEntity 玩家实体ID（0 表示未设置）
	// spawner 解析玩家位置的第一优先级来源
	PlayerEntity ecs.EntityID

	// PlayerPosition 外部维护的玩家位置（保底来源）
	// 当玩家实体不可用时（如过场动画）由外部状态提供
	PlayerPosition    geom.Vec3
	HasPlayerPosition bool // PlayerPosition 是否有效

	// IsDocked 玩家是否处于停靠状态
	// 无尽模式与停靠状态不兼容，激活时会强制解除停靠
	IsDocked bool

	// HordeActive 无尽模式是否激活
	HordeActive bool

	// Difficulty 外部难度源（可为 nil）
	Difficulty DifficultySource
}

// NewGameState 创建游戏状态
func NewGameState() *GameState {
	return &GameState{}
}

// SetPlayerPosition 更新外部维护的玩家位置
func (gs *GameState) SetPlayerPosition(pos geom.Vec3) {
	gs.PlayerPosition = pos
	gs.HasPlayerPosition = true
}
