package components

// AIComponent 存储敌人AI的运动参数与状态
//
// 幽灵无人机以螺旋轨迹追踪玩家：沿指向玩家的方向前进，
// 同时在垂直于前进方向的平面内做正弦摆动。
// Phase 在每次从对象池取出时随机重置，避免复用实体的轨迹同步。
type AIComponent struct {
	Enabled bool // AI是否启用（冻结时关闭）

	Speed           float64 // 追踪速度（世界单位/秒）
	SpiralAmplitude float64 // 螺旋摆动振幅（世界单位）
	SpiralFrequency float64 // 螺旋摆动频率（弧度/秒）
	Phase           float64 // 螺旋相位偏移（弧度），取出时随机重置
	Elapsed         float64 // 自激活以来的累计时间（秒）
}
