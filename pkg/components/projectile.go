package components

// ProjectileComponent 存储弹丸的伤害元数据
//
// 弹丸实体由武器系统创建并持有生命周期；
// 碰撞系统只读取元数据、结算命中并销毁命中的弹丸。
type ProjectileComponent struct {
	Damage    float64 // 伤害值，<= 0 时碰撞系统使用默认伤害
	FromEnemy bool    // 是否为敌方弹丸（决定命中目标的阵营）
}
