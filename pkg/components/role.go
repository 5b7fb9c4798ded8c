package components

// Role 定义实体在世界中的唯一权威角色
//
// 取代字符串标签 + 派生布尔缓存的双源方案：
// 角色检查是单一字段比较，不存在两份真相需要对账。
// 诊断逻辑因此只需修复集合成员关系（对象池列表、活跃敌人集合）
// 与角色字段之间的漂移。
type Role int

const (
	// RoleNone 未分配角色（刚从对象池取出、尚未装配的实体）
	RoleNone Role = iota
	// RolePooled 实体处于对象池中，不参与模拟
	RolePooled
	// RoleEnemy 活跃敌人，必须同时存在于活跃敌人集合中
	RoleEnemy
	// RolePlayer 玩家实体
	RolePlayer
	// RoleProjectile 弹丸实体（由武器系统创建，本子系统只读并销毁）
	RoleProjectile
	// RoleEffect 视觉效果实体（击中水花、爆炸等，短生命周期）
	RoleEffect
)

// String 返回角色的可读名称（日志用）
func (r Role) String() string {
	switch r {
	case RolePooled:
		return "pooled"
	case RoleEnemy:
		return "enemy"
	case RolePlayer:
		return "player"
	case RoleProjectile:
		return "projectile"
	case RoleEffect:
		return "effect"
	default:
		return "none"
	}
}

// RoleComponent 存储实体的权威角色
type RoleComponent struct {
	Role Role
}
