// Package types 定义共享的基础类型
package types

// EnemyType 定义敌人的类型
type EnemyType int

const (
	// EnemyUnknown 未知敌人类型
	EnemyUnknown EnemyType = iota

	// EnemySpectralDrone 幽灵无人机：标准追踪敌人，螺旋轨迹接近玩家
	EnemySpectralDrone

	// Boss（波次里程碑触发）
	EnemyBossReaver      // 掠夺者：第 5/15/25... 波（%5 且非 %10）
	EnemyBossWraith      // 幽魂：第 7/14/21... 波（%7 且非 %10）
	EnemyBossDreadnought // 无畏舰：第 10/20/30... 波（%10）
)

// enemyTypeStringMap 敌人类型到配置字符串的映射
var enemyTypeStringMap = map[EnemyType]string{
	EnemySpectralDrone:   "spectral_drone",
	EnemyBossReaver:      "boss_reaver",
	EnemyBossWraith:      "boss_wraith",
	EnemyBossDreadnought: "boss_dreadnought",
}

// stringToEnemyTypeMap 配置字符串到敌人类型的反向映射
var stringToEnemyTypeMap map[string]EnemyType

func init() {
	stringToEnemyTypeMap = make(map[string]EnemyType)
	for et, s := range enemyTypeStringMap {
		stringToEnemyTypeMap[s] = et
	}
}

// String 返回敌人类型的配置字符串表示（用于配置文件和事件负载）
func (e EnemyType) String() string {
	if s, ok := enemyTypeStringMap[e]; ok {
		return s
	}
	return "unknown"
}

// EnemyTypeFromString 将配置字符串转换为 EnemyType
func EnemyTypeFromString(s string) EnemyType {
	if et, ok := stringToEnemyTypeMap[s]; ok {
		return et
	}
	return EnemyUnknown
}

// IsBoss 判断是否为 Boss 类型
func (e EnemyType) IsBoss() bool {
	switch e {
	case EnemyBossReaver, EnemyBossWraith, EnemyBossDreadnought:
		return true
	default:
		return false
	}
}

// MeshVariant 定义敌人的视觉变体
// 变体仅影响外观表现（粒子脉冲、材质闪烁），不影响战斗数值
type MeshVariant int

const (
	// VariantStandard 标准外观
	VariantStandard MeshVariant = iota
	// VariantElite 精英外观：周期性发出粒子脉冲
	VariantElite
	// VariantDamaged 破损外观：材质间歇闪烁
	VariantDamaged
)
