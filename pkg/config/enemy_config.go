package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnemyConfig 敌人生成参数（运行时共享可变记录）
//
// 难度系统每帧重算各字段，spawner 在生成时读取。
// 该记录被多个系统按引用共享——这是刻意的共享可变状态换取
// 每帧性能的取舍，所有写入都发生在同一帧内的同步调用中。
type EnemyConfig struct {
	Health          float64 // 生成敌人的生命值
	Damage          float64 // 敌人弹丸伤害
	Speed           float64 // 追踪速度（世界单位/秒）
	SpiralAmplitude float64 // 螺旋摆动振幅
	SpiralFrequency float64 // 螺旋摆动频率（弧度/秒）
	SpawnInterval   float64 // 生成间隔（秒）
	MaxEnemies      int     // 活跃敌人数量上限
}

// EnemyDefaults 敌人基础参数配置（data/enemy_config.yaml）
//
// 难度系统以这些基础值为起点应用倍率
type EnemyDefaults struct {
	BaseHealth          float64 `yaml:"baseHealth"`          // 基础生命值
	BaseShield          float64 `yaml:"baseShield"`          // 基础护盾值
	ShieldRegenRate     float64 `yaml:"shieldRegenRate"`     // 护盾恢复速率（点/秒）
	ShieldRegenDelay    float64 `yaml:"shieldRegenDelay"`    // 护盾恢复延迟（秒）
	BaseDamage          float64 `yaml:"baseDamage"`          // 基础弹丸伤害
	BaseSpeed           float64 `yaml:"baseSpeed"`           // 基础追踪速度
	BaseSpiralAmplitude float64 `yaml:"baseSpiralAmplitude"` // 基础螺旋振幅
	BaseSpiralFrequency float64 `yaml:"baseSpiralFrequency"` // 基础螺旋频率
	BaseSpawnInterval   float64 `yaml:"baseSpawnInterval"`   // 基础生成间隔（秒）
	BaseMaxEnemies      int     `yaml:"baseMaxEnemies"`      // 基础敌人数量上限
	BaseMeshRadius      float64 `yaml:"baseMeshRadius"`      // 基础网格半径

	PoolSize        int     `yaml:"poolSize"`        // 对象池容量上限
	PoolPreallocate int     `yaml:"poolPreallocate"` // 启动时预分配数量
	SpawnRadius     float64 `yaml:"spawnRadius"`     // 出生点球面半径
	SpawnPointCount int     `yaml:"spawnPointCount"` // 出生点数量
	DroneModel      string  `yaml:"droneModel"`      // 无人机模型资源名称
}

// DefaultEnemyDefaults 返回编码在程序内的默认敌人参数
// 配置文件缺失时的保底值
func DefaultEnemyDefaults() *EnemyDefaults {
	return &EnemyDefaults{
		BaseHealth:          40,
		BaseShield:          10,
		ShieldRegenRate:     2,
		ShieldRegenDelay:    4,
		BaseDamage:          8,
		BaseSpeed:           14,
		BaseSpiralAmplitude: 6,
		BaseSpiralFrequency: 1.5,
		BaseSpawnInterval:   5,
		BaseMaxEnemies:      12,
		BaseMeshRadius:      2,
		PoolSize:            30,
		PoolPreallocate:     10,
		SpawnRadius:         120,
		SpawnPointCount:     16,
		DroneModel:          "spectral_drone",
	}
}

// ToEnemyConfig 从基础参数生成初始运行时记录（倍率为1）
func (d *EnemyDefaults) ToEnemyConfig() *EnemyConfig {
	return &EnemyConfig{
		Health:          d.BaseHealth,
		Damage:          d.BaseDamage,
		Speed:           d.BaseSpeed,
		SpiralAmplitude: d.BaseSpiralAmplitude,
		SpiralFrequency: d.BaseSpiralFrequency,
		SpawnInterval:   d.BaseSpawnInterval,
		MaxEnemies:      d.BaseMaxEnemies,
	}
}

// LoadEnemyDefaults 从 YAML 文件加载敌人基础参数
//
// 文件不存在时返回编码默认值而不报错（保底降级），
// 文件存在但解析或校验失败时返回错误。
func LoadEnemyDefaults(filePath string) (*EnemyDefaults, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultEnemyDefaults(), nil
		}
		return nil, fmt.Errorf("failed to read enemy config file: %w", err)
	}

	defaults := DefaultEnemyDefaults()
	if err := yaml.Unmarshal(data, defaults); err != nil {
		return nil, fmt.Errorf("failed to parse enemy config YAML: %w", err)
	}

	if err := validateEnemyDefaults(defaults); err != nil {
		return nil, fmt.Errorf("invalid enemy config: %w", err)
	}

	return defaults, nil
}

// validateEnemyDefaults 验证配置的有效性
func validateEnemyDefaults(d *EnemyDefaults) error {
	if d.BaseHealth <= 0 {
		return fmt.Errorf("baseHealth must be > 0, got %v", d.BaseHealth)
	}
	if d.BaseSpawnInterval <= 0 {
		return fmt.Errorf("baseSpawnInterval must be > 0, got %v", d.BaseSpawnInterval)
	}
	if d.BaseMaxEnemies <= 0 {
		return fmt.Errorf("baseMaxEnemies must be > 0, got %d", d.BaseMaxEnemies)
	}
	if d.PoolSize <= 0 {
		return fmt.Errorf("poolSize must be > 0, got %d", d.PoolSize)
	}
	if d.PoolPreallocate < 0 || d.PoolPreallocate > d.PoolSize {
		return fmt.Errorf("poolPreallocate must be in [0, poolSize], got %d", d.PoolPreallocate)
	}
	if d.SpawnRadius <= 0 {
		return fmt.Errorf("spawnRadius must be > 0, got %v", d.SpawnRadius)
	}
	if d.SpawnPointCount <= 0 {
		return fmt.Errorf("spawnPointCount must be > 0, got %d", d.SpawnPointCount)
	}
	return nil
}
