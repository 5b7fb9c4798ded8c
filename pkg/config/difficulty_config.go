package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DifficultyConfig 难度曲线参数配置（data/difficulty.yaml）
//
// 两阶段曲线：前 LinearPhaseSeconds 秒内数量上限与生成速率线性增长，
// 之后转为乘法增长，数量上限始终钳制在 HardMaxEnemies。
// 生命/伤害/速度倍率与存活分钟数线性相关。
type DifficultyConfig struct {
	LinearPhaseSeconds float64 `yaml:"linearPhaseSeconds"` // 线性阶段时长（秒）

	// 线性阶段
	MaxEnemiesPerMinute    float64 `yaml:"maxEnemiesPerMinute"`    // 每分钟增加的数量上限
	IntervalDecayPerMinute float64 `yaml:"intervalDecayPerMinute"` // 每分钟缩短的生成间隔（秒）

	// 乘法阶段
	GrowthRatePerMinute float64 `yaml:"growthRatePerMinute"` // 线性阶段结束后每分钟的乘法增速（如0.15表示+15%/分钟）

	// 钳制
	HardMaxEnemies   int     `yaml:"hardMaxEnemies"`   // 数量上限的硬钳制
	MinSpawnInterval float64 `yaml:"minSpawnInterval"` // 生成间隔下限（秒）

	// 属性倍率（每存活分钟的线性增量）
	HealthPerMinute float64 `yaml:"healthPerMinute"` // 生命倍率增量/分钟
	DamagePerMinute float64 `yaml:"damagePerMinute"` // 伤害倍率增量/分钟
	SpeedPerMinute  float64 `yaml:"speedPerMinute"`  // 速度倍率增量/分钟
}

// DefaultDifficultyConfig 返回编码在程序内的默认难度曲线
func DefaultDifficultyConfig() *DifficultyConfig {
	return &DifficultyConfig{
		LinearPhaseSeconds:     300, // 5分钟
		MaxEnemiesPerMinute:    2,
		IntervalDecayPerMinute: 0.5,
		GrowthRatePerMinute:    0.15,
		HardMaxEnemies:         40,
		MinSpawnInterval:       1.0,
		HealthPerMinute:        0.10,
		DamagePerMinute:        0.08,
		SpeedPerMinute:         0.05,
	}
}

// LoadDifficultyConfig 从 YAML 文件加载难度曲线配置
// 文件不存在时返回编码默认值
func LoadDifficultyConfig(filePath string) (*DifficultyConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultDifficultyConfig(), nil
		}
		return nil, fmt.Errorf("failed to read difficulty config file: %w", err)
	}

	cfg := DefaultDifficultyConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse difficulty config YAML: %w", err)
	}

	if err := validateDifficultyConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid difficulty config: %w", err)
	}

	return cfg, nil
}

// validateDifficultyConfig 验证配置的有效性
func validateDifficultyConfig(c *DifficultyConfig) error {
	if c.LinearPhaseSeconds <= 0 {
		return fmt.Errorf("linearPhaseSeconds must be > 0, got %v", c.LinearPhaseSeconds)
	}
	if c.HardMaxEnemies <= 0 {
		return fmt.Errorf("hardMaxEnemies must be > 0, got %d", c.HardMaxEnemies)
	}
	if c.MinSpawnInterval <= 0 {
		return fmt.Errorf("minSpawnInterval must be > 0, got %v", c.MinSpawnInterval)
	}
	if c.GrowthRatePerMinute < 0 {
		return fmt.Errorf("growthRatePerMinute must be >= 0, got %v", c.GrowthRatePerMinute)
	}
	return nil
}
