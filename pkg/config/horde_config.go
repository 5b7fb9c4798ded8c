package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HordeConfig 无尽模式参数配置（data/horde.yaml）
type HordeConfig struct {
	PointsPerKill int `yaml:"pointsPerKill"` // 每击杀得分
	PointsPerWave int `yaml:"pointsPerWave"` // 每通过一波的额外得分

	BaseEnemiesPerWave   int     `yaml:"baseEnemiesPerWave"`   // 第1波敌人数量
	EnemiesPerWaveGrowth int     `yaml:"enemiesPerWaveGrowth"` // 每波递增的敌人数量
	HealthStepPerWave    float64 `yaml:"healthStepPerWave"`    // 每波生命倍率增量
	SpeedStepPerWave     float64 `yaml:"speedStepPerWave"`     // 每波速度倍率增量
}

// DefaultHordeConfig 返回编码在程序内的默认无尽模式参数
func DefaultHordeConfig() *HordeConfig {
	return &HordeConfig{
		PointsPerKill:        10,
		PointsPerWave:        100,
		BaseEnemiesPerWave:   5,
		EnemiesPerWaveGrowth: 2,
		HealthStepPerWave:    0.08,
		SpeedStepPerWave:     0.04,
	}
}

// EnemiesInWave 计算指定波次的敌人数量
// 随波次号严格单调递增
func (c *HordeConfig) EnemiesInWave(wave int) int {
	if wave < 1 {
		wave = 1
	}
	return c.BaseEnemiesPerWave + (wave-1)*c.EnemiesPerWaveGrowth
}

// HealthMultiplier 计算指定波次的生命倍率
func (c *HordeConfig) HealthMultiplier(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	return 1 + float64(wave-1)*c.HealthStepPerWave
}

// SpeedMultiplier 计算指定波次的速度倍率
func (c *HordeConfig) SpeedMultiplier(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	return 1 + float64(wave-1)*c.SpeedStepPerWave
}

// LoadHordeConfig 从 YAML 文件加载无尽模式配置
// 文件不存在时返回编码默认值
func LoadHordeConfig(filePath string) (*HordeConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultHordeConfig(), nil
		}
		return nil, fmt.Errorf("failed to read horde config file: %w", err)
	}

	cfg := DefaultHordeConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse horde config YAML: %w", err)
	}

	if err := validateHordeConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid horde config: %w", err)
	}

	return cfg, nil
}

// validateHordeConfig 验证配置的有效性
func validateHordeConfig(c *HordeConfig) error {
	if c.PointsPerKill < 0 {
		return fmt.Errorf("pointsPerKill must be >= 0, got %d", c.PointsPerKill)
	}
	if c.PointsPerWave < 0 {
		return fmt.Errorf("pointsPerWave must be >= 0, got %d", c.PointsPerWave)
	}
	if c.BaseEnemiesPerWave <= 0 {
		return fmt.Errorf("baseEnemiesPerWave must be > 0, got %d", c.BaseEnemiesPerWave)
	}
	if c.EnemiesPerWaveGrowth < 1 {
		return fmt.Errorf("enemiesPerWaveGrowth must be >= 1, got %d", c.EnemiesPerWaveGrowth)
	}
	return nil
}
