package game

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// ModelSpec 模型资源的几何描述
//
// 渲染资源本身由外部渲染器持有，本子系统只需要
// 碰撞与占位所需的几何尺寸信息。
type ModelSpec struct {
	Shape string  `yaml:"shape"` // "sphere" 或 "box"
	// 球形参数
	Radius float64 `yaml:"radius"`
	// 盒形参数（各轴半长）
	HalfX float64 `yaml:"halfX"`
	HalfY float64 `yaml:"halfY"`
	HalfZ float64 `yaml:"halfZ"`
}

// modelRegistry 模型注册表文件结构（data/models.yaml）
type modelRegistry struct {
	Models map[string]ModelSpec `yaml:"models"`
}

// ResourceManager 模型资源管理器
//
// 职责：
//   - 从注册表解析模型名称到几何描述
//   - 模型缺失时提供程序生成的占位几何（占位不阻塞生成流程）
type ResourceManager struct {
	models map[string]ModelSpec
}

// NewResourceManager 创建资源管理器
//
// 参数：
//   - registryPath: 模型注册表文件路径，文件不存在时注册表为空
//     （所有模型都会退化为占位几何）
func NewResourceManager(registryPath string) (*ResourceManager, error) {
	rm := &ResourceManager{
		models: make(map[string]ModelSpec),
	}

	data, err := os.ReadFile(registryPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[ResourceManager] Warning: model registry %s not found, using placeholders", registryPath)
			return rm, nil
		}
		return nil, fmt.Errorf("failed to read model registry: %w", err)
	}

	var reg modelRegistry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse model registry YAML: %w", err)
	}

	for name, spec := range reg.Models {
		if spec.Shape != "sphere" && spec.Shape != "box" {
			return nil, fmt.Errorf("model %q has invalid shape %q", name, spec.Shape)
		}
		rm.models[name] = spec
	}

	return rm, nil
}

// LoadModel 按名称解析模型几何
//
// 返回:
//
//	模型几何描述和是否为注册表内的真实模型。
//	模型缺失时返回占位几何和 false——生成流程永不因资源失败而阻塞。
func (rm *ResourceManager) LoadModel(name string, fallbackRadius float64) (ModelSpec, bool) {
	if spec, ok := rm.models[name]; ok {
		return spec, true
	}
	log.Printf("[ResourceManager] Model %q not found, generating placeholder mesh", name)
	return PlaceholderModel(fallbackRadius), false
}

// PlaceholderModel 程序生成的占位几何
// 半径来自配置的基础网格半径，保证碰撞行为与真实模型接近
func PlaceholderModel(radius float64) ModelSpec {
	if radius <= 0 {
		radius = 1
	}
	return ModelSpec{
		Shape:  "sphere",
		Radius: radius,
	}
}
