package components

import "github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/geom"

// PositionComponent 存储实体的世界坐标位置
type PositionComponent struct {
	X float64 // 世界坐标X
	Y float64 // 世界坐标Y
	Z float64 // 世界坐标Z
}

// Vec 返回位置的向量形式
func (p *PositionComponent) Vec() geom.Vec3 {
	return geom.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// SetVec 从向量设置位置
func (p *PositionComponent) SetVec(v geom.Vec3) {
	p.X, p.Y, p.Z = v.X, v.Y, v.Z
}
