package components

import "github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/geom"

// VelocityComponent 存储实体的线速度和角速度
// 线速度单位：世界单位/秒；角速度单位：弧度/秒
type VelocityComponent struct {
	VX float64 // 线速度X
	VY float64 // 线速度Y
	VZ float64 // 线速度Z

	AngularX float64 // 角速度X（滚转）
	AngularY float64 // 角速度Y（偏航）
	AngularZ float64 // 角速度Z（俯仰）
}

// Vec 返回线速度的向量形式
func (v *VelocityComponent) Vec() geom.Vec3 {
	return geom.Vec3{X: v.VX, Y: v.VY, Z: v.VZ}
}

// SetVec 从向量设置线速度
func (v *VelocityComponent) SetVec(vec geom.Vec3) {
	v.VX, v.VY, v.VZ = vec.X, vec.Y, vec.Z
}

// Zero 将线速度和角速度全部清零
func (v *VelocityComponent) Zero() {
	v.VX, v.VY, v.VZ = 0, 0, 0
	v.AngularX, v.AngularY, v.AngularZ = 0, 0, 0
}

// Speed 返回线速度大小
func (v *VelocityComponent) Speed() float64 {
	return v.Vec().Length()
}
