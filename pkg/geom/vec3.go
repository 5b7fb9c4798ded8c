package geom

import "math"

// Vec3 三维向量（世界坐标，单位与游戏世界一致）
type Vec3 struct {
	X, Y, Z float64
}

// Add 向量加法
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub 向量减法
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale 向量数乘
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot 点积
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length 向量长度
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// LengthSq 向量长度的平方（避免开方的快速比较用）
func (v Vec3) LengthSq() float64 {
	return v.Dot(v)
}

// Normalize 归一化为单位向量
// 零向量归一化返回零向量，不产生 NaN
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Distance 两点间距离
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// SpherePoint 计算以 center 为球心、radius 为半径的球面上一点
//
// 使用反余弦纬度采样保证球面上的面积均匀分布：
//   - u, v 为 [0,1) 区间的均匀随机数
//   - theta = acos(2u - 1) 为极角（纬度方向）
//   - phi = 2*pi*v 为方位角（经度方向）
//
// 若直接对纬度均匀采样，两极附近的点会过密
func SpherePoint(center Vec3, radius, u, v float64) Vec3 {
	theta := math.Acos(2*u - 1)
	phi := 2 * math.Pi * v
	sinTheta := math.Sin(theta)
	return Vec3{
		X: center.X + radius*sinTheta*math.Cos(phi),
		Y: center.Y + radius*math.Cos(theta),
		Z: center.Z + radius*sinTheta*math.Sin(phi),
	}
}

// RingPoint 计算以原点为圆心、radius 为半径的水平圆环上一点
// 用于玩家位置无法解析时的保底出生点
func RingPoint(radius float64, index, total int) Vec3 {
	angle := 2 * math.Pi * float64(index) / float64(total)
	return Vec3{
		X: radius * math.Cos(angle),
		Y: 0,
		Z: radius * math.Sin(angle),
	}
}
