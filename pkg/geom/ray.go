package geom

import "math"

// Ray 射线：从 Origin 出发沿单位方向 Dir 延伸
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// NewRay 创建射线，方向自动归一化
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// At 返回射线上距离起点 t 处的点
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// IntersectSphere 射线与球体求交
//
// 返回最近交点的距离 t（t >= 0）和是否相交。
// 射线起点在球体内部时返回穿出点的距离。
func (r Ray) IntersectSphere(center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	// 方向为单位向量，二次项系数为1
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sqrtDisc := math.Sqrt(disc)
	t := -b - sqrtDisc
	if t < 0 {
		// 起点在球内，取穿出点
		t = -b + sqrtDisc
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectBox 射线与轴对齐包围盒求交（slab 算法）
//
// 参数:
//
//	center - 盒子中心
//	halfX, halfY, halfZ - 各轴半长
//
// 返回最近交点的距离 t（t >= 0）和是否相交
func (r Ray) IntersectBox(center Vec3, halfX, halfY, halfZ float64) (float64, bool) {
	mins := [3]float64{center.X - halfX, center.Y - halfY, center.Z - halfZ}
	maxs := [3]float64{center.X + halfX, center.Y + halfY, center.Z + halfZ}
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}

	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			// 平行于该轴的 slab：起点必须位于区间内
			if origin[i] < mins[i] || origin[i] > maxs[i] {
				return 0, false
			}
			continue
		}
		t1 := (mins[i] - origin[i]) / dir[i]
		t2 := (maxs[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		// 起点在盒内，取穿出点
		return tMax, true
	}
	return tMin, true
}
