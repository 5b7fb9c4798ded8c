package components

import (
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/types"
)

// MeshShape 渲染几何体的形状类别
// 碰撞系统据此选择射线求交算法（不规则轮廓用包围盒近似）
type MeshShape int

const (
	// ShapeSphere 球形包围几何
	ShapeSphere MeshShape = iota
	// ShapeBox 盒形包围几何
	ShapeBox
)

// MeshComponent 存储实体的渲染几何信息
//
// 渲染本身由外部渲染器负责，本子系统只维护几何数据：
// 碰撞系统对可见几何做射线求交，生命周期系统把实体变换
// 镜像到 SyncX/Y/Z（渲染网格跟随模拟位置）。
type MeshComponent struct {
	Visible  bool // 是否可见（隐藏的几何不参与碰撞）
	Attached bool // 是否已挂接到场景图（仅挂接一次）

	Shape MeshShape // 几何形状
	// 球形参数
	Radius float64 // 包围球半径
	// 盒形参数（各轴半长）
	HalfX float64
	HalfY float64
	HalfZ float64

	Variant     types.MeshVariant // 视觉变体（标准/精英/破损）
	Placeholder bool              // 是否为程序生成的占位几何（模型加载失败时）
	ModelName   string            // 模型资源名称

	// TrailEffect 附属视觉效果实体ID（0表示无）
	// 精英变体携带尾迹效果实体，回收入池时由池负责分离销毁
	TrailEffect ecs.EntityID

	// 渲染网格的同步位置（每帧从 PositionComponent 镜像）
	SyncX float64
	SyncY float64
	SyncZ float64

	// 视觉变体动画状态
	PulseElapsed   float64 // 精英变体：距上次粒子脉冲的累计时间（秒）
	FlickerElapsed float64 // 破损变体：材质闪烁计时（秒）
	FlickerDim     bool    // 破损变体：当前是否处于暗化相（渲染器提示，不影响碰撞）
}
