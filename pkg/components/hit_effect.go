package components

// HitEffectComponent 击中效果的视觉参数
//
// 效果实体从对象池外独立创建，由 TimerComponent 控制消失。
// 尺寸与配色由命中结算结果决定：护盾吸收呈蓝色调、
// 高伤害暴击呈更大更亮的效果。
type HitEffectComponent struct {
	Size           float64 // 效果尺寸（世界单位）
	Critical       bool    // 是否为高伤害暴击效果
	ShieldAbsorbed bool    // 伤害是否主要被护盾吸收
}
