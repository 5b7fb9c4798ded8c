package components

// FrozenComponent 冻结标记组件
//
// 组件存在即表示实体被冻结（过场动画、停靠期间）。
// 冻结前的AI启用状态保存在此处，解冻时恢复而不是无条件重新启用，
// 避免把本就被禁用的AI错误地打开。
type FrozenComponent struct {
	PrevAIEnabled bool // 冻结前 AIComponent.Enabled 的值
}
