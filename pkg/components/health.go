package components

// HealthComponent 存储实体的生命值与护盾信息
// 用于敌人、玩家等可被攻击的实体
//
// 伤害结算顺序：护盾优先吸收，剩余伤害扣除生命值。
// 护盾在一段时间未受击后按速率恢复，生命值不自动恢复。
type HealthComponent struct {
	Health    float64 // 当前生命值
	MaxHealth float64 // 最大生命值
	Shield    float64 // 当前护盾值
	MaxShield float64 // 最大护盾值

	ShieldRegenRate  float64 // 护盾恢复速率（点/秒）
	ShieldRegenDelay float64 // 受击后护盾开始恢复的延迟（秒）
	SinceDamage      float64 // 距上次受击的累计时间（秒）

	Destroyed bool // 是否已被摧毁（生命值归零后置位）
}

// ApplyDamage 对实体结算伤害
//
// 参数:
//
//	amount - 伤害值
//
// 返回:
//
//	shieldAbsorbed - 被护盾吸收的部分
//	healthDamage - 实际扣除生命值的部分
func (h *HealthComponent) ApplyDamage(amount float64) (shieldAbsorbed, healthDamage float64) {
	if amount <= 0 || h.Destroyed {
		return 0, 0
	}

	h.SinceDamage = 0

	// 护盾优先吸收
	if h.Shield > 0 {
		if h.Shield >= amount {
			h.Shield -= amount
			return amount, 0
		}
		shieldAbsorbed = h.Shield
		amount -= h.Shield
		h.Shield = 0
	}

	healthDamage = amount
	h.Health -= amount
	if h.Health <= 0 {
		h.Health = 0
		h.Destroyed = true
	}
	return shieldAbsorbed, healthDamage
}

// RegenTick 推进护盾恢复计时
// 在受击延迟结束后按速率恢复护盾，不超过上限
func (h *HealthComponent) RegenTick(deltaTime float64) {
	if h.Destroyed {
		return
	}
	h.SinceDamage += deltaTime
	if h.SinceDamage < h.ShieldRegenDelay {
		return
	}
	if h.Shield < h.MaxShield {
		h.Shield += h.ShieldRegenRate * deltaTime
		if h.Shield > h.MaxShield {
			h.Shield = h.MaxShield
		}
	}
}
