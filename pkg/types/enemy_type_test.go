package types

import "testing"

// TestEnemyTypeStringRoundtrip 测试类型与配置字符串的往返转换
func TestEnemyTypeStringRoundtrip(t *testing.T) {
	for _, et := range []EnemyType{
		EnemySpectralDrone, EnemyBossReaver, EnemyBossWraith, EnemyBossDreadnought,
	} {
		if got := EnemyTypeFromString(et.String()); got != et {
			t.Errorf("roundtrip %s: got %v, want %v", et.String(), got, et)
		}
	}
}

// TestEnemyTypeFromStringUnknown 测试未知字符串返回 EnemyUnknown
func TestEnemyTypeFromStringUnknown(t *testing.T) {
	if got := EnemyTypeFromString("not_a_type"); got != EnemyUnknown {
		t.Errorf("EnemyTypeFromString: got %v, want EnemyUnknown", got)
	}
	if got := EnemyUnknown.String(); got != "unknown" {
		t.Errorf("EnemyUnknown.String(): got %q, want \"unknown\"", got)
	}
}

// TestIsBoss 测试Boss类型判定
func TestIsBoss(t *testing.T) {
	if EnemySpectralDrone.IsBoss() {
		t.Error("EnemySpectralDrone.IsBoss(): got true, want false")
	}
	for _, boss := range []EnemyType{EnemyBossReaver, EnemyBossWraith, EnemyBossDreadnought} {
		if !boss.IsBoss() {
			t.Errorf("%s.IsBoss(): got false, want true", boss)
		}
	}
}
