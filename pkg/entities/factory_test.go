package entities

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/components"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/config"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/ecs"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/game"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/geom"
	"github.com/matthew-kissinger/Asteroid-Miner-sub009/pkg/types"
)

// newFactoryEnv 装配工厂测试所需的依赖
func newFactoryEnv(t *testing.T) (*ecs.EntityManager, *game.ResourceManager, *rand.Rand, *config.EnemyConfig, *config.EnemyDefaults) {
	t.Helper()
	rm, err := game.NewResourceManager(filepath.Join(t.TempDir(), "models.yaml"))
	if err != nil {
		t.Fatalf("NewResourceManager() error: %v", err)
	}
	defaults := config.DefaultEnemyDefaults()
	return ecs.NewEntityManager(), rm, rand.New(rand.NewSource(1)), defaults.ToEnemyConfig(), defaults
}

// TestEquipSpectralDroneRejectsMissingEntity 测试装配不存在的实体返回错误
func TestEquipSpectralDroneRejectsMissingEntity(t *testing.T) {
	em, rm, rng, cfg, defaults := newFactoryEnv(t)

	if err := EquipSpectralDrone(em, rm, rng, 999, cfg, defaults, geom.Vec3{}); err == nil {
		t.Error("EquipSpectralDrone on missing entity: got nil error, want error")
	}
}

// TestEquipSpectralDroneJitterBounds 测试逐个体抖动保持在区间内
func TestEquipSpectralDroneJitterBounds(t *testing.T) {
	em, rm, rng, cfg, defaults := newFactoryEnv(t)

	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		if err := EquipSpectralDrone(em, rm, rng, id, cfg, defaults, geom.Vec3{}); err != nil {
			t.Fatalf("EquipSpectralDrone() error: %v", err)
		}
		ai, _ := ecs.GetComponent[*components.AIComponent](em, id)
		if ai.Speed < cfg.Speed*0.8 || ai.Speed > cfg.Speed*1.2 {
			t.Errorf("speed %v outside [%v, %v]", ai.Speed, cfg.Speed*0.8, cfg.Speed*1.2)
		}
		if ai.SpiralAmplitude < cfg.SpiralAmplitude*0.7 || ai.SpiralAmplitude > cfg.SpiralAmplitude*1.3 {
			t.Errorf("amplitude %v outside [%v, %v]", ai.SpiralAmplitude, cfg.SpiralAmplitude*0.7, cfg.SpiralAmplitude*1.3)
		}
		if ai.SpiralFrequency < cfg.SpiralFrequency*0.7 || ai.SpiralFrequency > cfg.SpiralFrequency*1.3 {
			t.Errorf("frequency %v outside [%v, %v]", ai.SpiralFrequency, cfg.SpiralFrequency*0.7, cfg.SpiralFrequency*1.3)
		}
	}
}

// TestEquipSpectralDronePlaceholderMesh 测试模型缺失时使用占位几何
func TestEquipSpectralDronePlaceholderMesh(t *testing.T) {
	em, rm, rng, cfg, defaults := newFactoryEnv(t)

	id := em.CreateEntity()
	if err := EquipSpectralDrone(em, rm, rng, id, cfg, defaults, geom.Vec3{}); err != nil {
		t.Fatalf("EquipSpectralDrone() error: %v", err)
	}

	mesh, _ := ecs.GetComponent[*components.MeshComponent](em, id)
	if !mesh.Placeholder {
		t.Error("Placeholder: got false, want true (missing registry)")
	}
	if !mesh.Visible {
		t.Error("Visible: got false, want true")
	}
	if mesh.Radius <= 0 {
		t.Errorf("Radius: got %v, want > 0", mesh.Radius)
	}
}

// TestEliteVariantCarriesTrailEffect 测试精英变体携带尾迹效果实体
func TestEliteVariantCarriesTrailEffect(t *testing.T) {
	em, rm, rng, cfg, defaults := newFactoryEnv(t)

	// 多装配一些个体保证至少出现一个精英变体
	eliteSeen := false
	for i := 0; i < 100 && !eliteSeen; i++ {
		id := em.CreateEntity()
		if err := EquipSpectralDrone(em, rm, rng, id, cfg, defaults, geom.Vec3{}); err != nil {
			t.Fatalf("EquipSpectralDrone() error: %v", err)
		}
		mesh, _ := ecs.GetComponent[*components.MeshComponent](em, id)
		if mesh.Variant == types.VariantElite {
			eliteSeen = true
			if mesh.TrailEffect == 0 {
				t.Error("elite variant missing trail effect entity")
			} else if !em.Exists(mesh.TrailEffect) {
				t.Error("trail effect entity does not exist")
			}
		} else if mesh.TrailEffect != 0 {
			t.Error("non-elite variant carries trail effect")
		}
	}
	if !eliteSeen {
		t.Skip("no elite variant in 100 rolls, unlikely but possible")
	}
}

// TestEquipBossScalesStats 测试各Boss类型的数值放大
func TestEquipBossScalesStats(t *testing.T) {
	em, rm, rng, cfg, defaults := newFactoryEnv(t)

	cases := []struct {
		bossType   types.EnemyType
		healthMult float64
	}{
		{types.EnemyBossReaver, 8},
		{types.EnemyBossWraith, 12},
		{types.EnemyBossDreadnought, 25},
	}
	for _, tc := range cases {
		id := em.CreateEntity()
		if err := EquipBoss(em, rm, rng, id, tc.bossType, cfg, defaults, geom.Vec3{}); err != nil {
			t.Fatalf("EquipBoss(%s) error: %v", tc.bossType, err)
		}
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		want := cfg.Health * tc.healthMult
		if health.Health != want {
			t.Errorf("%s health: got %v, want %v", tc.bossType, health.Health, want)
		}
		mesh, _ := ecs.GetComponent[*components.MeshComponent](em, id)
		if mesh.Variant != types.VariantElite {
			t.Errorf("%s variant: got %v, want elite", tc.bossType, mesh.Variant)
		}
	}
}

// TestHitEffectSizing 测试击中效果的尺寸分级
func TestHitEffectSizing(t *testing.T) {
	em := ecs.NewEntityManager()

	normal := NewHitEffectEntity(em, geom.Vec3{}, false, false)
	shield := NewHitEffectEntity(em, geom.Vec3{}, false, true)
	critical := NewHitEffectEntity(em, geom.Vec3{}, true, true)

	normalFx, _ := ecs.GetComponent[*components.HitEffectComponent](em, normal)
	shieldFx, _ := ecs.GetComponent[*components.HitEffectComponent](em, shield)
	criticalFx, _ := ecs.GetComponent[*components.HitEffectComponent](em, critical)

	if normalFx.Size != HitEffectBaseSize {
		t.Errorf("normal size: got %v, want %v", normalFx.Size, HitEffectBaseSize)
	}
	if shieldFx.Size != HitEffectShieldSize {
		t.Errorf("shield size: got %v, want %v", shieldFx.Size, HitEffectShieldSize)
	}
	// 暴击优先于护盾配色
	if criticalFx.Size != HitEffectCriticalSize {
		t.Errorf("critical size: got %v, want %v", criticalFx.Size, HitEffectCriticalSize)
	}

	// 效果实体带生命周期计时
	timer, ok := ecs.GetComponent[*components.TimerComponent](em, normal)
	if !ok {
		t.Fatal("hit effect missing timer component")
	}
	if timer.TargetTime != HitEffectDuration {
		t.Errorf("timer target: got %v, want %v", timer.TargetTime, HitEffectDuration)
	}
}
