package ecs

import (
	"testing"
)

// 测试用组件
type testPosition struct {
	X, Y float64
}

type testTag struct {
	Name string
}

// TestCreateEntityNeverReusesIDs 测试实体ID单调递增且永不复用
func TestCreateEntityNeverReusesIDs(t *testing.T) {
	em := NewEntityManager()

	first := em.CreateEntity()
	second := em.CreateEntity()

	if first == 0 {
		t.Error("CreateEntity() returned 0, want non-zero ID")
	}
	if second <= first {
		t.Errorf("IDs not monotonic: first=%d, second=%d", first, second)
	}

	// 销毁后新建的实体不得复用旧ID
	em.DestroyEntity(first)
	em.RemoveMarkedEntities()

	third := em.CreateEntity()
	if third == first {
		t.Errorf("destroyed ID %d was reused", first)
	}
	if third <= second {
		t.Errorf("IDs not monotonic after destroy: second=%d, third=%d", second, third)
	}
}

// TestDestroyEntityIsDeferred 测试销毁是延迟的
func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)

	// 提交前实体仍然存在
	if !em.Exists(id) {
		t.Error("entity removed before RemoveMarkedEntities()")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("entity still exists after RemoveMarkedEntities()")
	}
}

// TestGenericComponentHelpers 测试泛型组件辅助函数
func TestGenericComponentHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPosition{X: 3, Y: 4})

	if !HasComponent[*testPosition](em, id) {
		t.Fatal("HasComponent: got false, want true")
	}

	pos, ok := GetComponent[*testPosition](em, id)
	if !ok {
		t.Fatal("GetComponent: got ok=false, want true")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("GetComponent: got (%v, %v), want (3, 4)", pos.X, pos.Y)
	}

	// 取到的是引用，修改应反映到存储
	pos.X = 7
	again, _ := GetComponent[*testPosition](em, id)
	if again.X != 7 {
		t.Errorf("component not shared by reference: got X=%v, want 7", again.X)
	}

	RemoveComponent[*testPosition](em, id)
	if HasComponent[*testPosition](em, id) {
		t.Error("HasComponent after remove: got true, want false")
	}
}

// TestGetEntitiesWithQueries 测试组件组合查询
func TestGetEntitiesWithQueries(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	AddComponent(em, both, &testPosition{})
	AddComponent(em, both, &testTag{Name: "both"})

	posOnly := em.CreateEntity()
	AddComponent(em, posOnly, &testPosition{})

	withPos := GetEntitiesWith1[*testPosition](em)
	if len(withPos) != 2 {
		t.Errorf("GetEntitiesWith1: got %d entities, want 2", len(withPos))
	}

	withBoth := GetEntitiesWith2[*testPosition, *testTag](em)
	if len(withBoth) != 1 {
		t.Fatalf("GetEntitiesWith2: got %d entities, want 1", len(withBoth))
	}
	if withBoth[0] != both {
		t.Errorf("GetEntitiesWith2: got entity %d, want %d", withBoth[0], both)
	}
}

// TestGetComponentOnMissingEntity 测试查询不存在的实体
func TestGetComponentOnMissingEntity(t *testing.T) {
	em := NewEntityManager()

	if _, ok := GetComponent[*testPosition](em, 999); ok {
		t.Error("GetComponent on missing entity: got ok=true, want false")
	}
	if em.Exists(999) {
		t.Error("Exists(999): got true, want false")
	}
}
