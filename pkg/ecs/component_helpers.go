package ecs

import "reflect"

// 泛型组件访问辅助函数
//
// 提供带编译期类型保证的组件查询，取代调用方手写
// reflect.TypeOf + 类型断言的样板代码。
// 组件约定以指针形式存储（如 *components.PositionComponent），
// 类型参数 T 应为指针类型。

// AddComponent 为实体添加组件（泛型版本）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// GetComponent 获取实体的特定类型组件（泛型版本）
//
// 返回:
//
//	组件实例和是否存在
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	return comp.(T), true
}

// HasComponent 检查实体是否拥有特定类型组件（泛型版本）
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	var zero T
	return em.HasComponent(id, reflect.TypeOf(zero))
}

// RemoveComponent 从实体移除特定类型组件（泛型版本）
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	var zero T
	em.RemoveComponent(id, reflect.TypeOf(zero))
}

// GetEntitiesWith1 查询拥有指定组件类型的所有实体
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	var zero T
	return em.GetEntitiesWith(reflect.TypeOf(zero))
}

// GetEntitiesWith2 查询同时拥有两种组件类型的所有实体
func GetEntitiesWith2[T any, U any](em *EntityManager) []EntityID {
	var zeroT T
	var zeroU U
	return em.GetEntitiesWith(reflect.TypeOf(zeroT), reflect.TypeOf(zeroU))
}
