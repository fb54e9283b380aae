package ecs

import "reflect"

// 泛型访问入口
// 系统代码统一通过这些函数读写组件，避免手写 reflect.TypeOf 和类型断言

// AddComponent 为实体挂接组件
// component 应为指针类型（如 *components.ButtonVisualComponent）
func AddComponent(em *EntityManager, id EntityID, component interface{}) {
	em.addComponent(id, component)
}

// GetComponent 按类型取出实体的组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, found := em.getComponent(id, reflect.TypeOf(zero))
	if !found {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent 检查实体是否拥有指定类型的组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	var zero T
	_, found := em.getComponent(id, reflect.TypeOf(zero))
	return found
}

// RemoveComponent 移除实体上指定类型的组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	var zero T
	em.removeComponent(id, reflect.TypeOf(zero))
}

// GetEntitiesWith1 查询拥有指定组件类型的所有实体
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	var zero T
	return em.entitiesWith(reflect.TypeOf(zero))
}

// GetEntitiesWith2 查询同时拥有两种组件类型的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var z1 T1
	var z2 T2
	return em.entitiesWith(reflect.TypeOf(z1), reflect.TypeOf(z2))
}
