package ecs

import "reflect"

// EntityID 实体的唯一标识符
// 0 保留为无效ID
type EntityID uint64

// EntityManager 管理表现层实体及其组件
// 组件按具体类型索引，每个实体同一类型至多一个组件
type EntityManager struct {
	nextID            uint64
	components        map[EntityID]map[reflect.Type]interface{}
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建空的实体管理器
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]interface{}),
	}
}

// CreateEntity 创建新实体并返回其ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除
// 实际删除延迟到 RemoveMarkedEntities，避免遍历中修改映射
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 每帧结束时调用一次
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// addComponent 挂接组件（类型由运行时反射确定）
func (em *EntityManager) addComponent(id EntityID, component interface{}) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// getComponent 按类型取组件
func (em *EntityManager) getComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		comp, found := compMap[componentType]
		return comp, found
	}
	return nil, false
}

// removeComponent 按类型移除组件
func (em *EntityManager) removeComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// entitiesWith 查询拥有全部指定组件类型的实体
func (em *EntityManager) entitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	return result
}
