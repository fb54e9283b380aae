package entities

import (
	"github.com/decker502/simon/pkg/components"
	"github.com/decker502/simon/pkg/config"
	"github.com/decker502/simon/pkg/ecs"
)

// CreateScoreDisplay 生成得分文字实体
// 初始分数为零，之后只在仿真核心上报变化时刷新
func CreateScoreDisplay(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ScoreDisplayComponent{
		Current: 0,
		High:    0,
		X:       config.ScoreTextX,
		Y:       config.ScoreTextY,
	})
	return id
}
