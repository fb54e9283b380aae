package entities

import (
	"log"

	"github.com/decker502/simon/pkg/components"
	"github.com/decker502/simon/pkg/config"
	"github.com/decker502/simon/pkg/ecs"
)

// CreateButtonEntities 按布局配置生成四个按钮实体
// 每个实体挂接视觉组件和可点击组件
func CreateButtonEntities(em *ecs.EntityManager) []ecs.EntityID {
	layouts := config.ButtonLayouts()
	ids := make([]ecs.EntityID, 0, len(layouts))

	for _, l := range layouts {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.ButtonVisualComponent{
			Button:    l.Button,
			X:         l.X,
			Y:         l.Y,
			Size:      config.ButtonSize,
			RestColor: l.RestColor,
			LitColor:  l.LitColor,
			DownColor: l.DownColor,
		})
		ecs.AddComponent(em, id, &components.ClickableComponent{
			Width:     config.ButtonSize,
			Height:    config.ButtonSize,
			IsEnabled: true,
		})
		ids = append(ids, id)
	}

	log.Printf("[ButtonFactory] Created %d button entities", len(ids))
	return ids
}
