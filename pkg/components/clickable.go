package components

// ClickableComponent 标记实体可以被鼠标点击
// 点击区域以实体视觉组件的位置为原点，宽高单独给出
type ClickableComponent struct {
	Width     float64 // 可点击区域宽度（像素）
	Height    float64 // 可点击区域高度（像素）
	IsEnabled bool    // 是否响应点击
}
