package renderer

import (
	"multilight/internal/hud"
	"multilight/internal/scene"
	"multilight/internal/shading"
	"multilight/internal/technique"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Scene     *scene.Scene
	Frame     shading.Frame
	Technique technique.Handle
	Status    hud.Status
	Width     int
	Height    int
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
