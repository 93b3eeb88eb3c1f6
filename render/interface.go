package render

import (
	"github.com/lixenwraith/vi-maze/game"
)

// Layer is one drawing pass over a frame
type Layer interface {
	Draw(f game.Frame, l Layout, buf *Buffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// Sink presents a composed buffer
type Sink interface {
	Present(buf *Buffer)
}
