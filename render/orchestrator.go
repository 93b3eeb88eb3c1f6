package render

import (
	"sync"

	"github.com/lixenwraith/vi-maze/game"
)

type layerEntry struct {
	layer    Layer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline and implements game.Renderer
type Orchestrator struct {
	mu       sync.Mutex
	sink     Sink
	buffer   *Buffer
	layers   []layerEntry
	regCount int
	frames   int
	last     *game.Frame
}

// NewOrchestrator creates an orchestrator that presents to sink, with no layers
func NewOrchestrator(sink Sink) *Orchestrator {
	return &Orchestrator{
		sink:   sink,
		buffer: NewBuffer(0, 0),
		layers: make([]layerEntry, 0, 8),
	}
}

// NewDefault creates an orchestrator with the standard maze layers registered
func NewDefault(sink Sink) *Orchestrator {
	o := NewOrchestrator(sink)
	o.Register(BannerLayer{}, PriorityBackground)
	o.Register(MazeLayer{}, PriorityGrid)
	o.Register(PlayerLayer{}, PriorityEntities)
	o.Register(StatusLayer{}, PriorityUI)
	o.Register(&HintLayer{}, PriorityOverlay)
	return o
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(layer Layer, priority Priority) {
	o.mu.Lock()
	defer o.mu.Unlock()

	entry := layerEntry{
		layer:    layer,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Render executes the pipeline: size, clear, draw all layers, present
func (o *Orchestrator) Render(f game.Frame) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.render(f)
}

// Redraw presents the last rendered frame again, used after a terminal resize
func (o *Orchestrator) Redraw() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.last != nil {
		o.render(*o.last)
	}
}

func (o *Orchestrator) render(f game.Frame) {
	l := NewLayout(f)
	if l.Width != o.buffer.Width() || l.Height != o.buffer.Height() {
		o.buffer.Resize(l.Width, l.Height)
	} else {
		o.buffer.Clear()
	}

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Draw(f, l, o.buffer)
	}

	o.sink.Present(o.buffer)
	o.frames++
	o.last = &f
}

// Frames returns the number of frames rendered so far
func (o *Orchestrator) Frames() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.frames
}
