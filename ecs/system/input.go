package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// InputReader polls the host for the current frame's input.
type InputReader func() component.Input

type InputSystem struct {
	read InputReader
}

func NewInputSystem(read InputReader) *InputSystem {
	return &InputSystem{read: read}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.read == nil {
		return
	}

	in := i.read()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = in
	})
}
