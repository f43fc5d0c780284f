// Package physics hosts characters in a Chipmunk2D space. Gravity on the
// space is zero; vertical motion comes from the movement simulator.
package physics

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeBody
	collisionTypeSpringboard
)

const spaceIterations = 20

// World owns the Chipmunk space, the static level geometry and the trigger
// volumes.
type World struct {
	space         *cp.Space
	handlersReady bool

	springboards map[*cp.Shape]*Springboard
}

// Springboard is a trigger volume that launches bodies upward on contact.
type Springboard struct {
	Shape *cp.Shape
	Force float64

	// Launches counts contacts that applied an impulse.
	Launches int
}

func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = spaceIterations
	space.SetGravity(cp.Vector{})

	w := &World{
		space:        space,
		springboards: make(map[*cp.Shape]*Springboard),
	}
	w.setupHandlers()
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Step advances the physics simulation.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil || dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// AddGround adds a static solid box on the given layer.
func (w *World) AddGround(bb cp.BB, layer Layer) *cp.Shape {
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(cp.ShapeFilter{Categories: uint(layer), Mask: AllLayers})
	w.space.AddShape(shape)
	return shape
}

// AddBody creates a dynamic body with fixed rotation whose origin is the
// centre of a width x height box.
func (w *World) AddBody(pos cp.Vector, width, height, mass float64) *Body {
	if mass <= 0 {
		mass = 1
	}
	cpBody := cp.NewBody(mass, math.Inf(1))
	cpBody.SetPosition(pos)

	shape := cp.NewBox(cpBody, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeBody)
	shape.SetFilter(cp.ShapeFilter{Categories: uint(LayerPlayer), Mask: AllLayers})

	w.space.AddBody(cpBody)
	w.space.AddShape(shape)

	b := &Body{body: cpBody, shape: shape}
	log.Printf("physics: added body at (%.2f, %.2f) size %.2fx%.2f mass %.2f", pos.X, pos.Y, width, height, mass)
	return b
}

// AddSpringboard adds a sensor box that applies an upward impulse of force
// to any dynamic body that starts touching it.
func (w *World) AddSpringboard(bb cp.BB, force float64) *Springboard {
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeSpringboard)
	shape.SetFilter(cp.ShapeFilter{Categories: uint(LayerTrigger), Mask: AllLayers})
	w.space.AddShape(shape)

	sb := &Springboard{Shape: shape, Force: force}
	w.springboards[shape] = sb
	return sb
}

// OverlapBox reports whether an axis-aligned box centred at center touches
// any shape whose category is in mask.
func (w *World) OverlapBox(center, size cp.Vector, mask uint) bool {
	if w == nil || w.space == nil {
		return false
	}
	hw, hh := size.X/2, size.Y/2
	bb := cp.BB{L: center.X - hw, B: center.Y - hh, R: center.X + hw, T: center.Y + hh}
	filter := cp.ShapeFilter{Categories: AllLayers, Mask: mask}

	hit := false
	w.space.BBQuery(bb, filter, func(shape *cp.Shape, data interface{}) {
		hit = true
	}, nil)
	return hit
}

func (w *World) setupHandlers() {
	if w.handlersReady || w.space == nil {
		return
	}

	springHandler := w.space.NewCollisionHandler(collisionTypeBody, collisionTypeSpringboard)
	springHandler.UserData = w
	springHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		sb, ok := world.springboards[shapeB]
		target := shapeA
		if !ok {
			sb, ok = world.springboards[shapeA]
			target = shapeB
		}
		if !ok || target == nil || target.Body() == nil {
			return true
		}
		body := target.Body()
		body.ApplyImpulseAtWorldPoint(cp.Vector{X: 0, Y: sb.Force}, body.Position())
		sb.Launches++
		return true
	}

	w.handlersReady = true
}
