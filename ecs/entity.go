package ecs

import "fmt"

// Entity packs a slot id in the low 32 bits and the slot's generation in
// the high 32 bits. The zero Entity is never handed out.
type Entity uint64

type entityID uint32
type generation uint32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<32 | Entity(id)
}

func (e Entity) id() entityID { return entityID(e & 0xffffffff) }

func (e Entity) generation() generation { return generation(e >> 32) }

// String formats the entity as id@generation.
func (e Entity) String() string {
	return fmt.Sprintf("%d@%d", e.id(), e.generation())
}

func (e Entity) Valid() bool {
	return e.id() != 0
}
