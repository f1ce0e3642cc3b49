package ecs

import "fmt"

// Entity is a generational handle. The low half indexes a slot in the entity
// store and the high half is that slot's generation when the handle was
// issued, so a handle to a destroyed slot never resolves after reuse.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const idMask = 1<<32 - 1

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<32 | Entity(id)
}

func (e Entity) id() entityID { return entityID(e & idMask) }

func (e Entity) generation() generation { return generation(e >> 32) }

// Valid reports whether e names a slot at all. Slot 0 is never issued, so the
// zero Entity means "none".
func (e Entity) Valid() bool { return e.id() != 0 }

func (e Entity) String() string {
	return fmt.Sprintf("%d.%d", e.id(), e.generation())
}

// Raw is the handle as stored in weak-reference fields such as an enemy's
// target or a projectile's owner.
func (e Entity) Raw() uint64 { return uint64(e) }

// FromRaw turns a stored weak reference back into a handle. The result may
// be stale; check it with IsAlive.
func FromRaw(raw uint64) Entity { return Entity(raw) }
