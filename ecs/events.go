package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventSceneLoaded carries a SceneLoaded payload.
	EventSceneLoaded = "scene_loaded"
)

// SceneLoaded is pushed after a scene tree has been built.
type SceneLoaded struct {
	Name string
	Root Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

// EntityListener observes entity lifecycle. EntityRemoved is called
// synchronously from DestroyEntity and Clear before the entity's components
// are dropped.
type EntityListener interface {
	EntityAdded(w *World, e Entity)
	EntityRemoved(w *World, e Entity)
}

// EntityListenerFuncs adapts plain functions to EntityListener. Nil fields are
// skipped.
type EntityListenerFuncs struct {
	Added   func(w *World, e Entity)
	Removed func(w *World, e Entity)
}

func (f EntityListenerFuncs) EntityAdded(w *World, e Entity) {
	if f.Added != nil {
		f.Added(w, e)
	}
}

func (f EntityListenerFuncs) EntityRemoved(w *World, e Entity) {
	if f.Removed != nil {
		f.Removed(w, e)
	}
}
