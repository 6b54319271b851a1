package sim

import "fmt"

// ErrEntityCorrupt reports an entity-table lookup for an id that should be
// present. It indicates a resolver or ordering bug and is surfaced, never
// swallowed.
var ErrEntityCorrupt = fmt.Errorf("sim: entity table corrupt")

// entityTable is the session-owned entity set. Iteration order is ascending
// entity id, which is also creation order, so resolution is deterministic.
type entityTable struct {
	list  []*Entity
	index map[EntityID]*Entity
}

func newEntityTable() *entityTable {
	return &entityTable{index: make(map[EntityID]*Entity)}
}

func (t *entityTable) add(e *Entity) {
	t.list = append(t.list, e)
	t.index[e.ID] = e
}

func (t *entityTable) get(id EntityID) (*Entity, error) {
	e, ok := t.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: missing entity %d", ErrEntityCorrupt, id)
	}
	return e, nil
}

func (t *entityTable) has(id EntityID) bool {
	_, ok := t.index[id]
	return ok
}

// purge removes entities flagged Removed. Dead entities are flagged at end of
// step, never mid-step, to avoid iteration hazards.
func (t *entityTable) purge() {
	out := t.list[:0]
	for _, e := range t.list {
		if e.Removed {
			delete(t.index, e.ID)
			continue
		}
		out = append(out, e)
	}
	t.list = out
}

func (t *entityTable) aliveEnemies() int {
	n := 0
	for _, e := range t.list {
		if e.Kind == KindEnemy && e.Alive() {
			n++
		}
	}
	return n
}
