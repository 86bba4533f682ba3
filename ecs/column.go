package ecs

// column is the type-erased, entity-indexed store for all values of
// one component type. Every value is boxed once on insertion and the
// box's address is never moved afterward — Go's builtin map offers no
// node-address stability of its own, so a returned pointer would
// otherwise be invalidated by an unrelated insert triggering a rehash.
//
// order/indexOf track entity membership in a dense, swap-and-pop
// slice purely to give stable, deterministic iteration over
// non-mutating reads; they never touch the boxed values themselves.
type column struct {
	cells   map[EntityID]any
	order   []EntityID
	indexOf map[EntityID]int
}

func newColumn() *column {
	return &column{
		cells:   make(map[EntityID]any),
		indexOf: make(map[EntityID]int),
	}
}

// set boxes value and stores it for e, overwriting any previous value.
func setColumn[T any](c *column, e EntityID, value T) {
	if existing, ok := c.cells[e]; ok {
		*(existing.(*T)) = value
		return
	}
	boxed := new(T)
	*boxed = value
	c.cells[e] = boxed
	c.indexOf[e] = len(c.order)
	c.order = append(c.order, e)
}

// getTyped returns a pointer to e's value as *T, or nil if absent.
// Panics if a value is present but was stored as a different type —
// the Column invariant (one type per Column) forbids this by
// construction, so a mismatch here is a programmer error.
func getTyped[T any](c *column, e EntityID) *T {
	cell, ok := c.cells[e]
	if !ok {
		return nil
	}
	return cell.(*T)
}

// has reports whether e has a value in this Column.
func (c *column) has(e EntityID) bool {
	_, ok := c.cells[e]
	return ok
}

// remove deletes e's value. Returns whether anything was removed.
func (c *column) remove(e EntityID) bool {
	if _, ok := c.cells[e]; !ok {
		return false
	}
	delete(c.cells, e)

	idx := c.indexOf[e]
	lastIdx := len(c.order) - 1
	if idx != lastIdx {
		last := c.order[lastIdx]
		c.order[idx] = last
		c.indexOf[last] = idx
	}
	c.order = c.order[:lastIdx]
	delete(c.indexOf, e)
	return true
}

// size returns the number of values in the Column.
func (c *column) size() int {
	return len(c.order)
}

// entities returns the Column's entities in its stable dense order.
// The returned slice must not be mutated by the caller.
func (c *column) entities() []EntityID {
	return c.order
}
