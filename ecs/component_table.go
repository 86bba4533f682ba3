package ecs

// ComponentTable owns every Column, keyed by ComponentTypeID. A
// Column is created lazily on first write to its type; Columns are
// never destroyed except along with the table itself, and an empty
// Column is a perfectly valid state.
//
// The exported surface here (EmplaceColumn, RemoveColumn, ...) layers
// no entity-liveness concept on top of the Column it dispatches to —
// that's Registry's job. ComponentTable is the only place a component
// type resolves to a Column, which keeps Columns themselves simple and
// View construction cheap.
type ComponentTable struct {
	columns map[ComponentTypeID]*column
}

// NewComponentTable creates an empty component table.
func NewComponentTable() *ComponentTable {
	return &ComponentTable{columns: make(map[ComponentTypeID]*column)}
}

func (ct *ComponentTable) columnFor(id ComponentTypeID) *column {
	return ct.columns[id]
}

func (ct *ComponentTable) getOrCreateColumn(id ComponentTypeID) *column {
	c, ok := ct.columns[id]
	if !ok {
		c = newColumn()
		ct.columns[id] = c
	}
	return c
}

// EmplaceColumn stores a T value for e, constructing it fresh in the
// Column for T; overwrites any existing value. Returns the resolved
// ComponentTypeID so the Registry can update membership.
func EmplaceColumn[T any](ct *ComponentTable, e EntityID, value T) ComponentTypeID {
	id := ComponentType[T]()
	setColumn(ct.getOrCreateColumn(id), e, value)
	return id
}

// RemoveColumn deletes e's T value. Returns whether anything was
// removed and the ComponentTypeID involved.
func RemoveColumn[T any](ct *ComponentTable, e EntityID) (bool, ComponentTypeID) {
	id := ComponentType[T]()
	c := ct.columnFor(id)
	if c == nil {
		return false, id
	}
	return c.remove(e), id
}

// RemoveIDs bulk-removes e from the Columns named by ids — used by
// entity destruction to drop every component an entity held.
func (ct *ComponentTable) RemoveIDs(e EntityID, ids map[ComponentTypeID]struct{}) {
	for id := range ids {
		if c, ok := ct.columns[id]; ok {
			c.remove(e)
		}
	}
}

// HasColumn reports whether e has a T value in the Column for T. Does
// not consult entity liveness — the Registry layer does that, since
// it's the only layer that knows about liveness.
func HasColumn[T any](ct *ComponentTable, e EntityID) bool {
	c := ct.columnFor(ComponentType[T]())
	if c == nil {
		return false
	}
	return c.has(e)
}

// GetColumn returns a pointer to e's T value, or nil if absent.
func GetColumn[T any](ct *ComponentTable, e EntityID) *T {
	c := ct.columnFor(ComponentType[T]())
	if c == nil {
		return nil
	}
	return getTyped[T](c, e)
}
