package ecs

// selectDriver finds the smallest-size column among cols, tie-broken
// by earliest position in cols. Reports empty=true if any column is
// nil or has size zero: a View over such a combination can never
// yield anything, regardless of the other columns' contents.
func selectDriver(cols []*column) (driverIdx int, empty bool) {
	for _, c := range cols {
		if c == nil || c.size() == 0 {
			return -1, true
		}
	}
	minIdx := 0
	minSize := cols[0].size()
	for i := 1; i < len(cols); i++ {
		if cols[i].size() < minSize {
			minSize = cols[i].size()
			minIdx = i
		}
	}
	return minIdx, false
}

func resolveFilterColumns(ct *ComponentTable, filters []ComponentTypeID) []*column {
	cols := make([]*column, 0, len(filters))
	for _, id := range filters {
		if c := ct.columnFor(id); c != nil {
			cols = append(cols, c)
		}
	}
	return cols
}

// matchesView reports whether e belongs in every included column
// (other than the driver, already guaranteed) and none of filters.
func matchesView(e EntityID, included, filters []*column) bool {
	for _, c := range included {
		if !c.has(e) {
			return false
		}
	}
	for _, c := range filters {
		if c.has(e) {
			return false
		}
	}
	return true
}

// View1 is a lazy iterator over entities holding a T1 value, minus
// any entity present in one of the filter columns. There's only one
// included column, so it's always the driver, and every driver entry
// is a match once the filters clear.
type View1[T1 any] struct {
	included []*column
	filters  []*column
	empty    bool
	order    []EntityID
	cursor   int
	cur      EntityID
}

// NewView1 builds a View over T1, excluding any entity present in a
// Column named by filters.
func NewView1[T1 any](r *Registry, filters ...ComponentTypeID) *View1[T1] {
	included := []*column{r.components.columnFor(ComponentType[T1]())}
	_, empty := selectDriver(included)
	v := &View1[T1]{
		included: included,
		filters:  resolveFilterColumns(r.components, filters),
		empty:    empty,
		cursor:   -1,
	}
	if !empty {
		v.order = included[0].entities()
	}
	return v
}

// Next advances the cursor to the next matching entity. Returns false
// once exhausted.
func (v *View1[T1]) Next() bool {
	if v.empty {
		return false
	}
	for v.cursor++; v.cursor < len(v.order); v.cursor++ {
		e := v.order[v.cursor]
		if matchesView(e, nil, v.filters) {
			v.cur = e
			return true
		}
	}
	return false
}

// Entity returns the current entity. Only valid after Next returns true.
func (v *View1[T1]) Entity() EntityID { return v.cur }

// Get returns a pointer to the current entity's T1 value.
func (v *View1[T1]) Get() *T1 {
	return getTyped[T1](v.included[0], v.cur)
}

// ForEach visits every matching entity in driver order.
func (v *View1[T1]) ForEach(fn func(EntityID, *T1)) {
	for v.Next() {
		fn(v.Entity(), v.Get())
	}
}

// View2 is the two-included-column View; see View1 for the general shape.
type View2[T1, T2 any] struct {
	col1, col2 *column
	others     []*column
	filters    []*column
	empty      bool
	order      []EntityID
	cursor     int
	cur        EntityID
}

// NewView2 builds a View over (T1, T2), excluding any entity present
// in a Column named by filters.
func NewView2[T1, T2 any](r *Registry, filters ...ComponentTypeID) *View2[T1, T2] {
	col1 := r.components.columnFor(ComponentType[T1]())
	col2 := r.components.columnFor(ComponentType[T2]())
	included := []*column{col1, col2}
	driverIdx, empty := selectDriver(included)
	v := &View2[T1, T2]{
		col1: col1, col2: col2,
		filters: resolveFilterColumns(r.components, filters),
		empty:   empty,
		cursor:  -1,
	}
	if !empty {
		v.others = otherColumns(included, driverIdx)
		v.order = included[driverIdx].entities()
	}
	return v
}

// otherColumns returns every included column except the one at
// driverIdx, computed once at View construction so iteration never
// reallocates or re-derives it per step.
func otherColumns(included []*column, driverIdx int) []*column {
	others := make([]*column, 0, len(included)-1)
	for i, c := range included {
		if i != driverIdx {
			others = append(others, c)
		}
	}
	return others
}

// Next advances the cursor to the next matching entity.
func (v *View2[T1, T2]) Next() bool {
	if v.empty {
		return false
	}
	for v.cursor++; v.cursor < len(v.order); v.cursor++ {
		e := v.order[v.cursor]
		if matchesView(e, v.others, v.filters) {
			v.cur = e
			return true
		}
	}
	return false
}

// Entity returns the current entity. Only valid after Next returns true.
func (v *View2[T1, T2]) Entity() EntityID { return v.cur }

// Get returns pointers to the current entity's T1 and T2 values.
func (v *View2[T1, T2]) Get() (*T1, *T2) {
	return getTyped[T1](v.col1, v.cur), getTyped[T2](v.col2, v.cur)
}

// ForEach visits every matching entity in driver order.
func (v *View2[T1, T2]) ForEach(fn func(EntityID, *T1, *T2)) {
	for v.Next() {
		t1, t2 := v.Get()
		fn(v.Entity(), t1, t2)
	}
}

// View3 is the three-included-column View; see View1 for the general shape.
type View3[T1, T2, T3 any] struct {
	col1, col2, col3 *column
	others           []*column
	filters          []*column
	empty            bool
	order            []EntityID
	cursor           int
	cur              EntityID
}

// NewView3 builds a View over (T1, T2, T3), excluding any entity
// present in a Column named by filters.
func NewView3[T1, T2, T3 any](r *Registry, filters ...ComponentTypeID) *View3[T1, T2, T3] {
	col1 := r.components.columnFor(ComponentType[T1]())
	col2 := r.components.columnFor(ComponentType[T2]())
	col3 := r.components.columnFor(ComponentType[T3]())
	included := []*column{col1, col2, col3}
	driverIdx, empty := selectDriver(included)
	v := &View3[T1, T2, T3]{
		col1: col1, col2: col2, col3: col3,
		filters: resolveFilterColumns(r.components, filters),
		empty:   empty,
		cursor:  -1,
	}
	if !empty {
		v.others = otherColumns(included, driverIdx)
		v.order = included[driverIdx].entities()
	}
	return v
}

// Next advances the cursor to the next matching entity.
func (v *View3[T1, T2, T3]) Next() bool {
	if v.empty {
		return false
	}
	for v.cursor++; v.cursor < len(v.order); v.cursor++ {
		e := v.order[v.cursor]
		if matchesView(e, v.others, v.filters) {
			v.cur = e
			return true
		}
	}
	return false
}

// Entity returns the current entity. Only valid after Next returns true.
func (v *View3[T1, T2, T3]) Entity() EntityID { return v.cur }

// Get returns pointers to the current entity's T1, T2 and T3 values.
func (v *View3[T1, T2, T3]) Get() (*T1, *T2, *T3) {
	return getTyped[T1](v.col1, v.cur), getTyped[T2](v.col2, v.cur), getTyped[T3](v.col3, v.cur)
}

// ForEach visits every matching entity in driver order.
func (v *View3[T1, T2, T3]) ForEach(fn func(EntityID, *T1, *T2, *T3)) {
	for v.Next() {
		t1, t2, t3 := v.Get()
		fn(v.Entity(), t1, t2, t3)
	}
}

// View4 is the four-included-column View; see View1 for the general shape.
type View4[T1, T2, T3, T4 any] struct {
	col1, col2, col3, col4 *column
	others                 []*column
	filters                []*column
	empty                  bool
	order                  []EntityID
	cursor                 int
	cur                    EntityID
}

// NewView4 builds a View over (T1, T2, T3, T4), excluding any entity
// present in a Column named by filters.
func NewView4[T1, T2, T3, T4 any](r *Registry, filters ...ComponentTypeID) *View4[T1, T2, T3, T4] {
	col1 := r.components.columnFor(ComponentType[T1]())
	col2 := r.components.columnFor(ComponentType[T2]())
	col3 := r.components.columnFor(ComponentType[T3]())
	col4 := r.components.columnFor(ComponentType[T4]())
	included := []*column{col1, col2, col3, col4}
	driverIdx, empty := selectDriver(included)
	v := &View4[T1, T2, T3, T4]{
		col1: col1, col2: col2, col3: col3, col4: col4,
		filters: resolveFilterColumns(r.components, filters),
		empty:   empty,
		cursor:  -1,
	}
	if !empty {
		v.others = otherColumns(included, driverIdx)
		v.order = included[driverIdx].entities()
	}
	return v
}

// Next advances the cursor to the next matching entity.
func (v *View4[T1, T2, T3, T4]) Next() bool {
	if v.empty {
		return false
	}
	for v.cursor++; v.cursor < len(v.order); v.cursor++ {
		e := v.order[v.cursor]
		if matchesView(e, v.others, v.filters) {
			v.cur = e
			return true
		}
	}
	return false
}

// Entity returns the current entity. Only valid after Next returns true.
func (v *View4[T1, T2, T3, T4]) Entity() EntityID { return v.cur }

// Get returns pointers to the current entity's T1..T4 values.
func (v *View4[T1, T2, T3, T4]) Get() (*T1, *T2, *T3, *T4) {
	return getTyped[T1](v.col1, v.cur), getTyped[T2](v.col2, v.cur),
		getTyped[T3](v.col3, v.cur), getTyped[T4](v.col4, v.cur)
}

// ForEach visits every matching entity in driver order.
func (v *View4[T1, T2, T3, T4]) ForEach(fn func(EntityID, *T1, *T2, *T3, *T4)) {
	for v.Next() {
		t1, t2, t3, t4 := v.Get()
		fn(v.Entity(), t1, t2, t3, t4)
	}
}
