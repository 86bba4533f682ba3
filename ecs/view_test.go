package ecs_test

import (
	"testing"

	"ecsreg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_TwoComponents(t *testing.T) {
	r := ecs.NewRegistry()
	e1 := r.CreateEntity()
	e2 := r.CreateEntity()
	e3 := r.CreateEntity()

	ecs.Emplace(r, e1, position{1, 2})
	ecs.Emplace(r, e2, position{3, 4})
	ecs.Emplace(r, e3, position{5, 6})

	ecs.Emplace(r, e1, true)
	ecs.Emplace(r, e3, false)
	ecs.Emplace(r, e2, 42)

	got := map[ecs.EntityID][2]any{}
	v := ecs.NewView2[position, bool](r)
	for v.Next() {
		p, b := v.Get()
		got[v.Entity()] = [2]any{*p, *b}
	}

	require.Len(t, got, 2)
	assert.Equal(t, [2]any{position{1, 2}, true}, got[e1])
	assert.Equal(t, [2]any{position{5, 6}, false}, got[e3])
	_, hasE2 := got[e2]
	assert.False(t, hasE2)
}

func TestView_Filter(t *testing.T) {
	r := ecs.NewRegistry()
	e1 := r.CreateEntity()
	e2 := r.CreateEntity()
	e3 := r.CreateEntity()

	ecs.Emplace(r, e1, position{1, 2})
	ecs.Emplace(r, e2, position{3, 4})
	ecs.Emplace(r, e3, position{5, 6})

	ecs.Emplace(r, e1, true)
	ecs.Emplace(r, e3, false)
	ecs.Emplace(r, e2, 42)

	boolFilter := ecs.ComponentType[bool]()
	v := ecs.NewView1[position](r, boolFilter)

	var seen []ecs.EntityID
	var positions []position
	for v.Next() {
		seen = append(seen, v.Entity())
		positions = append(positions, *v.Get())
	}

	require.Len(t, seen, 1)
	assert.Equal(t, e2, seen[0])
	assert.Equal(t, position{3, 4}, positions[0])
}

func TestView_FilterOverlapsIncludedTypeIsAlwaysEmpty(t *testing.T) {
	r := ecs.NewRegistry()
	e1 := r.CreateEntity()
	ecs.Emplace(r, e1, position{1, 2})
	ecs.Emplace(r, e1, true)

	boolFilter := ecs.ComponentType[bool]()
	v := ecs.NewView2[position, bool](r, boolFilter)

	assert.False(t, v.Next())
}

func TestView_EmptyWhenAnyIncludedColumnHasNoEntries(t *testing.T) {
	r := ecs.NewRegistry()
	e1 := r.CreateEntity()
	ecs.Emplace(r, e1, position{1, 2})

	// No bool value has ever been stored: the bool Column doesn't
	// exist (or exists empty), so the View is empty by construction.
	v := ecs.NewView2[position, bool](r)
	assert.False(t, v.Next())
}

func TestView_SingleComponent(t *testing.T) {
	r := ecs.NewRegistry()
	e1 := r.CreateEntity()
	ecs.Emplace(r, e1, position{7, 8})

	v := ecs.NewView1[position](r)
	require.True(t, v.Next())
	assert.Equal(t, e1, v.Entity())
	assert.Equal(t, position{7, 8}, *v.Get())
	assert.False(t, v.Next())
}

func TestView_SmallestColumnDrivesIteration(t *testing.T) {
	r := ecs.NewRegistry()

	// 1000 entities with an int, only the first 10 also get a bool,
	// only the first 100 also get a position. The view over
	// (int, bool, position) must visit exactly the bool Column's 10
	// candidates: the output equals the intersection regardless of
	// which column drives, but driver selection is what keeps this
	// cheap rather than scanning all 1000 entries.
	var withAll []ecs.EntityID
	for i := 0; i < 1000; i++ {
		e := r.CreateEntity()
		ecs.Emplace(r, e, i)
		if i < 100 {
			ecs.Emplace(r, e, position{i, i})
		}
		if i < 10 {
			ecs.Emplace(r, e, true)
			withAll = append(withAll, e)
		}
	}

	v := ecs.NewView3[int, bool, position](r)
	var got []ecs.EntityID
	for v.Next() {
		got = append(got, v.Entity())
	}

	assert.ElementsMatch(t, withAll, got)
}

func TestView_ThreeComponents(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.CreateEntity()
	ecs.Emplace(r, e, position{1, 1})
	ecs.Emplace(r, e, 1)
	ecs.Emplace(r, e, "tag")

	v := ecs.NewView3[position, int, string](r)
	require.True(t, v.Next())
	p, i, s := v.Get()
	assert.Equal(t, position{1, 1}, *p)
	assert.Equal(t, 1, *i)
	assert.Equal(t, "tag", *s)
}

func TestView_ForEach(t *testing.T) {
	r := ecs.NewRegistry()
	e1 := r.CreateEntity()
	e2 := r.CreateEntity()
	ecs.Emplace(r, e1, position{1, 1})
	ecs.Emplace(r, e2, position{2, 2})

	visited := map[ecs.EntityID]position{}
	ecs.NewView1[position](r).ForEach(func(e ecs.EntityID, p *position) {
		visited[e] = *p
	})

	assert.Equal(t, position{1, 1}, visited[e1])
	assert.Equal(t, position{2, 2}, visited[e2])
}
