package ecs_test

import (
	"testing"

	"ecsreg/ecs"
	"github.com/stretchr/testify/assert"
)

type velocityForTypeTest struct{ dx, dy float64 }
type positionForTypeTest struct{ x, y float64 }

func TestComponentType_SameTypeSameID(t *testing.T) {
	a := ecs.ComponentType[positionForTypeTest]()
	b := ecs.ComponentType[positionForTypeTest]()
	assert.Equal(t, a, b)
}

func TestComponentType_DistinctTypesDistinctIDs(t *testing.T) {
	a := ecs.ComponentType[positionForTypeTest]()
	b := ecs.ComponentType[velocityForTypeTest]()
	assert.NotEqual(t, a, b)
}

func TestComponentType_ProcessWideAcrossRegistries(t *testing.T) {
	r1 := ecs.NewRegistry()
	r2 := ecs.NewRegistry()

	e1 := r1.CreateEntity()
	e2 := r2.CreateEntity()
	ecs.Emplace(r1, e1, positionForTypeTest{1, 2})
	ecs.Emplace(r2, e2, positionForTypeTest{3, 4})

	// Both registries resolve the same Go type to the same id —
	// there is exactly one counter for the whole process.
	assert.Equal(t, ecs.ComponentType[positionForTypeTest](), ecs.ComponentType[positionForTypeTest]())
}
