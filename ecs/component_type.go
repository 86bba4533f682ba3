package ecs

import "reflect"

// componentTypeIDCounter and componentTypeIDs are process-wide: a
// component type maps to the same ComponentTypeID no matter which
// Registry first mentions it. Initialized lazily on first use of
// each type; never torn down.
var (
	componentTypeIDCounter ComponentTypeID = 1
	componentTypeIDs                       = make(map[reflect.Type]ComponentTypeID)
)

// ComponentType returns the process-wide ComponentTypeID for T,
// assigning one on first use. Two calls for the same T in the same
// process always return the same id; distinct Ts always return
// distinct ids.
func ComponentType[T any]() ComponentTypeID {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := componentTypeIDs[rt]; ok {
		return id
	}
	id := componentTypeIDCounter
	componentTypeIDCounter++
	componentTypeIDs[rt] = id
	return id
}
