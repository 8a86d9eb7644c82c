package ecs

import "strconv"

// Entity is an agent's index in the world. Agents are never destroyed, so an
// index stays valid for the lifetime of its world.
type Entity int

func (e Entity) Index() int {
	return int(e)
}

func (e Entity) String() string {
	return strconv.Itoa(int(e))
}

func (e Entity) Valid() bool {
	return e >= 0
}
