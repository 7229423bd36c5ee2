package core

import (
	pkgcore "text-ca/pkg/core"
	"text-ca/pkg/life"
)

// Simulation is the contract the runner drives: advance one generation,
// render the grid as text, report the census.
type Simulation interface {
	Name() string
	Size() pkgcore.Size
	Step()
	Render() string
	Census() life.Census
}

var _ Simulation = (*life.Universe)(nil)
