// Package placement names the container sets a batch can target and the
// provider contract that resolves a selector against the host's current
// selection.
package placement

import (
	"errors"

	"github.com/goliatone/go-propgen/pkg/attr"
)

// Selector identifies which containers a batch targets relative to the
// selected object.
type Selector string

const (
	// SelectorObject places attributes on the object datablock itself.
	SelectorObject Selector = "OBJECT"
	// SelectorData places attributes on the object's underlying data block.
	SelectorData Selector = "DATA"
	// SelectorActiveMaterial places attributes on the active material only.
	SelectorActiveMaterial Selector = "ACTIVE_MATERIAL"
	// SelectorAllMaterials places attributes on every assigned material,
	// deduplicated by identity.
	SelectorAllMaterials Selector = "ALL_MATERIALS"
)

var (
	// ErrNoActiveSelection signals that no object is selected to resolve
	// placements against.
	ErrNoActiveSelection = errors.New("placement: no active object selected")
	// ErrNoData signals a DATA request on an object without a data block.
	ErrNoData = errors.New("placement: selected object has no data block")
	// ErrNoActiveMaterial signals an ACTIVE_MATERIAL request when none is
	// assigned.
	ErrNoActiveMaterial = errors.New("placement: active material not found on object")
	// ErrNoMaterials signals an ALL_MATERIALS request when no slot holds a
	// material.
	ErrNoMaterials = errors.New("placement: no materials on object")
	// ErrUnknownSelector signals a selector outside the known set.
	ErrUnknownSelector = errors.New("placement: unknown selector")
)

// Choice describes one selectable placement for presentation layers. The
// available set depends on the selected object's capabilities (whether it has
// a data block, whether material slots are populated).
type Choice struct {
	Selector    Selector
	Label       string
	Description string
}

// Provider resolves placement selectors into the ordered, deduplicated list
// of containers they imply. Implementations adapt a concrete host selection.
type Provider interface {
	// Available reports the placements applicable to the current selection,
	// in display order.
	Available() []Choice
	// Resolve returns the containers implied by sel, or a descriptive error
	// when the selector is inapplicable.
	Resolve(sel Selector) ([]attr.Container, error)
}
