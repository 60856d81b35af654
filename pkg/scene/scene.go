// Package scene provides an in-memory stand-in for the host's object graph:
// objects, their data blocks, and material slots, each carrying a keyed
// attribute store. It backs the CLI and tests; embedding hosts supply their
// own attr.Container adapters instead.
package scene

import (
	"fmt"

	"github.com/goliatone/go-propgen/pkg/attr"
)

// PropertyBag is a map-backed attr.Container that also retains applied UI
// metadata so it can be persisted and inspected.
type PropertyBag struct {
	values map[string]any
	meta   map[string]attr.Metadata
}

// NewPropertyBag constructs an empty bag.
func NewPropertyBag() *PropertyBag {
	return &PropertyBag{
		values: make(map[string]any),
		meta:   make(map[string]attr.Metadata),
	}
}

var _ attr.Container = (*PropertyBag)(nil)

// Has reports whether key exists in the bag.
func (b *PropertyBag) Has(key string) bool {
	_, ok := b.values[key]
	return ok
}

// Get returns the stored value for key.
func (b *PropertyBag) Get(key string) (any, bool) {
	v, ok := b.values[key]
	return v, ok
}

// Set stores value under key.
func (b *PropertyBag) Set(key string, value any) {
	if b.values == nil {
		b.values = make(map[string]any)
	}
	b.values[key] = value
}

// ApplyMetadata replaces the UI metadata recorded for key.
func (b *PropertyBag) ApplyMetadata(key string, meta attr.Metadata) error {
	if !b.Has(key) {
		return fmt.Errorf("scene: no attribute %q to attach metadata to", key)
	}
	if b.meta == nil {
		b.meta = make(map[string]attr.Metadata)
	}
	b.meta[key] = meta
	return nil
}

// Metadata returns the UI metadata recorded for key, if any.
func (b *PropertyBag) Metadata(key string) (attr.Metadata, bool) {
	m, ok := b.meta[key]
	return m, ok
}

// Keys returns the stored attribute names in unspecified order.
func (b *PropertyBag) Keys() []string {
	keys := make([]string, 0, len(b.values))
	for k := range b.values {
		keys = append(keys, k)
	}
	return keys
}

// Len reports how many attributes the bag holds.
func (b *PropertyBag) Len() int {
	return len(b.values)
}

// Material is an assignable material datablock with its own attribute store.
type Material struct {
	Name string
	*PropertyBag
}

// NewMaterial constructs a named material with an empty bag.
func NewMaterial(name string) *Material {
	return &Material{Name: name, PropertyBag: NewPropertyBag()}
}

// DataBlock is the geometry/data datablock underlying an object.
type DataBlock struct {
	Name string
	*PropertyBag
}

// NewDataBlock constructs a named data block with an empty bag.
func NewDataBlock(name string) *DataBlock {
	return &DataBlock{Name: name, PropertyBag: NewPropertyBag()}
}

// Object models a scene object: its own attribute store, an optional data
// block, and ordered material slots. A slot may be empty (nil material) and
// the same material may be assigned to several slots.
type Object struct {
	Name string
	Data *DataBlock
	// Slots are the object's material slots in assignment order.
	Slots []*Material
	// ActiveSlot indexes the active material slot.
	ActiveSlot int
	*PropertyBag
}

// NewObject constructs a named object with an empty bag and no data block.
func NewObject(name string) *Object {
	return &Object{Name: name, PropertyBag: NewPropertyBag()}
}

// ActiveMaterial returns the material in the active slot, or nil when the
// slot is out of range or empty.
func (o *Object) ActiveMaterial() *Material {
	if o.ActiveSlot < 0 || o.ActiveSlot >= len(o.Slots) {
		return nil
	}
	return o.Slots[o.ActiveSlot]
}

// Materials returns the assigned materials deduplicated by identity,
// preserving slot order and skipping empty slots.
func (o *Object) Materials() []*Material {
	out := make([]*Material, 0, len(o.Slots))
	seen := make(map[*Material]struct{}, len(o.Slots))
	for _, mat := range o.Slots {
		if mat == nil {
			continue
		}
		if _, ok := seen[mat]; ok {
			continue
		}
		seen[mat] = struct{}{}
		out = append(out, mat)
	}
	return out
}

// Scene is a collection of objects with one active selection.
type Scene struct {
	Objects []*Object
	// Active names the selected object; empty means no selection.
	Active string
}

// ActiveObject returns the selected object, or nil when nothing is selected.
func (s *Scene) ActiveObject() *Object {
	return s.Object(s.Active)
}

// Object looks up an object by name.
func (s *Scene) Object(name string) *Object {
	if name == "" {
		return nil
	}
	for _, obj := range s.Objects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}
