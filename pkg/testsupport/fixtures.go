// Package testsupport provides container fixtures shared by tests across the
// module.
package testsupport

import (
	"errors"

	"github.com/goliatone/go-propgen/pkg/attr"
)

// ErrMetadataRejected is returned by containers configured to refuse metadata
// updates, simulating a host without a metadata facility.
var ErrMetadataRejected = errors.New("testsupport: metadata rejected")

// Container is an in-memory attr.Container that records every metadata
// application and can be configured to reject them.
type Container struct {
	Values map[string]any
	Meta   map[string]attr.Metadata
	// MetaApplies counts ApplyMetadata calls, including rejected ones.
	MetaApplies int
	// RejectMetadata makes ApplyMetadata fail with ErrMetadataRejected.
	RejectMetadata bool
}

// NewContainer constructs an empty recording container.
func NewContainer() *Container {
	return &Container{
		Values: make(map[string]any),
		Meta:   make(map[string]attr.Metadata),
	}
}

var _ attr.Container = (*Container)(nil)

// Has reports whether key exists.
func (c *Container) Has(key string) bool {
	_, ok := c.Values[key]
	return ok
}

// Get returns the stored value for key.
func (c *Container) Get(key string) (any, bool) {
	v, ok := c.Values[key]
	return v, ok
}

// Set stores value under key.
func (c *Container) Set(key string, value any) {
	c.Values[key] = value
}

// ApplyMetadata records meta for key, or rejects it when configured to.
func (c *Container) ApplyMetadata(key string, meta attr.Metadata) error {
	c.MetaApplies++
	if c.RejectMetadata {
		return ErrMetadataRejected
	}
	c.Meta[key] = meta
	return nil
}
