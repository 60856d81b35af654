package attr

// Metadata carries the per-key UI hints a host can surface next to a stored
// value. Pointer fields distinguish "not set" from zero values; only fields
// meaningful for the attribute's kind are populated by the writer.
type Metadata struct {
	Description *string
	Default     any
	Min         *float64
	Max         *float64
	SoftMin     *float64
	SoftMax     *float64
	Subtype     *FloatSubtype
}

// Empty reports whether no metadata field is set.
func (m Metadata) Empty() bool {
	return m.Description == nil && m.Default == nil && m.Min == nil &&
		m.Max == nil && m.SoftMin == nil && m.SoftMax == nil && m.Subtype == nil
}

// Container is the capability interface over a host-owned keyed attribute
// store. The host environment owns container lifetimes; callers only mutate
// entries within them. Implementations are not expected to be safe for
// concurrent use.
type Container interface {
	// Has reports whether an attribute named key exists.
	Has(key string) bool
	// Get returns the stored value for key, if present.
	Get(key string) (any, bool)
	// Set stores value under key, creating the entry if missing.
	Set(key string, value any)
	// ApplyMetadata replaces the UI metadata for key. Hosts without a
	// metadata facility may reject the call; the stored value is unaffected
	// either way.
	ApplyMetadata(key string, meta Metadata) error
}
