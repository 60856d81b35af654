// Package writer upserts typed attribute values and their UI metadata into a
// target container, honoring the batch overwrite policy.
package writer

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-propgen/pkg/attr"
)

// Result reports what Apply did for one container/name pair.
type Result string

const (
	// ResultCreated means the attribute did not exist and was created with
	// the descriptor's default value.
	ResultCreated Result = "created"
	// ResultUpdated means the attribute existed and its value/metadata were
	// refreshed under the overwrite policy.
	ResultUpdated Result = "updated"
	// ResultSkipped means the attribute existed and overwrite was off; the
	// prior entry is untouched.
	ResultSkipped Result = "skipped"
)

// MetadataWarning reports a non-fatal metadata application failure. The value
// write already performed stands; the entry simply lacks UI metadata.
type MetadataWarning struct {
	Key string
	Err error
}

// Option customises the writer configuration.
type Option func(*Writer)

// WithWarningHandler registers a callback invoked whenever metadata
// application fails. Passing nil drops warnings silently.
func WithWarningHandler(fn func(MetadataWarning)) Option {
	return func(w *Writer) {
		w.onWarning = fn
	}
}

// Writer applies a TypeDescriptor to container entries one name at a time.
// Each call is an idempotent-per-name upsert: applying twice with identical
// arguments and overwrite on yields the same final stored value and metadata.
type Writer struct {
	onWarning func(MetadataWarning)
}

// New constructs a Writer applying any provided options.
func New(options ...Option) *Writer {
	w := &Writer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Apply creates or updates the attribute name on container according to spec.
// Missing entries are created with the descriptor default. Existing entries
// are skipped unless overwrite is set, in which case the stored value is
// coerced to the descriptor's kind (best effort; coercion failures leave the
// raw value as-is) before metadata is refreshed.
func (w *Writer) Apply(container attr.Container, name string, spec attr.TypeDescriptor, overwrite bool) Result {
	spec = spec.Normalize()

	result := ResultUpdated
	if !container.Has(name) {
		container.Set(name, spec.Default())
		result = ResultCreated
	} else if !overwrite {
		return ResultSkipped
	}

	if existing, ok := container.Get(name); ok {
		if coerced, ok := coerce(existing, spec.Kind()); ok {
			container.Set(name, coerced)
		}
	}

	meta := buildMetadata(spec)
	if meta.Empty() {
		return result
	}
	if err := container.ApplyMetadata(name, meta); err != nil {
		w.warn(MetadataWarning{Key: name, Err: err})
	}
	return result
}

func (w *Writer) warn(warning MetadataWarning) {
	if w.onWarning == nil {
		return
	}
	w.onWarning(warning)
}

// buildMetadata maps the descriptor onto the UI metadata fields meaningful
// for its kind. Bounds and subtype never apply to bool or string attributes.
func buildMetadata(spec attr.TypeDescriptor) attr.Metadata {
	var meta attr.Metadata
	switch s := spec.(type) {
	case attr.IntSpec:
		meta.Default = s.DefaultValue
		meta.Min = floatPtr(float64(s.Min))
		meta.Max = floatPtr(float64(s.Max))
	case attr.FloatSpec:
		meta.Default = s.DefaultValue
		meta.Min = floatPtr(s.Min)
		meta.Max = floatPtr(s.Max)
		meta.SoftMin = floatPtr(s.SoftMin)
		meta.SoftMax = floatPtr(s.SoftMax)
		subtype := s.Subtype
		meta.Subtype = &subtype
	case attr.BoolSpec:
		meta.Default = s.DefaultValue
	case attr.StringSpec:
		meta.Default = s.DefaultValue
		if desc := sanitizeDescription(s.Description); desc != "" {
			meta.Description = &desc
		}
	}
	return meta
}

// coerce converts a previously stored value to the requested kind. The bool
// and string conversions mirror loose host scripting semantics (non-zero and
// non-empty count as true) since existing entries may have been written by
// other tooling.
func coerce(value any, kind attr.Kind) (any, bool) {
	switch kind {
	case attr.KindInt:
		return coerceInt(value)
	case attr.KindFloat:
		return coerceFloat(value)
	case attr.KindBool:
		return coerceBool(value)
	case attr.KindString:
		return coerceString(value)
	}
	return nil, false
}

func coerceInt(value any) (any, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float32:
		return int(v), true
	case float64:
		return int(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, false
		}
		return parsed, true
	}
	return nil, false
}

func coerceFloat(value any) (any, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case bool:
		if v {
			return 1.0, true
		}
		return 0.0, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, false
		}
		return parsed, true
	}
	return nil, false
}

func coerceBool(value any) (any, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case int:
		return v != 0, true
	case int32:
		return v != 0, true
	case int64:
		return v != 0, true
	case float32:
		return v != 0, true
	case float64:
		return v != 0, true
	case string:
		return v != "", true
	}
	return nil, false
}

func coerceString(value any) (any, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return nil, false
}

func floatPtr(v float64) *float64 {
	return &v
}
