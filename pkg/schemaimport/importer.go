// Package schemaimport derives attribute type descriptors from the scalar
// properties of an OpenAPI component schema, so a batch can be seeded from an
// existing schema document instead of hand-entered form values.
package schemaimport

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-propgen/pkg/attr"
)

// Fallback bounds used when a schema omits minimum/maximum, matching the
// generator form's own defaults.
const (
	defaultIntMin   = 0
	defaultIntMax   = 100
	defaultFloatMin = 0.0
	defaultFloatMax = 1.0
)

// Property pairs a generated attribute name with its descriptor.
type Property struct {
	Name string
	Spec attr.TypeDescriptor
}

// FromDocument loads an OpenAPI document and maps the scalar properties of
// the named component schema onto attribute descriptors, sorted by property
// name. Array, object, and untyped properties are skipped.
func FromDocument(ctx context.Context, raw []byte, schemaName string) ([]Property, error) {
	if ctx == nil {
		return nil, errors.New("schemaimport: context is required")
	}
	if len(raw) == 0 {
		return nil, errors.New("schemaimport: document payload is empty")
	}
	if schemaName == "" {
		return nil, errors.New("schemaimport: schema name is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("schemaimport: load document: %w", err)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, errors.New("schemaimport: document has no component schemas")
	}
	ref, ok := spec.Components.Schemas[schemaName]
	if !ok {
		return nil, fmt.Errorf("schemaimport: schema %q not found", schemaName)
	}
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schemaimport: schema %q is unresolved", schemaName)
	}
	return Properties(ref.Value)
}

// Properties maps the scalar properties of schema onto attribute descriptors
// in deterministic (sorted) order.
func Properties(schema *openapi3.Schema) ([]Property, error) {
	if schema == nil {
		return nil, errors.New("schemaimport: schema is required")
	}
	if len(schema.Properties) == 0 {
		return nil, errors.New("schemaimport: schema has no properties")
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Property, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		spec, ok := descriptorFor(ref.Value)
		if !ok {
			continue
		}
		out = append(out, Property{Name: name, Spec: spec})
	}
	if len(out) == 0 {
		return nil, errors.New("schemaimport: schema has no scalar properties")
	}
	return out, nil
}

func descriptorFor(src *openapi3.Schema) (attr.TypeDescriptor, bool) {
	switch firstSchemaType(src.Type) {
	case "integer":
		spec := attr.IntSpec{Min: defaultIntMin, Max: defaultIntMax}
		if v, ok := intValue(src.Default); ok {
			spec.DefaultValue = v
		}
		if src.Min != nil {
			spec.Min = int(*src.Min)
		}
		if src.Max != nil {
			spec.Max = int(*src.Max)
		}
		return spec, true
	case "number":
		spec := attr.FloatSpec{
			Min:     defaultFloatMin,
			Max:     defaultFloatMax,
			Subtype: subtypeForFormat(src.Format),
		}
		if v, ok := floatValue(src.Default); ok {
			spec.DefaultValue = v
		}
		if src.Min != nil {
			spec.Min = *src.Min
		}
		if src.Max != nil {
			spec.Max = *src.Max
		}
		spec.SoftMin = spec.Min
		spec.SoftMax = spec.Max
		return spec, true
	case "boolean":
		spec := attr.BoolSpec{}
		if v, ok := src.Default.(bool); ok {
			spec.DefaultValue = v
		}
		return spec, true
	case "string":
		spec := attr.StringSpec{Description: src.Description}
		if v, ok := src.Default.(string); ok {
			spec.DefaultValue = v
		}
		return spec, true
	default:
		return nil, false
	}
}

// subtypeForFormat reuses the schema format slot as a widget hint when it
// names a known float subtype.
func subtypeForFormat(format string) attr.FloatSubtype {
	candidate := attr.FloatSubtype(strings.ToUpper(strings.TrimSpace(format)))
	for _, subtype := range attr.FloatSubtypes() {
		if candidate == subtype {
			return subtype
		}
	}
	return attr.SubtypeNone
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
