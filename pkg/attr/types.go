package attr

// Kind enumerates the supported attribute value kinds.
type Kind string

const (
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindString Kind = "string"
)

// FloatSubtype is a UI hint attached to float attributes so the host can pick
// an appropriate widget (slider units, angle dial, etc.).
type FloatSubtype string

const (
	SubtypeNone       FloatSubtype = "NONE"
	SubtypePercentage FloatSubtype = "PERCENTAGE"
	SubtypeFactor     FloatSubtype = "FACTOR"
	SubtypeAngle      FloatSubtype = "ANGLE"
	SubtypeTime       FloatSubtype = "TIME"
	SubtypeDistance   FloatSubtype = "DISTANCE"
)

// FloatSubtypes lists the valid subtype values in display order.
func FloatSubtypes() []FloatSubtype {
	return []FloatSubtype{
		SubtypeNone,
		SubtypePercentage,
		SubtypeFactor,
		SubtypeAngle,
		SubtypeTime,
		SubtypeDistance,
	}
}

// TypeDescriptor is the tagged union over the four attribute kinds. Each
// variant carries only the fields meaningful for its kind, so invalid
// combinations (a subtype on a bool, bounds on a string) cannot be expressed.
type TypeDescriptor interface {
	// Kind reports which variant this descriptor is.
	Kind() Kind
	// Zero returns the type-appropriate value stored when an attribute is
	// created and the descriptor supplies no explicit default.
	Zero() any
	// Default returns the value stored when an attribute is first created.
	Default() any
	// Normalize returns a copy with reversed bounds swapped so min <= max and
	// soft_min <= soft_max always hold. Hard and soft bounds are corrected
	// independently.
	Normalize() TypeDescriptor
}

// IntSpec describes an integer attribute with hard bounds.
type IntSpec struct {
	DefaultValue int
	Min          int
	Max          int
}

func (s IntSpec) Kind() Kind { return KindInt }

func (s IntSpec) Zero() any { return 0 }

func (s IntSpec) Default() any { return s.DefaultValue }

func (s IntSpec) Normalize() TypeDescriptor {
	if s.Min > s.Max {
		s.Min, s.Max = s.Max, s.Min
	}
	return s
}

// FloatSpec describes a float attribute with hard and soft bounds plus a
// widget subtype hint.
type FloatSpec struct {
	DefaultValue float64
	Min          float64
	Max          float64
	SoftMin      float64
	SoftMax      float64
	Subtype      FloatSubtype
}

func (s FloatSpec) Kind() Kind { return KindFloat }

func (s FloatSpec) Zero() any { return 0.0 }

func (s FloatSpec) Default() any { return s.DefaultValue }

func (s FloatSpec) Normalize() TypeDescriptor {
	if s.Min > s.Max {
		s.Min, s.Max = s.Max, s.Min
	}
	if s.SoftMin > s.SoftMax {
		s.SoftMin, s.SoftMax = s.SoftMax, s.SoftMin
	}
	if s.Subtype == "" {
		s.Subtype = SubtypeNone
	}
	return s
}

// BoolSpec describes a boolean attribute.
type BoolSpec struct {
	DefaultValue bool
}

func (s BoolSpec) Kind() Kind { return KindBool }

func (s BoolSpec) Zero() any { return false }

func (s BoolSpec) Default() any { return s.DefaultValue }

func (s BoolSpec) Normalize() TypeDescriptor { return s }

// StringSpec describes a string attribute with an optional tooltip
// description.
type StringSpec struct {
	DefaultValue string
	Description  string
}

func (s StringSpec) Kind() Kind { return KindString }

func (s StringSpec) Zero() any { return "" }

func (s StringSpec) Default() any { return s.DefaultValue }

func (s StringSpec) Normalize() TypeDescriptor { return s }
