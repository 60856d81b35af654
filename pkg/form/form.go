// Package form drives the interactive terminal form that maps 1:1 onto a
// batch request: count, attribute type with its type-specific fields, naming
// configuration, placement, and overwrite policy. Fields are shown
// conditionally (numbering options only when auto-increment is on; value
// fields per selected type), mirroring the host panel this replaces.
package form

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-propgen/pkg/attr"
	"github.com/goliatone/go-propgen/pkg/batch"
	"github.com/goliatone/go-propgen/pkg/naming"
	"github.com/goliatone/go-propgen/pkg/placement"
)

// Option customises the builder configuration.
type Option func(*Builder)

// WithDriver injects a custom prompt driver, replacing the survey default.
func WithDriver(driver PromptDriver) Option {
	return func(b *Builder) {
		if driver != nil {
			b.driver = driver
		}
	}
}

// Builder collects a batch.Request through sequential prompts.
type Builder struct {
	driver   PromptDriver
	provider placement.Provider
}

// NewBuilder constructs a Builder over the given placement provider.
func NewBuilder(provider placement.Provider, options ...Option) *Builder {
	b := &Builder{
		driver:   newSurveyDriver(),
		provider: provider,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Run walks the operator through the form and returns the assembled request,
// with targets already resolved through the placement provider.
func (b *Builder) Run(ctx context.Context) (batch.Request, error) {
	if ctx == nil {
		return batch.Request{}, fmt.Errorf("form: context is required")
	}
	if b.provider == nil {
		return batch.Request{}, fmt.Errorf("form: placement provider is required")
	}

	count, err := b.promptCount(ctx)
	if err != nil {
		return batch.Request{}, err
	}

	spec, err := b.promptType(ctx)
	if err != nil {
		return batch.Request{}, err
	}

	namingCfg, err := b.promptNaming(ctx)
	if err != nil {
		return batch.Request{}, err
	}

	targets, err := b.promptPlacement(ctx)
	if err != nil {
		return batch.Request{}, err
	}

	overwrite, err := b.driver.Confirm(ctx, ConfirmConfig{
		Message: "Overwrite existing?",
		Default: true,
		Help:    "If a property with the same name exists, overwrite its value and UI metadata",
	})
	if err != nil {
		return batch.Request{}, err
	}

	return batch.Request{
		Count:     count,
		Type:      spec,
		Naming:    namingCfg,
		Targets:   targets,
		Overwrite: overwrite,
	}, nil
}

func (b *Builder) promptCount(ctx context.Context) (int, error) {
	for {
		raw, err := b.driver.Input(ctx, InputConfig{
			Message: "Count",
			Default: "1",
			Help:    "How many properties to create",
		})
		if err != nil {
			return 0, err
		}
		count, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || count < 1 {
			_ = b.driver.Info(ctx, "Count must be a whole number of at least 1")
			continue
		}
		return count, nil
	}
}

var typeLabels = []string{"Integer", "Float", "Boolean", "String"}

func (b *Builder) promptType(ctx context.Context) (attr.TypeDescriptor, error) {
	idx, err := b.driver.Select(ctx, SelectConfig{
		Message: "Type",
		Options: typeLabels,
		Help:    "Custom property data type",
	})
	if err != nil {
		return nil, err
	}

	switch idx {
	case 0:
		return b.promptIntSpec(ctx)
	case 1:
		return b.promptFloatSpec(ctx)
	case 2:
		def, err := b.driver.Confirm(ctx, ConfirmConfig{Message: "Default"})
		if err != nil {
			return nil, err
		}
		return attr.BoolSpec{DefaultValue: def}, nil
	case 3:
		return b.promptStringSpec(ctx)
	default:
		return nil, fmt.Errorf("form: invalid type selection %d", idx)
	}
}

func (b *Builder) promptIntSpec(ctx context.Context) (attr.TypeDescriptor, error) {
	def, err := b.promptInt(ctx, "Default", 0)
	if err != nil {
		return nil, err
	}
	min, err := b.promptInt(ctx, "Min", 0)
	if err != nil {
		return nil, err
	}
	max, err := b.promptInt(ctx, "Max", 100)
	if err != nil {
		return nil, err
	}
	return attr.IntSpec{DefaultValue: def, Min: min, Max: max}, nil
}

func (b *Builder) promptFloatSpec(ctx context.Context) (attr.TypeDescriptor, error) {
	def, err := b.promptFloat(ctx, "Default", 0)
	if err != nil {
		return nil, err
	}
	min, err := b.promptFloat(ctx, "Min", 0)
	if err != nil {
		return nil, err
	}
	max, err := b.promptFloat(ctx, "Max", 1)
	if err != nil {
		return nil, err
	}
	softMin, err := b.promptFloat(ctx, "Soft Min", min)
	if err != nil {
		return nil, err
	}
	softMax, err := b.promptFloat(ctx, "Soft Max", max)
	if err != nil {
		return nil, err
	}

	subtypes := attr.FloatSubtypes()
	options := make([]string, len(subtypes))
	for i, subtype := range subtypes {
		options[i] = string(subtype)
	}
	idx, err := b.driver.Select(ctx, SelectConfig{
		Message: "Subtype",
		Options: options,
		Help:    "UI hint for float",
	})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(subtypes) {
		idx = 0
	}

	return attr.FloatSpec{
		DefaultValue: def,
		Min:          min,
		Max:          max,
		SoftMin:      softMin,
		SoftMax:      softMax,
		Subtype:      subtypes[idx],
	}, nil
}

func (b *Builder) promptStringSpec(ctx context.Context) (attr.TypeDescriptor, error) {
	def, err := b.driver.Input(ctx, InputConfig{Message: "Default"})
	if err != nil {
		return nil, err
	}
	desc, err := b.driver.Input(ctx, InputConfig{
		Message: "Description",
		Help:    "Tooltip shown next to the property",
	})
	if err != nil {
		return nil, err
	}
	return attr.StringSpec{DefaultValue: def, Description: desc}, nil
}

func (b *Builder) promptNaming(ctx context.Context) (naming.Config, error) {
	base, err := b.driver.Input(ctx, InputConfig{
		Message: "Name",
		Default: "prop",
		Help:    "Base name; prefix, suffix and numbering wrap around it",
	})
	if err != nil {
		return naming.Config{}, err
	}
	prefix, err := b.driver.Input(ctx, InputConfig{Message: "Prefix"})
	if err != nil {
		return naming.Config{}, err
	}
	suffix, err := b.driver.Input(ctx, InputConfig{Message: "Suffix"})
	if err != nil {
		return naming.Config{}, err
	}

	cfg := naming.Config{BaseName: base, Prefix: prefix, Suffix: suffix}

	cfg.AutoIncrement, err = b.driver.Confirm(ctx, ConfirmConfig{
		Message: "Auto increment (001_, 002_, ...)?",
		Help:    "Automatically add a three-digit running number",
	})
	if err != nil {
		return naming.Config{}, err
	}
	if !cfg.AutoIncrement {
		return cfg, nil
	}

	cfg.StartIndex, err = b.promptInt(ctx, "Start from", 0)
	if err != nil {
		return naming.Config{}, err
	}
	cfg.NumberAsPrefix, err = b.driver.Confirm(ctx, ConfirmConfig{
		Message: "Number as prefix?",
		Default: true,
		Help:    "When enabled, numbering goes before the base name (e.g. 001_name)",
	})
	if err != nil {
		return naming.Config{}, err
	}
	return cfg, nil
}

func (b *Builder) promptPlacement(ctx context.Context) ([]attr.Container, error) {
	choices := b.provider.Available()
	if len(choices) == 0 {
		return nil, ErrNoPlacements
	}

	options := make([]string, len(choices))
	for i, choice := range choices {
		options[i] = choice.Label
	}

	for {
		idx, err := b.driver.Select(ctx, SelectConfig{
			Message: "Place in",
			Options: options,
			Help:    "Where to create the properties",
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(choices) {
			_ = b.driver.Info(ctx, "Invalid placement selection")
			continue
		}
		targets, err := b.provider.Resolve(choices[idx].Selector)
		if err != nil {
			return nil, err
		}
		return targets, nil
	}
}

func (b *Builder) promptInt(ctx context.Context, message string, def int) (int, error) {
	for {
		raw, err := b.driver.Input(ctx, InputConfig{
			Message: message,
			Default: strconv.Itoa(def),
		})
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			_ = b.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", message, err))
			continue
		}
		return value, nil
	}
}

func (b *Builder) promptFloat(ctx context.Context, message string, def float64) (float64, error) {
	for {
		raw, err := b.driver.Input(ctx, InputConfig{
			Message: message,
			Default: strconv.FormatFloat(def, 'g', -1, 64),
		})
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			_ = b.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", message, err))
			continue
		}
		return value, nil
	}
}
