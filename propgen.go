// Package propgen generates batches of typed custom attributes on
// host-managed containers: compose N names from a naming configuration, then
// create or update each attribute's value and UI metadata on every target.
// The root package re-exports the common types and offers a one-call entry
// point; see pkg/batch for the full pipeline.
package propgen

import (
	"context"

	"github.com/goliatone/go-propgen/pkg/attr"
	"github.com/goliatone/go-propgen/pkg/batch"
	"github.com/goliatone/go-propgen/pkg/naming"
	"github.com/goliatone/go-propgen/pkg/writer"
)

// TypeDescriptor describes the kind, default and UI metadata of a generated
// attribute.
type TypeDescriptor = attr.TypeDescriptor

// IntSpec, FloatSpec, BoolSpec and StringSpec are the descriptor variants.
type (
	IntSpec    = attr.IntSpec
	FloatSpec  = attr.FloatSpec
	BoolSpec   = attr.BoolSpec
	StringSpec = attr.StringSpec
)

// Container is the capability interface host adapters implement.
type Container = attr.Container

// NamingConfig controls how the batch's attribute names are assembled.
type NamingConfig = naming.Config

// Request describes one batch-apply invocation.
type Request = batch.Request

// Summary tallies what a run did.
type Summary = batch.Summary

// MetadataWarning reports a non-fatal metadata application failure.
type MetadataWarning = writer.MetadataWarning

// NewRunner exposes the batch runner constructor from the top-level module.
func NewRunner(options ...batch.Option) *batch.Runner {
	return batch.New(options...)
}

// Generate runs a batch request with a default runner. It is the simplest
// entry point for callers that just want the attributes written.
func Generate(ctx context.Context, req Request, options ...batch.Option) (Summary, error) {
	return batch.New(options...).Run(ctx, req)
}
