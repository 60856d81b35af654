package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-propgen/pkg/batch"
	"github.com/goliatone/go-propgen/pkg/form"
	"github.com/goliatone/go-propgen/pkg/naming"
	"github.com/goliatone/go-propgen/pkg/placement"
	"github.com/goliatone/go-propgen/pkg/scene"
	"github.com/goliatone/go-propgen/pkg/schemaimport"
	"github.com/goliatone/go-propgen/pkg/writer"
)

func main() {
	scenePath := flag.String("scene", "scene.yaml", "scene document path")
	objectName := flag.String("object", "", "object to target (defaults to the scene's active object)")
	output := flag.String("output", "", "output path (defaults to the scene path)")
	schemaPath := flag.String("schema", "", "OpenAPI document to import attribute specs from instead of prompting")
	schemaName := flag.String("schema-name", "", "component schema to import (requires -schema)")
	place := flag.String("placement", string(placement.SelectorObject), "placement for schema imports (OBJECT, DATA, ACTIVE_MATERIAL, ALL_MATERIALS)")
	overwrite := flag.Bool("overwrite", true, "overwrite existing attributes during schema imports")
	flag.Parse()

	ctx := context.Background()

	doc, err := scene.LoadFile(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	obj := doc.ActiveObject()
	if *objectName != "" {
		obj = doc.Object(*objectName)
	}
	if obj == nil {
		log.Fatalf("No object selected: %v", placement.ErrNoActiveSelection)
	}

	provider := scene.NewProvider(obj)
	runner := batch.New(batch.WithWarningHandler(func(w writer.MetadataWarning) {
		log.Printf("warning: metadata for %q not applied: %v", w.Key, w.Err)
	}))

	var summary batch.Summary
	if *schemaPath != "" {
		summary, err = runImport(ctx, runner, provider, *schemaPath, *schemaName, *place, *overwrite)
	} else {
		summary, err = runForm(ctx, runner, provider)
	}
	if err != nil {
		if errors.Is(err, form.ErrAborted) {
			log.Fatal("Aborted.")
		}
		log.Fatalf("Failed to generate attributes: %v", err)
	}

	target := *output
	if target == "" {
		target = *scenePath
	}
	if err := scene.SaveFile(doc, target); err != nil {
		log.Fatalf("Failed to save scene: %v", err)
	}

	fmt.Printf("%s on %q; scene written to %s\n", summary, obj.Name, target)
}

func runForm(ctx context.Context, runner *batch.Runner, provider placement.Provider) (batch.Summary, error) {
	req, err := form.NewBuilder(provider).Run(ctx)
	if err != nil {
		return batch.Summary{}, err
	}
	return runner.Run(ctx, req)
}

func runImport(ctx context.Context, runner *batch.Runner, provider placement.Provider, path, schemaName, place string, overwrite bool) (batch.Summary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return batch.Summary{}, fmt.Errorf("read schema: %w", err)
	}

	props, err := schemaimport.FromDocument(ctx, raw, schemaName)
	if err != nil {
		return batch.Summary{}, err
	}

	targets, err := provider.Resolve(placement.Selector(place))
	if err != nil {
		return batch.Summary{}, err
	}

	var total batch.Summary
	for _, prop := range props {
		summary, err := runner.Run(ctx, batch.Request{
			Count:     1,
			Type:      prop.Spec,
			Naming:    naming.Config{BaseName: prop.Name},
			Targets:   targets,
			Overwrite: overwrite,
		})
		if err != nil {
			return total, fmt.Errorf("import %q: %w", prop.Name, err)
		}
		total.Created += summary.Created
		total.Updated += summary.Updated
		total.Skipped += summary.Skipped
		total.Targets = summary.Targets
	}
	return total, nil
}
