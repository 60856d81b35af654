package form

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-propgen/pkg/attr"
	"github.com/goliatone/go-propgen/pkg/batch"
	"github.com/goliatone/go-propgen/pkg/naming"
	"github.com/goliatone/go-propgen/pkg/placement"
	"github.com/goliatone/go-propgen/pkg/testsupport"
)

// scriptDriver replays canned answers in prompt order.
type scriptDriver struct {
	t        *testing.T
	inputs   []string
	confirms []bool
	selects  []int
	infos    []string
}

func (d *scriptDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.t.Helper()
	if len(d.inputs) == 0 {
		d.t.Fatalf("unexpected input prompt %q", cfg.Message)
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	if answer == "" {
		return cfg.Default, nil
	}
	return answer, nil
}

func (d *scriptDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.t.Helper()
	if len(d.confirms) == 0 {
		d.t.Fatalf("unexpected confirm prompt %q", cfg.Message)
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.t.Helper()
	if len(d.selects) == 0 {
		d.t.Fatalf("unexpected select prompt %q", cfg.Message)
	}
	answer := d.selects[0]
	d.selects = d.selects[1:]
	return answer, nil
}

func (d *scriptDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

// staticProvider serves a fixed choice set and container list.
type staticProvider struct {
	choices    []placement.Choice
	containers []attr.Container
	err        error
}

func (p *staticProvider) Available() []placement.Choice {
	return p.choices
}

func (p *staticProvider) Resolve(placement.Selector) ([]attr.Container, error) {
	return p.containers, p.err
}

func TestRun_IntWithNumbering(t *testing.T) {
	target := testsupport.NewContainer()
	provider := &staticProvider{
		choices:    []placement.Choice{{Selector: placement.SelectorObject, Label: "Object Properties"}},
		containers: []attr.Container{target},
	}
	driver := &scriptDriver{
		t: t,
		// count, int default/min/max, base name, prefix, suffix, start index
		inputs: []string{"3", "5", "0", "10", "prop", "", "", "0"},
		// auto increment on, number as prefix, overwrite
		confirms: []bool{true, true, true},
		// type = Integer, placement = first choice
		selects: []int{0, 0},
	}

	req, err := NewBuilder(provider, WithDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := batch.Request{
		Count: 3,
		Type:  attr.IntSpec{DefaultValue: 5, Min: 0, Max: 10},
		Naming: naming.Config{
			BaseName:       "prop",
			AutoIncrement:  true,
			NumberAsPrefix: true,
		},
		Targets:   []attr.Container{target},
		Overwrite: true,
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_NumberingPromptsOnlyWhenEnabled(t *testing.T) {
	provider := &staticProvider{
		choices:    []placement.Choice{{Selector: placement.SelectorObject, Label: "Object Properties"}},
		containers: []attr.Container{testsupport.NewContainer()},
	}
	driver := &scriptDriver{
		t: t,
		// count, bool has no value inputs, base name, prefix, suffix; no
		// start-index input may be consumed when auto increment is off
		inputs: []string{"1", "flag", "", ""},
		// bool default, auto increment off, overwrite
		confirms: []bool{true, false, false},
		// type = Boolean, placement
		selects: []int{2, 0},
	}

	req, err := NewBuilder(provider, WithDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if req.Naming.AutoIncrement {
		t.Fatalf("auto increment should be off")
	}
	if req.Naming.NumberAsPrefix {
		t.Fatalf("number-as-prefix must stay unset when numbering is off")
	}
	if len(driver.inputs) != 0 || len(driver.confirms) != 0 || len(driver.selects) != 0 {
		t.Fatalf("script not fully consumed: %d inputs, %d confirms, %d selects left",
			len(driver.inputs), len(driver.confirms), len(driver.selects))
	}
}

func TestRun_FloatSubtypeSelection(t *testing.T) {
	provider := &staticProvider{
		choices:    []placement.Choice{{Selector: placement.SelectorObject, Label: "Object Properties"}},
		containers: []attr.Container{testsupport.NewContainer()},
	}
	driver := &scriptDriver{
		t: t,
		// count, float default/min/max/soft-min/soft-max, base name, prefix, suffix
		inputs: []string{"1", "0.5", "0", "1", "0.1", "0.9", "speed", "", ""},
		// auto increment off, overwrite
		confirms: []bool{false, true},
		// type = Float, subtype = FACTOR (index 2), placement
		selects: []int{1, 2, 0},
	}

	req, err := NewBuilder(provider, WithDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	spec, ok := req.Type.(attr.FloatSpec)
	if !ok {
		t.Fatalf("want FloatSpec, got %T", req.Type)
	}
	if spec.Subtype != attr.SubtypeFactor {
		t.Fatalf("want FACTOR, got %q", spec.Subtype)
	}
	if spec.SoftMin != 0.1 || spec.SoftMax != 0.9 {
		t.Fatalf("soft bounds not captured: %v..%v", spec.SoftMin, spec.SoftMax)
	}
}

func TestRun_InvalidCountReprompts(t *testing.T) {
	provider := &staticProvider{
		choices:    []placement.Choice{{Selector: placement.SelectorObject, Label: "Object Properties"}},
		containers: []attr.Container{testsupport.NewContainer()},
	}
	driver := &scriptDriver{
		t:        t,
		inputs:   []string{"zero", "0", "2", "flag", "", ""},
		confirms: []bool{false, false, true},
		selects:  []int{2, 0},
	}

	req, err := NewBuilder(provider, WithDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if req.Count != 2 {
		t.Fatalf("want count 2 after reprompts, got %d", req.Count)
	}
	if len(driver.infos) != 2 {
		t.Fatalf("want 2 validation notices, got %v", driver.infos)
	}
}

func TestRun_NoPlacements(t *testing.T) {
	driver := &scriptDriver{
		t:        t,
		inputs:   []string{"1", "flag", "", ""},
		confirms: []bool{false, false},
		selects:  []int{2},
	}
	_, err := NewBuilder(&staticProvider{}, WithDriver(driver)).Run(context.Background())
	if err != ErrNoPlacements {
		t.Fatalf("want ErrNoPlacements, got %v", err)
	}
}
