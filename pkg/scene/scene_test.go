package scene

import (
	"errors"
	"testing"

	"github.com/goliatone/go-propgen/pkg/attr"
	"github.com/goliatone/go-propgen/pkg/placement"
)

func TestProvider_Available(t *testing.T) {
	obj := NewObject("Cube")
	provider := NewProvider(obj)

	selectors := availableSelectors(provider)
	if len(selectors) != 1 || selectors[0] != placement.SelectorObject {
		t.Fatalf("bare object should only offer OBJECT, got %v", selectors)
	}

	obj.Data = NewDataBlock("CubeMesh")
	mat := NewMaterial("Red")
	obj.Slots = append(obj.Slots, mat)

	selectors = availableSelectors(provider)
	want := []placement.Selector{
		placement.SelectorObject,
		placement.SelectorData,
		placement.SelectorActiveMaterial,
		placement.SelectorAllMaterials,
	}
	if len(selectors) != len(want) {
		t.Fatalf("want %v, got %v", want, selectors)
	}
	for i, sel := range want {
		if selectors[i] != sel {
			t.Fatalf("want %v, got %v", want, selectors)
		}
	}
}

func TestProvider_ResolveErrors(t *testing.T) {
	obj := NewObject("Cube")
	provider := NewProvider(obj)

	cases := []struct {
		name string
		sel  placement.Selector
		want error
	}{
		{name: "no data block", sel: placement.SelectorData, want: placement.ErrNoData},
		{name: "no active material", sel: placement.SelectorActiveMaterial, want: placement.ErrNoActiveMaterial},
		{name: "no materials", sel: placement.SelectorAllMaterials, want: placement.ErrNoMaterials},
		{name: "unknown selector", sel: placement.Selector("BOGUS"), want: placement.ErrUnknownSelector},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := provider.Resolve(tc.sel); !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestProvider_NoSelection(t *testing.T) {
	provider := NewProvider(nil)
	if _, err := provider.Resolve(placement.SelectorObject); !errors.Is(err, placement.ErrNoActiveSelection) {
		t.Fatalf("want ErrNoActiveSelection, got %v", err)
	}
}

func TestProvider_AllMaterialsDedupesSharedSlots(t *testing.T) {
	obj := NewObject("Cube")
	red := NewMaterial("Red")
	blue := NewMaterial("Blue")
	obj.Slots = []*Material{red, blue, red, nil}

	containers, err := NewProvider(obj).Resolve(placement.SelectorAllMaterials)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(containers) != 2 {
		t.Fatalf("want 2 deduplicated materials, got %d", len(containers))
	}
	if containers[0] != attr.Container(red) || containers[1] != attr.Container(blue) {
		t.Fatalf("slot order must be preserved")
	}
}

func TestProvider_ActiveMaterialFollowsActiveSlot(t *testing.T) {
	obj := NewObject("Cube")
	red := NewMaterial("Red")
	blue := NewMaterial("Blue")
	obj.Slots = []*Material{red, blue}
	obj.ActiveSlot = 1

	containers, err := NewProvider(obj).Resolve(placement.SelectorActiveMaterial)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(containers) != 1 || containers[0] != attr.Container(blue) {
		t.Fatalf("want active slot material, got %v", containers)
	}
}

func TestLoadMarshal_RoundTrip(t *testing.T) {
	doc := []byte(`
active: Cube
materials:
  - name: Red
    properties:
      glow: 0.5
    ui:
      glow:
        description: emissive strength
        min: 0
        max: 1
        subtype: FACTOR
objects:
  - name: Cube
    properties:
      health: 10
    data:
      name: CubeMesh
    slots: [Red, Red]
`)

	s, err := Load(doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	obj := s.ActiveObject()
	if obj == nil || obj.Name != "Cube" {
		t.Fatalf("active object not resolved: %+v", s)
	}
	if v, ok := obj.Get("health"); !ok || v != 10 {
		t.Fatalf("object property missing, got %v", v)
	}
	if obj.Data == nil || obj.Data.Name != "CubeMesh" {
		t.Fatalf("data block missing: %+v", obj)
	}

	mats := obj.Materials()
	if len(mats) != 1 {
		t.Fatalf("shared slots must load as one identity, got %d", len(mats))
	}
	meta, ok := mats[0].Metadata("glow")
	if !ok || meta.Subtype == nil || *meta.Subtype != attr.SubtypeFactor {
		t.Fatalf("material metadata not loaded: %+v", meta)
	}

	out, err := Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	again, err := Load(out)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.ActiveObject() == nil || len(again.ActiveObject().Materials()) != 1 {
		t.Fatalf("round trip lost material identity")
	}
}

func TestLoad_UnknownMaterialRef(t *testing.T) {
	_, err := Load([]byte("objects:\n  - name: Cube\n    slots: [Missing]\n"))
	if err == nil {
		t.Fatalf("expected error for unknown material reference")
	}
}

func availableSelectors(p *Provider) []placement.Selector {
	choices := p.Available()
	out := make([]placement.Selector, 0, len(choices))
	for _, choice := range choices {
		out = append(out, choice.Selector)
	}
	return out
}
