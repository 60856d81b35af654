package scene

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-propgen/pkg/attr"
)

// The document layout keeps materials in a top-level list and references them
// from slots by name, so a material shared by several slots round-trips as a
// single identity.

type sceneDoc struct {
	Active    string      `yaml:"active,omitempty"`
	Materials []bagDoc    `yaml:"materials,omitempty"`
	Objects   []objectDoc `yaml:"objects"`
}

type objectDoc struct {
	Name       string   `yaml:"name"`
	Properties propsDoc `yaml:"properties,omitempty"`
	UI         uiDoc    `yaml:"ui,omitempty"`
	Data       *bagDoc  `yaml:"data,omitempty"`
	Slots      []string `yaml:"slots,omitempty"`
	ActiveSlot int      `yaml:"active_slot,omitempty"`
}

type bagDoc struct {
	Name       string   `yaml:"name"`
	Properties propsDoc `yaml:"properties,omitempty"`
	UI         uiDoc    `yaml:"ui,omitempty"`
}

type propsDoc map[string]any

type uiDoc map[string]uiEntryDoc

type uiEntryDoc struct {
	Description string   `yaml:"description,omitempty"`
	Default     any      `yaml:"default,omitempty"`
	Min         *float64 `yaml:"min,omitempty"`
	Max         *float64 `yaml:"max,omitempty"`
	SoftMin     *float64 `yaml:"soft_min,omitempty"`
	SoftMax     *float64 `yaml:"soft_max,omitempty"`
	Subtype     string   `yaml:"subtype,omitempty"`
}

// Load decodes a scene document.
func Load(data []byte) (*Scene, error) {
	var doc sceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: decode document: %w", err)
	}

	materials := make(map[string]*Material, len(doc.Materials))
	for _, md := range doc.Materials {
		if md.Name == "" {
			return nil, fmt.Errorf("scene: material without a name")
		}
		if _, exists := materials[md.Name]; exists {
			return nil, fmt.Errorf("scene: duplicate material %q", md.Name)
		}
		mat := NewMaterial(md.Name)
		fillBag(mat.PropertyBag, md)
		materials[md.Name] = mat
	}

	out := &Scene{Active: doc.Active}
	for _, od := range doc.Objects {
		if od.Name == "" {
			return nil, fmt.Errorf("scene: object without a name")
		}
		obj := NewObject(od.Name)
		fillBag(obj.PropertyBag, bagDoc{Properties: od.Properties, UI: od.UI})
		if od.Data != nil {
			obj.Data = NewDataBlock(od.Data.Name)
			fillBag(obj.Data.PropertyBag, *od.Data)
		}
		for _, slot := range od.Slots {
			if slot == "" {
				obj.Slots = append(obj.Slots, nil)
				continue
			}
			mat, ok := materials[slot]
			if !ok {
				return nil, fmt.Errorf("scene: object %q references unknown material %q", od.Name, slot)
			}
			obj.Slots = append(obj.Slots, mat)
		}
		obj.ActiveSlot = od.ActiveSlot
		out.Objects = append(out.Objects, obj)
	}
	return out, nil
}

// LoadFile reads and decodes a scene document from path.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	return Load(data)
}

// Marshal encodes the scene back into its document form.
func Marshal(s *Scene) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("scene: scene is nil")
	}

	doc := sceneDoc{Active: s.Active}

	matNames := make(map[*Material]string)
	for _, obj := range s.Objects {
		for _, mat := range obj.Materials() {
			if _, ok := matNames[mat]; ok {
				continue
			}
			matNames[mat] = mat.Name
			doc.Materials = append(doc.Materials, dumpBag(mat.Name, mat.PropertyBag))
		}
	}
	sort.Slice(doc.Materials, func(i, j int) bool {
		return doc.Materials[i].Name < doc.Materials[j].Name
	})

	for _, obj := range s.Objects {
		od := objectDoc{
			Name:       obj.Name,
			ActiveSlot: obj.ActiveSlot,
		}
		bag := dumpBag(obj.Name, obj.PropertyBag)
		od.Properties = bag.Properties
		od.UI = bag.UI
		if obj.Data != nil {
			data := dumpBag(obj.Data.Name, obj.Data.PropertyBag)
			od.Data = &data
		}
		for _, mat := range obj.Slots {
			if mat == nil {
				od.Slots = append(od.Slots, "")
				continue
			}
			od.Slots = append(od.Slots, mat.Name)
		}
		doc.Objects = append(doc.Objects, od)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("scene: encode document: %w", err)
	}
	return data, nil
}

// SaveFile encodes the scene and writes it to path.
func SaveFile(s *Scene, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scene: write %s: %w", path, err)
	}
	return nil
}

func fillBag(bag *PropertyBag, doc bagDoc) {
	for key, value := range doc.Properties {
		bag.Set(key, value)
	}
	for key, entry := range doc.UI {
		if !bag.Has(key) {
			continue
		}
		meta := attr.Metadata{
			Default: entry.Default,
			Min:     entry.Min,
			Max:     entry.Max,
			SoftMin: entry.SoftMin,
			SoftMax: entry.SoftMax,
		}
		if entry.Description != "" {
			desc := entry.Description
			meta.Description = &desc
		}
		if entry.Subtype != "" {
			subtype := attr.FloatSubtype(entry.Subtype)
			meta.Subtype = &subtype
		}
		_ = bag.ApplyMetadata(key, meta)
	}
}

func dumpBag(name string, bag *PropertyBag) bagDoc {
	doc := bagDoc{Name: name}
	if bag == nil || bag.Len() == 0 {
		return doc
	}
	doc.Properties = make(propsDoc, bag.Len())
	for _, key := range bag.Keys() {
		value, _ := bag.Get(key)
		doc.Properties[key] = value
	}
	for _, key := range bag.Keys() {
		meta, ok := bag.Metadata(key)
		if !ok {
			continue
		}
		if doc.UI == nil {
			doc.UI = make(uiDoc)
		}
		entry := uiEntryDoc{
			Default: meta.Default,
			Min:     meta.Min,
			Max:     meta.Max,
			SoftMin: meta.SoftMin,
			SoftMax: meta.SoftMax,
		}
		if meta.Description != nil {
			entry.Description = *meta.Description
		}
		if meta.Subtype != nil {
			entry.Subtype = string(*meta.Subtype)
		}
		doc.UI[key] = entry
	}
	return doc
}
