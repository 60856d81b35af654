package scene

import (
	"github.com/goliatone/go-propgen/pkg/attr"
	"github.com/goliatone/go-propgen/pkg/placement"
)

// Provider adapts one object to the placement.Provider contract.
type Provider struct {
	obj *Object
}

// NewProvider constructs a provider over obj. A nil object is reported as a
// missing selection at resolve time.
func NewProvider(obj *Object) *Provider {
	return &Provider{obj: obj}
}

var _ placement.Provider = (*Provider)(nil)

// Available reports the placements the object's capabilities allow: the
// object itself always, its data block when present, and the material
// placements when at least one slot is populated.
func (p *Provider) Available() []placement.Choice {
	choices := []placement.Choice{{
		Selector:    placement.SelectorObject,
		Label:       "Object Properties",
		Description: "Place on the object datablock",
	}}
	if p.obj == nil {
		return choices
	}
	if p.obj.Data != nil {
		choices = append(choices, placement.Choice{
			Selector:    placement.SelectorData,
			Label:       "Object Data Properties",
			Description: "Place on the object's data datablock",
		})
	}
	if len(p.obj.Materials()) > 0 {
		choices = append(choices,
			placement.Choice{
				Selector:    placement.SelectorActiveMaterial,
				Label:       "Active Material",
				Description: "Place on the active material only",
			},
			placement.Choice{
				Selector:    placement.SelectorAllMaterials,
				Label:       "All Materials",
				Description: "Place on every assigned material",
			},
		)
	}
	return choices
}

// Resolve maps sel to the containers it implies for the object.
func (p *Provider) Resolve(sel placement.Selector) ([]attr.Container, error) {
	if p.obj == nil {
		return nil, placement.ErrNoActiveSelection
	}
	switch sel {
	case placement.SelectorObject:
		return []attr.Container{p.obj}, nil
	case placement.SelectorData:
		if p.obj.Data == nil {
			return nil, placement.ErrNoData
		}
		return []attr.Container{p.obj.Data}, nil
	case placement.SelectorActiveMaterial:
		mat := p.obj.ActiveMaterial()
		if mat == nil {
			return nil, placement.ErrNoActiveMaterial
		}
		return []attr.Container{mat}, nil
	case placement.SelectorAllMaterials:
		mats := p.obj.Materials()
		if len(mats) == 0 {
			return nil, placement.ErrNoMaterials
		}
		containers := make([]attr.Container, 0, len(mats))
		for _, mat := range mats {
			containers = append(containers, mat)
		}
		return containers, nil
	default:
		return nil, placement.ErrUnknownSelector
	}
}
