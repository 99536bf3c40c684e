package views

import (
	_ "embed"
	"fmt"
	"slices"

	apperrors "nexodus-admin-backend/internal/errors"
	"nexodus-admin-backend/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed resources.yaml
var defaultResources []byte

// IdentityPlaceholder in an input filter is replaced by the signed-in identity's id
const IdentityPlaceholder = "$identity.id"

// Kind names one of the views of a resource
type Kind string

const (
	KindList   Kind = "list"
	KindShow   Kind = "show"
	KindCreate Kind = "create"
)

// FieldType is how a field renders
type FieldType string

const (
	FieldText      FieldType = "text"
	FieldReference FieldType = "reference"
	FieldDate      FieldType = "date"
	FieldAction    FieldType = "action"
)

// InputType is the widget used by a create form input
type InputType string

const (
	InputText      InputType = "text"
	InputReference InputType = "reference"
	InputDateTime  InputType = "datetime"
)

// Field is a column of a list view or a line of a show view
type Field struct {
	Name      string    `yaml:"name" json:"name"`
	Label     string    `yaml:"label" json:"label"`
	Source    string    `yaml:"source,omitempty" json:"source,omitempty"` // dotted path into the record
	Type      FieldType `yaml:"type" json:"type"`
	Reference string    `yaml:"reference,omitempty" json:"reference,omitempty"`
	Link      string    `yaml:"link,omitempty" json:"link,omitempty"`
	Action    string    `yaml:"action,omitempty" json:"action,omitempty"`
}

// Input is a field of a create form
type Input struct {
	Name       string            `yaml:"name" json:"name"`
	Label      string            `yaml:"label" json:"label"`
	Source     string            `yaml:"source" json:"source"`
	Type       InputType         `yaml:"type" json:"type"`
	Required   bool              `yaml:"required,omitempty" json:"required,omitempty"`
	Reference  string            `yaml:"reference,omitempty" json:"reference,omitempty"`
	OptionText string            `yaml:"option_text,omitempty" json:"option_text,omitempty"`
	Filter     map[string]string `yaml:"filter,omitempty" json:"filter,omitempty"`
}

// View declares how one resource is listed, shown or created
type View struct {
	Resource    string   `yaml:"-" json:"resource"`
	Kind        Kind     `yaml:"-" json:"kind"`
	RowClick    string   `yaml:"row_click,omitempty" json:"row_click,omitempty"`
	BulkActions []string `yaml:"bulk_actions,omitempty" json:"bulk_actions,omitempty"`
	Fields      []Field  `yaml:"fields,omitempty" json:"fields,omitempty"`
	Inputs      []Input  `yaml:"inputs,omitempty" json:"inputs,omitempty"`
}

// Input returns the input named name
func (v *View) Input(name string) (*Input, bool) {
	for i := range v.Inputs {
		if v.Inputs[i].Name == name {
			return &v.Inputs[i], true
		}
	}
	return nil, false
}

// BindIdentity returns a copy of the view whose input filters have the identity
// placeholder replaced by identity's id
func (v *View) BindIdentity(identity *models.Identity) *View {
	bound := *v
	bound.Inputs = make([]Input, len(v.Inputs))
	for i, in := range v.Inputs {
		if len(in.Filter) > 0 {
			filter := make(map[string]string, len(in.Filter))
			for k, val := range in.Filter {
				if val == IdentityPlaceholder && identity != nil {
					val = identity.ID.String()
				}
				filter[k] = val
			}
			in.Filter = filter
		}
		bound.Inputs[i] = in
	}
	return &bound
}

type resourceViews struct {
	List   *View `yaml:"list"`
	Show   *View `yaml:"show"`
	Create *View `yaml:"create"`
}

type document struct {
	Resources map[string]resourceViews `yaml:"resources"`
}

// Registry holds the declared views by resource and kind
type Registry struct {
	views map[string]map[Kind]*View
}

// NewRegistry parses the embedded resource declarations
func NewRegistry() (*Registry, error) {
	return Parse(defaultResources)
}

// Parse builds a registry from a YAML resource document
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse resource declarations: %w", err)
	}

	r := &Registry{views: make(map[string]map[Kind]*View)}
	for resource, rv := range doc.Resources {
		kinds := make(map[Kind]*View)
		for kind, view := range map[Kind]*View{KindList: rv.List, KindShow: rv.Show, KindCreate: rv.Create} {
			if view == nil {
				continue
			}
			view.Resource = resource
			view.Kind = kind
			if err := validateView(view); err != nil {
				return nil, fmt.Errorf("resource %s %s view: %w", resource, kind, err)
			}
			kinds[kind] = view
		}
		r.views[resource] = kinds
	}
	return r, nil
}

func validateView(v *View) error {
	for _, f := range v.Fields {
		switch f.Type {
		case FieldText, FieldDate:
			if f.Source == "" {
				return fmt.Errorf("field %s has no source", f.Name)
			}
		case FieldReference:
			if f.Source == "" || f.Reference == "" {
				return fmt.Errorf("reference field %s needs a source and a reference", f.Name)
			}
		case FieldAction:
			if f.Action == "" {
				return fmt.Errorf("action field %s names no action", f.Name)
			}
		default:
			return fmt.Errorf("field %s has unknown type %q", f.Name, f.Type)
		}
	}
	for _, in := range v.Inputs {
		switch in.Type {
		case InputText, InputDateTime:
		case InputReference:
			if in.Reference == "" {
				return fmt.Errorf("reference input %s names no resource", in.Name)
			}
		default:
			return fmt.Errorf("input %s has unknown type %q", in.Name, in.Type)
		}
	}
	return nil
}

// View returns the view of kind declared for resource
func (r *Registry) View(resource string, kind Kind) (*View, error) {
	kinds, ok := r.views[resource]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	view, ok := kinds[kind]
	if !ok {
		return nil, apperrors.ErrViewNotFound
	}
	return view, nil
}

// MustView is View for declarations known to exist
func (r *Registry) MustView(resource string, kind Kind) *View {
	view, err := r.View(resource, kind)
	if err != nil {
		panic(fmt.Sprintf("views: %s %s: %v", resource, kind, err))
	}
	return view
}

// Resources lists the declared resources with their sorted view kinds
func (r *Registry) Resources() map[string][]Kind {
	out := make(map[string][]Kind, len(r.views))
	for resource, kinds := range r.views {
		list := make([]Kind, 0, len(kinds))
		for k := range kinds {
			list = append(list, k)
		}
		slices.Sort(list)
		out[resource] = list
	}
	return out
}
