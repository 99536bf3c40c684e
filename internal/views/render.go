package views

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"nexodus-admin-backend/internal/models"

	"github.com/tidwall/gjson"
)

// ActionPredicate decides whether a named action is offered on record to identity.
// Either argument may be nil.
type ActionPredicate func(record interface{}, identity *models.Identity) bool

// ReferenceLink points a cell at another resource
type ReferenceLink struct {
	Resource string `json:"resource"`
	ID       string `json:"id"`
	Link     string `json:"link,omitempty"`
}

// ActionRef is an action offered on a row
type ActionRef struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Cell is the rendered value of one field of one record
type Cell struct {
	Field     string         `json:"field"`
	Value     interface{}    `json:"value"`
	Reference *ReferenceLink `json:"reference,omitempty"`
	Action    *ActionRef     `json:"action,omitempty"`
}

// Row is a rendered record
type Row struct {
	ID    string `json:"id"`
	Cells []Cell `json:"cells"`
}

// Renderer composes records into rows of a view
type Renderer struct {
	mu         sync.RWMutex
	predicates map[string]ActionPredicate
}

// NewRenderer creates a renderer with no actions registered. Actions without a
// registered predicate are never offered.
func NewRenderer() *Renderer {
	return &Renderer{predicates: make(map[string]ActionPredicate)}
}

// RegisterAction sets the visibility predicate of action
func (r *Renderer) RegisterAction(action string, predicate ActionPredicate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.predicates[action] = predicate
}

// ActionVisible reports whether action is offered on record to identity
func (r *Renderer) ActionVisible(action string, record interface{}, identity *models.Identity) bool {
	r.mu.RLock()
	predicate, ok := r.predicates[action]
	r.mu.RUnlock()
	if !ok || record == nil || identity == nil {
		return false
	}
	return predicate(record, identity)
}

// Rows renders records against view. records must be a slice of JSON serializable values.
func (r *Renderer) Rows(view *View, records []interface{}, identity *models.Identity) ([]Row, error) {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		row, err := r.Row(view, record, identity)
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}
	return rows, nil
}

// Row renders a single record against view
func (r *Renderer) Row(view *View, record interface{}, identity *models.Identity) (*Row, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s record: %w", view.Resource, err)
	}
	doc := gjson.ParseBytes(raw)

	row := &Row{
		ID:    doc.Get("id").String(),
		Cells: make([]Cell, 0, len(view.Fields)),
	}
	for _, field := range view.Fields {
		cell := Cell{Field: field.Name}
		switch field.Type {
		case FieldAction:
			if r.ActionVisible(field.Action, record, identity) {
				cell.Action = &ActionRef{Name: field.Action, Label: field.Label}
			}
		case FieldReference:
			value := doc.Get(field.Source)
			cell.Value = value.Value()
			if value.Exists() && value.Type != gjson.Null {
				cell.Reference = &ReferenceLink{Resource: field.Reference, ID: value.String(), Link: field.Link}
			}
		default:
			cell.Value = doc.Get(field.Source).Value()
		}
		row.Cells = append(row.Cells, cell)
	}
	return row, nil
}

// WriteCSV writes rows as CSV with one column per non-action field of view
func WriteCSV(w io.Writer, view *View, rows []Row) error {
	cw := csv.NewWriter(w)

	var header []string
	var columns []string
	for _, f := range view.Fields {
		if f.Type == FieldAction {
			continue
		}
		header = append(header, f.Label)
		columns = append(columns, f.Name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		values := make(map[string]interface{}, len(row.Cells))
		for _, c := range row.Cells {
			values[c.Field] = c.Value
		}
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = csvValue(values[col])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %s: %w", row.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV renders records against view and returns them as CSV
func (r *Renderer) ExportCSV(view *View, records []interface{}) ([]byte, error) {
	rows, err := r.Rows(view, records, nil)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, view, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64, bool:
		return fmt.Sprint(val)
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(raw)
	}
}
