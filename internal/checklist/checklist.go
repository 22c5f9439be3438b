// Package checklist holds the contract between the image-analysis
// collaborator and the watering core: a list of labels with checked flags.
// Checked labels become watering requests; the core decides nothing here.
package checklist

import (
	"encoding/json"
	"fmt"
)

// Item is one checklist row.
type Item struct {
	Label            string `json:"label"`
	CheckboxIsFilled bool   `json:"checkboxIsFilled"`
}

// Document is an extracted checklist.
type Document struct {
	Items []Item `json:"content"`
}

// wrapped is the envelope some producers put around the document.
type wrapped struct {
	Analysis *Document `json:"analysis"`
}

// Parse decodes a checklist from JSON. Both the bare document form
// {"content": [...]} and the wrapped form {"analysis": {"content": [...]}}
// are accepted.
func Parse(data []byte) (*Document, error) {
	var w wrapped
	if err := json.Unmarshal(data, &w); err == nil && w.Analysis != nil {
		return w.Analysis, nil
	}

	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing checklist: %w", err)
	}
	if d.Items == nil {
		return nil, fmt.Errorf("parsing checklist: no content field")
	}
	return &d, nil
}

// Labels returns every label in document order.
func (d *Document) Labels() []string {
	labels := make([]string, 0, len(d.Items))
	for _, item := range d.Items {
		labels = append(labels, item.Label)
	}
	return labels
}

// CheckedLabels returns the labels whose checkbox is filled, in document
// order. This ordering carries through to admission: first checked, first
// admitted.
func (d *Document) CheckedLabels() []string {
	var labels []string
	for _, item := range d.Items {
		if item.CheckboxIsFilled {
			labels = append(labels, item.Label)
		}
	}
	return labels
}

// SetChecked flips the checkbox of the first item with the given label.
// Returns false when no item matches.
func (d *Document) SetChecked(label string, checked bool) bool {
	for i := range d.Items {
		if d.Items[i].Label == label {
			d.Items[i].CheckboxIsFilled = checked
			return true
		}
	}
	return false
}

// JSON renders the document in the wrapped form.
func (d *Document) JSON() ([]byte, error) {
	return json.Marshal(wrapped{Analysis: d})
}
