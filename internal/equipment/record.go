// Package equipment holds the record type shared by the inventory examples.
package equipment

import "fmt"

// Well-known status values. Status is free-form text; these are only the
// values the examples use.
const (
	StatusAvailable = "available"
	StatusInRepair  = "in repair"
)

// Record is a single piece of equipment. No field is validated and names
// need not be unique.
type Record struct {
	Name   string `yaml:"name" json:"name"`
	Kind   string `yaml:"kind" json:"kind"`
	Status string `yaml:"status" json:"status"`
}

// NewRecord builds a Record from its three fields.
func NewRecord(name, kind, status string) Record {
	return Record{Name: name, Kind: kind, Status: status}
}

// String renders the record the way the console demos print it.
func (r Record) String() string {
	return fmt.Sprintf("{name:%q, kind:%q, status:%q}", r.Name, r.Kind, r.Status)
}
