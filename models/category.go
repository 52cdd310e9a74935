package models

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryMap is the wire shape for category listings: id keys are
// string-encoded integers.
type CategoryMap map[string]string
