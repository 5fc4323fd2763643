package model

// Category is one entry in the category registry.
type Category struct {
	Key  string // lowercase lookup key, e.g. "food"
	Name string // display name, e.g. "Food & Dining"
}
