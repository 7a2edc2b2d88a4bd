package validator

// Validator validates annotated structs.
type Validator interface {
	// Validate returns nil when data passes all rules, or an error carrying
	// the per-field violations.
	Validate(data any) error
}
