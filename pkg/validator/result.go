package validator

// FieldResult is the outcome of a single-field validator.
// Error is empty if and only if IsValid is true.
type FieldResult struct {
	IsValid bool             `json:"is_valid"`
	Error   string           `json:"error"`
	Detail  *ValidationError `json:"-"`
}

// Result is the outcome of a record validator.
// Errors is empty if and only if IsValid is true and keeps the declared check order.
type Result struct {
	IsValid bool             `json:"is_valid"`
	Errors  []string         `json:"errors"`
	Details ValidationErrors `json:"-"`
}

// Valid returns a passing field result.
func Valid() FieldResult {
	return FieldResult{IsValid: true}
}

// Invalid returns a failing field result built from err.
func Invalid(err ValidationError) FieldResult {
	return FieldResult{Error: err.Message, Detail: &err}
}

// NewResult builds a record result from collected errors.
func NewResult(errs ValidationErrors) Result {
	return Result{
		IsValid: len(errs) == 0,
		Errors:  errs.Messages(),
		Details: errs,
	}
}

// Err returns the failures as an error, or nil when the result is valid.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	return r.Details
}

// Rule adapts a field result into a record rule reported under field.
func (f FieldResult) Rule(field string) Rule {
	if f.IsValid || f.Detail == nil {
		return Rule{Check: func() bool { return true }}
	}
	err := *f.Detail
	err.Field = field
	return Rule{Check: func() bool { return false }, Error: err}
}
