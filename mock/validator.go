package mock

import "github.com/kbaidoo/lawfinder"

var _ lawfinder.RecordValidator = (*RecordValidator)(nil)

// RecordValidator is a mock implementation of lawfinder.RecordValidator.
type RecordValidator struct {
	ValidateFn func(data []byte) (*lawfinder.CaseRecord, error)
}

func (v *RecordValidator) Validate(data []byte) (*lawfinder.CaseRecord, error) {
	return v.ValidateFn(data)
}
