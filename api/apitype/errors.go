package apitype

import "fmt"

// ValidationError is a user input error. It never mutates persisted
// state and is meant to be shown next to the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (s *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", s.Field, s.Message)
}

var (
	ErrNameRequired = &ValidationError{Field: "name", Message: "Section name is required"}
	ErrUrlRequired  = &ValidationError{Field: "url", Message: "Section URL is required"}
	ErrNameExists   = &ValidationError{Field: "name", Message: "Section name already exists"}
	ErrUrlExists    = &ValidationError{Field: "url", Message: "Section URL already exists"}
	ErrSectionLimit = &ValidationError{Field: "name", Message: "Maximum of 5 sections allowed. Please delete a section before adding a new one."}

	ErrInvalidImageType = &ValidationError{Field: "file", Message: "Please select a valid image file."}
	ErrImageTooLarge    = &ValidationError{Field: "file", Message: "Image size must be less than 5MB."}
)
