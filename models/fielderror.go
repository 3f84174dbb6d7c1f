package models

type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

func NewFieldError(field string) FieldError {
	return FieldError{Message: "Wrong " + field, Field: field}
}

type ErrorsMessages struct {
	ErrorsMessages []FieldError `json:"errorsMessages"`
}

func FieldNames(a []FieldError) []string {
	r := make([]string, len(a))
	for i, e := range a {
		r[i] = e.Field
	}
	return r
}
