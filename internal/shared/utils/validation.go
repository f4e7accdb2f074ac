package utils

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationMessages flattens an ozzo validation.Errors into per-field
// messages ("field: message"), sorted for stable output. Other errors
// produce a single-element slice.
func ValidationMessages(err error) []string {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !AsValidationErrors(err, &errs) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(errs))
	for _, field := range fields {
		messages = append(messages, field+": "+errs[field].Error())
	}
	return messages
}

// AsValidationErrors reports whether err is (or wraps) ozzo field errors.
func AsValidationErrors(err error, target *validation.Errors) bool {
	if errs, ok := err.(validation.Errors); ok {
		*target = errs
		return true
	}
	return false
}
