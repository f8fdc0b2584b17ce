package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUpdated      = errors.New("updated must be RFC 3339 or YYYY-MM-DD")
	ErrInvalidYear         = errors.New("publication year out of range")
	ErrEmptyEntryTitle     = errors.New("repeated entry without title")
	ErrEmptySkillCategory  = errors.New("skills category name is empty")
	ErrInvalidContactEmail = errors.New("contact email is malformed")
)
