package dataset

import (
	"fmt"
	"strings"

	"skill-gap/internal/domain/job"
	"skill-gap/internal/domain/user"

	"github.com/xeipuuv/gojsonschema"
)

const skillsSchema = `{
	"oneOf": [
		{"type": "array", "items": {"type": "string"}},
		{"type": "string"},
		{"type": "null"}
	]
}`

var usersSchema = gojsonschema.NewStringLoader(`{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "skills"],
		"properties": {
			"id": {"type": "integer"},
			"name": {"type": ["string", "null"]},
			"skills": ` + skillsSchema + `,
			"primary_focus": {"type": ["string", "null"]},
			"experience_years": {"type": ["number", "null"], "minimum": 0}
		}
	}
}`)

var jobsSchema = gojsonschema.NewStringLoader(`{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "skills"],
		"properties": {
			"id": {"type": "integer"},
			"title": {"type": ["string", "null"]},
			"company": {"type": ["string", "null"]},
			"skills": ` + skillsSchema + `,
			"role_type": {"type": ["string", "null"]}
		}
	}
}`)

// ValidationError lists every schema violation found in an upload.
type ValidationError struct {
	Errors []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	parts := make([]string, 0, len(ve.Errors))
	for _, e := range ve.Errors {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "invalid data file: " + strings.Join(parts, "; ")
}

// ValidateUsers checks raw against the users file schema and decodes it.
func ValidateUsers(raw []byte) ([]user.User, error) {
	if err := validate(usersSchema, raw); err != nil {
		return nil, err
	}
	return decodeRecords[user.User]("users", raw)
}

// ValidateJobs checks raw against the jobs file schema and decodes it.
func ValidateJobs(raw []byte) ([]job.Job, error) {
	if err := validate(jobsSchema, raw); err != nil {
		return nil, err
	}
	return decodeRecords[job.Job]("jobs", raw)
}

func validate(schema gojsonschema.JSONLoader, raw []byte) error {
	res, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: fmt.Sprintf("not valid JSON: %v", err)}}}
	}
	if res.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(res.Errors()))}
	for _, desc := range res.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
