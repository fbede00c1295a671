package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"priority": {"type": "integer", "minimum": 1}
	},
	"required": ["id", "priority"]
}`

func TestValidate_Valid(t *testing.T) {
	err := Validate(testSchema, `{"id": "cat", "priority": 2}`)
	assert.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	err := Validate(testSchema, `{"id": "cat"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors[0].Message, "priority")
}

func TestValidate_WrongType(t *testing.T) {
	err := Validate(testSchema, `{"id": "cat", "priority": "high"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidate_BrokenSchema(t *testing.T) {
	err := Validate(`{"type": ["broken"`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := Validate(testSchema, `{}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
