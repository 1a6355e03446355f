package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResume_Valid(t *testing.T) {
	doc := []byte(`{
		"profile": {"name": "Asha", "email": "asha@example.com", "location": "Pune"},
		"summary": "HR generalist",
		"experience": [{"role": "HR Manager", "company": "Acme", "start": "Jan 2022", "bullets": ["Ran onboarding for two hundred new hires across three offices in under a year"]}],
		"skills": {"core": ["Recruiting", "Payroll"], "soft": ["Communication"]}
	}`)
	assert.NoError(t, ValidateResume(doc))
}

func TestValidateResume_MinimalDocument(t *testing.T) {
	assert.NoError(t, ValidateResume([]byte(`{"profile": {}, "skills": {}}`)))
}

func TestValidateResume_MissingRequiredFields(t *testing.T) {
	err := ValidateResume([]byte(`{"summary": "no profile here"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "profile")
}

func TestValidateResume_UnknownField(t *testing.T) {
	err := ValidateResume([]byte(`{"profile": {}, "skills": {}, "hobbies": ["chess"]}`))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, err.Error(), "hobbies")
}

func TestValidateResume_WrongType(t *testing.T) {
	err := ValidateResume([]byte(`{"profile": {}, "skills": {"core": "Python"}}`))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, err.Error(), "core")
}

func TestValidateResume_NotJSON(t *testing.T) {
	err := ValidateResume([]byte(`not json`))
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}
