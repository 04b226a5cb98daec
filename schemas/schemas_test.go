package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

const schemaFile = "analysis_result.schema.json"

func TestSchemaFileIsValidJSON(t *testing.T) {
	data, err := os.ReadFile(schemaFile)
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	assert.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON")
}

func TestSchemaFileIsValidJSONSchema(t *testing.T) {
	data, err := os.ReadFile(schemaFile)
	require.NoError(t, err)

	loader := gojsonschema.NewBytesLoader(data)
	_, err = gojsonschema.NewSchema(loader)
	assert.NoError(t, err, "schema file should compile as a JSON Schema")
}

func TestSchemaAcceptsMinimalDocument(t *testing.T) {
	schemaData, err := os.ReadFile(schemaFile)
	require.NoError(t, err)

	document := `{
		"timestamp": "2025-01-01T00:00:00Z",
		"parsed_resume": {
			"name": "Not found",
			"email": "Not found",
			"phone": "Not found",
			"location": "Not found",
			"skills": []
		},
		"similarity_scores": {},
		"role_predictions": {"roles": [], "scores": []},
		"keywords_analysis": {"present_keywords": [], "missing_keywords": []},
		"detailed_role_analysis": [],
		"optimization_tips": [],
		"analysis_summary": "Analysis completed for Candidate. Top predicted role: General. Found 0 relevant skills."
	}`

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewStringLoader(document),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid(), "minimal document should validate: %v", result.Errors())
}

func TestSchemaRejectsMissingSections(t *testing.T) {
	schemaData, err := os.ReadFile(schemaFile)
	require.NoError(t, err)

	document := `{"timestamp": "2025-01-01T00:00:00Z"}`

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewStringLoader(document),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid())
}
