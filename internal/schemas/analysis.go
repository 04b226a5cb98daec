package schemas

import (
	"encoding/json"
	"fmt"
	"os"
)

// AnalysisResultSchemaPath is the repository-relative path of the analysis
// result schema.
const AnalysisResultSchemaPath = "schemas/analysis_result.schema.json"

// ValidateAnalysisResult validates an analysis result document against the
// analysis result schema. When the schema file cannot be located (e.g. the
// binary runs outside the repository tree) validation is skipped and nil is
// returned.
func ValidateAnalysisResult(result any) error {
	schemaPath := ResolveSchemaPath(AnalysisResultSchemaPath)
	if schemaPath == "" {
		return nil
	}

	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "failed to read schema", Cause: err}
	}

	doc, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	return ValidateJSONString(string(schemaContent), string(doc))
}
