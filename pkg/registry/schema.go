// pkg/registry/schema.go
package registry

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Activity describes one extracurricular offering and its roster.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// seedSchema is the JSON schema every seed document must satisfy: an object
// mapping activity names to activity records.
var seedSchema = map[string]interface{}{
	"type":          "object",
	"minProperties": 1,
	"additionalProperties": map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"description", "schedule", "max_participants", "participants"},
		"properties": map[string]interface{}{
			"description": map[string]interface{}{
				"type": "string",
			},
			"schedule": map[string]interface{}{
				"type": "string",
			},
			"max_participants": map[string]interface{}{
				"type":    "integer",
				"minimum": 0,
			},
			"participants": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "string",
				},
			},
		},
	},
}

// validateSeed checks a decoded seed document against seedSchema.
func validateSeed(data map[string]interface{}) error {
	schemaLoader := gojsonschema.NewGoLoader(seedSchema)
	documentLoader := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("seed validation failed: %v", errs)
	}

	return nil
}
