package pipeline

import (
	"github.com/sells-group/claims-triage/internal/model"
)

// Process runs the full intake pipeline on one FNOL document: extraction,
// completeness check, routing, and output assembly. Pure function over the
// input text; the same text always yields an identical ProcessingResult.
// The derived numeric estimate stays internal: the result carries only the
// display-safe ClaimFields.
func Process(text string) model.ProcessingResult {
	fields := ExtractFields(text)
	missing := CheckCompleteness(fields)
	decision := RouteClaim(fields, missing)

	return model.ProcessingResult{
		Fields:        fields.ClaimFields,
		MissingFields: missing,
		Routing:       decision,
	}
}
