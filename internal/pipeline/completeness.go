package pipeline

import (
	"github.com/sells-group/claims-triage/internal/model"
)

// CheckCompleteness reports the human-readable names of mandatory fields
// absent from the record, in the fixed check order: claim type, attachments,
// numeric estimate. The order is surfaced verbatim in routing reasons. A
// complete record yields an empty, non-nil list.
func CheckCompleteness(fields model.ExtractedFields) []string {
	keys := model.MandatoryKeys()
	missing := make([]string, 0, len(keys))

	for _, key := range keys {
		if !fieldPresent(fields, key) {
			missing = append(missing, model.DisplayFieldName(key))
		}
	}
	return missing
}

func fieldPresent(fields model.ExtractedFields, key string) bool {
	if key == model.KeyEstimatedDamageValue {
		return fields.EstimatedDamageValue != nil
	}
	// Attachments count as present only as a non-empty list, which is the
	// only present form the extractor produces.
	_, ok := fields.ValueByKey(key)
	return ok
}
