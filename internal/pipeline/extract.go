package pipeline

import (
	"regexp"
	"strings"

	"github.com/sells-group/claims-triage/internal/model"
)

// fieldPatterns holds one compiled matcher per document label, built once at
// package load since the label set is fixed.
var fieldPatterns = buildFieldPatterns()

func buildFieldPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(model.DocumentFields()))
	for _, f := range model.DocumentFields() {
		patterns[f.Key] = compileLabelPattern(f.Label)
	}
	return patterns
}

// compileLabelPattern builds the line matcher for one label: optional
// leading whitespace, an optional list marker, the literal label, a colon,
// then the rest of the line. Case-insensitive and anchored to line
// boundaries. Labels are quoted so punctuation in them stays literal.
func compileLabelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[ \t]*(?:[-*•][ \t]*)?` + regexp.QuoteMeta(label) + `:[ \t]*(.*)$`)
}

// ExtractFields scans the raw document text for every known field label and
// returns the structured record, including the derived numeric estimate.
// Pure Go — no I/O, no side effects. A label's first matching line wins;
// later duplicates are ignored.
func ExtractFields(text string) model.ExtractedFields {
	var out model.ExtractedFields

	out.PolicyNumber = extractField(text, model.KeyPolicyNumber)
	out.PolicyholderName = extractField(text, model.KeyPolicyholderName)
	out.EffectiveDates = extractField(text, model.KeyEffectiveDates)
	out.IncidentDate = extractField(text, model.KeyIncidentDate)
	out.IncidentTime = extractField(text, model.KeyIncidentTime)
	out.Location = extractField(text, model.KeyLocation)
	out.Description = extractField(text, model.KeyDescription)
	out.Claimant = extractField(text, model.KeyClaimant)
	out.ThirdParties = extractField(text, model.KeyThirdParties)
	out.ContactDetails = extractField(text, model.KeyContactDetails)
	out.AssetType = extractField(text, model.KeyAssetType)
	out.AssetID = extractField(text, model.KeyAssetID)
	out.ClaimType = extractField(text, model.KeyClaimType)
	out.EstimatedDamage = extractField(text, model.KeyEstimatedDamage)
	out.Attachments = splitAttachments(extractField(text, model.KeyAttachments))
	out.EstimatedDamageValue = NormalizeEstimate(out.EstimatedDamage)

	return out
}

// extractField returns the trimmed value of the first line labeled with the
// given field's label, or nil if no line matches or the value is empty after
// trimming.
func extractField(text, key string) *string {
	re, ok := fieldPatterns[key]
	if !ok {
		return nil
	}

	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	value := strings.TrimSpace(m[1])
	if value == "" {
		return nil
	}
	return &value
}

// splitAttachments turns the raw attachments value into an ordered list of
// trimmed names. Tokens that are empty after trimming are dropped; if
// nothing remains the field is absent, never an empty list.
func splitAttachments(raw *string) []string {
	if raw == nil {
		return nil
	}

	var names []string
	for _, tok := range strings.Split(*raw, ",") {
		name := strings.TrimSpace(tok)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
