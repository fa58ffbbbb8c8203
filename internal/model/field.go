package model

import (
	"strings"
	"unicode"
)

// Field keys are the stable identifiers used across extraction, reporting
// and export. Keys are lowerCamel so DisplayFieldName can derive the
// human-readable form from them.
const (
	KeyPolicyNumber         = "policyNumber"
	KeyPolicyholderName     = "policyholderName"
	KeyEffectiveDates       = "effectiveDates"
	KeyIncidentDate         = "incidentDate"
	KeyIncidentTime         = "incidentTime"
	KeyLocation             = "location"
	KeyDescription          = "description"
	KeyClaimant             = "claimant"
	KeyThirdParties         = "thirdParties"
	KeyContactDetails       = "contactDetails"
	KeyAssetType            = "assetType"
	KeyAssetID              = "assetId"
	KeyClaimType            = "claimType"
	KeyEstimatedDamage      = "estimatedDamage"
	KeyAttachments          = "attachments"
	KeyEstimatedDamageValue = "estimatedDamageValue"
)

// Field describes one entry of the fixed FNOL field set. Label is the
// line label used by the document format; the derived numeric estimate has
// no label because it is computed from the raw estimate, not extracted.
type Field struct {
	Key       string
	Label     string
	Mandatory bool
}

// fields is ordered: extraction, reports and exports all follow this order,
// and the relative order of the mandatory entries is the completeness check
// order surfaced verbatim in routing reasons.
var fields = []Field{
	{Key: KeyPolicyNumber, Label: "Policy Number"},
	{Key: KeyPolicyholderName, Label: "Policyholder Name"},
	{Key: KeyEffectiveDates, Label: "Effective Dates"},
	{Key: KeyIncidentDate, Label: "Incident Date"},
	{Key: KeyIncidentTime, Label: "Incident Time"},
	{Key: KeyLocation, Label: "Location"},
	{Key: KeyDescription, Label: "Description"},
	{Key: KeyClaimant, Label: "Claimant"},
	{Key: KeyThirdParties, Label: "Third Parties"},
	{Key: KeyContactDetails, Label: "Contact Details"},
	{Key: KeyAssetType, Label: "Asset Type"},
	{Key: KeyAssetID, Label: "Asset ID"},
	{Key: KeyClaimType, Label: "Claim Type", Mandatory: true},
	{Key: KeyEstimatedDamage, Label: "Estimated Damage"},
	{Key: KeyAttachments, Label: "Attachments", Mandatory: true},
	{Key: KeyEstimatedDamageValue, Mandatory: true},
}

// Fields returns a copy of the full ordered field set.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// DocumentFields returns the ordered fields that appear as labeled lines in
// an FNOL document. The derived numeric estimate is excluded.
func DocumentFields() []Field {
	out := make([]Field, 0, len(fields)-1)
	for _, f := range fields {
		if f.Label != "" {
			out = append(out, f)
		}
	}
	return out
}

// MandatoryKeys returns the mandatory field keys in check order.
func MandatoryKeys() []string {
	out := make([]string, 0, 3)
	for _, f := range fields {
		if f.Mandatory {
			out = append(out, f.Key)
		}
	}
	return out
}

// DisplayFieldName renders a field key for humans: a space is inserted
// before each capital letter and the first letter is capitalized, so
// "claimType" becomes "Claim Type". Cosmetic only; serialized output keeps
// the stable identifiers.
func DisplayFieldName(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
