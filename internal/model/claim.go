package model

import "strings"

// Route is the closed set of claim-processing outcomes.
type Route string

const (
	RouteManualReview      Route = "Manual Review"
	RouteInvestigationFlag Route = "Investigation Flag"
	RouteSpecialistQueue   Route = "Specialist Queue"
	RouteFastTrack         Route = "Fast-track"
	RouteStandardReview    Route = "Standard Review"
)

// ClaimFields is the display-safe record extracted from one FNOL document.
// Every attribute is optional: nil marks absence, and present values are
// always trimmed and non-empty. Attachments, when present, is a non-empty
// ordered list of trimmed names; absence is nil, never an empty slice.
type ClaimFields struct {
	PolicyNumber     *string  `json:"policy_number,omitempty" yaml:"policy_number,omitempty"`
	PolicyholderName *string  `json:"policyholder_name,omitempty" yaml:"policyholder_name,omitempty"`
	EffectiveDates   *string  `json:"effective_dates,omitempty" yaml:"effective_dates,omitempty"`
	IncidentDate     *string  `json:"incident_date,omitempty" yaml:"incident_date,omitempty"`
	IncidentTime     *string  `json:"incident_time,omitempty" yaml:"incident_time,omitempty"`
	Location         *string  `json:"location,omitempty" yaml:"location,omitempty"`
	Description      *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Claimant         *string  `json:"claimant,omitempty" yaml:"claimant,omitempty"`
	ThirdParties     *string  `json:"third_parties,omitempty" yaml:"third_parties,omitempty"`
	ContactDetails   *string  `json:"contact_details,omitempty" yaml:"contact_details,omitempty"`
	AssetType        *string  `json:"asset_type,omitempty" yaml:"asset_type,omitempty"`
	AssetID          *string  `json:"asset_id,omitempty" yaml:"asset_id,omitempty"`
	ClaimType        *string  `json:"claim_type,omitempty" yaml:"claim_type,omitempty"`
	EstimatedDamage  *string  `json:"estimated_damage,omitempty" yaml:"estimated_damage,omitempty"`
	Attachments      []string `json:"attachments,omitempty" yaml:"attachments,omitempty"`
}

// ValueByKey returns the display string for a document field key and whether
// the field is present. Attachment names are joined with ", ".
func (c ClaimFields) ValueByKey(key string) (string, bool) {
	switch key {
	case KeyPolicyNumber:
		return deref(c.PolicyNumber)
	case KeyPolicyholderName:
		return deref(c.PolicyholderName)
	case KeyEffectiveDates:
		return deref(c.EffectiveDates)
	case KeyIncidentDate:
		return deref(c.IncidentDate)
	case KeyIncidentTime:
		return deref(c.IncidentTime)
	case KeyLocation:
		return deref(c.Location)
	case KeyDescription:
		return deref(c.Description)
	case KeyClaimant:
		return deref(c.Claimant)
	case KeyThirdParties:
		return deref(c.ThirdParties)
	case KeyContactDetails:
		return deref(c.ContactDetails)
	case KeyAssetType:
		return deref(c.AssetType)
	case KeyAssetID:
		return deref(c.AssetID)
	case KeyClaimType:
		return deref(c.ClaimType)
	case KeyEstimatedDamage:
		return deref(c.EstimatedDamage)
	case KeyAttachments:
		if c.Attachments == nil {
			return "", false
		}
		return strings.Join(c.Attachments, ", "), true
	}
	return "", false
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

// ExtractedFields is ClaimFields plus the derived numeric estimate. The
// numeric value is internal to routing and never serialized; output carries
// only the embedded ClaimFields.
type ExtractedFields struct {
	ClaimFields
	EstimatedDamageValue *float64 `json:"-" yaml:"-"`
}

// RoutingDecision pairs the selected route with a one-sentence reasoning
// string deterministically derived from the rule that fired.
type RoutingDecision struct {
	Route     Route  `json:"route" yaml:"route"`
	Reasoning string `json:"reasoning" yaml:"reasoning"`
}

// ProcessingResult is the sole output artifact of processing one document:
// the display-safe fields, the human-readable names of missing mandatory
// fields in check order, and the routing decision. It is never mutated after
// construction.
type ProcessingResult struct {
	Fields        ClaimFields     `json:"fields" yaml:"fields"`
	MissingFields []string        `json:"missing_fields" yaml:"missing_fields"`
	Routing       RoutingDecision `json:"routing" yaml:"routing"`
}

// DocumentResult pairs a processed document path with its result, for batch
// runs and exports.
type DocumentResult struct {
	Document string           `json:"document" yaml:"document"`
	Result   ProcessingResult `json:"result" yaml:"result"`
}
