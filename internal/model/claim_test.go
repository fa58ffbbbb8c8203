package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestClaimFields_ValueByKey(t *testing.T) {
	t.Parallel()

	c := ClaimFields{
		PolicyNumber: strPtr("PN-1001"),
		ClaimType:    strPtr("Auto"),
		Attachments:  []string{"photo1.jpg", "police_report.pdf"},
	}

	v, ok := c.ValueByKey(KeyPolicyNumber)
	assert.True(t, ok)
	assert.Equal(t, "PN-1001", v)

	v, ok = c.ValueByKey(KeyAttachments)
	assert.True(t, ok)
	assert.Equal(t, "photo1.jpg, police_report.pdf", v)

	_, ok = c.ValueByKey(KeyDescription)
	assert.False(t, ok)

	_, ok = c.ValueByKey("noSuchField")
	assert.False(t, ok)
}

func TestProcessingResult_JSONUsesStableIdentifiers(t *testing.T) {
	t.Parallel()

	res := ProcessingResult{
		Fields: ClaimFields{
			PolicyNumber:    strPtr("PN-1001"),
			ClaimType:       strPtr("Auto"),
			EstimatedDamage: strPtr("$1,500"),
			Attachments:     []string{"a.jpg"},
		},
		MissingFields: []string{},
		Routing: RoutingDecision{
			Route:     RouteFastTrack,
			Reasoning: "below threshold",
		},
	}

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	fields, ok := decoded["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "PN-1001", fields["policy_number"])
	assert.Equal(t, "Auto", fields["claim_type"])
	assert.Equal(t, "$1,500", fields["estimated_damage"])

	// Absent fields are omitted; the derived numeric never serializes.
	assert.NotContains(t, fields, "incident_date")
	assert.NotContains(t, fields, "estimated_damage_value")

	routing, ok := decoded["routing"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, string(RouteFastTrack), routing["route"])
}

func TestExtractedFields_NumericEstimateNotSerialized(t *testing.T) {
	t.Parallel()

	v := 1500.0
	ef := ExtractedFields{
		ClaimFields:          ClaimFields{ClaimType: strPtr("Auto")},
		EstimatedDamageValue: &v,
	}

	raw, err := json.Marshal(ef)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "1500")
	assert.Contains(t, string(raw), "claim_type")
}
