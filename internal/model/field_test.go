package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayFieldName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		KeyPolicyNumber:         "Policy Number",
		KeyPolicyholderName:     "Policyholder Name",
		KeyClaimType:            "Claim Type",
		KeyAttachments:          "Attachments",
		KeyEstimatedDamageValue: "Estimated Damage Value",
		KeyLocation:             "Location",
		KeyAssetID:              "Asset Id",
	}
	for key, want := range cases {
		assert.Equal(t, want, DisplayFieldName(key), "key %q", key)
	}
}

func TestMandatoryKeys_CheckOrder(t *testing.T) {
	t.Parallel()

	want := []string{KeyClaimType, KeyAttachments, KeyEstimatedDamageValue}
	assert.Equal(t, want, MandatoryKeys())
}

func TestDocumentFields_ExcludesDerivedEstimate(t *testing.T) {
	t.Parallel()

	docFields := DocumentFields()
	assert.Len(t, docFields, 15)
	for _, f := range docFields {
		assert.NotEmpty(t, f.Label)
		assert.NotEqual(t, KeyEstimatedDamageValue, f.Key)
	}
}

func TestFields_DerivedEstimateIsLast(t *testing.T) {
	t.Parallel()

	all := Fields()
	assert.Equal(t, KeyEstimatedDamageValue, all[len(all)-1].Key)
	assert.Empty(t, all[len(all)-1].Label)
}
