package pipeline

import (
	"fmt"
	"strings"

	"github.com/sells-group/claims-triage/internal/model"
)

// sampleValues holds one known value per document field, used by the sample
// command and the extraction round-trip test.
var sampleValues = map[string]string{
	model.KeyPolicyNumber:     "PN-4481-220",
	model.KeyPolicyholderName: "Dana Whitfield",
	model.KeyEffectiveDates:   "2026-01-01 to 2026-12-31",
	model.KeyIncidentDate:     "2026-08-14",
	model.KeyIncidentTime:     "07:45",
	model.KeyLocation:         "I-80 westbound, mile marker 112, Omaha, NE",
	model.KeyDescription:      "Rear-ended at low speed while stopped in traffic; bumper and trunk dented.",
	model.KeyClaimant:         "Dana Whitfield",
	model.KeyThirdParties:     "Miguel Ortega (other driver)",
	model.KeyContactDetails:   "dana.whitfield@example.com, +1 402 555 0132",
	model.KeyAssetType:        "Passenger vehicle",
	model.KeyAssetID:          "VIN 1HGCM82633A004352",
	model.KeyClaimType:        "Auto Collision",
	model.KeyEstimatedDamage:  "$4,820.50",
	model.KeyAttachments:      "front_photo.jpg, rear_photo.jpg, police_report.pdf",
}

// SampleDocument generates a complete FNOL document in the documented
// "- Label: value" line format, with a known value for every document field.
func SampleDocument() string {
	var b strings.Builder

	b.WriteString("First Notice of Loss\n\n")
	for _, f := range model.DocumentFields() {
		fmt.Fprintf(&b, "- %s: %s\n", f.Label, sampleValues[f.Key])
	}
	return b.String()
}
