package pipeline

import (
	"fmt"
	"strings"

	"github.com/sells-group/claims-triage/internal/model"
)

// FormatReport renders a human-readable intake report for claims staff.
// Display names come from the cosmetic field-name transform and carry no
// decision weight; serialized output keeps the stable identifiers.
func FormatReport(res model.ProcessingResult) string {
	var b strings.Builder

	b.WriteString("# FNOL Intake Report\n\n")

	// Extracted fields, registry order.
	b.WriteString("## Extracted Fields\n")
	for _, f := range model.DocumentFields() {
		value, ok := res.Fields.ValueByKey(f.Key)
		if !ok {
			value = "(not found)"
		}
		fmt.Fprintf(&b, "- %s: %s\n", model.DisplayFieldName(f.Key), value)
	}
	b.WriteString("\n")

	// Completeness.
	b.WriteString("## Missing Mandatory Fields\n")
	if len(res.MissingFields) == 0 {
		b.WriteString("None.\n")
	} else {
		for _, name := range res.MissingFields {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}
	b.WriteString("\n")

	// Routing.
	b.WriteString("## Routing\n")
	fmt.Fprintf(&b, "- Route: %s\n", res.Routing.Route)
	fmt.Fprintf(&b, "- Reasoning: %s\n", res.Routing.Reasoning)

	return b.String()
}
