package pipeline

import (
	"fmt"
	"strings"

	"github.com/sells-group/claims-triage/internal/model"
)

// fastTrackThreshold is a strict upper bound: a claim estimated at exactly
// this amount does not fast-track.
const fastTrackThreshold = 25000

// fraudKeywords are matched case-insensitively against the description
// field only.
var fraudKeywords = []string{"fraud", "inconsistent", "staged"}

// routingRule pairs a predicate with the decision it produces. Rules run
// strictly in slice order and the first match wins; the order is a
// compatibility contract. It also guarantees the numeric estimate is present
// by the time the fast-track rule runs, since the completeness rule fires
// first whenever the estimate is absent.
type routingRule struct {
	matches func(model.ExtractedFields, []string) bool
	decide  func(model.ExtractedFields, []string) model.RoutingDecision
}

var routingRules = []routingRule{
	{
		// Incomplete records go to a human before any other consideration.
		matches: func(_ model.ExtractedFields, missing []string) bool {
			return len(missing) > 0
		},
		decide: func(_ model.ExtractedFields, missing []string) model.RoutingDecision {
			return model.RoutingDecision{
				Route:     model.RouteManualReview,
				Reasoning: fmt.Sprintf("Mandatory fields missing: %s.", strings.Join(missing, ", ")),
			}
		},
	},
	{
		matches: func(f model.ExtractedFields, _ []string) bool {
			return containsAnyFold(f.Description, fraudKeywords)
		},
		decide: func(model.ExtractedFields, []string) model.RoutingDecision {
			return model.RoutingDecision{
				Route:     model.RouteInvestigationFlag,
				Reasoning: "Description contains potential fraud indicators and requires investigation.",
			}
		},
	},
	{
		matches: func(f model.ExtractedFields, _ []string) bool {
			return containsFold(f.ClaimType, "injury")
		},
		decide: func(model.ExtractedFields, []string) model.RoutingDecision {
			return model.RoutingDecision{
				Route:     model.RouteSpecialistQueue,
				Reasoning: "Injury claims are handled by the specialist queue.",
			}
		},
	},
	{
		matches: func(f model.ExtractedFields, _ []string) bool {
			return f.EstimatedDamageValue != nil && *f.EstimatedDamageValue < fastTrackThreshold
		},
		decide: func(f model.ExtractedFields, _ []string) model.RoutingDecision {
			return model.RoutingDecision{
				Route:     model.RouteFastTrack,
				Reasoning: fmt.Sprintf("Estimated damage of $%s is below the fast-track threshold of $25,000.", formatEstimate(*f.EstimatedDamageValue)),
			}
		},
	},
}

// RouteClaim selects exactly one route for the record. Pure Go — the same
// fields and missing list always produce the same decision. Falls through to
// Standard Review when no rule matches.
func RouteClaim(fields model.ExtractedFields, missing []string) model.RoutingDecision {
	for _, rule := range routingRules {
		if rule.matches(fields, missing) {
			return rule.decide(fields, missing)
		}
	}

	return model.RoutingDecision{
		Route:     model.RouteStandardReview,
		Reasoning: "No specialized routing criteria met; claim proceeds to standard review.",
	}
}

func containsFold(s *string, substr string) bool {
	if s == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*s), substr)
}

func containsAnyFold(s *string, substrs []string) bool {
	for _, sub := range substrs {
		if containsFold(s, sub) {
			return true
		}
	}
	return false
}
