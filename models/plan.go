package models

import (
	"github.com/shopspring/decimal"
)

// PlanKey identifies one membership tier out of the fixed six-entry catalog.
type PlanKey string

// The full set of plan keys accepted by the intake endpoint: five individual
// tiers plus one family tier.
const (
	PlanChild     PlanKey = "child"
	PlanEssential PlanKey = "essential"
	PlanRoutine   PlanKey = "routine"
	PlanComplete  PlanKey = "complete"
	PlanPremium   PlanKey = "premium"
	PlanFamily    PlanKey = "family"
)

// Plan describes one membership tier: its key, the display name printed on
// confirmation emails and pricing pages, and the fixed monthly price.
type Plan struct {
	Key          PlanKey         `json:"key"`
	DisplayName  string          `json:"display_name"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
}

// planCatalog is the fixed plan-key → tier lookup table. Prices are monthly,
// in pounds sterling.
var planCatalog = map[PlanKey]Plan{
	PlanChild:     {Key: PlanChild, DisplayName: "CHILD PLAN", MonthlyPrice: decimal.New(995, -2)},
	PlanEssential: {Key: PlanEssential, DisplayName: "ESSENTIAL PLAN", MonthlyPrice: decimal.New(1595, -2)},
	PlanRoutine:   {Key: PlanRoutine, DisplayName: "ROUTINE PLAN", MonthlyPrice: decimal.New(2195, -2)},
	PlanComplete:  {Key: PlanComplete, DisplayName: "COMPLETE PLAN", MonthlyPrice: decimal.New(2795, -2)},
	PlanPremium:   {Key: PlanPremium, DisplayName: "PREMIUM PLAN", MonthlyPrice: decimal.New(3395, -2)},
	PlanFamily:    {Key: PlanFamily, DisplayName: "FAMILY PLAN", MonthlyPrice: decimal.New(4950, -2)},
}

// AllPlans returns the catalog entries in a stable tier order, cheapest
// individual tier first, the family tier last.
func AllPlans() []Plan {
	keys := []PlanKey{PlanChild, PlanEssential, PlanRoutine, PlanComplete, PlanPremium, PlanFamily}
	plans := make([]Plan, 0, len(keys))
	for _, k := range keys {
		plans = append(plans, planCatalog[k])
	}
	return plans
}

// IsValid reports whether k is one of the six known plan keys.
func (k PlanKey) IsValid() bool {
	_, ok := planCatalog[k]
	return ok
}

// DisplayName returns the tier's display name, or the raw key string when
// the key is not in the catalog.
func (k PlanKey) DisplayName() string {
	if plan, ok := planCatalog[k]; ok {
		return plan.DisplayName
	}
	return string(k)
}

// DisplayPrice returns the tier's monthly price formatted as "£N.NN", or
// "£0.00" when the key is not in the catalog.
func (k PlanKey) DisplayPrice() string {
	if plan, ok := planCatalog[k]; ok {
		return "£" + plan.MonthlyPrice.StringFixed(2)
	}
	return "£" + decimal.Zero.StringFixed(2)
}
