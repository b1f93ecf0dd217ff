package usecase

import "meusdocumentos/internal/domain/entities"

// UrgencyLevel declares how fast the customer wants the document. Only the
// standard level is offered today; the type exists so urgency fee rules can
// compose without reshaping stored orders.

type UrgencyLevel string

const (
	UrgencyStandard UrgencyLevel = "standard"
	UrgencyRush     UrgencyLevel = "rush"
)

// ComputePricing builds the fee breakdown for a service, in minor currency
// units. Deterministic, no I/O: total is plain integer addition so repeated
// computation never drifts.
func ComputePricing(svc entities.Service, urgency UrgencyLevel) entities.PricingSnapshot {
	base := svc.BasePrice
	fee := urgencyFee(urgency)
	return entities.PricingSnapshot{
		BasePrice:  base,
		UrgencyFee: fee,
		Total:      base + fee,
	}
}

// urgencyFee is zero for every level today. Rush pricing was never enabled
// in production; the hook stays so enabling it is a one-line change.
func urgencyFee(level UrgencyLevel) int64 {
	switch level {
	case UrgencyRush:
		return 0
	default:
		return 0
	}
}
