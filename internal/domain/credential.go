package domain

// Plan enumerates billing plans.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// Credential binds an API key to an owner identity and plan. Credentials are
// provisioned statically and never mutated at runtime.
type Credential struct {
	OwnerID     string
	DisplayName string
	Plan        Plan
}

// IsFree reports whether the credential is on the free plan.
func (c Credential) IsFree() bool {
	return c.Plan == PlanFree
}
