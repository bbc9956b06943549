package videos

import (
	"fmt"

	"clipforge/internal/domain"
)

// FreePlanVideoLimit caps the total number of videos a free-plan owner may
// ever create. Completed videos still count against the cap.
const FreePlanVideoLimit = 5

// Policy decides whether an owner may create another video.
type Policy struct {
	store *Store
}

// NewPolicy returns a policy reading counts from the given store.
func NewPolicy(store *Store) *Policy {
	return &Policy{store: store}
}

// AuthorizeCreate applies the per-plan creation quota. The count is a
// point-in-time read and is not atomic with the insert that follows; two
// simultaneous creations at the boundary can overshoot the cap by one.
func (p *Policy) AuthorizeCreate(ownerID string, plan domain.Plan) error {
	if plan != domain.PlanFree {
		return nil
	}
	if p.store.CountByOwner(ownerID) >= FreePlanVideoLimit {
		return fmt.Errorf("%w: free plan limited to %d videos", domain.ErrQuotaExceeded, FreePlanVideoLimit)
	}
	return nil
}
