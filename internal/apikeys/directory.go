package apikeys

import (
	"fmt"
	"strings"

	"clipforge/internal/domain"
)

// Directory maps API-key tokens to owner credentials. Entries are provisioned
// at startup and read-only afterwards, so lookups need no locking.
type Directory struct {
	keys map[string]domain.Credential
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{keys: make(map[string]domain.Credential)}
}

// Add registers a credential under the given token, replacing any previous
// entry for that token.
func (d *Directory) Add(token string, cred domain.Credential) {
	d.keys[token] = cred
}

// SeedDemoKeys provisions the two well-known demo credentials used in
// development environments: one free-plan owner and one premium owner.
func (d *Directory) SeedDemoKeys() {
	d.Add("test_api_key_1", domain.Credential{OwnerID: "1", DisplayName: "Test User 1", Plan: domain.PlanFree})
	d.Add("test_api_key_2", domain.Credential{OwnerID: "2", DisplayName: "Test User 2", Plan: domain.PlanPremium})
}

// Resolve returns the credential for a token. Missing and unknown tokens both
// fail with ErrUnauthenticated.
func (d *Directory) Resolve(token string) (domain.Credential, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Credential{}, fmt.Errorf("%w: API key is required", domain.ErrUnauthenticated)
	}
	cred, ok := d.keys[token]
	if !ok {
		return domain.Credential{}, fmt.Errorf("%w: invalid API key", domain.ErrUnauthenticated)
	}
	return cred, nil
}
