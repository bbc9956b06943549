package apikeys

import (
	"errors"
	"testing"

	"clipforge/internal/domain"
)

func TestResolveKnownToken(t *testing.T) {
	dir := NewDirectory()
	dir.Add("key-1", domain.Credential{OwnerID: "42", DisplayName: "Owner", Plan: domain.PlanPremium})

	cred, err := dir.Resolve("key-1")
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if cred.OwnerID != "42" || cred.Plan != domain.PlanPremium {
		t.Fatalf("Resolve() returned %+v", cred)
	}
}

func TestResolveRejectsMissingAndUnknownTokens(t *testing.T) {
	dir := NewDirectory()
	dir.SeedDemoKeys()

	for _, token := range []string{"", "   ", "nope"} {
		if _, err := dir.Resolve(token); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("Resolve(%q) error = %v, want ErrUnauthenticated", token, err)
		}
	}
}

func TestSeedDemoKeysProvisionsBothPlans(t *testing.T) {
	dir := NewDirectory()
	dir.SeedDemoKeys()

	free, err := dir.Resolve("test_api_key_1")
	if err != nil {
		t.Fatalf("Resolve(free key) error: %v", err)
	}
	if !free.IsFree() {
		t.Fatalf("demo key 1 plan = %q, want free", free.Plan)
	}
	premium, err := dir.Resolve("test_api_key_2")
	if err != nil {
		t.Fatalf("Resolve(premium key) error: %v", err)
	}
	if premium.Plan != domain.PlanPremium {
		t.Fatalf("demo key 2 plan = %q, want premium", premium.Plan)
	}
	if free.OwnerID == premium.OwnerID {
		t.Fatal("demo credentials must belong to distinct owners")
	}
}

func TestAddReplacesExistingToken(t *testing.T) {
	dir := NewDirectory()
	dir.Add("key", domain.Credential{OwnerID: "1", Plan: domain.PlanFree})
	dir.Add("key", domain.Credential{OwnerID: "2", Plan: domain.PlanPremium})

	cred, err := dir.Resolve("key")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if cred.OwnerID != "2" {
		t.Fatalf("Resolve() owner = %q, want the replacement entry", cred.OwnerID)
	}
}
