package acts

import (
	"reflect"
	"testing"
)

func TestParseOwnersWithSingleImplicitOwner(t *testing.T) {
	expected := []Owner{
		{Code: "ENG", Quantity: 5},
	}

	owners, err := ParseOwners("ENG", 5)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseOwners (%v)", err)
	}

	if !reflect.DeepEqual(owners, expected) {
		t.Errorf("Incorrect owners\n   expected: %v\n   got:      %v\n", expected, owners)
	}
}

func TestParseOwnersWithExplicitCounts(t *testing.T) {
	expected := []Owner{
		{Code: "ENG", Quantity: 3},
		{Code: "HR", Quantity: 2},
	}

	owners, err := ParseOwners("ENG-3, HR-2", 5)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseOwners (%v)", err)
	}

	if !reflect.DeepEqual(owners, expected) {
		t.Errorf("Incorrect owners\n   expected: %v\n   got:      %v\n", expected, owners)
	}
}

func TestParseOwnersWithMixedCounts(t *testing.T) {
	if _, err := ParseOwners("ENG-3, HR", 5); err == nil {
		t.Fatalf("Expected error return for mixed explicit/implicit owners, got %v", err)
	}
}

func TestParseOwnersWithCountMismatch(t *testing.T) {
	if _, err := ParseOwners("ENG-3, HR-3", 5); err == nil {
		t.Fatalf("Expected error return for owner count mismatch, got %v", err)
	}
}

func TestParseOwnersWithMultipleImplicitOwners(t *testing.T) {
	if _, err := ParseOwners("ENG, HR", 5); err == nil {
		t.Fatalf("Expected error return for ambiguous owners, got %v", err)
	}
}

func TestParseOwnersWithNoOwners(t *testing.T) {
	if _, err := ParseOwners("  , ", 5); err == nil {
		t.Fatalf("Expected error return for empty owners column, got %v", err)
	}
}
