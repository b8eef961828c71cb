package acts

import (
	"testing"

	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"

	"github.com/nonGratis/asset-acts/sheet"
)

func TestLoadDepartments(t *testing.T) {
	table, err := sheet.MakeTable(&sheets.ValueRange{
		Values: [][]interface{}{
			{"Code", "Status", "Position", "FullName", "Name"},
			{"ENG", "active", "Head of Engineering", "Іваненко Іван Іванович", "Іваненко І.І."},
			{"", "active", "", "", ""},
			{"h r", "active", "Head of People", "Петренко Петро Петрович", "Петренко П.П."},
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error building fixture table (%v)", err)
	}

	departments := LoadDepartments(table, zap.NewNop().Sugar())

	if len(departments) != 2 {
		t.Fatalf("Expected 2 departments, got %v", len(departments))
	}

	if department, ok := departments.Lookup("eng"); !ok {
		t.Errorf("Expected lookup for 'eng' to resolve")
	} else if department.Position != "Head of Engineering" {
		t.Errorf("Incorrect position - expected:'Head of Engineering', got:'%v'", department.Position)
	}

	// codes are matched ignoring case and embedded whitespace
	if _, ok := departments.Lookup("HR"); !ok {
		t.Errorf("Expected lookup for 'HR' to resolve")
	}
}

func TestNormaliseCode(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"eng", "ENG"},
		{" E N G ", "ENG"},
		{"hr ", "HR"},
	}

	for _, test := range tests {
		if v := NormaliseCode(test.value); v != test.expected {
			t.Errorf("Incorrect normalised code for '%s' - expected:'%v', got:'%v'", test.value, test.expected, v)
		}
	}
}
