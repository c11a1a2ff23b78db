package dataset

import (
	"reflect"
	"testing"
)

func TestParseRenameMap(t *testing.T) {
	m, err := ParseRenameMap("Old:New,Other:Renamed")
	if err != nil {
		t.Fatalf("ParseRenameMap failed: %v", err)
	}
	want := map[string]string{"Old": "New", "Other": "Renamed"}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("ParseRenameMap = %v, want %v", m, want)
	}
}

func TestParseRenameMapMalformed(t *testing.T) {
	for _, in := range []string{"NoColon", "A:B,broken", ":New"} {
		if _, err := ParseRenameMap(in); err == nil {
			t.Errorf("ParseRenameMap(%q) should fail", in)
		}
	}
}

func TestRename(t *testing.T) {
	d := employees().Rename(map[string]string{"Salary": "Pay"})
	if !reflect.DeepEqual(d.Columns, []string{"Name", "Department", "Pay"}) {
		t.Errorf("unexpected columns: %v", d.Columns)
	}
}

func TestRenameIgnoresUnknownSource(t *testing.T) {
	d := employees().Rename(map[string]string{"Bogus": "X"})
	if !reflect.DeepEqual(d.Columns, employees().Columns) {
		t.Errorf("unknown source names should be ignored, got %v", d.Columns)
	}
}
