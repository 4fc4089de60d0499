package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeRow(t *testing.T) {
	row := []string{
		"Acme Corp",
		"Software Engineer",
		"01/15/2020",
		"06/30/2022",
		"123 Main St, Springfield, IL 62704",
		"Jane Smith",
		"Built internal tooling",
		"Relocation",
	}

	entry, err := DecodeRow(row, 1)
	if err != nil {
		t.Fatalf("DecodeRow returned error: %v", err)
	}

	if entry.Company != "Acme Corp" {
		t.Errorf("Company = %q, want %q", entry.Company, "Acme Corp")
	}
	if entry.Position != "Software Engineer" {
		t.Errorf("Position = %q, want %q", entry.Position, "Software Engineer")
	}
	if got := entry.StartDate.String(); got != "01/15/2020" {
		t.Errorf("StartDate = %s, want 01/15/2020", got)
	}
	if got := entry.EndDate.String(); got != "06/30/2022" {
		t.Errorf("EndDate = %s, want 06/30/2022", got)
	}
	if entry.Location != "Springfield, IL" {
		t.Errorf("Location = %q, want %q", entry.Location, "Springfield, IL")
	}
	if entry.Responsibilities != "Built internal tooling" {
		t.Errorf("Responsibilities = %q, want %q", entry.Responsibilities, "Built internal tooling")
	}
}

func TestDecodeRowWithoutReasonColumn(t *testing.T) {
	row := []string{"Acme", "Dev", "01/01/2020", "02/02/2021", "Remote", "Boss", "Work"}

	if _, err := DecodeRow(row, 1); err != nil {
		t.Fatalf("DecodeRow rejected a seven field row: %v", err)
	}
}

func TestDecodeRowShortRecord(t *testing.T) {
	row := []string{"Acme", "Dev", "01/01/2020", "02/02/2021", "Remote"}

	_, err := DecodeRow(row, 3)
	if err == nil {
		t.Fatal("DecodeRow accepted a five field row")
	}

	var malformed *MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Fatalf("error is %T, want *MalformedRecordError", err)
	}
	if malformed.Row != 3 {
		t.Errorf("Row = %d, want 3", malformed.Row)
	}
	if malformed.Fields != 5 {
		t.Errorf("Fields = %d, want 5", malformed.Fields)
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error %q does not name the row", err)
	}
}

func TestDecodeRowBadStartDate(t *testing.T) {
	row := []string{"Acme", "Dev", "13/40/2020", "02/02/2021", "Remote", "Boss", "Work", ""}

	_, err := DecodeRow(row, 2)
	if err == nil {
		t.Fatal("DecodeRow accepted start date 13/40/2020")
	}

	var dateErr *DateFormatError
	if !errors.As(err, &dateErr) {
		t.Fatalf("error is %T, want *DateFormatError", err)
	}
	if dateErr.Role != RoleStart {
		t.Errorf("Role = %q, want %q", dateErr.Role, RoleStart)
	}
	if dateErr.Row != 2 {
		t.Errorf("Row = %d, want 2", dateErr.Row)
	}
	if dateErr.Value != "13/40/2020" {
		t.Errorf("Value = %q, want %q", dateErr.Value, "13/40/2020")
	}
	if !strings.Contains(err.Error(), "13/40/2020") {
		t.Errorf("error %q does not carry the rejected text", err)
	}
}

func TestDecodeRowBadEndDate(t *testing.T) {
	row := []string{"Acme", "Dev", "01/01/2020", "2021-02-02", "Remote", "Boss", "Work", ""}

	_, err := DecodeRow(row, 5)
	if err == nil {
		t.Fatal("DecodeRow accepted end date 2021-02-02")
	}

	var dateErr *DateFormatError
	if !errors.As(err, &dateErr) {
		t.Fatalf("error is %T, want *DateFormatError", err)
	}
	if dateErr.Role != RoleEnd {
		t.Errorf("Role = %q, want %q", dateErr.Role, RoleEnd)
	}
	if dateErr.Unwrap() == nil {
		t.Error("DateFormatError does not wrap the cause")
	}
}

func TestDecodeRowKeepsFieldsVerbatim(t *testing.T) {
	row := []string{"  Acme  ", "Dev", "01/01/2020", "02/02/2021", "Remote", "Boss", "  spaced out  ", ""}

	entry, err := DecodeRow(row, 1)
	if err != nil {
		t.Fatalf("DecodeRow returned error: %v", err)
	}
	if entry.Company != "  Acme  " {
		t.Errorf("Company = %q, want it untrimmed", entry.Company)
	}
	if entry.Responsibilities != "  spaced out  " {
		t.Errorf("Responsibilities = %q, want it untrimmed", entry.Responsibilities)
	}
}
