package mapping

import "testing"

func TestExtractHeader_Full(t *testing.T) {
	text := "Name: Priya Sharma\nRoll No: CS2021042\nCourse: CS301\nDate: 12/05/2025"
	h := ExtractHeader(text)

	if h.Name != "Priya Sharma" {
		t.Errorf("name = %q, want Priya Sharma", h.Name)
	}
	if h.RollNumber != "CS2021042" {
		t.Errorf("roll = %q, want CS2021042", h.RollNumber)
	}
	if h.CourseCode != "CS301" {
		t.Errorf("course = %q, want CS301", h.CourseCode)
	}
	if h.Date != "12/05/2025" {
		t.Errorf("date = %q, want 12/05/2025", h.Date)
	}
}

func TestExtractHeader_BareRollToken(t *testing.T) {
	h := ExtractHeader("EE2019007 answer sheet")
	if h.RollNumber != "EE2019007" {
		t.Errorf("roll = %q, want EE2019007", h.RollNumber)
	}
}

func TestExtractHeader_Missing(t *testing.T) {
	h := ExtractHeader("smudged unreadable header")
	if h.RollNumber != Unknown || h.Name != Unknown || h.CourseCode != Unknown {
		t.Errorf("missing fields should be UNKNOWN, got %+v", h)
	}
	if h.Date != "" {
		t.Errorf("missing date should be empty, got %q", h.Date)
	}
}
