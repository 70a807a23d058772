package mapping

import "testing"

func TestScanMarkers_Forms(t *testing.T) {
	text := "Q1: first answer\nQuestion 2: second\n3. third\n(4a) fourth"
	markers := ScanMarkers(text)

	if len(markers) != 4 {
		t.Fatalf("got %d markers, want 4: %+v", len(markers), markers)
	}

	wantIDs := []string{"1", "2", "3", "4a"}
	for i, want := range wantIDs {
		if markers[i].Identifier != want {
			t.Errorf("marker %d identifier = %q, want %q", i, markers[i].Identifier, want)
		}
	}
}

func TestScanMarkers_OffsetOrder(t *testing.T) {
	text := "Q5: out of order\nQ1: comes later in paper order"
	markers := ScanMarkers(text)

	if len(markers) != 2 {
		t.Fatalf("got %d markers, want 2", len(markers))
	}
	if markers[0].Identifier != "5" || markers[1].Identifier != "1" {
		t.Errorf("markers in document order = [%s %s], want [5 1]",
			markers[0].Identifier, markers[1].Identifier)
	}
	if markers[0].Start >= markers[1].Start {
		t.Error("markers not sorted by offset")
	}
}

func TestScanMarkers_CaseInsensitive(t *testing.T) {
	markers := ScanMarkers("q3) lowercase marker")
	if len(markers) != 1 || markers[0].Identifier != "3" {
		t.Fatalf("got %+v, want one marker for 3", markers)
	}
}

func TestScanMarkers_LongestFormWinsAtSameOffset(t *testing.T) {
	// Line-start "12a." could also be read as a shorter candidate; the
	// scanner must keep exactly one marker per offset, the longest.
	markers := ScanMarkers("12a. combined number and letter")
	if len(markers) != 1 {
		t.Fatalf("got %d markers, want 1: %+v", len(markers), markers)
	}
	if markers[0].Identifier != "12a" {
		t.Errorf("identifier = %q, want 12a", markers[0].Identifier)
	}
}

func TestScanMarkers_Empty(t *testing.T) {
	if markers := ScanMarkers(""); len(markers) != 0 {
		t.Errorf("got %d markers from empty text", len(markers))
	}
	if markers := ScanMarkers("prose without any markers here"); len(markers) != 0 {
		t.Errorf("got %d markers from markerless text", len(markers))
	}
}

func TestScanMarkers_Pure(t *testing.T) {
	text := "Q1: a\nQ2: b"
	first := ScanMarkers(text)
	second := ScanMarkers(text)
	if len(first) != len(second) {
		t.Fatalf("scan not deterministic: %d vs %d markers", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("marker %d differs between scans: %+v vs %+v", i, first[i], second[i])
		}
	}
}
