package mapping

import "regexp"

// HeaderInfo is the student identity block extracted from the top of the
// first page.
type HeaderInfo struct {
	RollNumber string
	Name       string
	CourseCode string
	Date       string
}

// Unknown is the placeholder for header fields that could not be found.
const Unknown = "UNKNOWN"

var rollPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Roll\s*(?:No|Number|#)[:\s]*([A-Z0-9]+)`),
	regexp.MustCompile(`(?i)Roll[:\s]*([A-Z0-9]+)`),
	regexp.MustCompile(`(?i)ID[:\s]*([A-Z0-9]+)`),
	// Bare token like CS2021001.
	regexp.MustCompile(`\b([A-Z]{2,}\d{4,})\b`),
}

// Name capture stays on one line; a newline ends the name.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`Name[:\s]*([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`Student[:\s]*([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)*)`),
}

var coursePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Course[:\s]*([A-Z]{2,}\d{3,})`),
	regexp.MustCompile(`(?i)Subject[:\s]*([A-Z]{2,}\d{3,})`),
	regexp.MustCompile(`\b([A-Z]{2,}\d{3,})\b`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Date[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
}

// ExtractHeader pulls the student identity fields out of header text
// (conventionally the top region of the first page). Missing fields are
// reported as UNKNOWN (or empty for the date), never as an error; a
// sheet with an unreadable header still gets graded.
func ExtractHeader(headerText string) HeaderInfo {
	return HeaderInfo{
		RollNumber: firstMatch(rollPatterns, headerText, Unknown),
		Name:       firstMatch(namePatterns, headerText, Unknown),
		CourseCode: firstMatch(coursePatterns, headerText, Unknown),
		Date:       firstMatch(datePatterns, headerText, ""),
	}
}

func firstMatch(patterns []*regexp.Regexp, text, fallback string) string {
	for _, pat := range patterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return fallback
}
