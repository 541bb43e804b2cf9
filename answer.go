package roster

import "strings"

// FormatAnswer synthesizes a one-sentence answer about the record from the
// keywords found in the query. Queries without a recognized keyword get the
// degree sentence.
func FormatAnswer(r *Record, query string) string {
	query = strings.ToLower(query)
	name := r.DisplayName()

	switch {
	case strings.Contains(query, "degree"), strings.Contains(query, "education"):
		return degreeSentence(r)
	case strings.Contains(query, "emeritus"):
		if r.IsEmeritus {
			return name + " is emeritus."
		}
		return name + " is not emeritus."
	case strings.Contains(query, "administration"):
		if r.IsAdministration {
			return name + " is in administration."
		}
		return name + " is not in administration."
	default:
		return degreeSentence(r)
	}
}

func degreeSentence(r *Record) string {
	return r.DisplayName() + " earned a " + r.DisplayDegree() +
		" from " + r.DisplayInstitution() + " in " + r.DisplayYear() + "."
}
