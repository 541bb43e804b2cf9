package roster

import "strings"

// MatchThreshold is the score a record must exceed to be a match candidate
// unless one of its names appears verbatim in the query.
const MatchThreshold = 60

// Scorer computes an approximate similarity between two strings.
type Scorer interface {
	// Score returns a similarity in [0,100]; 100 means equal.
	Score(a, b string) int
}

// Match returns the record whose names best match the query, together with
// its score. It returns nil when records or query is empty or when no record
// qualifies as a candidate.
//
// A record is a candidate when its best name score exceeds MatchThreshold or
// when one of its names is a substring of the query. Among candidates the
// strictly highest score wins, so the first record seen wins ties.
func Match(query string, records []*Record, scorer Scorer) (*Record, int) {
	if len(records) == 0 || query == "" {
		return nil, 0
	}
	query = strings.ToLower(query)

	var best *Record
	bestScore := 0
	for _, r := range records {
		names := r.Names()
		score := 0
		contained := false
		for _, name := range names {
			if s := scorer.Score(query, name); s > score {
				score = s
			}
			if strings.Contains(query, name) {
				contained = true
			}
		}
		if score <= MatchThreshold && !contained {
			continue
		}
		if score > bestScore {
			best, bestScore = r, score
		}
	}
	return best, bestScore
}
