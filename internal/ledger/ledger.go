// Package ledger tracks, per movie, the fact ids already served to a client,
// newest first. A Ledger is a value: updates return a new Ledger.
package ledger

// MaxPerMovie bounds each movie's history so the encoded ledger fits in a cookie.
const MaxPerMovie = 80

// Ledger maps a movie id to its served fact ids, newest first, without duplicates.
type Ledger map[string][]string

// IDs returns a copy of the movie's history; empty when absent.
func (l Ledger) IDs(movieID string) []string {
	ids := l[movieID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Add moves id to the front of the movie's history, truncating to MaxPerMovie.
// The receiver is left untouched.
func (l Ledger) Add(movieID, id string) Ledger {
	next := make(Ledger, len(l)+1)
	for k, v := range l {
		next[k] = v
	}

	cur := l[movieID]
	ids := make([]string, 0, min(len(cur)+1, MaxPerMovie))
	ids = append(ids, id)
	for _, existing := range cur {
		if len(ids) == MaxPerMovie {
			break
		}
		if existing != id {
			ids = append(ids, existing)
		}
	}

	next[movieID] = ids
	return next
}
