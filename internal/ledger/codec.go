package ledger

import (
	"encoding/base64"
	"strings"

	"github.com/goccy/go-json"
)

const maxIDLength = 64

// MaxEncodedLength bounds Encode's output so the ledger fits a 4096 byte
// cookie together with its name.
const MaxEncodedLength = 3900

// Encode renders the ledger as URL-safe base64 JSON, suitable as a cookie
// value. When the result would exceed MaxEncodedLength the oldest ids of the
// longest histories are dropped first; the newest id of every movie is kept
// as long as possible.
func Encode(l Ledger) (string, error) {
	if l == nil {
		l = Ledger{}
	}

	clean := sanitize(l)
	for {
		data, err := json.Marshal(clean)
		if err != nil {
			return "", err
		}
		raw := base64.RawURLEncoding.EncodeToString(data)
		if len(raw) <= MaxEncodedLength || len(clean) == 0 {
			return raw, nil
		}
		trimOldest(clean)
	}
}

// trimOldest drops the last id of the longest history. Once every history is
// down to a single id, a whole movie goes. Ties break on the larger movie id.
func trimOldest(l Ledger) {
	victim := ""
	for movieID, ids := range l {
		cur := l[victim]
		if victim == "" || len(ids) > len(cur) || (len(ids) == len(cur) && movieID > victim) {
			victim = movieID
		}
	}

	if ids := l[victim]; len(ids) > 1 {
		l[victim] = ids[:len(ids)-1]
		return
	}
	delete(l, victim)
}

// Decode parses a transported ledger. Malformed input yields an empty ledger;
// malformed entries are dropped and each history is deduplicated and capped.
// Plain JSON is accepted as well as the base64 form produced by Encode.
func Decode(raw string) Ledger {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Ledger{}
	}

	data := []byte(raw)
	if !strings.HasPrefix(raw, "{") {
		decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(raw, "="))
		if err != nil {
			return Ledger{}
		}
		data = decoded
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Ledger{}
	}

	out := make(Ledger, len(parsed))
	for movieID, rawIDs := range parsed {
		var ids []string
		if err := json.Unmarshal(rawIDs, &ids); err != nil {
			continue
		}
		out[movieID] = ids
	}
	return sanitize(out)
}

func sanitize(l Ledger) Ledger {
	out := make(Ledger, len(l))
	for movieID, ids := range l {
		if !validID(movieID) {
			continue
		}
		seen := make(map[string]struct{}, len(ids))
		clean := make([]string, 0, min(len(ids), MaxPerMovie))
		for _, id := range ids {
			if len(clean) == MaxPerMovie {
				break
			}
			if !validID(id) {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			clean = append(clean, id)
		}
		if len(clean) > 0 {
			out[movieID] = clean
		}
	}
	return out
}

func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}
	return true
}
