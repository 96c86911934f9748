package messaging

import (
	"sort"
	"strings"
)

// participantDelimiter joins the canonical participants string. The sorted,
// joined encoding acts as the natural uniqueness key for a 1:1 conversation:
// EncodeParticipants({B,A}) == EncodeParticipants({A,B}).
const participantDelimiter = ","

// EncodeParticipants normalizes an unordered pair of user IDs into the
// canonical stored representation. Identifiers are not validated; malformed
// input passes through unchanged.
func EncodeParticipants(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return strings.Join(sorted, participantDelimiter)
}

// DecodeParticipants rehydrates a stored participants string into a sorted
// sequence. Sorting again on read tolerates legacy records written unsorted.
func DecodeParticipants(stored string) []string {
	ids := strings.Split(stored, participantDelimiter)
	sort.Strings(ids)
	return ids
}
