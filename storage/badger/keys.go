package badger

// Key prefixes for stored data types.
const (
	qaEntryPrefix = "qarec"
)

// makeQAEntryKey generates a key for a QA entry by pair ID.
func makeQAEntryKey(id string) []byte {
	return []byte(qaEntryPrefix + ":" + id)
}
