package models

// BundleEntry is one element of the bundle transport format:
//
//	[{"payload": "<base64>"}, ...]
type BundleEntry struct {
	Payload string `json:"payload"`
}

// PayloadsFromEntries extracts the encoded payloads in bundle order.
func PayloadsFromEntries(entries []BundleEntry) []string {
	payloads := make([]string, 0, len(entries))
	for _, e := range entries {
		payloads = append(payloads, e.Payload)
	}
	return payloads
}

// EntriesFromPayloads wraps encoded payloads into transport entries.
func EntriesFromPayloads(payloads []string) []BundleEntry {
	entries := make([]BundleEntry, 0, len(payloads))
	for _, p := range payloads {
		entries = append(entries, BundleEntry{Payload: p})
	}
	return entries
}
