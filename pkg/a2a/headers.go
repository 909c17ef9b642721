package a2a

// HeaderRow is a single key/value row as supplied by the caller. Rows arrive
// as an ordered list; the UI layer flattens its table representation into
// this shape before it reaches the client.
type HeaderRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NormalizeHeaders converts an ordered list of header rows into a
// deduplicated map. A row contributes only if both key and value are
// non-empty; malformed rows are skipped without error. Last write wins on
// duplicate keys.
func NormalizeHeaders(rows []HeaderRow) map[string]string {
	headers := make(map[string]string, len(rows))
	for _, row := range rows {
		if row.Key == "" || row.Value == "" {
			continue
		}
		headers[row.Key] = row.Value
	}
	return headers
}
