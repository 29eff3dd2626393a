package credstore

import (
	"bytes"
	"strings"
)

// FormatRecord renders rec as one line of the users file, newline included.
func FormatRecord(rec Record) string {
	rec = normalize(rec)
	return rec.Email + "," + rec.Name + "," + rec.PasswordHash + "\n"
}

// ParseRecords decodes the users file format. Blank lines and lines missing
// an email or hash are skipped; fields after the third are ignored. Lines of
// any length are accepted.
func ParseRecords(data []byte) (map[string]Record, error) {
	var records []Record

	for _, line := range bytes.Split(data, []byte("\n")) {
		row := strings.TrimSpace(string(line))
		if row == "" {
			continue
		}

		parts := strings.Split(row, ",")
		if len(parts) < 3 {
			continue
		}

		records = append(records, Record{
			Email:        parts[0],
			Name:         parts[1],
			PasswordHash: parts[2],
		})
	}

	return index(records), nil
}
