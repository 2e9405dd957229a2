package booking

import (
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

func NormaliseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Resolve returns copies of every record whose code matches userCode
// after normalisation, in file order. No match gives an empty slice.
func Resolve(records []*Record, userCode string) []*Record {
	code := NormaliseCode(userCode)
	matches := []*Record{}

	if code == "" {
		return matches
	}

	for _, record := range records {
		if record.Code != code {
			continue
		}

		matches = append(matches, copyRecord(record))
	}

	return matches
}

// Cached records are shared between requests so lookups hand out deep copies
func copyRecord(record *Record) *Record {
	copied := &Record{}

	if err := copier.CopyWithOption(copied, record, copier.Option{DeepCopy: true}); err != nil {
		log.Error().Err(err).Msg("Failed to copy booking record")

		shallow := *record
		return &shallow
	}

	return copied
}
