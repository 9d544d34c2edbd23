package repository

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var namePattern = regexp.MustCompile(`^tournament_(\d+)_`)

// Slugify lowers the text, strips diacritics and replaces every
// non-alphanumeric run with a single underscore. "Créteil-sur-Mer"
// becomes "creteil_sur_mer".
func Slugify(text string) string {
	decomposed := norm.NFKD.String(strings.ToLower(text))

	var b strings.Builder
	lastUnderscore := false
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

// GenerateName builds the next durable tournament name for a location:
// "tournament_<N>_<slug>_<date>", where N is one past the highest
// sequence number found among the existing names.
func (r *TournamentRepository) GenerateName(location string) (string, error) {
	records, err := r.LoadAll()
	if err != nil {
		return "", err
	}

	maxSeq := 0
	for _, rec := range records {
		m := namePattern.FindStringSubmatch(rec.Name)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > maxSeq {
			maxSeq = n
		}
	}

	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("tournament_%d_%s_%s", maxSeq+1, Slugify(location), date), nil
}
