package ingest

import (
	"regexp"
	"strings"
)

// RawRow is one decoded spreadsheet line: arbitrary header text mapped to
// a loosely typed scalar (string, float64 or nil).
type RawRow map[string]any

// asciiFold maps Turkish letters to their closest ASCII equivalent.
// Header spellings in the wild mix case, diacritics and underscores, so
// the fold table is applied before lowercasing.
var asciiFold = map[rune]rune{
	'ç': 'c', 'Ç': 'c',
	'ğ': 'g', 'Ğ': 'g',
	'ı': 'i', 'İ': 'i',
	'ö': 'o', 'Ö': 'o',
	'ş': 's', 'Ş': 's',
	'ü': 'u', 'Ü': 'u',
}

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]`)

// NormalizeKey turns any header spelling into its canonical lookup key:
// "Durum tanıtıcısı", "durum_tanitici" and "DURUM TANITICISI" all land on
// the same prefix.
func NormalizeKey(header string) string {
	var b strings.Builder
	b.Grow(len(header))
	for _, r := range header {
		if f, ok := asciiFold[r]; ok {
			b.WriteRune(f)
			continue
		}
		b.WriteRune(r)
	}
	return nonAlnumRe.ReplaceAllString(strings.ToLower(b.String()), "")
}

// Lookup resolves a logical field against a row by trying each candidate
// header in priority order. A candidate matches on the exact normalized
// key, or on a row key that starts with the candidate's normalized form
// (duplicate uploads grow suffixed headers like "Muhatap 2"). String
// values come back trimmed.
func Lookup(row RawRow, candidates []string) (any, bool) {
	norm := make(map[string]any, len(row))
	keys := make([]string, 0, len(row))
	for k, v := range row {
		nk := NormalizeKey(k)
		if _, seen := norm[nk]; !seen {
			norm[nk] = v
			keys = append(keys, nk)
		}
	}

	for _, cand := range candidates {
		nc := NormalizeKey(cand)
		if nc == "" {
			continue
		}
		if v, ok := norm[nc]; ok {
			return trimValue(v), true
		}
		for _, k := range keys {
			if strings.HasPrefix(k, nc) {
				return trimValue(norm[k]), true
			}
		}
	}
	return nil, false
}

func trimValue(v any) any {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return v
}
