package ingest

import (
	"regexp"
	"strings"
)

// The counterparty ("muhatap") column is routinely polluted with address
// fragments, raw kimlik numbers or the literal placeholder "BORÇLU".
// Downstream display depends on a clean person/company name, so the
// reclassification runs at ingestion time.

// Address-structure markers and well-known place names, matched against
// the ASCII-folded uppercase text. Short abbreviations are matched as
// whole tokens so names like "KATİP ÇELEBİ" survive.
var addressKeywords = []string{
	"MAHALLE", "MAHALLESI", "SOKAK", "SOKAGI", "CADDE", "CADDESI",
	"BULVAR", "BULVARI", "APARTMAN", "APARTMANI", "DAIRE", "BLOK",
	"SITE", "SITESI", "PLAZA", "KOYU", "OSB",
	"ISTANBUL", "ANKARA", "IZMIR", "BURSA", "ADANA", "ANTALYA",
	"KONYA", "GAZIANTEP", "KAYSERI", "MERSIN", "DIYARBAKIR",
	"ESKISEHIR", "SAMSUN", "DENIZLI", "TRABZON",
}

var addressTokens = map[string]bool{
	"MAH": true, "SOK": true, "CAD": true, "BLV": true,
	"APT": true, "KAT": true, "NO": true,
}

var companyKeywords = []string{
	"LTD", "STI", "A.S", "TIC", "SAN", "HOLDING", "SIRKET", "KOOP",
}

var (
	houseNumberRe = regexp.MustCompile(`(\b\d+\s*/?\s*[A-Z]\b)|(\b(NO|KAT|DAIRE|D|K)\s*[:.]?\s*\d+)`)
	postalCodeRe  = regexp.MustCompile(`\b\d{5}\b`)
	elevenDigitRe = regexp.MustCompile(`^\d{11}$`)
	nameCharsRe   = regexp.MustCompile(`^[0-9A-Za-zÇĞİÖŞÜçğıöşü .&-]+$`)
	lettersOnlyRe = regexp.MustCompile(`^[A-Za-zÇĞİÖŞÜçğıöşü ]+$`)
)

// foldUpper maps Turkish letters to ASCII and uppercases, so keyword
// tables stay plain ASCII.
func foldUpper(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if f, ok := asciiFold[r]; ok {
			b.WriteRune(f)
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// IsAddressLike reports whether the text reads like an address fragment
// rather than a name.
func IsAddressLike(text string) bool {
	up := foldUpper(strings.TrimSpace(text))
	if up == "" {
		return false
	}

	for _, kw := range addressKeywords {
		if strings.Contains(up, kw) {
			return true
		}
	}
	for _, tok := range strings.Fields(up) {
		if addressTokens[strings.Trim(tok, ".:,;")] {
			return true
		}
	}
	if houseNumberRe.MatchString(up) {
		return true
	}
	if len([]rune(text)) > 50 {
		return true
	}
	if strings.Count(text, "/") > 1 {
		return true
	}
	return postalCodeRe.MatchString(up)
}

// IsNameLike reports whether the text is plausible as a person or company
// name.
func IsNameLike(text string) bool {
	t := strings.TrimSpace(text)
	n := len([]rune(t))
	if n < 2 || n > 100 {
		return false
	}
	if IsAddressLike(t) {
		return false
	}
	if !nameCharsRe.MatchString(t) {
		return false
	}

	up := foldUpper(t)
	for _, kw := range companyKeywords {
		if strings.Contains(up, kw) {
			return true
		}
	}
	if lettersOnlyRe.MatchString(t) {
		return true
	}

	digits, letters := 0, 0
	for _, r := range t {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r != ' ' && r != '.' && r != '&' && r != '-':
			letters++
		}
	}
	return digits > 0 && letters > 0 && digits*2 < n
}

// CleanCounterpartyName extracts a usable name from the muhatap column,
// or nil when the cell holds a placeholder, an id number or address text.
func CleanCounterpartyName(v any) *string {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return nil
	}

	// "BORÇLU" is the upstream placeholder for "no real name provided".
	if foldUpper(s) == "BORCLU" {
		return nil
	}

	// An 11-digit cell is a misplaced kimlik number, not a name.
	if elevenDigitRe.MatchString(s) {
		return nil
	}

	// "Jane Doe / MAIN-BRANCH" keeps only the part before the slash.
	if idx := strings.Index(s, "/"); idx >= 0 {
		s = strings.TrimSpace(s[:idx])
		if !IsNameLike(s) {
			return nil
		}
	}

	if IsAddressLike(s) {
		return nil
	}
	if !IsNameLike(s) {
		return nil
	}
	return &s
}
