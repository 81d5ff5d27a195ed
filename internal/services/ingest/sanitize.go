package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Sanitizers never fail: bad input collapses to nil.

var nonDigitRe = regexp.MustCompile(`\D`)

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// SanitizeText trims, strips ASCII control characters and collapses
// whitespace runs to a single space.
func SanitizeText(v any) *string {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r <= 0x08 || r == 0x0B || r == 0x0C || (r >= 0x0E && r <= 0x1F) || r == 0x7F {
			continue
		}
		b.WriteRune(r)
	}

	out := strings.Join(strings.Fields(b.String()), " ")
	if out == "" {
		return nil
	}
	return &out
}

// SanitizePhone canonicalizes a Turkish phone number to the 10-digit
// subscriber form: "05551234567" and "905551234567" both become
// "5551234567". Digit strings of 7+ that fit no known shape pass through
// raw; anything shorter is dropped.
func SanitizePhone(v any) *string {
	digits := nonDigitRe.ReplaceAllString(stringify(v), "")

	switch {
	case len(digits) == 10 && digits[0] == '5':
		return &digits
	case len(digits) == 11 && digits[0] == '0':
		d := digits[1:]
		return &d
	case len(digits) == 12 && strings.HasPrefix(digits, "90"):
		d := digits[2:]
		return &d
	case len(digits) == 13 && strings.HasPrefix(digits, "090"):
		d := digits[3:]
		return &d
	case len(digits) >= 7:
		return &digits
	default:
		return nil
	}
}

// SanitizeNationalID accepts an 11-digit TC kimlik number. Shape check
// only: no leading zero, not all zeros. The official checksum is out of
// scope here.
func SanitizeNationalID(v any) *string {
	digits := nonDigitRe.ReplaceAllString(stringify(v), "")
	if len(digits) != 11 {
		return nil
	}
	if digits == "00000000000" || digits[0] == '0' {
		return nil
	}
	return &digits
}

var excelSerialRe = regexp.MustCompile(`^\d{5}$`)

// unixEpochSerial is the Excel serial number of 1970-01-01.
const unixEpochSerial = 25569

// SanitizeDate turns a 5-digit Excel date serial into YYYY-MM-DD and
// leaves everything else as the trimmed original. No format enforcement
// beyond the serial conversion.
func SanitizeDate(v any) *string {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return nil
	}
	if !excelSerialRe.MatchString(s) {
		return &s
	}

	serial, err := strconv.Atoi(s)
	if err != nil {
		return &s
	}
	t := time.UnixMilli(int64(serial-unixEpochSerial) * 86400 * 1000).UTC()
	if t.Year() < 1900 || t.Year() > 2100 {
		return &s
	}
	out := t.Format("2006-01-02")
	return &out
}
