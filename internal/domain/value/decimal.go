// Package value holds small scalar types shared by the domain models.
package value

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Decimal is a non-integer number the ranking API may send either as a JSON
// number or as a quoted string (numeric database columns).
type Decimal float64

func (d Decimal) Float64() float64 {
	return float64(d)
}

// String formats with two decimals and a thousands separator, e.g. 1,840.93.
func (d Decimal) String() string {
	return FormatNumber(float64(d), 2)
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(d), 'f', -1, 64)), nil
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = 0
		return nil
	}
	raw := strings.Trim(string(data), `"`)
	if strings.TrimSpace(raw) == "" {
		*d = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("decode decimal %q: %w", raw, err)
	}
	*d = Decimal(parsed)
	return nil
}

// FormatNumber renders v with a fixed number of decimals and comma grouping.
func FormatNumber(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}

// Int is a whole number that may arrive quoted, as aggregate counts often do.
type Int int

func (i *Int) UnmarshalJSON(data []byte) error {
	var d Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = Int(d)
	return nil
}
