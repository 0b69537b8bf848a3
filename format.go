package decimaltime

import (
	"strconv"
	"strings"
)

// DefaultLayout is the layout used by String.
const DefaultLayout = "%Y.%d %f"

// Format renders the value according to a layout string.
//
// The layout is scanned left to right. Each two-character directive starting
// with '%' is replaced by its computed field; every other character is copied
// through verbatim:
//
//	%Y  full year, signed decimal, no padding
//	%d  day of year, zero-padded to 3 digits
//	%D  day of year, no padding
//	%f  fraction of day as "0.5", "0.75", "0.123456" (at least one digit
//	    after the point; "0.0" at midnight)
//	%F  same as %f with the leading "0." stripped ("5", "75", "0" at midnight)
//	%%  literal '%'
//
// Format never fails: an unrecognized directive passes through literally,
// including both the '%' and the character that follows it, and a trailing
// '%' is copied as-is.
func (d DecimalTime) Format(layout string) string {
	var b strings.Builder
	b.Grow(len(layout) + 16)

	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' || i+1 == len(layout) {
			b.WriteByte(c)
			continue
		}

		i++
		switch verb := layout[i]; verb {
		case 'Y':
			b.WriteString(strconv.Itoa(d.Year))
		case 'd':
			writePadded(&b, d.DayOfYear)
		case 'D':
			b.WriteString(strconv.Itoa(d.DayOfYear))
		case 'f':
			b.WriteString(d.fractionText())
		case 'F':
			b.WriteString(strings.TrimPrefix(d.fractionText(), "0."))
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(verb)
		}
	}
	return b.String()
}

// fractionText renders DecimalDay in fixed-point form with trailing zeros
// trimmed, keeping at least one digit after the point.
func (d DecimalTime) fractionText() string {
	s := strconv.FormatFloat(d.DecimalDay, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		// FormatFloat collapses 0.0 to "0".
		s += ".0"
	}
	return s
}

// writePadded writes n zero-padded to at least 3 digits.
func writePadded(b *strings.Builder, n int) {
	s := strconv.Itoa(n)
	for pad := 3 - len(s); pad > 0; pad-- {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
