package sanitize

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// saturation caps parsed magnitudes. Scores are clamped far below it.
const saturation = 100_000_000

// Int is a request field read leniently: JSON numbers are truncated, strings
// contribute their leading integer and anything else reads as zero.
type Int int

func (n *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		*n = 0
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Int(leadingInt(s))
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = Int(math.Max(-saturation, math.Min(saturation, math.Trunc(f))))
	default:
		*n = 0
	}
	return nil
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	v := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if v < saturation {
			v = v*10 + int(s[i]-'0')
		}
	}
	if neg {
		return -v
	}
	return v
}
