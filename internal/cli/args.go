// seehuhn.de/go/glyphdump - dump rasterized glyph metrics as JSON
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cli

import (
	"math"
	"strconv"
	"strings"
)

// splitList splits a comma-separated list.  Empty entries are dropped.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' })
}

// parseInt converts the leading integer of s, the way C's strtol does:
// leading white space is skipped, an optional sign is accepted and parsing
// stops at the first non-digit.  Values outside the int64 range saturate.
// The second return value reports whether any digits were found.
func parseInt(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var v uint64
	digits := 0
	overflow := false
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		d := uint64(s[digits] - '0')
		if v > (math.MaxUint64-d)/10 {
			overflow = true
			continue
		}
		v = v*10 + d
	}
	if digits == 0 {
		return 0, false
	}

	switch {
	case neg && (overflow || v > 1<<63):
		return math.MinInt64, true
	case neg:
		return -int64(v), true
	case overflow || v > math.MaxInt64:
		return math.MaxInt64, true
	}
	return int64(v), true
}

// parseGlyphList parses a comma-separated list of glyph indices.  Entries
// without digits become 0.  The second return value reports whether at
// least one entry contained a number.
func parseGlyphList(s string) ([]uint32, bool) {
	tokens := splitList(s)
	gids := make([]uint32, 0, len(tokens))
	anyNumber := false
	for _, tok := range tokens {
		v, ok := parseInt(tok)
		anyNumber = anyNumber || ok
		gids = append(gids, uint32(v)) // C int to unsigned conversion
	}
	return gids, anyNumber
}

// parseFloat converts the longest prefix of s which forms a decimal
// floating point number.  Malformed input yields 0.
func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s[:floatPrefix(s)], 64); err == nil {
		return v
	}
	return 0
}

// floatPrefix returns the length of the longest prefix of s matching
// [+-]?digits[.digits][(e|E)[+-]?digits].
func floatPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mantissa := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseFloatList parses a comma-separated list of floating point values.
func parseFloatList(s string) []float64 {
	tokens := splitList(s)
	res := make([]float64, len(tokens))
	for i, tok := range tokens {
		res[i] = parseFloat(tok)
	}
	return res
}
