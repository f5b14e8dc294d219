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
	"encoding/json"
	"io"
	"strconv"
)

// GlyphRecord is the JSON representation of one rendered glyph.
// The field order is part of the output format.
type GlyphRecord struct {
	GID      uint32      `json:"gid"`
	Width    int         `json:"width"`
	Rows     int         `json:"rows"`
	Left     int         `json:"left"`
	Top      int         `json:"top"`
	AdvanceX int64       `json:"advanceX"`
	Pixels   PixelValues `json:"pixels,omitempty"`
}

// PixelValues is a list of 8-bit intensities.  Unlike a plain []byte,
// which encoding/json writes as base64, it is encoded as an array of
// numbers.
type PixelValues []byte

// MarshalJSON implements the json.Marshaler interface.
func (p PixelValues) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	buf := make([]byte, 0, 2+4*len(p))
	buf = append(buf, '[')
	for i, v := range p {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, uint64(v), 10)
	}
	buf = append(buf, ']')
	return buf, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *PixelValues) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	if ints == nil {
		*p = nil
		return nil
	}
	vals := make(PixelValues, len(ints))
	for i, v := range ints {
		vals[i] = uint8(v)
	}
	*p = vals
	return nil
}

// writeRecords writes the records as a single-line JSON array.
func writeRecords(w io.Writer, records []GlyphRecord) error {
	if records == nil {
		records = []GlyphRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}
