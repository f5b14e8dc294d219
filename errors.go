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

package glyphdump

// Error is an engine error code.  The codes mirror the error classes of
// the FreeType API, so that callers can map failures one to one.
type Error int

// Engine error codes.
const (
	ErrCannotOpenResource Error = iota + 1
	ErrUnknownFileFormat
	ErrInvalidArgument
	ErrInvalidPixelSize
	ErrInvalidGlyphIndex
	ErrInvalidOutline
	ErrInvalidLibraryHandle
	ErrInvalidFaceHandle
	ErrInvalidSlotHandle
	ErrRasterOverflow
)

func (e Error) Error() string {
	switch e {
	case ErrCannotOpenResource:
		return "glyphdump: cannot open resource"
	case ErrUnknownFileFormat:
		return "glyphdump: unknown file format"
	case ErrInvalidArgument:
		return "glyphdump: invalid argument"
	case ErrInvalidPixelSize:
		return "glyphdump: invalid pixel size"
	case ErrInvalidGlyphIndex:
		return "glyphdump: invalid glyph index"
	case ErrInvalidOutline:
		return "glyphdump: invalid outline"
	case ErrInvalidLibraryHandle:
		return "glyphdump: invalid library handle"
	case ErrInvalidFaceHandle:
		return "glyphdump: invalid face handle"
	case ErrInvalidSlotHandle:
		return "glyphdump: invalid glyph slot"
	case ErrRasterOverflow:
		return "glyphdump: raster overflow"
	default:
		return "glyphdump: unknown error"
	}
}

// OpError records an engine failure together with the operation and the
// underlying cause reported by the font library.
type OpError struct {
	Op   string // the failing operation, e.g. "load glyph"
	Code Error
	Err  error // the cause, may be nil
}

func (err *OpError) Error() string {
	msg := err.Code.Error() + " (" + err.Op + ")"
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

// Is reports whether target is the error code of err.
func (err *OpError) Is(target error) bool {
	code, ok := target.(Error)
	return ok && code == err.Code
}

func (err *OpError) Unwrap() error {
	return err.Err
}

func opError(op string, code Error, cause error) error {
	return &OpError{Op: op, Code: code, Err: cause}
}
