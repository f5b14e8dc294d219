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

import (
	"log/slog"
	"sync/atomic"
)

var (
	logger  atomic.Pointer[slog.Logger]
	discard = slog.New(slog.DiscardHandler)
)

// SetLogger installs l as the logger of the engine.  The engine is silent
// unless a logger is installed.  SetLogger(nil) silences it again.
//
// Face creation and release are logged at [slog.LevelInfo], glyphs which
// fail to load or render at [slog.LevelDebug].
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger, or a logger which
// discards everything.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discard
}
