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
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	lib, err := NewLibrary()
	if err != nil {
		t.Fatal(err)
	}
	face, err := lib.NewMemoryFace(goregular.TTF, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := face.Done(); err != nil {
		t.Fatal(err)
	}
	if err := lib.Done(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "face opened") || !strings.Contains(buf.String(), "face closed") {
		t.Errorf("missing lifecycle messages in %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not silence the engine")
	}
}
