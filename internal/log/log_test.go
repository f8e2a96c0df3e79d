// seehuhn.de/go/sketch - a 2D drawing library
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

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" Info ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	l, c, err := New(&buf, Options{Level: "warn"})
	require.NoError(t, err)
	defer c.Close()

	l.Info("hidden")
	l.Warn("shown", "n", 3)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=shown n=3")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	l, c, err := New(&buf, Options{Level: "debug", Format: "json"})
	require.NoError(t, err)
	defer c.Close()

	l.Debug("render", "width", 20)
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "render", m["msg"])
	assert.Equal(t, "DEBUG", m["level"])
	assert.Equal(t, 20.0, m["width"])
}

func TestFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "sketch.log")
	var buf bytes.Buffer
	l, c, err := New(&buf, Options{File: fname})
	require.NoError(t, err)

	l.With("scene", "a.yaml").Info("done")
	l.Debug("skipped")
	require.NoError(t, c.Close())

	assert.Contains(t, buf.String(), "scene=a.yaml")
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &m))
	assert.Equal(t, "done", m["msg"])
	assert.Equal(t, "a.yaml", m["scene"])
}

func TestBadFormat(t *testing.T) {
	_, _, err := New(&bytes.Buffer{}, Options{Format: "xml"})
	assert.Error(t, err)
}
