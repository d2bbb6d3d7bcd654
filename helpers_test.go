package dof_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	dof "github.com/reoring/godof"
)

var orthoRows = []string{
	"q w e r t  y u i o p",
	"a s d f g  h j k l ;",
	"z x c v b  n m , . /",
}

// orthoLayout returns a valid document tree on the ortho preset; callers
// replace fields to build the case under test.
func orthoLayout() map[string]any {
	return map[string]any{
		"name":   "test",
		"board":  "ortho",
		"layers": map[string]any{"main": orthoRows},
	}
}

func with(m map[string]any, kv ...any) map[string]any {
	for i := 0; i+1 < len(kv); i += 2 {
		k := kv[i].(string)
		if kv[i+1] == nil {
			delete(m, k)
			continue
		}
		m[k] = kv[i+1]
	}
	return m
}

func mustFromValue(t *testing.T, v any, opts ...dof.ParseOpt) *dof.Document {
	t.Helper()
	d, err := dof.FromValue(context.Background(), v, opts...)
	require.NoError(t, err)
	return d
}

// issuesOf parses v and returns the issues it fails with.
func issuesOf(t *testing.T, v any, opts ...dof.ParseOpt) dof.Issues {
	t.Helper()
	_, err := dof.FromValue(context.Background(), v, opts...)
	require.Error(t, err)
	iss, ok := dof.AsIssues(err)
	require.True(t, ok, "expected Issues, got %T", err)
	return iss
}

func requireIssue(t *testing.T, iss dof.Issues, code, path string) {
	t.Helper()
	for _, it := range iss {
		if it.Code == code && it.Path == path {
			return
		}
	}
	t.Fatalf("no %s at %s in %v", code, path, iss)
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return b
}

func parseFixture(t *testing.T, name string) *dof.Document {
	t.Helper()
	d, err := dof.ParseBytes(context.Background(), readFixture(t, name))
	require.NoError(t, err)
	return d
}

func newTestLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{Level: log.DebugLevel})
}
