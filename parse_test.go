package dof_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	dof "github.com/reoring/godof"
)

func TestParseBytes_Qwerty(t *testing.T) {
	d := parseFixture(t, "qwerty.dof")
	require.Equal(t, "Qwerty", d.Name())
	require.Equal(t, dof.BoardANSI, d.Board().Type())
	require.Equal(t, dof.Anchor{X: 1, Y: 1}, d.Anchor())
	require.Equal(t, dof.Shape{10, 10, 10}, d.Shape())
	require.True(t, d.GeneratedShift())
	require.Equal(t, []string{dof.MainLayer, dof.ShiftLayer}, d.LayerNames())

	md := d.Metadata()
	require.Equal(t, []string{"Christopher Latham Sholes"}, md.Authors)
	require.NotNil(t, md.Year)
	require.Equal(t, 1878, *md.Year)
	require.Equal(t, []string{"bad", "fun"}, md.Tags)
	require.Equal(t, dof.DefaultLanguages(), md.Languages)
}

func TestParseBytes_Custom(t *testing.T) {
	d := parseFixture(t, "custom.dof")
	require.Equal(t, dof.BoardRelative, d.Board().Type())
	require.False(t, d.GeneratedShift())
	require.Equal(t, []string{dof.MainLayer, dof.ShiftLayer, "sym"}, d.LayerNames())
	require.Equal(t, []string{"someone"}, d.Metadata().Authors)
	require.Equal(t, []dof.Language{{Language: "English", Weight: 80}, {Language: "Dutch", Weight: 20}}, d.Metadata().Languages)

	sym, ok := d.Layer("sym")
	require.True(t, ok)
	require.Equal(t, []dof.Key{
		dof.CharKey('~'), dof.CharKey('*'), dof.CharKey('\\'), dof.CharKey('#'), dof.CharKey('$'),
		dof.CharKey('%'), dof.CharKey('^'), dof.CharKey('&'), dof.CharKey('('), dof.CharKey(')'),
	}, sym.Row(1))

	combos := d.Combos(dof.MainLayer)
	require.Len(t, combos, 2)
	require.Len(t, d.AltFingerings(), 1)
}

func TestParse_YAMLMatchesJSON(t *testing.T) {
	ctx := context.Background()
	fromJSON := parseFixture(t, "qwerty.dof")
	fromYAML, err := dof.Parse(ctx, dof.YAMLBytes(readFixture(t, "qwerty.yaml")))
	require.NoError(t, err)

	a, err := fromJSON.MarshalJSON()
	require.NoError(t, err)
	b, err := fromYAML.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, string(a), string(b))
}

func TestParse_PoolsIndependentIssues(t *testing.T) {
	_, err := dof.ParseBytes(context.Background(), readFixture(t, "bad.dof"))
	iss, ok := dof.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 3)
	require.Equal(t, dof.CodeUnknownKey, iss[0].Code)
	require.Equal(t, "/colour", iss[0].Path)
	require.Equal(t, dof.CodeMissingRequiredField, iss[1].Code)
	require.Equal(t, "/name", iss[1].Path)
	require.Equal(t, dof.CodeMissingRequiredField, iss[2].Code)
	require.Equal(t, "/layers/main", iss[2].Path)
}

func TestParse_FailFastReturnsFirstIssue(t *testing.T) {
	opt := dof.DefaultParseOpt()
	opt.FailFast = true
	_, err := dof.ParseBytes(context.Background(), readFixture(t, "bad.dof"), opt)
	iss, ok := dof.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	require.Equal(t, "/colour", iss[0].Path)
}

func TestParse_IndependentBoardAndLayerIssues(t *testing.T) {
	layout := with(orthoLayout(), "board", "nope", "layers", map[string]any{"main": orthoRows, "sym": []string{"a"}})
	iss := issuesOf(t, layout)
	require.Len(t, iss, 2)
	requireIssue(t, iss, dof.CodeShapeMismatch, "/layers/sym")
	requireIssue(t, iss, dof.CodeUnknownPreset, "/board")
}

func TestParse_UnknownKeys(t *testing.T) {
	layout := with(orthoLayout(), "colour", "blue", "size", 3)
	iss := issuesOf(t, layout)
	require.Len(t, iss, 2)
	requireIssue(t, iss, dof.CodeUnknownKey, "/colour")
	requireIssue(t, iss, dof.CodeUnknownKey, "/size")

	opt := dof.DefaultParseOpt()
	opt.Unknown = dof.UnknownStrip
	mustFromValue(t, with(orthoLayout(), "colour", "blue"), opt)
}

func TestParse_RequiredFields(t *testing.T) {
	for _, field := range []string{"name", "board", "layers"} {
		iss := issuesOf(t, with(orthoLayout(), field, nil))
		requireIssue(t, iss, dof.CodeMissingRequiredField, "/"+field)
	}
}

func TestParse_Conflicts(t *testing.T) {
	iss := issuesOf(t, with(orthoLayout(), "author", "a", "authors", []string{"b"}))
	requireIssue(t, iss, dof.CodeConflict, "/author")

	iss = issuesOf(t, with(orthoLayout(), "description", "a", "note", "b"))
	requireIssue(t, iss, dof.CodeConflict, "/note")
}

func TestParse_NoteIsDescription(t *testing.T) {
	d := mustFromValue(t, with(orthoLayout(), "note", "hi", "author", []string{}))
	require.Equal(t, "hi", d.Metadata().Description)
	require.Nil(t, d.Metadata().Authors)
}

func TestParse_Languages(t *testing.T) {
	d := mustFromValue(t, with(orthoLayout(), "languages", []any{map[string]any{"language": "German"}}))
	require.Equal(t, []dof.Language{{Language: "German", Weight: 100}}, d.Metadata().Languages)

	iss := issuesOf(t, with(orthoLayout(), "languages", []any{map[string]any{"language": "German", "weight": -1}}))
	requireIssue(t, iss, dof.CodeInvalidType, "/languages/0/weight")
	iss = issuesOf(t, with(orthoLayout(), "languages", []any{map[string]any{"weight": 1}}))
	requireIssue(t, iss, dof.CodeMissingRequiredField, "/languages/0/language")
}

func TestParse_InvalidTypes(t *testing.T) {
	requireIssue(t, issuesOf(t, with(orthoLayout(), "name", 3)), dof.CodeInvalidType, "/name")
	requireIssue(t, issuesOf(t, with(orthoLayout(), "year", "soon")), dof.CodeInvalidType, "/year")
	requireIssue(t, issuesOf(t, with(orthoLayout(), "layers", []string{"a"})), dof.CodeInvalidType, "/layers")
	requireIssue(t, issuesOf(t, with(orthoLayout(), "layers", map[string]any{"main": []any{"a b", 3}})), dof.CodeInvalidType, "/layers/main/1")
	requireIssue(t, issuesOf(t, []any{}), dof.CodeInvalidType, "/")
}

func TestParse_LayerShapeMismatch(t *testing.T) {
	layers := map[string]any{
		"main":  orthoRows,
		"shift": []string{orthoRows[0], "A S D F G", orthoRows[2]},
	}
	requireIssue(t, issuesOf(t, with(orthoLayout(), "layers", layers)), dof.CodeShapeMismatch, "/layers/shift/1")
}

func TestParse_EmptyLayerNamePath(t *testing.T) {
	layers := map[string]any{"main": orthoRows, "": []string{"a"}}
	requireIssue(t, issuesOf(t, with(orthoLayout(), "layers", layers)), dof.CodeShapeMismatch, "/layers/")
}

func TestParse_UndeclaredLayerKey(t *testing.T) {
	rows := []string{orthoRows[0], orthoRows[1], "z x c v b  n m , . @nav"}
	requireIssue(t, issuesOf(t, with(orthoLayout(), "layers", map[string]any{"main": rows})), dof.CodeUnresolvedReference, "/layers/main/2")
}

func TestParseBytes_DuplicateKeys(t *testing.T) {
	src := `{"name":"a","name":"b","board":"ortho","layers":{"main":["q w"]}}`
	_, err := dof.ParseBytes(context.Background(), []byte(src))
	require.True(t, dof.HasCode(err, dof.CodeDuplicateKey))
	iss, _ := dof.AsIssues(err)
	require.Equal(t, "/name", iss[0].Path)

	opt := dof.DefaultParseOpt()
	opt.Strictness.OnDuplicateKey = dof.Warn
	d, err := dof.ParseBytes(context.Background(), []byte(src), opt)
	require.NoError(t, err)
	require.Equal(t, "b", d.Name())
}

func TestParseBytes_Syntax(t *testing.T) {
	_, err := dof.ParseBytes(context.Background(), []byte(`{"name": `))
	require.True(t, dof.HasCode(err, dof.CodeParseError))

	_, err = dof.ParseBytes(context.Background(), []byte(`{"name":"a"} {}`))
	require.True(t, dof.HasCode(err, dof.CodeParseError))
}

func TestStreamParse(t *testing.T) {
	b := readFixture(t, "qwerty.dof")
	d, err := dof.StreamParse(context.Background(), bytes.NewReader(b))
	require.NoError(t, err)
	require.Equal(t, "Qwerty", d.Name())

	opt := dof.DefaultParseOpt()
	opt.MaxBytes = 16
	_, err = dof.StreamParse(context.Background(), bytes.NewReader(b), opt)
	require.True(t, dof.HasCode(err, dof.CodeTruncated))
}

func TestParse_MaxDepth(t *testing.T) {
	opt := dof.DefaultParseOpt()
	opt.MaxDepth = 2
	_, err := dof.StreamParse(context.Background(), strings.NewReader(`{"layers":{"main":["a"]}}`), opt)
	require.Error(t, err)
}

func TestParse_LogsToContextLogger(t *testing.T) {
	var buf bytes.Buffer
	lg := newTestLogger(&buf)
	ctx := dof.WithLogger(context.Background(), lg)
	_, err := dof.FromValue(ctx, orthoLayout())
	require.NoError(t, err)
	require.Contains(t, buf.String(), "parsed layout")
}
