package dof_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	dof "github.com/reoring/godof"
)

// tokens is a hand-written Source.
type tokens struct {
	toks []dof.Token
	i    int
}

func (s *tokens) NextToken() (dof.Token, error) {
	if s.i >= len(s.toks) {
		return dof.Token{}, io.EOF
	}
	t := s.toks[s.i]
	s.i++
	return t, nil
}

func (s *tokens) Location() int64 { return -1 }

func TestParse_CustomSource(t *testing.T) {
	k := func(s string) dof.Token { return dof.Token{Kind: dof.TokenKey, String: s} }
	str := func(s string) dof.Token { return dof.Token{Kind: dof.TokenString, String: s} }
	src := &tokens{toks: []dof.Token{
		{Kind: dof.TokenBeginObject},
		k("name"), str("tiny"),
		k("year"), {Kind: dof.TokenNumber, Number: "2024"},
		k("board"), str("ortho"),
		k("layers"), {Kind: dof.TokenBeginObject},
		k("main"), {Kind: dof.TokenBeginArray}, str("a b c"), {Kind: dof.TokenEndArray},
		{Kind: dof.TokenEndObject},
		{Kind: dof.TokenEndObject},
	}}
	d, err := dof.Parse(context.Background(), src)
	require.NoError(t, err)
	require.Equal(t, "tiny", d.Name())
	require.Equal(t, 2024, *d.Metadata().Year)
	require.Equal(t, dof.Shape{3}, d.Shape())
}

func TestEnforceSource_ReportsDuplicatesToSink(t *testing.T) {
	opt := dof.DefaultParseOpt()
	opt.Strictness.OnDuplicateKey = dof.Warn
	var got []dof.Issue
	src := dof.EnforceSource(dof.JSONBytes([]byte(`{"a":1,"a":2}`)), opt, func(it dof.Issue) { got = append(got, it) })
	for {
		if _, err := src.NextToken(); err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
	}
	require.Len(t, got, 1)
	require.Equal(t, dof.CodeDuplicateKey, got[0].Code)
	require.Equal(t, "/a", got[0].Path)
}

func TestYAMLReader(t *testing.T) {
	f := readFixture(t, "qwerty.yaml")
	d, err := dof.Parse(context.Background(), dof.YAMLReader(bytes.NewReader(f)))
	require.NoError(t, err)
	require.Equal(t, "Qwerty", d.Name())
	require.Equal(t, 1878, *d.Metadata().Year)
}
