package dof_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	dof "github.com/reoring/godof"
)

func TestFingering_DefaultsToTraditional(t *testing.T) {
	d := mustFromValue(t, orthoLayout())
	require.Equal(t, dof.Traditional, d.FingeringName())
	require.Equal(t, d.Shape(), d.Fingering().Shape())

	want := []dof.Finger{dof.LP, dof.LR, dof.LM, dof.LI, dof.LI, dof.RI, dof.RI, dof.RM, dof.RR, dof.RP}
	require.Equal(t, want, d.Fingering().Rows()[0])
}

func TestFingering_NamedIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"traditional", "Traditional", "STANDARD"} {
		d := mustFromValue(t, with(orthoLayout(), "fingering", name))
		require.Equal(t, dof.Traditional, d.FingeringName(), name)
	}
}

func TestFingering_AnglePresetFollowsAnchor(t *testing.T) {
	layout := with(orthoLayout(), "board", "ansi", "fingering", "angle")
	d := mustFromValue(t, layout)
	require.Equal(t, dof.Angle, d.FingeringName())

	// bottom row of the ANSI angle preset, cut at anchor (1,1)
	want := []dof.Finger{dof.LR, dof.LM, dof.LI, dof.LI, dof.LI, dof.RI, dof.RI, dof.RM, dof.RR, dof.RP}
	require.Equal(t, want, d.Fingering().Rows()[2])
	f, ok := d.FingerAt(dof.Pos{Row: 2, Col: 4})
	require.True(t, ok)
	require.Equal(t, dof.LI, f)
}

func TestFingering_UnknownPresets(t *testing.T) {
	cases := map[string]map[string]any{
		"unknown name":        with(orthoLayout(), "fingering", "pinkyless"),
		"angle on ortho":      with(orthoLayout(), "fingering", "angle"),
		"preset on rel board": with(orthoLayout(), "board", []string{"k k k k k k k k k k", "k k k k k k k k k k", "k k k k k k k k k k"}, "anchor", []any{0, 0}, "fingering", "traditional"),
	}
	for name, layout := range cases {
		t.Run(name, func(t *testing.T) {
			requireIssue(t, issuesOf(t, layout), dof.CodeUnknownPreset, "/fingering")
		})
	}
}

func TestFingering_RequiredOnCustomBoards(t *testing.T) {
	layout := with(orthoLayout(), "board", []string{"k k k k k k k k k k", "k k k k k k k k k k", "k k k k k k k k k k"}, "anchor", []any{0, 0})
	requireIssue(t, issuesOf(t, layout), dof.CodeMissingRequiredField, "/fingering")
}

func TestFingering_Explicit(t *testing.T) {
	fingering := []string{
		"LP LR LM LI LI  RI RI RM RR RP",
		"0 1 2 3 3  6 6 7 8 9",
		"LP LR LM LI LT  RT RI RM RR RP",
	}
	d := mustFromValue(t, with(orthoLayout(), "fingering", fingering))
	require.Equal(t, dof.NamedFingering(""), d.FingeringName())
	require.Equal(t, d.Fingering().Rows()[0], d.Fingering().Rows()[1])
	f, _ := d.FingerAt(dof.Pos{Row: 2, Col: 4})
	require.True(t, f.IsThumb())
	require.Equal(t, dof.LeftHand, f.Hand())
}

func TestFingering_ExplicitErrors(t *testing.T) {
	bad := []string{orthoRows[0], "LP LR LM LI LI  RI RI RM RR XX", orthoRows[2]}
	requireIssue(t, issuesOf(t, with(orthoLayout(), "fingering", bad)), dof.CodeMalformedToken, "/fingering/1")

	short := []string{
		"LP LR LM LI LI  RI RI RM RR RP",
		"LP LR LM LI LI  RI RI RM RR",
		"LP LR LM LI LI  RI RI RM RR RP",
	}
	requireIssue(t, issuesOf(t, with(orthoLayout(), "fingering", short)), dof.CodeShapeMismatch, "/fingering/1")

	rows := []string{"LP LR LM LI LI  RI RI RM RR RP"}
	requireIssue(t, issuesOf(t, with(orthoLayout(), "fingering", rows)), dof.CodeShapeMismatch, "/fingering")
}

func TestParseFinger(t *testing.T) {
	for i, f := range dof.Fingers {
		got, ok := dof.ParseFinger(f.String())
		require.True(t, ok)
		require.Equal(t, f, got)

		got, ok = dof.ParseFinger(string(rune('0' + i)))
		require.True(t, ok)
		require.Equal(t, f, got)
	}
	_, ok := dof.ParseFinger("lp")
	require.False(t, ok)
	_, ok = dof.ParseFinger("10")
	require.False(t, ok)
}
