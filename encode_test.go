package dof_test

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	dof "github.com/reoring/godof"
)

func TestMarshalJSON_RoundTrip(t *testing.T) {
	for _, name := range []string{"qwerty.dof", "custom.dof"} {
		t.Run(name, func(t *testing.T) {
			d := parseFixture(t, name)
			first, err := json.Marshal(d)
			require.NoError(t, err)

			again, err := dof.ParseBytes(context.Background(), first)
			require.NoError(t, err)
			second, err := json.Marshal(again)
			require.NoError(t, err)
			require.Equal(t, string(first), string(second))
		})
	}
}

func TestMarshalJSON_OmitsDerivedFields(t *testing.T) {
	b, err := json.Marshal(parseFixture(t, "qwerty.dof"))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	require.NotContains(t, got, "anchor")
	require.NotContains(t, got, "languages")
	require.NotContains(t, got["layers"], "shift")
	require.Equal(t, "traditional", got["fingering"])
	require.Equal(t, "ansi", got["board"])
}

func TestMarshalJSON_CustomBoard(t *testing.T) {
	b, err := json.Marshal(parseFixture(t, "custom.dof"))
	require.NoError(t, err)

	var got struct {
		Board     []string                     `json:"board"`
		Anchor    []int                        `json:"anchor"`
		Fingering []string                     `json:"fingering"`
		Combos    map[string]map[string]string `json:"combos"`
		Layers    map[string][]string          `json:"layers"`
	}
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, "2 2k k k 1.5 k 2k", got.Board[2])
	require.Equal(t, []int{0, 0}, got.Anchor)
	require.Equal(t, "LP LR LM LI LI RI RI RM RR RP", got.Fingering[1])
	require.Equal(t, map[string]string{"q w": "esc", "@sym @sym-2": "sym"}, got.Combos["main"])
	require.Equal(t, `\~ \* \ # $ % ^ & ( )`, got.Layers["sym"][1])
}

func TestMarshalYAML_RoundTrip(t *testing.T) {
	d := parseFixture(t, "custom.dof")
	out, err := yaml.Marshal(d)
	require.NoError(t, err)

	again, err := dof.Parse(context.Background(), dof.YAMLBytes(out))
	require.NoError(t, err)

	a, err := json.Marshal(d)
	require.NoError(t, err)
	b, err := json.Marshal(again)
	require.NoError(t, err)
	require.JSONEq(t, string(a), string(b))
}
