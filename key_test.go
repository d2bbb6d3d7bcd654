package dof

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		tok  string
		want Key
	}{
		{"~", EmptyKey()},
		{"*", TransparentKey()},
		{"\n", EnterKey()},
		{"\t", TabKey()},
		{"a", CharKey('a')},
		{"é", CharKey('é')},
		{"@", CharKey('@')},
		{"#", CharKey('#')},
		{`\~`, CharKey('~')},
		{`\*`, CharKey('*')},
		{`\\`, CharKey('\\')},
		{`\@sym`, WordKey("@sym")},
		{`\#x`, WordKey("#x")},
		{`\@`, WordKey("@")},
		{"#sft", WordKey("sft")},
		{"@sym", LayerKey("sym")},
		{"esc", SpecialOf(Esc)},
		{"ctrl", SpecialOf(Ctrl)},
		{"ct", SpecialOf(Ctrl)},
		{"return", SpecialOf(Enter)},
		{"bksp", SpecialOf(Backspace)},
		{"super", SpecialOf(Meta)},
		{"CTRL", WordKey("CTRL")},
		{"hello", WordKey("hello")},
		{"th", WordKey("th")},
	}
	for _, tc := range cases {
		t.Run(tc.tok, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.tok))
		})
	}
}

func TestClassify_SpecialAliasTable(t *testing.T) {
	want := map[SpecialKey][]string{
		Esc:       {"esc"},
		Repeat:    {"repeat", "rpt"},
		Space:     {"space", "spc"},
		Tab:       {"tab", "tb"},
		Enter:     {"ent", "enter", "ret", "return", "rt"},
		Shift:     {"sft", "shft", "shift", "st"},
		Caps:      {"caps", "cp", "cps"},
		Ctrl:      {"ct", "ctl", "ctrl"},
		Alt:       {"alt", "lalt", "lt", "ralt"},
		Meta:      {"met", "meta", "mt", "mta", "sp", "sup", "super"},
		Fn:        {"fn"},
		Backspace: {"backspace", "bcsp", "bksp", "bsp"},
		Del:       {"del"},
	}
	got := map[SpecialKey][]string{}
	for alias, kind := range specialAliases {
		got[kind] = append(got[kind], alias)
	}
	for _, aliases := range got {
		sort.Strings(aliases)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("alias table mismatch (-want +got):\n%s", diff)
	}

	for kind, aliases := range want {
		require.Contains(t, aliases, specialTokens[kind], kind)
		for _, alias := range aliases {
			require.Equal(t, SpecialOf(kind), Classify(alias), alias)
		}
		require.Equal(t, specialTokens[kind], SpecialOf(kind).String(), kind)
	}
}

func TestClassify_RulesInIsolation(t *testing.T) {
	k, ok := classifyEscapedLiteral(`\*`)
	require.True(t, ok)
	require.Equal(t, CharKey('*'), k)
	_, ok = classifyEscapedLiteral(`\x`)
	require.False(t, ok)

	_, ok = classifySingleChar("ab")
	require.False(t, ok)
	_, ok = classifySingleChar("")
	require.False(t, ok)

	k, ok = classifyEscapedWord("#spc")
	require.True(t, ok)
	require.Equal(t, WordKey("spc"), k)

	_, ok = classifyLayerRef("@")
	require.False(t, ok)
	k, ok = classifyLayerRef("@nav")
	require.True(t, ok)
	require.Equal(t, LayerKey("nav"), k)

	k, ok = classifyAlias("rpt")
	require.True(t, ok)
	require.Equal(t, SpecialOf(Repeat), k)
	_, ok = classifyAlias("Esc")
	require.False(t, ok)
}

func TestKey_StringRoundTrip(t *testing.T) {
	keys := []Key{
		EmptyKey(), TransparentKey(), EnterKey(), TabKey(),
		CharKey('a'), CharKey('~'), CharKey('*'), CharKey('\\'), CharKey('#'), CharKey('@'),
		LayerKey("sym"),
		WordKey("hello"), WordKey("esc"), WordKey("@sym"), WordKey("#x"), WordKey("@"), WordKey("CTRL"),
		WordKey("~~"),
	}
	for _, s := range specialTokens {
		keys = append(keys, Classify(s))
	}
	for _, k := range keys {
		require.Equal(t, k, Classify(k.String()), "key %v rendered as %q", k.Kind(), k.String())
	}
}

func TestKey_Accessors(t *testing.T) {
	c, ok := CharKey('x').Char()
	require.True(t, ok)
	require.Equal(t, 'x', c)

	_, ok = WordKey("x").Char()
	require.False(t, ok)

	s, ok := SpecialOf(Space).Special()
	require.True(t, ok)
	require.Equal(t, Space, s)
	require.Equal(t, "Space", s.String())

	require.Equal(t, "sym", LayerKey("sym").Text())
	require.Equal(t, "", CharKey('a').Text())
	require.Equal(t, "word", KindWord.String())
	require.True(t, TransparentKey().IsTransparent())
}

func TestKey_UsableAsMapKey(t *testing.T) {
	m := map[Key]int{Classify("a"): 1, Classify("spc"): 2}
	require.Equal(t, 1, m[CharKey('a')])
	require.Equal(t, 2, m[SpecialOf(Space)])
}
