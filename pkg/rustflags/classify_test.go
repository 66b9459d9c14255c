package rustflags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify_ZSingleToken(t *testing.T) {
	flags := Classify([]string{"-Zsanitizer=address"})
	require.Equal(t, []Flag{Z{Option: "sanitizer=address"}}, flags)
}

func TestClassify_CfgWithValue(t *testing.T) {
	flags := Classify([]string{"--cfg", `feature="foo"`})
	require.Equal(t, []Flag{Cfg{Key: "feature", Value: `"foo"`, HasValue: true}}, flags)
}

func TestClassify_CfgWithoutValue(t *testing.T) {
	flags := Classify([]string{"--cfg", "proc_macro_span"})
	require.Equal(t, []Flag{Cfg{Key: "proc_macro_span"}}, flags)
}

func TestClassify_CfgEmptyValue(t *testing.T) {
	flags := Classify([]string{"--cfg", "a="})
	require.Equal(t, []Flag{Cfg{Key: "a", Value: "", HasValue: true}}, flags)
}

func TestClassify_CfgSplitsOnFirstEquals(t *testing.T) {
	flags := Classify([]string{"--cfg", "a=b=c"})
	require.Equal(t, []Flag{Cfg{Key: "a", Value: "b=c", HasValue: true}}, flags)
}

func TestClassify_ZTwoTokens(t *testing.T) {
	two := Classify([]string{"-Z", "allow-features=a,b"})
	one := Classify([]string{"-Zallow-features=a,b"})

	require.Equal(t, []Flag{Z{Option: "allow-features=a,b"}}, two)
	require.Equal(t, one, two)
}

func TestClassify_DanglingCfg(t *testing.T) {
	flags := Classify([]string{"--cfg"})
	require.Equal(t, []Flag{Other{Tokens: []string{"--cfg"}}}, flags)
}

func TestClassify_DanglingZ(t *testing.T) {
	flags := Classify([]string{"-Zy", "-Z"})
	require.Equal(t, []Flag{
		Z{Option: "y"},
		Other{Tokens: []string{"-Z"}},
	}, flags)
}

func TestClassify_ZEmptyOption(t *testing.T) {
	flags := Classify([]string{"-Z", ""})
	require.Equal(t, []Flag{Z{Option: ""}}, flags)
	require.Equal(t, []string{"-Z", ""}, flags[0].Args())
}

// A flag name followed by another flag name takes it as its value.
func TestClassify_GreedyValue(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []Flag
	}{
		{
			name:   "cfg then cfg",
			tokens: []string{"--cfg", "--cfg"},
			want:   []Flag{Cfg{Key: "--cfg"}},
		},
		{
			name:   "cfg then cfg then value",
			tokens: []string{"--cfg", "--cfg", "foo"},
			want: []Flag{
				Cfg{Key: "--cfg"},
				Other{Tokens: []string{"foo"}},
			},
		},
		{
			name:   "z then cfg",
			tokens: []string{"-Z", "--cfg"},
			want:   []Flag{Z{Option: "--cfg"}},
		},
		{
			name:   "cfg then z",
			tokens: []string{"--cfg", "-Zfoo"},
			want:   []Flag{Cfg{Key: "-Zfoo"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.tokens))
		})
	}
}

func TestClassify_Other(t *testing.T) {
	flags := Classify([]string{"-Copt-level=3", "--edition", "2021", "", "--CFG", "-z"})
	require.Equal(t, []Flag{
		Other{Tokens: []string{"-Copt-level=3"}},
		Other{Tokens: []string{"--edition"}},
		Other{Tokens: []string{"2021"}},
		Other{Tokens: []string{""}},
		Other{Tokens: []string{"--CFG"}},
		Other{Tokens: []string{"-z"}},
	}, flags)
}

func TestClassify_Order(t *testing.T) {
	tokens := []string{
		"-Aunused",
		"--cfg", "foo",
		"-Zbuild-std",
		"--cfg", `bar="1"`,
		"-C", "target-cpu=native",
		"-Z", "threads=8",
	}

	flags := Classify(tokens)
	require.Equal(t, []Flag{
		Other{Tokens: []string{"-Aunused"}},
		Cfg{Key: "foo"},
		Z{Option: "build-std"},
		Cfg{Key: "bar", Value: `"1"`, HasValue: true},
		Other{Tokens: []string{"-C"}},
		Other{Tokens: []string{"target-cpu=native"}},
		Z{Option: "threads=8"},
	}, flags)
}

func TestParseAll_Empty(t *testing.T) {
	require.Empty(t, ParseAll(""))
}

func TestParseAll_SeparatorOnly(t *testing.T) {
	require.Equal(t, []Flag{
		Other{Tokens: []string{""}},
		Other{Tokens: []string{""}},
	}, ParseAll("\x1f"))
}

func TestParse_Lazy(t *testing.T) {
	dec := NewDecoder("-Zy\x1f--cfg\x1ffoo\x1fbar")
	c := NewClassifier(dec)

	f, ok := c.Next()
	require.True(t, ok)
	require.Equal(t, Z{Option: "y"}, f)

	// Only the first token has been read.
	rest, ok := dec.Next()
	require.True(t, ok)
	require.Equal(t, "--cfg", rest)

	f, ok = c.Next()
	require.True(t, ok)
	require.Equal(t, Other{Tokens: []string{"foo"}}, f)
}

func TestClassifier_Exhausted(t *testing.T) {
	c := Parse("--cfg\x1ffoo")
	require.Len(t, c.Collect(), 1)

	f, ok := c.Next()
	require.False(t, ok)
	require.Nil(t, f)
	require.Empty(t, c.Collect())
}
