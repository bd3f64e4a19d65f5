package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardomso/figembed/internal/marker"
)

func mk(payload string) marker.Marker {
	return marker.Marker{FilePath: "src/App.tsx", Payload: payload, Line: 3}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("EmptyConfig", func(t *testing.T) {
		t.Parallel()
		f, err := New(Config{})
		require.NoError(t, err)
		assert.False(t, f.HasRules())
	})

	t.Run("CountsRules", func(t *testing.T) {
		t.Parallel()
		f, err := New(Config{
			IDs:           []string{"abc", " def ", ""},
			GlobPatterns:  []string{"embed:TODO*"},
			RegexPatterns: []string{"^embed:0+$", "  "},
		})
		require.NoError(t, err)
		assert.True(t, f.HasRules())

		ids, globs, regexes := f.Stats()
		assert.Equal(t, 2, ids)
		assert.Equal(t, 1, globs)
		assert.Equal(t, 1, regexes)
	})

	t.Run("InvalidGlob", func(t *testing.T) {
		t.Parallel()
		f, err := New(Config{GlobPatterns: []string{"[invalid"}})
		require.Error(t, err)
		assert.Nil(t, f)
		assert.Contains(t, err.Error(), "invalid glob pattern")
	})

	t.Run("InvalidRegex", func(t *testing.T) {
		t.Parallel()
		f, err := New(Config{RegexPatterns: []string{"[invalid"}})
		require.Error(t, err)
		assert.Nil(t, f)
		assert.Contains(t, err.Error(), "invalid regex pattern")
	})
}

func TestShouldIgnore(t *testing.T) {
	t.Parallel()

	f, err := New(Config{
		IDs:           []string{"abc"},
		GlobPatterns:  []string{"embed:TODO*"},
		RegexPatterns: []string{`^embed:x-`},
	})
	require.NoError(t, err)

	tests := []struct {
		payload  string
		want     bool
		wantType string
	}{
		{payload: "embed:abc", want: true, wantType: ReasonID},
		{payload: "embed:abc#1:2", want: true, wantType: ReasonID},
		{payload: "embed:ABC", want: false},
		{payload: "embed:abcd", want: false},
		{payload: "embed:TODO", want: true, wantType: ReasonPattern},
		{payload: "embed:TODO-later", want: true, wantType: ReasonPattern},
		{payload: "embed:x-y", want: true, wantType: ReasonRegex},
		{payload: "embed:other", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.payload, func(t *testing.T) {
			t.Parallel()

			g, err := New(Config{
				IDs:           []string{"abc"},
				GlobPatterns:  []string{"embed:TODO*"},
				RegexPatterns: []string{`^embed:x-`},
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, g.ShouldIgnore(mk(tt.payload)))
			if tt.want {
				require.Len(t, g.Ignored(), 1)
				assert.Equal(t, tt.wantType, g.Ignored()[0].Type)
				assert.Equal(t, "src/App.tsx", g.Ignored()[0].File)
				assert.Equal(t, 3, g.Ignored()[0].Line)
			}
		})
	}

	assert.True(t, f.ShouldIgnore(mk("embed:abc")))
	assert.Equal(t, "abc", f.Ignored()[0].Rule)
}

func TestApply(t *testing.T) {
	t.Parallel()

	f, err := New(Config{IDs: []string{"skip"}})
	require.NoError(t, err)

	in := []marker.Marker{mk("embed:keep"), mk("embed:skip"), mk("embed:bad!"), mk("embed:skip#1:1")}
	out := f.Apply(in)

	require.Len(t, out, 2)
	assert.Equal(t, "embed:keep", out[0].Payload)
	assert.Equal(t, "embed:bad!", out[1].Payload)
	assert.Equal(t, 2, f.IgnoredCount())

	f.Reset()
	assert.Zero(t, f.IgnoredCount())
}

func TestApply_NoRules(t *testing.T) {
	t.Parallel()

	f, err := New(Config{})
	require.NoError(t, err)

	in := []marker.Marker{mk("embed:a")}
	assert.Equal(t, in, f.Apply(in))
	assert.Zero(t, f.IgnoredCount())
}

func TestNilFilter(t *testing.T) {
	t.Parallel()

	var f *Filter
	assert.False(t, f.ShouldIgnore(mk("embed:a")))
	assert.False(t, f.HasRules())
	assert.Zero(t, f.IgnoredCount())
	assert.Nil(t, f.Ignored())
	f.Reset()

	in := []marker.Marker{mk("embed:a")}
	assert.Equal(t, in, f.Apply(in))
}
