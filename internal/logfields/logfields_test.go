package logfields

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		attr slog.Attr
		key  string
		val  string
	}{
		{File("a.ts"), KeyFile, "a.ts"},
		{Path("."), KeyPath, "."},
		{Payload("embed:x"), KeyPayload, "embed:x"},
		{URL("https://x"), KeyURL, "https://x"},
		{Config(".figembedrc.yaml"), KeyConfig, ".figembedrc.yaml"},
		{Format("json"), KeyFormat, "json"},
		{Error(errors.New("boom")), KeyError, "boom"},
		{Error(nil), KeyError, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.key, c.attr.Key)
		assert.Equal(t, c.val, c.attr.Value.String())
	}

	n := Count(3)
	assert.Equal(t, KeyCount, n.Key)
	assert.Equal(t, int64(3), n.Value.Int64())
}
