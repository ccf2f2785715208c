package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePair(t *testing.T) {
	cases := []struct {
		in   string
		key  string
		want any
	}{
		{`name=Ada`, "name", "Ada"},
		{`n=3`, "n", float64(3)},
		{`ok=true`, "ok", true},
		{`nothing=null`, "nothing", nil},
		{`quoted="3"`, "quoted", "3"},
		{`list=[1,2]`, "list", []any{float64(1), float64(2)}},
		{`obj={"a":1}`, "obj", map[string]any{"a": float64(1)}},
		{`empty=`, "empty", ""},
		{`eq=a=b`, "eq", "a=b"},
	}
	for _, c := range cases {
		key, val, err := parsePair(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.key, key, c.in)
		assert.Equal(t, c.want, val, c.in)
	}
}

func TestParsePair_Invalid(t *testing.T) {
	for _, in := range []string{"novalue", "=v", ""} {
		_, _, err := parsePair(in)
		assert.Error(t, err, in)
	}
}
