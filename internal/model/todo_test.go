package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidText(t *testing.T) {
	cases := map[string]bool{
		"":         false,
		" ":        false,
		"a":        false,
		"  a  ":    false,
		"ok":       true,
		" ok ":     true,
		"우유":       true,
		"Buy milk": true,
	}
	for in, want := range cases {
		assert.Equal(t, want, ValidText(in), "ValidText(%q)", in)
	}
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("Active")
	require.NoError(t, err)
	assert.Equal(t, FilterActive, f)

	f, err = ParseFilter(" completed ")
	require.NoError(t, err)
	assert.Equal(t, FilterCompleted, f)

	_, err = ParseFilter("done")
	assert.Error(t, err)
}

func TestFilterLabelAndNext(t *testing.T) {
	assert.Equal(t, "All", FilterAll.Label())
	assert.Equal(t, "Completed", FilterCompleted.Label())

	assert.Equal(t, FilterActive, FilterAll.Next())
	assert.Equal(t, FilterCompleted, FilterActive.Next())
	assert.Equal(t, FilterAll, FilterCompleted.Next())
	assert.Equal(t, FilterAll, Filter("bogus").Next())
}
