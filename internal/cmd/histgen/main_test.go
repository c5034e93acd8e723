package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	src, err := generate("labelcell", 3)
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by internal/cmd/histgen. DO NOT EDIT."))
	assert.Contains(t, out, "const MaxLabels = 3")
	assert.Contains(t, out, "~[1]W |")
	assert.Contains(t, out, "~[3]W\n}")
	assert.NotContains(t, out, "~[4]W")
}

func TestGenerateUnionLimit(t *testing.T) {
	src, err := generate("labelcell", maxUnionTerms)
	require.NoError(t, err)
	assert.Equal(t, maxUnionTerms, strings.Count(string(src), "]W"))

	_, err = generate("labelcell", maxUnionTerms+1)
	assert.ErrorContains(t, err, "cannot handle more than 100 union terms")

	_, err = generate("labelcell", 0)
	assert.Error(t, err)
}
