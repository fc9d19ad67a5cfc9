package main

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/tensor"
)

func TestRunCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"version", []string{"version"}, "ndarray " + version + "\n"},
		{"sum all", []string{"reduce", "-shape", "2,3", "1", "2", "3", "4", "5", "6"}, "21.\n"},
		{"sum axis 0", []string{"reduce", "-shape", "2,3", "-axes", "0", "1,2,3,4,5,6"}, "[5. 7. 9.]\n"},
		{"column-major input", []string{"reduce", "-shape", "2,3", "-axes", "1", "-layout", "col", "1,2,3,4,5,6"}, "[ 9. 12.]\n"},
		{"keepdims", []string{"reduce", "-op", "max", "-shape", "2,3", "-axes", "-1", "-keepdims", "1,5,3,4,2,6"}, "[[5.]\n [6.]]\n"},
		{"prod of empty", []string{"reduce", "-op", "prod"}, "1.\n"},
		{"mean", []string{"reduce", "-op", "mean", "1", "2", "3", "4"}, "2.5\n"},
		{"scan", []string{"scan", "-shape", "2,3", "-axis", "1", "1,2,3,4,5,6"}, "[[ 1.  3.  6.]\n [ 4.  9. 15.]]\n"},
		{"scan max", []string{"scan", "-op", "max", "3", "1", "4", "1", "5"}, "[3. 3. 4. 4. 5.]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(tt.args, &out))
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"reduce", "-shape", "2,2", "1", "2", "3"}, &out)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))

	err = run([]string{"reduce", "-axes", "3", "1", "2"}, &out)
	assert.True(t, errors.Is(err, tensor.ErrAxis))

	err = run([]string{"reduce", "-op", "max"}, &out)
	assert.True(t, errors.Is(err, tensor.ErrEmptyReduce))

	assert.Error(t, run([]string{"reduce", "-op", "median", "1"}, &out))
	assert.Error(t, run([]string{"scan", "-op", "mean", "1"}, &out))
	assert.Error(t, run([]string{"reduce", "x"}, &out))
	assert.Error(t, run([]string{"frobnicate"}, &out))
	assert.Empty(t, out.String())
}

func TestParseInts(t *testing.T) {
	got, err := parseInts("4, 6,-1")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6, -1}, got)

	got, err = parseInts("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseInts("4,x")
	assert.Error(t, err)
}

func TestUsage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out))
	assert.Contains(t, out.String(), "reduce")
	assert.Contains(t, out.String(), "scan")
}
