package inspect

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/tensor"
)

func TestRun_Offset(t *testing.T) {
	var out bytes.Buffer
	err := Run(&out, &Arguments{Offset: &OffsetArguments{Shape: tensor.Shape{2, 3, 4}, Coords: []int{1, 2, 3}}})
	require.NoError(t, err)
	assert.Equal(t, "23\n", out.String())
}

func TestRun_OffsetErrors(t *testing.T) {
	var out bytes.Buffer
	err := Run(&out, &Arguments{Offset: &OffsetArguments{Shape: tensor.Shape{2, 3, 4}, Coords: []int{1, 2}}})
	assert.ErrorIs(t, err, tensor.ErrArityMismatch)

	err = Run(&out, &Arguments{Offset: &OffsetArguments{Shape: tensor.Shape{2, 3, 4}, Coords: []int{1, 3, 0}}})
	assert.ErrorIs(t, err, tensor.ErrIndexOutOfRange)

	err = Run(&out, &Arguments{Offset: &OffsetArguments{Coords: []int{1}}})
	assert.ErrorIs(t, err, ErrMissingArgument)
	assert.Empty(t, out.String())
}

func TestRun_Unravel(t *testing.T) {
	var out bytes.Buffer
	err := Run(&out, &Arguments{Unravel: &UnravelArguments{Shape: tensor.Shape{2, 3, 4}, Offset: 23}})
	require.NoError(t, err)
	assert.Equal(t, "[1 2 3]\n", out.String())

	err = Run(&out, &Arguments{Unravel: &UnravelArguments{Shape: tensor.Shape{2, 3, 4}, Offset: 24}})
	assert.ErrorIs(t, err, tensor.ErrIndexOutOfRange)
}

func TestRun_UsesConfigShape(t *testing.T) {
	path := writeConfig(t, "shape: [2, 3, 4]\n")

	var out bytes.Buffer
	err := Run(&out, &Arguments{Config: path, Offset: &OffsetArguments{Coords: []int{1, 0, 1}}})
	require.NoError(t, err)
	assert.Equal(t, "13\n", out.String())
}

func TestShow_PlainRow(t *testing.T) {
	var out bytes.Buffer
	a := &ShowArguments{Shape: tensor.Shape{2, 3}, Values: []float64{1, 2, 3, 4, 5, 6}, Index: []int{1}}
	require.NoError(t, Show(&out, &Config{}, a, true))
	assert.Equal(t, "# view (3) at [1], offset 3\n0\t4\t5\t6\n", out.String())
}

func TestShow_PlainMatrixFromFill(t *testing.T) {
	var out bytes.Buffer
	fill := 9.0
	a := &ShowArguments{Shape: tensor.Shape{2, 2}, Fill: &fill}
	require.NoError(t, Show(&out, &Config{Values: []float64{1, 2, 3, 4}}, a, true))
	assert.Equal(t, "# view (2, 2) at [], offset 0\n0\t9\t9\n1\t9\t9\n", out.String())
}

func TestShow_Scalar(t *testing.T) {
	var out bytes.Buffer
	a := &ShowArguments{Index: []int{1, 2}}
	cfg := &Config{Shape: []int{2, 3}, Values: []float64{1, 2, 3, 4, 5, 6.5}}
	require.NoError(t, Show(&out, cfg, a, false))
	assert.Equal(t, "6.5\n", out.String())
}

func TestShow_HigherRankTables(t *testing.T) {
	var out bytes.Buffer
	a := &ShowArguments{Shape: tensor.Shape{2, 2, 2}, Values: []float64{0, 1, 2, 3, 4, 5, 6, 7}}
	require.NoError(t, Show(&out, &Config{}, a, false))

	s := out.String()
	assert.Contains(t, s, "view (2, 2) at [0], offset 0")
	assert.Contains(t, s, "view (2, 2) at [1], offset 4")
	assert.Contains(t, s, "7")
}

func TestShow_Errors(t *testing.T) {
	var out bytes.Buffer

	err := Show(&out, &Config{}, &ShowArguments{Shape: tensor.Shape{2, 2}, Values: []float64{1, 2, 3}}, true)
	assert.ErrorIs(t, err, tensor.ErrSizeMismatch)

	err = Show(&out, &Config{}, &ShowArguments{Shape: tensor.Shape{2, 2}, Index: []int{2}}, true)
	assert.ErrorIs(t, err, tensor.ErrIndexOutOfRange)

	err = Show(&out, &Config{}, &ShowArguments{Shape: tensor.Shape{2, 2}, Index: []int{0, 0, 0}}, true)
	assert.ErrorIs(t, err, tensor.ErrArityMismatch)

	err = Show(&out, &Config{Shape: []int{0}}, &ShowArguments{}, true)
	assert.ErrorIs(t, err, tensor.ErrBadShape)
	assert.Empty(t, out.String())
}
