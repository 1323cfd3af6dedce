package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawResult(t *testing.T) {
	bw, err := triangulateBowyerWatson(SquareWithCenter())
	require.NoError(t, err)
	cells, err := Cells(bw.Mesh())
	require.NoError(t, err)

	c := DrawResult(bw.Export(), cells, 10)
	// 10 units at 10px per unit, plus padding on both sides
	assert.Equal(t, 100+2*drawPadding, c.Width())
	assert.Equal(t, 100+2*drawPadding, c.Height())

	// The background is black and the center of a triangle is not
	r, g, b, _ := c.Image().At(2, 2).RGBA()
	assert.Zero(t, r+g+b)
	r, g, b, _ = c.Image().At(drawPadding+50, drawPadding+80).RGBA()
	assert.NotZero(t, r+g+b)
}

func TestDrawResult_Empty(t *testing.T) {
	c := DrawResult(Result{}, nil, 1)
	assert.Equal(t, 2*drawPadding, c.Width())
}
