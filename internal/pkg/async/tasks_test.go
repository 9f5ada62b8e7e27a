package async

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKeepsSourceOrder(t *testing.T) {
	src := make([]int, 100)
	for i := range src {
		src[i] = i
	}

	out, err := Map(src, 8, func(i int) (string, error) {
		return strconv.Itoa(i), nil
	})
	require.NoError(t, err)

	require.Len(t, out, 100)
	for i, s := range out {
		assert.Equal(t, strconv.Itoa(i), s)
	}
}

func TestMapCollectsErrors(t *testing.T) {
	src := []int{1, 2, 3, 4}

	_, err := Map(src, 2, func(i int) (int, error) {
		if i%2 == 0 {
			return 0, errors.New("even")
		}
		return i, nil
	})
	require.Error(t, err)

	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs.E, 2)
}

func TestMapEmpty(t *testing.T) {
	out, err := Map(nil, 4, func(i int) (int, error) { return i, nil })
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFlatMap(t *testing.T) {
	out, err := FlatMap([]int{1, 2, 3}, 2, func(i int) ([]int, error) {
		return []int{i, i * 10}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 10, 2, 20, 3, 30}, out)
}
