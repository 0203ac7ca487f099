package zscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResult_DerivesPercentages(t *testing.T) {
	r := NewResult(Counts{PlusFull: 3, MinusFull: 1, PlusSub: 2, MinusSub: 0}, 12, 8)

	assert.Equal(t, 3, r.PlusCountFull)
	assert.Equal(t, 25.0, r.PlusPercentFull)
	assert.Equal(t, float64(1)/12*100, r.MinusPercentFull)
	assert.Equal(t, 25.0, r.PlusPercentSub)
	assert.Equal(t, 0.0, r.MinusPercentSub)
	assert.False(t, r.IsZero())
}

func TestResult_IsZero(t *testing.T) {
	assert.True(t, Result{}.IsZero())
	assert.True(t, NewResult(Counts{}, 10, 5).IsZero())
}

func TestSeries(t *testing.T) {
	assert.True(t, Series{}.Empty())
	assert.True(t, Series(nil).Empty())
	assert.Equal(t, 2, Series{1, 2}.Len())
}
