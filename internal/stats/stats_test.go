package stats

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHisto(Te *testing.T) {
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	D := NewData([]float64{0, 1, 2, 3, 4, 8}, rawdata)
	assert.Equal(Te, []float64{2, 6, 2, 7, 9}, D.View())
	assert.Equal(Te, 26, D.Total())
	D.AddData(0.5, 8, -1, 7.9)
	assert.Equal(Te, []float64{3, 6, 2, 7, 10}, D.View())
	D.Normalize()
	assert.InDelta(Te, 1, D.Sum(), 1e-12)
	D.AddData(2.5)
	assert.True(Te, D.Normalized())
	D.UnNormalize()
	assert.InDeltaSlice(Te, []float64{3, 6, 3, 7, 10}, D.View(), 1e-9)
	j, err := json.Marshal(D)
	require.NoError(Te, err)
	assert.Contains(Te, string(j), `"total":29`)
	assert.Len(Te, strings.Split(D.String(), "\n"), 2)
}

func TestSummarize(Te *testing.T) {
	times := []time.Duration{time.Second, 3 * time.Second, 2 * time.Second}
	S := Summarize(times, []int{1, 225, 0})
	assert.Equal(Te, 3, S.Structures)
	assert.Equal(Te, 2, S.Found)
	assert.InDelta(Te, 2, S.MeanTime, 1e-12)
	assert.InDelta(Te, 1, S.StdDevTime, 1e-12)
	assert.InDelta(Te, 3, S.MaxTime, 1e-12)
	assert.Equal(Te, []float64{1, 0, 0, 0, 0, 0, 1}, S.Systems.View())
	assert.Contains(Te, S.String(), "cubic")
	assert.NotContains(Te, S.String(), "hexagonal")
	one := Summarize(times[:1], []int{230})
	assert.Zero(Te, one.StdDevTime)
	assert.Equal(Te, 1.0, one.Systems.View()[6])
}
