package stats

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

//CrystalSystems are the dividers of the space group numbers into the 7
//crystal systems.
var CrystalSystems = []float64{1, 3, 16, 75, 143, 168, 195, 231}

//SystemNames follow the order of CrystalSystems.
var SystemNames = []string{"triclinic", "monoclinic", "orthorhombic", "tetragonal", "trigonal", "hexagonal", "cubic"}

//Summary describes a batch of searches.
type Summary struct {
	Structures int     `json:"structures"`
	Found      int     `json:"found"`
	MeanTime   float64 `json:"mean_seconds"`
	StdDevTime float64 `json:"stddev_seconds"`
	MaxTime    float64 `json:"max_seconds"`
	Systems    *Data   `json:"systems"`
}

//Summarize builds the summary from the search times and the space group
//numbers found, 0 for the searches that failed.
func Summarize(times []time.Duration, numbers []int) *Summary {
	ret := &Summary{Structures: len(times), Systems: NewData(CrystalSystems, nil)}
	secs := make([]float64, len(times))
	for i, t := range times {
		secs[i] = t.Seconds()
		if secs[i] > ret.MaxTime {
			ret.MaxTime = secs[i]
		}
	}
	if len(secs) > 0 {
		ret.MeanTime, ret.StdDevTime = stat.MeanStdDev(secs, nil)
	}
	if len(secs) < 2 {
		ret.StdDevTime = 0
	}
	for _, n := range numbers {
		if n > 0 {
			ret.Found++
			ret.Systems.AddData(float64(n))
		}
	}
	return ret
}

func (S *Summary) String() string {
	ret := fmt.Sprintf("%d structures, %d space groups found. Search time %.4f ± %.4f s (max %.4f s)\n", S.Structures, S.Found, S.MeanTime, S.StdDevTime, S.MaxTime)
	for i, v := range S.Systems.View() {
		if v > 0 {
			ret += fmt.Sprintf("%-13s %d\n", SystemNames[i], int(v))
		}
	}
	return ret
}
