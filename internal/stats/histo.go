//Package stats summarizes batch runs of the space group search: search
//times and how the structures distribute over the crystal systems.
package stats

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is a histogram.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil, in which case the histogram is empty. Values
//outside the dividers are omitted.
func NewData(dividers []float64, rawdata []float64) *Data {
	d := new(Data)
	d.dividers = append([]float64(nil), dividers...)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(rawdata)
	}
	return d
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

//String prints the histogram in 2 lines, the bins and their values.
func (D *Data) String() string {
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//AddData adds the given data point(s) to the histogram
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	for _, v := range point {
		//the bin whose upper divider is the first one larger than v
		j := sort.Search(len(D.dividers), func(i int) bool { return D.dividers[i] > v })
		if j == 0 || j == len(D.dividers) {
			continue
		}
		D.histo[j-1]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	if normalize {
		n = 1 / n
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

//View returns the bins, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

//Total is the number of points counted.
func (D *Data) Total() int {
	return D.total
}

func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//ReHisto replaces the contents of the histogram with the one of rawdata,
//which is sorted in the process.
func (D *Data) ReHisto(rawdata []float64) {
	sort.Float64s(rawdata)
	//stat.Histogram panics on values out of range
	maxi := sort.SearchFloat64s(rawdata, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(rawdata, D.dividers[0])
	rawdata = rawdata[mini:maxi]
	D.total = len(rawdata)
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, rawdata, nil)
}
