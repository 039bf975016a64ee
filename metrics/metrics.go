/*
 * metrics.go, part of gospg
 *
 *
 * Copyright 2024 Raul Mera  <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 *
 *  This program is free software; you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation; either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License along
 *  with this program; if not, write to the Free Software Foundation, Inc.,
 *  51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 *
 *
 */

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//Outcomes of a space group search, used as label values.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
)

//Default buckets
var (
	DefaultDurationBuckets   = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
	DefaultOperationsBuckets = []float64{1, 2, 4, 8, 16, 24, 48, 96, 192, 384, 768}
)

//Recorder receives the measurements of the space group searches.
type Recorder interface {
	//ObserveSearch records one search, its outcome and how long it took.
	ObserveSearch(outcome string, d time.Duration)
	//ObserveOperations records the number of operations found for a structure.
	ObserveOperations(n int)
	//ObserveSpaceGroup records a detected space group number.
	ObserveSpaceGroup(number int)
}

//Prometheus is a Recorder backed by its own prometheus registry.
type Prometheus struct {
	registry    *prometheus.Registry
	searches    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	operations  prometheus.Histogram
	spaceGroups *prometheus.CounterVec
}

//NewPrometheus registers the metrics under namespace and returns the recorder.
//If withRuntime is true, the Go runtime and process collectors are also
//registered.
func NewPrometheus(namespace string, withRuntime bool) *Prometheus {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
		reg.MustRegister(prometheus.NewGoCollector())
	}
	p := &Prometheus{
		registry: reg,
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Space group searches, by outcome",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Space group search duration",
			Buckets:   DefaultDurationBuckets,
		}, []string{"outcome"}),
		operations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operations_found",
			Help:      "Symmetry operations found per structure, in the reduced cell",
			Buckets:   DefaultOperationsBuckets,
		}),
		spaceGroups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "space_groups_total",
			Help:      "Detected space groups, by number",
		}, []string{"number"}),
	}
	reg.MustRegister(p.searches, p.duration, p.operations, p.spaceGroups)
	return p
}

func (p *Prometheus) ObserveSearch(outcome string, d time.Duration) {
	p.searches.WithLabelValues(outcome).Inc()
	p.duration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (p *Prometheus) ObserveOperations(n int) {
	p.operations.Observe(float64(n))
}

func (p *Prometheus) ObserveSpaceGroup(number int) {
	p.spaceGroups.WithLabelValues(strconv.Itoa(number)).Inc()
}

//Registry returns the registry the metrics live in.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

//Handler serves the metrics in the prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

type nop struct{}

func (nop) ObserveSearch(string, time.Duration) {}
func (nop) ObserveOperations(int)               {}
func (nop) ObserveSpaceGroup(int)               {}

//NewNop returns a Recorder that discards everything.
func NewNop() Recorder {
	return nop{}
}
