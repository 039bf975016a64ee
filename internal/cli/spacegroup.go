/*
 * spacegroup.go, part of gospg
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

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	spg "github.com/rmera/gospg"
	"github.com/rmera/gospg/internal/stats"
	"github.com/rmera/gospg/logging"
	"github.com/rmera/gospg/metrics"
	"github.com/rmera/gospg/spgjson"
	"github.com/rmera/gospg/structio"
)

type spaceGroupFlags struct {
	json        bool
	stdin       bool
	summary     bool
	metricsAddr string
	metricsFile string
}

func newSpaceGroupCmd() *cobra.Command {
	f := &spaceGroupFlags{}
	cmd := &cobra.Command{
		Use:   "spacegroup [FILE...]",
		Short: "Find the space group of the structures in the files",
		Long: "Find the space group of every structure in the files, several at a time.\n" +
			"With --stdin, the options and structures are read from the standard input\n" +
			"in the spgjson line protocol, and the reports are always JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !f.stdin {
				return fmt.Errorf("%w: no structure files given", spg.ErrInvalidInput)
			}
			return runSpaceGroup(cmd, f, args)
		},
	}
	fl := cmd.Flags()
	fl.BoolVar(&f.json, "json", false, "write one JSON report per structure")
	fl.BoolVar(&f.stdin, "stdin", false, "read the structures from the standard input")
	fl.BoolVar(&f.summary, "summary", false, "print statistics of the run to the standard error")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics at this address while the run lasts (overrides metrics.addr)")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write the metrics of the run to this file, in the Prometheus text format")
	return cmd
}

//input is the batch to process, with the species names of each structure.
type input struct {
	structures []spg.Structure
	species    [][]string
	opts       []spg.Option
}

func readInputs(cmd *cobra.Command, c *cliContext, f *spaceGroupFlags, files []string) (*input, error) {
	in := &input{opts: c.searchOptions()}
	if f.stdin {
		o, structures, species, jerr := spgjson.DecodeStructures(bufio.NewReader(cmd.InOrStdin()))
		if jerr != nil {
			return nil, fmt.Errorf("%w: structure %d: %s", structio.ErrFormat, jerr.Structure, jerr.Error())
		}
		in.structures, in.species = structures, species
		//the options of the stream override the configuration
		in.opts = append(in.opts, o.SpgOptions()...)
		return in, nil
	}
	for _, name := range files {
		s, err := structio.ReadFile(name)
		if err != nil {
			return nil, err
		}
		for _, v := range s {
			in.structures = append(in.structures, v.Structure)
			in.species = append(in.species, v.Species)
		}
	}
	return in, nil
}

//serveMetrics starts serving the metrics at addr, and returns the function
//that stops the server.
func serveMetrics(addr string, h http.Handler, logger logging.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", logging.Err(err))
		}
	}()
	logger.Info("serving metrics", logging.String("addr", ln.Addr().String()))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

func runSpaceGroup(cmd *cobra.Command, f *spaceGroupFlags, files []string) error {
	c := getContext(cmd)
	runID := uuid.New().String()
	logger := c.Logger.With(logging.String("run_id", runID))
	in, err := readInputs(cmd, c, f, files)
	if err != nil {
		return err
	}
	addr := c.Config.Metrics.Addr
	if f.metricsAddr != "" {
		addr = f.metricsAddr
	}
	var prom *metrics.Prometheus
	if addr != "" || f.metricsFile != "" {
		prom = metrics.NewPrometheus("gospg", addr != "")
		in.opts = append(in.opts, spg.WithMetrics(prom))
	}
	if addr != "" {
		stop, err := serveMetrics(addr, prom.Handler(), logger)
		if err != nil {
			return err
		}
		defer stop()
	}
	in.opts = append(in.opts, spg.WithLogger(logger))
	logger.Info("starting", logging.Int("structures", len(in.structures)))
	start := time.Now()
	results, err := spg.FindSpaceGroups(cmd.Context(), in.structures, in.opts...)
	if err != nil {
		return err
	}
	logger.Info("done", logging.Duration("elapsed", time.Since(start)))
	if f.metricsFile != "" {
		if err := prometheus.WriteToTextfile(f.metricsFile, prom.Registry()); err != nil {
			return err
		}
	}
	if f.json || f.stdin {
		if jerr := spgjson.SendBatch(results, in.species, cmd.OutOrStdout()); jerr != nil {
			return jerr
		}
	} else {
		writeTable(cmd.OutOrStdout(), results)
	}
	if f.summary {
		times := make([]time.Duration, len(results))
		numbers := make([]int, len(results))
		for i, r := range results {
			times[i] = r.Duration
			if r.Result != nil {
				numbers[i] = r.Result.Number
			}
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "run %s\n%s", runID, stats.Summarize(times, numbers))
	}
	return batchError(results)
}

//writeTable prints one line per structure.
func writeTable(out io.Writer, results []spg.BatchResult) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tNUMBER\tHM\tHALL\tPOINT GROUP\tCELL")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\t-\t-\t-\t-\t%s\n", r.Name, strings.ReplaceAll(r.Err.Error(), "\t", " "))
			continue
		}
		R := r.Result
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\t%s\n", r.Name, R.Number, R.HMSymbol, R.HallNumber, R.PointGroup.Symbol, R.Parameters)
	}
	w.Flush()
}

//batchError returns the first error of the batch, so the exit status
//tells whether every structure got a space group.
func batchError(results []spg.BatchResult) error {
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("%s: %w", r.Name, r.Err)
		}
	}
	return nil
}
