/*
 * root.go, part of gospg
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

//Package cli implements the gospg command line tool.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	spg "github.com/rmera/gospg"
	"github.com/rmera/gospg/internal/config"
	"github.com/rmera/gospg/logging"
	"github.com/rmera/gospg/structio"
)

//Version is set at build time through ldflags.
var Version = "dev"

type cliContextKey struct{}

//cliContext carries the loaded configuration and the logger through the
//command tree.
type cliContext struct {
	Config *config.Config
	Logger logging.Logger
}

//persistent flags and the configuration keys they override
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"precision":  "symmetry.precision",
	"partial":    "symmetry.partial_occupancies",
	"overlap":    "symmetry.overlapping_types",
	"workers":    "batch.workers",
}

//NewRootCommand returns the gospg command with all its subcommands.
func NewRootCommand() *cobra.Command {
	var configPath string
	v := config.New()
	cmd := &cobra.Command{
		Use:           "gospg",
		Short:         "Space group detection for crystal structures",
		Long:          "gospg finds the space group of periodic structures read from POSCAR or JSON\nfiles (optionally gzip or zstd compressed), and the reduced, primitive and\nconventional cells that go with it.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, v, configPath)
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.Float64P("precision", "p", spg.DefaultPrecision, "tolerance for positions, in fractional coordinates, and lattice comparisons")
	pf.Bool("partial", false, "partially occupied sites match regardless of species")
	pf.Bool("overlap", false, "atoms of different species sharing a site are merged")
	pf.IntP("workers", "j", spg.DefaultWorkers, "structures processed at the same time")
	for flag, key := range flagKeys {
		//only fails for unknown flags
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}
	cmd.AddCommand(
		newSpaceGroupCmd(),
		newStandardizeCmd(),
		newReduceCmd(),
		newPrimitiveCmd(),
		newBasisCmd(),
		newHallCmd(),
	)
	return cmd
}

func persistentPreRun(cmd *cobra.Command, v *viper.Viper, configPath string) error {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading configuration %q: %w", configPath, err)
		}
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, cliContextKey{}, &cliContext{Config: cfg, Logger: logger.Named("gospg")}))
	return nil
}

//getContext returns the context set by the root command, or the defaults
//if the command runs on its own, as in tests.
func getContext(cmd *cobra.Command) *cliContext {
	if ctx := cmd.Context(); ctx != nil {
		if c, ok := ctx.Value(cliContextKey{}).(*cliContext); ok && c != nil {
			return c
		}
	}
	cfg, err := config.FromViper(config.New())
	if err != nil {
		panic(err) //the defaults are valid
	}
	return &cliContext{Config: cfg, Logger: logging.NewNopLogger()}
}

//searchOptions translates the configuration into engine options.
func (c *cliContext) searchOptions() []spg.Option {
	s := c.Config.Symmetry
	return []spg.Option{
		spg.WithPrecision(s.Precision),
		spg.WithPartialOccupancies(s.PartialOccupancies),
		spg.WithOverlappingAtomTypes(s.OverlappingTypes),
		spg.WithWorkers(c.Config.Batch.Workers),
		spg.WithLogger(c.Logger),
	}
}

//Execute runs the gospg command with the process arguments.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %s\n", err.Error())
	}
	return err
}

//readOne reads a file expected to hold one structure.
func readOne(name string) (*structio.Structure, error) {
	s, err := structio.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if len(s) != 1 {
		return nil, fmt.Errorf("%s holds %d structures, one expected", name, len(s))
	}
	return s[0], nil
}

func printJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

//exitCode maps errors to the exit status of the tool: 1 for no result,
//2 for bad input and 3 for anything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case spg.NotFound(err):
		return 1
	case errors.Is(err, spg.ErrInvalidInput), errors.Is(err, structio.ErrFormat):
		return 2
	}
	return 3
}

//ExitCode returns the exit status the tool uses for err.
func ExitCode(err error) int {
	return exitCode(err)
}
