/*
 * cells.go, part of gospg
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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	spg "github.com/rmera/gospg"
	"github.com/rmera/gospg/lattice"
	"github.com/rmera/gospg/structio"
	v3 "github.com/rmera/gospg/v3"
)

//cellReport is the JSON output of the cell commands.
type cellReport struct {
	Name       string        `json:"name"`
	Cell       [3][3]float64 `json:"cell"`
	Parameters [6]float64    `json:"parameters"`
	Volume     float64       `json:"volume"`
	Atoms      int           `json:"atoms,omitempty"`
}

func newCellReport(name string, L *v3.Matrix, atoms int) (*cellReport, error) {
	U, err := v3.LatticeColumns(L)
	if err != nil {
		return nil, err
	}
	p := lattice.Params(U)
	al, be, ga := p.Degrees()
	return &cellReport{
		Name:       name,
		Cell:       [3][3]float64(U.T()),
		Parameters: [6]float64{p.A, p.B, p.C, al, be, ga},
		Volume:     lattice.Volume(U),
		Atoms:      atoms,
	}, nil
}

func (c *cellReport) print(w io.Writer) {
	fmt.Fprintf(w, "%s\n", c.Name)
	for _, r := range c.Cell {
		fmt.Fprintf(w, "  %12.6f %12.6f %12.6f\n", r[0], r[1], r[2])
	}
	p := c.Parameters
	fmt.Fprintf(w, "  a=%.5f b=%.5f c=%.5f alpha=%.3f beta=%.3f gamma=%.3f volume=%.4f\n", p[0], p[1], p[2], p[3], p[4], p[5], c.Volume)
	if c.Atoms > 0 {
		fmt.Fprintf(w, "  %d atoms\n", c.Atoms)
	}
}

//toCell returns the atoms of s in the cell L, which must be a sublattice
//or a change of basis of that of s. Atoms that become equivalent in the
//new cell are kept once.
func toCell(s *structio.Structure, L *v3.Matrix, tol v3.Tol) (*structio.Structure, error) {
	U, err := v3.LatticeColumns(s.Lattice)
	if err != nil {
		return nil, err
	}
	P, err := v3.LatticeColumns(L)
	if err != nil {
		return nil, err
	}
	T := P.Inv().Mul(U)
	ret := &structio.Structure{Structure: spg.Structure{Name: s.Name, Lattice: L}, Species: s.Species}
	for _, a := range s.Atoms {
		a.Position = T.MulVec(a.Position).Fract()
		dup := false
		for _, b := range ret.Atoms {
			if b.Type == a.Type && tol.FracEq(a.Position, b.Position) {
				dup = true
				break
			}
		}
		if !dup {
			ret.Atoms = append(ret.Atoms, a)
		}
	}
	return ret, nil
}

//cellCommand builds the commands that compute a new cell for the
//structure in a file, print it and optionally write the structure in it.
func cellCommand(use, short string, cell func(c *cliContext, s *structio.Structure) (*v3.Matrix, error)) *cobra.Command {
	var asJSON bool
	var out string
	cmd := &cobra.Command{
		Use:   use + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := getContext(cmd)
			s, err := readOne(args[0])
			if err != nil {
				return err
			}
			L, err := cell(c, s)
			if err != nil {
				return err
			}
			ns, err := toCell(s, L, v3.Tol(c.Config.Symmetry.Precision))
			if err != nil {
				return err
			}
			rep, err := newCellReport(s.Name, L, len(ns.Atoms))
			if err != nil {
				return err
			}
			if out != "" {
				if err := structio.WriteFile(out, ns); err != nil {
					return err
				}
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), rep)
			}
			rep.print(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the cell as JSON")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the structure in the new cell to this file")
	return cmd
}

func newReduceCmd() *cobra.Command {
	return cellCommand("reduce", "Print the Delaunay-reduced cell of a structure",
		func(c *cliContext, s *structio.Structure) (*v3.Matrix, error) {
			return spg.ComputeDelaunayReducedCell(s.Lattice, c.searchOptions()...)
		})
}

//leastFrequent returns the atoms of the type with fewest atoms.
func leastFrequent(atoms []spg.Atom) []spg.Atom {
	count := make(map[int]int)
	for _, a := range atoms {
		count[a.Type]++
	}
	best := -1
	for t, n := range count {
		if best < 0 || n < count[best] || (n == count[best] && t < best) {
			best = t
		}
	}
	ret := make([]spg.Atom, 0, count[best])
	for _, a := range atoms {
		if a.Type == best {
			ret = append(ret, a)
		}
	}
	return ret
}

func newPrimitiveCmd() *cobra.Command {
	return cellCommand("primitive", "Print the smallest primitive cell of a structure",
		func(c *cliContext, s *structio.Structure) (*v3.Matrix, error) {
			return spg.FindSmallestPrimitiveCell(leastFrequent(s.Atoms), s.Atoms, s.Lattice, c.searchOptions()...)
		})
}

func newStandardizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standardize FILE OUTPUT",
		Short: "Write the structure in the idealized conventional cell of its space group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := getContext(cmd)
			s, err := readOne(args[0])
			if err != nil {
				return err
			}
			res, err := spg.FindSpaceGroup(s.Lattice, s.Atoms, c.searchOptions()...)
			if err != nil {
				return err
			}
			ns := &structio.Structure{
				Structure: spg.Structure{Name: fmt.Sprintf("%s %s", s.Name, res.HMSymbol), Lattice: res.Cell, Atoms: res.Atoms},
				Species:   s.Species,
			}
			if err := structio.WriteFile(args[1], ns); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d atoms written to %s\n", s.Name, res, len(res.Atoms), args[1])
			return nil
		},
	}
}

//basisReport is the JSON output of the basis command.
type basisReport struct {
	Name      string    `json:"name"`
	Basis     [3][3]int `json:"basis"`
	Centering string    `json:"centering"`
}

func newBasisCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "basis FILE",
		Short: "Print the change of basis from the reduced primitive cell to the conventional one",
		Long: "Print the integer matrix whose columns are the conventional cell vectors\n" +
			"in the basis of the Delaunay-reduced primitive cell, and the centering.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := getContext(cmd)
			s, err := readOne(args[0])
			if err != nil {
				return err
			}
			M, err := spg.ConstructUpdatedBasis(s.Lattice, s.Atoms, c.searchOptions()...)
			if err != nil {
				return err
			}
			ce, err := spg.FindCentering(s.Lattice, s.Atoms, c.searchOptions()...)
			if err != nil {
				return err
			}
			rep := basisReport{Name: s.Name, Basis: [3][3]int(M), Centering: ce.String()}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), rep)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%s)\n", rep.Name, rep.Centering)
			for _, r := range rep.Basis {
				fmt.Fprintf(w, "  %3d %3d %3d\n", r[0], r[1], r[2])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the matrix as JSON")
	return cmd
}
