/*
 * hall.go, part of gospg
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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rmera/gospg/catalog"
)

//hallReport is the JSON output of the hall command.
type hallReport struct {
	HallNumber      int      `json:"hall_number"`
	Number          int      `json:"number"`
	HMSymbol        string   `json:"hm_symbol"`
	HallSymbol      string   `json:"hall_symbol"`
	Note            string   `json:"note,omitempty"`
	PointGroup      string   `json:"point_group"`
	Schoenflies     string   `json:"schoenflies"`
	Laue            string   `json:"laue"`
	Holohedry       string   `json:"holohedry"`
	Centering       string   `json:"centering"`
	Order           int      `json:"order"`
	Centrosymmetric bool     `json:"centrosymmetric"`
	Settings        []int    `json:"settings"`
	Operations      []string `json:"operations"`
}

func newHallReport(S catalog.SpaceGroup) (*hallReport, error) {
	settings, err := catalog.Settings(S.Number)
	if err != nil {
		return nil, err
	}
	ret := &hallReport{
		HallNumber:      S.HallNumber,
		Number:          S.Number,
		HMSymbol:        S.HMSymbol,
		HallSymbol:      S.HallSymbol,
		Note:            S.Note,
		PointGroup:      S.PointGroupSymbol(),
		Schoenflies:     S.Schoenflies(),
		Laue:            S.LaueClass().String(),
		Holohedry:       S.Holohedry().String(),
		Centering:       S.Centering.String(),
		Order:           S.Order(),
		Centrosymmetric: S.Centrosymmetric(),
		Settings:        settings,
	}
	for _, o := range S.Operations() {
		ret.Operations = append(ret.Operations, o.String())
	}
	return ret, nil
}

func newHallCmd() *cobra.Command {
	var asJSON, number bool
	cmd := &cobra.Command{
		Use:   "hall N",
		Short: "Describe the Hall setting N (1 to 530) of the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", catalog.ErrInvalidInput, args[0])
			}
			var S catalog.SpaceGroup
			if number {
				S, err = catalog.Default(n)
			} else {
				S, err = catalog.Get(n)
			}
			if err != nil {
				return err
			}
			rep, err := newHallReport(S)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), rep)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Hall %d: %s (No. %d) %s\n", rep.HallNumber, rep.HMSymbol, rep.Number, rep.HallSymbol)
			fmt.Fprintf(w, "Point group %s (%s), Laue class %s, %s, centering %s\n", rep.PointGroup, rep.Schoenflies, rep.Laue, rep.Holohedry, rep.Centering)
			fmt.Fprintf(w, "%d operations, centrosymmetric: %v, settings of No. %d: %v\n", rep.Order, rep.Centrosymmetric, rep.Number, rep.Settings)
			for i, o := range rep.Operations {
				fmt.Fprintf(w, "%4d  %s\n", i+1, o)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the setting as JSON")
	cmd.Flags().BoolVarP(&number, "number", "n", false, "N is a space group number, describe its standard setting")
	return cmd
}
