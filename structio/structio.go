/*
 * structio.go, part of gospg
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

package structio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	spg "github.com/rmera/gospg"
)

//ErrFormat is the kind of the errors caused by malformed files.
var ErrFormat = errors.New("malformed structure file")

//Structure is a structure read from a file. The Type of each atom is the
//index of its species in Species, when the file names them.
type Structure struct {
	spg.Structure
	Species []string
}

//SpeciesOf returns the name of the species of type t, or the number t
//if the file didn't name the species.
func (S *Structure) SpeciesOf(t int) string {
	if t >= 0 && t < len(S.Species) && S.Species[t] != "" {
		return S.Species[t]
	}
	return fmt.Sprint(t)
}

//Format is a structure file format.
type Format int

const (
	UnknownFormat Format = iota
	POSCAR
	JSON
)

//compression returns the suffix of the compressed format of name, if any,
//and name without it.
func compression(name string) (string, string) {
	lower := strings.ToLower(name)
	for _, s := range []string{".gz", ".zst"} {
		if strings.HasSuffix(lower, s) {
			return s, name[:len(name)-len(s)]
		}
	}
	return "", name
}

//FormatOf guesses the format of a file from its name. Compression suffixes
//are ignored. Everything but .json files is read as POSCAR (POSCAR, CONTCAR,
//*.vasp and so on).
func FormatOf(name string) Format {
	_, name = compression(name)
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return JSON
	}
	return POSCAR
}

//zstd decoders don't implement io.ReadCloser
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//decompressor returns a reader that decompresses r according to the
//suffix of name.
func decompressor(name string, r io.Reader) (io.ReadCloser, error) {
	suffix, _ := compression(name)
	switch suffix {
	case ".gz":
		return gzip.NewReader(r)
	case ".zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	}
	return io.NopCloser(r), nil
}

//compressor returns a writer that compresses into w according to the
//suffix of name. Closing it doesn't close w.
func compressor(name string, w io.Writer) (io.WriteCloser, error) {
	suffix, _ := compression(name)
	switch suffix {
	case ".gz":
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case ".zst":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

//ReadFile reads all the structures in the file. POSCAR files hold one
//structure, JSON files any number. Files ending in .gz or .zst are
//decompressed.
func ReadFile(name string) ([]*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{message: err.Error(), filename: name, deco: []string{"ReadFile"}, kind: err, critical: true}
	}
	defer f.Close()
	r, err := decompressor(name, bufio.NewReader(f))
	if err != nil {
		return nil, Error{message: "Can't decompress: " + err.Error(), filename: name, deco: []string{"ReadFile"}, kind: ErrFormat, critical: true}
	}
	defer r.Close()
	var ret []*Structure
	switch FormatOf(name) {
	case JSON:
		ret, err = ReadJSON(r)
	default:
		var s *Structure
		s, err = ReadPOSCAR(r)
		ret = []*Structure{s}
	}
	if err != nil {
		return nil, withFile(errDecorate(err, "ReadFile"), name)
	}
	_, bare := compression(name)
	for i, s := range ret {
		if s.Name == "" {
			s.Name = filepath.Base(bare)
			if len(ret) > 1 {
				s.Name = fmt.Sprintf("%s:%d", s.Name, i)
			}
		}
	}
	return ret, nil
}

//WriteFile writes the structures to the file, in the format and
//compression given by its name. POSCAR files take only one structure.
func WriteFile(name string, structures ...*Structure) (err error) {
	format := FormatOf(name)
	if format == POSCAR && len(structures) != 1 {
		return Error{message: fmt.Sprintf("POSCAR files hold one structure, %d given", len(structures)), filename: name, deco: []string{"WriteFile"}, kind: ErrFormat, critical: true}
	}
	f, err := os.Create(name)
	if err != nil {
		return Error{message: err.Error(), filename: name, deco: []string{"WriteFile"}, kind: err, critical: true}
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(f)
	w, err := compressor(name, bw)
	if err != nil {
		return err
	}
	switch format {
	case JSON:
		err = WriteJSON(w, structures...)
	default:
		err = WritePOSCAR(w, structures[0])
	}
	if err != nil {
		return withFile(errDecorate(err, "WriteFile"), name)
	}
	if err = w.Close(); err != nil {
		return err
	}
	return bw.Flush()
}

//Error is the error type of the package.
type Error struct {
	message  string
	filename string //the file with problems, or empty string if none.
	deco     []string
	kind     error
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return "structio: " + err.message
	}
	return fmt.Sprintf("structio: file %s: %s", err.filename, err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//FileName returns the file to which the error is associated.
func (err Error) FileName() string { return err.filename }

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//Unwrap returns the kind of the error, so errors.Is works with it.
func (err Error) Unwrap() error { return err.kind }

func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.deco = err2.Decorate(caller)
		return err2
	}
	return err
}

func withFile(err error, name string) error {
	if err2, ok := err.(Error); ok && err2.filename == "" {
		err2.filename = name
		return err2
	}
	return err
}

func formatError(caller, format string, a ...interface{}) error {
	return Error{message: fmt.Sprintf(format, a...), deco: []string{caller}, kind: ErrFormat, critical: true}
}
