package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spg "github.com/rmera/gospg"
	"github.com/rmera/gospg/spgjson"
	"github.com/rmera/gospg/structio"
	v3 "github.com/rmera/gospg/v3"
)

func cubic(a float64) *v3.Matrix {
	return v3.FromMat3(v3.Mat3{{a, 0, 0}, {0, a, 0}, {0, 0, a}})
}

//writeInputs writes a CsCl POSCAR and a JSON file with an fcc and a
//simple cubic structure.
func writeInputs(Te *testing.T) (string, string) {
	dir := Te.TempDir()
	cscl := &structio.Structure{
		Structure: spg.Structure{Name: "CsCl", Lattice: cubic(4.12), Atoms: []spg.Atom{
			{Position: v3.Vec{0, 0, 0}, Type: 0},
			{Position: v3.Vec{0.5, 0.5, 0.5}, Type: 1},
		}},
		Species: []string{"Cs", "Cl"},
	}
	fcc := &structio.Structure{
		Structure: spg.Structure{Name: "Cu", Lattice: cubic(3.61), Atoms: []spg.Atom{
			{Position: v3.Vec{0, 0, 0}}, {Position: v3.Vec{0, 0.5, 0.5}},
			{Position: v3.Vec{0.5, 0, 0.5}}, {Position: v3.Vec{0.5, 0.5, 0}},
		}},
		Species: []string{"Cu"},
	}
	sc := &structio.Structure{Structure: spg.Structure{Name: "Po", Lattice: cubic(3.35), Atoms: []spg.Atom{{}}}}
	p := filepath.Join(dir, "CsCl.vasp")
	j := filepath.Join(dir, "metals.json.gz")
	require.NoError(Te, structio.WriteFile(p, cscl))
	require.NoError(Te, structio.WriteFile(j, fcc, sc))
	return p, j
}

func run(Te *testing.T, stdin string, args ...string) (string, string, error) {
	cmd := NewRootCommand()
	var out, errout bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errout)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errout.String(), err
}

func TestSpaceGroupCmd(Te *testing.T) {
	p, j := writeInputs(Te)
	metricsFile := filepath.Join(Te.TempDir(), "gospg.prom")
	out, errout, err := run(Te, "", "spacegroup", p, j, "--summary", "--metrics-file", metricsFile, "-j", "2")
	require.NoError(Te, err, errout)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(Te, lines, 4, out)
	assert.Contains(Te, lines[1], "CsCl")
	assert.Contains(Te, lines[1], "221")
	assert.Contains(Te, lines[2], "225")
	assert.Contains(Te, lines[3], "221")
	assert.Contains(Te, errout, "3 structures, 3 space groups found")
	assert.Contains(Te, errout, "cubic")
	prom, err := os.ReadFile(metricsFile)
	require.NoError(Te, err)
	assert.Contains(Te, string(prom), `gospg_searches_total{outcome="found"} 3`)

	out, _, err = run(Te, "", "spacegroup", "--json", p)
	require.NoError(Te, err)
	var rep spgjson.Report
	require.NoError(Te, json.Unmarshal([]byte(out), &rep))
	assert.Equal(Te, 221, rep.Number)
	for _, a := range rep.Atoms {
		assert.Equal(Te, []string{"Cs", "Cl"}[a.Type], a.Species)
	}

	_, _, err = run(Te, "", "spacegroup")
	assert.Equal(Te, 2, ExitCode(err))
	_, _, err = run(Te, "", "spacegroup", filepath.Join(Te.TempDir(), "missing.vasp"))
	assert.Equal(Te, 3, ExitCode(err))
	_, _, err = run(Te, "", "spacegroup", "--precision", "-1", p)
	assert.Error(Te, err)
}

func TestSpaceGroupStdin(Te *testing.T) {
	in := `{"Structures":2}
{"Name":"bcc","Lattice":[[3.3,0,0],[0,3.3,0],[0,0,3.3]],"Atoms":[{"Position":[0,0,0],"Type":0},{"Position":[0.5,0.5,0.5],"Type":0}]}
{"Name":"empty","Lattice":[[3.3,0,0],[0,3.3,0],[0,0,3.3]],"Atoms":[]}
`
	out, _, err := run(Te, in, "spacegroup", "--stdin")
	assert.Error(Te, err)
	assert.Equal(Te, 2, ExitCode(err))
	sc := bufio.NewScanner(strings.NewReader(out))
	var reps []spgjson.Report
	for sc.Scan() {
		var r spgjson.Report
		require.NoError(Te, json.Unmarshal(sc.Bytes(), &r))
		reps = append(reps, r)
	}
	require.Len(Te, reps, 2)
	assert.Equal(Te, 229, reps[0].Number)
	assert.Equal(Te, "I", reps[0].Centering)
	require.NotNil(Te, reps[1].Err)

	_, _, err = run(Te, "{\"Structures\":1}\nnot json\n", "spacegroup", "--stdin")
	assert.ErrorIs(Te, err, structio.ErrFormat)
}

func TestCellCmds(Te *testing.T) {
	_, j := writeInputs(Te)
	dir := Te.TempDir()
	fcc := filepath.Join(dir, "Cu.vasp")
	structures, err := structio.ReadFile(j)
	require.NoError(Te, err)
	require.NoError(Te, structio.WriteFile(fcc, structures[0]))

	prim := filepath.Join(dir, "Cu-prim.json")
	out, _, err := run(Te, "", "primitive", "--json", "-o", prim, fcc)
	require.NoError(Te, err)
	var rep cellReport
	require.NoError(Te, json.Unmarshal([]byte(out), &rep))
	assert.InDelta(Te, 3.61*3.61*3.61/4, rep.Volume, 1e-6)
	assert.Equal(Te, 1, rep.Atoms)
	back, err := structio.ReadFile(prim)
	require.NoError(Te, err)
	assert.Len(Te, back[0].Atoms, 1)

	out, _, err = run(Te, "", "reduce", fcc)
	require.NoError(Te, err)
	assert.Contains(Te, out, "alpha=90.000")
	assert.Contains(Te, out, "4 atoms")

	out, _, err = run(Te, "", "basis", "--json", fcc)
	require.NoError(Te, err)
	var b basisReport
	require.NoError(Te, json.Unmarshal([]byte(out), &b))
	assert.Equal(Te, "F", b.Centering)
	assert.Equal(Te, 4, abs(v3.IMat3(b.Basis).Det()))

	//the standardized primitive cell gives back the conventional one
	conv := filepath.Join(dir, "Cu-conv.json")
	out, _, err = run(Te, "", "standardize", prim, conv)
	require.NoError(Te, err)
	assert.Contains(Te, out, "225")
	back, err = structio.ReadFile(conv)
	require.NoError(Te, err)
	assert.Len(Te, back[0].Atoms, 4)
	assert.Equal(Te, "Cu", back[0].SpeciesOf(0))
	assert.InDelta(Te, 3.61, back[0].Lattice.At(0, 0), 1e-6)

	_, _, err = run(Te, "", "reduce", j)
	assert.Error(Te, err, "two structures in the file")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestHallCmd(Te *testing.T) {
	out, _, err := run(Te, "", "hall", "489")
	require.NoError(Te, err)
	assert.Contains(Te, out, "P 2 3 (No. 195)")
	assert.Contains(Te, out, "12 operations")

	out, _, err = run(Te, "", "hall", "--json", "-n", "225")
	require.NoError(Te, err)
	var rep hallReport
	require.NoError(Te, json.Unmarshal([]byte(out), &rep))
	assert.Equal(Te, 225, rep.Number)
	assert.Equal(Te, 192, rep.Order)
	assert.Len(Te, rep.Operations, 192)
	assert.True(Te, rep.Centrosymmetric)
	assert.Equal(Te, "F", rep.Centering)

	_, _, err = run(Te, "", "hall", "531")
	assert.Equal(Te, 2, ExitCode(err))
	_, _, err = run(Te, "", "hall", "x")
	assert.Equal(Te, 2, ExitCode(err))
}

func TestConfigFile(Te *testing.T) {
	p, _ := writeInputs(Te)
	cfg := filepath.Join(Te.TempDir(), "gospg.yaml")
	require.NoError(Te, os.WriteFile(cfg, []byte("symmetry:\n  precision: 0\n"), 0o644))
	_, _, err := run(Te, "", "--config", cfg, "spacegroup", p)
	assert.Error(Te, err)
	//flags win over the file
	_, _, err = run(Te, "", "--config", cfg, "--precision", "1e-4", "spacegroup", p)
	assert.NoError(Te, err)
	_, _, err = run(Te, "", "--config", filepath.Join(Te.TempDir(), "none.yaml"), "hall", "1")
	assert.Error(Te, err)
}
