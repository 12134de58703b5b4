package writer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gobdf/bdf/cards"
	"github.com/notargets/gobdf/bdf/casecontrol"
	"github.com/notargets/gobdf/bdf/field"
	"github.com/notargets/gobdf/bdf/model"
)

const (
	grid1  = "GRID           1              0.      0.      0.\n"
	prod5  = "PROD           5       1      1.\n"
	prod7  = "PROD           7       1      1.\n"
	crod10 = "CROD          10       5       1       2\n"
	crod11 = "CROD          11       5       2       3\n"
	crod12 = "CROD          12       0       3       4\n"
)

func build(t *testing.T, cs ...cards.Card) *model.Model {
	t.Helper()
	m := model.New()
	for _, c := range cs {
		require.NoError(t, m.Add(c), "%s %d", c.Type(), c.ID())
	}
	return m
}

func write(t *testing.T, m *model.Model, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(m, &buf, opts))
	return buf.String()
}

func TestSingleNode(t *testing.T) {
	m := build(t, &cards.GRID{NID: 1})
	assert.Equal(t, "$NODES\n"+grid1, write(t, m, DefaultOptions()))
}

func TestEmptyModelWritesNothing(t *testing.T) {
	assert.Empty(t, write(t, model.New(), DefaultOptions()))
}

func rods(t *testing.T, extra ...cards.Card) *model.Model {
	return build(t, append([]cards.Card{
		&cards.CROD{EID: 12, PID: 0, G: [2]int{3, 4}},
		&cards.CROD{EID: 11, PID: 5, G: [2]int{2, 3}},
		&cards.CROD{EID: 10, PID: 5, G: [2]int{1, 2}},
		&cards.PROD{PID: 5, MID: 1, A: 1},
	}, extra...)...)
}

func TestInterspersedLayout(t *testing.T) {
	out := write(t, rods(t), DefaultOptions())
	assert.Equal(t,
		"$ELEMENTS_WITH_PROPERTIES\n"+prod5+crod10+crod11+
			"$ELEMENTS_WITH_NO_PROPERTIES (PID=0 and unanalyzed properties)\n"+crod12,
		out)
}

func TestUnassociatedProperty(t *testing.T) {
	m := rods(t, &cards.PROD{PID: 7, MID: 1, A: 1}, &cards.PELAST{PID: 3, TKID: 1})
	out := write(t, m, DefaultOptions())
	assert.Equal(t, 1, strings.Count(out, prod7))
	_, unassociated, found := strings.Cut(out, "$UNASSOCIATED_PROPERTIES\n")
	require.True(t, found)
	assert.True(t, strings.HasPrefix(unassociated, "PELAST"))
	assert.True(t, strings.HasSuffix(unassociated, prod7))

	with, _, _ := strings.Cut(out, "$ELEMENTS_WITH_NO_PROPERTIES")
	assert.NotContains(t, with, "PROD           7")
}

func TestSeparateLayout(t *testing.T) {
	opts := DefaultOptions()
	opts.Interspersed = false
	out := write(t, rods(t), opts)
	assert.Equal(t, "$ELEMENTS\n"+crod10+crod11+crod12+"$PROPERTIES\n"+prod5, out)
}

func TestDoubleInSmallFieldIsRejectedBeforeWriting(t *testing.T) {
	m := build(t, &cards.GRID{NID: 1})
	opts := Options{Size: field.Small, Precision: field.Double}

	var buf bytes.Buffer
	assert.ErrorIs(t, Write(m, &buf, opts), field.ErrInvalidConfig)
	assert.Zero(t, buf.Len())

	path := filepath.Join(t.TempDir(), "out.bdf")
	assert.ErrorIs(t, WriteFile(m, path, opts), field.ErrInvalidConfig)
	assert.NoFileExists(t, path)

	assert.ErrorIs(t, Write(m, nil, DefaultOptions()), ErrNoDestination)
	assert.ErrorIs(t, WriteFile(m, "", DefaultOptions()), ErrNoDestination)
}

func TestRejectedEquation(t *testing.T) {
	m := build(t, &cards.Reject{Fields: []any{"DEQATN", 1, "F(A)=A+1"}})
	var buf bytes.Buffer
	err := Write(m, &buf, DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrejectableEquation)
	var eq *EquationCardError
	require.True(t, errors.As(err, &eq))
	assert.Equal(t, "DEQATN", eq.Type)
	assert.Equal(t, 1, eq.ID)

	// an overflow is a plain rendering error
	m = build(t, &cards.Reject{Fields: []any{"CFAKE", 1, "NINECHARS"}})
	err = Write(m, &buf, DefaultOptions())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnrejectableEquation)
	var re *cards.RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "CFAKE", re.Type)
}

func TestRejects(t *testing.T) {
	m := build(t, &cards.Reject{Fields: []any{"CFAKE", 1, 2.5}})
	m.AddRejectLines([]string{"CUSTOM, 1, 2   ", "", "  \t"})
	m.AddRejectLines([]string{"INCLUDE 'other.bdf'"})
	assert.Equal(t,
		"$REJECTS\nCFAKE          1     2.5\n"+
			"$REJECT_LINES\nCUSTOM, 1, 2\nINCLUDE 'other.bdf'\n",
		write(t, m, DefaultOptions()))
}

func TestCoordinateSystems(t *testing.T) {
	cord := func(cid int) *cards.Coord2 {
		return &cards.Coord2{Name: "CORD2R", CID: cid, B: [3]float64{0, 0, 1}, C: [3]float64{1, 0, 0}}
	}
	line := func(cid string) string {
		return "CORD2R  " + cid + "              0.      0.      0.      0.      0.      1.\n" +
			"              1.      0.      0.\n"
	}
	m := build(t, cord(12))
	assert.Equal(t, line("      12"), write(t, m, DefaultOptions()))

	require.NoError(t, m.Add(cord(4)))
	assert.Equal(t, "$COORDS\n"+line("       4")+line("      12"), write(t, m, DefaultOptions()))
}

func TestAscendingIDs(t *testing.T) {
	m := build(t,
		&cards.GRID{NID: 30}, &cards.GRID{NID: 2}, &cards.GRID{NID: 17},
		&cards.SPC1{SID: 9, C: 123, Grids: []int{2}},
		&cards.SPC1{SID: 3, C: 123, Grids: []int{30}},
		&cards.SPC1{SID: 9, C: 456, Grids: []int{17}},
	)
	var ids []string
	for _, line := range strings.Split(write(t, m, DefaultOptions()), "\n") {
		if len(line) >= 16 && !strings.HasPrefix(line, "$") {
			ids = append(ids, strings.TrimSpace(line[:8])+" "+strings.TrimSpace(line[8:16])+" "+strings.TrimSpace(line[16:min(24, len(line))]))
		}
	}
	assert.Equal(t, []string{
		"GRID 2 ", "GRID 17 ", "GRID 30 ",
		"SPC1 3 123", "SPC1 9 123", "SPC1 9 456",
	}, ids)
}

func TestSectionOrder(t *testing.T) {
	m := build(t,
		&cards.Coord2{Name: "CORD2R", CID: 5, B: [3]float64{0, 0, 1}, C: [3]float64{1, 0, 0}},
		&cards.Coord2{Name: "CORD2R", CID: 6, B: [3]float64{0, 0, 1}, C: [3]float64{1, 0, 0}},
		&cards.SET1{SID: 1, IDs: []int{1, 2}},
		&cards.Table{Name: "TABLED1", TID: 1, X: []float64{0, 1}, Y: []float64{0, 1}},
		&cards.DESVAR{SetID: 1, Label: "T", XInit: 1},
		&cards.MPC{SID: 1, Terms: []cards.MPCTerm{{GridComponent: cards.GridComponent{G: 1, C: 1}, A: 1}}},
		&cards.SPC1{SID: 1, C: 1, Grids: []int{1}},
		&cards.SUPORT{Points: []cards.GridComponent{{G: 1, C: 12}}},
		&cards.MAT4{MID: 3, K: 1},
		&cards.PHBDY{PID: 1, AF: 1},
		&cards.FLFACT{SID: 1, Values: []float64{1}},
		&cards.AEFACT{SID: 1, Values: []float64{1}},
		&cards.AERO{RefC: 1, RhoRef: 1},
		&cards.EIGRL{SID: 1, ND: 10},
		&cards.TLOAD1{SID: 2, ExciteID: 1, TID: 1},
		&cards.GRAV{SID: 1, A: 9.8, N: [3]float64{0, 0, -1}},
		&cards.RBE2{EID: 100, GN: 1, CM: 123456, GM: []int{2}},
		&cards.CONM2{EID: 50, G: 1, Mass: 1},
		&cards.PMASS{PID: 1, Mass: 1},
		&cards.MAT1{MID: 1, E: 1e7, NU: 0.3},
		&cards.GRID{NID: 1},
		&cards.SPOINTS{IDs: []int{9}},
		&cards.PARAM{Name: "POST", Values: []any{-1}},
	)
	var headers []string
	for _, line := range strings.Split(write(t, m, DefaultOptions()), "\n") {
		if strings.HasPrefix(line, "$") {
			headers = append(headers, line)
		}
	}
	assert.Equal(t, []string{
		"$PARAMS", "$SPOINTS", "$NODES", "$MATERIALS", "$PROPERTIES_MASS", "$MASSES",
		"$RIGID ELEMENTS", "$LOADS", "$DLOADS", "$DYNAMIC", "$AERO", "$AERO CONTROL SURFACES",
		"$FLUTTER", "$THERMAL", "$THERMAL MATERIALS", "$CONSTRAINTS", "$SPCs", "$MPCs",
		"$OPTIMIZATION", "$TABLES", "$SETS", "$COORDS",
	}, headers)
}

type caseText string

func (c caseText) String() string { return string(c) }

func TestControlDecks(t *testing.T) {
	m := build(t, &cards.GRID{NID: 1})
	m.SourceFormat = "msc"
	m.Executive = model.Executive{Lines: []string{"ID WING", "SOL 101", "CEND"}, SolLine: 2, Sol: 103}
	cc := casecontrol.New()
	require.NoError(t, cc.Add(1, "METHOD", "1"))
	m.CaseControl = cc
	m.EndData = true

	assert.Equal(t,
		"$gobdf: version=msc\n$gobdf: punch=false\n$gobdf: encoding=utf-8\n"+
			"$EXECUTIVE CONTROL DECK\nID WING\nSOL 103\nCEND\n"+
			"$CASE CONTROL DECK\nSUBCASE 1\n    METHOD = 1\nBEGIN BULK\n"+
			"$NODES\n"+grid1+"ENDDATA\n",
		write(t, m, DefaultOptions()))
	assert.Equal(t, "SOL 101", m.Executive.Lines[1], "the model is not changed")

	off := false
	opts := DefaultOptions()
	opts.EndData = &off
	assert.NotContains(t, write(t, m, opts), "ENDDATA")

	m.Executive.Sol, m.Executive.SolMethod = 600, "NLSTATIC"
	assert.Contains(t, write(t, m, opts), "\nSOL 600,NLSTATIC\n")

	m.CaseControl = caseText("TITLE = NO BULK\n")
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(m, &buf, opts), ErrMissingBeginBulk)
	assert.Zero(t, buf.Len())
}

func TestLongIDs(t *testing.T) {
	m := build(t, &cards.GRID{NID: 123456789}, &cards.MAT1{MID: 1, E: 1, NU: 0.3})
	var buf bytes.Buffer
	err := Write(m, &buf, DefaultOptions())
	var re *cards.RenderError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 123456789, re.ID)

	m.LongIDs = true
	out := write(t, m, DefaultOptions())
	assert.Contains(t, out, "GRID*          123456789")
	assert.Contains(t, out, "\nMAT1           1")
}

func TestWriteFileEncoding(t *testing.T) {
	m := build(t, &cards.GRID{NID: 1})
	m.AddRejectLines([]string{"$ café"})
	m.Encoding = "ISO-8859-1"
	path := filepath.Join(t.TempDir(), "latin1.bdf")
	require.NoError(t, WriteFile(m, path, DefaultOptions()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(raw, []byte("$ caf\xe9\n")))

	m.Encoding = "no-such-encoding"
	assert.Error(t, WriteFile(m, path, DefaultOptions()))
}

func TestMultiplePropertyAssociation(t *testing.T) {
	m := build(t, &cards.PROD{PID: 1, A: 1}, &cards.PROD{PID: 2, A: 1}, twoProperties{EID: 4, PIDs: []int{1, 2}})
	_, err := Intersperse(m)
	assert.ErrorIs(t, err, ErrMultiplePropertyAssociation)
	assert.ErrorIs(t, Write(m, &bytes.Buffer{}, DefaultOptions()), ErrMultiplePropertyAssociation)

	opts := DefaultOptions()
	opts.Interspersed = false
	assert.NoError(t, Write(m, &bytes.Buffer{}, opts))
}

type twoProperties struct {
	EID  int
	PIDs []int
}

func (e twoProperties) Type() string       { return "CFAST" }
func (e twoProperties) ID() int            { return e.EID }
func (e twoProperties) PropertyIDs() []int { return e.PIDs }
func (e twoProperties) Write(size field.Size, prec field.Precision) (string, error) {
	return field.PrintCard(e.Type(), []any{e.EID, e.PIDs[0], e.PIDs[1]}, size, prec)
}

// records lists "NAME FIELD2" for the first line of every card, by section
func records(out string) map[string][]string {
	got := make(map[string][]string)
	section := ""
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "$"):
			section = line
		case line == "", strings.HasPrefix(line, " "), strings.HasPrefix(line, "*"), strings.HasPrefix(line, "+"):
		default:
			line += strings.Repeat(" ", 16)
			got[section] = append(got[section], strings.TrimSpace(line[:8])+" "+strings.TrimSpace(line[8:16]))
		}
	}
	return got
}

func TestMaterialSubOrder(t *testing.T) {
	m := build(t,
		&cards.MaterialTable{Name: "MATT9", MID: 1, Tables: []int{1}},
		&cards.MaterialTable{Name: "MATT1", MID: 2, Tables: []int{1}},
		&cards.MaterialTable{Name: "MATT1", MID: 1, Tables: []int{1}},
		&cards.MaterialTable{Name: "MATS8", MID: 1, Tables: []int{1}},
		&cards.MaterialTable{Name: "MATS3", MID: 1, Tables: []int{1}},
		&cards.MATS1{MID: 1, Kind: "PLASTIC", H: 1},
		&cards.CREEP{MID: 1, T0: 1, Law: 111},
		&cards.MATHP{MID: 3, A10: 1},
		&cards.MAT8{MID: 2, E1: 1, E2: 1, NU12: 0.3},
		&cards.MAT1{MID: 1, E: 1, NU: 0.3},
		&cards.MAT4{MID: 5, K: 1},
	)
	got := records(write(t, m, DefaultOptions()))
	assert.Equal(t, []string{
		"MAT1 1", "MAT8 2", "MATHP 3", "CREEP 1", "MATS1 1", "MATS3 1", "MATS8 1",
		"MATT1 1", "MATT1 2", "MATT9 1",
	}, got["$MATERIALS"])
	assert.Equal(t, []string{"MAT4 5"}, got["$THERMAL MATERIALS"])
}

func TestOptimizationSubOrder(t *testing.T) {
	m := build(t,
		&cards.DOPTPRM{Params: []cards.Param{{Name: "DESMAX", Value: 30}}},
		&cards.DEQATN{EQID: 4, Lines: []string{"F(A)=2*A"}},
		&cards.Relation{Name: "DVPREL1", SetID: 6, Entity: "PSHELL", EID: 1, Field: "T", Terms: []cards.DesignTerm{{DVID: 1, Coeff: 1}}},
		&cards.Relation{Name: "DVMREL1", SetID: 7, Entity: "MAT1", EID: 1, Field: "E", Terms: []cards.DesignTerm{{DVID: 1, Coeff: 1}}},
		&cards.DRESP1{SetID: 5, Label: "W", RType: "WEIGHT"},
		&cards.DLINK{SetID: 3, DDVID: 2, IDV: []int{1}, Coeffs: []float64{2}},
		&cards.DDVAL{SetID: 2, Values: []float64{0.1, 0.2}},
		&cards.DESVAR{SetID: 2, Label: "T2", XInit: 1, XLB: 0.1, XUB: 2},
		&cards.DESVAR{SetID: 1, Label: "T1", XInit: 1, XLB: 0.1, XUB: 2},
		&cards.DCONSTR{DCID: 9, RID: 5, LAllow: -1, UAllow: 1},
	)
	assert.Equal(t, []string{
		"DCONSTR 9", "DESVAR 1", "DESVAR 2", "DDVAL 2", "DLINK 3",
		"DRESP1 5", "DVMREL1 7", "DVPREL1 6", "DEQATN 4", "DOPTPRM DESMAX",
	}, records(write(t, m, DefaultOptions()))["$OPTIMIZATION"])
}

func TestSetsKeepHeldOrder(t *testing.T) {
	m := build(t,
		&cards.DOFSet{Name: "BSET1", C: 123, Grids: []int{3}},
		&cards.DOFSet{Name: "ASET1", C: 123, Grids: []int{1}},
		&cards.SET1{SID: 4, IDs: []int{1}},
		&cards.USET1{Set: "U2", C: 1, Grids: []int{1}},
		&cards.DOFSet{Name: "QSET1", C: 0, Grids: []int{2}},
		&cards.USET1{Set: "U1", C: 1, Grids: []int{2}},
		&cards.USET1{Set: "U2", C: 2, Grids: []int{3}},

		&cards.SESUP{Points: []cards.GridComponent{{G: 9, C: 123}}},
		&cards.SEUSET1{SEID: 1, Set: "U1", C: 1, Grids: []int{5}},
		&cards.SESET{SEID: 3, Grids: []int{7}},
		&cards.DOFSet{Name: "SEQSET1", SEID: 1, C: 0, Grids: []int{8}},
		&cards.DOFSet{Name: "SECSET1", SEID: 1, C: 1, Grids: []int{7}},
		&cards.DOFSet{Name: "SEBSET1", SEID: 2, C: 123, Grids: []int{6}},
		&cards.DOFSet{Name: "SEBSET1", SEID: 1, C: 123, Grids: []int{5}},
		&cards.DOFSet{Name: "SEBSET1", SEID: 2, C: 456, Grids: []int{6}},
	)
	got := records(write(t, m, DefaultOptions()))
	assert.Equal(t, []string{
		"SET1 4", "BSET1 123", "ASET1 123", "QSET1 0", "USET1 U1", "USET1 U2", "USET1 U2",
	}, got["$SETS"])
	assert.Equal(t, []string{
		"SEBSET1 2", "SEBSET1 1", "SEBSET1 2", "SECSET1 1", "SEQSET1 1",
		"SESET 3", "SEUSET1 1", "SESUP 9",
	}, got["$SUPERELEMENTS"])
}

func TestTableDependentProperties(t *testing.T) {
	m := rods(t,
		&cards.PROD{PID: 7, MID: 1, A: 1},
		&cards.PELAST{PID: 3, TKID: 1},
		&cards.PDAMPT{PID: 8, TBID: 2},
		&cards.PBUSHT{PID: 9, TK: [6]int{1}},
		&cards.PBUSHT{PID: 2, TB: [6]int{3}},
	)
	got := records(write(t, m, DefaultOptions()))
	assert.Equal(t, []string{"PBUSHT 2", "PBUSHT 9", "PDAMPT 8", "PELAST 3", "PROD 7"},
		got["$UNASSOCIATED_PROPERTIES"])
	assert.NotContains(t, got["$ELEMENTS_WITH_PROPERTIES"], "PBUSHT 9")

	opts := DefaultOptions()
	opts.Interspersed = false
	got = records(write(t, m, opts))
	assert.Equal(t, []string{"PROD 5", "PROD 7", "PELAST 3", "PDAMPT 8", "PBUSHT 2", "PBUSHT 9"},
		got["$PROPERTIES"])
}
