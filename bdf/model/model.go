// Package model holds a bulk data deck in memory: one sorted family per card
// kind, keyed the way the deck identifies them, plus the executive and case
// control text that precede the bulk data.
package model

import (
	"errors"
	"fmt"

	"github.com/notargets/gobdf/bdf/cards"
)

var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrUnknownCard = errors.New("card kind is not held by the model")
)

// MaterialDependenceOrder is the order the stress and temperature dependent
// material families are written in.
var MaterialDependenceOrder = []string{
	"MATS1", "MATS3", "MATS8",
	"MATT1", "MATT2", "MATT3", "MATT4", "MATT5", "MATT8", "MATT9",
}

// Executive is the executive control deck as read. SolLine is the one-based
// index of the SOL line in Lines, 0 when there is none.
type Executive struct {
	Lines     []string
	SolLine   int
	Sol       int
	SolMethod string // e.g. NLSTATIC for SOL 600
}

// CaseControl is the structured case control deck
type CaseControl interface {
	String() string
}

type Model struct {
	// provenance, set by the reader
	SourceFormat string // solver flavor, e.g. msc; enables the provenance header
	Encoding     string
	Punch        bool
	EndData      bool // ENDDATA seen in the input
	LongIDs      bool // ids too wide for small field cards

	Executive   Executive
	CaseControl CaseControl

	Params SortedMap[string, *cards.PARAM]

	SPoints *cards.SPOINTS
	GridSet *cards.GRDSET
	Nodes   SortedMap[int, *cards.GRID]

	Elements      SortedMap[int, cards.Element]
	Properties    SortedMap[int, cards.Card]
	PELAST        SortedMap[int, *cards.PELAST]
	PDAMPT        SortedMap[int, *cards.PDAMPT]
	PBUSHT        SortedMap[int, *cards.PBUSHT]
	RigidElements SortedMap[int, cards.Card]

	Materials        SortedMap[int, cards.Card]
	Hyperelastic     SortedMap[int, *cards.MATHP]
	Creep            SortedMap[int, *cards.CREEP]
	MatDeps          map[string]*SortedMap[int, cards.Card]
	ThermalMaterials SortedMap[int, cards.Card]

	PropertiesMass SortedMap[int, cards.Card]
	Masses         SortedMap[int, cards.Card]

	DMIG  SortedMap[string, *cards.DMIG]
	DMI   SortedMap[string, *cards.DMI]
	DMIJ  SortedMap[string, *cards.DMIG]
	DMIJI SortedMap[string, *cards.DMIG]
	DMIK  SortedMap[string, *cards.DMIG]

	Loads        SortedMap[int, []cards.Card]
	DLoads       SortedMap[int, []cards.Card]
	DLoadEntries SortedMap[int, []cards.Card]

	Methods     SortedMap[int, *cards.EIGRL]
	CMethods    SortedMap[int, *cards.EIGC]
	DAreas      SortedMap[int, *cards.DAREA]
	NLParms     SortedMap[int, *cards.NLPARM]
	NLPCIs      SortedMap[int, *cards.NLPCI]
	TSteps      SortedMap[int, *cards.TSTEP]
	TStepNLs    SortedMap[int, *cards.TSTEPNL]
	Frequencies SortedMap[int, []*cards.FREQ1]

	CAeros  SortedMap[int, *cards.CAERO1]
	PAeros  SortedMap[int, *cards.PAERO1]
	Splines SortedMap[int, *cards.SPLINE1]
	Trims   SortedMap[int, *cards.TRIM]
	Aero    *cards.AERO
	Aeros   *cards.AEROS
	Gusts   SortedMap[int, *cards.GUST]

	AELinks  SortedMap[int, []*cards.AELINK]
	AEParams SortedMap[int, *cards.AEPARM]
	AEStats  SortedMap[int, *cards.AESTAT]
	AELists  SortedMap[int, *cards.AELIST]
	AESurfs  SortedMap[int, *cards.AESURF]
	AEFacts  SortedMap[int, *cards.AEFACT]

	FLFacts  SortedMap[int, *cards.FLFACT]
	Flutters SortedMap[int, *cards.FLUTTER]
	MKAeros  []*cards.MKAERO1

	PHBDYs SortedMap[int, *cards.PHBDY]
	PConvs SortedMap[int, *cards.PCONV]
	BCs    SortedMap[int, []*cards.CONV]

	Suports []*cards.SUPORT
	Suport1 SortedMap[int, *cards.SUPORT1]
	SPCAdds SortedMap[int, *cards.SetUnion]
	SPCs    SortedMap[int, []cards.Card]
	MPCAdds SortedMap[int, *cards.SetUnion]
	MPCs    SortedMap[int, []*cards.MPC]

	DConstrs   SortedMap[int, *cards.DCONSTR]
	DesVars    SortedMap[int, *cards.DESVAR]
	DDVals     SortedMap[int, *cards.DDVAL]
	DLinks     SortedMap[int, *cards.DLINK]
	DResponses SortedMap[int, *cards.DRESP1]
	DVMRels    SortedMap[int, *cards.Relation]
	DVPRels    SortedMap[int, *cards.Relation]
	DEquations SortedMap[int, *cards.DEQATN]
	DOptPrm    *cards.DOPTPRM

	Tables       SortedMap[int, *cards.Table]
	TablesD      SortedMap[int, *cards.Table] // TABDMP1
	RandomTables SortedMap[int, *cards.Table]

	Sets    SortedMap[int, *cards.SET1]
	DOFSets []*cards.DOFSet
	USets   SortedMap[string, []*cards.USET1]

	// superelement boundary sets are written in the order they were added
	SEBSets []*cards.DOFSet
	SECSets []*cards.DOFSet
	SEQSets []*cards.DOFSet
	SESets  SortedMap[int, *cards.SESET]
	SEUSets SortedMap[string, []*cards.SEUSET1]
	SESups  []*cards.SESUP

	BCRParas SortedMap[int, *cards.BCRPARA]
	BCTAdds  SortedMap[int, *cards.SetUnion]
	BCTParas SortedMap[int, *cards.BCTPARA]
	BCTSets  SortedMap[int, *cards.BCTSET]
	BSurf    SortedMap[int, *cards.BSURF]
	BSurfS   SortedMap[int, *cards.BSURFS]

	Coords SortedMap[int, *cards.Coord2]

	RejectCards []*cards.Reject
	RejectLines [][]string
}

// New returns an empty model holding the implicit global coordinate system 0
func New() *Model {
	m := &Model{MatDeps: make(map[string]*SortedMap[int, cards.Card])}
	m.Coords.Set(0, &cards.Coord2{
		Name: "CORD2R",
		B:    [3]float64{0, 0, 1},
		C:    [3]float64{1, 0, 0},
	})
	return m
}

func insert[K int | string, V any](s *SortedMap[K, V], k K, v V, kind string) error {
	if s.Has(k) {
		return fmt.Errorf("%w: %s %v", ErrDuplicateID, kind, k)
	}
	s.Set(k, v)
	return nil
}

func appendTo[K int | string, V any](s *SortedMap[K, []V], k K, v V) {
	s.Update(k, func(old []V, _ bool) []V { return append(old, v) })
}

// Add files c under the family that holds its kind. Ids must be unique within
// a family; load-like families collect every card sharing a set id.
func (m *Model) Add(c cards.Card) error {
	if m.MatDeps == nil {
		m.MatDeps = make(map[string]*SortedMap[int, cards.Card])
	}
	if ch, ok := c.(cards.Checker); ok {
		if err := ch.Check(); err != nil {
			return err
		}
	}
	kind := c.Type()
	switch c := c.(type) {
	case *cards.PARAM:
		return insert(&m.Params, c.Name, c, kind)
	case *cards.SPOINTS:
		if m.SPoints == nil {
			m.SPoints = &cards.SPOINTS{}
		}
		m.SPoints.Add(c.IDs...)
	case *cards.GRDSET:
		if m.GridSet != nil {
			return fmt.Errorf("%w: GRDSET", ErrDuplicateID)
		}
		m.GridSet = c
	case *cards.GRID:
		return insert(&m.Nodes, c.NID, c, kind)

	case *cards.RBE2:
		return insert(&m.RigidElements, c.EID, cards.Card(c), kind)
	case *cards.CONM2:
		return insert(&m.Masses, c.EID, cards.Card(c), kind)
	case cards.Element:
		return insert(&m.Elements, c.ID(), c, kind)

	case *cards.PROD, *cards.PBAR, *cards.PSHELL, *cards.PSOLID, *cards.PELAS, *cards.PBUSH:
		return insert(&m.Properties, c.ID(), c, kind)
	case *cards.PELAST:
		return insert(&m.PELAST, c.PID, c, kind)
	case *cards.PDAMPT:
		return insert(&m.PDAMPT, c.PID, c, kind)
	case *cards.PBUSHT:
		return insert(&m.PBUSHT, c.PID, c, kind)
	case *cards.PMASS:
		return insert(&m.PropertiesMass, c.PID, cards.Card(c), kind)

	case *cards.MAT1, *cards.MAT8:
		return insert(&m.Materials, c.ID(), c, kind)
	case *cards.MAT4, *cards.MAT5:
		return insert(&m.ThermalMaterials, c.ID(), c, kind)
	case *cards.MATHP:
		return insert(&m.Hyperelastic, c.MID, c, kind)
	case *cards.CREEP:
		return insert(&m.Creep, c.MID, c, kind)
	case *cards.MATS1, *cards.MaterialTable:
		deps, ok := m.MatDeps[kind]
		if !ok {
			deps = &SortedMap[int, cards.Card]{}
			m.MatDeps[kind] = deps
		}
		return insert(deps, c.ID(), c, kind)

	case *cards.DMIG:
		switch c.Kind {
		case "DMIG":
			return insert(&m.DMIG, c.Name, c, kind)
		case "DMIJ":
			return insert(&m.DMIJ, c.Name, c, kind)
		case "DMIJI":
			return insert(&m.DMIJI, c.Name, c, kind)
		case "DMIK":
			return insert(&m.DMIK, c.Name, c, kind)
		}
		return fmt.Errorf("%w: %s", ErrUnknownCard, kind)
	case *cards.DMI:
		return insert(&m.DMI, c.Name, c, kind)

	case *cards.PointLoad, *cards.GRAV, *cards.PLOAD2:
		appendTo(&m.Loads, c.ID(), c)
	case *cards.Combination:
		if c.Name == "DLOAD" {
			appendTo(&m.DLoads, c.SID, cards.Card(c))
		} else {
			appendTo(&m.Loads, c.SID, cards.Card(c))
		}
	case *cards.TLOAD1, *cards.RLOAD1:
		appendTo(&m.DLoadEntries, c.ID(), c)

	case *cards.EIGRL:
		return insert(&m.Methods, c.SID, c, kind)
	case *cards.EIGC:
		return insert(&m.CMethods, c.SID, c, kind)
	case *cards.DAREA:
		return insert(&m.DAreas, c.SID, c, kind)
	case *cards.NLPARM:
		return insert(&m.NLParms, c.SetID, c, kind)
	case *cards.NLPCI:
		return insert(&m.NLPCIs, c.SetID, c, kind)
	case *cards.TSTEP:
		return insert(&m.TSteps, c.SID, c, kind)
	case *cards.TSTEPNL:
		return insert(&m.TStepNLs, c.SID, c, kind)
	case *cards.FREQ1:
		appendTo(&m.Frequencies, c.SID, c)

	case *cards.CAERO1:
		return insert(&m.CAeros, c.EID, c, kind)
	case *cards.PAERO1:
		return insert(&m.PAeros, c.PID, c, kind)
	case *cards.SPLINE1:
		return insert(&m.Splines, c.EID, c, kind)
	case *cards.TRIM:
		return insert(&m.Trims, c.SID, c, kind)
	case *cards.AERO:
		if m.Aero != nil {
			return fmt.Errorf("%w: AERO", ErrDuplicateID)
		}
		m.Aero = c
	case *cards.AEROS:
		if m.Aeros != nil {
			return fmt.Errorf("%w: AEROS", ErrDuplicateID)
		}
		m.Aeros = c
	case *cards.GUST:
		return insert(&m.Gusts, c.SID, c, kind)

	case *cards.AELINK:
		appendTo(&m.AELinks, c.SetID, c)
	case *cards.AEPARM:
		return insert(&m.AEParams, c.SetID, c, kind)
	case *cards.AESTAT:
		return insert(&m.AEStats, c.SetID, c, kind)
	case *cards.AELIST:
		return insert(&m.AELists, c.SID, c, kind)
	case *cards.AESURF:
		return insert(&m.AESurfs, c.SetID, c, kind)
	case *cards.AEFACT:
		return insert(&m.AEFacts, c.SID, c, kind)

	case *cards.FLFACT:
		return insert(&m.FLFacts, c.SID, c, kind)
	case *cards.FLUTTER:
		return insert(&m.Flutters, c.SID, c, kind)
	case *cards.MKAERO1:
		m.MKAeros = append(m.MKAeros, c)

	case *cards.PHBDY:
		return insert(&m.PHBDYs, c.PID, c, kind)
	case *cards.PCONV:
		return insert(&m.PConvs, c.PCONID, c, kind)
	case *cards.CONV:
		appendTo(&m.BCs, c.EID, c)

	case *cards.SUPORT:
		m.Suports = append(m.Suports, c)
	case *cards.SUPORT1:
		return insert(&m.Suport1, c.SID, c, kind)
	case *cards.SPC, *cards.SPC1:
		appendTo(&m.SPCs, c.ID(), c)
	case *cards.MPC:
		appendTo(&m.MPCs, c.SID, c)
	case *cards.SetUnion:
		switch c.Name {
		case "SPCADD":
			return insert(&m.SPCAdds, c.SID, c, kind)
		case "MPCADD":
			return insert(&m.MPCAdds, c.SID, c, kind)
		case "BCTADD":
			return insert(&m.BCTAdds, c.SID, c, kind)
		}
		return fmt.Errorf("%w: %s", ErrUnknownCard, kind)

	case *cards.BCRPARA:
		return insert(&m.BCRParas, c.CRID, c, kind)
	case *cards.BCTPARA:
		return insert(&m.BCTParas, c.CSID, c, kind)
	case *cards.BCTSET:
		return insert(&m.BCTSets, c.CSID, c, kind)
	case *cards.BSURF:
		return insert(&m.BSurf, c.SID, c, kind)
	case *cards.BSURFS:
		return insert(&m.BSurfS, c.SID, c, kind)

	case *cards.DCONSTR:
		return insert(&m.DConstrs, c.DCID, c, kind)
	case *cards.DESVAR:
		return insert(&m.DesVars, c.SetID, c, kind)
	case *cards.DDVAL:
		return insert(&m.DDVals, c.SetID, c, kind)
	case *cards.DLINK:
		return insert(&m.DLinks, c.SetID, c, kind)
	case *cards.DRESP1:
		return insert(&m.DResponses, c.SetID, c, kind)
	case *cards.Relation:
		if c.Name == "DVMREL1" {
			return insert(&m.DVMRels, c.SetID, c, kind)
		}
		return insert(&m.DVPRels, c.SetID, c, kind)
	case *cards.DEQATN:
		return insert(&m.DEquations, c.EQID, c, kind)
	case *cards.DOPTPRM:
		if m.DOptPrm != nil {
			return fmt.Errorf("%w: DOPTPRM", ErrDuplicateID)
		}
		m.DOptPrm = c

	case *cards.Table:
		switch c.Name {
		case "TABDMP1":
			return insert(&m.TablesD, c.TID, c, kind)
		case "TABRND1":
			return insert(&m.RandomTables, c.TID, c, kind)
		}
		return insert(&m.Tables, c.TID, c, kind)

	case *cards.SET1:
		return insert(&m.Sets, c.SID, c, kind)
	case *cards.DOFSet:
		switch c.Name {
		case "SEBSET1":
			m.SEBSets = append(m.SEBSets, c)
		case "SECSET1":
			m.SECSets = append(m.SECSets, c)
		case "SEQSET1":
			m.SEQSets = append(m.SEQSets, c)
		default:
			m.DOFSets = append(m.DOFSets, c)
		}
	case *cards.USET1:
		appendTo(&m.USets, c.Set, c)
	case *cards.SESET:
		return insert(&m.SESets, c.SEID, c, kind)
	case *cards.SEUSET1:
		appendTo(&m.SEUSets, c.Set, c)
	case *cards.SESUP:
		m.SESups = append(m.SESups, c)

	case *cards.Coord2:
		return insert(&m.Coords, c.CID, c, kind)

	case *cards.Reject:
		m.RejectCards = append(m.RejectCards, c)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCard, kind)
	}
	return nil
}

// AddRejectLines keeps a group of raw lines the reader did not interpret
func (m *Model) AddRejectLines(lines []string) {
	m.RejectLines = append(m.RejectLines, lines)
}
