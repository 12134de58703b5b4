// Package reader reads a bulk data deck into a model.Model: the executive and
// case control decks, then the bulk data in small, large or free field
// format. Cards without a typed form are kept as structured rejects so a
// write of the model gives them back.
package reader

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/notargets/gobdf/bdf/cards"
	"github.com/notargets/gobdf/bdf/casecontrol"
	"github.com/notargets/gobdf/bdf/model"
)

const provenance = "$gobdf:"

var ErrMissingBeginBulk = errors.New("CEND without BEGIN BULK")

// ParseError locates a failure in the input. Line is one-based.
type ParseError struct {
	Line int
	Card string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Card == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Card, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type Options struct {
	// Encoding is the IANA name of the file encoding, UTF-8 when empty
	Encoding string
	Logger   *slog.Logger
}

// solutions maps the named solution sequences onto their numbers
var solutions = map[string]int{
	"SESTATIC": 101, "SEMODES": 103, "SEBUCKL": 105, "NLSTATIC": 106,
	"SEDCEIG": 107, "SEDFREQ": 108, "SEDTRAN": 109, "SEMCEIG": 110,
	"SEMFREQ": 111, "SEMTRAN": 112, "NLTRAN": 129, "SEAERO": 144,
	"SEFLUTTR": 145, "SEAEROE": 146, "NLSCSH": 153,
}

func ReadFile(path string, opts Options) (*model.Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file, opts)
}

// Read parses a whole deck from r.
func Read(r io.Reader, opts Options) (*model.Model, error) {
	name := cmp.Or(opts.Encoding, "utf-8")
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", name, err)
	}
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	p := &parser{
		m:   model.New(),
		log: cmp.Or(opts.Logger, slog.Default()),
	}
	p.m.Encoding = name
	if err := p.parse(lines); err != nil {
		return nil, err
	}
	return p.m, nil
}

type parser struct {
	m        *model.Model
	log      *slog.Logger
	matrices matrices
}

func (p *parser) parse(lines []string) error {
	p.readProvenance(lines)

	bulk := 0
	if !p.m.Punch {
		cend, begin := -1, -1
		for i, line := range lines {
			upper := strings.ToUpper(strings.TrimSpace(line))
			if cend < 0 && upper == "CEND" {
				cend = i
			}
			if strings.HasPrefix(upper, casecontrol.BeginBulk) {
				begin = i
				break
			}
		}
		switch {
		case cend >= 0 && begin < 0:
			return &ParseError{Line: cend + 1, Err: ErrMissingBeginBulk}
		case begin >= 0:
			if cend >= 0 {
				if err := p.readExecutive(lines[:cend+1]); err != nil {
					return err
				}
			}
			cc, err := casecontrol.Parse(uncommented(lines[cend+1 : begin]))
			if err != nil {
				return &ParseError{Line: begin + 1, Err: err}
			}
			p.m.CaseControl = cc
			bulk = begin + 1
		}
	}
	if err := p.readBulk(lines, bulk); err != nil {
		return err
	}
	return p.buildMatrices()
}

// buildMatrices adds the matrices gathered from their header and column cards
func (p *parser) buildMatrices() error {
	for _, key := range p.matrices.order {
		mc := p.matrices.byKey[key]
		c, err := mc.build()
		if err == nil {
			err = p.m.Add(c)
		}
		if err != nil {
			return &ParseError{Line: mc.line, Card: mc.kind, Err: err}
		}
	}
	return nil
}

func uncommented(lines []string) []string {
	var out []string
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "$") {
			out = append(out, line)
		}
	}
	return out
}

// readProvenance picks up the $gobdf: lines at the top of the deck
func (p *parser) readProvenance(lines []string) {
	for _, line := range lines {
		if !strings.HasPrefix(line, "$") {
			return
		}
		rest, ok := strings.CutPrefix(line, provenance)
		if !ok {
			continue
		}
		key, value, _ := strings.Cut(strings.TrimSpace(rest), "=")
		switch strings.ToLower(key) {
		case "version":
			p.m.SourceFormat = value
		case "punch":
			p.m.Punch, _ = strconv.ParseBool(value)
		}
	}
}

func (p *parser) readExecutive(lines []string) error {
	e := &p.m.Executive
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "$") {
			continue
		}
		e.Lines = append(e.Lines, trimmed)
		upper := strings.ToUpper(trimmed)
		if !strings.HasPrefix(upper, "SOL ") {
			continue
		}
		e.SolLine = len(e.Lines)
		sol, method, _ := strings.Cut(strings.TrimSpace(upper[4:]), ",")
		n, err := strconv.Atoi(strings.TrimSpace(sol))
		if err != nil {
			var ok bool
			if n, ok = solutions[strings.TrimSpace(sol)]; !ok {
				return &ParseError{Line: i + 1, Card: "SOL", Err: fmt.Errorf("unknown solution %q", sol)}
			}
		}
		e.Sol, e.SolMethod = n, strings.TrimSpace(method)
	}
	return nil
}

// readBulk groups the lines from start on into cards and adds them to the
// model. It stops at ENDDATA.
func (p *parser) readBulk(lines []string, start int) error {
	var current *rawCard
	flush := func() error {
		if current == nil {
			return nil
		}
		rc := *current
		current = nil
		return p.addCard(rc)
	}

	for i := start; i < len(lines); i++ {
		line := lines[i]
		if c := strings.Index(line, "$"); c >= 0 {
			line = line[:c]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		upper := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case upper == "ENDDATA":
			p.m.EndData = true
			return flush()
		case strings.HasPrefix(upper, "INCLUDE"):
			if err := flush(); err != nil {
				return err
			}
			p.m.AddRejectLines([]string{line})
			continue
		}
		if isContinuation(line) {
			if current == nil {
				return &ParseError{Line: i + 1, Err: errors.New("continuation line without a card")}
			}
			current.lines = append(current.lines, line)
			continue
		}
		if err := flush(); err != nil {
			return err
		}
		current = &rawCard{line: i + 1, lines: []string{line}}
	}
	return flush()
}

func (p *parser) addCard(rc rawCard) error {
	var (
		c    cards.Card
		err  error
		long bool
	)
	// the equation text may hold commas, so it is never split into fields
	if strings.HasPrefix(strings.ToUpper(rc.lines[0]), "DEQATN") {
		rc.name = "DEQATN"
		c, err = deqatn(rc)
	} else {
		rc.name, rc.fields = fieldsOf(rc.lines)
		f := &fields{name: rc.name, raw: rc.fields}
		if isMatrix(rc.name) {
			if err := p.matrices.add(f, rc.line); err != nil {
				return &ParseError{Line: rc.line, Card: rc.name, Err: err}
			}
			p.m.LongIDs = p.m.LongIDs || f.long
			return nil
		}
		if build, ok := builders[rc.name]; ok {
			c, err, long = build(f), f.err, f.long
		} else {
			p.log.Debug("card kept as reject", "card", rc.name, "line", rc.line)
			c = &cards.Reject{Fields: append([]any{rc.name}, f.values(0)...)}
		}
	}
	if err == nil {
		err = p.m.Add(c)
	}
	if err != nil {
		return &ParseError{Line: rc.line, Card: rc.name, Err: err}
	}
	p.m.LongIDs = p.m.LongIDs || long
	return nil
}
