package writer

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/notargets/gobdf/bdf/casecontrol"
	"github.com/notargets/gobdf/bdf/model"
)

// Write serializes m to w. The configuration and the case control deck are
// checked before anything is written; any card that cannot be rendered aborts
// the write. Output already buffered is flushed on every path.
func Write(m *model.Model, w io.Writer, opts Options) (err error) {
	if w == nil {
		return ErrNoDestination
	}
	head, err := prepare(m, opts)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()

	d := &deck{w: bw, m: m, opts: opts, log: opts.logger()}
	if _, err = bw.WriteString(head); err != nil {
		return err
	}
	if err = d.writeBulk(); err != nil {
		d.log.Error("deck write aborted", "error", err)
		return err
	}
	if opts.writeEndData(m.EndData) {
		_, err = bw.WriteString("ENDDATA\n")
	}
	return err
}

// WriteFile writes m to path in the model's encoding, UTF-8 when unset. The
// file is not created when the options or the case control deck are invalid.
func WriteFile(m *model.Model, path string, opts Options) (err error) {
	if path == "" {
		return ErrNoDestination
	}
	if _, err = prepare(m, opts); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc, err := ianaindex.IANA.Encoding(cmp.Or(m.Encoding, "utf-8"))
	if err != nil {
		return fmt.Errorf("encoding %q: %w", m.Encoding, err)
	}
	if enc == nil {
		return Write(m, f, opts)
	}
	tw := transform.NewWriter(f, enc.NewEncoder())
	if err = Write(m, tw, opts); err != nil {
		return errors.Join(err, tw.Close())
	}
	return tw.Close()
}

// prepare validates the options and renders the provenance, executive and
// case control text that precedes the bulk data.
func prepare(m *model.Model, opts Options) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	if m.SourceFormat != "" {
		fmt.Fprintf(&b, "$gobdf: version=%s\n", m.SourceFormat)
		fmt.Fprintf(&b, "$gobdf: punch=%t\n", m.Punch)
		fmt.Fprintf(&b, "$gobdf: encoding=%s\n", cmp.Or(m.Encoding, "utf-8"))
	}
	b.WriteString(executiveDeck(m.Executive))
	if m.CaseControl != nil {
		cc := m.CaseControl.String()
		if !strings.Contains(cc, casecontrol.BeginBulk) {
			return "", ErrMissingBeginBulk
		}
		b.WriteString("$CASE CONTROL DECK\n")
		b.WriteString(cc)
		if !strings.HasSuffix(cc, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// executiveDeck copies the executive lines with the SOL line rewritten from
// the current solution. The model is left as is.
func executiveDeck(e model.Executive) string {
	if len(e.Lines) == 0 {
		return ""
	}
	sol := fmt.Sprintf("SOL %d", e.Sol)
	if e.Sol == 600 {
		sol = fmt.Sprintf("SOL 600,%s", e.SolMethod)
	}
	var b strings.Builder
	b.WriteString("$EXECUTIVE CONTROL DECK\n")
	for i, line := range e.Lines {
		if i+1 == e.SolLine {
			line = sol
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (d *deck) writeBulk() error {
	if err := d.writeParams(); err != nil {
		return err
	}
	if err := d.writeNodes(); err != nil {
		return err
	}
	layout := d.writeElementsProperties
	if d.opts.Interspersed {
		layout = d.writeInterspersed
	}
	for _, step := range []func() error{
		layout,
		d.writeMaterials,
		d.writeMasses,
		d.writeCommon,
	} {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
