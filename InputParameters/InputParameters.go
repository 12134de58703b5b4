package InputParameters

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gobdf/bdf/cards"
	"github.com/notargets/gobdf/bdf/convert"
	"github.com/notargets/gobdf/bdf/field"
	"github.com/notargets/gobdf/bdf/writer"
)

// Parameters obtained from the YAML input file
type WriteParameters struct {
	Title        string             `json:"Title"`
	FieldSize    string             `json:"FieldSize"` // small or large
	Precision    string             `json:"Precision"` // single or double
	Interspersed bool               `json:"Interspersed"`
	EndData      *bool              `json:"EndData"`  // unset writes ENDDATA when the input had it
	Encoding     string             `json:"Encoding"` // IANA name, overrides the model's
	Material     MaterialParameters `json:"Material"`
	Thickness    float64            `json:"Thickness"`
	Area         float64            `json:"Area"`
}

// MaterialParameters is the MAT1 given to imported meshes
type MaterialParameters struct {
	MID int     `json:"MID"`
	E   float64 `json:"E"`
	NU  float64 `json:"NU"`
	RHO float64 `json:"RHO"`
}

// NewWriteParameters returns the defaults a parameter file overrides
func NewWriteParameters() *WriteParameters {
	co := convert.DefaultOptions()
	return &WriteParameters{
		FieldSize:    "small",
		Precision:    "single",
		Interspersed: true,
		Material: MaterialParameters{
			MID: co.Material.MID, E: co.Material.E, NU: co.Material.NU, RHO: co.Material.RHO,
		},
		Thickness: co.Thickness,
		Area:      co.Area,
	}
}

func (ip *WriteParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func ReadFile(path string) (*WriteParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ip := NewWriteParameters()
	if err := ip.Parse(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ip, nil
}

// WriterOptions turns the field format names into writer options
func (ip *WriteParameters) WriterOptions() (writer.Options, error) {
	opts := writer.Options{Interspersed: ip.Interspersed, EndData: ip.EndData}
	switch strings.ToLower(ip.FieldSize) {
	case "", "small", "8":
		opts.Size = field.Small
	case "large", "16":
		opts.Size = field.Large
	default:
		return opts, fmt.Errorf("unknown field size %q", ip.FieldSize)
	}
	switch strings.ToLower(ip.Precision) {
	case "", "single":
		opts.Precision = field.Single
	case "double":
		opts.Precision = field.Double
	default:
		return opts, fmt.Errorf("unknown precision %q", ip.Precision)
	}
	return opts, nil
}

func (ip *WriteParameters) ConvertOptions() convert.Options {
	return convert.Options{
		Material: cards.MAT1{
			MID: ip.Material.MID, E: ip.Material.E, NU: ip.Material.NU, RHO: ip.Material.RHO,
		},
		Thickness: ip.Thickness,
		Area:      ip.Area,
	}
}

func (ip *WriteParameters) Print() {
	ip.Fprint(os.Stdout)
}

func (ip *WriteParameters) Fprint(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t\t= Field Size\n", ip.FieldSize)
	fmt.Fprintf(w, "[%s]\t\t= Precision\n", ip.Precision)
	fmt.Fprintf(w, "[%t]\t\t\t= Interspersed\n", ip.Interspersed)
	if ip.EndData != nil {
		fmt.Fprintf(w, "[%t]\t\t\t= EndData\n", *ip.EndData)
	}
	if ip.Encoding != "" {
		fmt.Fprintf(w, "[%s]\t\t= Encoding\n", ip.Encoding)
	}
	fmt.Fprintf(w, "MAT1[%d] E=%g NU=%g RHO=%g\n", ip.Material.MID, ip.Material.E, ip.Material.NU, ip.Material.RHO)
	fmt.Fprintf(w, "%8.5f\t\t= Thickness\n", ip.Thickness)
	fmt.Fprintf(w, "%8.5f\t\t= Area\n", ip.Area)
}
