package model

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbayes/bayesnet"
	"github.com/katalvlaran/lvbayes/factor"
)

// ErrInvalidModel wraps every decoding and construction failure.
var ErrInvalidModel = errors.New("model: invalid model")

// File is the decoded form of a model file.
type File struct {
	Variables []Variable        `yaml:"variables"`
	CPTs      []CPT             `yaml:"cpts"`
	Factors   []Factor          `yaml:"factors"`
	Evidence  map[string]string `yaml:"evidence"`
}

// Variable declares a named variable with its ordered domain.
type Variable struct {
	Name   string   `yaml:"name"`
	Domain []string `yaml:"domain"`
}

// Row is one table entry.
type Row struct {
	Values []string `yaml:"values"`
	P      float64  `yaml:"p"`
}

// CPT is a conditional probability table of Child given Parents.
type CPT struct {
	Child   string   `yaml:"child"`
	Parents []string `yaml:"parents"`
	Table   []Row    `yaml:"table"`
}

// Factor is an undirected factor over Scope.
type Factor struct {
	Scope []string `yaml:"scope"`
	Table []Row    `yaml:"table"`
}

// Decode reads one YAML document from r.
// Unknown keys, an empty document or a model without variables yield
// ErrInvalidModel.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidModel)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}
	if len(f.Variables) == 0 {
		return nil, fmt.Errorf("%w: no variables", ErrInvalidModel)
	}

	return &f, nil
}

// Load decodes the model file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Network builds the Bayesian network described by the variables and CPTs.
// When the file has no raw factors the network must be complete and
// well-formed (bayesnet.Network.Validate).
func (f *File) Network() (*bayesnet.Network, error) {
	n := bayesnet.New()
	for _, v := range f.Variables {
		if err := n.AddVariable(v.Name, v.Domain); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
		}
	}
	for _, c := range f.CPTs {
		if err := n.AddCPT(c.Parents, c.Child, rows(c.Table)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
		}
	}
	if len(f.Factors) == 0 {
		if err := n.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
		}
	}

	return n, nil
}

// Graph builds the factor graph: the network's variables and CPT factors,
// then the raw factors in file order, then the evidence.
func (f *File) Graph(opts ...factor.Option) (*factor.Graph, error) {
	n, err := f.Network()
	if err != nil {
		return nil, err
	}
	g, err := n.FactorGraph(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}
	for i, raw := range f.Factors {
		if _, err = g.AddFactor(raw.Scope, rows(raw.Table)); err != nil {
			return nil, fmt.Errorf("%w: factor %d: %w", ErrInvalidModel, i, err)
		}
	}
	if err = g.Condition(f.Evidence); err != nil {
		return nil, fmt.Errorf("%w: evidence: %w", ErrInvalidModel, err)
	}

	return g, nil
}

func rows(table []Row) []factor.Row {
	out := make([]factor.Row, len(table))
	for i, r := range table {
		out[i] = factor.Row{Values: r.Values, Weight: r.P}
	}

	return out
}
