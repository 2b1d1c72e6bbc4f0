package config

import (
	"fmt"
	"os"

	"github.com/san-kum/rootfind/internal/rootfind"
	"gopkg.in/yaml.v3"
)

// Batch is a named list of problems solved together.
type Batch struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Problems    []*Config `yaml:"-"`
}

type batchFile struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Problems    []yaml.Node `yaml:"problems"`
}

// LoadBatch reads a batch file. Every problem starts from DefaultConfig.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBatch(data)
}

func ParseBatch(data []byte) (*Batch, error) {
	var f batchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Problems) == 0 {
		return nil, fmt.Errorf("batch %q has no problems", f.Name)
	}

	b := &Batch{Name: f.Name, Description: f.Description}
	for i := range f.Problems {
		cfg := DefaultConfig()
		if err := f.Problems[i].Decode(cfg); err != nil {
			return nil, fmt.Errorf("problem %d: %w", i+1, err)
		}
		b.Problems = append(b.Problems, cfg)
	}
	return b, nil
}

// Requests resolves method aliases and returns one request per problem.
func (b *Batch) Requests() ([]rootfind.Request, error) {
	reqs := make([]rootfind.Request, 0, len(b.Problems))
	for i, cfg := range b.Problems {
		m, err := rootfind.ParseMethod(string(cfg.Method))
		if err != nil {
			return nil, fmt.Errorf("problem %d: %w", i+1, err)
		}
		req := cfg.ToRequest()
		req.Method = m
		reqs = append(reqs, req)
	}
	return reqs, nil
}
