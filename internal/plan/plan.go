// Package plan loads YAML generation plans for the datagen command.
package plan

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vanshika/recordfactory/internal/generator"
	"github.com/vanshika/recordfactory/pkg/factory"
)

// ErrEmptyPlan is returned when a plan has no content or no record entries.
var ErrEmptyPlan = errors.New("plan is empty")

// Entry asks for Count records of Kind with optional per-kind settings.
type Entry struct {
	Kind    string            `yaml:"kind"`
	Count   int               `yaml:"count"`
	Options map[string]string `yaml:"options"`
}

// Plan describes a full generation run.
//
//	seed: 42
//	workers: 4
//	records:
//	  - kind: order
//	    count: 100
//	    options:
//	      countryCode: "+234"
type Plan struct {
	Seed    int64   `yaml:"seed"`
	Workers int     `yaml:"workers"`
	Records []Entry `yaml:"records"`

	Source string `yaml:"-"`
}

// FromYAML parses and validates a raw plan definition.
func FromYAML(data string) (*Plan, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return nil, ErrEmptyPlan
	}
	var p Plan
	if err := yaml.Unmarshal([]byte(trimmed), &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan YAML: %w", err)
	}
	if len(p.Records) == 0 {
		return nil, fmt.Errorf("%w: no records listed", ErrEmptyPlan)
	}
	for i, entry := range p.Records {
		kind, err := factory.ParseKind(entry.Kind)
		if err != nil {
			return nil, fmt.Errorf("records[%d]: %w", i, err)
		}
		if entry.Count < 0 {
			return nil, fmt.Errorf("records[%d] (%s): %w", i, kind, generator.ErrInvalidCount)
		}
		p.Records[i].Kind = string(kind)
	}
	if p.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", p.Workers)
	}
	return &p, nil
}

// LoadFile loads a plan from a YAML file path.
func LoadFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}
	p, err := FromYAML(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Source = path
	return p, nil
}

// Config converts the plan into a generator configuration.
func (p *Plan) Config() generator.Config {
	reqs := make([]generator.Request, 0, len(p.Records))
	for _, entry := range p.Records {
		reqs = append(reqs, generator.Request{
			Kind:    factory.Kind(entry.Kind),
			Count:   entry.Count,
			Options: factory.Options(entry.Options),
		})
	}
	return generator.Config{
		Requests: reqs,
		Workers:  p.Workers,
		Seed:     p.Seed,
	}
}
