// Package plan loads the YAML manifest used by batch runs: a list of
// input files, each with an optional output path.
package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Plan struct {
	Jobs []Job `yaml:"jobs"`
}

type Job struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// OutputPath returns the job's output path, deriving one next to the input
// file when the manifest leaves it unset.
func (j Job) OutputPath() string {
	if j.Output != "" {
		return j.Output
	}
	ext := filepath.Ext(j.Input)
	return strings.TrimSuffix(j.Input, ext) + "-formatted.txt"
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Jobs) == 0 {
		return nil, fmt.Errorf("plan has no jobs")
	}
	return &p, nil
}

func (p *Plan) Print() {
	for i, job := range p.Jobs {
		fmt.Printf("[%d] input=%s output=%s\n", i+1, job.Input, job.OutputPath())
	}
}
