package agents

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	TypePlanner   = "planner"
	TypeTracker   = "tracker"
	TypeAnalyzer  = "analyzer"
	TypeMotivator = "motivator"
)

//go:embed prompts.yaml
var defaultPrompts []byte

// Persona describes who an agent is and the system prompt it runs with.
type Persona struct {
	Name         string `yaml:"name"`
	Role         string `yaml:"role"`
	Goal         string `yaml:"goal"`
	Backstory    string `yaml:"backstory"`
	SystemPrompt string `yaml:"system_prompt"`
}

// Catalogue maps agent types to their personas.
type Catalogue struct {
	Agents map[string]Persona `yaml:"agents"`
}

// DefaultCatalogue returns the personas compiled into the binary.
func DefaultCatalogue() *Catalogue {
	var cat Catalogue
	if err := yaml.Unmarshal(defaultPrompts, &cat); err != nil {
		panic(fmt.Sprintf("agents: embedded prompts.yaml is invalid: %v", err))
	}
	return &cat
}

// LoadCatalogue returns the default personas with any fields set in the
// YAML file at path layered on top. An empty path yields the defaults.
func LoadCatalogue(path string) (*Catalogue, error) {
	cat := DefaultCatalogue()
	if path == "" {
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	var override Catalogue
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse prompts file %s: %w", path, err)
	}

	for agentType, p := range override.Agents {
		base := cat.Agents[agentType]
		if p.Name != "" {
			base.Name = p.Name
		}
		if p.Role != "" {
			base.Role = p.Role
		}
		if p.Goal != "" {
			base.Goal = p.Goal
		}
		if p.Backstory != "" {
			base.Backstory = p.Backstory
		}
		if p.SystemPrompt != "" {
			base.SystemPrompt = p.SystemPrompt
		}
		cat.Agents[agentType] = base
	}
	return cat, nil
}

// Persona returns the persona for agentType, or a zero Persona if unknown.
func (c *Catalogue) Persona(agentType string) Persona {
	if c == nil {
		return Persona{}
	}
	return c.Agents[agentType]
}
