package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

// Load reads a use-case catalog from a YAML or JSON file and validates it.
// The file holds a list of use cases in the same shape as the built-in
// catalog.
func Load(path string) ([]core.UseCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	var useCases []core.UseCase
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &useCases)
	case ".json":
		err = json.Unmarshal(data, &useCases)
	default:
		if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
			err = json.Unmarshal(data, &useCases)
		} else {
			err = yaml.Unmarshal(data, &useCases)
		}
	}
	if err != nil {
		return nil, &core.ConfigError{Detail: fmt.Sprintf("%s: %v", path, err)}
	}

	if err := Validate(useCases); err != nil {
		return nil, err
	}
	return useCases, nil
}

// Validate checks every catalog entry upfront, before any API calls.
func Validate(useCases []core.UseCase) error {
	if len(useCases) == 0 {
		return &core.ConfigError{Detail: "no use cases defined"}
	}
	seen := map[string]bool{}
	for i, uc := range useCases {
		if strings.TrimSpace(uc.Name) == "" {
			return &core.ConfigError{Detail: fmt.Sprintf("use case %d: name is required", i)}
		}
		if seen[uc.Name] {
			return &core.ConfigError{Detail: fmt.Sprintf("use case %q: duplicate name", uc.Name)}
		}
		seen[uc.Name] = true
		if len(uc.Prompts) == 0 {
			return &core.ConfigError{Detail: fmt.Sprintf("use case %q: no test prompts", uc.Name)}
		}
		for j, spec := range uc.Prompts {
			if strings.TrimSpace(spec.Scenario) == "" {
				return &core.ConfigError{Detail: fmt.Sprintf("use case %q: prompt %d: scenario is required", uc.Name, j)}
			}
			if strings.TrimSpace(spec.Prompt) == "" {
				return &core.ConfigError{Detail: fmt.Sprintf("use case %q: prompt %d (%s): prompt text is required", uc.Name, j, spec.Scenario)}
			}
		}
	}
	return nil
}

// ByName returns the named use case from a catalog.
func ByName(useCases []core.UseCase, name string) (core.UseCase, bool) {
	for _, uc := range useCases {
		if uc.Name == name {
			return uc, true
		}
	}
	return core.UseCase{}, false
}
