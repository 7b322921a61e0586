package dialogue

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content/dialogue.yaml
var defaultContent []byte

// yamlLine decodes either a single string (Fixed) or a list (Choice).
type yamlLine struct {
	line Line
}

func (y *yamlLine) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		y.line = Fixed(s)
	case yaml.SequenceNode:
		var lines []string
		if err := node.Decode(&lines); err != nil {
			return err
		}
		y.line = Choice(lines)
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
	return nil
}

type yamlSection struct {
	Lines *yamlLine           `yaml:"lines"`
	Keys  map[string]yamlLine `yaml:"keys"`
}

// ParseBanks decodes generic and keyed lines from YAML laid out as
// character -> context -> {lines, keys}. Memory candidates are code and
// are added with Register.
func ParseBanks(data []byte) (map[Character]Bank, error) {
	var raw map[Character]map[Context]yamlSection
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing dialogue: %w", err)
	}

	banks := make(map[Character]Bank, len(raw))
	for ch, contexts := range raw {
		bank := make(Bank, len(contexts))
		for ctxName, ys := range contexts {
			var sec Section
			if ys.Lines != nil {
				sec.Generic = ys.Lines.line
			}
			if len(ys.Keys) > 0 {
				sec.Keys = make(map[string]Line, len(ys.Keys))
				for k, l := range ys.Keys {
					sec.Keys[k] = l.line
				}
			}
			bank[ctxName] = sec
		}
		banks[ch] = bank
	}
	return banks, nil
}

// Default returns an engine loaded with the built-in lines and memory
// candidates.
func Default() *Engine {
	banks, err := ParseBanks(defaultContent)
	if err != nil {
		panic(err)
	}
	e := NewEngine(banks)
	registerMemories(e)
	return e
}
