package testutil

import "io"

// ScriptedPrompter answers prompts from a fixed list of inputs.
// Once the inputs run out every prompt returns io.EOF.
type ScriptedPrompter struct {
	inputs []string

	// Prompts records every label that was asked.
	Prompts []string
}

// NewScriptedPrompter creates a prompter that replies with inputs in order.
func NewScriptedPrompter(inputs ...string) *ScriptedPrompter {
	return &ScriptedPrompter{inputs: inputs}
}

// Prompt implements commands.Prompter.
func (p *ScriptedPrompter) Prompt(label string) (string, error) {
	p.Prompts = append(p.Prompts, label)
	if len(p.inputs) == 0 {
		return "", io.EOF
	}
	in := p.inputs[0]
	p.inputs = p.inputs[1:]
	return in, nil
}

// Remaining returns the number of unused inputs.
func (p *ScriptedPrompter) Remaining() int {
	return len(p.inputs)
}
