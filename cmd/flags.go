package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// choiceValue is a pflag.Value restricted to a fixed set of strings. An
// invalid value is rejected at flag-parse time, before any command logic
// runs.
type choiceValue struct {
	target  *string
	choices []string
}

func newChoiceValue(target *string, def string, choices ...string) pflag.Value {
	*target = def
	return &choiceValue{target: target, choices: choices}
}

func (c *choiceValue) String() string { return *c.target }

func (c *choiceValue) Type() string { return "string" }

func (c *choiceValue) Set(v string) error {
	for _, choice := range c.choices {
		if v == choice {
			*c.target = v
			return nil
		}
	}

	return fmt.Errorf("must be one of: %s", strings.Join(c.choices, ", "))
}
