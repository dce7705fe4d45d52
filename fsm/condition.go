package fsm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
)

var ErrEmptyCondition = errors.New("fsm: empty condition")

const conditionResult = "__result"

// Condition is a compiled boolean tengo expression over named flags, used for
// data-defined transitions such as "forward && !grabbed".
type Condition struct {
	expr     string
	vars     []string
	compiled *tengo.Compiled
}

// CompileCondition compiles expr with the given flag names in scope.
func CompileCondition(expr string, vars ...string) (*Condition, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, ErrEmptyCondition
	}
	script := tengo.NewScript([]byte(conditionResult + " := (" + expr + ")"))
	for _, name := range vars {
		if err := script.Add(name, false); err != nil {
			return nil, fmt.Errorf("fsm: condition %q: add %s: %w", expr, name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("fsm: condition %q: %w", expr, err)
	}
	return &Condition{
		expr:     expr,
		vars:     append([]string(nil), vars...),
		compiled: compiled,
	}, nil
}

func (c *Condition) String() string {
	return c.expr
}

// Eval runs the expression with flags bound; names missing from flags are false.
func (c *Condition) Eval(flags map[string]bool) (bool, error) {
	for _, name := range c.vars {
		if err := c.compiled.Set(name, flags[name]); err != nil {
			return false, fmt.Errorf("fsm: condition %q: set %s: %w", c.expr, name, err)
		}
	}
	if err := c.compiled.Run(); err != nil {
		return false, fmt.Errorf("fsm: condition %q: %w", c.expr, err)
	}
	return c.compiled.Get(conditionResult).Bool(), nil
}
