package console

import (
	"context"
	"strings"
)

// CommandHandler handles one console command. args excludes the command
// word itself.
type CommandHandler func(ctx context.Context, args []string) error

// Command describes a console command and its aliases
type Command struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	Handle      CommandHandler
}

// registry looks commands up by name or alias
type registry struct {
	ordered []*Command
	byName  map[string]*Command
}

func newRegistry() *registry {
	return &registry{
		byName: make(map[string]*Command),
	}
}

func (r *registry) register(cmd *Command) {
	r.ordered = append(r.ordered, cmd)
	r.byName[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.byName[alias] = cmd
	}
}

// lookup splits a line into a command and its arguments
func (r *registry) lookup(line string) (*Command, []string, bool) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, nil, false
	}

	cmd, ok := r.byName[fields[0]]
	if !ok {
		return nil, fields, false
	}
	return cmd, fields[1:], true
}
