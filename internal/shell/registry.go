// Package shell is a line-oriented command interface over the recipe
// repository.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// ErrUnknownCommand is returned by Handle for unregistered command names
var ErrUnknownCommand = errors.New("unknown command")

// Command represents a shell command
type Command interface {
	Execute(ctx context.Context, w io.Writer, args []string) error
	Help() string
}

// CommandFunc adapts a function to the Command interface
type CommandFunc struct {
	Usage string
	Run   func(ctx context.Context, w io.Writer, args []string) error
}

// Execute runs the function
func (f CommandFunc) Execute(ctx context.Context, w io.Writer, args []string) error {
	return f.Run(ctx, w, args)
}

// Help returns the usage line
func (f CommandFunc) Help() string {
	return f.Usage
}

// Registry manages all shell commands
type Registry struct {
	prefix   string
	commands map[string]Command
	order    []string
	log      *zap.Logger
}

// NewRegistry creates a new command registry
func NewRegistry(prefix string, log *zap.Logger) *Registry {
	return &Registry{
		prefix:   prefix,
		commands: make(map[string]Command),
		log:      log.Named("shell"),
	}
}

// Register registers a command with the registry
func (r *Registry) Register(name string, cmd Command) {
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = cmd
	r.log.Debug("Registered command", zap.String("name", name))
}

// Names returns the command names in registration order
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Lookup returns the command registered under name
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Handle parses a line and executes the matching command. Lines without
// the prefix and blank lines are ignored.
func (r *Registry) Handle(ctx context.Context, w io.Writer, line string) error {
	// Check if the line starts with the command prefix
	if !strings.HasPrefix(line, r.prefix) {
		return nil
	}

	parts := strings.Fields(strings.TrimPrefix(line, r.prefix))
	if len(parts) == 0 {
		return nil
	}

	cmdName := strings.ToLower(parts[0])
	args := parts[1:]

	cmd, ok := r.commands[cmdName]
	if !ok {
		return fmt.Errorf("%s: %w", cmdName, ErrUnknownCommand)
	}

	r.log.Debug("Executing command", zap.String("name", cmdName), zap.Strings("args", args))
	return cmd.Execute(ctx, w, args)
}

// Run reads commands from in until EOF, "quit" or cancellation. Command
// errors are printed and do not stop the loop.
func (r *Registry) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(strings.TrimPrefix(line, r.prefix)) {
		case "quit", "exit":
			return nil
		}

		if err := r.Handle(ctx, out, line); err != nil {
			r.log.Debug("Command failed", zap.Error(err))
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}
