// Package repl implements the driver loop, command parser, and line
// reader spec.md names as external collaborators to the core: it prompts,
// classifies each line as a meta-command or statement, dispatches into the
// table, and prints the resulting status or row strings.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/felipebalbi/simpledb/internal/row"
	"github.com/felipebalbi/simpledb/internal/table"
)

const prompt = "simpledb > "

// Driver runs the read-dispatch-print loop against an open table until
// ".exit" is entered or the line reader signals EOF.
type Driver struct {
	table *table.Table
	rl    *readline.Instance
	out   io.Writer
}

// New wires a Driver to t, reading lines from stdin via readline and
// writing output to out (stdout in production, a buffer in tests).
func New(t *table.Table, out io.Writer) (*Driver, error) {
	return newDriver(t, nil, out)
}

// NewWithReader is New, but lines come from in instead of stdin, so a
// Driver can be run against a scripted transcript.
func NewWithReader(t *table.Table, in io.Reader, out io.Writer) (*Driver, error) {
	return newDriver(t, io.NopCloser(in), out)
}

func newDriver(t *table.Table, in io.ReadCloser, out io.Writer) (*Driver, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
		Stdin:           in,
		Stdout:          out,
	})
	if err != nil {
		return nil, fmt.Errorf("repl: init line reader: %w", err)
	}
	return &Driver{table: t, rl: rl, out: out}, nil
}

// Close releases the line reader.
func (d *Driver) Close() error { return d.rl.Close() }

// errExit is returned internally by meta-command handling to unwind
// the loop without os.Exit, so Run can flush and close the table first.
var errExit = errors.New("repl: exit requested")

// Run executes the loop. It returns nil on a clean ".exit", or the error
// that ended the loop (e.g. line-reader EOF).
func (d *Driver) Run() error {
	for {
		line, err := d.rl.Readline()
		if err != nil {
			return err
		}
		if d.handleLine(line) {
			return nil
		}
	}
}

// handleLine classifies and dispatches a single input line, reporting
// whether ".exit" was requested.
func (d *Driver) handleLine(line string) (exit bool) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ".") {
		if err := d.handleMetaCommand(line); err != nil {
			if errors.Is(err, errExit) {
				return true
			}
			fmt.Fprintf(d.out, "Unrecognized command '%s'\n", line)
		}
		return false
	}

	d.handleStatement(line)
	return false
}

func (d *Driver) handleMetaCommand(line string) error {
	switch line {
	case ".exit":
		return errExit
	case ".constants":
		table.PrintConstants(d.out)
		return nil
	case ".btree":
		fmt.Fprintf(d.out, "Tree:\n")
		d.table.PrintTree(d.out)
		return nil
	default:
		return fmt.Errorf("unrecognized meta command")
	}
}

func (d *Driver) handleStatement(line string) {
	fields := strings.Split(line, " ")

	switch fields[0] {
	case "insert":
		d.executeInsert(line, fields)
	case "select":
		d.executeSelect()
	default:
		fmt.Fprintf(d.out, "Unrecognized keyword at start of '%s'.\n", line)
	}
}

func (d *Driver) executeInsert(line string, fields []string) {
	if len(fields) < 4 {
		fmt.Fprintf(d.out, "Syntax error. Could not parse statement.\n")
		return
	}

	id, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		fmt.Fprintf(d.out, "Syntax error. Could not parse statement.\n")
		return
	}

	username, email := fields[2], fields[3]
	if len(username) > row.MaxUsernameLen || len(email) > row.MaxEmailLen {
		fmt.Fprintf(d.out, "String is too long.\n")
		return
	}

	r := row.Row{ID: uint32(id), Username: username, Email: email}
	if err := d.table.Insert(r.ID, r); err != nil {
		if errors.Is(err, table.ErrDuplicateKey) {
			fmt.Fprintf(d.out, "Error: Duplicate key.\n")
			return
		}
		fmt.Fprintf(d.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(d.out, "Executed.\n")
}

func (d *Driver) executeSelect() {
	cursor := d.table.Start()
	for !cursor.End() {
		r, err := row.Deserialize(cursor.Value())
		if err != nil {
			fmt.Fprintf(d.out, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(d.out, "(%d, %s, %s)\n", r.ID, r.Username, r.Email)
		cursor.Advance()
	}
	fmt.Fprintf(d.out, "Executed.\n")
}
