package repl

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipebalbi/simpledb/internal/table"
)

// runScript exercises handleLine directly rather than Run's readline loop,
// so these tests pin down the dispatch/formatting behavior spec §6/§8
// describe independently of the line reader's own terminal handling.
// Each line is preceded by the literal prompt, mirroring what Run() would
// have written via readline before reading that line.
func runScript(t *testing.T, lines ...string) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	tbl, err := table.Open(dbPath, 0)
	require.NoError(t, err)

	var out bytes.Buffer
	d := &Driver{table: tbl, out: &out}

	for _, line := range lines {
		out.WriteString(prompt)
		if d.handleLine(line) {
			break
		}
	}

	require.NoError(t, tbl.Close())
	return out.String()
}

func TestExitOnly(t *testing.T) {
	got := runScript(t, ".exit")
	assert.Equal(t, "simpledb > ", got)
}

func TestUnknownMetaCommand(t *testing.T) {
	got := runScript(t, ".foo", ".exit")
	assert.Equal(t, "simpledb > Unrecognized command '.foo'\nsimpledb > ", got)
}

func TestInsertThenSelect(t *testing.T) {
	got := runScript(t, "insert 1 user1 person1@example.com", "select", ".exit")
	assert.Equal(t,
		"simpledb > Executed.\nsimpledb > (1, user1, person1@example.com)\nExecuted.\nsimpledb > ",
		got)
}

func TestLongFieldRejected(t *testing.T) {
	longEmail := strings.Repeat("a", 281) + "@example.com"
	got := runScript(t, "insert 1 user1 "+longEmail, ".exit")
	assert.Contains(t, got, "String is too long.\n")
}

func TestSyntaxErrorOnMissingToken(t *testing.T) {
	got := runScript(t, "insert 1 user1", ".exit")
	assert.Contains(t, got, "Syntax error. Could not parse statement.\n")
}

func TestUnrecognizedStatement(t *testing.T) {
	got := runScript(t, "delete 1", ".exit")
	assert.Contains(t, got, "Unrecognized keyword at start of 'delete 1'.\n")
}

func TestDuplicateKeyDiagnostic(t *testing.T) {
	got := runScript(t,
		"insert 1 user1 person1@example.com",
		"insert 1 user1 person1@example.com",
		".exit")
	assert.Contains(t, got, "Error: Duplicate key.\n")
}

func TestBtreeDumpAfterSplit(t *testing.T) {
	lines := make([]string, 0, 16)
	for id := 14; id >= 1; id-- {
		lines = append(lines, "insert "+strconv.Itoa(id)+" user person@example.com")
	}
	lines = append(lines, ".btree", ".exit")

	got := runScript(t, lines...)
	assert.Contains(t, got, "Tree:\n"+
		"- internal (size 1)\n"+
		" - leaf (size 7)\n"+
		"  - 1\n"+
		"  - 2\n"+
		"  - 3\n"+
		"  - 4\n"+
		"  - 5\n"+
		"  - 6\n"+
		"  - 7\n"+
		" - key 7\n"+
		" - leaf (size 7)\n"+
		"  - 8\n"+
		"  - 9\n"+
		"  - 10\n"+
		"  - 11\n"+
		"  - 12\n"+
		"  - 13\n"+
		"  - 14\n")
}

func TestConstantsMetaCommand(t *testing.T) {
	got := runScript(t, ".constants", ".exit")
	assert.Contains(t, got, "ROW_SIZE:   293")
	assert.Contains(t, got, "LEAF_NODE_MAX_CELLS:    13")
}
