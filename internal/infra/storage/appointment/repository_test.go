package appointment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Репозиторий и миграция описывают одну и ту же таблицу независимо друг от
// друга, поэтому набор колонок сверяется с DDL напрямую.
func TestMigrationDefinesAppointmentColumns(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	schema := string(raw)
	start := strings.Index(schema, "CREATE TABLE IF NOT EXISTS appointments")
	require.NotEqual(t, -1, start, "migration must define the appointments table")

	block := schema[start:]
	if end := strings.Index(block, ");"); end != -1 {
		block = block[:end]
	}

	for _, column := range appointmentColumns {
		assert.Contains(t, block, column, "column %s is missing from the appointments DDL", column)
	}
}
