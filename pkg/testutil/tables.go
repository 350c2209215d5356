package testutil

import (
	"strings"
	"testing"

	"github.com/arthur-debert/fileicons/pkg/icondb"
	"github.com/arthur-debert/fileicons/pkg/icontables"
)

// EmptyRecord is a record with no icons, for tables a test does not use
const EmptyRecord = `[[], [[],[],[],[],[]]]`

// NewTables decodes an inline JSON database and builds tables from it,
// failing the test on any error
func NewTables(t *testing.T, raw string) *icontables.IconTables {
	t.Helper()

	db, err := icondb.Decode(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Failed to decode test database: %v", err)
	}
	tables, err := icontables.New(db)
	if err != nil {
		t.Fatalf("Failed to build test tables: %v", err)
	}
	return tables
}
