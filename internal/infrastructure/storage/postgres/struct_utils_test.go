package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"esteticar/internal/core/entity"
)

type sampleRow struct {
	entity.Catalog

	Document string `db:"document"`
	Email    string `db:"email"`
	Ignored  string `db:"-"`
	NoTag    string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[sampleRow]()

	// Embedded Catalog (and its BaseEntity) columns come first.
	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "code")
	assert.Contains(t, cols, "name")
	assert.Contains(t, cols, "active")
	assert.Contains(t, cols, "deletion_mark")
	assert.Contains(t, cols, "version")
	assert.Contains(t, cols, "document")
	assert.Contains(t, cols, "email")

	assert.NotContains(t, cols, "Ignored")
	assert.NotContains(t, cols, "NoTag")
}

func TestStructToMap(t *testing.T) {
	row := sampleRow{
		Catalog:  entity.NewCatalog("CLI-00001", "Maria Silva"),
		Document: "12345678901",
		Email:    "maria@example.com",
		Ignored:  "should not appear",
		NoTag:    "should not appear",
	}

	m := StructToMap(&row)

	assert.Equal(t, "CLI-00001", m["code"])
	assert.Equal(t, "Maria Silva", m["name"])
	assert.Equal(t, "12345678901", m["document"])
	assert.Equal(t, "maria@example.com", m["email"])
	assert.Equal(t, row.ID, m["id"])

	_, hasIgnored := m["Ignored"]
	assert.False(t, hasIgnored)
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("text"))
}
