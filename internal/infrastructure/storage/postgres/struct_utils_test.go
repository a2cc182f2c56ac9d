package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"avtoservice/internal/core/entity"
	"avtoservice/internal/core/id"
)

type mockCatalog struct {
	entity.Catalog
	ArticleNumber string `db:"article_number" json:"articleNumber"`
	Skipped       string `db:"-" json:"-"`
	NoTag         string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expectedCols := []string{
		"id", "deletion_mark", "version", "code", "name", "article_number",
	}
	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}

	assert.NotContains(t, cols, "-")
	assert.Len(t, cols, len(expectedCols))
}

func TestStructToMap(t *testing.T) {
	cat := mockCatalog{
		Catalog: entity.Catalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
			},
			Code: "SP001",
			Name: "Спирачни накладки",
		},
		ArticleNumber: "BP-4455",
		Skipped:       "no",
		NoTag:         "no",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "SP001", m["code"])
	assert.Equal(t, "Спирачни накладки", m["name"])
	assert.Equal(t, "BP-4455", m["article_number"])
	assert.NotContains(t, m, "-")
	assert.Len(t, m, 6)
}

func TestStructToMap_Pointer(t *testing.T) {
	cat := &mockCatalog{ArticleNumber: "XX-1"}
	m := StructToMap(cat)
	assert.Equal(t, "XX-1", m["article_number"])
}
