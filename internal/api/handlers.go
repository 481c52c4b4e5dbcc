package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zaslon/internal/norm"
	"zaslon/internal/pg"
	"zaslon/internal/reference"
	"zaslon/internal/xmltree"
)

// NormalizeHandler принимает XML-выгрузку реле в теле запроса и возвращает
// нормализованные таблицы + диагностику. Таблицы в JSON — списки строк
// (имя колонки -> значение), порядок таблиц = порядок загрузки.
func NormalizeHandler(syn *reference.Synonyms) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := xmltree.Parse(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "XML parse error", "details": err.Error()})
			return
		}

		res, err := norm.Normalize(doc, syn)
		if err != nil {
			// единственный фатальный случай — нет списка реле
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Normalize error", "details": err.Error()})
			return
		}

		tables := make(map[string]any, len(res.Tables))
		for _, t := range res.Tables {
			rows := t.Rows
			if rows == nil {
				rows = []norm.Row{}
			}
			tables[t.Name] = rows
		}

		c.JSON(http.StatusOK, gin.H{
			"run_id": res.RunID,
			"tables": tables,
			"diags":  res.Diags.Items,
		})
	}
}

// ===== META =====

type metaColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
	PK   bool   `json:"pk,omitempty"`
}

type metaTable struct {
	Name    string       `json:"name"`
	Columns []metaColumn `json:"columns"`
}

func specToMeta(spec *pg.TableSpec) metaTable {
	out := metaTable{Name: spec.Name}
	for _, c := range spec.Cols {
		out.Columns = append(out.Columns, metaColumn{
			Name: c.Name,
			Type: c.Type,
			PK:   c.Name == spec.PK,
		})
	}
	return out
}

// MetaListHandler — список всех таблиц набора с колонками.
func MetaListHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		out := make([]metaTable, 0, len(pg.Specs))
		for i := range pg.Specs {
			out = append(out, specToMeta(&pg.Specs[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

// MetaTableHandler — описание одной таблицы по имени.
func MetaTableHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		spec := pg.SpecByName(c.Param("table"))
		if spec == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		}
		c.JSON(http.StatusOK, specToMeta(spec))
	}
}
