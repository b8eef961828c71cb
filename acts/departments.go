package acts

import (
	"go.uber.org/zap"

	"github.com/nonGratis/asset-acts/sheet"
)

// Departments is the department registry, keyed by normalised code.
type Departments map[string]Department

// LoadDepartments builds the registry from the departments worksheet. Rows
// with a blank code are skipped with a warning.
func LoadDepartments(table *sheet.Table, log *zap.SugaredLogger) Departments {
	departments := Departments{}

	for i, row := range table.Rows() {
		code := row.Get("code")
		if code == "" {
			log.Warnf("departments row %d missing code, skipping", i+2)
			continue
		}

		departments[NormaliseCode(code)] = Department{
			Code:     code,
			Status:   row.Get("status"),
			Position: row.Get("position"),
			FullName: row.Get("fullname"),
			Name:     row.Get("name"),
			Columns:  row,
		}
	}

	return departments
}

// Lookup resolves a department code, tolerating case and embedded whitespace.
func (d Departments) Lookup(code string) (Department, bool) {
	department, ok := d[NormaliseCode(code)]

	return department, ok
}
