package acts

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nonGratis/asset-acts/sheet"
)

// Assets register column names.
const (
	ColumnID        = "id"
	ColumnName      = "name"
	ColumnInventory = "inventory"
	ColumnUnit      = "unit"
	ColumnQuantity  = "quantity"
	ColumnPrice     = "price"
	ColumnDate      = "date"
	ColumnOwners    = "owners"
	ColumnGenerate  = "generate"
)

// Department is one row from the departments register.
type Department struct {
	Code     string
	Status   string
	Position string
	FullName string
	Name     string
	Columns  sheet.Row
}

// Asset is one validated row from the assets register.
type Asset struct {
	ID        string
	Name      string
	Inventory string
	Unit      string
	Quantity  int
	Price     decimal.Decimal
	Date      string
}

// Act is a single transfer act: one asset allocated to one department. The
// quantity and sum are the owner's share of the asset row.
type Act struct {
	Asset      Asset
	Department Department
	Quantity   int
	UnitPrice  decimal.Decimal
	Sum        decimal.Decimal
	Columns    sheet.Row
}

// MappingError records an assets row that could not be turned into acts.
type MappingError struct {
	Row   int
	Asset string
	Err   error
}

func (e *MappingError) Error() string {
	if e.Asset != "" {
		return fmt.Sprintf("row %d (asset %s): %v", e.Row, e.Asset, e.Err)
	}

	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// NormaliseCode maps a department code to its registry key: all whitespace
// (including non-breaking spaces) stripped, uppercased.
func NormaliseCode(code string) string {
	return strings.ToUpper(strings.Join(strings.Fields(code), ""))
}
