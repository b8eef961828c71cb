package acts

import (
	"strconv"
)

// Mapping builds the placeholder map for a single act. Every column of the
// asset row is exposed as 'asset.<column>' and the resolved department as
// 'department.<column>'; quantity, money and amount-in-words entries are
// computed from the act's owner share and override the raw cells.
func Mapping(act Act) map[string]string {
	m := map[string]string{}

	for column, value := range act.Columns {
		m["asset."+column] = value
	}

	m["asset.name"] = act.Asset.Name
	m["asset.unit"] = act.Asset.Unit
	m["asset.price"] = FormatMoney(act.Asset.Price)
	m["asset.quantity"] = strconv.Itoa(act.Quantity)
	m["asset.quantity_words"] = NumberWords(act.Quantity)
	m["asset.unit_price"] = FormatMoney(act.UnitPrice)
	m["asset.sum"] = FormatMoney(act.Sum)
	m["asset.sum_words"] = MoneyWords(act.Sum)

	for column, value := range act.Department.Columns {
		m["department."+column] = value
	}

	m["department.code"] = act.Department.Code
	m["department.status"] = act.Department.Status
	m["department.position"] = act.Department.Position
	m["department.fullname"] = act.Department.FullName
	m["department.name"] = act.Department.Name

	return m
}
