package acts

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/nonGratis/asset-acts/sheet"
)

// Stats summarises one pass over the assets register.
type Stats struct {
	RowsProcessed int
	RowsSkipped   int
	OwnersSkipped int
	TotalValue    decimal.Decimal
}

// ParseAssets walks the assets worksheet and produces one act per asset row
// and resolved owner. Rows that cannot be processed are skipped, recorded
// against the asset id and never stop later rows - the returned error is the
// aggregate of all per-row failures.
func ParseAssets(table *sheet.Table, departments Departments, log *zap.SugaredLogger) ([]Act, Stats, error) {
	list := []Act{}
	stats := Stats{TotalValue: decimal.Zero}

	var errs error
	skip := func(line int, id string, err error) {
		stats.RowsSkipped++
		errs = multierr.Append(errs, &MappingError{Row: line, Asset: id, Err: err})
		log.Warnf("assets row %d (asset %s): %v, skipping", line, id, err)
	}

	for i, row := range table.Rows() {
		line := i + 2

		if !strings.EqualFold(row.Get(ColumnGenerate), "TRUE") {
			stats.RowsSkipped++
			continue
		}

		asset, err := makeAsset(row)
		if err != nil {
			skip(line, row.Get(ColumnID), err)
			continue
		}

		owners, err := ParseOwners(row.Get(ColumnOwners), asset.Quantity)
		if err != nil {
			skip(line, asset.ID, err)
			continue
		}

		resolved := []Owner{}
		for _, owner := range owners {
			department, ok := departments.Lookup(owner.Code)
			if !ok {
				stats.OwnersSkipped++
				errs = multierr.Append(errs, &MappingError{Row: line, Asset: asset.ID, Err: fmt.Errorf("unknown department '%s'", owner.Code)})
				log.Warnf("assets row %d (asset %s): unknown department '%s', skipping owner", line, asset.ID, owner.Code)
				continue
			}

			owner.Department = department
			resolved = append(resolved, owner)
		}

		if len(resolved) == 0 {
			stats.RowsSkipped++
			log.Warnf("assets row %d (asset %s): all owners skipped, skipping row", line, asset.ID)
			continue
		}

		for _, act := range split(asset, row, resolved, log) {
			stats.TotalValue = stats.TotalValue.Add(act.Sum)
			list = append(list, act)
		}

		stats.RowsProcessed++
	}

	return list, stats, errs
}

func makeAsset(row sheet.Row) (Asset, error) {
	name := row.Get(ColumnName)
	if name == "" {
		return Asset{}, fmt.Errorf("missing name")
	}

	quantity, err := ParseNumber(row.Get(ColumnQuantity))
	if err != nil {
		return Asset{}, fmt.Errorf("quantity: %w", err)
	}

	if !quantity.IsInteger() || quantity.IntPart() <= 0 {
		return Asset{}, fmt.Errorf("invalid quantity '%s'", row.Get(ColumnQuantity))
	}

	price, err := ParseNumber(row.Get(ColumnPrice))
	if err != nil {
		return Asset{}, fmt.Errorf("price: %w", err)
	}

	return Asset{
		ID:        row.Get(ColumnID),
		Name:      name,
		Inventory: row.Get(ColumnInventory),
		Unit:      strings.ToLower(row.Get(ColumnUnit)),
		Quantity:  int(quantity.IntPart()),
		Price:     price,
		Date:      row.Get(ColumnDate),
	}, nil
}

// split allocates an asset row across its owners. The unit price is the row
// price divided by the row quantity, rounded to money; any rounding residue
// against the row price is folded into the last owner's sum.
func split(asset Asset, row sheet.Row, owners []Owner, log *zap.SugaredLogger) []Act {
	unitPrice := Money(asset.Price.Div(decimal.NewFromInt(int64(asset.Quantity))))

	sums := make([]decimal.Decimal, len(owners))
	total := decimal.Zero
	for i, owner := range owners {
		sums[i] = Money(unitPrice.Mul(decimal.NewFromInt(int64(owner.Quantity))))
		total = total.Add(sums[i])
	}

	if diff := Money(asset.Price).Sub(total); !diff.IsZero() {
		sums[len(sums)-1] = Money(sums[len(sums)-1].Add(diff))
		log.Warnf("asset %s: rounding adjusted by %s on last owner", asset.ID, diff)
	}

	list := make([]Act, len(owners))
	for i, owner := range owners {
		list[i] = Act{
			Asset:      asset,
			Department: owner.Department,
			Quantity:   owner.Quantity,
			UnitPrice:  unitPrice,
			Sum:        sums[i],
			Columns:    row,
		}
	}

	return list
}
