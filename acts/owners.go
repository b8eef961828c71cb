package acts

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Owner is one entry from an assets row owners column: a department code and
// the share of the row quantity allocated to it.
type Owner struct {
	Code       string
	Quantity   int
	Department Department
}

var counted = regexp.MustCompile(`^(.*?)-\s*([0-9]+)\s*$`)

// ParseOwners splits the owners column into department allocations. Counts
// are either explicit for every entry ('ENG-3, HR-2') and must sum to the
// row quantity, or omitted entirely for a single owner taking the whole
// quantity.
func ParseOwners(raw string, quantity int) ([]Owner, error) {
	tokens := []string{}
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("no owners")
	}

	owners := []Owner{}
	explicit := 0
	for _, token := range tokens {
		if match := counted.FindStringSubmatch(token); match != nil {
			n, _ := strconv.Atoi(match[2])
			owners = append(owners, Owner{Code: strings.TrimSpace(match[1]), Quantity: n})
			explicit++
		} else {
			owners = append(owners, Owner{Code: token})
		}
	}

	switch {
	case explicit == 0:
		if len(owners) != 1 {
			return nil, fmt.Errorf("ambiguous multiple owners without counts")
		}

		owners[0].Quantity = quantity

	case explicit != len(owners):
		return nil, fmt.Errorf("mixed explicit and implicit owner counts")

	default:
		total := 0
		for _, owner := range owners {
			total += owner.Quantity
		}

		if total != quantity {
			return nil, fmt.Errorf("owner counts sum %d != quantity %d", total, quantity)
		}
	}

	return owners, nil
}
