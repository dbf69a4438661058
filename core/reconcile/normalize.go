package reconcile

import (
	"fmt"
	"strconv"
	"strings"
)

// ampleStockToken is how the feed encodes "more than ten in stock".
const ampleStockToken = ">10"

// ampleStockValue stands in for the unbounded quantity behind the sentinel.
const ampleStockValue = 100

// NormalizeQuantity maps a raw feed quantity token to an integer stock count.
//
// The feed uses two special tokens: ">10" means ample stock and maps to 100,
// and a literal "1" maps to 0 because single-unit availability is not
// advertised. Anything else must be an exact base-10 integer.
func NormalizeQuantity(raw string) (int, error) {
	token := strings.TrimSpace(raw)

	switch token {
	case ampleStockToken:
		return ampleStockValue, nil
	case "1":
		// Policy: suppress single-unit listings rather than show one left.
		return 0, nil
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, raw)
	}
	return n, nil
}

// NormalizePrice maps a currency-formatted feed price to an integer value.
//
// Everything after the first '.' is discarded (the feed always carries ".00"
// style fractions plus a currency suffix), then every non-digit is stripped
// from the remainder: "5'990.00 руб." becomes 5990. Fractional kopecks are
// intentionally lost.
func NormalizePrice(raw string) (int, error) {
	whole, _, _ := strings.Cut(raw, ".")

	var digits strings.Builder
	for _, r := range whole {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}

	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	return n, nil
}
