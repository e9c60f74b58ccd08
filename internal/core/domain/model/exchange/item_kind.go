package exchange

import (
	"fmt"

	"exchange/internal/pkg/errs"
)

// ItemKind distinguishes what an exchange order references. Batches and
// products are structurally identical for the lifecycle; the kind is carried
// so the UI and the audit trail can name the right entity.
type ItemKind int

const (
	// ItemKindUnknown represents an invalid or undefined kind.
	ItemKindUnknown ItemKind = iota

	// ItemKindBatch references a generator-owned waste batch.
	ItemKindBatch

	// ItemKindProduct references a transformed product listing.
	ItemKindProduct
)

func getItemKindStrings() map[ItemKind]string {
	return map[ItemKind]string{
		ItemKindBatch:   "batch",
		ItemKindProduct: "product",
	}
}

// ItemKindFromString parses "batch" or "product" into an ItemKind.
// Returns ErrValueIsInvalid when the name matches no kind.
func ItemKindFromString(s string) (ItemKind, error) {
	for kind, name := range getItemKindStrings() {
		if name == s {
			return kind, nil
		}
	}

	return ItemKindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"item kind is invalid",
		fmt.Errorf("%q is not a valid item kind", s),
	)
}

// Validate checks if the ItemKind is batch or product.
func (k ItemKind) Validate() error {
	if _, ok := getItemKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("item kind is invalid", fmt.Errorf("%d is not a valid item kind", k))
	}
	return nil
}

// String returns "batch" or "product", or "unknown" for invalid values.
func (k ItemKind) String() string {
	if str, ok := getItemKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
