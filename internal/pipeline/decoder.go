package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/contractpulse/internal/domain/models"
)

// priceMultiplierKey is the payload attribute carrying the contract size.
// Key matching is case-insensitive.
const priceMultiplierKey = "PriceMultiplier"

// errNoPriceMultiplier distinguishes "key absent" from a malformed token or
// value internally; both collapse into ContractInfo.IsErrorInParsing at the
// public boundary.
var errNoPriceMultiplier = errors.New("no PriceMultiplier token in payload")

// DecodeContractInfo decodes the packed key:value payload of the contract
// column into a ContractInfo. It is a total function: any failure (missing
// key, malformed token, non-numeric value) is reported through the
// IsErrorInParsing flag and ErrorMessage of the returned value, never as an
// error or a panic. The returned struct is always populated.
//
// Payload format:
//   - '|' characters are noise and stripped first
//   - ';' separates Key:Value tokens
//   - the first token whose key equals "PriceMultiplier" (case-insensitive)
//     wins, even if its value turns out malformed
//   - the winning token's value must parse as a decimal number
//
// Example: "|Key1:Val1|;PriceMultiplier:20;|OtherKey:OtherVal|" → size 20.
func DecodeContractInfo(raw string) models.ContractInfo {
	size, err := extractPriceMultiplier(raw)
	if err != nil {
		return models.ContractInfo{
			ContractSize:     decimal.Zero,
			IsErrorInParsing: true,
			ErrorMessage:     err.Error(),
		}
	}
	return models.ContractInfo{ContractSize: size}
}

// extractPriceMultiplier tokenizes the payload and parses the value of the
// first PriceMultiplier token as a decimal.
func extractPriceMultiplier(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(raw, "|", "")

	for _, tok := range strings.Split(cleaned, ";") {
		parts := strings.Split(tok, ":")
		if !strings.EqualFold(parts[0], priceMultiplierKey) {
			continue
		}

		// First matching token wins; a malformed match is a decode failure,
		// not a reason to scan further.
		if len(parts) < 2 {
			return decimal.Zero, fmt.Errorf("token %q has no value segment", tok)
		}
		v, err := decimal.NewFromString(parts[1])
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid PriceMultiplier value %q: %v", parts[1], err)
		}
		return v, nil
	}

	return decimal.Zero, errNoPriceMultiplier
}
