package dto

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/contractpulse/internal/domain/models"
)

// TransactionResponse is the JSON shape of one retained transaction as
// returned by GET /api/v1/transactions.
//
// Fields mirror the emitted CSV columns plus the decode-error flag, so API
// consumers can tell a genuine zero contract size from a failed decode.
type TransactionResponse struct {
	ISIN         string          `json:"isin" example:"DE000ABCDEFG"`      // Instrument identifier (input column 1)
	CFICode      string          `json:"cfi_code" example:"FFICSX"`        // CFI classification (input column 6)
	Venue        string          `json:"venue" example:"XEUR"`             // Trading venue (input column 3)
	ContractSize decimal.Decimal `json:"contract_size" example:"20"`       // Decoded PriceMultiplier value
	ParseError   bool            `json:"parse_error,omitempty"`            // True when payload decoding failed
	ErrorMessage string          `json:"error_message,omitempty"`          // Diagnostic for failed decodes
}

// NewTransactionResponse maps a domain transaction onto the API shape.
func NewTransactionResponse(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ISIN:         t.ISIN,
		CFICode:      t.CFICode,
		Venue:        t.Venue,
		ContractSize: t.ContractInfo.ContractSize,
		ParseError:   t.ContractInfo.IsErrorInParsing,
		ErrorMessage: t.ContractInfo.ErrorMessage,
	}
}
