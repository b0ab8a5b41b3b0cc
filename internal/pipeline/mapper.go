package pipeline

import (
	"fmt"
	"strings"

	"github.com/guttosm/contractpulse/internal/domain/models"
)

// Fixed input layout. Slice indexes are 0-based; the comments give the
// 1-based column positions as they appear in the source file.
//
//	col 1  → ISIN
//	col 3  → Venue
//	col 6  → CFICode
//	col 35 → packed contract payload
//
// Columns not listed are ignored.
const (
	colISIN         = 0
	colVenue        = 2
	colCFICode      = 5
	colContractInfo = 34

	minColumns = colContractInfo + 1
)

// recordToTransaction converts one CSV record into a Transaction.
//
// A record shorter than the highest mapped column is a row-level error; the
// caller decides whether to skip or abort. An EMPTY payload cell is not a row
// error: it flows through the decoder and comes back flagged with
// IsErrorInParsing, so the row stays traceable in the output.
func recordToTransaction(rec []string) (models.Transaction, error) {
	var t models.Transaction

	if len(rec) < minColumns {
		return t, fmt.Errorf("record has %d columns, need at least %d", len(rec), minColumns)
	}

	raw := rec[colContractInfo]
	t = models.Transaction{
		ISIN:         strings.TrimSpace(rec[colISIN]),
		Venue:        strings.TrimSpace(rec[colVenue]),
		CFICode:      strings.TrimSpace(rec[colCFICode]),
		AlgoParams:   raw,
		ContractInfo: DecodeContractInfo(raw),
	}

	return t, nil
}
