package models

import "github.com/shopspring/decimal"

// Transaction represents a single row in the instrument reference file.
// Each field maps to one fixed column position in the input (1-based):
//
//  1. ISIN
//  3. Venue
//  6. CFICode
//  35. packed contract payload → AlgoParams (raw) and ContractInfo (decoded)
//
// Transactions are built once during parse and never mutated afterwards.
type Transaction struct {
	ISIN         string
	Venue        string
	CFICode      string
	AlgoParams   string // raw column-35 payload, kept undecoded for diagnostics
	ContractInfo ContractInfo
}

// ContractInfo is the decoded result of the packed column-35 payload.
//
// It is always populated, whether decoding succeeded or not: callers must
// branch on IsErrorInParsing, never on presence. A failed decode carries a
// zero ContractSize and a diagnostic ErrorMessage.
type ContractInfo struct {
	ContractSize     decimal.Decimal
	IsErrorInParsing bool
	ErrorMessage     string
}
