package pipeline

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guttosm/contractpulse/internal/domain/models"
	"github.com/guttosm/contractpulse/internal/logger"
)

// outputHeader is the exact header line of the emitted file, regardless of
// input content.
const outputHeader = "ISIN,CFICode,Venue,Contract Size"

// ErrNoResultSet is returned when EmitFile or Transactions is called before a
// successful ParseFile has populated the pipeline.
var ErrNoResultSet = errors.New("no result set: ParseFile has not run")

// Pipeline owns the result set of one parse run.
//
// State is deliberately unguarded: ParseFile is the single writer, EmitFile
// and Transactions are optimistic readers, and the intended usage is one
// sequential parse→emit per run. A second ParseFile call replaces the result
// set wholesale; concurrent calls race (last writer wins). Create one
// Pipeline per run instead of sharing one across goroutines.
type Pipeline struct {
	keepFirstDataRow bool

	parsed       bool
	transactions []models.Transaction
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// KeepFirstDataRow disables the historical first-data-row exclusion.
//
// The reference behavior retains only data rows 2..N: besides the header, the
// FIRST data row is dropped from the result set. That filter is reproduced by
// default; this option names the behavior so callers and tests can turn it
// off and parse every data row.
func KeepFirstDataRow() Option {
	return func(p *Pipeline) { p.keepFirstDataRow = true }
}

// New creates an empty Pipeline with the given options applied.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile reads the comma-delimited file at path and replaces the result
// set with the retained transactions, in file order.
//
// Behavior:
//   - the header row is read and discarded, never mapped
//   - rows shorter than the mapped layout are logged with their line number
//     and skipped; the parse continues
//   - decode failures inside the payload column do not skip the row: the
//     transaction is retained with ContractInfo.IsErrorInParsing set
//   - unless KeepFirstDataRow was set, the first surviving data row is
//     excluded from the result set
//
// Open and read errors are fatal to the call and returned wrapped with the
// path for diagnosis.
func (p *Pipeline) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = ','
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // row length is checked against the mapped layout instead

	if _, err := r.Read(); err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}

	var (
		parsed  []models.Transaction
		skipped int
		line    = 1 // header already read
	)

	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("read %s after line %d: %w", path, line, err)
		}
		line++

		t, err := recordToTransaction(rec)
		if err != nil {
			// Row-level failure: record it and keep parsing.
			logger.L().Warn().Str("file", path).Int("line", line).Err(err).Msg("row skipped")
			skipped++
			continue
		}
		parsed = append(parsed, t)
	}

	if !p.keepFirstDataRow && len(parsed) > 0 {
		parsed = parsed[1:]
	}

	p.transactions = parsed
	p.parsed = true

	logger.L().Info().
		Str("file", path).
		Int("retained", len(parsed)).
		Int("skipped", skipped).
		Msg("parse done")

	return nil
}

// EmitFile writes the retained transactions to path.
//
// The header line is always exactly "ISIN,CFICode,Venue,Contract Size". Data
// lines join isin, cfiCode, venue and the decoded contract size with commas
// and NO quoting; embedded commas in input cells pass through verbatim, which
// matches the historical output format. Rows that failed payload decoding
// still appear, with a zero contract size.
//
// Calling EmitFile before a successful ParseFile returns ErrNoResultSet.
func (p *Pipeline) EmitFile(path string) error {
	if !p.parsed {
		return fmt.Errorf("emit %s: %w", path, ErrNoResultSet)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(outputHeader + "\n"); err != nil {
		return fmt.Errorf("write header to %s: %w", path, err)
	}

	for _, t := range p.transactions {
		line := strings.Join([]string{
			t.ISIN,
			t.CFICode,
			t.Venue,
			t.ContractInfo.ContractSize.String(),
		}, ",")
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write row to %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	logger.L().Info().Str("file", path).Int("rows", len(p.transactions)).Msg("emit done")
	return nil
}

// Transactions returns a copy of the current result set, in file order. It
// returns ErrNoResultSet when no parse has completed yet. An empty (but
// parsed) result set is not an error.
func (p *Pipeline) Transactions() ([]models.Transaction, error) {
	if !p.parsed {
		return nil, ErrNoResultSet
	}
	out := make([]models.Transaction, len(p.transactions))
	copy(out, p.transactions)
	return out, nil
}

// Ready reports whether a result set has been loaded. Used as the readiness
// probe in API mode.
func (p *Pipeline) Ready() error {
	if !p.parsed {
		return ErrNoResultSet
	}
	return nil
}
