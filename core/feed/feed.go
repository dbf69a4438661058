package feed

import (
	"archive/zip"
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"marketsync/core/reconcile"
)

var (
	// ErrFeedUnavailable reports a failed archive download.
	ErrFeedUnavailable = errors.New("remnants feed unavailable")

	// ErrFeedMalformed reports an archive or sheet the parser cannot read.
	ErrFeedMalformed = errors.New("remnants feed malformed")
)

// Load fetches the remnants archive and parses it into feed records,
// preserving sheet row order.
func Load(ctx context.Context, fetcher Fetcher, cfg Config) ([]reconcile.RemnantRecord, error) {
	rc, err := fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: reading archive: %v", ErrFeedUnavailable, err)
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a zip archive: %v", ErrFeedMalformed, err)
	}

	sheet, err := openSheet(archive)
	if err != nil {
		return nil, err
	}
	defer sheet.Close()

	return parseSheet(sheet, cfg)
}

// openSheet returns the first regular file of the archive.
func openSheet(archive *zip.Reader) (io.ReadCloser, error) {
	for _, f := range archive.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", ErrFeedMalformed, f.Name, err)
		}
		return rc, nil
	}
	return nil, fmt.Errorf("%w: archive holds no files", ErrFeedMalformed)
}

// parseSheet reads the delimited sheet export: banner lines, then the column
// header, then one record per row. Rows without a vendor code are skipped
// (the sheet ends with totals and footnotes).
func parseSheet(r io.Reader, cfg Config) ([]reconcile.RemnantRecord, error) {
	buffered := bufio.NewReader(r)

	// The banner block above the header is free text; skip it line by line
	// rather than feeding it to the CSV reader.
	for i := 0; i < cfg.HeaderSkip; i++ {
		if _, err := buffered.ReadString('\n'); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("%w: sheet shorter than header offset %d", ErrFeedMalformed, cfg.HeaderSkip)
			}
			return nil, fmt.Errorf("%w: %v", ErrFeedMalformed, err)
		}
	}

	reader := csv.NewReader(buffered)
	reader.Comma = separatorRune(cfg.Separator)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrFeedMalformed, err)
	}

	codeIdx, err := columnIndex(header, cfg.CodeColumn)
	if err != nil {
		return nil, err
	}
	quantityIdx, err := columnIndex(header, cfg.QuantityColumn)
	if err != nil {
		return nil, err
	}
	priceIdx, err := columnIndex(header, cfg.PriceColumn)
	if err != nil {
		return nil, err
	}

	var records []reconcile.RemnantRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading row: %v", ErrFeedMalformed, err)
		}

		if codeIdx >= len(row) || quantityIdx >= len(row) || priceIdx >= len(row) {
			continue
		}
		code := strings.TrimSpace(row[codeIdx])
		if code == "" {
			continue
		}

		records = append(records, reconcile.RemnantRecord{
			Code:        code,
			RawQuantity: strings.TrimSpace(row[quantityIdx]),
			RawPrice:    strings.TrimSpace(row[priceIdx]),
		})
	}

	return records, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, col := range header {
		if strings.TrimSpace(col) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: column %q not found in header", ErrFeedMalformed, name)
}

func separatorRune(sep string) rune {
	for _, r := range sep {
		return r
	}
	return ';'
}
