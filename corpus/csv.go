package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/poiesic/contratoqa/core"
)

// csvHeader is the fixed column order of the intermediate CSV.
var csvHeader = []string{
	"composite_key",
	"objeto_contrato",
	"valor_contrato",
	"processo_gdf",
	"numero_contrato",
	"raw_text_hash",
	"versao_idx",
}

// WriteRecords writes contract records as UTF-8 CSV with a header row.
func WriteRecords(w io.Writer, records []*core.ContractRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.CompositeKey,
			r.Objeto,
			r.Valor,
			r.ProcessoGDF,
			r.NumeroContrato,
			r.RawTextHash,
			strconv.Itoa(r.VersionIndex),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRecordsFile writes contract records to a CSV file, replacing any
// existing file at path.
func WriteRecordsFile(path string, records []*core.ContractRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRecords(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadRecords reads contract records from intermediate CSV content.
// The header row is validated against the expected column set.
func ReadRecords(r io.Reader) ([]*core.ContractRecord, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCSV, err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range []string{"composite_key", "objeto_contrato", "valor_contrato", "versao_idx"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidCSV, name)
		}
	}

	field := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var records []*core.ContractRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCSV, err)
		}

		version, err := strconv.Atoi(field(row, "versao_idx"))
		if err != nil {
			version = 0
		}
		records = append(records, &core.ContractRecord{
			CompositeKey:   field(row, "composite_key"),
			Objeto:         field(row, "objeto_contrato"),
			Valor:          field(row, "valor_contrato"),
			ProcessoGDF:    field(row, "processo_gdf"),
			NumeroContrato: field(row, "numero_contrato"),
			RawTextHash:    field(row, "raw_text_hash"),
			VersionIndex:   version,
		})
	}
	return records, nil
}

// ReadRecordsFile reads contract records from a CSV file.
func ReadRecordsFile(path string) ([]*core.ContractRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRecords(f)
}
