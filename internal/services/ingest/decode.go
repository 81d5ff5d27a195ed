package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DecodeRows turns an uploaded spreadsheet into RawRows. The preferred
// format comes from the file name / content type; on a decode failure the
// other format is tried before giving up. The whole batch is materialized
// — batches are bounded by a single request, not by throughput.
func DecodeRows(r io.Reader, filePath, contentType string) ([]RawRow, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}

	format := DetectFormat(filePath, contentType)
	log.Printf("[DECODE] path=%q content_type=%q detected_format=%q size=%d", filePath, contentType, format, len(data))

	try := []string{"xlsx", "csv"}
	if format == "csv" {
		try = []string{"csv", "xlsx"}
	}

	var firstErr error
	for _, f := range try {
		var rows []RawRow
		var derr error
		switch f {
		case "xlsx":
			rows, derr = decodeXLSX(bytes.NewReader(data))
		case "csv":
			rows, derr = decodeCSV(bytes.NewReader(data))
		}
		if derr == nil {
			log.Printf("[DECODE][OK] format=%s rows=%d", f, len(rows))
			return rows, f, nil
		}
		log.Printf("[DECODE][%s][ERR] %v", strings.ToUpper(f), derr)
		if firstErr == nil {
			firstErr = derr
		}
	}
	return nil, "", firstErr
}

func decodeXLSX(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx has no sheets")
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Error()
	}
	header, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []RawRow
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			log.Printf("[DECODE][XLSX][WARN] read row: %v", err)
			continue
		}
		if row := toRawRow(header, cols); row != nil {
			out = append(out, row)
		}
	}
	return out, rows.Error()
}

func decodeCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	var out []RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("[DECODE][CSV][WARN] read row: %v", err)
			continue
		}
		if row := toRawRow(header, record); row != nil {
			out = append(out, row)
		}
	}
	return out, nil
}

// toRawRow zips a header onto one line; fully empty lines are dropped.
func toRawRow(header, cols []string) RawRow {
	row := make(RawRow, len(header))
	empty := true
	for i, key := range header {
		k := strings.TrimSpace(key)
		if k == "" {
			continue
		}
		val := ""
		if i < len(cols) {
			val = strings.TrimSpace(cols[i])
		}
		if val != "" {
			empty = false
		}
		row[k] = val
	}
	if empty {
		return nil
	}
	return row
}

// DetectFormat guesses xlsx/csv from the file extension, then from the
// content type. Empty string means unknown.
func DetectFormat(filePath, contentType string) string {
	p := filePath
	if u, err := url.Parse(filePath); err == nil && u != nil && u.Path != "" {
		p = u.Path
	}
	switch strings.ToLower(strings.TrimPrefix(path.Ext(p), ".")) {
	case "xlsx":
		return "xlsx"
	case "csv":
		return "csv"
	}
	med, _, _ := mime.ParseMediaType(contentType)
	switch med {
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return "xlsx"
	case "text/csv", "application/csv", "text/plain":
		return "csv"
	}
	return ""
}
