package ingest

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeUpload turns raw upload bytes into row mappings. The format is picked
// by file extension (.csv or .json); a UTF-8 byte-order mark is tolerated.
func DecodeUpload(data []byte, filename string) ([]Row, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return decodeCSV(text)
	case ".json":
		return decodeJSON(text)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// RowsFromText treats pasted plain text as one feedback per non-blank line.
func RowsFromText(text string) []Row {
	var rows []Row
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, Row{"feedback_text": line})
	}
	return rows
}

func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", ErrUndecodableUpload
	}
	return string(data), nil
}

// decodeCSV reads the header row as key names and maps every data row onto it.
func decodeCSV(text string) ([]Row, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // tolerate ragged rows, missing cells degrade to absent fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyUpload, err)
	}
	if len(records) < 2 {
		return nil, ErrEmptyUpload
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, key := range header {
			if i < len(record) {
				row[strings.TrimSpace(key)] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// decodeJSON expects an array of flat objects; scalar values are stringified.
func decodeJSON(text string) ([]Row, error) {
	var objects []map[string]any
	if err := json.Unmarshal([]byte(text), &objects); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyUpload, err)
	}
	if len(objects) == 0 {
		return nil, ErrEmptyUpload
	}

	rows := make([]Row, 0, len(objects))
	for _, obj := range objects {
		row := make(Row, len(obj))
		for key, value := range obj {
			row[key] = stringifyValue(value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func stringifyValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
