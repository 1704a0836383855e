package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

//row maps header to the trimmed, unfolded cell
type row map[string]string

//get returns a cell folded for parsing, "" if the column is missing
func (r row) get(col string) string {
	return normalize(r[col])
}

//text returns a cell as written. Names and descriptions keep their full width
//punctuation so they match what builds reference.
func (r row) text(col string) string {
	return r[col]
}

//normalize trims a cell and folds full width digits, %, parens and slashes
//to their ascii form so "３２.４％" parses like "32.4%"
func normalize(s string) string {
	return strings.TrimSpace(width.Fold.String(strings.TrimSpace(s)))
}

//readTable reads a csv with a header line into rows. Short rows are padded
//with "", which keeps the absent sentinel for missing cells.
func readTable(r io.Reader) ([]row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = normalize(strings.TrimPrefix(header[i], "\ufeff"))
	}

	var rows []row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", line, err)
		}
		if blank(record) {
			continue
		}
		r := make(row, len(header))
		for i, h := range header {
			if i < len(record) {
				r[h] = strings.TrimSpace(record[i])
			} else {
				r[h] = ""
			}
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseInt(s string, defaultValue int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return i
}

//parseFloat reads a bare or percent number, 0 when absent or invalid
func parseFloat(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

//splitList splits a recommendation cell on the usual separators
func splitList(s string) []string {
	f := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '/', ',', '、', ';', '／', '，', '；':
			return true
		}
		return false
	})
	var out []string
	for _, v := range f {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
