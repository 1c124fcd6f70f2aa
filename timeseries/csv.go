package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (optional)
	ValueColumn string // Column name for values (default: "y")
	DateFormat  string // Date format (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a time series from a CSV file. Empty, "NA", "NaN" and "null"
// cells are loaded as missing observations (NaN) so that their positions are
// preserved in the series.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, dateIdx := -1, -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")):
				valueIdx = i
			case opts.DateColumn != "" && h == opts.DateColumn:
				dateIdx = i
			case h == "ds" || h == "date" || h == "Date":
				if dateIdx == -1 {
					dateIdx = i
				}
			}
		}

		if valueIdx == -1 {
			// Default to last column if the value column was not found
			valueIdx = len(header) - 1
		}
	} else {
		dateIdx = 0
		valueIdx = 1
	}

	var values []float64
	var timestamps []time.Time

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if valueIdx < 0 || valueIdx >= len(record) {
			continue
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			values = append(values, math.NaN())
		} else {
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				values = append(values, math.NaN())
			} else {
				values = append(values, val)
			}
		}

		if dateIdx >= 0 && dateIdx < len(record) {
			dateStr := strings.TrimSpace(strings.Trim(record[dateIdx], "\""))
			formats := []string{
				opts.DateFormat,
				"2006-01-02",
				"2006-01-02T15:04:05",
				"2006/01/02",
				"2006",
			}
			var ts time.Time
			for _, format := range formats {
				ts, err = time.Parse(format, dateStr)
				if err == nil {
					break
				}
			}
			if err == nil {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	if len(timestamps) == len(values) {
		return &Series{
			Timestamps: timestamps,
			Values:     values,
		}, nil
	}

	return New(values), nil
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// SaveCSV saves a time series to a CSV file. Missing observations are written
// as "NA".
func SaveCSV(series *Series, filename string, includeIndex bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	return WriteCSV(series, writer, includeIndex)
}

// WriteCSV writes a time series to an io.Writer in CSV format.
func WriteCSV(series *Series, w io.Writer, includeIndex bool) error {
	bw := bufio.NewWriter(w)

	hasTimestamps := len(series.Timestamps) == len(series.Values)
	if includeIndex && hasTimestamps {
		bw.WriteString("ds,y\n")
	} else if includeIndex {
		bw.WriteString("index,y\n")
	} else {
		bw.WriteString("y\n")
	}

	for i, v := range series.Values {
		if includeIndex {
			if hasTimestamps {
				bw.WriteString(series.Timestamps[i].Format("2006-01-02"))
			} else {
				bw.WriteString(strconv.Itoa(i))
			}
			bw.WriteString(",")
		}
		if math.IsNaN(v) {
			bw.WriteString("NA")
		} else {
			bw.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}
