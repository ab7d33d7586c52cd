package cli

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/khalid-nowaf/tst/pkg/dict"
)

type Writer interface {
	Write(reports []*dict.LookupReport, directory string) error
}

type JsonWriter struct {
	Stats *Stats
}

func (w JsonWriter) Write(reports []*dict.LookupReport, directory string) error {
	file, err := os.Create(filepath.Join(directory, "report.json"))
	if err != nil {
		return err
	}
	defer file.Close()

	rows := []Record{}
	for _, report := range reports {
		rows = append(rows, Record{
			"word":   report.Word,
			"found":  strconv.FormatBool(report.Found),
			"prefix": report.Prefix,
		})
		w.Stats.Output++
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

type CsvWriter struct {
	isTSV bool
	Stats *Stats
}

func (w CsvWriter) Write(reports []*dict.LookupReport, directory string) error {
	name := "report.csv"
	separator := ','
	if w.isTSV {
		name = "report.tsv"
		separator = '\t'
	}

	file, err := os.Create(filepath.Join(directory, name))
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = separator
	defer writer.Flush()

	if err := writer.Write([]string{"word", "found", "prefix"}); err != nil {
		return err
	}

	for _, report := range reports {
		record := []string{report.Word, strconv.FormatBool(report.Found), report.Prefix}
		if err := writer.Write(record); err != nil {
			return err
		}
		w.Stats.Output++
	}

	return nil
}
