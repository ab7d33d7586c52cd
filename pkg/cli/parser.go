package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Record map[string]string

// parseWords reads every word out of a file, choosing the parser by
// extension: .json is an array of records, .csv/.tsv are header-mapped
// tables, anything else is plain text with one word per line.
func parseWords(wordKey string, path string, onEachWord func(word string) error) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJson(wordKey, path, onEachWord)
	case ".csv":
		return parseCsv(wordKey, path, ',', onEachWord)
	case ".tsv":
		return parseCsv(wordKey, path, '\t', onEachWord)
	default:
		return parseText(path, onEachWord)
	}
}

func parseText(path string, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseJson(wordKey string, path string, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Create a JSON Decoder
	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	if _, err = decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for decoder.More() {
		record := Record{}
		if err := decoder.Decode(&record); err != nil {
			return err
		}
		word, err := wordFromRecord(record, wordKey, path)
		if err != nil {
			return err
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	if _, err = decoder.Token(); err != nil {
		return err
	}

	return nil
}

func parseCsv(wordKey string, path string, separator rune, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = separator

	// Read the header to build the key mapping (assuming first line is the header)
	headers, err := reader.Read()
	if err != nil {
		return err
	}

	// Read each record from the CSV
	for {
		recordData, err := reader.Read()
		if err != nil {
			break // End of file or an error
		}

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}

		word, err := wordFromRecord(record, wordKey, path)
		if err != nil {
			return err
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}

	return nil
}

func wordFromRecord(record Record, wordKey string, path string) (string, error) {
	word, found := record[wordKey]
	if !found {
		return "", fmt.Errorf("file %s: record %v has no %q field", path, record, wordKey)
	}
	return word, nil
}
