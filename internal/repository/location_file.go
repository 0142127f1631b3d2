package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"locations-sqlgen/internal/models"

	"github.com/jszwec/csvutil"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LocationFile reads the locations CSV from a filesystem
type LocationFile struct {
	fs   afero.Fs
	path string
}

// NewLocationFile creates a reader for the CSV at path
func NewLocationFile(fs afero.Fs, path string) *LocationFile {
	return &LocationFile{fs: fs, path: path}
}

// Path returns the file location
func (f *LocationFile) Path() string {
	return f.path
}

// ReadRows returns every CSV row as read, whatever its field count
func (f *LocationFile) ReadRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := f.fs.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(withoutBOM(file))
	reader.FieldsPerRecord = -1 // Row length is checked by the caller

	var rows [][]string
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("repository: failed to read record: %w", err)
		}
		rows = append(rows, record)
	}

	return rows, nil
}

// ReadLocations decodes rows by header name. Missing columns and unparsable coordinates are errors.
func (f *LocationFile) ReadLocations(ctx context.Context) ([]models.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := f.fs.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to open file: %w", err)
	}
	defer file.Close()

	dec, err := csvutil.NewDecoder(csv.NewReader(withoutBOM(file)))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to read header: %w", err)
	}
	dec.DisallowMissingColumns = true

	var locations []models.Location
	for {
		var loc models.Location
		if err := dec.Decode(&loc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("repository: failed to decode location: %w", err)
		}
		locations = append(locations, loc)
	}

	return locations, nil
}

func withoutBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}
