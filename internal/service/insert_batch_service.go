package service

import (
	"context"
	"fmt"
	"strings"

	"locations-sqlgen/internal/models"
	"locations-sqlgen/internal/sqlgen"

	"github.com/rs/zerolog/log"
)

// fieldsPerRecord is the positional row width: city, postcode, latitude, longitude, province
const fieldsPerRecord = 5

var headerFields = [fieldsPerRecord]string{"city", "postcode", "latitude", "longitude", "province"}

// RowSource interface for dependency injection
type RowSource interface {
	ReadRows(ctx context.Context) ([][]string, error)
}

// ScriptWriter interface for dependency injection
type ScriptWriter interface {
	WriteScript(ctx context.Context, name string, content []byte) (string, error)
}

// InsertBatchResult summarizes one InsertBatchService run
type InsertBatchResult struct {
	Rows       int
	Skipped    int
	Statements int
	Files      []string
}

// InsertBatchService turns positional location rows into batched INSERT scripts
type InsertBatchService struct {
	source     RowSource
	writer     ScriptWriter
	batchSize  int
	filePrefix string
}

// NewInsertBatchService creates a new insert batch service
func NewInsertBatchService(source RowSource, writer ScriptWriter, batchSize int, filePrefix string) *InsertBatchService {
	return &InsertBatchService{
		source:     source,
		writer:     writer,
		batchSize:  batchSize,
		filePrefix: filePrefix,
	}
}

// Generate reads every row, renders one statement per valid row and writes the batch files
func (s *InsertBatchService) Generate(ctx context.Context) (*InsertBatchResult, error) {
	if s.batchSize <= 0 {
		return nil, fmt.Errorf("service: invalid batch size: %d", s.batchSize)
	}

	rows, err := s.source.ReadRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read rows: %w", err)
	}

	records, skipped := toRecords(rows)
	result := &InsertBatchResult{
		Rows:    len(rows),
		Skipped: skipped,
	}

	statements := make([]string, 0, len(records))
	for _, r := range records {
		statements = append(statements, sqlgen.InsertStatement(r))
	}
	result.Statements = len(statements)

	for i, batch := range sqlgen.Batches(statements, s.batchSize) {
		name := s.filePrefix + sqlgen.BatchSuffix(i)
		path, err := s.writer.WriteScript(ctx, name, sqlgen.BatchScript(batch))
		if err != nil {
			return nil, fmt.Errorf("service: failed to write batch %s: %w", name, err)
		}
		log.Info().Str("file", path).Int("statements", len(batch)).Msg("wrote insert batch")
		result.Files = append(result.Files, path)
	}

	return result, nil
}

// toRecords keeps rows with exactly five fields. A leading header row is dropped.
func toRecords(rows [][]string) ([]models.LocationRecord, int) {
	var records []models.LocationRecord
	skipped := 0
	for i, row := range rows {
		if len(row) != fieldsPerRecord {
			log.Debug().Int("row", i+1).Int("fields", len(row)).Msg("skipping row with unexpected field count")
			skipped++
			continue
		}
		if i == 0 && isHeader(row) {
			log.Debug().Msg("skipping header row")
			skipped++
			continue
		}
		records = append(records, models.LocationRecord{
			City:      row[0],
			Postcode:  row[1],
			Latitude:  row[2],
			Longitude: row[3],
			Province:  row[4],
		})
	}
	return records, skipped
}

func isHeader(row []string) bool {
	for i, name := range headerFields {
		if !strings.EqualFold(strings.TrimSpace(row[i]), name) {
			return false
		}
	}
	return true
}
