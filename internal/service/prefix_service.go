package service

import (
	"context"
	"fmt"

	"locations-sqlgen/internal/models"
	"locations-sqlgen/internal/prefix"
	"locations-sqlgen/internal/sqlgen"

	"github.com/rs/zerolog/log"
)

// LocationSource interface for dependency injection
type LocationSource interface {
	ReadLocations(ctx context.Context) ([]models.Location, error)
}

// PrefixResult summarizes one PrefixService run
type PrefixResult struct {
	Rows     int
	Skipped  int
	Prefixes int
	File     string
}

// PrefixService aggregates locations per postcode prefix and writes the lookup table script
type PrefixService struct {
	source   LocationSource
	writer   ScriptWriter
	length   int
	fileName string
}

// NewPrefixService creates a new prefix service
func NewPrefixService(source LocationSource, writer ScriptWriter, length int, fileName string) *PrefixService {
	return &PrefixService{
		source:   source,
		writer:   writer,
		length:   length,
		fileName: fileName,
	}
}

// Generate reads every location, aggregates by prefix and writes a single script
func (s *PrefixService) Generate(ctx context.Context) (*PrefixResult, error) {
	if s.length <= 0 {
		return nil, fmt.Errorf("service: invalid prefix length: %d", s.length)
	}

	locations, err := s.source.ReadLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read locations: %w", err)
	}

	skipped := 0
	for _, loc := range locations {
		if _, ok := prefix.Of(loc.Postcode, s.length); !ok {
			skipped++
		}
	}
	if skipped > 0 {
		log.Debug().Int("rows", skipped).Int("length", s.length).Msg("skipping postcodes shorter than prefix")
	}

	summaries := prefix.Aggregate(locations, s.length)

	path, err := s.writer.WriteScript(ctx, s.fileName, sqlgen.PrefixScript(summaries, s.length))
	if err != nil {
		return nil, fmt.Errorf("service: failed to write prefix script: %w", err)
	}
	log.Info().Str("file", path).Int("prefixes", len(summaries)).Msg("wrote prefix script")

	return &PrefixResult{
		Rows:     len(locations),
		Skipped:  skipped,
		Prefixes: len(summaries),
		File:     path,
	}, nil
}
