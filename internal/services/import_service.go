package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/xuri/excelize/v2"
)

// Expected column order in import sheets; the first row is a header.
// dutch | translation | source | part_of_speech | context | example
const (
	colDutch = iota
	colTranslation
	colSource
	colPartOfSpeech
	colContext
	colExample
)

type importService struct {
	words  WordService
	logger *slog.Logger
}

func NewImportService(words WordService, logger *slog.Logger) ImportService {
	return &importService{
		words:  words,
		logger: logger,
	}
}

// ImportWords reads an xlsx workbook and creates every row as a word owned by
// the importing user, through the same path as single-word creation so
// flashcards and rollups stay consistent. Rows that fail validation are
// reported and skipped; they do not abort the import.
func (s *importService) ImportWords(ctx context.Context, userID string, r io.Reader) (*models.ImportSummary, error) {
	start := time.Now()

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	summary := &models.ImportSummary{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		summary.TotalRows++

		req, err := rowToRequest(row)
		if err != nil {
			summary.ErrorCount++
			summary.Errors = append(summary.Errors, models.ImportError{
				Row:     i + 1,
				Message: err.Error(),
			})
			continue
		}

		resp, err := s.words.Create(ctx, userID, req)
		if err != nil {
			summary.ErrorCount++
			summary.Errors = append(summary.Errors, models.ImportError{
				Row:     i + 1,
				Message: err.Error(),
			})
			continue
		}

		if resp.Created {
			summary.SuccessCount++
			summary.CreatedWords = append(summary.CreatedWords, resp.Word.ID)
		} else {
			summary.DuplicateCount++
		}
	}

	summary.ProcessingTime = time.Since(start)

	s.logger.Info("Word import finished",
		"user_id", userID,
		"total_rows", summary.TotalRows,
		"created", summary.SuccessCount,
		"duplicates", summary.DuplicateCount,
		"errors", summary.ErrorCount)

	return summary, nil
}

func rowToRequest(row []string) (*CreateWordRequest, error) {
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	dutch := cell(colDutch)
	translation := cell(colTranslation)
	if dutch == "" || translation == "" {
		return nil, fmt.Errorf("dutch and translation are required")
	}

	source := models.WordSource(strings.ToUpper(cell(colSource)))
	if source == "" {
		source = models.SourceEnglish
	}
	switch source {
	case models.SourceEnglish, models.SourceUkrainian, models.SourceRussian:
	default:
		return nil, fmt.Errorf("unknown source %q", source)
	}

	return &CreateWordRequest{
		Dutch:        dutch,
		Translation:  translation,
		Source:       source,
		PartOfSpeech: cell(colPartOfSpeech),
		Context:      cell(colContext),
		Example:      cell(colExample),
	}, nil
}
