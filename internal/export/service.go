package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/posters-science/poster-tracker/internal/entity"
	"github.com/posters-science/poster-tracker/internal/repository"
)

// Service is a tiny façade over the poster repository that produces XLSX
// bytes for inventory exports.
type Service struct {
	posters repository.PosterRepository
	logger  *slog.Logger
}

func NewService(posters repository.PosterRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{posters: posters, logger: logger}
}

// ExportPostersXLSX returns an XLSX workbook (as bytes) listing the user's
// posters, one row per poster.
func (s *Service) ExportPostersXLSX(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	start := time.Now()

	posters, err := s.posters.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query posters: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Posters"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Title",
		"Status",
		"Research Field",
		"Conference",
		"DOI",
		"Created",
		"Published",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, p := range posters {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, truncate(p.Title, 140))
		write(2, string(p.Status))
		write(3, metaDomain(p.Metadata))
		write(4, metaConference(p.Metadata))
		write(5, metaDOI(p.Metadata))
		write(6, p.CreatedAt.UTC().Format("2006-01-02"))
		if p.PublishedAt != nil {
			write(7, p.PublishedAt.UTC().Format("2006-01-02"))
		} else {
			write(7, "")
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 48) // title
	_ = f.SetColWidth(sheet, "B", "B", 12) // status
	_ = f.SetColWidth(sheet, "C", "C", 22) // field
	_ = f.SetColWidth(sheet, "D", "D", 36) // conference
	_ = f.SetColWidth(sheet, "E", "E", 28) // doi
	_ = f.SetColWidth(sheet, "F", "G", 12) // dates

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"rows", len(posters),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func metaDomain(m *entity.PosterMetadata) string {
	if m == nil {
		return ""
	}
	return m.Domain
}

func metaConference(m *entity.PosterMetadata) string {
	if m == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	if m.ConferenceName != "" {
		parts = append(parts, m.ConferenceName)
	}
	if m.ConferenceLocation != "" {
		parts = append(parts, m.ConferenceLocation)
	}
	return strings.Join(parts, ", ")
}

func metaDOI(m *entity.PosterMetadata) string {
	if m == nil {
		return ""
	}
	return m.DOI
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	// Back up to a rune boundary so the cut never leaves invalid UTF-8.
	cut := n - 1
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
