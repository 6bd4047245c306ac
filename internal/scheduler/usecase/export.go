package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/jung-kurt/gofpdf"

	"privassistant/internal/model"
	"privassistant/internal/scheduler/engine"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{"id", "title", "startTime", "endTime", "category", "date", "color", "completed"}

// ExportCSV renders the full store contents as CSV.
func (uc *implUseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	tasks, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range tasks {
		record := []string{
			t.ID, t.Title, t.StartTime, t.EndTime,
			string(t.Category), t.Date, t.Color,
			strconv.FormatBool(t.Completed),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportICS renders the store as an iCalendar file, one VEVENT per
// dated task. Tasks without a date or start time are skipped.
func (uc *implUseCase) ExportICS(ctx context.Context) ([]byte, error) {
	tasks, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, t := range tasks {
		if t.Date == "" || t.StartTime == "" {
			continue
		}

		start, err := time.ParseInLocation(engine.DateLayout+" 15:04", t.Date+" "+t.StartTime, time.Local)
		if err != nil {
			uc.l.Warnf(ctx, "ExportICS: skipping task %s: %v", t.ID, err)
			continue
		}

		// Default 1 hour when no end time survives parsing.
		end := start.Add(time.Hour)
		if t.EndTime != "" {
			if e, err := time.ParseInLocation(engine.DateLayout+" 15:04", t.Date+" "+t.EndTime, time.Local); err == nil {
				end = e
			}
		}

		ev := cal.AddEvent(t.ID)
		ev.SetSummary(t.Title)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetDescription("Category: " + string(t.Category))
	}

	return []byte(cal.Serialize()), nil
}

// ExportPDF renders the store as a one-page-per-overflow PDF task
// list.
func (uc *implUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	tasks, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Scheduled Tasks", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	if len(tasks) == 0 {
		pdf.CellFormat(0, 10, "No tasks found", "", 1, "C", false, 0, "")
	} else {
		for _, t := range tasks {
			pdf.CellFormat(0, 8, pdfLine(t), "", 1, "L", false, 0, "")
			pdf.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfLine(t model.Task) string {
	mark := "[ ]"
	if t.Completed {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s | %s %s", mark, t.Title, t.Date, t.StartTime)
	if t.EndTime != "" {
		line += "-" + t.EndTime
	}
	return line + " | " + string(t.Category)
}
