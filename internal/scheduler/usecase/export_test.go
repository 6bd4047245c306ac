package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"reflect"
	"strings"
	"testing"

	"privassistant/internal/model"
)

func exportFixture() []model.Task {
	return []model.Task{
		{
			ID: "t1", Title: "Team Meeting", Date: "2026-01-05",
			StartTime: "17:00", EndTime: "17:30",
			Category: model.CategoryWork, Color: "bg-blue-500",
		},
		{
			ID: "t2", Title: "Someday", // no date, no start
			Category: model.CategoryPersonal, Color: "bg-green-500",
			Completed: true,
		},
	}
}

func TestExportCSV(t *testing.T) {
	store := &mockStore{tasks: exportFixture()}
	uc := newTestUseCase(store)

	data, err := uc.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if !reflect.DeepEqual(records[0], csvHeader) {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "t1" || records[1][1] != "Team Meeting" {
		t.Errorf("row 1 = %v", records[1])
	}
	if records[2][7] != "true" {
		t.Errorf("completed column = %q, want true", records[2][7])
	}
}

func TestExportICS(t *testing.T) {
	store := &mockStore{tasks: exportFixture()}
	uc := newTestUseCase(store)

	data, err := uc.ExportICS(context.Background())
	if err != nil {
		t.Fatalf("ExportICS: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Error("output missing VCALENDAR envelope")
	}
	if !strings.Contains(out, "SUMMARY:Team Meeting") {
		t.Error("output missing dated task summary")
	}
	// The dateless task cannot become an event.
	if strings.Contains(out, "Someday") {
		t.Error("dateless task exported as event")
	}
	if strings.Count(out, "BEGIN:VEVENT") != 1 {
		t.Errorf("expected 1 event, output:\n%s", out)
	}
}

func TestExportPDF(t *testing.T) {
	store := &mockStore{tasks: exportFixture()}
	uc := newTestUseCase(store)

	data, err := uc.ExportPDF(context.Background())
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestExportPDFEmptyStore(t *testing.T) {
	store := &mockStore{}
	uc := newTestUseCase(store)

	data, err := uc.ExportPDF(context.Background())
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty store produced no document")
	}
}

func TestPDFLine(t *testing.T) {
	line := pdfLine(model.Task{
		Title: "Team Meeting", Date: "2026-01-05",
		StartTime: "17:00", EndTime: "17:30",
		Category: model.CategoryWork, Completed: true,
	})
	want := "[x] Team Meeting | 2026-01-05 17:00-17:30 | work"
	if line != want {
		t.Errorf("pdfLine = %q, want %q", line, want)
	}
}
