package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"tasktrack/internal/task"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// Export writes tasks to w as json, csv or pdf. The JSON form is the
// same array a seed file accepts.
func Export(w io.Writer, tasks []task.Task, format string, filter task.Filter) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return exportJSON(w, tasks)
	case FormatCSV:
		return exportCSV(w, tasks)
	case FormatPDF:
		return exportPDF(w, tasks, filter)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func exportJSON(w io.Writer, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func exportCSV(w io.Writer, tasks []task.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "completed"}); err != nil {
		return err
	}
	for _, t := range tasks {
		if err := cw.Write([]string{strconv.Itoa(t.ID), t.Title, strconv.FormatBool(t.Completed)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportPDF(w io.Writer, tasks []task.Task, filter task.Filter) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Task Tracker", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Tracker")
	pdf.Ln(12)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(40, 6, fmt.Sprintf("Filter: %s (%d tasks)", filter, len(tasks)))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, t := range tasks {
		line := fmt.Sprintf("%4d  %s %s", t.ID, Checkbox(t.Completed), normalizeTitle(t.Title))
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}
	return pdf.Output(w)
}
