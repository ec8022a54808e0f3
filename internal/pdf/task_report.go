package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/chris-kelly1/WeDo/internal/models"
)

// Generator renders task reports; an interface so handlers can be tested
// without producing real PDFs.
type Generator interface {
	TaskReport(data ReportData, w io.Writer) error
}

type ReportData struct {
	User        models.User
	Tasks       []models.Task
	GeneratedAt time.Time
}

type TaskReportGenerator struct{}

func NewTaskReportGenerator() *TaskReportGenerator {
	return &TaskReportGenerator{}
}

func (g *TaskReportGenerator) TaskReport(data ReportData, w io.Writer) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("WeDo task report for %s", data.User.Name), false)
	doc.SetAuthor("WeDo", false)
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, "WeDo Task Report", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("%s (@%s)  —  %s",
		data.User.Name, data.User.Username,
		data.GeneratedAt.Format("January 2, 2006"))
	doc.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	hr(doc)
	doc.Ln(3)

	completed := 0
	for _, t := range data.Tasks {
		if t.Completed {
			completed++
		}
	}
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, fmt.Sprintf("%d tasks, %d completed, streak %d",
		len(data.Tasks), completed, data.User.Streak), "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(12, 7, "Done", "B", 0, "L", false, 0, "")
	doc.CellFormat(88, 7, "Task", "B", 0, "L", false, 0, "")
	doc.CellFormat(30, 7, "Priority", "B", 0, "L", false, 0, "")
	doc.CellFormat(40, 7, "Due", "B", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, t := range data.Tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		due := t.DueDate.Format("2006-01-02")
		if t.DueTime != "" {
			due += " " + t.DueTime
		}
		doc.CellFormat(12, 6, mark, "", 0, "L", false, 0, "")
		doc.CellFormat(88, 6, t.Title, "", 0, "L", false, 0, "")
		doc.CellFormat(30, 6, string(t.Priority), "", 0, "L", false, 0, "")
		doc.CellFormat(40, 6, due, "", 1, "L", false, 0, "")
	}
	if len(data.Tasks) == 0 {
		doc.CellFormat(0, 6, "No tasks yet.", "", 1, "L", false, 0, "")
	}

	return doc.Output(w)
}

func hr(doc *gofpdf.Fpdf) {
	x, y := doc.GetXY()
	doc.SetDrawColor(180, 180, 180)
	doc.Line(20, y+1, 190, y+1)
	doc.SetXY(x, y+3)
}
