package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/watchask/watchask/watchask/presenter/models"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	document models.Document
}

// NewPresenter is a *Presenter constructor
func NewPresenter(doc models.Document) *Presenter {
	return &Presenter{
		document: doc,
	}
}

// Present renders the question set as a terminal table
func (p *Presenter) Present(output io.Writer) error {
	if len(p.document.Questions) == 0 {
		_, err := io.WriteString(output, "No questions generated\n")
		return err
	}

	rs := getRows(p.document)

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"#", "Time", "Question", "Answer", "Difficulty"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(rs.Render())
	table.Render()

	if p.document.Summary != nil {
		s := p.document.Summary
		fmt.Fprintf(output, "\nScore: %d/%d (%.1f%%) - %s\n", s.Score, s.Total, s.Percentage, s.Grade)
	}

	return nil
}

type rows []row

type row struct {
	Number     string
	Timestamp  string
	Question   string
	Answer     string
	Difficulty string
}

func getRows(doc models.Document) rows {
	var rs rows
	for i, q := range doc.Questions {
		rs = append(rs, row{
			Number:     fmt.Sprintf("%d", i+1),
			Timestamp:  q.Timestamp,
			Question:   q.Question,
			Answer:     q.Answer,
			Difficulty: q.Difficulty,
		})
	}
	return rs
}

func (r row) Columns() []string {
	return []string{r.Number, r.Timestamp, r.Question, r.Answer, r.Difficulty}
}

func (r row) String() string {
	return strings.Join(r.Columns(), "|")
}

func (rs rows) Render() [][]string {
	out := make([][]string, len(rs))
	for idx, r := range rs {
		out[idx] = r.Columns()
	}
	return out
}
