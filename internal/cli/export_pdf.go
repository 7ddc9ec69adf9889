package cli

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// renderExportPDF generates the monthly attendance sheet and saves it to the
// given path.
func renderExportPDF(data exportData, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	// Document header
	m.AddRow(14,
		text.NewCol(12, "Attendance sheet", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%s %d", data.Month, data.Year), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4) // spacer

	// Day sections
	for _, day := range data.Days {
		dayLabel := fmt.Sprintf("%s %d, %s", day.Date.Month(), day.Date.Day(), day.Date.Weekday())
		worked := day.Worked
		if worked == "" {
			worked = "-"
		}

		m.AddRow(8,
			text.NewCol(9, dayLabel, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, worked, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: &pdfHeaderColor,
			}),
		)

		for _, r := range day.Records {
			label := r.Time + "  " + kindLabel(r.Kind)
			m.AddRow(5,
				text.NewCol(9, "  "+label, props.Text{Size: 9}),
				text.NewCol(3, r.Message, props.Text{
					Size:  8,
					Align: align.Right,
					Color: &pdfMutedColor,
				}),
			)
		}

		m.AddRow(4)
	}

	// Monthly total
	if data.Worked != "" {
		m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
		m.AddRow(8,
			text.NewCol(9, "Total", props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, data.Worked, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: &pdfHeaderColor,
			}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return err
	}
	return doc.Save(outputPath)
}
