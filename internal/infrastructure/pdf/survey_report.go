// Package pdf implementa la generación del reporte de resultados de una
// encuesta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la encuesta  │  Fecha de generación       │
//	│  Descripción + total de envíos                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Pregunta | Tipo | Respuestas | Promedio              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/survey-pro/internal/application/usecase"
	"github.com/tu-usuario/survey-pro/internal/domain/entity"
	"github.com/tu-usuario/survey-pro/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.SurveyReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

var _ usecase.SurveyReportGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSurveyReportPDF genera el PDF de resultados y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSurveyReportPDF(
	_ context.Context,
	survey *entity.Survey,
	stats *repository.SurveyStatsResult,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de encuesta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(survey, stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, q := range stats.Questions {
		m.AddRows(questionRow(q))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + descripción (izq) y fecha + total de envíos (der).
func headerRow(survey *entity.Survey, stats *repository.SurveyStatsResult) core.Row {
	return row.New(20).Add(
		col.New(8).Add(
			text.New(survey.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(survey.Description, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("RESULTADOS DE ENCUESTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Envíos: %d", stats.SubmissionCount), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 12,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(7).Add(
		col.New(6).Add(text.New("Pregunta", header)),
		col.New(2).Add(text.New("Tipo", header)),
		col.New(2).Add(text.New("Respuestas", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
		col.New(2).Add(text.New("Promedio", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
	)
}

func questionRow(q repository.QuestionStatsResult) core.Row {
	avg := "-"
	if q.AverageScale.Valid {
		avg = q.AverageScale.Decimal.StringFixed(2)
	}
	return row.New(6).Add(
		col.New(6).Add(text.New(q.QuestionText, props.Text{Size: 8})),
		col.New(2).Add(text.New(q.Kind, props.Text{Size: 8, Color: colorGray})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", q.AnswerCount), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(avg, props.Text{Size: 8, Align: align.Right})),
	)
}

func footerRow() core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New("Generado por survey-pro. Promedios calculados solo sobre preguntas de escala 1..5", props.Text{
				Size: 7, Color: colorGray, Align: align.Center, Top: 2,
			}),
		),
	)
}
