package voucher

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

// ErrRender возвращается при ошибке формирования PDF
var ErrRender = errors.New("voucher: failed to render pdf")

// ContentType MIME тип ваучера
const ContentType = "application/pdf"

const (
	dateTimeLayout = "Mon, Jan 2 2006 15:04"
	lineHeight     = 7.0
)

// Ширины колонок таблицы позиций, мм
var columns = []struct {
	title string
	width float64
	align string
}{
	{"Item", 95, "L"},
	{"Qty", 20, "C"},
	{"Unit price", 35, "R"},
	{"Amount", 35, "R"},
}

// Renderer формирует PDF ваучер для страницы подтверждения
type Renderer struct {
	company string
}

// NewRenderer создает генератор ваучеров
func NewRenderer(company string) *Renderer {
	return &Renderer{company: company}
}

// Render пишет ваучер брони в w
func (r *Renderer) Render(w io.Writer, record *domain.ReservationRecord) error {
	if record == nil {
		return fmt.Errorf("%w: empty reservation", ErrRender)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("%s voucher %s", record.ServiceName, record.ID), true)
	pdf.SetAuthor(r.company, true)
	pdf.SetCreationDate(record.CreatedAt)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(r.company), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, lineHeight, tr("Booking confirmation: "+record.ServiceName), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range summary(record) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, lineHeight, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, lineHeight, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	for _, col := range columns {
		pdf.CellFormat(col.width, lineHeight, col.title, "1", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range record.LineItems {
		cells := []string{
			item.Name,
			strconv.Itoa(item.Quantity),
			money(item.UnitPrice),
			money(item.LineTotal),
		}
		for i, col := range columns {
			pdf.CellFormat(col.width, lineHeight, tr(cells[i]), "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	// Множители, сборы и скидки показываются отдельно от позиций
	for _, c := range record.Quote.Breakdown {
		if !isAdjustment(c.Kind) {
			continue
		}
		pdf.CellFormat(columns[0].width+columns[1].width+columns[2].width, lineHeight, tr(c.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(columns[3].width, lineHeight, money(c.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(columns[0].width+columns[1].width+columns[2].width, lineHeight, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(columns[3].width, lineHeight, money(record.Total())+" "+record.Quote.Currency, "1", 1, "R", false, 0, "")

	if record.SameDay {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, "Same-day booking: our concierge team will call you to confirm availability.", "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

// summary строки шапки ваучера
func summary(record *domain.ReservationRecord) [][2]string {
	rows := [][2]string{
		{"Reservation", record.ID},
		{"Service", record.ServiceName},
		{"Starts", record.StartAt.Format(dateTimeLayout)},
	}
	if record.EndAt != nil {
		rows = append(rows, [2]string{"Ends", record.EndAt.Format(dateTimeLayout)})
	}
	if record.Party.Total > 0 {
		party := fmt.Sprintf("%d adults", record.Party.Adults)
		if record.Party.Children > 0 {
			party += fmt.Sprintf(", %d children", record.Party.Children)
		}
		rows = append(rows, [2]string{"Guests", party})
	}
	return rows
}

func isAdjustment(kind domain.ComponentKind) bool {
	switch kind {
	case domain.KindMultiplier, domain.KindFee, domain.KindDiscount:
		return true
	default:
		return false
	}
}

func money(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}
