package generate_quote

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

const (
	pdfTitle      = "DEVIS - SB Nettoyage"
	pdfDateFormat = "02/01/2006"
	pdfFont       = "Helvetica"
	pdfLineHeight = 7.0
)

// renderPDF рисует одностраничное предложение A4
func renderPDF(w io.Writer, q *domain.Quote, addOnLabels map[string]string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(q.CreatedAt)
	pdf.SetTitle(pdfTitle, true)
	pdf.SetAuthor("SB Nettoyage", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont(pdfFont, "B", 18)
	pdf.CellFormat(0, 12, tr(pdfTitle), "", 1, "C", false, 0, "")
	pdf.SetFont(pdfFont, "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Devis n° %s", q.ID)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	line := func(label, value string) {
		pdf.SetFont(pdfFont, "B", 11)
		pdf.CellFormat(50, pdfLineHeight, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont(pdfFont, "", 11)
		pdf.CellFormat(0, pdfLineHeight, tr(value), "", 1, "L", false, 0, "")
	}

	line("Date :", q.CreatedAt.Format(pdfDateFormat))
	line("Valable jusqu'au :", q.ValidUntil.Format(pdfDateFormat))
	pdf.Ln(4)

	line("Client :", q.CompanyName)
	line("Contact :", q.ContactName)
	if q.Email != "" {
		line("Email :", q.Email)
	}
	if q.Phone != "" {
		line("Téléphone :", q.Phone)
	}
	pdf.Ln(4)

	line("Service :", string(q.ServiceType))
	line("Surface :", fmt.Sprintf("%g m²", q.Surface))
	line("Fréquence :", string(q.Frequency))
	if len(q.AdditionalServices) > 0 {
		labels := make([]string, 0, len(q.AdditionalServices))
		for _, id := range q.AdditionalServices {
			if label, ok := addOnLabels[id]; ok {
				labels = append(labels, label)
				continue
			}
			labels = append(labels, id)
		}
		line("Options :", strings.Join(labels, ", "))
	}
	pdf.Ln(4)

	line("Prix de base :", formatEuro(q.BasePrice))
	if q.Discount > 0 {
		line("Remise fréquence :", "-"+formatEuro(q.Discount))
	}
	if q.AdditionalServicesPrice > 0 {
		line("Options :", formatEuro(q.AdditionalServicesPrice))
	}
	if q.PromoCode != "" {
		line("Code promo :", fmt.Sprintf("%s (-%g%%)", q.PromoCode, q.PromoDiscount))
	}

	pdf.Ln(2)
	pdf.SetFont(pdfFont, "B", 14)
	pdf.CellFormat(0, 10, tr("Prix estimé : "+formatEuro(q.TotalPrice)), "T", 1, "R", false, 0, "")

	return pdf.Output(w)
}

func formatEuro(v float64) string {
	return fmt.Sprintf("%.2f €", v)
}
