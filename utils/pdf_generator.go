package utils

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"transportledger/models"
	"transportledger/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

//go:embed templates/*.html
var templateFS embed.FS

var invoiceTemplates = template.Must(template.New("").Funcs(template.FuncMap{
	"inr":  FormatINR,
	"date": FormatDate,
	"inc":  func(i int) int { return i + 1 },
	"datep": func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return FormatDate(*t)
	},
}).ParseFS(templateFS, "templates/*.html"))

var (
	transportCopyTitles = []string{"Original for Recipient", "Office Copy"}
	ownerCopyTitles     = []string{"Owner Copy"}
)

// RenderTransportInvoiceHTML renders every copy of a transport bill invoice as one HTML page.
func RenderTransportInvoiceHTML(bill *models.TransportBill, profile *models.ProfileData, bank *models.BankData, image string) (string, error) {
	var copies []models.InvoicePDFData
	for _, title := range transportCopyTitles {
		copies = append(copies, models.InvoicePDFData{
			Profile:      profile,
			Bank:         bank,
			ProfileImage: imageURL(image),
			Bill:         bill,
			Date:         FormatDate(bill.Date),
			Total:        FormatINR(bill.Total),
			TotalWords:   NumberToCurrencyWords(bill.Total),
			CopyTitle:    title,
		})
	}
	return renderCopies("transport_invoice.html", copies)
}

// RenderOwnerSlipHTML renders the lorry hire slip for an owner record.
func RenderOwnerSlipHTML(rec *models.OwnerRecord, profile *models.ProfileData, bank *models.BankData, image string) (string, error) {
	var copies []models.InvoicePDFData
	for _, title := range ownerCopyTitles {
		copies = append(copies, models.InvoicePDFData{
			Profile:      profile,
			Bank:         bank,
			ProfileImage: imageURL(image),
			Owner:        rec,
			Date:         FormatDate(rec.Date),
			Total:        FormatINR(rec.TotalLorryHireRs),
			TotalWords:   NumberToCurrencyWords(rec.TotalLorryHireRs),
			CopyTitle:    title,
		})
	}
	return renderCopies("owner_slip.html", copies)
}

// only data:image URLs are trusted as image sources
func imageURL(s string) template.URL {
	if strings.HasPrefix(s, "data:image/") {
		return template.URL(s)
	}
	return ""
}

func renderCopies(name string, copies []models.InvoicePDFData) (string, error) {
	var body bytes.Buffer
	for _, data := range copies {
		if data.Profile == nil {
			data.Profile = &models.ProfileData{}
		}
		var buf bytes.Buffer
		if err := invoiceTemplates.ExecuteTemplate(&buf, name, data); err != nil {
			return "", err
		}
		// Each copy stays whole on a page
		body.WriteString("<div class='invoice-copy'>")
		body.Write(buf.Bytes())
		body.WriteString("</div>")
	}

	var out bytes.Buffer
	if err := invoiceTemplates.ExecuteTemplate(&out, "layout.html", template.HTML(body.String())); err != nil {
		return "", err
	}
	return out.String(), nil
}

// TransportInvoiceHTML loads a bill and the settings and renders its invoice.
// It returns "" when the bill does not exist.
func TransportInvoiceHTML(ctx context.Context, repo *repository.PDFRepository, billNumber string) (string, error) {
	bill, err := repo.GetTransportBillForPDF(ctx, billNumber)
	if err != nil || bill == nil {
		return "", err
	}
	profile, bank, image, err := repo.GetSettingsForPDF(ctx)
	if err != nil {
		return "", err
	}
	return RenderTransportInvoiceHTML(bill, profile, bank, image)
}

// OwnerSlipHTML returns "" when the owner record does not exist.
func OwnerSlipHTML(ctx context.Context, repo *repository.PDFRepository, recordID string) (string, error) {
	rec, err := repo.GetOwnerRecordForPDF(ctx, recordID)
	if err != nil || rec == nil {
		return "", err
	}
	profile, bank, image, err := repo.GetSettingsForPDF(ctx)
	if err != nil {
		return "", err
	}
	return RenderOwnerSlipHTML(rec, profile, bank, image)
}

// PrintHTMLToPDF prints an HTML document to an A4 PDF with headless Chrome.
func PrintHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	tmpHTML := filepath.Join(os.TempDir(), "invoice_"+GenerateID()+".html")
	if err := os.WriteFile(tmpHTML, []byte(html), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuf []byte
	err := chromedp.Run(cctx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
