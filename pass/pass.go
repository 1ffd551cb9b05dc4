// Package pass renders a printable confirmation pass for registered events:
// a one-page PDF with the event details and a signed check-in QR.
package pass

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"gigglesgo/structs"
)

// Signer signs the check-in payload so the door scanner can verify it
// offline.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// QRPayload is eventID|attendee|signature; the scanner recomputes the HMAC
// over the first two fields.
func (s *Signer) QRPayload(ev structs.Event, attendee string) string {
	data := fmt.Sprintf("%d|%s", ev.ID, attendee)
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return data + "|" + sig
}

// Verify checks a scanned payload against the signing key.
func (s *Signer) Verify(payload string) bool {
	i := lastPipe(payload)
	if i < 0 {
		return false
	}
	data, sig := payload[:i], payload[i+1:]
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(data))
	want := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(sig), []byte(want))
}

func lastPipe(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '|' {
			return i
		}
	}
	return -1
}

// RenderPDF builds the confirmation pass document.
func RenderPDF(ev structs.Event, attendee string, signer *Signer) ([]byte, error) {
	qrPNG, err := qrcode.Encode(signer.QRPayload(ev, attendee), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Event Registration Pass")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Event: %s", ev.Title))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s at %s", ev.Date, ev.Time))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Location: %s", ev.Location))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Attendee: %s", attendee))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Organizer: %s", ev.Organizer))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
