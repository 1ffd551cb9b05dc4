package share

import (
	qrcode "github.com/skip2/go-qrcode"

	"gigglesgo/structs"
)

const qrSize = 256

// QRCode renders the event's share URL as a PNG, sized for on-screen display.
func QRCode(ev structs.Event) ([]byte, error) {
	png, err := qrcode.Encode(EventURL(ev), qrcode.Medium, qrSize)
	if err != nil {
		return nil, &structs.CollaboratorError{Op: "render share QR", Err: err}
	}
	return png, nil
}
