// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

// QRHandler serves a QR code pointing players at the game's public URL.
type QRHandler struct {
	publicURL string
}

// NewQRHandler creates a new QR handler. An empty publicURL disables the
// endpoint.
func NewQRHandler(publicURL string) *QRHandler {
	return &QRHandler{publicURL: publicURL}
}

// HandleQR handles GET /qr requests with a PNG share code.
func (h *QRHandler) HandleQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if h.publicURL == "" {
		writeError(w, http.StatusNotFound, "not_configured", errors.New("no public URL configured"))
		return
	}
	png, err := qrcode.Encode(h.publicURL, qrcode.Medium, qrSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
