package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sunubank/demobank/internal/services"
)

type QRHandler struct {
	qr *services.QRService
}

func NewQRHandler(qr *services.QRService) *QRHandler {
	return &QRHandler{qr: qr}
}

// GenerateQR renders the user's account share code
// @Summary Account share QR code
// @Tags qr
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 404 {object} services.ErrorResponse
// @Router /qr/account [get]
func (h *QRHandler) GenerateQR(w http.ResponseWriter, r *http.Request) {
	payload, image, err := h.qr.GenerateAccountQR(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrNoAccount) {
			status = http.StatusNotFound
		}
		services.SendErrorResponse(w, err.Error(), status, nil)
		return
	}
	services.SendJSON(w, http.StatusOK, map[string]string{
		"payload":   payload,
		"qrImage":   image,
		"mediaType": "image/png",
	})
}

// DecodeQR unpacks a previously generated share payload
// @Summary Decode account share payload
// @Tags qr
// @Accept json
// @Produce json
// @Param payload body object{payload=string} true "Share payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} services.ErrorResponse
// @Router /qr/decode [post]
func (h *QRHandler) DecodeQR(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Payload string `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	decoded, err := h.qr.DecodeAccountQR(req.Payload)
	if err != nil {
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
		return
	}
	services.SendJSON(w, http.StatusOK, decoded)
}
