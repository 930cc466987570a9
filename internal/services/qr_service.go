package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image/png"
	"time"

	"github.com/skip2/go-qrcode"
	"github.com/sunubank/demobank/internal/config"
)

var ErrNoAccount = errors.New("no account to share")

// QRService renders the current user's account details as a QR code so
// another client can pre-fill a transfer towards them.
type QRService struct {
	cfg      *config.AppConfig
	session  *SessionService
	accounts *AccountService
}

func NewQRService(cfg *config.AppConfig, session *SessionService, accounts *AccountService) *QRService {
	return &QRService{cfg: cfg, session: session, accounts: accounts}
}

// GenerateAccountQR returns the encoded payload and a base64 PNG of the QR
// code for the user's first account.
func (s *QRService) GenerateAccountQR(ctx context.Context) (string, string, error) {
	accounts := s.accounts.List(ctx)
	if len(accounts) == 0 {
		return "", "", ErrNoAccount
	}
	user := s.session.CurrentUser(ctx)

	qrData := map[string]any{
		"accountNumber": accounts[0].AccountNumber,
		"accountName":   user.Name,
		"bank":          s.cfg.BankBrand,
		"currency":      s.cfg.Currency,
		"timestamp":     time.Now().Unix(),
	}

	jsonData, err := json.Marshal(qrData)
	if err != nil {
		return "", "", err
	}
	payload := base64.URLEncoding.EncodeToString(jsonData)

	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return "", "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(256)); err != nil {
		return "", "", err
	}

	return payload, base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeAccountQR unpacks a payload produced by GenerateAccountQR.
func (s *QRService) DecodeAccountQR(payload string) (map[string]any, error) {
	data, err := base64.URLEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.New("invalid QR payload")
	}
	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.New("invalid QR payload")
	}
	return result, nil
}
