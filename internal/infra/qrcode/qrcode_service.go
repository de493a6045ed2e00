package qrcode

import (
	"encoding/json"

	"campground/internal/domain/service"
	"campground/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const payloadTypeFollow = "follow"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// FollowPayload is the JSON encoded inside a follow QR code
type FollowPayload struct {
	UserID string `json:"user_id"`
	Type   string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateFollowQR renders a PNG that encodes a follow request for userID
func (s *qrcodeService) GenerateFollowQR(userID uuid.UUID) ([]byte, error) {
	payload, err := json.Marshal(FollowPayload{
		UserID: userID.String(),
		Type:   payloadTypeFollow,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	code, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}

// ParseFollowQR decodes scanned QR text and returns the user to follow
func (s *qrcodeService) ParseFollowQR(qrData string) (uuid.UUID, error) {
	var payload FollowPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if payload.Type != payloadTypeFollow {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", payload.Type)
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse user ID")
	}

	return userID, nil
}
