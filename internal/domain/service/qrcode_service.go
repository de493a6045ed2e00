package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateFollowQR generates a QR code that lets a scanner follow the user
	GenerateFollowQR(userID uuid.UUID) ([]byte, error)

	// ParseFollowQR parses QR code data and returns the user ID to follow
	ParseFollowQR(qrData string) (uuid.UUID, error)
}
