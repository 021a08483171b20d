package qrcode

import (
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"homeat/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service whose codes link to baseURL/recipes/{id}.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// RecipeLink is the absolute URL a share code points to.
func (s *qrcodeService) RecipeLink(recipeID int64) string {
	return s.baseURL + "/recipes/" + strconv.FormatInt(recipeID, 10)
}

// GenerateRecipeQR renders the recipe link as a PNG.
func (s *qrcodeService) GenerateRecipeQR(recipeID int64) ([]byte, error) {
	qrCode, err := qrcode.New(s.RecipeLink(recipeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseRecipeQR reads the recipe ID back out of a scanned link.
func (s *qrcodeService) ParseRecipeQR(content string) (int64, error) {
	u, err := url.Parse(strings.TrimSpace(content))
	if err != nil {
		return 0, fmt.Errorf("failed to parse QR content: %w", err)
	}

	dir, last := path.Split(strings.TrimRight(u.Path, "/"))
	if path.Base(strings.TrimRight(dir, "/")) != "recipes" {
		return 0, fmt.Errorf("not a recipe link: %s", content)
	}

	id, err := strconv.ParseInt(last, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid recipe id in QR content: %q", last)
	}

	return id, nil
}
