package service

// QRCodeService defines the interface for recipe share codes
type QRCodeService interface {
	// GenerateRecipeQR renders a PNG QR code pointing at the recipe page
	GenerateRecipeQR(recipeID int64) ([]byte, error)

	// ParseRecipeQR extracts the recipe ID from decoded QR content
	ParseRecipeQR(content string) (int64, error)
}
