package domain

// The three sub-brands the business operates under. Leads and gallery
// submissions are tagged with the brand they belong to.
const (
	BrandCocktails = "cocktails" // event cocktail services
	BrandStaffing  = "staffing"  // bar staffing
	BrandAcademy   = "academy"   // bartender training
)

// ValidBrand reports whether brand is one of the known sub-brands.
func ValidBrand(brand string) bool {
	switch brand {
	case BrandCocktails, BrandStaffing, BrandAcademy:
		return true
	}
	return false
}
