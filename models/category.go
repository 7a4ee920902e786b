package models

// Canonical category list. The two client builds ship disagreeing
// (and misspelled) lists, so the server validates against its own set
// and never trusts the client's.
const (
	CategoryPolice      = "Police"
	CategoryImmigration = "Immigration Enforcement"
	CategoryParking     = "Parking Enforcement"
	CategoryRobbery     = "Robbery"
	CategoryTrespassing = "Trespassing"
	CategoryCSO         = "CSO"
	CategoryHome        = "Home"
	CategoryWork        = "Work"
	CategoryCar         = "Car"
	CategoryGeneral     = "General"
)

var validCategories = map[string]struct{}{
	CategoryPolice:      {},
	CategoryImmigration: {},
	CategoryParking:     {},
	CategoryRobbery:     {},
	CategoryTrespassing: {},
	CategoryCSO:         {},
	CategoryHome:        {},
	CategoryWork:        {},
	CategoryCar:         {},
	CategoryGeneral:     {},
}

// IsValidCategory reports whether c is on the canonical list.
func IsValidCategory(c string) bool {
	_, ok := validCategories[c]
	return ok
}

// CategoryMatches reports whether a watch zone of zoneCategory should
// react to a pin of pinCategory. A General zone matches every pin;
// every other category matches strictly.
func CategoryMatches(zoneCategory, pinCategory string) bool {
	if zoneCategory == CategoryGeneral {
		return true
	}
	return zoneCategory == pinCategory
}
