package seeders

import (
	"log"

	"emptyleg-marketplace/models/airport"

	"gorm.io/gorm"
)

func ptr(v float64) *float64 { return &v }

// SeedAirports inserts the base set of approved airports. Existing codes
// are left untouched so operator-submitted rows survive reseeding.
func SeedAirports(db *gorm.DB) {
	log.Printf("🔍 Checking airport data integrity...")

	airports := []airport.Airport{
		{Code: "TEB", Name: "Teterboro Airport", City: "Teterboro", Country: "United States", Latitude: ptr(40.850103), Longitude: ptr(-74.060837)},
		{Code: "VNY", Name: "Van Nuys Airport", City: "Los Angeles", Country: "United States", Latitude: ptr(34.209811), Longitude: ptr(-118.489972)},
		{Code: "PBI", Name: "Palm Beach International Airport", City: "West Palm Beach", Country: "United States", Latitude: ptr(26.683161), Longitude: ptr(-80.095589)},
		{Code: "OPF", Name: "Miami-Opa Locka Executive Airport", City: "Miami", Country: "United States", Latitude: ptr(25.907000), Longitude: ptr(-80.278397)},
		{Code: "HPN", Name: "Westchester County Airport", City: "White Plains", Country: "United States", Latitude: ptr(41.066983), Longitude: ptr(-73.707573)},
		{Code: "LAS", Name: "Harry Reid International Airport", City: "Las Vegas", Country: "United States", Latitude: ptr(36.086010), Longitude: ptr(-115.153969)},
		{Code: "ASE", Name: "Aspen/Pitkin County Airport", City: "Aspen", Country: "United States", Latitude: ptr(39.223202), Longitude: ptr(-106.868897)},
		{Code: "SDL", Name: "Scottsdale Airport", City: "Scottsdale", Country: "United States", Latitude: ptr(33.622898), Longitude: ptr(-111.910500)},
		{Code: "DAL", Name: "Dallas Love Field", City: "Dallas", Country: "United States", Latitude: ptr(32.847099), Longitude: ptr(-96.851799)},
		{Code: "MDW", Name: "Chicago Midway International Airport", City: "Chicago", Country: "United States", Latitude: ptr(41.785999), Longitude: ptr(-87.752403)},
		{Code: "LTN", Name: "London Luton Airport", City: "London", Country: "United Kingdom", Latitude: ptr(51.874699), Longitude: ptr(-0.368333)},
		{Code: "FAB", Name: "Farnborough Airport", City: "Farnborough", Country: "United Kingdom", Latitude: ptr(51.275799), Longitude: ptr(-0.776333)},
		{Code: "LBG", Name: "Paris-Le Bourget Airport", City: "Paris", Country: "France", Latitude: ptr(48.969398), Longitude: ptr(2.441390)},
		{Code: "NCE", Name: "Nice Cote d'Azur International Airport", City: "Nice", Country: "France", Latitude: ptr(43.658401), Longitude: ptr(7.215870)},
		{Code: "GVA", Name: "Geneva Cointrin International Airport", City: "Geneva", Country: "Switzerland", Latitude: ptr(46.238098), Longitude: ptr(6.108950)},
		{Code: "ZRH", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland", Latitude: ptr(47.464699), Longitude: ptr(8.549170)},
		{Code: "IBZ", Name: "Ibiza Airport", City: "Ibiza", Country: "Spain", Latitude: ptr(38.872898), Longitude: ptr(1.373120)},
		{Code: "PMI", Name: "Palma de Mallorca Airport", City: "Palma de Mallorca", Country: "Spain", Latitude: ptr(39.551701), Longitude: ptr(2.738810)},
		{Code: "OLB", Name: "Olbia Costa Smeralda Airport", City: "Olbia", Country: "Italy", Latitude: ptr(40.898701), Longitude: ptr(9.517630)},
		{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates", Latitude: ptr(25.252800), Longitude: ptr(55.364399)},
	}

	var existingCodes []string
	if err := db.Model(&airport.Airport{}).
		Where("status = ?", airport.AirportStatusApproved).
		Pluck("code", &existingCodes).Error; err != nil {
		log.Printf("❌ Failed to fetch existing airport codes: %v", err)
		return
	}

	existingCodesMap := make(map[string]bool)
	for _, code := range existingCodes {
		existingCodesMap[code] = true
	}

	var missing []airport.Airport
	for _, a := range airports {
		if !existingCodesMap[a.Code] {
			a.Status = airport.AirportStatusApproved
			missing = append(missing, a)
		}
	}

	log.Printf("📊 Data integrity check:")
	log.Printf("   Expected airports: %d", len(airports))
	log.Printf("   Existing approved: %d", len(existingCodes))
	log.Printf("   Missing airports: %d", len(missing))

	if len(missing) == 0 {
		log.Printf("✅ All seed airports are already present. No seeding needed.")
		return
	}

	log.Printf("🌱 Seeding %d missing airports...", len(missing))

	successCount := 0
	failureCount := 0
	for _, a := range missing {
		if err := db.Create(&a).Error; err != nil {
			log.Printf("❌ Failed to seed airport %s (%s): %v", a.Name, a.Code, err)
			failureCount++
		} else {
			log.Printf("✅ Added: %s (%s)", a.Name, a.Code)
			successCount++
		}
	}

	log.Printf("🎉 Seeding completed! Successfully inserted %d airports, %d failures", successCount, failureCount)
}
