package catalog

import "github.com/m04kA/SMC-ConciergeBooking/internal/domain"

// Default возвращает каталоги услуг со стандартными тарифами
// Каждый вызов возвращает новую копию
func Default() *domain.Catalogs {
	return &domain.Catalogs{
		AirportTransfer: domain.AirportTransferCatalog{
			BasePrice:           100,
			RoundTripMultiplier: 1.8,
			CarSeatPrice:        10,
			MultiVehicleIDs:     []string{"suv"},
			Vehicles: domain.Options{
				{ID: "sedan", Name: "Sedan", Price: 0, Capacity: 4},
				{ID: "suv", Name: "SUV", Price: 25, Capacity: 6},
				{ID: "van", Name: "Van", Price: 60, Capacity: 10},
			},
		},
		BikeRental: domain.BikeRentalCatalog{
			Bikes: domain.Options{
				{ID: "city", Name: "City Bike", Price: 20},
				{ID: "mountain", Name: "Mountain Bike", Price: 30},
				{ID: "electric", Name: "Electric Bike", Price: 45},
				{ID: "kids", Name: "Kids Bike", Price: 12},
			},
			DeliveryFee: 25,
		},
		GolfCart: domain.GolfCartCatalog{
			Carts: domain.Options{
				{ID: "standard_4", Name: "4-Seater Cart", Price: 65, Capacity: 4},
				{ID: "standard_6", Name: "6-Seater Cart", Price: 85, Capacity: 6},
				{ID: "lifted_6", Name: "Lifted 6-Seater Cart", Price: 95, Capacity: 6},
			},
			DeliveryFee: 30,
		},
		YachtCharter: domain.YachtCharterCatalog{
			Yachts: domain.Options{
				{ID: "catamaran_42", Name: "42ft Catamaran", Price: 1200, Capacity: 12},
				{ID: "sport_yacht_55", Name: "55ft Sport Yacht", Price: 2200, Capacity: 15},
				{ID: "motor_yacht_80", Name: "80ft Motor Yacht", Price: 4500, Capacity: 20},
			},
			IncludedGuests:  6,
			ExtraGuestPrice: 50,
			Durations: []domain.DurationFactor{
				{Hours: 4, Multiplier: 1.0},
				{Hours: 6, Multiplier: 1.4},
				{Hours: 8, Multiplier: 1.75},
			},
			Catering: domain.Options{
				{ID: "none", Name: "No Catering", Price: 0},
				{ID: "basic", Name: "Basic Catering", Price: 300},
				{ID: "premium", Name: "Premium Catering", Price: 650},
			},
			WaterSports: domain.Options{
				{ID: "snorkel", Name: "Snorkeling Gear", Price: 60},
				{ID: "paddleboard", Name: "Paddleboard", Price: 80},
				{ID: "jet_ski", Name: "Jet Ski", Price: 250},
				{ID: "seabob", Name: "Seabob", Price: 400},
			},
			TransportFee: 75,
		},
		Decoration: domain.DecorationCatalog{
			Packages: domain.Options{
				{ID: "essential", Name: "Essential Package", Price: 250},
				{ID: "deluxe", Name: "Deluxe Package", Price: 450},
				{ID: "luxury", Name: "Luxury Package", Price: 800},
			},
			Occasions: domain.Factors{
				{ID: "birthday", Name: "Birthday", Value: 1.0},
				{ID: "anniversary", Name: "Anniversary", Value: 1.15},
				{ID: "proposal", Name: "Proposal", Value: 1.3},
				{ID: "wedding", Name: "Wedding", Value: 1.6},
			},
			Addons: domain.Options{
				{ID: "flowers", Name: "Fresh Flowers", Price: 120},
				{ID: "balloons", Name: "Balloon Arch", Price: 60},
				{ID: "photographer", Name: "Photographer", Price: 300},
				{ID: "cake", Name: "Celebration Cake", Price: 90},
			},
		},
		LiveMusic: domain.LiveMusicCatalog{
			Performers: domain.Options{
				{ID: "solo", Name: "Solo Artist", Price: 300},
				{ID: "duo", Name: "Duo", Price: 500},
				{ID: "trio", Name: "Trio", Price: 750},
				{ID: "band", Name: "Full Band", Price: 1200},
			},
			Sets: domain.Factors{
				{ID: "one_set", Name: "One Set (45 min)", Value: 1.0},
				{ID: "two_sets", Name: "Two Sets", Value: 1.8},
				{ID: "three_sets", Name: "Three Sets", Value: 2.5},
			},
			SoundSystemPrice: 150,
			TransportFee:     75,
		},
		IslandTour: domain.IslandTourCatalog{
			AdultPrice:       85,
			ChildPrice:       60,
			FreeMaxAge:       5,
			ChildMaxAge:      12,
			PrivateSurcharge: 150,
			PickupTime:       "08:00",
			ReturnTime:       "16:00",
		},
		CustomPackage: domain.CustomPackageCatalog{
			Items: domain.Options{
				{ID: "yoga_session", Name: "Beach Yoga Session", Price: 40, Category: "wellness", PerPerson: true},
				{ID: "spa_massage", Name: "Spa Massage", Price: 120, Category: "wellness", PerPerson: true},
				{ID: "snorkel_tour", Name: "Snorkel Tour", Price: 65, Category: "adventure", PerPerson: true},
				{ID: "atv_tour", Name: "ATV Tour", Price: 95, Category: "adventure", PerPerson: true},
				{ID: "private_chef", Name: "Private Chef Dinner", Price: 450, Category: "dining"},
				{ID: "sunset_dinner", Name: "Sunset Dinner", Price: 85, Category: "dining", PerPerson: true},
				{ID: "airport_pickup", Name: "Airport Pickup", Price: 100, Category: "transport"},
				{ID: "island_hopping", Name: "Island Hopping", Price: 180, Category: "excursion", PerPerson: true},
			},
			BundleMinCategories: 3,
			BundleDiscount:      0.10,
		},
	}
}
