package domain

// Option позиция каталога (транспорт, велосипед, яхта, пакет, доп. услуга)
type Option struct {
	ID        string  `toml:"id" json:"id"`
	Name      string  `toml:"name" json:"name"`
	Price     float64 `toml:"price" json:"price"`
	Capacity  int     `toml:"capacity" json:"capacity,omitempty"`
	Category  string  `toml:"category" json:"category,omitempty"`
	PerPerson bool    `toml:"per_person" json:"perPerson,omitempty"`
}

// Options список позиций каталога
type Options []Option

// Find ищет позицию по точному совпадению ID
func (o Options) Find(id string) (Option, bool) {
	for _, opt := range o {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Factor именованный множитель (повод, количество сетов)
type Factor struct {
	ID    string  `toml:"id" json:"id"`
	Name  string  `toml:"name" json:"name"`
	Value float64 `toml:"value" json:"value"`
}

// Factors список множителей
type Factors []Factor

// Find ищет множитель по ID
func (f Factors) Find(id string) (Factor, bool) {
	for _, factor := range f {
		if factor.ID == id {
			return factor, true
		}
	}
	return Factor{}, false
}

// DurationFactor множитель цены для длительности в часах
type DurationFactor struct {
	Hours      int     `toml:"hours" json:"hours"`
	Multiplier float64 `toml:"multiplier" json:"multiplier"`
}

// AirportTransferCatalog тарифы трансфера
type AirportTransferCatalog struct {
	BasePrice           float64  `toml:"base_price" json:"basePrice"`
	RoundTripMultiplier float64  `toml:"round_trip_multiplier" json:"roundTripMultiplier"`
	CarSeatPrice        float64  `toml:"car_seat_price" json:"carSeatPrice"`
	MultiVehicleIDs     []string `toml:"multi_vehicle_ids" json:"multiVehicleIds"` // машины, которые можно заказать несколькими
	Vehicles            Options  `toml:"vehicles" json:"vehicles"`                 // Price - надбавка к базовой цене
}

// AllowsMultiple возвращает true, если машину можно заказать в нескольких экземплярах
func (c *AirportTransferCatalog) AllowsMultiple(vehicleID string) bool {
	for _, id := range c.MultiVehicleIDs {
		if id == vehicleID {
			return true
		}
	}
	return false
}

// BikeRentalCatalog тарифы проката велосипедов (Price - за день)
type BikeRentalCatalog struct {
	Bikes       Options `toml:"bikes" json:"bikes"`
	DeliveryFee float64 `toml:"delivery_fee" json:"deliveryFee"`
}

// GolfCartCatalog тарифы гольф-каров (Price - за день, Capacity - мест)
type GolfCartCatalog struct {
	Carts       Options `toml:"carts" json:"carts"`
	DeliveryFee float64 `toml:"delivery_fee" json:"deliveryFee"`
}

// YachtCharterCatalog тарифы чартера
type YachtCharterCatalog struct {
	Yachts          Options          `toml:"yachts" json:"yachts"`
	IncludedGuests  int              `toml:"included_guests" json:"includedGuests"`
	ExtraGuestPrice float64          `toml:"extra_guest_price" json:"extraGuestPrice"`
	Durations       []DurationFactor `toml:"durations" json:"durations"`
	Catering        Options          `toml:"catering" json:"catering"`
	WaterSports     Options          `toml:"water_sports" json:"waterSports"`
	TransportFee    float64          `toml:"transport_fee" json:"transportFee"`
}

// Duration ищет множитель длительности
func (c *YachtCharterCatalog) Duration(hours int) (DurationFactor, bool) {
	for _, d := range c.Durations {
		if d.Hours == hours {
			return d, true
		}
	}
	return DurationFactor{}, false
}

// DecorationCatalog тарифы оформления
type DecorationCatalog struct {
	Packages  Options `toml:"packages" json:"packages"`
	Occasions Factors `toml:"occasions" json:"occasions"`
	Addons    Options `toml:"addons" json:"addons"`
}

// LiveMusicCatalog тарифы живой музыки (Price исполнителя - за один сет)
type LiveMusicCatalog struct {
	Performers       Options `toml:"performers" json:"performers"`
	Sets             Factors `toml:"sets" json:"sets"`
	SoundSystemPrice float64 `toml:"sound_system_price" json:"soundSystemPrice"`
	TransportFee     float64 `toml:"transport_fee" json:"transportFee"`
}

// IslandTourCatalog тарифы тура по острову
type IslandTourCatalog struct {
	AdultPrice       float64 `toml:"adult_price" json:"adultPrice"`
	ChildPrice       float64 `toml:"child_price" json:"childPrice"`
	FreeMaxAge       int     `toml:"free_max_age" json:"freeMaxAge"`   // возраст <= - бесплатно
	ChildMaxAge      int     `toml:"child_max_age" json:"childMaxAge"` // возраст <= - детский тариф
	PrivateSurcharge float64 `toml:"private_surcharge" json:"privateSurcharge"`
	PickupTime       string  `toml:"pickup_time" json:"pickupTime"`
	ReturnTime       string  `toml:"return_time" json:"returnTime"`
}

// CustomPackageCatalog позиции конструктора пакетов
// Category каждой позиции задается явно
type CustomPackageCatalog struct {
	Items               Options `toml:"items" json:"items"`
	BundleMinCategories int     `toml:"bundle_min_categories" json:"bundleMinCategories"`
	BundleDiscount      float64 `toml:"bundle_discount" json:"bundleDiscount"` // доля, 0.10 = 10%
}

// Catalogs каталоги всех услуг
type Catalogs struct {
	AirportTransfer AirportTransferCatalog `toml:"airport_transfer" json:"airportTransfer"`
	BikeRental      BikeRentalCatalog      `toml:"bike_rental" json:"bikeRental"`
	GolfCart        GolfCartCatalog        `toml:"golf_cart" json:"golfCart"`
	YachtCharter    YachtCharterCatalog    `toml:"yacht_charter" json:"yachtCharter"`
	Decoration      DecorationCatalog      `toml:"decoration" json:"decoration"`
	LiveMusic       LiveMusicCatalog       `toml:"live_music" json:"liveMusic"`
	IslandTour      IslandTourCatalog      `toml:"island_tour" json:"islandTour"`
	CustomPackage   CustomPackageCatalog   `toml:"custom_package" json:"customPackage"`
}

// For возвращает каталог услуги (для выдачи клиенту)
func (c *Catalogs) For(st ServiceType) (interface{}, error) {
	switch st {
	case ServiceAirportTransfer:
		return c.AirportTransfer, nil
	case ServiceBikeRental:
		return c.BikeRental, nil
	case ServiceGolfCart:
		return c.GolfCart, nil
	case ServiceYachtCharter:
		return c.YachtCharter, nil
	case ServiceDecoration:
		return c.Decoration, nil
	case ServiceLiveMusic:
		return c.LiveMusic, nil
	case ServiceIslandTour:
		return c.IslandTour, nil
	case ServiceCustomPackage:
		return c.CustomPackage, nil
	default:
		return nil, ErrUnknownServiceType
	}
}
