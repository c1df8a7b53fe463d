package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	"github.com/m04kA/SMC-ConciergeBooking/pkg/types"
)

// Load загружает каталоги: стандартные тарифы, поверх которых применяется TOML файл
// Пустой путь - только стандартные тарифы
// Списки из файла заменяют стандартные списки целиком
func Load(path string) (*domain.Catalogs, error) {
	catalogs := Default()
	if path == "" {
		return catalogs, nil
	}

	if _, err := toml.DecodeFile(path, catalogs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadCatalog, path, err)
	}

	if err := Validate(catalogs); err != nil {
		return nil, err
	}

	return catalogs, nil
}

// Validate проверяет согласованность каталогов
func Validate(c *domain.Catalogs) error {
	lists := map[string]domain.Options{
		"airport_transfer.vehicles":  c.AirportTransfer.Vehicles,
		"bike_rental.bikes":          c.BikeRental.Bikes,
		"golf_cart.carts":            c.GolfCart.Carts,
		"yacht_charter.yachts":       c.YachtCharter.Yachts,
		"yacht_charter.catering":     c.YachtCharter.Catering,
		"yacht_charter.water_sports": c.YachtCharter.WaterSports,
		"decoration.packages":        c.Decoration.Packages,
		"decoration.addons":          c.Decoration.Addons,
		"live_music.performers":      c.LiveMusic.Performers,
		"custom_package.items":       c.CustomPackage.Items,
	}
	for name, options := range lists {
		if err := validateOptions(name, options); err != nil {
			return err
		}
	}

	for _, name := range []string{"golf_cart.carts", "yacht_charter.yachts", "airport_transfer.vehicles"} {
		for _, opt := range lists[name] {
			if opt.Capacity <= 0 {
				return fmt.Errorf("%w: %s: option %q must have positive capacity", ErrInvalidCatalog, name, opt.ID)
			}
		}
	}

	for _, opt := range c.CustomPackage.Items {
		if opt.Category == "" {
			return fmt.Errorf("%w: custom_package.items: option %q has no category", ErrInvalidCatalog, opt.ID)
		}
	}

	if c.AirportTransfer.RoundTripMultiplier < 1 {
		return fmt.Errorf("%w: airport_transfer.round_trip_multiplier must be >= 1", ErrInvalidCatalog)
	}
	if len(c.YachtCharter.Durations) == 0 {
		return fmt.Errorf("%w: yacht_charter.durations is empty", ErrInvalidCatalog)
	}
	if c.CustomPackage.BundleDiscount < 0 || c.CustomPackage.BundleDiscount >= 1 {
		return fmt.Errorf("%w: custom_package.bundle_discount must be in [0, 1)", ErrInvalidCatalog)
	}
	if c.IslandTour.FreeMaxAge > c.IslandTour.ChildMaxAge {
		return fmt.Errorf("%w: island_tour.free_max_age exceeds child_max_age", ErrInvalidCatalog)
	}

	pickup := types.TimeString(c.IslandTour.PickupTime)
	ret := types.TimeString(c.IslandTour.ReturnTime)
	if pickup.Validate() != nil || ret.Validate() != nil || !ret.IsAfter(pickup) {
		return fmt.Errorf("%w: island_tour pickup/return time", ErrInvalidCatalog)
	}

	return nil
}

func validateOptions(name string, options domain.Options) error {
	if len(options) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidCatalog, name)
	}
	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		if opt.ID == "" {
			return fmt.Errorf("%w: %s: option without id", ErrInvalidCatalog, name)
		}
		if _, dup := seen[opt.ID]; dup {
			return fmt.Errorf("%w: %s: duplicate option %q", ErrInvalidCatalog, name, opt.ID)
		}
		if opt.Price < 0 {
			return fmt.Errorf("%w: %s: option %q has negative price", ErrInvalidCatalog, name, opt.ID)
		}
		seen[opt.ID] = struct{}{}
	}
	return nil
}
