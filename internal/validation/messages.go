package validation

// Сообщения об ошибках полей (показываются клиенту)
const (
	msgRequired        = "This field is required"
	msgInvalidDate     = "Enter a valid date (YYYY-MM-DD)"
	msgInvalidTime     = "Enter a valid time (HH:MM)"
	msgLeadTime        = "Bookings require at least %d hours advance notice"
	msgTimePassed      = "The selected time has already passed"
	msgEndBeforeStart  = "End date cannot be before start date"
	msgReturnOrder     = "Return must be after arrival"
	msgEndTimeOrder    = "End time must be after start time"
	msgRange           = "Must be between %d and %d"
	msgTooLong         = "Must be at most %d characters"
	msgUnknownOption   = "Select a valid option"
	msgCarSeats        = "Car seats cannot exceed the number of children"
	msgMultiVehicle    = "Only %s can be booked as multiple vehicles"
	msgVehicleCapacity = "%s seats up to %d passengers; %d passengers require %s"
	msgFleetCapacity   = "%d vehicles seat up to %d passengers; %d passengers require a larger vehicle"
	msgNoVehicleFits   = "%d passengers exceed the capacity of every available vehicle"
	msgYachtCapacity   = "%s accommodates up to %d guests"
	msgBikeCount       = "Select exactly %d bikes (one per rider)"
	msgCartCapacity    = "Selected carts seat %d guests; %d guests need more capacity"
	msgSelectCart      = "Select at least one cart"
	msgSelectItem      = "Select at least one experience"
	msgDuration        = "Select a valid charter duration"
	msgChildAge        = "Child age must be between 0 and %d"
	msgTooManyChildren = "At most %d children per booking"
)
