package reservation

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
)

func encode(record *domain.ReservationRecord) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

func decode(data []byte) (*domain.ReservationRecord, error) {
	var record domain.ReservationRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &record, nil
}
