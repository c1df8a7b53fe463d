package get_confirmation

// Request модель запроса подтверждения
type Request struct {
	SessionID string // Сессия клиента
}
