package notify

// BookingConfirmedEvent публикуется после успешного создания бронирования.
// Содержит достаточно данных, чтобы потребители (письма, уведомления персонала)
// не ходили в основную базу.
type BookingConfirmedEvent struct {
	BookingID     int64    `json:"booking_id"`
	Activity      string   `json:"activity"`
	PartySize     int      `json:"party_size"`
	BookingDate   string   `json:"booking_date"`
	StartMin      int      `json:"start_min"`
	EndMin        int      `json:"end_min"`
	PartyRooms    []string `json:"party_rooms,omitempty"`
	CustomerName  string   `json:"customer_name"`
	CustomerPhone string   `json:"customer_phone"`
	CustomerEmail *string  `json:"customer_email,omitempty"`
	PriceTotal    float64  `json:"price_total"`
	ConfirmedAt   string   `json:"confirmed_at"`
}
