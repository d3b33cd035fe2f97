package booking

// BookingStatus is the reservation state. A booking is created confirmed
// (payment capture is delegated to the gateway) and can only be cancelled.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusConfirmed, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// CanBeCancelled returns true if the booking status can still change.
func (bs BookingStatus) CanBeCancelled() bool {
	return bs == BookingStatusConfirmed
}

// PaymentStatus mirrors the state reported by the external payment gateway.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (ps PaymentStatus) IsValid() bool {
	switch ps {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}
