package service

// BookingStatus Enum Type
type BookingStatus int

// Enumeration containing all possible booking statuses. The flow moves
// selecting -> awaiting-redirect -> reconciling -> done/failed, with the
// awaiting-redirect to reconciling hop crossing the external provider page.
const (
	Selecting BookingStatus = 1 + iota
	AwaitingRedirect
	Reconciling
	Done
	Failed
)

// String representation of booking statuses
var bookingStatuses = [...]string{
	"selecting",
	"awaiting-redirect",
	"reconciling",
	"done",
	"failed",
}

func (bookingStatus BookingStatus) String() string {
	return bookingStatuses[bookingStatus-1]
}
