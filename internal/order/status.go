package order

import "github.com/MikeMC777/homefood/internal/apperr"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusAccepted  Status = "Accepted"
	StatusPreparing Status = "Preparing"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusDelivered, StatusCancelled},
	StatusDelivered: nil,
	StatusCancelled: nil,
}

// AllStatuses in lifecycle order.
var AllStatuses = []Status{StatusPending, StatusAccepted, StatusPreparing, StatusDelivered, StatusCancelled}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := transitions[st]; !ok {
		return "", apperr.Validation("invalid status: %s", s)
	}
	return st, nil
}

// CanTransition reports whether from may move to to. Staying put is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Editable reports whether the customer may still change the order contents.
func (s Status) Editable() bool {
	return s == StatusPending || s == StatusAccepted || s == StatusPreparing
}
