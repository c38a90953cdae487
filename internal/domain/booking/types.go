package booking

import "strconv"

// ID is allocated by the store, starting at 1. Zero means "not yet stored".
type ID int64

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, ErrNotFound
	}
	return ID(v), nil
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusRefunded},
	StatusCancelled: {},
	StatusRefunded:  {},
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s Status) String() string { return string(s) }

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(validTransitions[s]) == 0
}

type RoomType uint8

const (
	RoomStandard RoomType = iota
	RoomDeluxe
	RoomSuite
)

var roomTypeNames = [...]string{
	RoomStandard: "Standard",
	RoomDeluxe:   "Deluxe",
	RoomSuite:    "Suite",
}

func NewRoomType(v int) (RoomType, error) {
	if v < 0 || v >= len(roomTypeNames) {
		return 0, ErrInvalidRoomType
	}
	return RoomType(v), nil
}

func (r RoomType) IsValid() bool { return int(r) < len(roomTypeNames) }

func (r RoomType) String() string {
	if !r.IsValid() {
		return "Unknown"
	}
	return roomTypeNames[r]
}
