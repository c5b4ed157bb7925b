package model

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatBooked    SeatStatus = "booked"
)

type Seat struct {
	Number int        `json:"number"`
	Status SeatStatus `json:"status"`
}

func (s Seat) Available() bool {
	return s.Status == SeatAvailable
}
