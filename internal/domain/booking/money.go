package booking

import "errors"

var ErrNegativePrice = errors.New("price cannot be negative")

// Money is an amount in whole currency units (naira), matching the integer
// prices the upstream room catalog serves. No fractional representation
// means rate × nights is always exact.
type Money int64

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return 0, ErrNegativePrice
	}
	return Money(amount), nil
}

func (m Money) Amount() int64 {
	return int64(m)
}

// TotalPrice is the stay total for a nightly rate. Callers hold a validated
// StayRange, so nights is at least 1 and the total is monotonic in it.
func TotalPrice(perNight Money, nights int) Money {
	return perNight * Money(nights)
}
