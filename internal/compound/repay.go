package compound

import (
	"lending/core"
	"lending/pkg/number"
)

// AllocateRepay pay interest first, the remainder reduces principal
func AllocateRepay(interestOwed, borrowed, amount number.Amount) (newInterest, newBorrowed number.Amount, err error) {
	if !amount.GreaterThan(interestOwed) {
		newInterest, err = interestOwed.Sub(amount)
		return newInterest, borrowed, err
	}

	remainder, err := amount.Sub(interestOwed)
	if err != nil {
		return number.Zero, number.Zero, err
	}

	if remainder.GreaterThan(borrowed) {
		return number.Zero, number.Zero, core.ErrOverRepayment
	}

	newBorrowed, err = borrowed.Sub(remainder)
	return number.Zero, newBorrowed, err
}
