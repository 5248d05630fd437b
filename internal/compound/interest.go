package compound

import (
	"fmt"
	"lending/core"
	"lending/pkg/number"
)

// Accrue interest earned or owed on principal between lastTime and now.
// A lastTime of 0 means the account was never checkpointed and yields no interest.
//
//	delta = principal * rate.Numerator * (now - lastTime) / rate.Denominator
func Accrue(principal number.Amount, rate core.Rate, lastTime, now uint64) (number.Amount, error) {
	if lastTime == 0 {
		return number.Zero, nil
	}

	if now < lastTime {
		return number.Zero, fmt.Errorf("%w: now %d < last %d", core.ErrClockRegressed, now, lastTime)
	}

	delta, err := principal.MulUint64(rate.Numerator)
	if err != nil {
		return number.Zero, mathErr(err)
	}

	if delta, err = delta.MulUint64(now - lastTime); err != nil {
		return number.Zero, mathErr(err)
	}

	if delta, err = delta.DivUint64(rate.Denominator); err != nil {
		return number.Zero, mathErr(err)
	}

	return delta, nil
}

// CheckpointDeposit add interest accrued since the last checkpoint and move the checkpoint to now
func CheckpointDeposit(d *core.Deposit, rate core.Rate, now uint64) error {
	delta, err := Accrue(d.Principal, rate, d.LastAccrualTime, now)
	if err != nil {
		return err
	}

	interest, err := d.AccruedInterest.Add(delta)
	if err != nil {
		return mathErr(err)
	}

	d.AccruedInterest = interest
	d.LastAccrualTime = now
	return nil
}

// CheckpointBorrow add interest owed since the last checkpoint and move the checkpoint to now
func CheckpointBorrow(b *core.Borrow, rate core.Rate, now uint64) error {
	delta, err := Accrue(b.AmountBorrowed, rate, b.LastAccrualTime, now)
	if err != nil {
		return err
	}

	owed, err := b.InterestOwed.Add(delta)
	if err != nil {
		return mathErr(err)
	}

	b.InterestOwed = owed
	b.LastAccrualTime = now
	return nil
}

// DepositBalance principal plus interest as of now, without checkpointing
func DepositBalance(d *core.Deposit, rate core.Rate, now uint64) (number.Amount, error) {
	c := d.Clone()
	if err := CheckpointDeposit(c, rate, now); err != nil {
		return number.Zero, err
	}

	total, err := c.Total()
	if err != nil {
		return number.Zero, mathErr(err)
	}

	return total, nil
}

// BorrowDebt principal plus interest owed as of now, without checkpointing
func BorrowDebt(b *core.Borrow, rate core.Rate, now uint64) (number.Amount, error) {
	c := b.Clone()
	if err := CheckpointBorrow(c, rate, now); err != nil {
		return number.Zero, err
	}

	debt, err := c.Debt()
	if err != nil {
		return number.Zero, mathErr(err)
	}

	return debt, nil
}

func mathErr(err error) error {
	return fmt.Errorf("%w: %w", core.ErrArithmeticOverflow, err)
}
