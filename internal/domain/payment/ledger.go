package payment

import (
	"github.com/shopspring/decimal"
)

// CheckCapacity guards the invariant that PAID amounts never exceed the final bill.
// paidSum must be read under the booking row lock.
func CheckCapacity(finalBill *decimal.Decimal, paidSum, amount decimal.Decimal) error {
	if finalBill == nil {
		return ErrFinalBillNotSet
	}
	if paidSum.Add(amount).GreaterThan(*finalBill) {
		return ErrOverpaymentRejected
	}
	return nil
}
