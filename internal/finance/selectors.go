package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/segyhp/gym-backoffice/internal/domain"
)

func membershipPaidOn(m domain.Membership) time.Time { return m.PaymentDate }

func membershipAmount(m domain.Membership) decimal.Decimal { return m.AmountPaid }

func saleDate(s domain.Sale) time.Time { return s.SaleDate }

func saleTotal(s domain.Sale) decimal.Decimal { return s.Total }

func incomeDate(i domain.AdditionalIncome) time.Time { return i.Date }

func incomeAmount(i domain.AdditionalIncome) decimal.Decimal { return i.Amount }

func simpleDate(e domain.SimpleExpense) time.Time { return e.Date }

func simpleAmount(e domain.SimpleExpense) decimal.Decimal { return e.Amount }

func detailedDate(e domain.DetailedExpense) time.Time { return e.Date }

func detailedAmount(e domain.DetailedExpense) decimal.Decimal { return e.Amount }

func payrollTotal(p domain.Payroll) decimal.Decimal { return p.TotalPayable }
