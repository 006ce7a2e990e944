package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/payroll"
)

var (
	epfRate         = decimal.RequireFromString("0.10")
	employerEPFRate = decimal.RequireFromString("0.15")
	etfRate         = decimal.RequireFromString("0.03")

	stampDuty = decimal.NewFromInt(25)
	welfare   = decimal.NewFromInt(500)
	insurance = decimal.NewFromInt(900)

	noPayDivisor   = decimal.NewFromInt(30)
	holidayDivisor = decimal.NewFromInt(20)
	hourlyDivisor  = decimal.NewFromInt(240)
	otMultiplier   = decimal.RequireFromString("1.5")
	dotMultiplier  = decimal.NewFromInt(2)
)

// taxBand taxes the part of the salary above floor at rate, on top of base.
type taxBand struct {
	floor decimal.Decimal
	base  decimal.Decimal
	rate  decimal.Decimal
}

// Bases are the sums of the lower full bands and are kept literal.
var taxBands = []taxBand{
	{floor: decimal.NewFromInt(358333), base: decimal.RequireFromString("35000.22"), rate: decimal.RequireFromString("0.36")},
	{floor: decimal.NewFromInt(316667), base: decimal.RequireFromString("22500.12"), rate: decimal.RequireFromString("0.30")},
	{floor: decimal.NewFromInt(275000), base: decimal.RequireFromString("12500.04"), rate: decimal.RequireFromString("0.24")},
	{floor: decimal.NewFromInt(233333), base: decimal.RequireFromString("4999.98"), rate: decimal.RequireFromString("0.18")},
	{floor: decimal.NewFromInt(150000), base: decimal.Zero, rate: decimal.RequireFromString("0.06")},
}

// CalculateTax applies the monthly progressive bands to the basic salary.
func CalculateTax(basic decimal.Decimal) decimal.Decimal {
	for _, b := range taxBands {
		if basic.GreaterThan(b.floor) {
			return b.base.Add(basic.Sub(b.floor).Mul(b.rate)).Round(2)
		}
	}
	return decimal.Zero
}

type EngineOptions struct {
	ClampNegativeNetPay bool
}

// Compute derives a payslip from one employee's approved inputs. Holiday
// claims are paid to Executives only; OT and DOT to NonExecutives only.
func Compute(in payroll.SalaryInput, salaryMonth string, opts EngineOptions) payroll.Salary {
	basic := in.BasicSalary
	epf := basic.Mul(epfRate)

	s := payroll.Salary{
		EmployeeID:             in.EmployeeID,
		EmpNo:                  in.EmpNo,
		EmployeeName:           in.EmployeeName,
		UserType:               in.UserType,
		SalaryMonth:            salaryMonth,
		BasicSalary:            basic,
		EPFDeduction:           epf.Round(2),
		EmployerEPF:            basic.Mul(employerEPFRate).Round(2),
		ETF:                    basic.Mul(etfRate).Round(2),
		TaxDeduction:           CalculateTax(basic),
		LoanDeduction:          in.LoanAmount,
		TelephoneBillDeduction: in.BillAmount,
		StampDeduction:         stampDuty,
		WelfareDeduction:       welfare,
		InsuranceDeduction:     insurance,
		NoPayDays:              in.NoPayDays,
		NoPayDeduction:         basic.Div(noPayDivisor).Mul(decimal.NewFromInt(int64(in.NoPayDays))).Round(2),
		LeaveDays:              in.LeaveDays,
		SalaryArrears:          in.SalaryArrears,
		HolidayClaimAmount:     decimal.Zero,
		OTAmount:               decimal.Zero,
		DOTAmount:              decimal.Zero,
		BankCode:               in.BankCode,
		BranchCode:             in.BranchCode,
		AccountNumber:          in.AccountNumber,
		NICNo:                  in.NICNo,
		MobileNo:               in.MobileNo,
	}

	switch in.UserType {
	case employee.UserTypeExecutive:
		s.HolidayClaims = in.HolidayClaims
		s.HolidayClaimAmount = basic.Div(holidayDivisor).Mul(decimal.NewFromInt(int64(in.HolidayClaims))).Round(2)
	case employee.UserTypeNonExecutive:
		hourly := basic.Div(hourlyDivisor)
		s.OTHours = in.OTHours
		s.DOTHours = in.DOTHours
		s.OTAmount = hourly.Mul(otMultiplier).Mul(in.OTHours).Round(2)
		s.DOTAmount = hourly.Mul(dotMultiplier).Mul(in.DOTHours).Round(2)
	}

	s.GrossSalary = basic.
		Add(s.HolidayClaimAmount).
		Add(s.OTAmount).
		Add(s.DOTAmount).
		Add(s.SalaryArrears)

	// EPF enters the sum unrounded; only the totals are rounded.
	deductions := epf.
		Add(s.TaxDeduction).
		Add(s.LoanDeduction).
		Add(s.TelephoneBillDeduction).
		Add(s.StampDeduction).
		Add(s.WelfareDeduction).
		Add(s.InsuranceDeduction).
		Add(s.NoPayDeduction)

	s.TotalDeductions = deductions.Round(2)
	s.NetPay = s.GrossSalary.Sub(deductions).Round(2)
	if opts.ClampNegativeNetPay && s.NetPay.IsNegative() {
		s.NetPay = decimal.Zero
	}
	return s
}
