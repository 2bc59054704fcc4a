package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/SscSPs/bikeshop_backoffice/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillMapping_SalaryVariant(t *testing.T) {
	parent := "S0"
	d := domain.Bill{
		ID:           "S1",
		Kind:         domain.BillSalary,
		Amount:       decimal.RequireFromString("2070.00"),
		DueDate:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Status:       domain.BillPending,
		ParentBillID: &parent,
		Salary: &domain.SalaryDetails{
			EmployeeName: "Carlos",
			BaseSalary:   decimal.RequireFromString("2000"),
			Bonuses:      decimal.RequireFromString("150"),
			Deductions:   decimal.RequireFromString("80"),
		},
	}

	m := ToModelBill(d)
	assert.Equal(t, "salario", m.BillKind)
	assert.True(t, m.EmployeeName.Valid)
	assert.True(t, m.BaseSalary.Valid)
	assert.Equal(t, "S0", m.ParentBillID.String)

	back := ToDomainBill(m)
	require.NotNil(t, back.Salary)
	assert.Equal(t, "Carlos", back.Salary.EmployeeName)
	assert.True(t, d.Salary.NetSalary().Equal(back.Salary.NetSalary()))
	require.NotNil(t, back.ParentBillID)
	assert.Equal(t, "S0", *back.ParentBillID)
}

func TestBillMapping_GenericHasNoSalary(t *testing.T) {
	back := ToDomainBill(models.Bill{BillID: "B1", BillKind: "conta"})
	assert.Nil(t, back.Salary)
	assert.Nil(t, back.ParentBillID)
	assert.True(t, back.DueDate.IsZero())
}

func TestServiceOrderMapping_OptionalSettlementFields(t *testing.T) {
	m := ToModelServiceOrder(domain.ServiceOrder{ID: "OS1", Status: domain.OrderOpen})
	assert.False(t, m.PaymentMethod.Valid)
	assert.False(t, m.InstallmentCount.Valid)
	assert.False(t, m.DownPayment.Valid)

	pm := domain.PaymentStoreCredit
	n := 3
	dp := decimal.NewFromInt(100)
	back := ToDomainServiceOrder(ToModelServiceOrder(domain.ServiceOrder{
		ID: "OS2", PaymentMethod: &pm, InstallmentCount: &n, DownPayment: &dp,
	}))
	require.NotNil(t, back.PaymentMethod)
	assert.Equal(t, pm, *back.PaymentMethod)
	require.NotNil(t, back.InstallmentCount)
	assert.Equal(t, 3, *back.InstallmentCount)
	require.NotNil(t, back.DownPayment)
	assert.True(t, dp.Equal(*back.DownPayment))
}
