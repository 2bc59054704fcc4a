package mapping

import (
	"database/sql"

	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/SscSPs/bikeshop_backoffice/internal/models"
)

func ToModelServiceOrder(d domain.ServiceOrder) models.ServiceOrder {
	m := models.ServiceOrder{
		ServiceOrderID:       d.ID,
		CustomerID:           d.CustomerID,
		Bicycle:              d.Bicycle,
		ProblemDescription:   d.ProblemDescription,
		Status:               string(d.Status),
		TotalPrice:           d.TotalPrice,
		DownPayment:          nullDecimal(d.DownPayment),
		FirstInstallmentDate: d.FirstInstallmentDate,
		CompletedAt:          d.CompletedAt,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
	if d.PaymentMethod != nil {
		m.PaymentMethod = nullString(string(*d.PaymentMethod))
	}
	if d.InstallmentCount != nil {
		m.InstallmentCount = sql.NullInt32{Int32: int32(*d.InstallmentCount), Valid: true}
	}
	return m
}

func ToDomainServiceOrder(m models.ServiceOrder) domain.ServiceOrder {
	d := domain.ServiceOrder{
		ID:                   m.ServiceOrderID,
		CustomerID:           m.CustomerID,
		Bicycle:              m.Bicycle,
		ProblemDescription:   m.ProblemDescription,
		Status:               domain.ServiceOrderStatus(m.Status),
		TotalPrice:           m.TotalPrice,
		DownPayment:          decimalPtr(m.DownPayment),
		FirstInstallmentDate: m.FirstInstallmentDate,
		CompletedAt:          m.CompletedAt,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
	if m.PaymentMethod.Valid {
		pm := domain.PaymentMethod(m.PaymentMethod.String)
		d.PaymentMethod = &pm
	}
	if m.InstallmentCount.Valid {
		n := int(m.InstallmentCount.Int32)
		d.InstallmentCount = &n
	}
	return d
}

func ToDomainServiceOrderSlice(ms []models.ServiceOrder) []domain.ServiceOrder {
	ds := make([]domain.ServiceOrder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainServiceOrder(m)
	}
	return ds
}
