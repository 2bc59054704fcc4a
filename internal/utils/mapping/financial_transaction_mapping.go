package mapping

import (
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/SscSPs/bikeshop_backoffice/internal/models"
)

func ToModelFinancialTransaction(d domain.FinancialTransaction) models.FinancialTransaction {
	return models.FinancialTransaction{
		TransactionID:   d.ID,
		TransactionDate: d.Date,
		Description:     d.Description,
		Category:        d.Category,
		Amount:          d.Amount,
		TransactionType: string(d.Type),
		PaymentMethod:   string(d.PaymentMethod),
		Status:          string(d.Status),
		DueDate:         d.DueDate,
		PaymentDate:     d.PaymentDate,
		RelatedID:       d.RelatedID,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainFinancialTransaction(m models.FinancialTransaction) domain.FinancialTransaction {
	return domain.FinancialTransaction{
		ID:            m.TransactionID,
		Date:          m.TransactionDate,
		Description:   m.Description,
		Category:      m.Category,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.TransactionType),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Status:        domain.TransactionStatus(m.Status),
		DueDate:       m.DueDate,
		PaymentDate:   m.PaymentDate,
		RelatedID:     m.RelatedID,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelFinancialTransactionSlice(ds []domain.FinancialTransaction) []models.FinancialTransaction {
	ms := make([]models.FinancialTransaction, len(ds))
	for i, d := range ds {
		ms[i] = ToModelFinancialTransaction(d)
	}
	return ms
}

func ToDomainFinancialTransactionSlice(ms []models.FinancialTransaction) []domain.FinancialTransaction {
	ds := make([]domain.FinancialTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinancialTransaction(m)
	}
	return ds
}
