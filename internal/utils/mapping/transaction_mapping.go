package mapping

import (
	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/SscSPs/statement_ingestion/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	users := d.ResponsibleUsers
	if users == nil {
		users = []string{}
	}
	return models.Transaction{
		TransactionID:         d.TransactionID,
		AccountID:             d.AccountID,
		CardID:                ToNullString(d.CardID),
		ImportID:              ToNullString(d.ImportID),
		TransactionDate:       d.Date,
		Description:           d.Description,
		NormalizedDescription: d.NormalizedDescription,
		SimplifiedDescription: ToNullString(d.SimplifiedDescription),
		Category:              ToNullString(d.Category),
		Amount:                d.Amount,
		ResponsibleUsers:      users,
		Source:                models.TransactionSource(d.Source),
		RawFingerprint:        d.RawFingerprint,
		NormalizedFingerprint: ToNullString(d.NormalizedFingerprint),
		IsReversal:            d.IsReversal,
		RelatedTransactionID:  ToNullString(d.RelatedTransactionID),
		InstallmentCurrent:    toNullInt32(d.InstallmentCurrent),
		InstallmentTotal:      toNullInt32(d.InstallmentTotal),
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:         m.TransactionID,
		AccountID:             m.AccountID,
		CardID:                FromNullString(m.CardID),
		ImportID:              FromNullString(m.ImportID),
		Date:                  m.TransactionDate,
		Description:           m.Description,
		NormalizedDescription: m.NormalizedDescription,
		SimplifiedDescription: FromNullString(m.SimplifiedDescription),
		Category:              FromNullString(m.Category),
		Amount:                m.Amount,
		ResponsibleUsers:      m.ResponsibleUsers,
		Source:                domain.Source(m.Source),
		RawFingerprint:        m.RawFingerprint,
		NormalizedFingerprint: FromNullString(m.NormalizedFingerprint),
		IsReversal:            m.IsReversal,
		RelatedTransactionID:  FromNullString(m.RelatedTransactionID),
		InstallmentCurrent:    fromNullInt32(m.InstallmentCurrent),
		InstallmentTotal:      fromNullInt32(m.InstallmentTotal),
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
