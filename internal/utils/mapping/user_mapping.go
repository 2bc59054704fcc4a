package mapping

import (
	"github.com/SscSPs/bikeshop_backoffice/internal/core/domain"
	"github.com/SscSPs/bikeshop_backoffice/internal/models"
)

func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Username:       nullString(d.Username),
		Email:          nullString(d.Email),
		PasswordHash:   nullString(d.PasswordHash),
		Name:           d.Name,
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: nullString(d.ProviderUserID),
		EmailVerified:  d.EmailVerified,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
}

func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Username:       m.Username.String,
		Email:          m.Email.String,
		PasswordHash:   m.PasswordHash.String,
		Name:           m.Name,
		AuthProvider:   domain.AuthProviderType(m.AuthProvider),
		ProviderUserID: m.ProviderUserID.String,
		EmailVerified:  m.EmailVerified,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		DeletedAt:      m.DeletedAt,
	}
}
