package dto

import (
	"time"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
)

// UpdateMappingRequest defines the fields a user may set on a description mapping.
// A nil field clears the stored value.
type UpdateMappingRequest struct {
	SimplifiedDescription *string `json:"simplifiedDescription" binding:"omitempty,max=255"`
	Category              *string `json:"category" binding:"omitempty,max=100"`
}

// MappingResponse defines the data returned for a description mapping.
type MappingResponse struct {
	MappingID             string    `json:"mappingID"`
	AccountID             string    `json:"accountID"`
	OriginalDescription   string    `json:"originalDescription"`
	NormalizedDescription string    `json:"normalizedDescription"`
	SimplifiedDescription *string   `json:"simplifiedDescription,omitempty"`
	Category              *string   `json:"category,omitempty"`
	LastUpdatedAt         time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy         string    `json:"lastUpdatedBy"`
}

// UpdateMappingResponse reports the updated mapping and how many transactions picked it up.
type UpdateMappingResponse struct {
	Mapping             MappingResponse `json:"mapping"`
	TransactionsUpdated int64           `json:"transactionsUpdated"`
}

// ToMappingResponse converts a domain.DescriptionMapping to MappingResponse DTO.
func ToMappingResponse(m *domain.DescriptionMapping) MappingResponse {
	return MappingResponse{
		MappingID:             m.MappingID,
		AccountID:             m.AccountID,
		OriginalDescription:   m.OriginalDescription,
		NormalizedDescription: m.NormalizedDescription,
		SimplifiedDescription: m.SimplifiedDescription,
		Category:              m.Category,
		LastUpdatedAt:         m.LastUpdatedAt,
		LastUpdatedBy:         m.LastUpdatedBy,
	}
}

// ToMappingResponses converts a slice of domain.DescriptionMapping to DTOs.
func ToMappingResponses(mappings []domain.DescriptionMapping) []MappingResponse {
	res := make([]MappingResponse, len(mappings))
	for i := range mappings {
		res[i] = ToMappingResponse(&mappings[i])
	}
	return res
}
