package domain

// DescriptionMapping binds a normalized merchant description to the category and
// display name the user chose for it. Unique per (AccountID, NormalizedDescription).
type DescriptionMapping struct {
	MappingID             string  `json:"mappingID"`
	AccountID             string  `json:"accountID"`
	OriginalDescription   string  `json:"originalDescription"`
	NormalizedDescription string  `json:"normalizedDescription"`
	SimplifiedDescription *string `json:"simplifiedDescription,omitempty"`
	Category              *string `json:"category,omitempty"`
	AuditFields
}
