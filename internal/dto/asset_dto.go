package dto

// Requests for the production workflow resources. The media buyer is
// never taken from the payload on create; it is forced to the caller.

type PageRequest struct {
	Creator   *string `json:"creator"`
	Product   *string `json:"product"`
	Type      *string `json:"type"`
	Store     *string `json:"store"`
	Language  *string `json:"language"`
	Status    *string `json:"status"`
	FinalLink *string `json:"final_link"`
	Note      *string `json:"note"`
}

type VoiceOverRequest struct {
	Creator   *string `json:"creator"`
	Product   *string `json:"product"`
	Language  *string `json:"language"`
	Script    *string `json:"script"`
	Status    *string `json:"status"`
	FinalLink *string `json:"final_link"`
	Note      *string `json:"note"`
}

type CreativeRequest struct {
	Creator     *string  `json:"creator"`
	Product     *string  `json:"product"`
	VoiceOver   *string  `json:"voice_over"`
	Format      *string  `json:"format"`
	Language    *string  `json:"language"`
	IsVoiceOver *bool    `json:"is_voice_over"`
	Status      *string  `json:"status"`
	FinalLink   *string  `json:"final_link"`
	Note        *string  `json:"note"`
}
