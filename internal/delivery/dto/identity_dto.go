package dto

type IdentityFailure struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

type IdentitySummary struct {
	Total    int               `json:"total"`
	Created  int               `json:"created"`
	Failures []IdentityFailure `json:"failures,omitempty"`
}
