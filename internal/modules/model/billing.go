package model

// ClientInvoice is a billing record linked to a public Project (not a
// ClientProject). Its lifecycle is independent of delivery progress.
// DocumentKey points at an uploaded invoice document in blob storage;
// DownloadURL is a legacy external link kept for older records.
type ClientInvoice struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"projectId"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"` // paid | due | overdue
	IssuedOn    string  `json:"issuedOn"`
	DueOn       string  `json:"dueOn"`
	Description string  `json:"description,omitempty"`
	DownloadURL string  `json:"downloadUrl,omitempty"`
	DocumentKey string  `json:"documentKey,omitempty"`
}

func (i ClientInvoice) EntityID() string { return i.ID }

// ClientUser is an external client login. AllowedProjectIDs holds public
// Project ids and gates which client projects the portal view exposes.
type ClientUser struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Company           string   `json:"company,omitempty"`
	Role              string   `json:"role"` // admin | member | viewer
	AllowedProjectIDs []string `json:"allowedProjectIds"`
}

func (u ClientUser) EntityID() string { return u.ID }
