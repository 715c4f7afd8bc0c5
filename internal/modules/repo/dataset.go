package repo

import (
	"encoding/json"

	"github.com/cindral-studio/cindral-api/internal/modules/model"
)

// Dataset is the full snapshot every adapter loads and saves as one unit.
// Its JSON shape doubles as the export/import format.
type Dataset struct {
	Divisions          []model.Division          `json:"divisions"`
	Projects           []model.Project           `json:"projects"`
	Team               []model.TeamMember        `json:"team"`
	ContactSubmissions []model.ContactSubmission `json:"contactSubmissions"`
	ClientProjects     []model.ClientProject     `json:"clientProjects"`
	ClientInvoices     []model.ClientInvoice     `json:"clientInvoices"`
	ClientUsers        []model.ClientUser        `json:"clientUsers"`
	Initiatives        []model.Initiative        `json:"initiatives"`
}

// Clone deep-copies the dataset through a JSON round trip. The dataset is
// tens of records, so this stays cheap.
func (d *Dataset) Clone() *Dataset {
	raw, err := json.Marshal(d)
	if err != nil {
		// All dataset types marshal cleanly; this cannot happen with
		// records that came in through the store.
		panic(err)
	}
	next := new(Dataset)
	if err := json.Unmarshal(raw, next); err != nil {
		panic(err)
	}
	next.ensureSlices()
	return next
}

// ensureSlices replaces nil collections with empty ones so the JSON snapshot
// always round-trips arrays, mirroring how the dataset file self-heals on
// load.
func (d *Dataset) ensureSlices() {
	if d.Divisions == nil {
		d.Divisions = []model.Division{}
	}
	if d.Projects == nil {
		d.Projects = []model.Project{}
	}
	if d.Team == nil {
		d.Team = []model.TeamMember{}
	}
	if d.ContactSubmissions == nil {
		d.ContactSubmissions = []model.ContactSubmission{}
	}
	if d.ClientProjects == nil {
		d.ClientProjects = []model.ClientProject{}
	}
	if d.ClientInvoices == nil {
		d.ClientInvoices = []model.ClientInvoice{}
	}
	if d.ClientUsers == nil {
		d.ClientUsers = []model.ClientUser{}
	}
	if d.Initiatives == nil {
		d.Initiatives = []model.Initiative{}
	}
}
