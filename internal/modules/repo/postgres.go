package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Collection names as stored in the documents table.
const (
	colDivisions          = "divisions"
	colProjects           = "projects"
	colTeam               = "team"
	colContactSubmissions = "contactSubmissions"
	colClientProjects     = "clientProjects"
	colClientInvoices     = "clientInvoices"
	colClientUsers        = "clientUsers"
	colInitiatives        = "initiatives"
)

// documentRow is one record of one collection, stored as jsonb. Position
// preserves array order, which is display order for several collections.
type documentRow struct {
	Collection string         `gorm:"primaryKey;type:text"`
	RecordID   string         `gorm:"primaryKey;column:record_id;type:text"`
	Position   int            `gorm:"not null"`
	Data       datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (documentRow) TableName() string { return "documents" }

// GormAdapter persists the snapshot into a single documents table. Saves
// replace the whole table in one transaction, keeping the
// all-or-nothing snapshot contract the other adapters give for free.
type GormAdapter struct {
	db *gorm.DB
}

func NewGormAdapter(db *gorm.DB) *GormAdapter { return &GormAdapter{db: db} }

func (a *GormAdapter) AutoMigrate() error {
	return a.db.AutoMigrate(&documentRow{})
}

func (a *GormAdapter) Load(ctx context.Context) (*Dataset, error) {
	var rows []documentRow
	if err := a.db.WithContext(ctx).Order("collection, position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	d := new(Dataset)
	d.ensureSlices()
	for _, row := range rows {
		var err error
		switch row.Collection {
		case colDivisions:
			err = appendDoc(&d.Divisions, row.Data)
		case colProjects:
			err = appendDoc(&d.Projects, row.Data)
		case colTeam:
			err = appendDoc(&d.Team, row.Data)
		case colContactSubmissions:
			err = appendDoc(&d.ContactSubmissions, row.Data)
		case colClientProjects:
			err = appendDoc(&d.ClientProjects, row.Data)
		case colClientInvoices:
			err = appendDoc(&d.ClientInvoices, row.Data)
		case colClientUsers:
			err = appendDoc(&d.ClientUsers, row.Data)
		case colInitiatives:
			err = appendDoc(&d.Initiatives, row.Data)
		default:
			// Unknown collections are ignored rather than fatal so an
			// older binary can still read a newer snapshot.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", row.Collection, row.RecordID, err)
		}
	}
	return d, nil
}

func (a *GormAdapter) Save(ctx context.Context, d *Dataset) error {
	rows := make([]documentRow, 0, 64)
	var err error
	if rows, err = appendRows(rows, colDivisions, d.Divisions); err != nil {
		return err
	}
	if rows, err = appendRows(rows, colProjects, d.Projects); err != nil {
		return err
	}
	if rows, err = appendRows(rows, colTeam, d.Team); err != nil {
		return err
	}
	if rows, err = appendRows(rows, colContactSubmissions, d.ContactSubmissions); err != nil {
		return err
	}
	if rows, err = appendRows(rows, colClientProjects, d.ClientProjects); err != nil {
		return err
	}
	if rows, err = appendRows(rows, colClientInvoices, d.ClientInvoices); err != nil {
		return err
	}
	if rows, err = appendRows(rows, colClientUsers, d.ClientUsers); err != nil {
		return err
	}
	if rows, err = appendRows(rows, colInitiatives, d.Initiatives); err != nil {
		return err
	}

	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&documentRow{}).Error; err != nil {
			return fmt.Errorf("clear documents: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 200).Error; err != nil {
			return fmt.Errorf("insert documents: %w", err)
		}
		return nil
	})
}

func appendDoc[T any](dst *[]T, raw []byte) error {
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return err
	}
	*dst = append(*dst, rec)
	return nil
}

func appendRows[T entity](rows []documentRow, collection string, items []T) ([]documentRow, error) {
	for i, rec := range items {
		raw, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("encode %s/%s: %w", collection, rec.EntityID(), err)
		}
		rows = append(rows, documentRow{
			Collection: collection,
			RecordID:   rec.EntityID(),
			Position:   i,
			Data:       raw,
		})
	}
	return rows, nil
}
