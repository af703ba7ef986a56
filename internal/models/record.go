package models

import "time"

// Record is the identity contract shared by every stored entity. Stamp is
// called once on create, Touch on every update.
type Record interface {
	RecordID() string
	Stamp(id string, now time.Time)
	Touch(now time.Time)
}

// Meta carries the identity and timestamps embedded in every entity.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m Meta) RecordID() string { return m.ID }

func (m *Meta) Stamp(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
}

func (m *Meta) Touch(now time.Time) {
	m.UpdatedAt = now
}

// CollectionEntry is the SQL row behind one key of the record store.
type CollectionEntry struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (CollectionEntry) TableName() string { return "collection_entries" }
