package models

import "time"

// ResourceModel is a curated external article or video. URL is the natural
// dedup key during bulk import. Tags are stored comma-joined (see tags.go).
type ResourceModel struct {
	Base
	Title        string     `json:"title"         gorm:"size:300;not null"`
	Summary      string     `json:"summary"       gorm:"type:text"`
	URL          string     `json:"url"           gorm:"size:1000"`
	Source       string     `json:"source"        gorm:"size:100"`
	ResourceType string     `json:"resource_type" gorm:"size:20"`
	Tags         string     `json:"-"             gorm:"size:300"`
	PublishedAt  *time.Time `json:"published_at"`
	Verified     bool       `json:"verified"      gorm:"default:false"`
}

func (ResourceModel) TableName() string { return "resources" }
