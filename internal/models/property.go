// internal/models/property.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Property is the stored row shape. The three collection columns hold raw
// JSON because older rows were written with the array JSON-encoded inside a
// string; both representations are accepted and decoded by the normalizer in
// the property service.
type Property struct {
	BaseModel
	Title       string `json:"title" gorm:"size:255"`
	Description string `json:"description" gorm:"type:text"`
	City        string `json:"city" gorm:"size:100;index"`
	Location    string `json:"location" gorm:"size:255"`
	Type        string `json:"type" gorm:"size:100;index"`
	About       string `json:"about" gorm:"type:text"`

	// Free-text on purpose: upstream data entry mixes units into the value
	// ("₹78.5 Lacs", "1000 sq.ft.").
	Price      string `json:"price" gorm:"size:100"`
	Status     string `json:"status" gorm:"size:100"`
	CarpetArea string `json:"carpet_area" gorm:"size:100"`

	Bedrooms  *int `json:"bedrooms"`
	Bathrooms *int `json:"bathrooms"`

	PropertyImgURL1 string `json:"property_img_url_1" gorm:"column:property_img_url_1;size:512"`
	PropertyImgURL2 string `json:"property_img_url_2" gorm:"column:property_img_url_2;size:512"`
	PropertyVidURL  string `json:"property_vid_url" gorm:"column:property_vid_url;size:512"`

	ReraInfo  string     `json:"rera_info" gorm:"type:text"`
	BuilderID *uuid.UUID `json:"builder_id" gorm:"type:uuid"`

	MediaURLs         datatypes.JSON `json:"media_urls" gorm:"type:jsonb"`
	FeaturesAmenities datatypes.JSON `json:"features_amenities" gorm:"type:jsonb"`
	ProjectHighlights datatypes.JSON `json:"project_highlights" gorm:"type:jsonb"`

	FAQs []PropertyFAQ `json:"faqs,omitempty" gorm:"foreignKey:PropertyID"`
}

// PropertyData is the canonical in-memory shape served to clients: list
// fields are always native ordered lists (never raw JSON, never null) and
// the title always has a value.
type PropertyData struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	City              string   `json:"city,omitempty"`
	Location          string   `json:"location,omitempty"`
	Type              string   `json:"type,omitempty"`
	Price             string   `json:"price,omitempty"`
	Status            string   `json:"status,omitempty"`
	CarpetArea        string   `json:"carpet_area,omitempty"`
	About             string   `json:"about,omitempty"`
	Bedrooms          *int     `json:"bedrooms,omitempty"`
	Bathrooms         *int     `json:"bathrooms,omitempty"`
	PropertyImgURL1   string   `json:"property_img_url_1,omitempty"`
	PropertyImgURL2   string   `json:"property_img_url_2,omitempty"`
	PropertyVidURL    string   `json:"property_vid_url,omitempty"`
	ReraInfo          string   `json:"rera_info,omitempty"`
	BuilderID         string   `json:"builder_id,omitempty"`
	MediaURLs         []string `json:"media_urls"`
	FeaturesAmenities []string `json:"features_amenities"`
	ProjectHighlights []string `json:"project_highlights"`
	CreatedAt         string   `json:"created_at,omitempty"`
}
