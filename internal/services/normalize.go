// internal/services/normalize.go
package services

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/models"
)

const untitledProperty = "Untitled Property"

// NormalizeProperty converts a stored property row into the canonical shape
// served to clients. Collection columns hold raw JSON that is either a
// native array or, in older rows, an array JSON-encoded inside a string;
// both decode to a native list here. A malformed field never fails the whole
// row, it degrades to that field's empty default.
func NormalizeProperty(p *models.Property) models.PropertyData {
	data := models.PropertyData{
		ID:                p.ID.String(),
		Title:             p.Title,
		Description:       p.Description,
		City:              p.City,
		Location:          p.Location,
		Type:              p.Type,
		Price:             p.Price,
		Status:            p.Status,
		CarpetArea:        p.CarpetArea,
		About:             p.About,
		Bedrooms:          p.Bedrooms,
		Bathrooms:         p.Bathrooms,
		PropertyImgURL1:   p.PropertyImgURL1,
		PropertyImgURL2:   p.PropertyImgURL2,
		PropertyVidURL:    p.PropertyVidURL,
		ReraInfo:          p.ReraInfo,
		MediaURLs:         DecodeStringList(p.MediaURLs),
		FeaturesAmenities: DecodeStringList(p.FeaturesAmenities),
		ProjectHighlights: DecodeStringList(p.ProjectHighlights),
	}

	if data.Title == "" {
		data.Title = untitledProperty
	}
	if p.BuilderID != nil {
		data.BuilderID = p.BuilderID.String()
	}
	if !p.CreatedAt.IsZero() {
		data.CreatedAt = p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}

	return data
}

// NormalizeProperties applies NormalizeProperty per element, preserving
// input order.
func NormalizeProperties(rows []models.Property) []models.PropertyData {
	out := make([]models.PropertyData, 0, len(rows))
	for i := range rows {
		out = append(out, NormalizeProperty(&rows[i]))
	}
	return out
}

// DecodeStringList decodes a raw JSON collection column to a native ordered
// list. Accepted inputs: a JSON array, or a JSON string containing an
// encoded array. Anything else, including malformed JSON, yields an empty
// list.
func DecodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return []string{}
	}

	switch v := value.(type) {
	case []interface{}:
		return toStringList(v)
	case string:
		var inner interface{}
		if err := json.Unmarshal([]byte(v), &inner); err != nil {
			return []string{}
		}
		if arr, ok := inner.([]interface{}); ok {
			return toStringList(arr)
		}
		return []string{}
	default:
		return []string{}
	}
}

// EncodeStringList is the write-side counterpart of DecodeStringList; new
// rows are always written as native JSON arrays.
func EncodeStringList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

func toStringList(items []interface{}) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(item))
	}
	return out
}
