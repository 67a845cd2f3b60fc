// Package output serializes, exports and renders analysis reports.
package output

import (
	"encoding/json"

	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

// ToJSON serializes a report to JSON.
func ToJSON(rep *models.Report, pretty bool) ([]byte, error) {
	return marshal(rep, pretty)
}

// MetadataToJSON serializes the run metadata of a report to JSON.
func MetadataToJSON(meta *models.Metadata, pretty bool) ([]byte, error) {
	return marshal(meta, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
