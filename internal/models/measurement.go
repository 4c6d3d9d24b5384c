// ABOUTME: Measurement field names and units for progress entries.
// ABOUTME: Defines the 15 body measurements the app knows how to label.
package models

// MeasurementType names a body measurement recorded on a ProgressEntry.
type MeasurementType string

const (
	// Torso
	MeasureNeck      MeasurementType = "neck"
	MeasureShoulders MeasurementType = "shoulders"
	MeasureChest     MeasurementType = "chest"
	MeasureWaist     MeasurementType = "waist"
	MeasureHips      MeasurementType = "hips"

	// Arms
	MeasureBicepLeft    MeasurementType = "bicepLeft"
	MeasureBicepRight   MeasurementType = "bicepRight"
	MeasureForearmLeft  MeasurementType = "forearmLeft"
	MeasureForearmRight MeasurementType = "forearmRight"

	// Legs
	MeasureThighLeft  MeasurementType = "thighLeft"
	MeasureThighRight MeasurementType = "thighRight"
	MeasureQuadLeft   MeasurementType = "quadLeft"
	MeasureQuadRight  MeasurementType = "quadRight"
	MeasureCalfLeft   MeasurementType = "calfLeft"
	MeasureCalfRight  MeasurementType = "calfRight"
)

// MeasurementLabels maps measurement types to display labels.
var MeasurementLabels = map[MeasurementType]string{
	MeasureNeck:         "Neck",
	MeasureShoulders:    "Shoulders",
	MeasureChest:        "Chest",
	MeasureWaist:        "Waist",
	MeasureHips:         "Hips",
	MeasureBicepLeft:    "Bicep (L)",
	MeasureBicepRight:   "Bicep (R)",
	MeasureForearmLeft:  "Forearm (L)",
	MeasureForearmRight: "Forearm (R)",
	MeasureThighLeft:    "Thigh (L)",
	MeasureThighRight:   "Thigh (R)",
	MeasureQuadLeft:     "Quad (L)",
	MeasureQuadRight:    "Quad (R)",
	MeasureCalfLeft:     "Calf (L)",
	MeasureCalfRight:    "Calf (R)",
}

// MeasurementUnit is the unit for every body measurement.
const MeasurementUnit = "cm"

// AllMeasurementTypes returns the known measurement types in display order.
var AllMeasurementTypes = []MeasurementType{
	MeasureNeck, MeasureShoulders, MeasureChest, MeasureWaist, MeasureHips,
	MeasureBicepLeft, MeasureBicepRight, MeasureForearmLeft, MeasureForearmRight,
	MeasureThighLeft, MeasureThighRight, MeasureQuadLeft, MeasureQuadRight,
	MeasureCalfLeft, MeasureCalfRight,
}

// IsKnownMeasurement checks if a string is one of the labelled measurements.
// Entries may still carry other keys.
func IsKnownMeasurement(s string) bool {
	_, ok := MeasurementLabels[MeasurementType(s)]
	return ok
}

// MeasurementLabel returns the display label for a key, or the key itself
// when it is not one of the known measurements.
func MeasurementLabel(key string) string {
	if label, ok := MeasurementLabels[MeasurementType(key)]; ok {
		return label
	}
	return key
}
