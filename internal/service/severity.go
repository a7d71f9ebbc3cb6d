package service

import "mindcare-backend/internal/model"

// severityBand is one row of a clinical cutoff table: scores at or above
// Lower (and below the next band's Lower) carry Label.
type severityBand struct {
	Lower int
	Label string
}

// CFQ severity category name (DASS-21 uses the question-group names).
const CategoryCFQ = "CFQ"

// Severity band labels.
const (
	BandNormal          = "Normal"
	BandMild            = "Mild"
	BandModerate        = "Moderate"
	BandSevere          = "Severe"
	BandExtremelySevere = "Extremely Severe"

	BandLow      = "Low"
	BandTypical  = "Typical"
	BandElevated = "Elevated"
	BandHigh     = "High"
)

// Clinical cutoff tables, kept as data so thresholds can be audited and
// changed without touching scoring logic. Bands are ordered by Lower;
// the lower bound is inclusive and the top band is unbounded above.
//
// DASS-21 cutoffs are the published ones for doubled subscale scores.
// The three categories deliberately do NOT share a table.
var severityTables = map[string]map[string][]severityBand{
	model.SurveyTypeDASS21: {
		model.GroupDepression: {
			{0, BandNormal},
			{10, BandMild},
			{14, BandModerate},
			{21, BandSevere},
			{28, BandExtremelySevere},
		},
		model.GroupAnxiety: {
			{0, BandNormal},
			{8, BandMild},
			{10, BandModerate},
			{15, BandSevere},
			{20, BandExtremelySevere},
		},
		model.GroupStress: {
			{0, BandNormal},
			{15, BandMild},
			{19, BandModerate},
			{26, BandSevere},
			{34, BandExtremelySevere},
		},
	},
	model.SurveyTypeCFQ: {
		CategoryCFQ: {
			{0, BandLow},
			{32, BandTypical},
			{52, BandElevated},
			{72, BandHigh},
		},
	},
}

// Classify maps a numeric score to its severity label for the given
// survey type and category. Pure table lookup. Scores below the lowest
// bound clamp to the lowest band; unknown (type, category) pairs return
// an empty label.
func Classify(surveyType, category string, score int) string {
	idx := classifyIndex(surveyType, category, score)
	if idx < 0 {
		return ""
	}
	return severityTables[surveyType][category][idx].Label
}

// classifyIndex returns the index of the matched band within its table,
// or -1 when the table does not exist. The index doubles as the band's
// ordinal rank for threshold comparisons.
func classifyIndex(surveyType, category string, score int) int {
	bands, ok := severityTables[surveyType][category]
	if !ok || len(bands) == 0 {
		return -1
	}
	matched := 0
	for i, band := range bands {
		if score >= band.Lower {
			matched = i
		}
	}
	return matched
}

// AtOrAboveBand reports whether score classifies at or above the band
// named bandLabel in the (surveyType, category) table. Unknown labels
// never match, so a DASS-21 threshold name cannot accidentally trigger
// on the CFQ table.
func AtOrAboveBand(surveyType, category string, score int, bandLabel string) bool {
	bands, ok := severityTables[surveyType][category]
	if !ok {
		return false
	}
	threshold := -1
	for i, band := range bands {
		if band.Label == bandLabel {
			threshold = i
			break
		}
	}
	if threshold < 0 {
		return false
	}
	return classifyIndex(surveyType, category, score) >= threshold
}

// SeverityLevels builds the full label map for a persisted result: one
// label per applicable category for the result's survey type.
func SeverityLevels(surveyType string, result *model.SurveyResult) map[string]string {
	levels := make(map[string]string)
	if surveyType == model.SurveyTypeDASS21 {
		levels[model.GroupDepression] = Classify(surveyType, model.GroupDepression, result.DepressionScore)
		levels[model.GroupAnxiety] = Classify(surveyType, model.GroupAnxiety, result.AnxietyScore)
		levels[model.GroupStress] = Classify(surveyType, model.GroupStress, result.StressScore)
	} else {
		levels[CategoryCFQ] = Classify(model.SurveyTypeCFQ, CategoryCFQ, result.TotalScore)
	}
	return levels
}
