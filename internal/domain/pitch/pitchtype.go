package pitch

import "strings"

// pitchTypeSynonyms folds the vendors' pitch-type vocabularies onto the
// canonical short codes. Unknown codes pass through unchanged so an
// unanticipated vendor label is preserved rather than dropped.
var pitchTypeSynonyms = map[string]string{
	"FF": "4FB", "FA": "4FB", "4-SEAM": "4FB", "FASTBALL": "4FB", "4FB": "4FB", "4SEAM": "4FB",
	"FT": "2FB", "2-SEAM": "2FB", "2FB": "2FB", "2SEAM": "2FB",
	"SI": "SI", "SINKER": "SI",
	"FC": "CT", "CUTTER": "CT", "CT": "CT",
	"CU": "CB", "CURVE": "CB", "CURVEBALL": "CB", "CB": "CB",
	"SL": "SL", "SLIDER": "SL",
	"CH": "CH", "CHANGEUP": "CH", "CHANGE": "CH",
	"FS": "SPL", "SPLIT": "SPL", "SPLITTER": "SPL", "SPL": "SPL",
	"KN": "KN", "KNUCKLEBALL": "KN",
	"SB": "SB", "SCREWBALL": "SB",
}

// StandardizePitchType maps a vendor pitch-type code onto the canonical
// abbreviation. Empty input stays empty.
func StandardizePitchType(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	code = strings.ReplaceAll(code, " ", "")
	if code == "" {
		return ""
	}
	if canonical, ok := pitchTypeSynonyms[code]; ok {
		return canonical
	}
	return code
}
