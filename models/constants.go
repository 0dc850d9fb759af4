package models

// ✅ Gender values (binary, used for opposite-gender filtering)
const (
	GenderMale   = "男"
	GenderFemale = "女"
)

// EducationLevels is the fixed ordinal education scale, lowest first.
// A label's position in this slice is its ordinal rank for scoring.
var EducationLevels = []string{"高中", "专科", "本科", "硕士", "博士"}

// EducationRank returns the zero-based position of an education label in
// the fixed scale, or -1 when the label does not map.
func EducationRank(label string) int {
	for i, lvl := range EducationLevels {
		if lvl == label {
			return i
		}
	}
	return -1
}
