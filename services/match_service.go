package services

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"yuanfen_server/models"

	"go.uber.org/zap"
)

// Factor weights. They sum to 1.0, so a total score always lands in [0, 1].
const (
	weightEducation   = 0.20
	weightAge         = 0.15
	weightHeight      = 0.10
	weightPersonality = 0.20
	weightHobbies     = 0.20
	weightLocation    = 0.15
)

// DefaultRecommendationLimit caps how many candidates a recommendation
// response carries.
const DefaultRecommendationLimit = 10

// ProfileDirectory is the directory surface the recommender consumes.
// *UserProfileService is the production implementation.
type ProfileDirectory interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	ListCandidates(ctx context.Context, gender, excludeUserID string) ([]models.UserProfile, error)
}

var _ ProfileDirectory = (*UserProfileService)(nil)

type MatchService struct {
	Directory ProfileDirectory
	Log       *zap.SugaredLogger
}

// GetRecommendations loads the requester's profile, scores every
// opposite-gender candidate and returns the top matches, redacted and
// ordered by descending score.
func (ms *MatchService) GetRecommendations(ctx context.Context, userID string) ([]models.Recommendation, error) {
	requester, err := ms.Directory.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := ms.Directory.ListCandidates(ctx, requester.Gender, requester.UserID)
	if err != nil {
		return nil, err
	}

	recs := BuildRecommendations(requester, candidates, DefaultRecommendationLimit)
	if ms.Log != nil {
		ms.Log.Infow("recommendations computed", "userId", userID, "candidates", len(candidates), "returned", len(recs))
	}
	return recs, nil
}

// BuildRecommendations scores candidates against the requester, strips
// sensitive fields, sorts by descending matchScore (ties broken by
// ascending userId for determinism) and truncates to limit.
func BuildRecommendations(requester *models.UserProfile, candidates []models.UserProfile, limit int) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		if c.UserID == requester.UserID || c.Gender == requester.Gender {
			continue
		}
		recs = append(recs, models.Recommendation{
			PublicProfile: c.Public(),
			MatchScore:    CalculateMatchScore(requester, c),
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].MatchScore != recs[j].MatchScore {
			return recs[i].MatchScore > recs[j].MatchScore
		}
		return recs[i].UserID < recs[j].UserID
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// CalculateMatchScore computes the weighted compatibility score between two
// profiles. Always in [0, 1]; missing or malformed optional fields degrade
// the affected factor to 0 rather than failing — partial profiles stay
// rankable.
func CalculateMatchScore(a, b *models.UserProfile) float64 {
	score := 0.0
	score += weightEducation * educationScore(a.Education, b.Education)
	score += weightAge * ageScore(a.BirthDate, b.BirthDate)
	score += weightHeight * heightScore(a.Height, b.Height)
	score += weightPersonality * personalityScore(a.MBTI, b.MBTI)
	score += weightHobbies * hobbyScore(a.Hobbies, b.Hobbies)
	score += weightLocation * locationScore(a.CurrentCity, b.CurrentCity)
	return score
}

// educationScore maps both labels onto the fixed ordinal scale and decays
// linearly with rank distance. Any unmapped label forfeits the factor.
func educationScore(edu1, edu2 string) float64 {
	i1 := models.EducationRank(edu1)
	i2 := models.EducationRank(edu2)
	if i1 < 0 || i2 < 0 {
		return 0
	}
	return 1 - math.Abs(float64(i1-i2))/float64(len(models.EducationLevels))
}

// ageScore uses calendar-year subtraction, deliberately ignoring month and
// day. Changing this would shift every score near birthdays.
func ageScore(birth1, birth2 string) float64 {
	y1, ok1 := birthYear(birth1)
	y2, ok2 := birthYear(birth2)
	if !ok1 || !ok2 {
		return 0
	}
	currentYear := time.Now().Year()
	diff := math.Abs(float64((currentYear - y1) - (currentYear - y2)))
	return 1 - math.Min(diff/10, 1)
}

func heightScore(h1, h2 int) float64 {
	if h1 <= 0 || h2 <= 0 {
		return 0
	}
	diff := math.Abs(float64(h1 - h2))
	return 1 - math.Min(diff/30, 1)
}

// personalityScore compares MBTI codes: exact match, same temperament group
// (first two characters), or neither. Absent codes forfeit the factor; the
// weight is not redistributed.
func personalityScore(mbti1, mbti2 string) float64 {
	if mbti1 == "" || mbti2 == "" {
		return 0
	}
	if mbti1 == mbti2 {
		return 1.0
	}
	if len(mbti1) >= 2 && len(mbti2) >= 2 && mbti1[:2] == mbti2[:2] {
		return 0.5
	}
	return 0.2
}

// hobbyScore is set overlap over the larger set. Duplicates and ordering in
// the stored delimited string never change the result.
func hobbyScore(hobbies1, hobbies2 string) float64 {
	s1 := hobbySet(hobbies1)
	s2 := hobbySet(hobbies2)
	if len(s1) == 0 || len(s2) == 0 {
		return 0
	}
	common := 0
	for h := range s1 {
		if _, ok := s2[h]; ok {
			common++
		}
	}
	larger := len(s1)
	if len(s2) > larger {
		larger = len(s2)
	}
	return float64(common) / float64(larger)
}

func locationScore(city1, city2 string) float64 {
	if city1 == city2 {
		return 1.0
	}
	return 0
}

// hobbySet splits a comma-delimited hobby string into a de-duplicated set
// of trimmed, non-empty labels.
func hobbySet(hobbies string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, h := range strings.Split(hobbies, ",") {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		set[h] = struct{}{}
	}
	return set
}

// birthYear parses the stored birth date, accepting the date-only form and
// full RFC3339 timestamps from older records.
func birthYear(birthDate string) (int, bool) {
	if birthDate == "" {
		return 0, false
	}
	if t, err := time.Parse("2006-01-02", birthDate); err == nil {
		return t.Year(), true
	}
	if t, err := time.Parse(time.RFC3339, birthDate); err == nil {
		return t.Year(), true
	}
	return 0, false
}
