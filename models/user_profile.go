package models

// CarAndHouse captures the car/house ownership flags as typed fields.
type CarAndHouse struct {
	HasCar   bool `dynamodbav:"hasCar" json:"hasCar"`
	HasHouse bool `dynamodbav:"hasHouse" json:"hasHouse"`
}

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID       string      `dynamodbav:"userId" json:"userId"`
	Name         string      `dynamodbav:"name,omitempty" json:"name,omitempty"`
	EmailID      string      `dynamodbav:"emailId,omitempty" json:"emailId,omitempty"`
	Password     string      `dynamodbav:"password,omitempty" json:"-"`
	Gender       string      `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
	BirthDate    string      `dynamodbav:"birthDate,omitempty" json:"birthDate,omitempty"`
	BirthPlace   string      `dynamodbav:"birthPlace,omitempty" json:"birthPlace,omitempty"`
	CurrentCity  string      `dynamodbav:"currentCity,omitempty" json:"currentCity,omitempty"`
	Education    string      `dynamodbav:"education,omitempty" json:"education,omitempty"`
	CarAndHouse  CarAndHouse `dynamodbav:"carAndHouse" json:"carAndHouse"`
	Industry     string      `dynamodbav:"industry,omitempty" json:"industry,omitempty"`
	Occupation   string      `dynamodbav:"occupation,omitempty" json:"occupation,omitempty"`
	AnnualIncome string      `dynamodbav:"annualIncome,omitempty" json:"annualIncome,omitempty"`
	Height       int         `dynamodbav:"height,omitempty" json:"height,omitempty"`
	Weight       int         `dynamodbav:"weight,omitempty" json:"weight,omitempty"`
	Personality  string      `dynamodbav:"personality,omitempty" json:"personality,omitempty"`
	Hobbies      string      `dynamodbav:"hobbies,omitempty" json:"hobbies,omitempty"`
	MBTI         string      `dynamodbav:"mbti,omitempty" json:"mbti,omitempty"`
	CreatedAt    string      `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    string      `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// PublicProfile is a UserProfile with the sensitive fields (password hash,
// email) stripped. Anything returned to a user other than the profile owner
// must go through this shape.
type PublicProfile struct {
	UserID       string      `json:"userId"`
	Name         string      `json:"name,omitempty"`
	Gender       string      `json:"gender,omitempty"`
	BirthDate    string      `json:"birthDate,omitempty"`
	BirthPlace   string      `json:"birthPlace,omitempty"`
	CurrentCity  string      `json:"currentCity,omitempty"`
	Education    string      `json:"education,omitempty"`
	CarAndHouse  CarAndHouse `json:"carAndHouse"`
	Industry     string      `json:"industry,omitempty"`
	Occupation   string      `json:"occupation,omitempty"`
	AnnualIncome string      `json:"annualIncome,omitempty"`
	Height       int         `json:"height,omitempty"`
	Weight       int         `json:"weight,omitempty"`
	Personality  string      `json:"personality,omitempty"`
	Hobbies      string      `json:"hobbies,omitempty"`
	MBTI         string      `json:"mbti,omitempty"`
	CreatedAt    string      `json:"createdAt,omitempty"`
}

// Public returns the redacted view of the profile.
func (p UserProfile) Public() PublicProfile {
	return PublicProfile{
		UserID:       p.UserID,
		Name:         p.Name,
		Gender:       p.Gender,
		BirthDate:    p.BirthDate,
		BirthPlace:   p.BirthPlace,
		CurrentCity:  p.CurrentCity,
		Education:    p.Education,
		CarAndHouse:  p.CarAndHouse,
		Industry:     p.Industry,
		Occupation:   p.Occupation,
		AnnualIncome: p.AnnualIncome,
		Height:       p.Height,
		Weight:       p.Weight,
		Personality:  p.Personality,
		Hobbies:      p.Hobbies,
		MBTI:         p.MBTI,
		CreatedAt:    p.CreatedAt,
	}
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"

// EmailIndex is the GSI on UserProfiles keyed by emailId
const EmailIndex = "EmailIndex"
