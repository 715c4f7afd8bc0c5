package model

// Division is one of the studio's public-facing practice areas.
type Division struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // Labs | Studios | Immersive | Entertainment
	Title       string `json:"title"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
	Color       string `json:"color"`
	ThemeColor  string `json:"themeColor"`
	BannerImage string `json:"bannerImage,omitempty"`
}

func (d Division) EntityID() string { return d.ID }

// Project is a public case study shown on the marketing site. Client
// projects and invoices reference it by id; those references may dangle
// after a delete.
type Project struct {
	ID         string   `json:"id"`
	DivisionID string   `json:"divisionId"`
	Title      string   `json:"title"`
	Client     string   `json:"client,omitempty"`
	Summary    string   `json:"summary"`
	Content    string   `json:"content"`
	Images     []string `json:"images"`
	Year       string   `json:"year"`
}

func (p Project) EntityID() string { return p.ID }

type LearningStats struct {
	CurrentStreak int    `json:"currentStreak"`
	TotalHours    int    `json:"totalHours"`
	LastTopic     string `json:"lastTopic"`
}

type FitnessStats struct {
	ActivityType  string `json:"activityType"`
	WeeklyMinutes int    `json:"weeklyMinutes"`
	PersonalBest  string `json:"personalBest"`
}

type TeamMember struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Role          string         `json:"role"`
	Bio           string         `json:"bio"`
	Image         string         `json:"image"`
	LinkedIn      string         `json:"linkedIn,omitempty"`
	ProjectIDs    []string       `json:"projectIds"`
	CSRActivities []string       `json:"csrActivities"`
	Skills        []string       `json:"skills"`
	Interests     []string       `json:"interests"`
	Quote         string         `json:"quote,omitempty"`
	LearningStats *LearningStats `json:"learningStats,omitempty"`
	FitnessStats  *FitnessStats  `json:"fitnessStats,omitempty"`
}

func (m TeamMember) EntityID() string { return m.ID }

type CSRStat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

// Initiative is a CSR program page.
type Initiative struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	FullContent string    `json:"fullContent"`
	IconName    string    `json:"iconName"`
	Color       string    `json:"color"`
	BgHover     string    `json:"bgHover"`
	TextHover   string    `json:"textHover"`
	Stats       []CSRStat `json:"stats"`
}

func (i Initiative) EntityID() string { return i.ID }
