package models

// Resume is the fixed-shape document the generation pipeline produces. It is
// ephemeral: assembled per request and returned directly, never persisted.
type Resume struct {
	PersonalInfo              PersonalInfo        `json:"personalInfo"`
	Objective                 string              `json:"objective"`
	Education                 []ResumeEducation   `json:"education"`
	TechnicalSkills           TechnicalSkills     `json:"technicalSkills"`
	Projects                  []ResumeProject     `json:"projects"`
	Experience                []ResumeExperience  `json:"experience"`
	Achievements              []ResumeAchievement `json:"achievements"`
	ExtracurricularActivities []string            `json:"extracurricularActivities"`
	GeneratedBy               string              `json:"generatedBy"`
}

type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

type ResumeEducation struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year,omitempty"`
	Grade       string `json:"grade,omitempty"`
	Highlight   string `json:"highlight,omitempty"`
}

// TechnicalSkills groups extracted skill keywords into resume sub-sections.
type TechnicalSkills struct {
	ProgrammingLanguages   []string `json:"programmingLanguages"`
	FrameworksAndLibraries []string `json:"frameworksAndLibraries"`
	ToolsAndPlatforms      []string `json:"toolsAndPlatforms"`
	OtherSkills            []string `json:"otherSkills"`
}

type ResumeProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
	Link        string `json:"link,omitempty"`
}

type ResumeExperience struct {
	Role         string `json:"role"`
	Organization string `json:"organization"`
	Duration     string `json:"duration,omitempty"`
	Description  string `json:"description"`
}

type ResumeAchievement struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	Level  string `json:"level,omitempty"`
}
