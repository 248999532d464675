// torre/types.go
package torre

////////////////////////////////////////////////////////////////////////
// Upstream record shapes
////////////////////////////////////////////////////////////////////////

// The structs below mirror the documented upstream JSON shapes. They are
// read-only snapshots: the service never mutates them, and every consumer
// (prompt builder, report layout) must tolerate any field being absent, so
// nothing here carries validation tags. Fields the service never reads are
// intentionally left out; the proxy endpoints relay raw upstream bytes and do
// not lose them.

// SearchRequest is the filter body forwarded to the opportunity search
// endpoint: a conjunction of single-key filter objects.
// Example: {"and":[{"keywords":{"term":"designer","locale":"en"}}]}
type SearchRequest struct {
	And []map[string]any `json:"and,omitempty"`
}

// SearchResponse is the typed envelope of a search call.
type SearchResponse struct {
	Total   int              `json:"total"`
	Size    int              `json:"size"`
	Offset  int              `json:"offset,omitempty"`
	Results []map[string]any `json:"results"`
}

// Organization is the hiring organization attached to a job.
type Organization struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// JobStrength is a skill the job asks for.
type JobStrength struct {
	Name       string `json:"name,omitempty"`
	Experience string `json:"experience,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// JobLanguage is a language requirement on a job.
type JobLanguage struct {
	Language string `json:"language,omitempty"`
	Fluency  string `json:"fluency,omitempty"`
}

// Place describes where a job can be performed.
type Place struct {
	Remote   bool             `json:"remote,omitempty"`
	Anywhere bool             `json:"anywhere,omitempty"`
	Location []map[string]any `json:"location,omitempty"`
}

// JobDetail is one titled content block of a job posting
// (e.g. code "responsibilities" or "requirements").
type JobDetail struct {
	Code    string `json:"code,omitempty"`
	Content string `json:"content,omitempty"`
}

// Commitment is the engagement type of a job (full-time, freelance, ...).
type Commitment struct {
	Code string `json:"code,omitempty"`
}

// CompensationData is the visible salary range of a job, when published.
type CompensationData struct {
	Code        string  `json:"code,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	MinAmount   float64 `json:"minAmount,omitempty"`
	MaxAmount   float64 `json:"maxAmount,omitempty"`
	Periodicity string  `json:"periodicity,omitempty"`
}

// Compensation wraps the salary data with its visibility flag.
type Compensation struct {
	Data    *CompensationData `json:"data,omitempty"`
	Visible bool              `json:"visible,omitempty"`
}

// Member is a person attached to a job posting (poster, manager, ...).
type Member struct {
	Name                 string `json:"name,omitempty"`
	Username             string `json:"username,omitempty"`
	ProfessionalHeadline string `json:"professionalHeadline,omitempty"`
	Manager              bool   `json:"manager,omitempty"`
	Poster               bool   `json:"poster,omitempty"`
}

// JobRecord is the full job posting returned by the job detail endpoint.
type JobRecord struct {
	ID            string         `json:"id,omitempty"`
	Objective     string         `json:"objective,omitempty"`
	Tagline       string         `json:"tagline,omitempty"`
	Organizations []Organization `json:"organizations,omitempty"`
	Strengths     []JobStrength  `json:"strengths,omitempty"`
	Languages     []JobLanguage  `json:"languages,omitempty"`
	Place         *Place         `json:"place,omitempty"`
	Details       []JobDetail    `json:"details,omitempty"`
	Commitment    *Commitment    `json:"commitment,omitempty"`
	Compensation  *Compensation  `json:"compensation,omitempty"`
	Members       []Member       `json:"members,omitempty"`
}

// OrganizationName returns the first hiring organization's name, or "".
func (j *JobRecord) OrganizationName() string {
	if j == nil || len(j.Organizations) == 0 {
		return ""
	}
	return j.Organizations[0].Name
}

////////////////////////////////////////////////////////////////////////

// Person is the identity block of a genome.
type Person struct {
	Name                 string         `json:"name,omitempty"`
	ProfessionalHeadline string         `json:"professionalHeadline,omitempty"`
	Picture              string         `json:"picture,omitempty"`
	SummaryOfBio         string         `json:"summaryOfBio,omitempty"`
	Location             map[string]any `json:"location,omitempty"`
}

// GenomeStrength is one skill in a candidate's genome.
type GenomeStrength struct {
	Name            string  `json:"name,omitempty"`
	Proficiency     string  `json:"proficiency,omitempty"`
	Weight          float64 `json:"weight,omitempty"`
	Recommendations int     `json:"recommendations,omitempty"`
}

// Experience is one entry of a genome's jobs/education/projects/awards/
// publications lists; upstream uses the same shape for all of them.
type Experience struct {
	Name          string         `json:"name,omitempty"`
	Category      string         `json:"category,omitempty"`
	FromMonth     string         `json:"fromMonth,omitempty"`
	FromYear      string         `json:"fromYear,omitempty"`
	ToMonth       string         `json:"toMonth,omitempty"`
	ToYear        string         `json:"toYear,omitempty"`
	Organizations []Organization `json:"organizations,omitempty"`
}

// GenomeLanguage is a language a candidate speaks.
type GenomeLanguage struct {
	Code     string `json:"code,omitempty"`
	Language string `json:"language,omitempty"`
	Fluency  string `json:"fluency,omitempty"`
}

// GenomeRecord is the candidate profile returned by the genome endpoint.
type GenomeRecord struct {
	Person       *Person          `json:"person,omitempty"`
	Stats        map[string]any   `json:"stats,omitempty"`
	Strengths    []GenomeStrength `json:"strengths,omitempty"`
	Jobs         []Experience     `json:"jobs,omitempty"`
	Education    []Experience     `json:"education,omitempty"`
	Projects     []Experience     `json:"projects,omitempty"`
	Awards       []Experience     `json:"awards,omitempty"`
	Publications []Experience     `json:"publications,omitempty"`
	Languages    []GenomeLanguage `json:"languages,omitempty"`
}

// PersonName returns the candidate's display name, or "".
func (g *GenomeRecord) PersonName() string {
	if g == nil || g.Person == nil {
		return ""
	}
	return g.Person.Name
}

// Headline returns the candidate's professional headline, or "".
func (g *GenomeRecord) Headline() string {
	if g == nil || g.Person == nil {
		return ""
	}
	return g.Person.ProfessionalHeadline
}
