package model

// Fluency is an ordinal self-rating of how well a member knows a
// language or skill.
type Fluency string

const (
	FluencyBeginner     Fluency = "Beginner"
	FluencyIntermediate Fluency = "Intermediate"
	FluencyAdvanced     Fluency = "Advanced"
	FluencyExpert       Fluency = "Expert"
)

// Fluencies lists all valid fluency levels in ascending order.
var Fluencies = []Fluency{
	FluencyBeginner,
	FluencyIntermediate,
	FluencyAdvanced,
	FluencyExpert,
}

// IsValid returns true if the fluency is one of the enumerated levels.
func (f Fluency) IsValid() bool {
	for _, v := range Fluencies {
		if f == v {
			return true
		}
	}
	return false
}

// Course identifies one of the degree programmes offered by the college.
type Course string

const (
	CourseBTech Course = "B.Tech"
	CourseMTech Course = "M.Tech"
	CourseBCA   Course = "BCA"
	CourseMCA   Course = "MCA"
	CourseBSc   Course = "B.Sc"
	CourseMSc   Course = "M.Sc"
)

// CourseSemesters maps each course to the number of semesters it runs.
// Semester values beyond this count are invalid for the course.
var CourseSemesters = map[Course]int{
	CourseBTech: 8,
	CourseMTech: 4,
	CourseBCA:   6,
	CourseMCA:   4,
	CourseBSc:   6,
	CourseMSc:   4,
}

// IsValid returns true if the course is one of the enumerated programmes.
// The "Select course" placeholder the form renders as its first option is
// not a course and fails this check.
func (c Course) IsValid() bool {
	_, ok := CourseSemesters[c]
	return ok
}

// romanSemesters indexes roman numerals by semester number, 1-based.
var romanSemesters = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII"}

// ValidSemesters returns the semester strings accepted for a course, in
// the "<course>: <numeral>" format the form uses (e.g. "MCA: II").
func (c Course) ValidSemesters() []string {
	n, ok := CourseSemesters[c]
	if !ok {
		return nil
	}
	semesters := make([]string, 0, n)
	for i := 0; i < n; i++ {
		semesters = append(semesters, string(c)+": "+romanSemesters[i])
	}
	return semesters
}

// HasSemester reports whether the given semester string is valid for the
// course.
func (c Course) HasSemester(semester string) bool {
	for _, s := range c.ValidSemesters() {
		if s == semester {
			return true
		}
	}
	return false
}

// Field length constraints for the profile document.
const (
	MinNameLength        = 2
	MaxNameLength        = 50
	MaxAboutLength       = 200
	MaxAddressLength     = 200
	MinProjectNameLength = 2
	MinProjectDescLength = 10
	MinDurationLength    = 2
	MaxAchievementLength = 50
)

// LanguageEntry is one row of the programming-languages sub-list.
type LanguageEntry struct {
	Name    string  `json:"name" validate:"required"`
	Fluency Fluency `json:"fluency" validate:"required,fluency"`
}

// SkillEntry is one row of the skills sub-list.
type SkillEntry struct {
	Name    string  `json:"name" validate:"required"`
	Fluency Fluency `json:"fluency" validate:"required,fluency"`
}

// ProjectEntry is one row of the projects sub-list.
type ProjectEntry struct {
	Name             string   `json:"name" validate:"required,min=2"`
	Description      string   `json:"description" validate:"required,min=10"`
	TechnologiesUsed []string `json:"technologiesUsed" validate:"required,min=1,dive,required"`
	Link             string   `json:"link,omitempty" validate:"omitempty,url"`
	Duration         string   `json:"duration" validate:"required,min=2"`
}

// AchievementEntry is one row of the achievements sub-list.
type AchievementEntry struct {
	Name string `json:"name" validate:"required,max=50"`
}

// ProfileDocument is the full profile/portfolio document a member edits
// and submits. It exists only for the lifetime of a draft form session;
// submission validates and logs it, nothing is persisted.
type ProfileDocument struct {
	Name             string `json:"name" validate:"required,min=2,max=50"`
	Title            string `json:"title" validate:"required,min=2,max=50"`
	About            string `json:"about" validate:"required,max=200"`
	DateOfBirth      string `json:"dateOfBirth" validate:"required,pastdate"`
	Address          string `json:"address" validate:"required,max=200"`
	EnrollmentNumber string `json:"enrollmentNumber" validate:"required,enrollment"`
	FacultyNumber    string `json:"facultyNumber" validate:"required,faculty"`
	Course           Course `json:"course" validate:"required,course"`
	Semester         string `json:"semester" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,phone"`
	GitHub           string `json:"github,omitempty" validate:"omitempty,hostedurl=github.com"`
	LinkedIn         string `json:"linkedin,omitempty" validate:"omitempty,hostedurl=linkedin.com"`

	Languages    []LanguageEntry    `json:"languages" validate:"dive"`
	Skills       []SkillEntry       `json:"skills" validate:"dive"`
	Projects     []ProjectEntry     `json:"projects" validate:"dive"`
	Achievements []AchievementEntry `json:"achievements" validate:"dive"`
}

// UpdateProfileFieldsRequest is a partial update of the document's scalar
// fields. Nil pointers leave the current value untouched.
type UpdateProfileFieldsRequest struct {
	Name             *string `json:"name,omitempty"`
	Title            *string `json:"title,omitempty"`
	About            *string `json:"about,omitempty"`
	DateOfBirth      *string `json:"dateOfBirth,omitempty"`
	Address          *string `json:"address,omitempty"`
	EnrollmentNumber *string `json:"enrollmentNumber,omitempty"`
	FacultyNumber    *string `json:"facultyNumber,omitempty"`
	Course           *Course `json:"course,omitempty"`
	Semester         *string `json:"semester,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	GitHub           *string `json:"github,omitempty"`
	LinkedIn         *string `json:"linkedin,omitempty"`
}

// Apply copies the set fields onto the document and returns the JSON
// names of the fields that were touched, for advisory validation.
func (r *UpdateProfileFieldsRequest) Apply(d *ProfileDocument) []string {
	var touched []string
	set := func(name string, dst *string, src *string) {
		if src != nil {
			*dst = *src
			touched = append(touched, name)
		}
	}

	set("name", &d.Name, r.Name)
	set("title", &d.Title, r.Title)
	set("about", &d.About, r.About)
	set("dateOfBirth", &d.DateOfBirth, r.DateOfBirth)
	set("address", &d.Address, r.Address)
	set("enrollmentNumber", &d.EnrollmentNumber, r.EnrollmentNumber)
	set("facultyNumber", &d.FacultyNumber, r.FacultyNumber)
	set("semester", &d.Semester, r.Semester)
	set("email", &d.Email, r.Email)
	set("phone", &d.Phone, r.Phone)
	set("github", &d.GitHub, r.GitHub)
	set("linkedin", &d.LinkedIn, r.LinkedIn)
	if r.Course != nil {
		d.Course = *r.Course
		touched = append(touched, "course")
	}

	return touched
}
