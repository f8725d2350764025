package form

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devcell/portal/internal/model"
)

// Section names one of the repeatable parts of the form.
type Section string

const (
	SectionLanguages    Section = "languages"
	SectionSkills       Section = "skills"
	SectionProjects     Section = "projects"
	SectionAchievements Section = "achievements"
)

// ParseSection maps a URL path segment to a section.
func ParseSection(s string) (Section, bool) {
	switch Section(s) {
	case SectionLanguages, SectionSkills, SectionProjects, SectionAchievements:
		return Section(s), true
	}
	return "", false
}

// DefaultEntry returns the empty entry a bare "add row" click appends for
// the section.
func DefaultEntry(sec Section) any {
	switch sec {
	case SectionLanguages:
		return model.LanguageEntry{}
	case SectionSkills:
		return model.SkillEntry{}
	case SectionProjects:
		return model.ProjectEntry{}
	case SectionAchievements:
		return model.AchievementEntry{}
	}
	panic("form: unknown section " + string(sec))
}

// Session is one member's draft of the profile form: every scalar field
// plus the four sub-lists. It is the single place form state lives; the
// document only leaves the session through Submit.
//
// Sessions are not safe for concurrent use; the owning service
// serializes access.
type Session struct {
	ID        string
	OwnerID   string
	CreatedOn time.Time
	UpdatedOn time.Time

	// Scalar field values. The slice fields of the document are unused
	// here; the sub-lists below are the source of truth for rows.
	Fields model.ProfileDocument

	Languages    *SubList[model.LanguageEntry]
	Skills       *SubList[model.SkillEntry]
	Projects     *SubList[model.ProjectEntry]
	Achievements *SubList[model.AchievementEntry]

	// PictureID references the uploaded profile picture blob, empty when
	// none is set.
	PictureID string
}

// NewSession creates an empty draft owned by the given member.
func NewSession(ownerID string) *Session {
	now := time.Now()
	return &Session{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		CreatedOn:    now,
		UpdatedOn:    now,
		Languages:    NewSubList[model.LanguageEntry](),
		Skills:       NewSubList[model.SkillEntry](),
		Projects:     NewSubList[model.ProjectEntry](),
		Achievements: NewSubList[model.AchievementEntry](),
	}
}

// Touch records an edit.
func (s *Session) Touch() {
	s.UpdatedOn = time.Now()
}

// ApplyFields copies the set fields from the request onto the draft and
// returns advisory validation errors for exactly the touched fields.
// Advisory errors never block continued editing; they exist so the UI can
// flag a field as the user leaves it.
func (s *Session) ApplyFields(req *model.UpdateProfileFieldsRequest) []model.FieldError {
	touched := req.Apply(&s.Fields)
	s.Touch()
	if len(touched) == 0 {
		return nil
	}

	doc := s.Document()
	doc.Normalize()
	var advisory []model.FieldError
	for _, fe := range doc.Validate() {
		for _, field := range touched {
			if fe.Field == field {
				advisory = append(advisory, fe)
				break
			}
		}
	}
	return advisory
}

// RowCount returns the number of rows in a section.
func (s *Session) RowCount(sec Section) int {
	switch sec {
	case SectionLanguages:
		return s.Languages.Len()
	case SectionSkills:
		return s.Skills.Len()
	case SectionProjects:
		return s.Projects.Len()
	case SectionAchievements:
		return s.Achievements.Len()
	}
	panic("form: unknown section " + string(sec))
}

// AppendRow appends an entry to a section and returns the new row's ID.
// The entry must be the section's entry type.
func (s *Session) AppendRow(sec Section, entry any) string {
	defer s.Touch()
	switch sec {
	case SectionLanguages:
		return s.Languages.Append(entry.(model.LanguageEntry)).ID
	case SectionSkills:
		return s.Skills.Append(entry.(model.SkillEntry)).ID
	case SectionProjects:
		return s.Projects.Append(entry.(model.ProjectEntry)).ID
	case SectionAchievements:
		return s.Achievements.Append(entry.(model.AchievementEntry)).ID
	}
	panic("form: unknown section " + string(sec))
}

// UpdateRow replaces the entry at index in a section, preserving row
// identity. The index must be in range.
func (s *Session) UpdateRow(sec Section, index int, entry any) {
	defer s.Touch()
	switch sec {
	case SectionLanguages:
		s.Languages.UpdateAt(index, entry.(model.LanguageEntry))
	case SectionSkills:
		s.Skills.UpdateAt(index, entry.(model.SkillEntry))
	case SectionProjects:
		s.Projects.UpdateAt(index, entry.(model.ProjectEntry))
	case SectionAchievements:
		s.Achievements.UpdateAt(index, entry.(model.AchievementEntry))
	default:
		panic("form: unknown section " + string(sec))
	}
}

// RemoveRow removes the row at index in a section. The index must be in
// range.
func (s *Session) RemoveRow(sec Section, index int) {
	defer s.Touch()
	switch sec {
	case SectionLanguages:
		s.Languages.RemoveAt(index)
	case SectionSkills:
		s.Skills.RemoveAt(index)
	case SectionProjects:
		s.Projects.RemoveAt(index)
	case SectionAchievements:
		s.Achievements.RemoveAt(index)
	default:
		panic("form: unknown section " + string(sec))
	}
}

// Document assembles the current draft into a ProfileDocument, combining
// the scalar fields with the sub-list entries.
func (s *Session) Document() model.ProfileDocument {
	doc := s.Fields
	doc.Languages = s.Languages.Entries()
	doc.Skills = s.Skills.Entries()
	doc.Projects = s.Projects.Entries()
	doc.Achievements = s.Achievements.Entries()
	return doc
}

// Submit runs full-document validation over the normalized draft. On any
// failure it returns the complete field-path-addressed error list and no
// document; otherwise it returns the normalized document for the caller
// to hand off. The draft itself is left untouched either way.
func (s *Session) Submit() (*model.ProfileDocument, []model.FieldError) {
	doc := s.Document()
	doc.Normalize()
	if errs := doc.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return &doc, nil
}

// Summary is a human-readable one-liner for logs.
func (s *Session) Summary() string {
	var b strings.Builder
	b.WriteString(s.Fields.Name)
	if s.Fields.EnrollmentNumber != "" {
		b.WriteString(" (")
		b.WriteString(strings.ToUpper(s.Fields.EnrollmentNumber))
		b.WriteString(")")
	}
	return b.String()
}
