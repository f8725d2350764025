package model

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Format rules for the identity fields. Enrollment and faculty numbers are
// uppercased before matching, so lowercase input is accepted and
// normalized rather than rejected.
var (
	enrollmentPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{4}$`)
	facultyPattern    = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{3}$`)
	phonePattern      = regexp.MustCompile(`^(\+[0-9]{1,3})?[0-9]{10}$`)
)

const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field paths by json name so errors address the same paths
	// the form renders (e.g. "languages[2].name").
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "fluency", func(fl validator.FieldLevel) bool {
		return Fluency(fl.Field().String()).IsValid()
	})
	mustRegister(v, "course", func(fl validator.FieldLevel) bool {
		return Course(fl.Field().String()).IsValid()
	})
	mustRegister(v, "enrollment", func(fl validator.FieldLevel) bool {
		return enrollmentPattern.MatchString(strings.ToUpper(fl.Field().String()))
	})
	mustRegister(v, "faculty", func(fl validator.FieldLevel) bool {
		return facultyPattern.MatchString(strings.ToUpper(fl.Field().String()))
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "pastdate", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil && d.Before(time.Now())
	})
	// hostedurl=github.com restricts a URL to a host (or www. subdomain).
	mustRegister(v, "hostedurl", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return false
		}
		host := strings.ToLower(u.Hostname())
		want := strings.ToLower(fl.Param())
		return host == want || host == "www."+want
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("model: register %q validation: %v", tag, err))
	}
}

// Normalize trims whitespace on every scalar field, uppercases the
// enrollment and faculty numbers, and lowercases the email. It is applied
// before validation so the validated document is the normalized one.
func (d *ProfileDocument) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Title = strings.TrimSpace(d.Title)
	d.About = strings.TrimSpace(d.About)
	d.DateOfBirth = strings.TrimSpace(d.DateOfBirth)
	d.Address = strings.TrimSpace(d.Address)
	d.EnrollmentNumber = strings.ToUpper(strings.TrimSpace(d.EnrollmentNumber))
	d.FacultyNumber = strings.ToUpper(strings.TrimSpace(d.FacultyNumber))
	d.Semester = strings.TrimSpace(d.Semester)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	d.Phone = strings.TrimSpace(d.Phone)
	d.GitHub = strings.TrimSpace(d.GitHub)
	d.LinkedIn = strings.TrimSpace(d.LinkedIn)

	for i := range d.Languages {
		d.Languages[i].Name = strings.TrimSpace(d.Languages[i].Name)
	}
	for i := range d.Skills {
		d.Skills[i].Name = strings.TrimSpace(d.Skills[i].Name)
	}
	for i := range d.Projects {
		p := &d.Projects[i]
		p.Name = strings.TrimSpace(p.Name)
		p.Description = strings.TrimSpace(p.Description)
		p.Link = strings.TrimSpace(p.Link)
		p.Duration = strings.TrimSpace(p.Duration)
		for j := range p.TechnologiesUsed {
			p.TechnologiesUsed[j] = strings.TrimSpace(p.TechnologiesUsed[j])
		}
	}
	for i := range d.Achievements {
		d.Achievements[i].Name = strings.TrimSpace(d.Achievements[i].Name)
	}
}

// Validate runs every field rule plus the course-dependent semester rule
// and returns all failures addressed by field path. An empty result means
// the document is submittable.
//
// The semester format depends on the selected course, so it is checked
// only once the course itself is valid; an invalid course reports a
// course error and leaves the semester format alone.
func (d *ProfileDocument) Validate() []FieldError {
	var errs []FieldError

	if err := validate.Struct(d); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			// InvalidValidationError only happens for non-struct input.
			panic(fmt.Sprintf("model: validate profile document: %v", err))
		}
		for _, fe := range verrs {
			errs = append(errs, FieldError{
				Field:   fieldPath(fe),
				Message: fieldMessage(fe),
			})
		}
	}

	if d.Course.IsValid() && d.Semester != "" && !d.Course.HasSemester(d.Semester) {
		errs = append(errs, FieldError{
			Field: "semester",
			Message: fmt.Sprintf("semester must be one of %s for course %s",
				strings.Join(d.Course.ValidSemesters(), ", "), d.Course),
		})
	}

	return errs
}

// fieldPath strips the document type prefix from the validator namespace,
// leaving paths like "about" or "projects[1].description".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fe.Field() + " must have at least " + fe.Param() + " entry"
		}
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "hostedurl":
		return "must be a valid " + fe.Param() + " URL"
	case "enrollment":
		return "enrollment number must be 2 letters followed by 4 digits"
	case "faculty":
		return "faculty number must be 2 digits, 5 letters, then 3 digits"
	case "course":
		return "course must be one of " + joinCourses()
	case "fluency":
		return "fluency must be one of Beginner, Intermediate, Advanced, Expert"
	case "phone":
		return "phone must be 10 digits with an optional country code"
	case "pastdate":
		return "must be a past date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}

func joinCourses() string {
	names := make([]string, 0, len(CourseSemesters))
	for _, c := range []Course{CourseBTech, CourseMTech, CourseBCA, CourseMCA, CourseBSc, CourseMSc} {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
