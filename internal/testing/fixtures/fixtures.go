// Package fixtures provides test data factories for e2e testing.
//
// Each factory returns a value that passes submission validation out of
// the box, with option functions for deviating from the defaults.
//
// Usage:
//
//	doc := fixtures.ValidDocument()
//	doc = fixtures.ValidDocument(func(d *model.ProfileDocument) {
//	    d.Course = model.CourseBTech
//	    d.Semester = "B.Tech: V"
//	})
package fixtures

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/devcell/portal/internal/model"
	"github.com/devcell/portal/internal/service"

	"golang.org/x/crypto/bcrypt"
)

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ============================================================================
// Document Fixtures
// ============================================================================

// ValidDocument returns a profile document that passes full validation,
// with optional customizations applied on top.
func ValidDocument(opts ...func(*model.ProfileDocument)) model.ProfileDocument {
	d := model.ProfileDocument{
		Name:             "Asha Verma",
		Title:            "Core Member",
		About:            "Backend developer and club volunteer.",
		DateOfBirth:      "2003-07-14",
		Address:          "Hostel B, Room 112",
		EnrollmentNumber: "GL2047",
		FacultyNumber:    "21COMPS104",
		Course:           model.CourseMCA,
		Semester:         "MCA: II",
		Email:            "asha@example.com",
		Phone:            "9876543210",
	}
	for _, fn := range opts {
		fn(&d)
	}
	return d
}

// FieldValues returns the valid document's scalar fields as the JSON map
// a PATCH request body carries.
func FieldValues(opts ...func(*model.ProfileDocument)) map[string]string {
	d := ValidDocument(opts...)
	m := map[string]string{
		"name":             d.Name,
		"title":            d.Title,
		"about":            d.About,
		"dateOfBirth":      d.DateOfBirth,
		"address":          d.Address,
		"enrollmentNumber": d.EnrollmentNumber,
		"facultyNumber":    d.FacultyNumber,
		"course":           string(d.Course),
		"semester":         d.Semester,
		"email":            d.Email,
		"phone":            d.Phone,
	}
	if d.GitHub != "" {
		m["github"] = d.GitHub
	}
	if d.LinkedIn != "" {
		m["linkedin"] = d.LinkedIn
	}
	return m
}

// ============================================================================
// Sub-list Entry Fixtures
// ============================================================================

// ValidLanguage returns a language entry that passes row validation.
func ValidLanguage(opts ...func(*model.LanguageEntry)) model.LanguageEntry {
	e := model.LanguageEntry{Name: "Go", Fluency: model.FluencyAdvanced}
	for _, fn := range opts {
		fn(&e)
	}
	return e
}

// ValidSkill returns a skill entry that passes row validation.
func ValidSkill(opts ...func(*model.SkillEntry)) model.SkillEntry {
	e := model.SkillEntry{Name: "Docker", Fluency: model.FluencyIntermediate}
	for _, fn := range opts {
		fn(&e)
	}
	return e
}

// ValidProject returns a project entry that passes row validation.
func ValidProject(opts ...func(*model.ProjectEntry)) model.ProjectEntry {
	e := model.ProjectEntry{
		Name:             "Club Portal",
		Description:      "Member portal for the developers cell.",
		TechnologiesUsed: []string{"Go", "PostgreSQL"},
		Link:             "https://example.com/club-portal",
		Duration:         "3 months",
	}
	for _, fn := range opts {
		fn(&e)
	}
	return e
}

// ValidAchievement returns an achievement entry that passes row validation.
func ValidAchievement(opts ...func(*model.AchievementEntry)) model.AchievementEntry {
	e := model.AchievementEntry{Name: "Winner, Intra-College Hackathon"}
	for _, fn := range opts {
		fn(&e)
	}
	return e
}

// ============================================================================
// Account Fixtures
// ============================================================================

// AccountOpts customizes seed account creation
type AccountOpts struct {
	Email    string
	Name     string
	Password string
	Role     string
}

// SeedAccount returns an account entry for an AuthService roster. The
// password defaults to "testpass123".
func SeedAccount(opts ...func(*AccountOpts)) service.SeedAccount {
	id := randomID()
	o := &AccountOpts{
		Email:    fmt.Sprintf("member_%s@test.local", id),
		Name:     fmt.Sprintf("Member %s", id),
		Password: "testpass123",
		Role:     "member",
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("fixtures: hash password: %v", err))
	}

	return service.SeedAccount{
		ID:           "usr-" + id,
		Email:        o.Email,
		Name:         o.Name,
		Role:         o.Role,
		PasswordHash: string(hash),
	}
}

// ============================================================================
// Picture Fixtures
// ============================================================================

// PNG returns a byte slice of the given size opening with the PNG magic
// number, enough for content-type sniffing.
func PNG(size int) []byte {
	magic := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	data := make([]byte, size)
	copy(data, magic)
	return data
}

// JPEG returns a byte slice of the given size opening with the JPEG
// magic number.
func JPEG(size int) []byte {
	magic := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	data := make([]byte, size)
	copy(data, magic)
	return data
}
