// Package model defines the profile document schema and API error types
// for the club portal.
//
// # Profile Document
//
// ProfileDocument is the member profile/portfolio the multi-step form
// edits: scalar identity fields (enrollment number, faculty number,
// course, semester, contact details) plus four repeatable sub-lists
// (languages, skills, projects, achievements). Documents are transient;
// they live in a draft form session and are validated on submit.
//
// # Validation
//
// Field rules are declared with go-playground/validator tags and custom
// validators for the domain formats (enrollment, faculty, course,
// fluency, phone, hosted URLs). ProfileDocument.Validate returns every
// failure as a FieldError addressed by json path:
//
//	errs := doc.Validate()
//	// [{Field: "about", Message: "about is required"},
//	//  {Field: "languages[2].name", Message: "name is required"}]
//
// The semester rule depends on the selected course and is evaluated only
// after the course resolves to a known programme.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string `json:"type"`
//	    Title   string `json:"title"`
//	    Status  int    `json:"status"`
//	    Detail  string `json:"detail"`
//	}
package model
