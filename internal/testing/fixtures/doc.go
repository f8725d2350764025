// Package fixtures provides test data factories for the portal API.
//
// The fixtures package contains factory functions for creating test data
// with sensible defaults and optional customization.
//
// # Creating Test Data
//
// Factory functions return values that pass validation:
//
//	doc := fixtures.ValidDocument()          // Submittable document
//	lang := fixtures.ValidLanguage()         // Valid sub-list row
//	account := fixtures.SeedAccount()        // Roster entry, password "testpass123"
//
// # Customization
//
// Use option functions for customization:
//
//	doc := fixtures.ValidDocument(func(d *model.ProfileDocument) {
//	    d.Phone = "123" // deliberately invalid
//	})
//
// # Picture Data
//
// PNG and JPEG return blobs with real magic numbers:
//
//	small := fixtures.PNG(512)
//	huge := fixtures.JPEG(3 << 20) // over the upload cap
package fixtures
