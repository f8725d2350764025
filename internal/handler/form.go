package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/devcell/portal/internal/form"
	"github.com/devcell/portal/internal/middleware"
	"github.com/devcell/portal/internal/model"
	"github.com/devcell/portal/internal/service"
)

// FormHandler handles draft profile form endpoints
type FormHandler struct {
	formService *service.FormService
}

// NewFormHandler creates a new form handler
func NewFormHandler(formService *service.FormService) *FormHandler {
	return &FormHandler{
		formService: formService,
	}
}

// RowResponse is one sub-list row in API responses
type RowResponse struct {
	ID    string `json:"id"`
	Entry any    `json:"entry"`
}

// FormResponse represents a draft form in API responses
type FormResponse struct {
	ID        string `json:"id"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`

	Fields model.ProfileDocument `json:"fields"`

	Languages    []RowResponse `json:"languages"`
	Skills       []RowResponse `json:"skills"`
	Projects     []RowResponse `json:"projects"`
	Achievements []RowResponse `json:"achievements"`

	HasPicture bool `json:"has_picture"`
}

// FieldUpdateResponse is the result of a partial scalar-field update
type FieldUpdateResponse struct {
	Form     FormResponse       `json:"form"`
	Advisory []model.FieldError `json:"advisory,omitempty"`
}

// RowCreatedResponse is the result of appending a sub-list row
type RowCreatedResponse struct {
	RowID string `json:"row_id"`
	Index int    `json:"index"`
}

// SubmitResponse is a successful submission result
type SubmitResponse struct {
	Document model.ProfileDocument `json:"document"`
}

// Create handles POST /v1/profile/forms
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	sess := h.formService.Create(r.Context(), userID)

	WriteData(w, http.StatusCreated, toFormResponse(sess), map[string]string{
		"self":   "/v1/profile/forms/" + sess.ID,
		"submit": "/v1/profile/forms/" + sess.ID + "/submit",
	})
}

// Get handles GET /v1/profile/forms/{formId}
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	formID := r.PathValue("formId")

	sess, err := h.formService.Get(r.Context(), userID, formID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toFormResponse(sess), map[string]string{
		"self": "/v1/profile/forms/" + sess.ID,
	})
}

// UpdateFields handles PATCH /v1/profile/forms/{formId}
//
// Only the fields present in the body change. Validation problems in the
// touched fields come back as advisory errors; the edit itself always
// sticks, mirroring a form that flags a field as the user leaves it.
func (h *FormHandler) UpdateFields(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	formID := r.PathValue("formId")

	var req model.UpdateProfileFieldsRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	sess, advisory, err := h.formService.UpdateFields(r.Context(), userID, formID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, FieldUpdateResponse{
		Form:     toFormResponse(sess),
		Advisory: advisory,
	}, nil)
}

// AppendRow handles POST /v1/profile/forms/{formId}/{section}
//
// An empty body appends the section's blank row, matching the form's
// "add" button; a JSON body appends a populated row.
func (h *FormHandler) AppendRow(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	formID := r.PathValue("formId")

	sec, ok := form.ParseSection(r.PathValue("section"))
	if !ok {
		WriteError(w, model.NewNotFoundError("section"))
		return
	}

	entry, err := decodeEntry(r, sec)
	if err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	rowID, err := h.formService.AppendRow(r.Context(), userID, formID, sec, entry)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	sess, err := h.formService.Get(r.Context(), userID, formID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, RowCreatedResponse{
		RowID: rowID,
		Index: sess.RowCount(sec) - 1,
	}, nil)
}

// UpdateRow handles PATCH /v1/profile/forms/{formId}/{section}/{index}
func (h *FormHandler) UpdateRow(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	formID := r.PathValue("formId")

	sec, ok := form.ParseSection(r.PathValue("section"))
	if !ok {
		WriteError(w, model.NewNotFoundError("section"))
		return
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		WriteError(w, model.NewBadRequestError("invalid row index"))
		return
	}

	entry, err := decodeEntry(r, sec)
	if err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.formService.UpdateRow(r.Context(), userID, formID, sec, index, entry); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// RemoveRow handles DELETE /v1/profile/forms/{formId}/{section}/{index}
func (h *FormHandler) RemoveRow(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	formID := r.PathValue("formId")

	sec, ok := form.ParseSection(r.PathValue("section"))
	if !ok {
		WriteError(w, model.NewNotFoundError("section"))
		return
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		WriteError(w, model.NewBadRequestError("invalid row index"))
		return
	}

	if err := h.formService.RemoveRow(r.Context(), userID, formID, sec, index); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// SetPicture handles PUT /v1/profile/forms/{formId}/picture
//
// The body is the raw image bytes. Anything over the size cap or not a
// JPEG/PNG is rejected and the current picture, if any, stays.
func (h *FormHandler) SetPicture(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	formID := r.PathValue("formId")

	r.Body = http.MaxBytesReader(w, r.Body, service.MaxPictureBytes+1)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, model.NewPayloadTooLargeError("picture exceeds the 2 MB limit"))
			return
		}
		WriteError(w, model.NewBadRequestError("could not read request body"))
		return
	}

	if err := h.formService.SetPicture(r.Context(), userID, formID, data); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// GetPicture handles GET /v1/profile/forms/{formId}/picture
func (h *FormHandler) GetPicture(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	formID := r.PathValue("formId")

	pic, err := h.formService.GetPicture(r.Context(), userID, formID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	w.Header().Set("Content-Type", pic.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(pic.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pic.Data)
}

// RemovePicture handles DELETE /v1/profile/forms/{formId}/picture
func (h *FormHandler) RemovePicture(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	formID := r.PathValue("formId")

	if err := h.formService.RemovePicture(r.Context(), userID, formID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// Submit handles POST /v1/profile/forms/{formId}/submit
//
// A draft that fails validation comes back as a 422 carrying every field
// error, addressed by path ("languages[2].name"). The draft survives
// either outcome.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	formID := r.PathValue("formId")

	doc, fieldErrs, err := h.formService.Submit(r.Context(), userID, formID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	if len(fieldErrs) > 0 {
		WriteError(w, model.NewValidationError(fieldErrs))
		return
	}

	WriteData(w, http.StatusOK, SubmitResponse{Document: *doc}, nil)
}

// decodeEntry decodes the request body into the section's entry type. An
// empty body yields the section's blank entry.
func decodeEntry(r *http.Request, sec form.Section) (any, error) {
	switch sec {
	case form.SectionLanguages:
		var e model.LanguageEntry
		if err := decodeOptional(r, &e); err != nil {
			return nil, err
		}
		return e, nil
	case form.SectionSkills:
		var e model.SkillEntry
		if err := decodeOptional(r, &e); err != nil {
			return nil, err
		}
		return e, nil
	case form.SectionProjects:
		var e model.ProjectEntry
		if err := decodeOptional(r, &e); err != nil {
			return nil, err
		}
		return e, nil
	case form.SectionAchievements:
		var e model.AchievementEntry
		if err := decodeOptional(r, &e); err != nil {
			return nil, err
		}
		return e, nil
	}
	return form.DefaultEntry(sec), nil
}

func decodeOptional(r *http.Request, v any) error {
	err := DecodeJSON(r, v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func toFormResponse(sess *form.Session) FormResponse {
	return FormResponse{
		ID:           sess.ID,
		CreatedOn:    sess.CreatedOn.Format(time.RFC3339),
		UpdatedOn:    sess.UpdatedOn.Format(time.RFC3339),
		Fields:       sess.Fields,
		Languages:    toRows(sess.Languages.Rows()),
		Skills:       toRows(sess.Skills.Rows()),
		Projects:     toRows(sess.Projects.Rows()),
		Achievements: toRows(sess.Achievements.Rows()),
		HasPicture:   sess.PictureID != "",
	}
}

func toRows[T any](rows []form.Row[T]) []RowResponse {
	out := make([]RowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, RowResponse{ID: row.ID, Entry: row.Entry})
	}
	return out
}
