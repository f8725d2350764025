package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/devcell/portal/internal/form"
	"github.com/devcell/portal/internal/model"
)

// FormService owns the draft profile form sessions. Drafts live in
// memory only: they are created empty, edited through the operations
// below, and swept after DraftTTL of inactivity. Submission validates
// and logs the document; nothing is persisted.
type FormService struct {
	mu       sync.Mutex
	sessions map[string]*form.Session
	pictures *PictureStore
	draftTTL time.Duration
}

// FormServiceConfig holds configuration for the form service
type FormServiceConfig struct {
	Pictures *PictureStore
	DraftTTL time.Duration
}

// NewFormService creates a new form service
func NewFormService(cfg FormServiceConfig) *FormService {
	ttl := cfg.DraftTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &FormService{
		sessions: make(map[string]*form.Session),
		pictures: cfg.Pictures,
		draftTTL: ttl,
	}
}

// Create starts an empty draft for the member.
func (s *FormService) Create(ctx context.Context, ownerID string) *form.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := form.NewSession(ownerID)
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the member's draft.
func (s *FormService) Get(ctx context.Context, ownerID, formID string) (*form.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(ownerID, formID)
}

// UpdateFields applies a partial scalar-field update and returns advisory
// errors for the touched fields. Advisory errors never block the edit.
func (s *FormService) UpdateFields(ctx context.Context, ownerID, formID string, req *model.UpdateProfileFieldsRequest) (*form.Session, []model.FieldError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ownerID, formID)
	if err != nil {
		return nil, nil, err
	}
	advisory := sess.ApplyFields(req)
	return sess, advisory, nil
}

// AppendRow appends an entry to one of the form's sub-lists and returns
// the new row's stable ID.
func (s *FormService) AppendRow(ctx context.Context, ownerID, formID string, sec form.Section, entry any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ownerID, formID)
	if err != nil {
		return "", err
	}
	return sess.AppendRow(sec, entry), nil
}

// UpdateRow replaces the entry at index in a sub-list.
func (s *FormService) UpdateRow(ctx context.Context, ownerID, formID string, sec form.Section, index int, entry any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ownerID, formID)
	if err != nil {
		return err
	}
	if index < 0 || index >= sess.RowCount(sec) {
		return ErrRowNotFound
	}
	sess.UpdateRow(sec, index, entry)
	return nil
}

// RemoveRow removes the row at index from a sub-list. Rows after it shift
// down; their identity is unchanged.
func (s *FormService) RemoveRow(ctx context.Context, ownerID, formID string, sec form.Section, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ownerID, formID)
	if err != nil {
		return err
	}
	if index < 0 || index >= sess.RowCount(sec) {
		return ErrRowNotFound
	}
	sess.RemoveRow(sec, index)
	return nil
}

// SetPicture stores a new profile picture for the draft, releasing any
// previous blob. The bytes must be a JPEG or PNG no larger than
// MaxPictureBytes.
func (s *FormService) SetPicture(ctx context.Context, ownerID, formID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ownerID, formID)
	if err != nil {
		return err
	}

	id, err := s.pictures.Put(data)
	if err != nil {
		return err
	}

	s.pictures.Release(sess.PictureID)
	sess.PictureID = id
	sess.Touch()
	return nil
}

// GetPicture returns the draft's stored picture.
func (s *FormService) GetPicture(ctx context.Context, ownerID, formID string) (*Picture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ownerID, formID)
	if err != nil {
		return nil, err
	}
	if sess.PictureID == "" {
		return nil, ErrPictureNotFound
	}
	pic, ok := s.pictures.Get(sess.PictureID)
	if !ok {
		return nil, ErrPictureNotFound
	}
	return pic, nil
}

// RemovePicture clears and releases the draft's picture.
func (s *FormService) RemovePicture(ctx context.Context, ownerID, formID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ownerID, formID)
	if err != nil {
		return err
	}
	if sess.PictureID == "" {
		return ErrPictureNotFound
	}
	s.pictures.Release(sess.PictureID)
	sess.PictureID = ""
	sess.Touch()
	return nil
}

// Submit runs full-document validation over the draft. Failures come
// back as the complete field-error list with a nil document. On success
// the normalized document is returned and logged; the draft stays
// available for further edits.
func (s *FormService) Submit(ctx context.Context, ownerID, formID string) (*model.ProfileDocument, []model.FieldError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ownerID, formID)
	if err != nil {
		return nil, nil, err
	}

	doc, fieldErrs := sess.Submit()
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	slog.Info("profile form submitted",
		slog.String("form_id", sess.ID),
		slog.String("owner_id", sess.OwnerID),
		slog.String("member", sess.Summary()),
		slog.String("course", string(doc.Course)),
		slog.Int("languages", len(doc.Languages)),
		slog.Int("skills", len(doc.Skills)),
		slog.Int("projects", len(doc.Projects)),
		slog.Int("achievements", len(doc.Achievements)),
	)

	return doc, nil, nil
}

// SweepExpired drops drafts idle longer than the TTL and releases their
// pictures. It returns the number of drafts removed.
func (s *FormService) SweepExpired(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.draftTTL)
	removed := 0
	for id, sess := range s.sessions {
		if sess.UpdatedOn.Before(cutoff) {
			s.pictures.Release(sess.PictureID)
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of live drafts.
func (s *FormService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *FormService) lookup(ownerID, formID string) (*form.Session, error) {
	sess, ok := s.sessions[formID]
	if !ok {
		return nil, ErrFormNotFound
	}
	if sess.OwnerID != ownerID {
		return nil, ErrNotFormOwner
	}
	return sess, nil
}
