package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/config"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/mailtpl"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/db_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/request_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/response_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/repositories"
	mem "github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/memcache"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/photo"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/utils"
)

// PhotoGroup carries the raw before/after photo files of one
// submission, in the order the client sent them.
type PhotoGroup struct {
	Before []photo.File
	After  []photo.File
}

type SummaryServiceInterface interface {
	// Deliver runs the whole workflow for a single-shot submission:
	// compress, upload, render, send, persist.
	Deliver(ctx context.Context, req request_models.SummaryRequest, photos PhotoGroup) (*response_models.SummaryDelivery, error)

	// UploadToSession compresses and uploads one chunk of photos,
	// accumulating state under the client-supplied session id.
	UploadToSession(ctx context.Context, sessionID string, group string, files []photo.File) (*response_models.UploadSessionState, error)

	// Finalize sends the email for a previously populated session and
	// deletes the session on success.
	Finalize(ctx context.Context, req request_models.FinalizeRequest) (*response_models.SummaryDelivery, error)

	ListSummaries(ctx context.Context) ([]db_models.Summary, error)
}

type SummaryService struct {
	summaryRepo    repositories.SummaryRepository
	storage        StorageService
	mail           IMailService
	sessions       mem.SessionStore
	greeter        Greeter
	cc             []string
	maxAttachments int
	now            func() time.Time
}

func NewSummaryService(
	summaryRepo repositories.SummaryRepository,
	storage StorageService,
	mail IMailService,
	sessions mem.SessionStore,
	greeter Greeter,
	cfg *config.Config,
) SummaryServiceInterface {
	return &SummaryService{
		summaryRepo:    summaryRepo,
		storage:        storage,
		mail:           mail,
		sessions:       sessions,
		greeter:        greeter,
		cc:             cfg.SummaryCC,
		maxAttachments: cfg.MaxAttachments,
		now:            time.Now,
	}
}

func (s *SummaryService) Deliver(ctx context.Context, req request_models.SummaryRequest, photos PhotoGroup) (*response_models.SummaryDelivery, error) {
	if err := validateSummaryRequest(req); err != nil {
		return nil, err
	}

	before, err := s.processGroup(ctx, photos.Before)
	if err != nil {
		return nil, err
	}
	after, err := s.processGroup(ctx, photos.After)
	if err != nil {
		return nil, err
	}

	return s.deliver(ctx, req, before, after)
}

func (s *SummaryService) UploadToSession(ctx context.Context, sessionID string, group string, files []photo.File) (*response_models.UploadSessionState, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", utils.ErrValidation)
	}
	if group != "before" && group != "after" {
		return nil, fmt.Errorf("%w: group must be \"before\" or \"after\"", utils.ErrValidation)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no photos in request", utils.ErrValidation)
	}

	parts, err := s.processGroup(ctx, files)
	if err != nil {
		return nil, err
	}

	state := s.sessions.Append(sessionID, group, parts)
	return &response_models.UploadSessionState{
		SessionID:    sessionID,
		PhotosBefore: partURLs(state.Before),
		PhotosAfter:  partURLs(state.After),
	}, nil
}

func (s *SummaryService) Finalize(ctx context.Context, req request_models.FinalizeRequest) (*response_models.SummaryDelivery, error) {
	if err := validateSummaryRequest(req.SummaryRequest); err != nil {
		return nil, err
	}

	state, ok := s.sessions.Get(req.SessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	resp, err := s.deliver(ctx, req.SummaryRequest, state.Before, state.After)
	if err != nil {
		return nil, err
	}

	s.sessions.Delete(req.SessionID)
	return resp, nil
}

func (s *SummaryService) ListSummaries(ctx context.Context) ([]db_models.Summary, error) {
	summaries, err := s.summaryRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return summaries, nil
}

// processGroup compresses each photo and uploads it, preserving
// submission order in the returned parts.
func (s *SummaryService) processGroup(ctx context.Context, files []photo.File) ([]mem.PhotoPart, error) {
	if len(files) == 0 {
		return nil, nil
	}

	compressed, err := photo.CompressAll(files)
	if err != nil {
		return nil, err
	}

	parts := make([]mem.PhotoPart, len(files))
	for i := range files {
		takenAt := photo.TakenAt(files[i].Data)

		url, err := s.storage.Upload(ctx, StorageKey(), compressed[i].Data, http.DetectContentType(compressed[i].Data))
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", files[i].Name, err)
		}

		parts[i] = mem.PhotoPart{
			URL:      url,
			Filename: files[i].Name,
			Data:     compressed[i].Data,
			TakenAt:  takenAt,
		}
	}
	return parts, nil
}

// deliver runs the irreversible tail of the workflow: render, send,
// then best-effort persist. The email is the user-visible effect; a
// failed summary insert is logged and swallowed.
func (s *SummaryService) deliver(ctx context.Context, req request_models.SummaryRequest, before, after []mem.PhotoPart) (*response_models.SummaryDelivery, error) {
	greeting := req.Greeting
	if greeting == "" {
		greeting = s.greeter.Greet(ctx, req.ContactName)
	}

	data := mailtpl.SummaryEmailData{
		Greeting:          greeting,
		ContactName:       req.ContactName,
		Description:       req.Description,
		Date:              utils.FormatSummaryDatePL(s.now()),
		CemeteryName:      req.CemeteryName,
		GraveLocation:     req.GraveLocation,
		ServicesPerformed: req.ServicesPerformed,
		PhotosBefore:      partURLs(before),
		PhotosAfter:       partURLs(after),
	}

	html, err := mailtpl.Render(data)
	if err != nil {
		return nil, err
	}
	text, err := mailtpl.RenderText(data)
	if err != nil {
		return nil, err
	}

	attachments := selectAttachments(before, after, s.maxAttachments)

	if span := captureSpan(before, after); span != "" {
		log.Printf("Summary for %s: photos taken %s", req.Email, span)
	}

	err = s.mail.Send(ctx, MailMessage{
		To:          req.Email,
		CC:          s.cc,
		Subject:     "Podsumowanie prac - " + req.ContactName,
		HTMLBody:    html,
		TextBody:    text,
		Attachments: attachments,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrEmailDeliveryFailed, err)
	}

	summary := &db_models.Summary{
		ContactName:  req.ContactName,
		Email:        req.Email,
		Description:  req.Description,
		PhotosBefore: partURLs(before),
		PhotosAfter:  partURLs(after),
	}
	if err := s.summaryRepo.Insert(ctx, summary); err != nil {
		log.Printf("Failed to persist summary for %s: %v", req.Email, err)
	}

	return &response_models.SummaryDelivery{
		SummaryID:     summary.ID,
		PhotosBefore:  partURLs(before),
		PhotosAfter:   partURLs(after),
		AttachedCount: len(attachments),
	}, nil
}

func validateSummaryRequest(req request_models.SummaryRequest) error {
	if req.ContactName == "" || req.Email == "" {
		return fmt.Errorf("%w: contactName and email are required", utils.ErrValidation)
	}
	if !utils.IsValidEmail(req.Email) {
		return fmt.Errorf("%w: invalid email format", utils.ErrValidation)
	}
	return nil
}

// selectAttachments picks at most limit photos to inline, split evenly
// between the groups with the before group taking the odd slot. Slack
// from a short group goes to the other one.
func selectAttachments(before, after []mem.PhotoPart, limit int) []Attachment {
	if limit <= 0 {
		return nil
	}

	beforeQuota := (limit + 1) / 2
	afterQuota := limit - beforeQuota
	if len(before) < beforeQuota {
		afterQuota += beforeQuota - len(before)
		beforeQuota = len(before)
	}
	if len(after) < afterQuota {
		spare := afterQuota - len(after)
		afterQuota = len(after)
		if beforeQuota+spare <= len(before) {
			beforeQuota += spare
		} else {
			beforeQuota = len(before)
		}
	}

	attachments := make([]Attachment, 0, beforeQuota+afterQuota)
	for i := 0; i < beforeQuota; i++ {
		attachments = append(attachments, Attachment{
			Filename:    fmt.Sprintf("przed-%d.jpg", i+1),
			ContentID:   fmt.Sprintf("photo-before-%d", i),
			ContentType: http.DetectContentType(before[i].Data),
			Data:        before[i].Data,
		})
	}
	for i := 0; i < afterQuota; i++ {
		attachments = append(attachments, Attachment{
			Filename:    fmt.Sprintf("po-%d.jpg", i+1),
			ContentID:   fmt.Sprintf("photo-after-%d", i),
			ContentType: http.DetectContentType(after[i].Data),
			Data:        after[i].Data,
		})
	}
	return attachments
}

func partURLs(parts []mem.PhotoPart) []string {
	urls := make([]string, len(parts))
	for i, p := range parts {
		urls[i] = p.URL
	}
	return urls
}

// captureSpan summarizes the EXIF capture range of a submission for
// the audit log; photos without EXIF are skipped.
func captureSpan(groups ...[]mem.PhotoPart) string {
	var min, max time.Time
	for _, group := range groups {
		for _, p := range group {
			if p.TakenAt.IsZero() {
				continue
			}
			if min.IsZero() || p.TakenAt.Before(min) {
				min = p.TakenAt
			}
			if max.IsZero() || p.TakenAt.After(max) {
				max = p.TakenAt
			}
		}
	}
	if min.IsZero() {
		return ""
	}
	layout := "2006-01-02 15:04"
	if min.Equal(max) {
		return min.Format(layout)
	}
	return min.Format(layout) + " – " + max.Format(layout)
}
