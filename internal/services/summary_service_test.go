package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/db_models"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/models/request_models"
	mem "github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/memcache"
	"github.com/krzysztofpiesio89/czystepomniki-app-backend/pkg/utils"
)

// --- fakes ---

type fakeSummaryRepo struct {
	inserted  []*db_models.Summary
	insertErr error
	rows      []db_models.Summary
	findErr   error
}

func (f *fakeSummaryRepo) Insert(ctx context.Context, summary *db_models.Summary) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	summary.ID = uint(len(f.inserted) + 1)
	f.inserted = append(f.inserted, summary)
	return nil
}

func (f *fakeSummaryRepo) FindAll(ctx context.Context) ([]db_models.Summary, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.rows, nil
}

type fakeStorage struct {
	uploads   int
	uploadErr error
}

func (f *fakeStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads++
	return "https://cdn.example/" + key, nil
}

func (f *fakeStorage) Exists(ctx context.Context, key string) (bool, error) { return true, nil }

func (f *fakeStorage) PresignGet(ctx context.Context, key string) (string, error) {
	return "https://cdn.example/" + key, nil
}

type fakeMail struct {
	sent    []MailMessage
	sendErr error
}

func (f *fakeMail) Send(ctx context.Context, msg MailMessage) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeGreeter struct{ out string }

func (f *fakeGreeter) Greet(ctx context.Context, contactName string) string { return f.out }

type summaryFixture struct {
	svc     *SummaryService
	repo    *fakeSummaryRepo
	storage *fakeStorage
	mail    *fakeMail
	store   *mem.UploadSessions
}

func newSummaryFixture(t *testing.T) *summaryFixture {
	t.Helper()
	repo := &fakeSummaryRepo{}
	storage := &fakeStorage{}
	mail := &fakeMail{}
	store := mem.NewUploadSessions()
	svc := &SummaryService{
		summaryRepo:    repo,
		storage:        storage,
		mail:           mail,
		sessions:       store,
		greeter:        &fakeGreeter{out: "Szanowna Pani Anna"},
		cc:             []string{"biuro@czystepomniki.pl"},
		maxAttachments: 5,
		now:            func() time.Time { return time.Date(2025, 5, 14, 16, 5, 0, 0, time.UTC) },
	}
	return &summaryFixture{svc: svc, repo: repo, storage: storage, mail: mail, store: store}
}

func validRequest() request_models.SummaryRequest {
	return request_models.SummaryRequest{
		ContactName: "Anna Kowalska",
		Email:       "anna@example.com",
		Description: "Umycie pomnika.",
	}
}

// --- Deliver ---

func TestDeliverRejectsMissingFields(t *testing.T) {
	t.Parallel()
	fx := newSummaryFixture(t)

	_, err := fx.svc.Deliver(context.Background(), request_models.SummaryRequest{Email: "a@b.pl"}, PhotoGroup{})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = fx.svc.Deliver(context.Background(), request_models.SummaryRequest{ContactName: "Anna"}, PhotoGroup{})
	assert.ErrorIs(t, err, utils.ErrValidation)

	assert.Empty(t, fx.mail.sent, "no email on validation failure")
}

func TestDeliverRejectsMalformedEmail(t *testing.T) {
	t.Parallel()
	fx := newSummaryFixture(t)

	req := validRequest()
	req.Email = "not-an-email"
	_, err := fx.svc.Deliver(context.Background(), req, PhotoGroup{})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestDeliverSendsAndPersists(t *testing.T) {
	t.Parallel()
	fx := newSummaryFixture(t)

	resp, err := fx.svc.Deliver(context.Background(), validRequest(), PhotoGroup{})
	require.NoError(t, err)

	require.Len(t, fx.mail.sent, 1)
	msg := fx.mail.sent[0]
	assert.Equal(t, "anna@example.com", msg.To)
	assert.Equal(t, []string{"biuro@czystepomniki.pl"}, msg.CC)
	assert.Equal(t, "Podsumowanie prac - Anna Kowalska", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Szanowna Pani Anna")
	assert.Contains(t, msg.HTMLBody, "14 maja 2025")
	assert.NotEmpty(t, msg.TextBody)

	require.Len(t, fx.repo.inserted, 1)
	assert.Equal(t, "Anna Kowalska", fx.repo.inserted[0].ContactName)
	assert.Equal(t, fx.repo.inserted[0].ID, resp.SummaryID)
}

func TestDeliverExplicitGreetingWins(t *testing.T) {
	t.Parallel()
	fx := newSummaryFixture(t)

	req := validRequest()
	req.Greeting = "Droga Babciu"
	_, err := fx.svc.Deliver(context.Background(), req, PhotoGroup{})
	require.NoError(t, err)

	require.Len(t, fx.mail.sent, 1)
	assert.Contains(t, fx.mail.sent[0].HTMLBody, "Droga Babciu")
	assert.NotContains(t, fx.mail.sent[0].HTMLBody, "Szanowna Pani Anna")
}

func TestDeliverMailFailureAbortsPersist(t *testing.T) {
	t.Parallel()
	fx := newSummaryFixture(t)
	fx.mail.sendErr = errors.New("smtp down")

	_, err := fx.svc.Deliver(context.Background(), validRequest(), PhotoGroup{})
	assert.ErrorIs(t, err, utils.ErrEmailDeliveryFailed)
	assert.Empty(t, fx.repo.inserted, "no audit row when the email never went out")
}

func TestDeliverPersistFailureStillSucceeds(t *testing.T) {
	t.Parallel()
	fx := newSummaryFixture(t)
	fx.repo.insertErr = errors.New("db down")

	resp, err := fx.svc.Deliver(context.Background(), validRequest(), PhotoGroup{})
	require.NoError(t, err, "the email went out, the audit row is best effort")
	assert.Len(t, fx.mail.sent, 1)
	assert.Zero(t, resp.SummaryID)
}

// --- UploadToSession / Finalize ---

func TestUploadToSessionValidation(t *testing.T) {
	t.Parallel()
	fx := newSummaryFixture(t)

	_, err := fx.svc.UploadToSession(context.Background(), "", "before", nil)
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = fx.svc.UploadToSession(context.Background(), "s1", "during", nil)
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = fx.svc.UploadToSession(context.Background(), "s1", "before", nil)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestFinalizeUnknownSession(t *testing.T) {
	t.Parallel()
	fx := newSummaryFixture(t)

	req := request_models.FinalizeRequest{SessionID: "missing", SummaryRequest: validRequest()}
	_, err := fx.svc.Finalize(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestFinalizeSendsAccumulatedPhotosAndDeletesSession(t *testing.T) {
	t.Parallel()
	fx := newSummaryFixture(t)

	fx.store.Append("s1", "before", []mem.PhotoPart{
		{URL: "https://cdn.example/b1", Data: []byte("b1")},
		{URL: "https://cdn.example/b2", Data: []byte("b2")},
	})
	fx.store.Append("s1", "after", []mem.PhotoPart{
		{URL: "https://cdn.example/a1", Data: []byte("a1")},
	})

	req := request_models.FinalizeRequest{SessionID: "s1", SummaryRequest: validRequest()}
	resp, err := fx.svc.Finalize(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://cdn.example/b1", "https://cdn.example/b2"}, resp.PhotosBefore)
	assert.Equal(t, []string{"https://cdn.example/a1"}, resp.PhotosAfter)
	assert.Equal(t, 3, resp.AttachedCount)

	require.Len(t, fx.mail.sent, 1)
	assert.Len(t, fx.mail.sent[0].Attachments, 3)

	_, ok := fx.store.Get("s1")
	assert.False(t, ok, "session is consumed on success")
}

func TestFinalizeDeliveryFailureKeepsSession(t *testing.T) {
	t.Parallel()
	fx := newSummaryFixture(t)
	fx.mail.sendErr = errors.New("smtp down")

	fx.store.Append("s1", "before", []mem.PhotoPart{{URL: "u", Data: []byte("x")}})

	req := request_models.FinalizeRequest{SessionID: "s1", SummaryRequest: validRequest()}
	_, err := fx.svc.Finalize(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailDeliveryFailed)

	_, ok := fx.store.Get("s1")
	assert.True(t, ok, "a failed send must leave the session intact for retry")
}

// --- attachment selection ---

func parts(n int) []mem.PhotoPart {
	out := make([]mem.PhotoPart, n)
	for i := range out {
		out[i] = mem.PhotoPart{Data: []byte{byte(i)}}
	}
	return out
}

func TestSelectAttachmentsSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		before, after int
		limit         int
		wantBefore    int
		wantAfter     int
	}{
		{"even split, before takes odd slot", 3, 3, 5, 3, 2},
		{"short before gives slack to after", 1, 4, 5, 1, 4},
		{"short after gives slack to before", 4, 0, 5, 4, 0},
		{"both short", 1, 1, 5, 1, 1},
		{"zero limit", 3, 3, 0, 0, 0},
		{"under limit unchanged", 2, 1, 5, 2, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := selectAttachments(parts(tt.before), parts(tt.after), tt.limit)
			require.Len(t, got, tt.wantBefore+tt.wantAfter)

			for i := 0; i < tt.wantBefore; i++ {
				assert.Equal(t, fmt.Sprintf("przed-%d.jpg", i+1), got[i].Filename)
				assert.Equal(t, fmt.Sprintf("photo-before-%d", i), got[i].ContentID)
			}
			for i := 0; i < tt.wantAfter; i++ {
				att := got[tt.wantBefore+i]
				assert.Equal(t, fmt.Sprintf("po-%d.jpg", i+1), att.Filename)
				assert.Equal(t, fmt.Sprintf("photo-after-%d", i), att.ContentID)
			}
		})
	}
}

// --- capture span ---

func TestCaptureSpan(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", captureSpan(nil, nil))

	one := time.Date(2025, 5, 14, 10, 0, 0, 0, time.UTC)
	two := time.Date(2025, 5, 14, 12, 30, 0, 0, time.UTC)

	single := []mem.PhotoPart{{TakenAt: one}, {}}
	assert.Equal(t, "2025-05-14 10:00", captureSpan(single))

	span := captureSpan([]mem.PhotoPart{{TakenAt: two}}, []mem.PhotoPart{{TakenAt: one}})
	assert.Contains(t, span, "2025-05-14 10:00")
	assert.Contains(t, span, "2025-05-14 12:30")
}
