package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/wardrisk/internal/contract"
	"github.com/alexanderramin/wardrisk/internal/domain"
	"github.com/alexanderramin/wardrisk/internal/export"
	"github.com/alexanderramin/wardrisk/internal/mail"
	"github.com/alexanderramin/wardrisk/internal/testutil"
)

// fakeDispatcher records dispatched messages and can be told to fail.
type fakeDispatcher struct {
	sent []mail.Message
	err  error
}

func (f *fakeDispatcher) Dispatch(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

// failingRenderer always fails without writing anything.
type failingRenderer struct{}

func (failingRenderer) Render(*domain.Submission) (*domain.ExportBundle, error) {
	return nil, &domain.ExportError{Path: "/unwritable", Err: errors.New("permission denied")}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func setupSubmissionService(t *testing.T, mailer mail.Dispatcher, admins []string) (SubmissionService, string) {
	t.Helper()
	root := t.TempDir()
	svc := NewSubmissionService(export.NewRenderer(root), mailer, admins,
		WithClock(fixedClock(time.Date(2025, 6, 15, 10, 30, 45, 0, time.UTC))))
	return svc, root
}

func submitRequest(email string, hazards ...string) contract.SubmitRequest {
	return contract.SubmitRequest{
		RespondentName: "Jane Doe",
		Ward:           "Ward5",
		Email:          email,
		Hazards:        hazards,
		Answers:        testutil.FullAnswerSet(hazards...),
	}
}

func TestSubmit_EndToEnd(t *testing.T) {
	mailer := &fakeDispatcher{}
	svc, root := setupSubmissionService(t, mailer, []string{"admin@example.com"})

	result, err := svc.Submit(context.Background(), submitRequest("", "Flood"))
	require.NoError(t, err)

	assert.Equal(t, 17, result.RecordCount)
	assert.Equal(t, 1, result.HazardCount)
	assert.NotEmpty(t, result.SubmissionID)

	dir := filepath.Join(root, "15_Jun_2025")
	base := "Ward5_Jane_Doe_20250615_103045"
	for _, ext := range []string{".csv", ".xlsx", ".docx", ".pdf", ".zip"} {
		assert.FileExists(t, filepath.Join(dir, base+ext))
	}

	// No respondent address: exactly one message, to the admin list, with
	// the four attachments.
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"admin@example.com"}, mailer.sent[0].To)
	assert.Len(t, mailer.sent[0].Attachments, 4)
	assert.True(t, result.AdminMailed)
	assert.False(t, result.RespondentMailed)
}

func TestSubmit_RespondentCopyWhenEmailGiven(t *testing.T) {
	mailer := &fakeDispatcher{}
	svc, _ := setupSubmissionService(t, mailer, []string{"admin@example.com"})

	result, err := svc.Submit(context.Background(), submitRequest("jane@example.com", "Flood"))
	require.NoError(t, err)

	require.Len(t, mailer.sent, 2)
	assert.Equal(t, []string{"jane@example.com"}, mailer.sent[0].To)
	assert.Equal(t, []string{"admin@example.com"}, mailer.sent[1].To)
	assert.True(t, result.RespondentMailed)
	assert.True(t, result.AdminMailed)
}

func TestSubmit_FiveHazardsYield85Records(t *testing.T) {
	mailer := &fakeDispatcher{}
	svc, _ := setupSubmissionService(t, mailer, nil)

	hazards := []string{"Flood", "Drought", "Wildfire", "Storm surge", "Epidemic"}
	result, err := svc.Submit(context.Background(), submitRequest("", hazards...))
	require.NoError(t, err)

	assert.Equal(t, 85, result.RecordCount)
	assert.Equal(t, 5, result.HazardCount)
}

func TestSubmit_MissingNameFailsBeforeAnyWrite(t *testing.T) {
	mailer := &fakeDispatcher{}
	svc, root := setupSubmissionService(t, mailer, []string{"admin@example.com"})

	req := submitRequest("", "Flood")
	req.RespondentName = "  "
	_, err := svc.Submit(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrNameRequired)
	assert.Empty(t, mailer.sent)
	assertNoOutput(t, root)
}

func TestSubmit_MissingWardFailsBeforeAnyWrite(t *testing.T) {
	mailer := &fakeDispatcher{}
	svc, root := setupSubmissionService(t, mailer, nil)

	req := submitRequest("", "Flood")
	req.Ward = ""
	_, err := svc.Submit(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrWardRequired)
	assertNoOutput(t, root)
}

func TestSubmit_MissingAnswerBlocksSubmission(t *testing.T) {
	mailer := &fakeDispatcher{}
	svc, root := setupSubmissionService(t, mailer, []string{"admin@example.com"})

	req := submitRequest("", "Flood")
	delete(req.Answers, domain.AnswerKey{Hazard: "Flood", QuestionID: "duration"})
	_, err := svc.Submit(context.Background(), req)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, mailer.sent, "nothing is mailed on validation failure")
	assertNoOutput(t, root)
}

func TestSubmit_ExportFailureMailsNothing(t *testing.T) {
	mailer := &fakeDispatcher{}
	svc := NewSubmissionService(failingRenderer{}, mailer, []string{"admin@example.com"})

	_, err := svc.Submit(context.Background(), submitRequest("jane@example.com", "Flood"))

	var xerr *domain.ExportError
	require.ErrorAs(t, err, &xerr)
	assert.Empty(t, mailer.sent)
}

func TestSubmit_DeliveryFailureIsAWarningNotAnError(t *testing.T) {
	mailer := &fakeDispatcher{err: errors.New("relay rejected")}
	svc, root := setupSubmissionService(t, mailer, []string{"admin@example.com"})

	result, err := svc.Submit(context.Background(), submitRequest("jane@example.com", "Flood"))
	require.NoError(t, err, "delivery failure must not fail the submission")

	assert.Len(t, result.DeliveryWarnings, 2)
	assert.False(t, result.RespondentMailed)
	assert.False(t, result.AdminMailed)

	// Exported files survive a failed delivery.
	for _, ext := range []string{".csv", ".xlsx", ".docx", ".pdf", ".zip"} {
		assert.FileExists(t, filepath.Join(root, "15_Jun_2025", result.Bundle.Base+ext))
	}
}

func TestSubmit_CustomHazardIncluded(t *testing.T) {
	mailer := &fakeDispatcher{}
	svc, _ := setupSubmissionService(t, mailer, nil)

	req := contract.SubmitRequest{
		RespondentName: "Jane Doe",
		Ward:           "Ward5",
		Hazards:        []string{"Flood"},
		CustomHazard:   "Sinkholes",
		Answers:        testutil.FullAnswerSet("Flood", "Sinkholes"),
	}
	result, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 34, result.RecordCount)
	assert.Equal(t, 2, result.HazardCount)
}

func TestSubmit_ObserverSeesOneEventPerSubmit(t *testing.T) {
	var events []PipelineEvent
	obs := observerFunc(func(e PipelineEvent) { events = append(events, e) })

	root := t.TempDir()
	svc := NewSubmissionService(export.NewRenderer(root), &fakeDispatcher{}, nil, WithObserver(obs))

	_, err := svc.Submit(context.Background(), submitRequest("", "Flood"))
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
	assert.Equal(t, 17, events[0].RecordCount)
	assert.Equal(t, "Ward5", events[0].Ward)
}

type observerFunc func(PipelineEvent)

func (f observerFunc) ObserveSubmission(_ context.Context, e PipelineEvent) { f(e) }

// assertNoOutput verifies no submission files were written under root.
func assertNoOutput(t *testing.T, root string) {
	t.Helper()
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, files, fmt.Sprintf("unexpected files under %s", root))
}
