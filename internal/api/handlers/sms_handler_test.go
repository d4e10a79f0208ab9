package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"smsledger/internal/models"
	"smsledger/internal/repository"
	"smsledger/internal/service"
	"smsledger/pkg/config"
	"smsledger/pkg/twilio"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	testAuthToken = "test-auth-token"
	testPublicURL = "https://ledger.example.com"
)

type stubBudgetFinder struct{ budget *models.Budget }

func (s *stubBudgetFinder) GetByUserAndMonth(context.Context, uuid.UUID, string) (*models.Budget, error) {
	if s.budget == nil {
		return nil, repository.ErrNotFound
	}
	return s.budget, nil
}

type stubWantsBudgetFinder struct{}

func (s *stubWantsBudgetFinder) GetByPeriodStart(context.Context, uuid.UUID, time.Time) (*models.WantsBudget, error) {
	return nil, repository.ErrNotFound
}

type stubTxStore struct {
	created []*models.Transaction
}

func (s *stubTxStore) Create(_ context.Context, tx *models.Transaction) error {
	s.created = append(s.created, tx)
	return nil
}

func (s *stubTxStore) GetByMessageID(context.Context, string) (*models.Transaction, error) {
	return nil, repository.ErrNotFound
}

type stubWantsTxStore struct{}

func (s *stubWantsTxStore) Create(context.Context, *models.WantsTransaction) error { return nil }
func (s *stubWantsTxStore) GetByMessageID(context.Context, string) (*models.WantsTransaction, error) {
	return nil, repository.ErrNotFound
}

func newWebhookApp(t *testing.T, cfg config.TwilioConfig, budget *models.Budget, txs *stubTxStore) *fiber.App {
	t.Helper()

	smsService := service.NewSMSService(
		&stubBudgetFinder{budget: budget},
		&stubWantsBudgetFinder{},
		txs,
		&stubWantsTxStore{},
		zap.NewNop(),
	)

	handler := NewSMSHandler(smsService, cfg, uuid.New(), zap.NewNop())

	app := fiber.New()
	app.Post("/api/sms", handler.Receive)
	return app
}

func postWebhook(t *testing.T, app *fiber.App, params map[string]string, signature string) (int, string, string) {
	t.Helper()

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}

	req := httptest.NewRequest(fiber.MethodPost, "/api/sms", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if signature != "" {
		req.Header.Set("X-Twilio-Signature", signature)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, resp.Header.Get(fiber.HeaderContentType), string(body)
}

func testTwilioCfg() config.TwilioConfig {
	return config.TwilioConfig{AuthToken: testAuthToken, PublicURL: testPublicURL}
}

func signParams(params map[string]string) string {
	return twilio.NewValidator(testAuthToken).
		ComputeSignature(testPublicURL+"/api/sms", params)
}

func smsParams(sid, body string) map[string]string {
	return map[string]string{
		"MessageSid": sid,
		"From":       "+15555551234",
		"Body":       body,
	}
}

func TestWebhookMissingAuthTokenIs500(t *testing.T) {
	cfg := testTwilioCfg()
	cfg.AuthToken = ""
	app := newWebhookApp(t, cfg, nil, &stubTxStore{})

	status, _, _ := postWebhook(t, app, smsParams("SM1", "$5 tea"), "anything")
	if status != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", status)
	}
}

func TestWebhookMissingPublicURLIs500(t *testing.T) {
	// With no public URL the signature would be recomputed over the
	// wrong canonical string and every real delivery would look forged.
	// That is a configuration error, not an auth failure.
	cfg := testTwilioCfg()
	cfg.PublicURL = ""
	app := newWebhookApp(t, cfg, nil, &stubTxStore{})

	params := smsParams("SM1", "$5 tea")
	status, _, _ := postWebhook(t, app, params, signParams(params))
	if status != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", status)
	}
}

func TestWebhookMissingSignatureIs401(t *testing.T) {
	app := newWebhookApp(t, testTwilioCfg(), nil, &stubTxStore{})

	status, _, _ := postWebhook(t, app, smsParams("SM1", "$5 tea"), "")
	if status != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
}

func TestWebhookInvalidSignatureIs401(t *testing.T) {
	app := newWebhookApp(t, testTwilioCfg(), nil, &stubTxStore{})

	status, _, _ := postWebhook(t, app, smsParams("SM1", "$5 tea"), "bogus-signature")
	if status != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
}

func TestWebhookCommitIsSilent200(t *testing.T) {
	txs := &stubTxStore{}
	budget := &models.Budget{ID: 1, Month: service.MonthKey(time.Now()), TotalBudget: 1000}
	app := newWebhookApp(t, testTwilioCfg(), budget, txs)

	params := smsParams("SM100", "$25 coffee")
	status, contentType, body := postWebhook(t, app, params, signParams(params))

	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.HasPrefix(contentType, "text/xml") {
		t.Errorf("Content-Type = %q, want text/xml", contentType)
	}
	if !strings.Contains(body, "<Response></Response>") {
		t.Errorf("body = %q, want empty TwiML", body)
	}
	if len(txs.created) != 1 {
		t.Fatalf("created %d transactions, want 1", len(txs.created))
	}
	if txs.created[0].Amount != 25 {
		t.Errorf("Amount = %v, want 25", txs.created[0].Amount)
	}
}

func TestWebhookNoBudgetReplies200WithMessage(t *testing.T) {
	app := newWebhookApp(t, testTwilioCfg(), nil, &stubTxStore{})

	params := smsParams("SM101", "$25 coffee")
	status, _, body := postWebhook(t, app, params, signParams(params))

	// Business failures ride in the TwiML body, never the HTTP status,
	// so Twilio does not retry them.
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "<Message>") {
		t.Errorf("body = %q, want an explanatory Message", body)
	}
	if !strings.Contains(body, "budget") {
		t.Errorf("body = %q, want it to mention the missing budget", body)
	}
}

func TestWebhookMissingMessageSidIsIgnored(t *testing.T) {
	// A signed delivery without a MessageSid has nothing to commit or
	// deduplicate on. It stays inside the 200 contract with empty
	// TwiML and must not insert anything.
	txs := &stubTxStore{}
	budget := &models.Budget{ID: 1, Month: service.MonthKey(time.Now()), TotalBudget: 1000}
	app := newWebhookApp(t, testTwilioCfg(), budget, txs)

	params := map[string]string{"From": "+15555551234", "Body": "$5 tea"}
	status, contentType, body := postWebhook(t, app, params, signParams(params))

	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.HasPrefix(contentType, "text/xml") {
		t.Errorf("Content-Type = %q, want text/xml", contentType)
	}
	if !strings.Contains(body, "<Response></Response>") {
		t.Errorf("body = %q, want empty TwiML", body)
	}
	if len(txs.created) != 0 {
		t.Errorf("created %d transactions, want 0", len(txs.created))
	}
}
