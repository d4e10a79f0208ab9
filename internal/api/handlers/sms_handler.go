package handlers

import (
	"net/url"
	"strings"

	"smsledger/internal/service"
	"smsledger/pkg/config"
	"smsledger/pkg/twilio"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// webhookPath is the externally-visible path of the SMS endpoint. The
// signature is computed over PUBLIC_URL + this path, so it must match
// the URL configured in the Twilio console exactly.
const webhookPath = "/api/sms"

type SMSHandler struct {
	smsService *service.SMSService
	twilioCfg  config.TwilioConfig
	userID     uuid.UUID
	logger     *zap.Logger
}

// NewSMSHandler wires the webhook endpoint. userID is the deployment's
// single tenant, injected here (not inside the pipeline) so the
// pipeline itself stays tenant-agnostic.
func NewSMSHandler(smsService *service.SMSService, twilioCfg config.TwilioConfig, userID uuid.UUID, logger *zap.Logger) *SMSHandler {
	return &SMSHandler{
		smsService: smsService,
		twilioCfg:  twilioCfg,
		userID:     userID,
		logger:     logger,
	}
}

// Receive handles an inbound Twilio SMS webhook delivery.
//
// HTTP status is used only for transport-level outcomes: 500 when the
// signing configuration is incomplete, 401 for a missing or invalid
// signature. Every business outcome (committed, duplicate,
// unparseable, missing budget, even a failed insert) answers 200 with
// a TwiML body, so Twilio never retries a request that retrying
// cannot fix.
func (h *SMSHandler) Receive(c *fiber.Ctx) error {
	// Both values are needed to recompute the signature. Without the
	// public URL every genuine delivery would verify against the wrong
	// canonical string and read as forged, so report the configuration
	// error instead.
	if h.twilioCfg.AuthToken == "" || h.twilioCfg.PublicURL == "" {
		h.logger.Error("Twilio webhook not configured",
			zap.Bool("auth_token_set", h.twilioCfg.AuthToken != ""),
			zap.Bool("public_url_set", h.twilioCfg.PublicURL != ""))
		return c.Status(fiber.StatusInternalServerError).SendString("Server configuration error")
	}

	signature := c.Get("X-Twilio-Signature")
	if signature == "" {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	// Re-parse the raw body rather than trusting any framework-level
	// form decoding: the signature covers the exact parameters Twilio
	// sent.
	values, err := url.ParseQuery(string(c.Body()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Bad Request")
	}
	params := make(map[string]string, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}

	callbackURL := strings.TrimRight(h.twilioCfg.PublicURL, "/") + webhookPath
	validator := twilio.NewValidator(h.twilioCfg.AuthToken)
	if !validator.Validate(signature, callbackURL, params) {
		h.logger.Warn("Invalid Twilio signature",
			zap.String("message_sid", params["MessageSid"]))
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	msg := service.InboundMessage{
		MessageSID: params["MessageSid"],
		From:       params["From"],
		Body:       params["Body"],
	}

	c.Set(fiber.HeaderContentType, twilio.ContentType)

	// Real Twilio traffic always carries a MessageSid; a signed request
	// without one has nothing to commit or deduplicate on, so answer
	// inside the normal 200 contract rather than inventing a status.
	if msg.MessageSID == "" {
		h.logger.Warn("Delivery without MessageSid, ignoring")
		return c.SendString(twilio.EmptyResponse())
	}

	result := h.smsService.Process(c.Context(), h.userID, msg)

	if result.Reply == "" {
		return c.SendString(twilio.EmptyResponse())
	}
	return c.SendString(twilio.MessageResponse(result.Reply))
}
