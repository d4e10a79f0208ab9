package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smsledger/internal/models"
	"smsledger/internal/repository"
	"smsledger/internal/sms"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Outcome is the terminal state of one webhook delivery.
type Outcome string

const (
	OutcomeCommitted     Outcome = "committed"
	OutcomeDuplicate     Outcome = "duplicate"
	OutcomeUnparseable   Outcome = "unparseable"
	OutcomeNoBudget      Outcome = "no_budget"
	OutcomePersistFailed Outcome = "persist_failed"
)

// InboundMessage is the already-verified content of a webhook delivery.
type InboundMessage struct {
	MessageSID string
	From       string
	Body       string
}

// Result pairs the outcome with the reply to send back to the sender.
// An empty Reply means respond silently (no SMS back to the user).
type Result struct {
	Outcome Outcome
	Reply   string
}

// SMSService runs the transaction commit pipeline: duplicate check,
// parse, budget resolution, persist. Each stage can short-circuit to a
// terminal outcome; no stage creates budgets, and exactly one row is
// inserted per committed message.
type SMSService struct {
	budgets      BudgetFinder
	wantsBudgets WantsBudgetFinder
	transactions TransactionStore
	wantsTxs     WantsTransactionStore
	logger       *zap.Logger
	now          func() time.Time
}

func NewSMSService(
	budgets BudgetFinder,
	wantsBudgets WantsBudgetFinder,
	transactions TransactionStore,
	wantsTxs WantsTransactionStore,
	logger *zap.Logger,
) *SMSService {
	return &SMSService{
		budgets:      budgets,
		wantsBudgets: wantsBudgets,
		transactions: transactions,
		wantsTxs:     wantsTxs,
		logger:       logger,
		now:          time.Now,
	}
}

const formatHint = `Couldn't find an amount in that message. Try "$25 coffee" or "wants 25 dinner".`

const retryHint = "Something went wrong saving that. Please try again in a minute."

// Process handles one inbound message for userID and returns the
// outcome plus reply text. It never returns an error: every failure
// mode maps to a user-facing outcome, and the webhook answers 200 for
// all of them so the provider does not retry unfixable requests.
func (s *SMSService) Process(ctx context.Context, userID uuid.UUID, msg InboundMessage) Result {
	// Duplicate check before any parsing or mutation: a redelivered
	// message SID must be a silent no-op.
	if s.alreadyProcessed(ctx, msg.MessageSID) {
		s.logger.Info("Duplicate message delivery, skipping",
			zap.String("message_sid", msg.MessageSID))
		return Result{Outcome: OutcomeDuplicate}
	}

	parsed := sms.Parse(msg.Body)
	if parsed.Amount == nil || *parsed.Amount == 0 {
		// A zero amount matches the grammar but can never satisfy the
		// positive-amount constraint on insert, so reject it here with
		// the format hint instead of a retry message.
		s.logger.Info("Unparseable message",
			zap.String("message_sid", msg.MessageSID))
		return Result{Outcome: OutcomeUnparseable, Reply: formatHint}
	}

	if parsed.Track == sms.TrackWants {
		return s.commitWants(ctx, userID, msg, parsed)
	}
	return s.commitRegular(ctx, userID, msg, parsed)
}

func (s *SMSService) alreadyProcessed(ctx context.Context, messageSID string) bool {
	if _, err := s.transactions.GetByMessageID(ctx, messageSID); err == nil {
		return true
	} else if !errors.Is(err, repository.ErrNotFound) {
		// Read failures here are not fatal: the unique constraint on
		// the message SID still protects the insert below.
		s.logger.Warn("Duplicate pre-check failed",
			zap.String("message_sid", messageSID), zap.Error(err))
	}
	if _, err := s.wantsTxs.GetByMessageID(ctx, messageSID); err == nil {
		return true
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Warn("Duplicate pre-check failed",
			zap.String("message_sid", messageSID), zap.Error(err))
	}
	return false
}

func (s *SMSService) commitRegular(ctx context.Context, userID uuid.UUID, msg InboundMessage, parsed sms.ParsedMessage) Result {
	today := s.now()
	month := MonthKey(today)

	budget, err := s.budgets.GetByUserAndMonth(ctx, userID, month)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			monthName := today.Format("January 2006")
			return Result{
				Outcome: OutcomeNoBudget,
				Reply:   fmt.Sprintf("No budget set up for %s yet. Create one in the dashboard first.", monthName),
			}
		}
		s.logger.Error("Budget lookup failed",
			zap.String("message_sid", msg.MessageSID), zap.Error(err))
		return Result{Outcome: OutcomePersistFailed, Reply: retryHint}
	}

	tx := &models.Transaction{
		UserID:          userID,
		BudgetID:        budget.ID,
		Amount:          *parsed.Amount,
		Note:            parsed.Note,
		TransactionDate: today,
		Source:          models.SourceSMS,
		TwilioMessageID: &msg.MessageSID,
		TwilioFrom:      &msg.From,
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			// Lost a race against a concurrent retry of the same
			// delivery; the other insert won, so this is a success.
			s.logger.Info("Duplicate message caught at insert",
				zap.String("message_sid", msg.MessageSID))
			return Result{Outcome: OutcomeDuplicate}
		}
		s.logger.Error("Failed to persist transaction",
			zap.String("message_sid", msg.MessageSID),
			zap.Float64("amount", *parsed.Amount),
			zap.Stringp("note", parsed.Note),
			zap.Error(err))
		return Result{Outcome: OutcomePersistFailed, Reply: retryHint}
	}

	s.logger.Info("Transaction committed",
		zap.String("message_sid", msg.MessageSID),
		zap.Int("transaction_id", tx.ID),
		zap.Float64("amount", tx.Amount))
	return Result{Outcome: OutcomeCommitted}
}

func (s *SMSService) commitWants(ctx context.Context, userID uuid.UUID, msg InboundMessage, parsed sms.ParsedMessage) Result {
	today := s.now()
	period := PeriodForDate(today)

	budget, err := s.wantsBudgets.GetByPeriodStart(ctx, userID, period.Start)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Result{
				Outcome: OutcomeNoBudget,
				Reply:   fmt.Sprintf("No wants budget set up for %s yet. Create one in the dashboard first.", period.Label),
			}
		}
		s.logger.Error("Wants budget lookup failed",
			zap.String("message_sid", msg.MessageSID), zap.Error(err))
		return Result{Outcome: OutcomePersistFailed, Reply: retryHint}
	}

	tx := &models.WantsTransaction{
		UserID:          userID,
		WantsBudgetID:   budget.ID,
		Amount:          *parsed.Amount,
		Note:            parsed.Note,
		TransactionDate: today,
		Source:          models.SourceSMS,
		TwilioMessageID: &msg.MessageSID,
		TwilioFrom:      &msg.From,
	}

	if err := s.wantsTxs.Create(ctx, tx); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			s.logger.Info("Duplicate message caught at insert",
				zap.String("message_sid", msg.MessageSID))
			return Result{Outcome: OutcomeDuplicate}
		}
		s.logger.Error("Failed to persist wants transaction",
			zap.String("message_sid", msg.MessageSID),
			zap.Float64("amount", *parsed.Amount),
			zap.Stringp("note", parsed.Note),
			zap.Error(err))
		return Result{Outcome: OutcomePersistFailed, Reply: retryHint}
	}

	s.logger.Info("Wants transaction committed",
		zap.String("message_sid", msg.MessageSID),
		zap.Int("transaction_id", tx.ID),
		zap.Float64("amount", tx.Amount))
	return Result{Outcome: OutcomeCommitted}
}
