package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("conversation session not found")
	ErrEmptyInput      = errors.New("empty input")
)

// StartInput selects the conversation entry point. All fields optional:
// a service id skips service selection, an order id enters the support
// branch, a user id enables profile seeding and snapshot persistence.

type StartInput struct {
	ServiceID string
	OrderID   string
	UserID    string
}

// ConversationSnapshot is the read model handed to the presentation layer
// after every turn. Messages are delivered through it; the controller never
// pushes.

type ConversationSnapshot struct {
	SessionID string
	UserID    string
	State     entities.ConversationState
	Status    entities.ConversationStatus
	Messages  []entities.Message
	Data      entities.ConversationData
}

// IConversationUseCase is the dialogue controller surface exposed to the
// HTTP layer.

type IConversationUseCase interface {
	Start(ctx context.Context, in StartInput) (ConversationSnapshot, error)
	HandleInput(ctx context.Context, sessionID, text string) (ConversationSnapshot, error)
	GetState(sessionID string) (ConversationSnapshot, error)
}

// conversationSession is the live in-memory session store: message log,
// current state and the data bag. The per-session mutex serializes turns so
// a session never has two in-flight inputs.

type conversationSession struct {
	mu       sync.Mutex
	id       string
	userID   string
	state    entities.ConversationState
	status   entities.ConversationStatus
	data     entities.ConversationData
	messages []entities.Message
}

func (s *conversationSession) addUser(text string) {
	s.messages = append(s.messages, entities.Message{
		ID:        uuid.NewString(),
		Author:    entities.MessageAuthorUser,
		Text:      text,
		Timestamp: time.Now().UTC(),
	})
}

func (s *conversationSession) addBot(text string) {
	s.messages = append(s.messages, entities.Message{
		ID:        uuid.NewString(),
		Author:    entities.MessageAuthorBot,
		Text:      text,
		Timestamp: time.Now().UTC(),
	})
}

func (s *conversationSession) addBotCard(text string, svc entities.Service) {
	card := svc
	s.messages = append(s.messages, entities.Message{
		ID:        uuid.NewString(),
		Author:    entities.MessageAuthorBot,
		Text:      text,
		Timestamp: time.Now().UTC(),
		Service:   &card,
	})
}

// ConversationUseCase drives the intake state machine. State transitions are
// decided by the pure helpers in conversation_transition.go; this type owns
// the session registry and the collaborator calls at the edges.

type ConversationUseCase struct {
	catalog  ICatalogUseCase
	orders   IOrderUseCase
	profiles interfaces.ICustomerProfileRepository
	records  interfaces.IConversationRepository
	gateway  interfaces.IPaymentGateway

	// typingDelay is cosmetic: applied before composing the bot reply,
	// never before accepting input.
	typingDelay time.Duration

	mu       sync.RWMutex
	sessions map[string]*conversationSession
}

var _ IConversationUseCase = (*ConversationUseCase)(nil)

func NewConversationUseCase(
	catalog ICatalogUseCase,
	orders IOrderUseCase,
	profiles interfaces.ICustomerProfileRepository,
	records interfaces.IConversationRepository,
	gateway interfaces.IPaymentGateway,
) *ConversationUseCase {
	return &ConversationUseCase{
		catalog:  catalog,
		orders:   orders,
		profiles: profiles,
		records:  records,
		gateway:  gateway,
		sessions: make(map[string]*conversationSession),
	}
}

// SetTypingDelay enables the simulated thinking pause before bot replies.
func (u *ConversationUseCase) SetTypingDelay(d time.Duration) {
	if d > 0 {
		u.typingDelay = d
	}
}

func (u *ConversationUseCase) Start(ctx context.Context, in StartInput) (ConversationSnapshot, error) {
	switch {
	case strings.TrimSpace(in.OrderID) != "":
		return u.startOrderInquiry(ctx, in)
	case strings.TrimSpace(in.ServiceID) != "":
		return u.startWithService(ctx, in)
	default:
		return u.startFresh(ctx, in)
	}
}

// startFresh greets and auto-advances to service selection. For an
// authenticated caller the latest active record is resumed instead, so a
// conversation survives closing the chat and logging back in.
func (u *ConversationUseCase) startFresh(ctx context.Context, in StartInput) (ConversationSnapshot, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID != "" && u.records != nil {
		rec, err := u.records.GetLatestActiveByUserID(ctx, userID)
		if err != nil {
			log.Printf("[conversation][usecase] resume lookup failed user_id=%s err=%v", userID, err)
		} else if rec.SessionID != "" {
			s := &conversationSession{
				id:       rec.SessionID,
				userID:   userID,
				state:    rec.State,
				status:   rec.Status,
				data:     rec.Data,
				messages: rec.Messages,
			}
			u.register(s)
			log.Printf("[conversation][usecase] resumed session_id=%s user_id=%s state=%s", s.id, userID, s.state)
			return u.snapshot(s), nil
		}
	}

	s := u.newSession(userID)
	s.state = entities.StateGreeting
	s.addBot(msgWelcome)
	s.state = entities.StateServiceSelection
	u.register(s)
	u.persist(ctx, s)
	log.Printf("[conversation][usecase] started session_id=%s state=%s", s.id, s.state)
	return u.snapshot(s), nil
}

// startWithService skips greeting and service selection (catalog click).
func (u *ConversationUseCase) startWithService(ctx context.Context, in StartInput) (ConversationSnapshot, error) {
	svc, err := u.catalog.GetByID(ctx, in.ServiceID)
	if err != nil {
		log.Printf("[conversation][usecase] start service lookup failed service_id=%s err=%v", in.ServiceID, err)
		return ConversationSnapshot{}, err
	}

	s := u.newSession(strings.TrimSpace(in.UserID))
	u.supersedeActive(ctx, s.userID, s.id)
	s.data.SelectedService = &svc
	s.addBotCard(msgServiceGreeting(svc), svc)
	u.enterRequirements(ctx, s)
	u.register(s)
	u.persist(ctx, s)
	log.Printf("[conversation][usecase] started session_id=%s service_id=%s state=%s", s.id, svc.ID, s.state)
	return u.snapshot(s), nil
}

// startOrderInquiry enters the support branch for an existing order,
// independent of the linear intake flow.
func (u *ConversationUseCase) startOrderInquiry(ctx context.Context, in StartInput) (ConversationSnapshot, error) {
	order, err := u.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		log.Printf("[conversation][usecase] start order lookup failed order_id=%s err=%v", in.OrderID, err)
		return ConversationSnapshot{}, err
	}

	s := u.newSession(strings.TrimSpace(in.UserID))
	u.supersedeActive(ctx, s.userID, s.id)
	s.state = entities.StateOrderStatusInquiry
	s.data.OrderID = order.ID
	s.addBot(msgInquiryGreeting(order))
	u.register(s)
	u.persist(ctx, s)
	log.Printf("[conversation][usecase] started session_id=%s order_id=%s state=%s", s.id, order.ID, s.state)
	return u.snapshot(s), nil
}

func (u *ConversationUseCase) HandleInput(ctx context.Context, sessionID, text string) (ConversationSnapshot, error) {
	s := u.lookup(sessionID)
	if s == nil {
		return ConversationSnapshot{}, ErrSessionNotFound
	}

	input := strings.TrimSpace(text)
	if input == "" {
		return ConversationSnapshot{}, ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.addUser(input)
	if u.typingDelay > 0 {
		time.Sleep(u.typingDelay)
	}

	// Recommendation shortcut before the per-state handler.
	if idx, ok := NumericSelection(input, s.data); ok {
		u.selectRecommended(ctx, s, idx)
	} else {
		switch s.state {
		case entities.StateServiceSelection:
			u.handleServiceSelection(ctx, s, input)
		case entities.StateRequirementsGathering:
			u.handleRequirements(ctx, s, input)
		case entities.StateOrderCreation:
			u.handleOrderCreation(ctx, s, input)
		case entities.StateCheckout:
			u.handleCheckout(ctx, s, input)
		case entities.StateStatusTracking:
			u.handleStatusTracking(ctx, s, input)
		case entities.StateOrderStatusInquiry:
			u.handleOrderInquiry(ctx, s, input)
		case entities.StateDocumentUpload:
			u.handleDocumentUpload(ctx, s, input)
		case entities.StateOrderUpdateRequest:
			u.handleOrderUpdateRequest(ctx, s, input)
		default:
			s.addBot(msgFallback)
		}
	}

	u.persist(ctx, s)
	return u.snapshot(s), nil
}

func (u *ConversationUseCase) GetState(sessionID string) (ConversationSnapshot, error) {
	s := u.lookup(sessionID)
	if s == nil {
		return ConversationSnapshot{}, ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return u.snapshot(s), nil
}

// --- state handlers -------------------------------------------------------

func (u *ConversationUseCase) handleServiceSelection(ctx context.Context, s *conversationSession, input string) {
	recs, err := u.catalog.Recommend(ctx, input)
	if err != nil {
		s.addBot(msgCatalogError)
		return
	}

	s.addBot(msgRecommendationIntro)
	for i, svc := range recs {
		s.addBotCard(msgRecommendationCard(i, svc), svc)
	}
	s.addBot(msgRecommendationClosing)
	s.data.RecommendedServices = recs
}

// selectRecommended consumes the numeric shortcut and enters the
// requirements flow for the chosen service.
func (u *ConversationUseCase) selectRecommended(ctx context.Context, s *conversationSession, idx int) {
	svc := s.data.RecommendedServices[idx]
	s.data.SelectedService = &svc
	s.addBotCard(msgServiceSelected(svc), svc)
	u.enterRequirements(ctx, s)
}

// enterRequirements decides between the confirmation sub-protocol (saved
// profile seeded all four fields at once) and field-by-field collection.
func (u *ConversationUseCase) enterRequirements(ctx context.Context, s *conversationSession) {
	s.state = entities.StateRequirementsGathering

	if s.userID != "" && u.profiles != nil {
		profile, err := u.profiles.GetByUserID(ctx, s.userID)
		if err != nil {
			log.Printf("[conversation][usecase] profile fetch failed session_id=%s user_id=%s err=%v", s.id, s.userID, err)
		} else if profile.Complete() {
			s.data.Customer = profile
			s.data.AwaitingProfileConfirmation = true
			s.addBot(msgProfileConfirmation(profile))
			return
		}
	}

	if svc := s.data.SelectedService; svc != nil {
		s.addBot(msgServiceIntakeStart(*svc))
	}
}

func (u *ConversationUseCase) handleRequirements(ctx context.Context, s *conversationSession, input string) {
	if s.data.AwaitingProfileConfirmation {
		switch ParseCommand(input) {
		case cmdConfirm:
			s.data.AwaitingProfileConfirmation = false
			u.runFeeCalculation(s)
		case cmdChange:
			s.data.AwaitingProfileConfirmation = false
			s.data.Customer = entities.CustomerProfile{}
			s.addBot(msgProfileRestart)
		default:
			s.addBot(msgProfileConfirmationRetry)
		}
		return
	}

	updated, field, err := CollectProfileField(s.data.Customer, input)
	if err != nil {
		// Invalid input is discarded; re-prompt for the same field.
		switch field {
		case fieldTaxID:
			s.addBot(msgInvalidTaxID)
		case fieldPhone:
			s.addBot(msgInvalidPhone)
		case fieldEmail:
			s.addBot(msgInvalidEmail)
		}
		return
	}
	s.data.Customer = updated

	switch field {
	case fieldName:
		s.addBot(msgGreetName(updated.Name))
	case fieldTaxID:
		s.addBot(msgAskPhone)
	case fieldPhone:
		s.addBot(msgAskEmail)
	case fieldEmail:
		s.addBot(msgFeeTransition(updated.Name))
		u.runFeeCalculation(s)
	default:
		s.addBot(msgFallback)
	}
}

// runFeeCalculation is not input-driven: it fires on entry, prices the
// selected service and moves straight to order confirmation.
func (u *ConversationUseCase) runFeeCalculation(s *conversationSession) {
	s.state = entities.StateFeeCalculation

	svc := s.data.SelectedService
	if svc == nil {
		s.addBot(msgFallback)
		s.state = entities.StateServiceSelection
		return
	}

	pricing := ComputePricing(*svc, UrgencyStandard)
	s.data.Pricing = &pricing
	s.addBot(msgOrderSummary(*svc, pricing))
	s.state = entities.StateOrderCreation
}

func (u *ConversationUseCase) handleOrderCreation(ctx context.Context, s *conversationSession, input string) {
	switch ParseCommand(input) {
	case cmdConfirm:
		// Idempotency: a created order is never created again for this
		// conversation; repeat confirms re-display the reference.
		if s.data.OrderID != "" {
			s.addBot(msgOrderAlreadyCreated(shortOrderRef(s.data.OrderID)))
			return
		}

		order, err := u.orders.Create(ctx, CreateOrderInput{
			Service:  *s.data.SelectedService,
			Customer: s.data.Customer,
			Pricing:  *s.data.Pricing,
			UserID:   s.userID,
		})
		if err != nil {
			// Reported, not auto-recovered: the user retries without
			// re-entering data.
			s.addBot(msgOrderCreationError)
			return
		}

		s.data.OrderID = order.ID
		s.addBot(msgOrderCreated(order.ShortRef()))
		s.state = entities.StateCheckout

	case cmdCancel:
		s.data.SelectedService = nil
		s.data.Customer = entities.CustomerProfile{}
		s.data.Pricing = nil
		s.data.RecommendedServices = nil
		s.addBot(msgOrderCancelled)
		s.state = entities.StateServiceSelection

	default:
		s.addBot(msgOrderCreationPrompt)
	}
}

func (u *ConversationUseCase) handleCheckout(ctx context.Context, s *conversationSession, input string) {
	var method entities.PaymentMethod
	switch ParseCommand(input) {
	case cmdPix:
		method = entities.PaymentMethodPix
	case cmdCard:
		method = entities.PaymentMethodCard
	case cmdConfirm:
		// Repeated confirms after creation re-display the reference
		// instead of creating a second order.
		s.addBot(msgOrderAlreadyCreated(shortOrderRef(s.data.OrderID)))
		return
	default:
		s.addBot(msgCheckoutPrompt)
		return
	}

	if u.gateway == nil {
		log.Printf("[conversation][usecase] payment gateway not configured session_id=%s order_id=%s", s.id, s.data.OrderID)
		s.addBot(msgCheckoutError)
		return
	}

	charge, err := u.gateway.InitiatePayment(ctx, interfaces.PaymentInput{
		OrderID:          s.data.OrderID,
		AmountMinorUnits: s.data.Pricing.Total,
		Method:           method,
		PayerEmail:       s.data.Customer.Email,
		Description:      fmt.Sprintf("Pedido %s", shortOrderRef(s.data.OrderID)),
	})
	if err != nil {
		log.Printf("[conversation][usecase] payment initiation failed session_id=%s order_id=%s method=%s err=%v", s.id, s.data.OrderID, method, err)
		s.addBot(msgCheckoutError)
		return
	}

	if method == entities.PaymentMethodPix {
		s.addBot(msgPixCharge(charge))
	} else {
		s.addBot(msgCardCharge(charge))
	}
	s.state = entities.StateStatusTracking
}

func (u *ConversationUseCase) handleStatusTracking(_ context.Context, s *conversationSession, input string) {
	switch ParseCommand(input) {
	case cmdPaid:
		svc := s.data.SelectedService
		if svc == nil {
			s.addBot(msgFallback)
			return
		}
		s.addBot(msgPaymentConfirmed(s.data.Customer, *svc))
		s.status = entities.ConversationStatusCompleted
	case cmdStatus:
		remaining := 0
		if svc := s.data.SelectedService; svc != nil && svc.EstimatedDays > 0 {
			remaining = svc.EstimatedDays - 1
		}
		s.addBot(msgTrackingStatus(shortOrderRef(s.data.OrderID), remaining))
	default:
		s.addBot(msgStatusTrackingHelp)
	}
}

func (u *ConversationUseCase) handleOrderInquiry(ctx context.Context, s *conversationSession, input string) {
	switch ParseCommand(input) {
	case cmdStatus:
		order, err := u.orders.GetByID(ctx, s.data.OrderID)
		if err != nil {
			s.addBot(msgInquiryStatusError)
			return
		}
		s.addBot(msgInquiryStatus(order, order.RemainingDays(time.Now().UTC())))
		if reqs, err := u.orders.ListUpdateRequests(ctx, order.ID); err == nil && len(reqs) > 0 {
			s.addBot(msgInquiryUpdateRequests(len(reqs)))
		}
	case cmdUpload:
		s.state = entities.StateDocumentUpload
		s.addBot(msgUploadOptions)
	case cmdUpdate:
		s.state = entities.StateOrderUpdateRequest
		s.addBot(msgUpdatePrompt)
	default:
		s.addBot(msgInquiryHelp)
	}
}

// handleDocumentUpload serves one upload choice and returns to the inquiry
// loop.
func (u *ConversationUseCase) handleDocumentUpload(_ context.Context, s *conversationSession, input string) {
	ref := shortOrderRef(s.data.OrderID)
	switch ParseCommand(input) {
	case cmdEmail:
		s.addBot(msgUploadByEmail(ref))
	case cmdWhatsApp:
		s.addBot(msgUploadByWhatsApp(ref))
	default:
		// Free text counts as an in-chat description of the documents.
		s.addBot(msgUploadDescribed)
	}
	s.state = entities.StateOrderStatusInquiry
}

// handleOrderUpdateRequest records one classified side record and returns to
// the inquiry loop.
func (u *ConversationUseCase) handleOrderUpdateRequest(ctx context.Context, s *conversationSession, input string) {
	req, err := u.orders.CreateUpdateRequest(ctx, s.data.OrderID, input)
	if err != nil {
		s.addBot(msgUpdateError)
		return
	}
	s.addBot(msgUpdateRecorded(req.Kind))
	s.state = entities.StateOrderStatusInquiry
}

// --- session registry and persistence -------------------------------------

func (u *ConversationUseCase) newSession(userID string) *conversationSession {
	return &conversationSession{
		id:     fmt.Sprintf("session_%s", uuid.NewString()),
		userID: userID,
		status: entities.ConversationStatusActive,
	}
}

func (u *ConversationUseCase) register(s *conversationSession) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sessions[s.id] = s
}

func (u *ConversationUseCase) lookup(sessionID string) *conversationSession {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.sessions[sessionID]
}

// persist writes the full snapshot for authenticated users. Best-effort:
// failures are logged and swallowed, never surfaced into the conversation.
// supersedeActive closes the user's previous active record. One active record
// per user: a new authenticated conversation replaces the old one instead of
// leaving a stale record to be resumed later.
func (u *ConversationUseCase) supersedeActive(ctx context.Context, userID, newSessionID string) {
	if userID == "" || u.records == nil {
		return
	}
	rec, err := u.records.GetLatestActiveByUserID(ctx, userID)
	if err != nil {
		log.Printf("[conversation][usecase] supersede lookup failed user_id=%s err=%v", userID, err)
		return
	}
	if rec.SessionID == "" || rec.SessionID == newSessionID {
		return
	}

	rec.Status = entities.ConversationStatusCompleted
	rec.UpdatedAt = time.Now().UTC()
	if err := u.records.Save(ctx, rec); err != nil {
		log.Printf("[conversation][usecase] supersede save failed user_id=%s session_id=%s err=%v", userID, rec.SessionID, err)
	}
}

func (u *ConversationUseCase) persist(ctx context.Context, s *conversationSession) {
	if s.userID == "" || u.records == nil {
		return
	}

	rec := entities.ConversationRecord{
		SessionID: s.id,
		UserID:    s.userID,
		Messages:  s.messages,
		State:     s.state,
		Data:      s.data,
		Status:    s.status,
		OrderID:   s.data.OrderID,
		UpdatedAt: time.Now().UTC(),
	}
	if err := u.records.Save(ctx, rec); err != nil {
		log.Printf("[conversation][usecase] snapshot save failed session_id=%s user_id=%s err=%v", s.id, s.userID, err)
	}
}

func (u *ConversationUseCase) snapshot(s *conversationSession) ConversationSnapshot {
	msgs := make([]entities.Message, len(s.messages))
	copy(msgs, s.messages)
	return ConversationSnapshot{
		SessionID: s.id,
		UserID:    s.userID,
		State:     s.state,
		Status:    s.status,
		Messages:  msgs,
		Data:      s.data,
	}
}

func shortOrderRef(orderID string) string {
	return entities.Order{ID: orderID}.ShortRef()
}
