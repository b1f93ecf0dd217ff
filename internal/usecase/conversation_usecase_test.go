package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase/interfaces"
	mock_interfaces "meusdocumentos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func lastBotText(t *testing.T, snap ConversationSnapshot) string {
	t.Helper()
	for i := len(snap.Messages) - 1; i >= 0; i-- {
		if snap.Messages[i].Author == entities.MessageAuthorBot {
			return snap.Messages[i].Text
		}
	}
	t.Fatalf("no bot message in snapshot")
	return ""
}

func send(t *testing.T, uc *ConversationUseCase, sessionID, text string) ConversationSnapshot {
	t.Helper()
	snap, err := uc.HandleInput(context.Background(), sessionID, text)
	if err != nil {
		t.Fatalf("HandleInput(%q) failed: %v", text, err)
	}
	return snap
}

func TestConversationUseCase_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogRepo := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	uc := NewConversationUseCase(
		NewCatalogUseCase(catalogRepo),
		NewOrderUseCase(orderRepo, nil, nil),
		nil, nil, gateway,
	)

	snap, err := uc.Start(context.Background(), StartInput{})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if snap.State != entities.StateServiceSelection {
		t.Fatalf("expected SERVICE_SELECTION after greeting, got %s", snap.State)
	}
	if !strings.Contains(lastBotText(t, snap), "MeusDocumentos.AI") {
		t.Fatalf("expected welcome message, got %q", lastBotText(t, snap))
	}
	sessionID := snap.SessionID

	// Keyword recommendation.
	catalogRepo.EXPECT().ListActive(gomock.Any()).Return(catalogFixture(), nil)
	snap = send(t, uc, sessionID, "certidão")
	if len(snap.Data.RecommendedServices) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(snap.Data.RecommendedServices))
	}

	// Numeric shortcut picks the first card and starts intake.
	snap = send(t, uc, sessionID, "1")
	if snap.Data.SelectedService == nil || snap.Data.SelectedService.ID != "svc-1" {
		t.Fatalf("expected svc-1 selected, got %+v", snap.Data.SelectedService)
	}
	if snap.State != entities.StateRequirementsGathering {
		t.Fatalf("expected REQUIREMENTS_GATHERING, got %s", snap.State)
	}

	// Fixed collection order: name, tax id, phone, email.
	snap = send(t, uc, sessionID, "Maria Silva")
	if !strings.Contains(lastBotText(t, snap), "CPF") {
		t.Fatalf("expected CPF prompt, got %q", lastBotText(t, snap))
	}

	// Invalid tax id is discarded and re-prompted.
	snap = send(t, uc, sessionID, "123")
	if lastBotText(t, snap) != msgInvalidTaxID {
		t.Fatalf("expected invalid CPF prompt, got %q", lastBotText(t, snap))
	}
	if snap.Data.Customer.TaxID != "" {
		t.Fatalf("expected tax id discarded, got %q", snap.Data.Customer.TaxID)
	}

	// A digits-only CPF is never read as a recommendation pick.
	snap = send(t, uc, sessionID, "12345678901")
	if snap.Data.Customer.TaxID != "12345678901" {
		t.Fatalf("expected tax id collected, got %q", snap.Data.Customer.TaxID)
	}
	if lastBotText(t, snap) != msgAskPhone {
		t.Fatalf("expected phone prompt, got %q", lastBotText(t, snap))
	}

	snap = send(t, uc, sessionID, "(11) 98888-7777")
	if lastBotText(t, snap) != msgAskEmail {
		t.Fatalf("expected email prompt, got %q", lastBotText(t, snap))
	}

	// Email completes the profile: fee calculation runs and the summary is
	// shown in one turn.
	snap = send(t, uc, sessionID, "maria@example.com")
	if snap.State != entities.StateOrderCreation {
		t.Fatalf("expected ORDER_CREATION, got %s", snap.State)
	}
	if snap.Data.Pricing == nil || snap.Data.Pricing.Total != 8990 || snap.Data.Pricing.UrgencyFee != 0 {
		t.Fatalf("unexpected pricing: %+v", snap.Data.Pricing)
	}
	if !strings.Contains(lastBotText(t, snap), "CONFIRMAR") {
		t.Fatalf("expected order summary, got %q", lastBotText(t, snap))
	}

	// Exactly one repository create, even with a repeated confirm below.
	orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil }).Times(1)

	snap = send(t, uc, sessionID, "CONFIRMAR")
	if snap.State != entities.StateCheckout {
		t.Fatalf("expected CHECKOUT, got %s", snap.State)
	}
	if snap.Data.OrderID == "" {
		t.Fatalf("expected order id recorded")
	}
	orderID := snap.Data.OrderID

	// Idempotent confirm: same order, reference re-displayed.
	snap = send(t, uc, sessionID, "CONFIRMAR")
	if snap.Data.OrderID != orderID {
		t.Fatalf("expected same order id, got %s", snap.Data.OrderID)
	}
	if !strings.Contains(lastBotText(t, snap), "já foi criado") {
		t.Fatalf("expected already-created reply, got %q", lastBotText(t, snap))
	}

	// Unsupported payment keyword re-prompts and stays in checkout.
	snap = send(t, uc, sessionID, "boleto")
	if snap.State != entities.StateCheckout {
		t.Fatalf("expected CHECKOUT after unknown method, got %s", snap.State)
	}
	if lastBotText(t, snap) != msgCheckoutPrompt {
		t.Fatalf("expected checkout prompt, got %q", lastBotText(t, snap))
	}

	gateway.EXPECT().InitiatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in interfaces.PaymentInput) (entities.PaymentCharge, error) {
			if in.Method != entities.PaymentMethodPix {
				t.Fatalf("expected pix method, got %s", in.Method)
			}
			if in.AmountMinorUnits != 8990 {
				t.Fatalf("expected amount 8990, got %d", in.AmountMinorUnits)
			}
			return entities.PaymentCharge{
				OrderID:          in.OrderID,
				Method:           in.Method,
				AmountMinorUnits: in.AmountMinorUnits,
				PixCode:          "00020126PIXCODE",
				QRCodeURL:        "https://example.com/qr.png",
				ExpiresInSeconds: 1800,
			}, nil
		})

	snap = send(t, uc, sessionID, "PIX")
	if snap.State != entities.StateStatusTracking {
		t.Fatalf("expected STATUS_TRACKING, got %s", snap.State)
	}
	if !strings.Contains(lastBotText(t, snap), "00020126PIXCODE") {
		t.Fatalf("expected pix code in reply, got %q", lastBotText(t, snap))
	}

	snap = send(t, uc, sessionID, "STATUS")
	if !strings.Contains(lastBotText(t, snap), "Status do Pedido") {
		t.Fatalf("expected tracking status, got %q", lastBotText(t, snap))
	}

	snap = send(t, uc, sessionID, "PAGO")
	if snap.Status != entities.ConversationStatusCompleted {
		t.Fatalf("expected completed conversation, got %s", snap.Status)
	}
	if !strings.Contains(lastBotText(t, snap), "Pagamento confirmado") {
		t.Fatalf("expected payment confirmation, got %q", lastBotText(t, snap))
	}
}

func TestConversationUseCase_CancelResetsToServiceSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogRepo := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
	uc := NewConversationUseCase(NewCatalogUseCase(catalogRepo), NewOrderUseCase(nil, nil, nil), nil, nil, nil)

	catalogRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(catalogFixture()[1], nil)
	snap, err := uc.Start(context.Background(), StartInput{ServiceID: "svc-1"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	sessionID := snap.SessionID

	send(t, uc, sessionID, "Maria Silva")
	send(t, uc, sessionID, "12345678901")
	send(t, uc, sessionID, "11988887777")
	snap = send(t, uc, sessionID, "maria@example.com")
	if snap.State != entities.StateOrderCreation {
		t.Fatalf("expected ORDER_CREATION, got %s", snap.State)
	}

	snap = send(t, uc, sessionID, "CANCELAR")
	if snap.State != entities.StateServiceSelection {
		t.Fatalf("expected SERVICE_SELECTION after cancel, got %s", snap.State)
	}
	if snap.Data.SelectedService != nil || snap.Data.Pricing != nil || snap.Data.Customer.Name != "" {
		t.Fatalf("expected cleared data, got %+v", snap.Data)
	}
}

func TestConversationUseCase_SavedProfileConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogRepo := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
	profiles := mock_interfaces.NewMockICustomerProfileRepository(ctrl)
	records := mock_interfaces.NewMockIConversationRepository(ctrl)
	uc := NewConversationUseCase(NewCatalogUseCase(catalogRepo), NewOrderUseCase(nil, nil, nil), profiles, records, nil)

	saved := entities.CustomerProfile{Name: "Maria Silva", TaxID: "12345678901", Phone: "11988887777", Email: "maria@example.com"}
	catalogRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(catalogFixture()[1], nil)
	profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(saved, nil)
	records.EXPECT().GetLatestActiveByUserID(gomock.Any(), "user-1").Return(entities.ConversationRecord{}, nil)
	records.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	snap, err := uc.Start(context.Background(), StartInput{ServiceID: "svc-1", UserID: "user-1"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !snap.Data.AwaitingProfileConfirmation {
		t.Fatalf("expected profile confirmation pending")
	}
	sessionID := snap.SessionID

	// Unknown input while awaiting confirmation re-prompts.
	snap = send(t, uc, sessionID, "ok")
	if lastBotText(t, snap) != msgProfileConfirmationRetry {
		t.Fatalf("expected confirmation retry, got %q", lastBotText(t, snap))
	}

	// CONFIRMAR skips straight to the order summary.
	snap = send(t, uc, sessionID, "CONFIRMAR")
	if snap.State != entities.StateOrderCreation {
		t.Fatalf("expected ORDER_CREATION, got %s", snap.State)
	}
	if snap.Data.Customer != saved {
		t.Fatalf("expected seeded profile, got %+v", snap.Data.Customer)
	}
}

func TestConversationUseCase_SavedProfileChangeRestartsCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogRepo := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
	profiles := mock_interfaces.NewMockICustomerProfileRepository(ctrl)
	records := mock_interfaces.NewMockIConversationRepository(ctrl)
	uc := NewConversationUseCase(NewCatalogUseCase(catalogRepo), NewOrderUseCase(nil, nil, nil), profiles, records, nil)

	saved := entities.CustomerProfile{Name: "Maria Silva", TaxID: "12345678901", Phone: "11988887777", Email: "maria@example.com"}
	catalogRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(catalogFixture()[1], nil)
	profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(saved, nil)
	records.EXPECT().GetLatestActiveByUserID(gomock.Any(), "user-1").Return(entities.ConversationRecord{}, nil)
	records.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	snap, err := uc.Start(context.Background(), StartInput{ServiceID: "svc-1", UserID: "user-1"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	sessionID := snap.SessionID

	snap = send(t, uc, sessionID, "ALTERAR")
	if snap.Data.Customer != (entities.CustomerProfile{}) {
		t.Fatalf("expected cleared profile, got %+v", snap.Data.Customer)
	}
	if lastBotText(t, snap) != msgProfileRestart {
		t.Fatalf("expected restart prompt, got %q", lastBotText(t, snap))
	}

	snap = send(t, uc, sessionID, "João Souza")
	if snap.Data.Customer.Name != "João Souza" {
		t.Fatalf("expected fresh name collected, got %q", snap.Data.Customer.Name)
	}
}

func TestConversationUseCase_ResumeLatestActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := mock_interfaces.NewMockIConversationRepository(ctrl)
	uc := NewConversationUseCase(nil, NewOrderUseCase(nil, nil, nil), nil, records, nil)

	svc := catalogFixture()[1]
	records.EXPECT().GetLatestActiveByUserID(gomock.Any(), "user-1").Return(entities.ConversationRecord{
		SessionID: "session_abc",
		UserID:    "user-1",
		State:     entities.StateRequirementsGathering,
		Status:    entities.ConversationStatusActive,
		Data: entities.ConversationData{
			SelectedService: &svc,
			Customer:        entities.CustomerProfile{Name: "Maria Silva"},
		},
		Messages: []entities.Message{{ID: "m1", Author: entities.MessageAuthorBot, Text: msgAskTaxID}},
	}, nil)
	records.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	snap, err := uc.Start(context.Background(), StartInput{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if snap.SessionID != "session_abc" {
		t.Fatalf("expected resumed session, got %s", snap.SessionID)
	}
	if snap.State != entities.StateRequirementsGathering {
		t.Fatalf("expected resumed state, got %s", snap.State)
	}

	// The resumed conversation picks up mid-collection.
	snap = send(t, uc, "session_abc", "12345678901")
	if snap.Data.Customer.TaxID != "12345678901" {
		t.Fatalf("expected tax id collected after resume, got %q", snap.Data.Customer.TaxID)
	}
}

func TestConversationUseCase_ResumeFallsBackToFreshSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := mock_interfaces.NewMockIConversationRepository(ctrl)
	uc := NewConversationUseCase(nil, nil, nil, records, nil)

	records.EXPECT().GetLatestActiveByUserID(gomock.Any(), "user-1").Return(entities.ConversationRecord{}, nil)
	records.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	snap, err := uc.Start(context.Background(), StartInput{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if snap.State != entities.StateServiceSelection {
		t.Fatalf("expected fresh session, got %s", snap.State)
	}
}

func TestConversationUseCase_OrderInquiryBranch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	requests := mock_interfaces.NewMockIOrderUpdateRequestRepository(ctrl)
	uc := NewConversationUseCase(nil, NewOrderUseCase(orderRepo, requests, nil), nil, nil, nil)

	order := entities.Order{ID: "abcdef1234567890", ServiceName: "Certidão de Nascimento", Status: entities.OrderStatusProcessing, PaymentStatus: entities.PaymentStatusPaid}
	orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil)

	snap, err := uc.Start(context.Background(), StartInput{OrderID: order.ID})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if snap.State != entities.StateOrderStatusInquiry {
		t.Fatalf("expected ORDER_STATUS_INQUIRY, got %s", snap.State)
	}
	sessionID := snap.SessionID

	// STATUS reloads the order; no update requests recorded yet.
	orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil)
	requests.EXPECT().ListByOrderID(gomock.Any(), order.ID).Return(nil, nil)
	snap = send(t, uc, sessionID, "STATUS")
	if !strings.Contains(lastBotText(t, snap), "Status do Pedido") {
		t.Fatalf("expected status reply, got %q", lastBotText(t, snap))
	}

	// UPLOAD detours through document upload and returns.
	snap = send(t, uc, sessionID, "UPLOAD")
	if snap.State != entities.StateDocumentUpload {
		t.Fatalf("expected DOCUMENT_UPLOAD, got %s", snap.State)
	}
	snap = send(t, uc, sessionID, "EMAIL")
	if snap.State != entities.StateOrderStatusInquiry {
		t.Fatalf("expected return to inquiry, got %s", snap.State)
	}
	if !strings.Contains(lastBotText(t, snap), "documentos@meusdocumentos.ai") {
		t.Fatalf("expected email instructions, got %q", lastBotText(t, snap))
	}

	// UPDATE records a classified side request and returns.
	snap = send(t, uc, sessionID, "UPDATE")
	if snap.State != entities.StateOrderUpdateRequest {
		t.Fatalf("expected ORDER_UPDATE_REQUEST, got %s", snap.State)
	}
	requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.OrderUpdateRequest) (entities.OrderUpdateRequest, error) {
			if req.Kind != entities.UpdateRequestUrgent {
				t.Fatalf("expected urgent classification, got %s", req.Kind)
			}
			return req, nil
		})
	snap = send(t, uc, sessionID, "Preciso corrigir o endereço, é urgente")
	if snap.State != entities.StateOrderStatusInquiry {
		t.Fatalf("expected return to inquiry, got %s", snap.State)
	}
	if !strings.Contains(lastBotText(t, snap), "urgente") {
		t.Fatalf("expected urgent acknowledgement, got %q", lastBotText(t, snap))
	}

	// The next STATUS surfaces the recorded request.
	orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil)
	requests.EXPECT().ListByOrderID(gomock.Any(), order.ID).Return([]entities.OrderUpdateRequest{
		{ID: "req-1", OrderID: order.ID, Kind: entities.UpdateRequestUrgent, Text: "corrigir o endereço"},
	}, nil)
	snap = send(t, uc, sessionID, "STATUS")
	if !strings.Contains(lastBotText(t, snap), "1 solicitação de atualização") {
		t.Fatalf("expected update-request summary, got %q", lastBotText(t, snap))
	}
}

func TestConversationUseCase_CheckoutGatewayFailureStaysInCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogRepo := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewConversationUseCase(NewCatalogUseCase(catalogRepo), NewOrderUseCase(orderRepo, nil, nil), nil, nil, gateway)

	catalogRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(catalogFixture()[1], nil)
	orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })

	snap, err := uc.Start(context.Background(), StartInput{ServiceID: "svc-1"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	sessionID := snap.SessionID

	send(t, uc, sessionID, "Maria Silva")
	send(t, uc, sessionID, "12345678901")
	send(t, uc, sessionID, "11988887777")
	send(t, uc, sessionID, "maria@example.com")
	send(t, uc, sessionID, "CONFIRMAR")

	gateway.EXPECT().InitiatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentCharge{}, errors.New("provider down"))
	snap = send(t, uc, sessionID, "PIX")
	if snap.State != entities.StateCheckout {
		t.Fatalf("expected CHECKOUT after gateway failure, got %s", snap.State)
	}
	if lastBotText(t, snap) != msgCheckoutError {
		t.Fatalf("expected checkout error message, got %q", lastBotText(t, snap))
	}
}

func TestConversationUseCase_CheckoutWithoutGatewayReportsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogRepo := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewConversationUseCase(NewCatalogUseCase(catalogRepo), NewOrderUseCase(orderRepo, nil, nil), nil, nil, nil)

	catalogRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(catalogFixture()[1], nil)
	orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })

	snap, err := uc.Start(context.Background(), StartInput{ServiceID: "svc-1"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	sessionID := snap.SessionID

	send(t, uc, sessionID, "Maria Silva")
	send(t, uc, sessionID, "12345678901")
	send(t, uc, sessionID, "11988887777")
	send(t, uc, sessionID, "maria@example.com")
	send(t, uc, sessionID, "CONFIRMAR")

	// A valid payment choice with no configured gateway reports and stays in
	// checkout instead of panicking the turn.
	snap = send(t, uc, sessionID, "PIX")
	if snap.State != entities.StateCheckout {
		t.Fatalf("expected CHECKOUT without gateway, got %s", snap.State)
	}
	if lastBotText(t, snap) != msgCheckoutError {
		t.Fatalf("expected checkout error message, got %q", lastBotText(t, snap))
	}

	snap = send(t, uc, sessionID, "CARTAO")
	if snap.State != entities.StateCheckout {
		t.Fatalf("expected CHECKOUT without gateway, got %s", snap.State)
	}
}

func TestConversationUseCase_NewStartSupersedesActiveRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalogRepo := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
	profiles := mock_interfaces.NewMockICustomerProfileRepository(ctrl)
	records := mock_interfaces.NewMockIConversationRepository(ctrl)
	uc := NewConversationUseCase(NewCatalogUseCase(catalogRepo), NewOrderUseCase(nil, nil, nil), profiles, records, nil)

	stale := entities.ConversationRecord{
		SessionID: "session_old",
		UserID:    "user-1",
		State:     entities.StateRequirementsGathering,
		Status:    entities.ConversationStatusActive,
	}
	catalogRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(catalogFixture()[1], nil)
	profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.CustomerProfile{}, nil)
	records.EXPECT().GetLatestActiveByUserID(gomock.Any(), "user-1").Return(stale, nil)

	var saved []entities.ConversationRecord
	records.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec entities.ConversationRecord) error {
			saved = append(saved, rec)
			return nil
		}).AnyTimes()

	snap, err := uc.Start(context.Background(), StartInput{ServiceID: "svc-1", UserID: "user-1"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if snap.SessionID == "session_old" {
		t.Fatalf("expected a new session, got the stale one")
	}

	var superseded bool
	for _, rec := range saved {
		if rec.SessionID == "session_old" {
			if rec.Status != entities.ConversationStatusCompleted {
				t.Fatalf("expected stale record closed, got status %s", rec.Status)
			}
			superseded = true
		}
	}
	if !superseded {
		t.Fatalf("expected the stale active record to be superseded, saved: %+v", saved)
	}
}

func TestConversationUseCase_SessionLifecycle(t *testing.T) {
	uc := NewConversationUseCase(nil, nil, nil, nil, nil)

	if _, err := uc.HandleInput(context.Background(), "missing", "oi"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := uc.GetState("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	snap, err := uc.Start(context.Background(), StartInput{})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := uc.HandleInput(context.Background(), snap.SessionID, "   "); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}

	got, err := uc.GetState(snap.SessionID)
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if got.SessionID != snap.SessionID || got.State != entities.StateServiceSelection {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}
