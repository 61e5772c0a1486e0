package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
	"github.com/caiovm-dev/agente-afiliados/internal/usecase"
)

// MockLeadRepositoryHandler
type MockLeadRepositoryHandler struct {
	mock.Mock
}

func (m *MockLeadRepositoryHandler) Upsert(ctx context.Context, lead *entity.Lead) (bool, error) {
	args := m.Called(ctx, lead)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeadRepositoryHandler) Qualified(ctx context.Context, limit, maxAttempts int) ([]*entity.Lead, error) {
	args := m.Called(ctx, limit, maxAttempts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepositoryHandler) MarkSent(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

func (m *MockLeadRepositoryHandler) MarkConverted(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

func (m *MockLeadRepositoryHandler) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepositoryHandler) FindChatID(ctx context.Context, phone string) (int64, error) {
	args := m.Called(ctx, phone)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeadRepositoryHandler) SaveChatID(ctx context.Context, phone string, chatID int64) error {
	args := m.Called(ctx, phone, chatID)
	return args.Error(0)
}

func (m *MockLeadRepositoryHandler) CountCollectedToday(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockConversionRepositoryHandler
type MockConversionRepositoryHandler struct {
	mock.Mock
}

func (m *MockConversionRepositoryHandler) Record(ctx context.Context, conv *entity.Conversion) error {
	args := m.Called(ctx, conv)
	return args.Error(0)
}

func (m *MockConversionRepositoryHandler) CountToday(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockConversionRepositoryHandler) SumCommissionToday(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockConversionRepositoryHandler) TopProducts(ctx context.Context, limit int) ([]entity.ProductRevenue, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProductRevenue), args.Error(1)
}

// ============ TESTES DO HANDLER ============

func TestCaptureLead_Sucesso(t *testing.T) {
	mockRepo := new(MockLeadRepositoryHandler)
	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(true, nil)

	handler := NewLeadHandler(usecase.NewCreateLeadUseCase(mockRepo))

	body, _ := json.Marshal(map[string]string{
		"name":  "Maria Silva",
		"email": "maria@email.com",
	})

	req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CaptureLead(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp CaptureLeadResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.LeadID)
	assert.False(t, resp.Duplicate)
}

func TestCaptureLead_Duplicado(t *testing.T) {
	mockRepo := new(MockLeadRepositoryHandler)
	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(false, nil)

	handler := NewLeadHandler(usecase.NewCreateLeadUseCase(mockRepo))

	body, _ := json.Marshal(map[string]string{
		"name":  "Maria Silva",
		"email": "maria@email.com",
	})

	req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CaptureLead(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CaptureLeadResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.True(t, resp.Duplicate)
}

func TestCaptureLead_SemContato(t *testing.T) {
	mockRepo := new(MockLeadRepositoryHandler)
	handler := NewLeadHandler(usecase.NewCreateLeadUseCase(mockRepo))

	body, _ := json.Marshal(map[string]string{"name": "Maria"})

	req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CaptureLead(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestCaptureLead_RateLimit(t *testing.T) {
	mockRepo := new(MockLeadRepositoryHandler)
	mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(true, nil)

	handler := NewLeadHandler(usecase.NewCreateLeadUseCase(mockRepo))

	body, _ := json.Marshal(map[string]string{"name": "Maria", "email": "maria@email.com"})

	var last int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewReader(body))
		req.Header.Set("X-Forwarded-For", "10.0.0.1")
		rec := httptest.NewRecorder()
		handler.CaptureLead(rec, req)
		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestHandleSale_VendaCasada(t *testing.T) {
	mockLeads := new(MockLeadRepositoryHandler)
	mockConversions := new(MockConversionRepositoryHandler)

	lead := &entity.Lead{ID: "lead-1", Email: "maria@email.com"}
	mockLeads.On("FindByEmail", mock.Anything, "maria@email.com").Return(lead, nil)
	mockLeads.On("MarkConverted", mock.Anything, "lead-1").Return(nil)
	mockConversions.On("Record", mock.Anything, mock.Anything).Return(nil)

	handler := NewWebhookHandler(usecase.NewRecordSaleUseCase(mockLeads, mockConversions))

	body, _ := json.Marshal(usecase.SaleWebhookInput{
		Platform:      "hotmart",
		TransactionID: "HP-123",
		BuyerEmail:    "maria@email.com",
		Product:       "produto1",
		Amount:        197.0,
		Commission:    98.5,
	})

	req := httptest.NewRequest(http.MethodPost, "/webhook/sales", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleSale(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SaleWebhookResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.True(t, resp.Received)
	assert.True(t, resp.Matched)
	mockLeads.AssertExpectations(t)
}

func TestHandleSale_VendaOrganica(t *testing.T) {
	mockLeads := new(MockLeadRepositoryHandler)
	mockConversions := new(MockConversionRepositoryHandler)

	mockLeads.On("FindByEmail", mock.Anything, "outra@email.com").Return(nil, entity.ErrLeadNotFound)

	handler := NewWebhookHandler(usecase.NewRecordSaleUseCase(mockLeads, mockConversions))

	body, _ := json.Marshal(usecase.SaleWebhookInput{
		Platform:      "eduzz",
		TransactionID: "ED-9",
		BuyerEmail:    "outra@email.com",
		Product:       "produto2",
		Amount:        97.0,
		Commission:    48.5,
	})

	req := httptest.NewRequest(http.MethodPost, "/webhook/sales", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleSale(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SaleWebhookResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.True(t, resp.Received)
	assert.False(t, resp.Matched)
	mockConversions.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestHandleSale_PlataformaInvalida(t *testing.T) {
	mockLeads := new(MockLeadRepositoryHandler)
	mockConversions := new(MockConversionRepositoryHandler)

	handler := NewWebhookHandler(usecase.NewRecordSaleUseCase(mockLeads, mockConversions))

	body, _ := json.Marshal(usecase.SaleWebhookInput{
		Platform:      "shopify",
		TransactionID: "SH-1",
		BuyerEmail:    "maria@email.com",
		Product:       "produto1",
	})

	req := httptest.NewRequest(http.MethodPost, "/webhook/sales", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleSale(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
