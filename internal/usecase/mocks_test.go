package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/collector"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/integration/affiliate"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Upsert(ctx context.Context, lead *entity.Lead) (bool, error) {
	args := m.Called(ctx, lead)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeadRepository) Qualified(ctx context.Context, limit, maxAttempts int) ([]*entity.Lead, error) {
	args := m.Called(ctx, limit, maxAttempts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) MarkSent(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

func (m *MockLeadRepository) MarkConverted(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindChatID(ctx context.Context, phone string) (int64, error) {
	args := m.Called(ctx, phone)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeadRepository) SaveChatID(ctx context.Context, phone string, chatID int64) error {
	args := m.Called(ctx, phone, chatID)
	return args.Error(0)
}

func (m *MockLeadRepository) CountCollectedToday(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockMessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Record(ctx context.Context, msg *entity.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) CountSentToday(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockConversionRepository
type MockConversionRepository struct {
	mock.Mock
}

func (m *MockConversionRepository) Record(ctx context.Context, conv *entity.Conversion) error {
	args := m.Called(ctx, conv)
	return args.Error(0)
}

func (m *MockConversionRepository) CountToday(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockConversionRepository) SumCommissionToday(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockConversionRepository) TopProducts(ctx context.Context, limit int) ([]entity.ProductRevenue, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProductRevenue), args.Error(1)
}

// MockOracle
type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) DetectInterests(ctx context.Context, name, email string) (string, error) {
	args := m.Called(ctx, name, email)
	return args.String(0), args.Error(1)
}

func (m *MockOracle) GenerateBenefits(ctx context.Context, interests, product string) (string, error) {
	args := m.Called(ctx, interests, product)
	return args.String(0), args.Error(1)
}

func (m *MockOracle) GenerateSuggestions(ctx context.Context, reportSummary string) (string, error) {
	args := m.Called(ctx, reportSummary)
	return args.String(0), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPromo(to, body string) error {
	args := m.Called(to, body)
	return args.Error(0)
}

// MockWhatsAppService
type MockWhatsAppService struct {
	mock.Mock
}

func (m *MockWhatsAppService) SendWhatsApp(ctx context.Context, to, body string) error {
	args := m.Called(ctx, to, body)
	return args.Error(0)
}

// MockSMSService
type MockSMSService struct {
	mock.Mock
}

func (m *MockSMSService) SendSMS(ctx context.Context, to, body string) error {
	args := m.Called(ctx, to, body)
	return args.Error(0)
}

// MockTelegramService
type MockTelegramService struct {
	mock.Mock
}

func (m *MockTelegramService) SendMessage(ctx context.Context, chatID int64, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}

func (m *MockTelegramService) DiscoverChatID(ctx context.Context, phone string) (int64, error) {
	args := m.Called(ctx, phone)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTelegramService) DeepLink(phone string) string {
	args := m.Called(phone)
	return args.String(0)
}

// MockSalesPlatform
type MockSalesPlatform struct {
	mock.Mock
	PlatformName string
}

func (m *MockSalesPlatform) Name() string {
	return m.PlatformName
}

func (m *MockSalesPlatform) FetchSales(ctx context.Context, start, end time.Time) ([]affiliate.SaleEvent, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]affiliate.SaleEvent), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLead(ctx context.Context, payload queue.LeadPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockWebsiteCollector
type MockWebsiteCollector struct {
	mock.Mock
}

func (m *MockWebsiteCollector) Collect(ctx context.Context, pageURL string, sel collector.Selectors) ([]collector.Candidate, error) {
	args := m.Called(ctx, pageURL, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]collector.Candidate), args.Error(1)
}

// MockAPICollector
type MockAPICollector struct {
	mock.Mock
}

func (m *MockAPICollector) Collect(ctx context.Context, apiURL string, params map[string]string) ([]collector.Candidate, error) {
	args := m.Called(ctx, apiURL, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]collector.Candidate), args.Error(1)
}
