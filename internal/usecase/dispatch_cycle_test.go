package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
)

type dispatchMocks struct {
	leads    *MockLeadRepository
	messages *MockMessageRepository
	oracle   *MockOracle
	email    *MockEmailService
	whatsapp *MockWhatsAppService
	sms      *MockSMSService
	telegram *MockTelegramService
}

func buildDispatch(t *testing.T) (*DispatchUseCase, *dispatchMocks) {
	t.Helper()

	m := &dispatchMocks{
		leads:    new(MockLeadRepository),
		messages: new(MockMessageRepository),
		oracle:   new(MockOracle),
		email:    new(MockEmailService),
		whatsapp: new(MockWhatsAppService),
		sms:      new(MockSMSService),
		telegram: new(MockTelegramService),
	}

	composer := NewMessageComposer(
		m.oracle,
		map[string][]string{"produto1": {"https://afiliado.com/p1"}, "produto2": {"https://afiliado.com/p2"}},
		map[string]string{
			"email":    "{{.Nome}}: {{.Produto}} - {{.LinkAfiliado}}",
			"whatsapp": "{{.Nome}}: {{.Produto}}",
			"telegram": "{{.Nome}}: {{.Produto}}",
		},
	)

	uc := NewDispatchUseCase(
		m.leads, m.messages, composer,
		m.email, m.whatsapp, m.sms, m.telegram,
		100, 0, 3, 50, "55",
	)

	return uc, m
}

func TestDispatch_TetoDiarioAtingido(t *testing.T) {
	uc, m := buildDispatch(t)
	m.messages.On("CountSentToday", mock.Anything).Return(100, nil)

	sent, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, sent)
	m.leads.AssertNotCalled(t, "Qualified", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_TetoLimitaBusca(t *testing.T) {
	uc, m := buildDispatch(t)
	m.messages.On("CountSentToday", mock.Anything).Return(98, nil)
	m.leads.On("Qualified", mock.Anything, 2, 3).Return([]*entity.Lead{}, nil)

	sent, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, sent)
	m.leads.AssertExpectations(t)
}

func TestDispatch_EnviaEmailEMarcaLead(t *testing.T) {
	uc, m := buildDispatch(t)

	lead := &entity.Lead{ID: "lead-1", Name: "Maria", Email: "maria@email.com", Interests: "marketing digital"}

	m.messages.On("CountSentToday", mock.Anything).Return(0, nil)
	m.leads.On("Qualified", mock.Anything, 50, 3).Return([]*entity.Lead{lead}, nil)
	m.oracle.On("GenerateBenefits", mock.Anything, "marketing digital", "produto1").Return("vender mais", nil)
	m.email.On("SendPromo", "maria@email.com", mock.Anything).Return(nil)
	m.messages.On("Record", mock.Anything, mock.MatchedBy(func(msg *entity.Message) bool {
		return msg.Status == entity.MessageSent && msg.Channel == entity.ChannelEmail
	})).Return(nil)
	m.leads.On("MarkSent", mock.Anything, "lead-1").Return(nil)

	sent, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	m.leads.AssertExpectations(t)
	m.email.AssertExpectations(t)
}

func TestDispatch_FalhaDeEnvioNaoMarcaLead(t *testing.T) {
	uc, m := buildDispatch(t)

	lead := &entity.Lead{ID: "lead-1", Name: "Maria", Email: "maria@email.com", Interests: "vendas"}

	m.messages.On("CountSentToday", mock.Anything).Return(0, nil)
	m.leads.On("Qualified", mock.Anything, 50, 3).Return([]*entity.Lead{lead}, nil)
	m.oracle.On("GenerateBenefits", mock.Anything, mock.Anything, mock.Anything).Return("vender mais", nil)
	m.email.On("SendPromo", mock.Anything, mock.Anything).Return(errors.New("smtp timeout"))
	m.messages.On("Record", mock.Anything, mock.MatchedBy(func(msg *entity.Message) bool {
		return msg.Status == entity.MessageFailed
	})).Return(nil)

	sent, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, sent)
	m.leads.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything)
}

func TestDispatch_InteresseSemProdutoFicaIntocado(t *testing.T) {
	uc, m := buildDispatch(t)

	lead := &entity.Lead{ID: "lead-1", Name: "Maria", Email: "maria@email.com", Interests: "culinária"}

	m.messages.On("CountSentToday", mock.Anything).Return(0, nil)
	m.leads.On("Qualified", mock.Anything, 50, 3).Return([]*entity.Lead{lead}, nil)

	sent, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, sent)
	m.leads.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything)
	m.messages.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestDispatch_SelecaoDeProduto(t *testing.T) {
	uc, _ := buildDispatch(t)

	tests := []struct {
		interests string
		expected  string
		mapped    bool
	}{
		{"marketing digital", entity.ProdutoMarketing, true},
		{"vendas online", entity.ProdutoMarketing, true},
		{"investimentos", entity.ProdutoInvestimento, true},
		{"ganhar dinheiro", entity.ProdutoInvestimento, true},
		{"culinária vegana", "", false},
	}

	for _, tt := range tests {
		produto, ok := uc.selectProduct(&entity.Lead{Interests: tt.interests})
		assert.Equal(t, tt.mapped, ok, tt.interests)
		assert.Equal(t, tt.expected, produto, tt.interests)
	}
}

func TestDispatch_EmpreendedorSorteiaProduto(t *testing.T) {
	uc, _ := buildDispatch(t)

	uc.randIntn = func(n int) int { return 0 }
	produto, ok := uc.selectProduct(&entity.Lead{Interests: "empreendedorismo"})
	assert.True(t, ok)
	assert.Equal(t, entity.ProdutoMarketing, produto)

	uc.randIntn = func(n int) int { return 1 }
	produto, ok = uc.selectProduct(&entity.Lead{Interests: "empreendedorismo"})
	assert.True(t, ok)
	assert.Equal(t, entity.ProdutoInvestimento, produto)
}

func TestDispatch_TelegramComChatIDSalvo_FalhaEDefinitiva(t *testing.T) {
	uc, m := buildDispatch(t)
	uc.randIntn = func(n int) int { return 1 } // telegram

	lead := &entity.Lead{ID: "lead-1", Name: "Maria", Phone: "(11) 99999-8888", Interests: "marketing"}

	m.messages.On("CountSentToday", mock.Anything).Return(0, nil)
	m.leads.On("Qualified", mock.Anything, 50, 3).Return([]*entity.Lead{lead}, nil)
	m.oracle.On("GenerateBenefits", mock.Anything, mock.Anything, mock.Anything).Return("crescer", nil)
	m.leads.On("FindChatID", mock.Anything, "+5511999998888").Return(int64(4242), nil)
	m.telegram.On("SendMessage", mock.Anything, int64(4242), mock.Anything).Return(errors.New("blocked by user"))
	m.messages.On("Record", mock.Anything, mock.MatchedBy(func(msg *entity.Message) bool {
		return msg.Status == entity.MessageFailed
	})).Return(nil)

	sent, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, sent)
	// Chat conhecido que falha não vira convite.
	m.whatsapp.AssertNotCalled(t, "SendWhatsApp", mock.Anything, mock.Anything, mock.Anything)
	m.sms.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_TelegramDescobreEPersisteChatID(t *testing.T) {
	uc, m := buildDispatch(t)
	uc.randIntn = func(n int) int { return 1 }

	lead := &entity.Lead{ID: "lead-1", Name: "Maria", Phone: "11999998888", Interests: "marketing"}

	m.messages.On("CountSentToday", mock.Anything).Return(0, nil)
	m.leads.On("Qualified", mock.Anything, 50, 3).Return([]*entity.Lead{lead}, nil)
	m.oracle.On("GenerateBenefits", mock.Anything, mock.Anything, mock.Anything).Return("crescer", nil)
	m.leads.On("FindChatID", mock.Anything, "+5511999998888").Return(int64(0), entity.ErrChatIDNotFound)
	m.telegram.On("DiscoverChatID", mock.Anything, "+5511999998888").Return(int64(7777), nil)
	m.leads.On("SaveChatID", mock.Anything, "+5511999998888", int64(7777)).Return(nil)
	m.telegram.On("SendMessage", mock.Anything, int64(7777), mock.Anything).Return(nil)
	m.messages.On("Record", mock.Anything, mock.Anything).Return(nil)
	m.leads.On("MarkSent", mock.Anything, "lead-1").Return(nil)

	sent, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	m.telegram.AssertExpectations(t)
	m.leads.AssertExpectations(t)
}

func TestDispatch_TelegramSemOptIn_ConviteViaWhatsAppContaComoSucesso(t *testing.T) {
	uc, m := buildDispatch(t)
	uc.randIntn = func(n int) int { return 1 }

	lead := &entity.Lead{ID: "lead-1", Name: "Maria", Phone: "11999998888", Interests: "marketing"}

	m.messages.On("CountSentToday", mock.Anything).Return(0, nil)
	m.leads.On("Qualified", mock.Anything, 50, 3).Return([]*entity.Lead{lead}, nil)
	m.oracle.On("GenerateBenefits", mock.Anything, mock.Anything, mock.Anything).Return("crescer", nil)
	m.leads.On("FindChatID", mock.Anything, "+5511999998888").Return(int64(0), entity.ErrChatIDNotFound)
	m.telegram.On("DiscoverChatID", mock.Anything, "+5511999998888").Return(int64(0), errors.New("not in updates"))
	m.telegram.On("DeepLink", "+5511999998888").Return("https://t.me/bot?start=contato_5511999998888")
	m.whatsapp.On("SendWhatsApp", mock.Anything, "+5511999998888", mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "https://t.me/bot?start=contato_5511999998888")
	})).Return(nil)
	m.messages.On("Record", mock.Anything, mock.Anything).Return(nil)
	m.leads.On("MarkSent", mock.Anything, "lead-1").Return(nil)

	sent, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	m.sms.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_TelegramConviteCaiParaSMS(t *testing.T) {
	uc, m := buildDispatch(t)
	uc.randIntn = func(n int) int { return 1 }

	lead := &entity.Lead{ID: "lead-1", Name: "Maria", Phone: "11999998888", Interests: "marketing"}

	m.messages.On("CountSentToday", mock.Anything).Return(0, nil)
	m.leads.On("Qualified", mock.Anything, 50, 3).Return([]*entity.Lead{lead}, nil)
	m.oracle.On("GenerateBenefits", mock.Anything, mock.Anything, mock.Anything).Return("crescer", nil)
	m.leads.On("FindChatID", mock.Anything, "+5511999998888").Return(int64(0), entity.ErrChatIDNotFound)
	m.telegram.On("DiscoverChatID", mock.Anything, "+5511999998888").Return(int64(0), errors.New("not in updates"))
	m.telegram.On("DeepLink", "+5511999998888").Return("https://t.me/bot?start=contato_5511999998888")
	m.whatsapp.On("SendWhatsApp", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("whatsapp fora"))
	m.sms.On("SendSMS", mock.Anything, "+5511999998888", mock.Anything).Return(nil)
	m.messages.On("Record", mock.Anything, mock.Anything).Return(nil)
	m.leads.On("MarkSent", mock.Anything, "lead-1").Return(nil)

	sent, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	m.sms.AssertExpectations(t)
}
