package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLead_Valido(t *testing.T) {
	lead, err := NewLead("Maria Silva", "maria@email.com", "+5511999998888", "website", "marketing digital")

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, StatusNew, lead.Status)
	assert.Equal(t, 0, lead.Attempts)
	assert.False(t, lead.CollectedAt.IsZero())
}

func TestNewLead_EmailNormalizadoParaMinusculas(t *testing.T) {
	lead, err := NewLead("Maria Silva", "  Maria.Silva@Email.COM ", "", "website", "")

	assert.NoError(t, err)
	// Chave de dedup e do casamento de vendas: sempre em minúsculas.
	assert.Equal(t, "maria.silva@email.com", lead.Email)
}

func TestNewLead_SemContato(t *testing.T) {
	lead, err := NewLead("Maria Silva", "", "", "website", "marketing")

	assert.Nil(t, lead)
	assert.ErrorIs(t, err, ErrSemContato)
}

func TestNewLead_SoTelefone(t *testing.T) {
	lead, err := NewLead("João", "", "+5511988887777", "api", "")

	assert.NoError(t, err)
	assert.Equal(t, "+5511988887777", lead.Phone)
}

func TestFirstName(t *testing.T) {
	lead := &Lead{Name: "Maria Silva Santos"}
	assert.Equal(t, "Maria", lead.FirstName())

	vazio := &Lead{Name: ""}
	assert.Equal(t, "cliente", vazio.FirstName())

	espacos := &Lead{Name: "   "}
	assert.Equal(t, "cliente", espacos.FirstName())
}

func TestFirstInterest(t *testing.T) {
	lead := &Lead{Interests: "marketing digital, vendas"}
	assert.Equal(t, "marketing digital", lead.FirstInterest())

	vazio := &Lead{Interests: ""}
	assert.Equal(t, "este assunto", vazio.FirstInterest())
}
