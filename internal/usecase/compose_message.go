package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math/rand"
	"text/template"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
)

// MessageComposer monta a mensagem personalizada de um canal. Falha de
// oráculo vira frase genérica; falha de render vira string vazia — que o
// dispatcher lê como "não envie".
type MessageComposer struct {
	Oracle    TextOracle
	Links     map[string][]string // produto -> links de afiliado
	Templates map[string]string   // canal -> template

	randIntn func(n int) int
}

func NewMessageComposer(oracle TextOracle, links map[string][]string, templates map[string]string) *MessageComposer {
	return &MessageComposer{
		Oracle:    oracle,
		Links:     links,
		Templates: templates,
		randIntn:  rand.Intn,
	}
}

// Compose renderiza o template do canal com os placeholders preenchidos.
func (c *MessageComposer) Compose(ctx context.Context, lead *entity.Lead, produto, canal string) string {
	raw, ok := c.Templates[canal]
	if !ok {
		log.Printf("❌ Composer: canal %q sem template", canal)
		return ""
	}

	beneficio, err := c.Oracle.GenerateBenefits(ctx, lead.Interests, produto)
	if err != nil {
		log.Printf("⚠️ Composer: oráculo falhou, usando benefício genérico: %v", err)
		beneficio = fmt.Sprintf("aproveitar melhor o %s", produto)
	}

	tmpl, err := template.New(canal).Option("missingkey=error").Parse(raw)
	if err != nil {
		log.Printf("❌ Composer: template de %q inválido: %v", canal, err)
		return ""
	}

	data := map[string]string{
		"Nome":         lead.FirstName(),
		"Produto":      produto,
		"Beneficio":    beneficio,
		"LinkAfiliado": c.pickLink(produto),
		"Tema":         lead.FirstInterest(),
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		log.Printf("❌ Composer: erro ao renderizar mensagem: %v", err)
		return ""
	}

	return body.String()
}

// pickLink sorteia quando o produto tem mais de um link configurado.
func (c *MessageComposer) pickLink(produto string) string {
	links := c.Links[produto]
	switch len(links) {
	case 0:
		return ""
	case 1:
		return links[0]
	default:
		return links[c.randIntn(len(links))]
	}
}
