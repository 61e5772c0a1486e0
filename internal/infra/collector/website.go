package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

// Candidate é um prospect cru vindo de qualquer fonte, ainda sem tags de
// interesse e sem id.
type Candidate struct {
	Name   string
	Email  string
	Phone  string
	Source string
}

// Selectors aponta onde cada campo mora na página alvo.
type Selectors struct {
	Container string
	Name      string
	Email     string
	Phone     string // opcional
}

// WebsiteCollector raspa páginas de diretório com Chrome headless. O
// browser sobe no primeiro Collect e é derrubado no Close — sempre feche,
// inclusive no caminho de sinal.
type WebsiteCollector struct {
	browser  *rod.Browser
	lnch     *launcher.Launcher
	maxLeads int
}

func NewWebsiteCollector(maxLeads int) *WebsiteCollector {
	return &WebsiteCollector{maxLeads: maxLeads}
}

func (c *WebsiteCollector) ensureBrowser() error {
	if c.browser != nil {
		return nil
	}

	c.lnch = launcher.New().
		Headless(true).
		Set("no-sandbox").
		Set("disable-dev-shm-usage")

	controlURL, err := c.lnch.Launch()
	if err != nil {
		return fmt.Errorf("falha ao subir o Chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("falha ao conectar no Chrome: %w", err)
	}

	c.browser = browser
	return nil
}

// Collect navega até a URL e extrai até maxLeads candidates usando os
// seletores CSS configurados. Elemento quebrado é pulado, não aborta a
// página inteira.
func (c *WebsiteCollector) Collect(ctx context.Context, pageURL string, sel Selectors) ([]Candidate, error) {
	if err := c.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := stealth.Page(c.browser)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir aba: %w", err)
	}
	defer page.Close()

	navCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := page.Context(navCtx).Navigate(pageURL); err != nil {
		return nil, fmt.Errorf("falha ao navegar para %s: %w", pageURL, err)
	}
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		log.Printf("⚠️ Collector: timeout esperando %s carregar: %v", pageURL, err)
	}

	elements, err := page.Context(navCtx).Elements(sel.Container)
	if err != nil {
		return nil, fmt.Errorf("seletor %q não encontrado em %s: %w", sel.Container, pageURL, err)
	}

	var candidates []Candidate
	for _, el := range elements {
		if len(candidates) >= c.maxLeads {
			break
		}

		name, err := elementText(el, sel.Name)
		if err != nil {
			log.Printf("⚠️ Collector: elemento sem nome, pulando: %v", err)
			continue
		}

		email, err := elementText(el, sel.Email)
		if err != nil {
			log.Printf("⚠️ Collector: elemento sem email, pulando: %v", err)
			continue
		}

		phoneNumber := ""
		if sel.Phone != "" {
			phoneNumber, _ = elementText(el, sel.Phone)
		}

		candidates = append(candidates, Candidate{
			Name:   name,
			Email:  email,
			Phone:  phoneNumber,
			Source: pageURL,
		})
	}

	return candidates, nil
}

// Close derruba o Chrome. Seguro chamar mesmo sem Collect prévio.
func (c *WebsiteCollector) Close() {
	if c.browser != nil {
		if err := c.browser.Close(); err != nil {
			log.Printf("⚠️ Collector: erro ao fechar browser: %v", err)
		}
		c.browser = nil
	}
	if c.lnch != nil {
		c.lnch.Cleanup()
		c.lnch = nil
	}
}

func elementText(el *rod.Element, selector string) (string, error) {
	child, err := el.Element(selector)
	if err != nil {
		return "", err
	}
	return child.Text()
}
