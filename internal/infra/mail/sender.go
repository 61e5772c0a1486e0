package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendPromo envia o corpo já renderizado pelo compositor. O texto chega
// pronto — aqui é só transport.
func (s *EmailSender) SendPromo(to, body string) error {
	return s.send(to, "Oportunidade exclusiva para você", body)
}

// SendReport entrega o fechamento do dia para o dono da operação.
func (s *EmailSender) SendReport(to, subject, body string) error {
	return s.send(to, subject, body)
}

func (s *EmailSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
