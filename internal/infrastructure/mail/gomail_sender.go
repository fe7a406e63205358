// Package mail implementa o envio de e-mails via SMTP (gomail).
package mail

import (
	"bytes"
	"context"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	apporcamento "github.com/salaobella/salao-api/internal/application/orcamento"
	"github.com/salaobella/salao-api/pkg/config"
)

var _ apporcamento.Mailer = (*GomailSender)(nil)

// GomailSender envia e-mails via SMTP usando gomail.
type GomailSender struct {
	cfg config.SMTPConfig
}

// NewGomailSender constrói o remetente a partir da configuração SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// Enviar envia um e-mail HTML, opcionalmente com um anexo (ex.: PDF do orçamento).
// Devolve erro se o SMTP não estiver configurado (SMTP_HOST vazio).
func (s *GomailSender) Enviar(ctx context.Context, para, assunto, corpoHTML string, anexoNome string, anexo []byte) error {
	if s.cfg.Host == "" {
		return fmt.Errorf("envio de e-mail desabilitado: SMTP_HOST não configurado")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", para)
	m.SetHeader("Subject", assunto)
	m.SetBody("text/html", corpoHTML)

	if anexoNome != "" && len(anexo) > 0 {
		m.Attach(anexoNome, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(anexo))
			return err
		}))
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)

	// gomail não aceita context; respeitamos o cancelamento antes do dial.
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar e-mail: %w", err)
	}
	return nil
}
