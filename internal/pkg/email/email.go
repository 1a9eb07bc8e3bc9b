package email

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/anonimax/anonimax-server/config"
)

type Service struct {
	cfg *config.EmailConfig
}

func NewService(cfg *config.EmailConfig) *Service {
	return &Service{cfg: cfg}
}

// SendVerificationLink envia o link de ativação da conta.
func (s *Service) SendVerificationLink(to, link, anonimaxID string) error {
	subject := "Verifique sua conta - Anonimax"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #06b6d4;">Bem-vindo ao Anonimax</h2>
        <p>Sua conta foi criada. Seu Anonimax ID é:</p>
        <div style="background-color: #f3f4f6; padding: 15px; text-align: center; font-size: 24px; font-weight: bold; letter-spacing: 3px; margin: 20px 0;">
            %s
        </div>
        <p>Clique no botão abaixo para verificar seu email:</p>
        <div style="text-align: center; margin: 30px 0;">
            <a href="%s" style="background-color: #06b6d4; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block;">Verificar email</a>
        </div>
        <p>Se você não criou esta conta, ignore este email.</p>
        <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
        <p style="color: #6b7280; font-size: 12px;">Email automático, não responda.</p>
    </div>
</body>
</html>
`, anonimaxID, link)

	return s.sendHTML(to, subject, body)
}

// SendPasswordReset envia o link de redefinição de senha.
func (s *Service) SendPasswordReset(to, resetLink string) error {
	subject := "Redefinição de senha - Anonimax"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #06b6d4;">Redefinição de senha</h2>
        <p>Recebemos um pedido para redefinir sua senha. Clique no botão abaixo:</p>
        <div style="text-align: center; margin: 30px 0;">
            <a href="%s" style="background-color: #06b6d4; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block;">Redefinir senha</a>
        </div>
        <p>Ou copie este link no navegador:</p>
        <p style="background-color: #f3f4f6; padding: 10px; word-break: break-all;">%s</p>
        <p>O link vale por 1 hora.</p>
        <p>Se você não pediu a redefinição, ignore este email.</p>
        <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
        <p style="color: #6b7280; font-size: 12px;">Email automático, não responda.</p>
    </div>
</body>
</html>
`, resetLink, resetLink)

	return s.sendHTML(to, subject, body)
}

// sendHTML envia email HTML; sem SMTP configurado vira no-op (dev local).
func (s *Service) sendHTML(to, subject, body string) error {
	if s.cfg.SMTPHost == "" {
		log.Printf("email: SMTP not configured, skipping %q to %s", subject, to)
		return nil
	}

	headers := make(map[string]string)
	headers["From"] = s.cfg.From
	headers["To"] = to
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String()))
}
