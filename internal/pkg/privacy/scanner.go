// Package privacy detecta conteúdo que quebraria o anonimato em textos livres.
//
// Os detectores são heurísticos: falsos positivos são aceitáveis (uma sequência
// de 9 dígitos pode ser marcada como telefone). O objetivo é barrar os casos
// óbvios antes da publicação, não validar com precisão.
package privacy

import (
	"regexp"
)

// Mensagens exibidas ao usuário por detector
const (
	IssueEmail    = "Email detectado"
	IssuePhone    = "Número de telefone detectado"
	IssueWhatsApp = "Referência ao WhatsApp detectada"
	IssueCPF      = "CPF detectado"
)

var (
	emailRegex = regexp.MustCompile(`(?i)[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	// Formatos brasileiros: +55 opcional, DDD com parênteses opcionais,
	// prefixo de 4-5 dígitos + sufixo de 4
	phoneRegex    = regexp.MustCompile(`(\+55\s?)?(\(?\d{2}\)?[\s.-]?)?\d{4,5}[\s.-]?\d{4}`)
	whatsappRegex = regexp.MustCompile(`(?i)whatsapp|wpp|zap|whats`)
	cpfRegex      = regexp.MustCompile(`\d{3}\.?\d{3}\.?\d{3}-?\d{2}`)
)

// Result resultado da varredura
type Result struct {
	HasPersonalInfo bool     `json:"has_personal_info"`
	Issues          []string `json:"issues"`
}

// Scan avalia cada detector de forma independente sobre o texto.
func Scan(text string) Result {
	issues := []string{}

	if emailRegex.MatchString(text) {
		issues = append(issues, IssueEmail)
	}
	if phoneRegex.MatchString(text) {
		issues = append(issues, IssuePhone)
	}
	if whatsappRegex.MatchString(text) {
		issues = append(issues, IssueWhatsApp)
	}
	if cpfRegex.MatchString(text) {
		issues = append(issues, IssueCPF)
	}

	return Result{
		HasPersonalInfo: len(issues) > 0,
		Issues:          issues,
	}
}
