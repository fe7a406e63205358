package agenda

import (
	"fmt"
	"strings"
	"time"

	"github.com/salaobella/salao-api/internal/domain/entity"
)

// Namespace dos UIDs do feed iCalendar.
const icsNamespace = "salaobella"

// EventoICS dados resolvidos de um VEVENT (nomes já carregados por join).
type EventoICS struct {
	Agendamento *entity.Agendamento
	ServicoNome string
}

// MontarCalendario gera o documento VCALENDAR do feed de um profissional.
// Um VEVENT por agendamento; terminações de linha CRLF; horários em UTC no
// formato YYYYMMDDTHHMMSSZ.
func MontarCalendario(profissionalNome string, eventos []EventoICS, agora time.Time) string {
	var b strings.Builder
	escreveLinha(&b, "BEGIN:VCALENDAR")
	escreveLinha(&b, "VERSION:2.0")
	escreveLinha(&b, "PRODID:-//Salão Bella//Agenda//PT-BR")
	escreveLinha(&b, "CALSCALE:GREGORIAN")
	escreveLinha(&b, "X-WR-CALNAME:"+escapaTextoICS("Agenda "+profissionalNome))

	dtstamp := formatoICS(agora)
	for _, ev := range eventos {
		a := ev.Agendamento
		escreveLinha(&b, "BEGIN:VEVENT")
		escreveLinha(&b, fmt.Sprintf("UID:%s@%s", a.ID, icsNamespace))
		escreveLinha(&b, "DTSTAMP:"+dtstamp)
		escreveLinha(&b, "DTSTART:"+formatoICS(a.Inicio))
		escreveLinha(&b, "DTEND:"+formatoICS(a.Fim))
		escreveLinha(&b, "SUMMARY:"+escapaTextoICS(resumoEvento(ev)))
		if a.Observacoes != "" {
			escreveLinha(&b, "DESCRIPTION:"+escapaTextoICS(a.Observacoes))
		}
		escreveLinha(&b, "STATUS:"+statusICS(a.Status))
		escreveLinha(&b, "END:VEVENT")
	}
	escreveLinha(&b, "END:VCALENDAR")
	return b.String()
}

func resumoEvento(ev EventoICS) string {
	if ev.ServicoNome == "" {
		return ev.Agendamento.ClienteNome
	}
	return ev.ServicoNome + " - " + ev.Agendamento.ClienteNome
}

// statusICS mapeia o status do agendamento para o vocabulário RFC 5545.
func statusICS(status string) string {
	if status == entity.AgendamentoConfirmado {
		return "CONFIRMED"
	}
	return "TENTATIVE"
}

// formatoICS converte para UTC no formato básico do iCalendar.
func formatoICS(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapaTextoICS aplica o escaping de TEXT do RFC 5545: quebras de linha viram
// o literal \n; vírgula, ponto e vírgula e contrabarra são escapados.
func escapaTextoICS(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		"\r\n", "\\n",
		"\n", "\\n",
		";", "\\;",
		",", "\\,",
	)
	return r.Replace(s)
}

// escreveLinha grava uma linha terminada em CRLF.
func escreveLinha(b *strings.Builder, linha string) {
	b.WriteString(linha)
	b.WriteString("\r\n")
}
