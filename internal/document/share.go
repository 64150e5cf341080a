package document

import (
	"net/url"
	"strings"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

const separator = "━━━━━━━━━━━━━━━━━━━━"

// ShareText is the plain-text summary handed to messaging apps. It is
// meant for people and is not parsed back.
func ShareText(inv billing.Invoice) string {
	var sb strings.Builder

	line := func(parts ...string) {
		for _, p := range parts {
			sb.WriteString(p)
		}

		sb.WriteByte('\n')
	}

	optional := func(label, value string) {
		if value != "" {
			line(label, value)
		}
	}

	line("*NOTA FISCAL - ", inv.Number, "*")
	line()
	line("📋 *Detalhes da Nota Fiscal*")
	line(separator)
	line()
	line("🏢 *Cliente:* ", inv.ClientName)
	line("👤 *Colaborador:* ", inv.RepresentativeName)
	line("💰 *Valor:* ", FormatBRL(inv.GrossValue))
	line("📅 *Emissão:* ", FormatDate(inv.IssueDate))
	line("📆 *Vencimento:* ", FormatDate(inv.DueDate))
	line("📊 *Status:* ", inv.Status.Label())
	line("🏷️ *Categoria:* ", orDash(inv.Category))
	line()
	line("📝 *Descrição:*")
	line(inv.Description)

	if p := inv.Provider; p.LegalName != "" {
		line()
		line("🏭 *Prestador de Serviço:*")
		line(p.LegalName)
		optional("CPF/CNPJ: ", p.TaxID)
		optional("Email: ", p.Email)
	}

	if p := inv.Recipient; p.LegalName != "" {
		line()
		line("🏢 *Tomador de Serviço:*")
		line(p.LegalName)
		optional("CPF/CNPJ: ", p.TaxID)
		optional("Email: ", p.Email)
	}

	if b := inv.Bank; b.Bank != "" {
		line()
		line("💳 *Dados para Depósito:*")
		line("Banco: ", b.Bank)
		optional("Agência: ", b.Agency)
		optional("Conta: ", b.Account)
		optional("PIX: ", b.Pix)
	}

	if inv.Notes != "" {
		line()
		line("📌 *Observações:*")
		line(inv.Notes)
	}

	line()
	line(separator)
	line("📱 Faturamento Novigo")
	sb.WriteString("Sistema de Gestão de Notas Fiscais")

	return sb.String()
}

// ShareLinks are the URIs that open a share target prefilled with ShareText.
type ShareLinks struct {
	Text     string `json:"text"`
	Email    string `json:"email"`
	SMS      string `json:"sms"`
	WhatsApp string `json:"whatsapp"`
}

func Links(inv billing.Invoice) ShareLinks {
	text := ShareText(inv)
	body := escape(text)

	return ShareLinks{
		Text:     text,
		Email:    "mailto:?subject=" + escape("Nota Fiscal "+inv.Number+" - "+inv.ClientName) + "&body=" + body,
		SMS:      "sms:?body=" + body,
		WhatsApp: "https://wa.me/?text=" + body,
	}
}

// escape percent-encodes like a URI component: spaces become %20, not "+".
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
