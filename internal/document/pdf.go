package document

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

// PrintPDF writes the same NFS-e layout as PrintHTML as an A4 PDF.
func PrintPDF(w io.Writer, inv billing.Invoice) error {
	v := newPrintView(inv)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(tr("NFS-e "+inv.Number), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 6, tr("PREFEITURA DO MUNICÍPIO DE SÃO PAULO"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, tr("SECRETARIA MUNICIPAL DA FAZENDA"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, tr("NOTA FISCAL DE SERVIÇOS ELETRÔNICA - NFS-e"), "B", 1, "C", false, 0, "")
	pdf.Ln(3)

	section := func(title string) {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(229, 229, 229)
		pdf.CellFormat(0, 6, tr(title), "1", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 9)
	}

	field := func(label, value string) {
		pdf.SetFont("Arial", "B", 8)
		pdf.CellFormat(55, 5, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, tr(value), "", "L", false)
	}

	section("Informações da Nota Fiscal")
	field("Número da Nota", inv.Number)
	field("Código de Verificação", orDash(inv.VerificationCode))
	field("Data de Emissão", FormatDate(inv.IssueDate))
	field("Data de Vencimento", FormatDate(inv.DueDate))
	field("Status", inv.Status.Label())
	field("Categoria", orDash(inv.Category))

	if p := inv.Provider; p.LegalName != "" {
		section("Prestador de Serviço")
		party(field, p, p.LegalName)
	}

	section("Tomador de Serviço")
	party(field, inv.Recipient, v.RecipientName)

	section("Discriminação dos Serviços")
	pdf.MultiCell(0, 5, tr(inv.Description), "", "L", false)

	if b := inv.Bank; b.Bank != "" {
		section("Dados para Depósito")
		field("Banco", b.Bank)
		field("Agência", orDash(b.Agency))
		field("Conta Corrente", orDash(b.Account))
		field("PIX", orDash(b.Pix))
	}

	section("Valor Total dos Serviços")
	field("INSS", FormatBRL(inv.Taxes.INSS))
	field("IRRF", FormatBRL(inv.Taxes.IRRF))
	field("CSLL", FormatBRL(inv.Taxes.CSLL))
	field("COFINS", FormatBRL(inv.Taxes.COFINS))
	field("PIS", FormatBRL(inv.Taxes.PIS))
	field("IRPJ", FormatBRL(inv.Taxes.IRPJ))
	field("Valor ISS", FormatBRL(inv.Taxes.ISS))
	field("Valor Total", FormatBRL(inv.GrossValue))
	field("Total Impostos", FormatBRL(v.TotalTaxes))
	field("Valor Líquido", FormatBRL(v.Net))

	if inv.Notes != "" || inv.ServiceMunicipality != "" {
		section("Outras Informações")

		if inv.ServiceMunicipality != "" {
			field("Município da Prestação", inv.ServiceMunicipality)
		}

		if inv.Notes != "" {
			field("Observações", inv.Notes)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering invoice %s pdf: %w", inv.ID, err)
	}

	return nil
}

func party(field func(label, value string), p billing.Party, name string) {
	field("Razão Social", name)
	field("CPF/CNPJ", orDash(p.TaxID))
	field("Inscrição Municipal", orDash(p.MunicipalRegistration))
	field("Endereço", orDash(p.Address))
	field("Município/UF", orDash(p.Municipality)+" - "+orDash(p.State))
	field("Email", orDash(p.Email))
}
