package document

import (
	"fmt"
	"html/template"
	"io"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

// printView is what the print layouts need beyond the invoice itself.
type printView struct {
	billing.Invoice
	RecipientName string
	TotalTaxes    float64
	Net           float64
}

func newPrintView(inv billing.Invoice) printView {
	v := printView{
		Invoice:       inv,
		RecipientName: inv.Recipient.LegalName,
		TotalTaxes:    inv.Taxes.Total(),
	}

	if v.RecipientName == "" {
		v.RecipientName = inv.ClientName
	}

	v.Net = inv.GrossValue - v.TotalTaxes

	return v
}

var printTemplate = template.Must(template.New("nfse").Funcs(template.FuncMap{
	"brl":  FormatBRL,
	"date": FormatDate,
	"dash": orDash,
}).Parse(printHTML))

// PrintHTML writes a standalone HTML page laid out like a São Paulo NFS-e.
func PrintHTML(w io.Writer, inv billing.Invoice) error {
	if err := printTemplate.Execute(w, newPrintView(inv)); err != nil {
		return fmt.Errorf("rendering invoice %s: %w", inv.ID, err)
	}

	return nil
}

const printHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>NFS-e {{.Number}}</title>
<style>
body { font-family: Arial, sans-serif; font-size: 12px; margin: 24px; color: #111; }
.header { text-align: center; border-bottom: 2px solid #000; padding-bottom: 8px; margin-bottom: 16px; }
.section { border: 1px solid #000; margin-bottom: 8px; }
.section-title { background: #e5e5e5; font-weight: bold; padding: 4px 8px; text-transform: uppercase; }
.grid { display: grid; grid-template-columns: 1fr 1fr; gap: 4px 16px; padding: 8px; }
.full { grid-column: 1 / -1; }
.label { display: block; font-size: 10px; color: #555; }
.total { font-size: 16px; font-weight: bold; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<div class="header">
<h2>PREFEITURA DO MUNICÍPIO DE SÃO PAULO</h2>
<h3>SECRETARIA MUNICIPAL DA FAZENDA</h3>
<h1>NOTA FISCAL DE SERVIÇOS ELETRÔNICA - NFS-e</h1>
</div>

<div class="section">
<div class="section-title">Informações da Nota Fiscal</div>
<div class="grid">
<div><span class="label">Número da Nota</span>{{.Number}}</div>
<div><span class="label">Código de Verificação</span>{{dash .VerificationCode}}</div>
<div><span class="label">Data de Emissão</span>{{date .IssueDate}}</div>
<div><span class="label">Data de Vencimento</span>{{date .DueDate}}</div>
<div><span class="label">Status</span>{{.Status.Label}}</div>
<div><span class="label">Categoria</span>{{dash .Category}}</div>
</div>
</div>
{{with .Provider}}{{if .LegalName}}
<div class="section">
<div class="section-title">Prestador de Serviço</div>
<div class="grid">
<div class="full"><span class="label">Razão Social</span>{{.LegalName}}</div>
<div><span class="label">CPF/CNPJ</span>{{dash .TaxID}}</div>
<div><span class="label">Inscrição Municipal</span>{{dash .MunicipalRegistration}}</div>
<div class="full"><span class="label">Endereço</span>{{dash .Address}}</div>
<div><span class="label">Município/UF</span>{{dash .Municipality}} - {{dash .State}}</div>
<div><span class="label">Email</span>{{dash .Email}}</div>
</div>
</div>
{{end}}{{end}}
<div class="section">
<div class="section-title">Tomador de Serviço</div>
<div class="grid">
<div class="full"><span class="label">Razão Social</span>{{.RecipientName}}</div>
<div><span class="label">CPF/CNPJ</span>{{dash .Recipient.TaxID}}</div>
<div><span class="label">Inscrição Municipal</span>{{dash .Recipient.MunicipalRegistration}}</div>
<div class="full"><span class="label">Endereço</span>{{dash .Recipient.Address}}</div>
<div><span class="label">Município/UF</span>{{dash .Recipient.Municipality}} - {{dash .Recipient.State}}</div>
<div><span class="label">Email</span>{{dash .Recipient.Email}}</div>
</div>
</div>

<div class="section">
<div class="section-title">Discriminação dos Serviços</div>
<div class="grid"><div class="full">{{.Description}}</div></div>
</div>
{{with .Bank}}{{if .Bank}}
<div class="section">
<div class="section-title">Dados para Depósito</div>
<div class="grid">
<div><span class="label">Banco</span>{{.Bank}}</div>
<div><span class="label">Agência</span>{{dash .Agency}}</div>
<div><span class="label">Conta Corrente</span>{{dash .Account}}</div>
<div><span class="label">PIX</span>{{dash .Pix}}</div>
</div>
</div>
{{end}}{{end}}
<div class="section">
<div class="section-title">Valor Total dos Serviços</div>
<div class="grid">
<div><span class="label">INSS</span>{{brl .Taxes.INSS}}</div>
<div><span class="label">IRRF</span>{{brl .Taxes.IRRF}}</div>
<div><span class="label">CSLL</span>{{brl .Taxes.CSLL}}</div>
<div><span class="label">COFINS</span>{{brl .Taxes.COFINS}}</div>
<div><span class="label">PIS</span>{{brl .Taxes.PIS}}</div>
<div><span class="label">IRPJ</span>{{brl .Taxes.IRPJ}}</div>
<div><span class="label">Código do Serviço</span>{{dash .ServiceCode}}</div>
<div><span class="label">Valor Total das Deduções</span>{{brl .Deductions}}</div>
<div><span class="label">Base de Cálculo</span>{{brl .CalculationBase}}</div>
<div><span class="label">Alíquota</span>{{.Rate}}%</div>
<div><span class="label">Valor ISS</span>{{brl .Taxes.ISS}}</div>
<div><span class="label">Valor Crédito</span>{{brl .CreditValue}}</div>
<div><span class="label">Valor Total</span><span class="total">{{brl .GrossValue}}</span></div>
<div><span class="label">Total Impostos</span><span class="total">{{brl .TotalTaxes}}</span></div>
<div><span class="label">Valor Líquido</span><span class="total">{{brl .Net}}</span></div>
</div>
</div>
{{if or .Notes .ServiceMunicipality .WorksRegistration}}
<div class="section">
<div class="section-title">Outras Informações</div>
<div class="grid">
{{if .ServiceMunicipality}}<div><span class="label">Município da Prestação</span>{{.ServiceMunicipality}}</div>{{end}}
{{if .WorksRegistration}}<div><span class="label">Número de Inscrição da Obra</span>{{.WorksRegistration}}</div>{{end}}
{{if .ApproxTaxes}}<div><span class="label">Valor Aproximado dos Tributos</span>{{brl .ApproxTaxes}}</div>{{end}}
{{if .Notes}}<div class="full"><span class="label">Observações</span>{{.Notes}}</div>{{end}}
</div>
</div>
{{end}}
</body>
</html>
`
