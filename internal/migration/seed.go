package migration

import "github.com/MrJamesThe3rd/faturamento/internal/billing"

// seedRepresentativeIDs are the five representatives carried over from the
// old collaborator collection; any other representative there is staff.
var seedRepresentativeIDs = []string{"v1", "v2", "v3", "v4", "v5"}

const defaultDescription = "Serviços prestados"

const defaultTaxRegime = "Lucro Presumido"

var (
	companyCategories      = []string{"Tecnologia", "Consultoria", "Serviços"}
	collaboratorCategories = []string{"CLT", "PJ", "RPA", "Flex"}
	workTypes              = []billing.WorkType{billing.WorkOnSite, billing.WorkRemote, billing.WorkHybrid}
)

func seedRepresentatives() []billing.Representative {
	rep := func(id, name, email, phone string, registered billing.Date) billing.Representative {
		return billing.Representative{
			ID:               id,
			Name:             name,
			Email:            email,
			Phone:            phone,
			RegistrationDate: registered,
			Status:           billing.RecordActive,
		}
	}

	return []billing.Representative{
		rep("v1", "Luís Santos", "luis@novigoIT.com", "(11) 98765-1001", billing.NewDate(2022, 1, 10)),
		rep("v2", "Fábio Oliveira", "fabio@novigoIT.com", "(11) 98765-1002", billing.NewDate(2022, 3, 15)),
		rep("v3", "Mariana Costa", "mariana@novigoIT.com", "(11) 98765-1003", billing.NewDate(2022, 5, 20)),
		rep("v4", "Ricardo Mendes", "ricardo@novigoIT.com", "(11) 98765-1004", billing.NewDate(2023, 2, 10)),
		rep("v5", "Juliana Silva", "juliana@novigoIT.com", "(11) 98765-1005", billing.NewDate(2023, 6, 5)),
	}
}

func seedCompanies() []billing.Company {
	return []billing.Company{
		{
			ID: "e1", FullName: "Tech Solutions Ltda", ClassificationCode: "6201-5/00",
			ManagerName: "Carlos Silva", ManagerEmail: "carlos@techsolutions.com", ManagerPhone: "(11) 3456-7890",
			RepresentativeID: "v1", RepresentativeName: "Luís Santos", Category: "Tecnologia",
			Status: billing.RecordActive, RegistrationDate: billing.NewDate(2023, 6, 1),
		},
		{
			ID: "e2", FullName: "Consultoria ABC", ClassificationCode: "7020-4/00",
			ManagerName: "Ana Paula", ManagerEmail: "ana@consultoria.com", ManagerPhone: "(11) 3456-7891",
			RepresentativeID: "v1", RepresentativeName: "Luís Santos", Category: "Consultoria",
			Status: billing.RecordActive, RegistrationDate: billing.NewDate(2023, 7, 15),
		},
		{
			ID: "e3", FullName: "Inovação Digital Ltda", ClassificationCode: "6311-9/00",
			ManagerName: "Roberto Alves", ManagerEmail: "roberto@inovacaodigital.com", ManagerPhone: "(11) 3456-7892",
			RepresentativeID: "v1", RepresentativeName: "Luís Santos", Category: "Tecnologia",
			Status: billing.RecordActive, RegistrationDate: billing.NewDate(2023, 8, 20),
		},
		{
			ID: "e4", FullName: "Banco Empresarial S/A", ClassificationCode: "6422-1/00",
			ManagerName: "Patricia Mendes", ManagerEmail: "patricia@bancoemp.com.br", ManagerPhone: "(11) 3456-7893",
			RepresentativeID: "v2", RepresentativeName: "Fábio Oliveira", Category: "Banco",
			Status: billing.RecordActive, RegistrationDate: billing.NewDate(2023, 9, 10),
		},
		{
			ID: "e5", FullName: "Indústria XYZ Ltda", ClassificationCode: "2599-3/99",
			ManagerName: "Fernando Costa", ManagerEmail: "fernando@industriaxyz.com", ManagerPhone: "(11) 3456-7894",
			RepresentativeID: "v3", RepresentativeName: "Mariana Costa", Category: "Indústria",
			Status: billing.RecordActive, RegistrationDate: billing.NewDate(2023, 10, 5),
		},
	}
}

func seedCollaborators() []billing.Collaborator {
	return []billing.Collaborator{
		{
			ID: "c1", Name: "Maria Silva", Email: "maria@example.com", Phone: "(11) 98765-4321",
			Type: billing.CollaboratorStaff, Category: "CLT", WorkType: billing.WorkOnSite,
			CompanyID: "e1", CompanyName: "Tech Solutions Ltda", RepresentativeID: "v1", RepresentativeName: "Luís Santos",
			Role: "Analista de Sistemas", Department: "TI", AdmissionDate: billing.NewDate(2023, 1, 15), Status: billing.RecordActive,
		},
		{
			ID: "c2", Name: "João Santos", Email: "joao@example.com", Phone: "(11) 98765-4322",
			Type: billing.CollaboratorStaff, Category: "PJ", WorkType: billing.WorkRemote,
			CompanyID: "e2", CompanyName: "Consultoria ABC", RepresentativeID: "v2", RepresentativeName: "Fábio Oliveira",
			Role: "Desenvolvedor Full Stack", Department: "TI", AdmissionDate: billing.NewDate(2023, 2, 20), Status: billing.RecordActive,
		},
		{
			ID: "c3", Name: "Ana Oliveira", Email: "ana@example.com", Phone: "(11) 98765-4323",
			Type: billing.CollaboratorStaff, Category: "CLT", WorkType: billing.WorkHybrid, HybridSchedule: "3x2",
			CompanyID: "e3", CompanyName: "Inovação Digital Ltda", RepresentativeID: "v3", RepresentativeName: "Mariana Costa",
			Role: "Analista Financeira", Department: "Financeiro", AdmissionDate: billing.NewDate(2023, 3, 10), Status: billing.RecordActive,
		},
		{
			ID: "c4", Name: "Carlos Mendes", Email: "carlos@example.com", Phone: "(11) 98765-4324",
			Type: billing.CollaboratorStaff, Category: "RPA", WorkType: billing.WorkOnSite,
			CompanyID: "e4", CompanyName: "Banco Empresarial S/A", RepresentativeID: "v4", RepresentativeName: "Ricardo Mendes",
			Role: "Consultor Financeiro", Department: "Consultoria", AdmissionDate: billing.NewDate(2023, 4, 5), Status: billing.RecordActive,
		},
		{
			ID: "c5", Name: "Patricia Costa", Email: "patricia@example.com", Phone: "(11) 98765-4325",
			Type: billing.CollaboratorStaff, Category: "Flex", WorkType: billing.WorkRemote,
			CompanyID: "e5", CompanyName: "Indústria XYZ Ltda", RepresentativeID: "v5", RepresentativeName: "Juliana Silva",
			Role: "Designer UX/UI", Department: "Design", AdmissionDate: billing.NewDate(2023, 5, 12), Status: billing.RecordActive,
		},
	}
}

// Tomadores are the service takers written over the companies collection
// once migration finishes.
func Tomadores() []billing.Company {
	tomador := func(id, legalName, taxID, stateReg, municipalReg, address, postalCode, municipality, state, email, phone string) billing.Company {
		return billing.Company{
			ID:                    id,
			LegalName:             legalName,
			TaxID:                 taxID,
			StateRegistration:     stateReg,
			MunicipalRegistration: municipalReg,
			Address:               address,
			PostalCode:            postalCode,
			Municipality:          municipality,
			State:                 state,
			Email:                 email,
			Phone:                 phone,
			Status:                billing.RecordActive,
		}
	}

	return []billing.Company{
		tomador("et1", "MICROSOFT BRASIL LTDA", "04.712.500/0001-07", "117.690.111.118", "8.345.632-0",
			"AV. PRESIDENTE JUSCELINO KUBITSCHEK, 1909 - 4º ANDAR - VILA NOVA CONCEIÇÃO", "04543-011", "SÃO PAULO", "SP",
			"contato@microsoft.com.br", "(11) 3443-8200"),
		tomador("et2", "GOOGLE BRASIL INTERNET LTDA", "06.990.590/0001-23", "149.418.890.113", "9.235.874-1",
			"AV. BRIG. FARIA LIMA, 3477 - 12º ANDAR - ITAIM BIBI", "04538-133", "SÃO PAULO", "SP",
			"contato@google.com.br", "(11) 2395-8400"),
		tomador("et3", "AMAZON SERVICOS DE VAREJO DO BRASIL LTDA", "15.436.940/0001-03", "153.589.912.110", "7.892.345-2",
			"AV. PRESIDENTE JUSCELINO KUBITSCHEK, 2041 - TORRE A - VILA OLÍMPIA", "04543-011", "SÃO PAULO", "SP",
			"contato@amazon.com.br", "(11) 3003-2244"),
		tomador("et4", "BANCO BRADESCO S.A.", "60.746.948/0001-12", "107.548.890.111", "5.678.234-8",
			"RUA HENRIQUE MONTEIRO, 236 - PINHEIROS", "05423-020", "SÃO PAULO", "SP",
			"relacionamento@bradesco.com.br", "(11) 2178-0800"),
		tomador("et5", "ITAÚ UNIBANCO S.A.", "60.701.190/0001-04", "106.443.856.117", "4.234.567-3",
			"PRAÇA ALFREDO EGYDIO DE SOUZA ARANHA, 100 - PARQUE JABAQUARA", "04344-902", "SÃO PAULO", "SP",
			"contato@itau-unibanco.com.br", "(11) 5029-1300"),
		tomador("et6", "PETROBRAS - PETRÓLEO BRASILEIRO S.A.", "33.000.167/0001-01", "78.916.764.119", "3.456.789-5",
			"AV. REPÚBLICA DO CHILE, 65 - CENTRO", "20031-912", "RIO DE JANEIRO", "RJ",
			"relacionamento@petrobras.com.br", "(21) 3224-1510"),
		tomador("et7", "VALE S.A.", "33.592.510/0001-54", "062.286.285.0081", "2.345.678-1",
			"AV. DAS AMÉRICAS, 700 - BL. 2 - 5º ANDAR - BARRA DA TIJUCA", "22640-100", "RIO DE JANEIRO", "RJ",
			"contato@vale.com", "(21) 3485-3900"),
		tomador("et8", "AMBEV - COMPANHIA DE BEBIDAS DAS AMÉRICAS", "07.526.557/0001-00", "117.511.726.116", "8.901.234-7",
			"RUA DR. RENATO PAES DE BARROS, 1017 - 4º ANDAR - ITAIM BIBI", "04530-001", "SÃO PAULO", "SP",
			"sac@ambev.com.br", "(11) 2122-1300"),
		tomador("et9", "MAGAZINE LUIZA S.A.", "47.960.950/0001-21", "283.062.408.119", "6.789.012-4",
			"RUA ARNULFO DE LIMA, 2385 - VILA SANTA CRUZ", "14.403-471", "FRANCA", "SP",
			"contato@magazineluiza.com.br", "(16) 3711-2300"),
		tomador("et10", "TELEFÔNICA BRASIL S.A.", "02.558.157/0001-62", "111.234.567.118", "1.234.567-9",
			"AV. ENGENHEIRO LUÍS CARLOS BERRINI, 1376 - CIDADE MONÇÕES", "04571-936", "SÃO PAULO", "SP",
			"atendimento@telefonica.com.br", "(11) 3430-3000"),
	}
}
