package fakedata

const (
	companyShapes = 3
	cityShapes    = 4
)

var firstNames = []string{ //nolint:gochecknoglobals // word list
	"Ana", "Beatriz", "Bruna", "Camila", "Carolina", "Clara", "Daniela", "Eduarda", "Fernanda",
	"Gabriela", "Helena", "Isabela", "Juliana", "Larissa", "Laura", "Luana", "Mariana", "Natália",
	"Rafaela", "Sophia", "Teresa", "Valentina", "Yasmin", "Alexandre", "André", "Arthur", "Bernardo",
	"Bruno", "Caio", "Daniel", "Davi", "Eduardo", "Felipe", "Gabriel", "Gustavo", "Heitor", "Igor",
	"João", "Leonardo", "Lucas", "Marcelo", "Matheus", "Miguel", "Otávio", "Pedro", "Rafael",
	"Rodrigo", "Samuel", "Thiago", "Vinícius",
}

var lastNames = []string{ //nolint:gochecknoglobals // word list
	"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves", "Pereira", "Lima",
	"Gomes", "Costa", "Ribeiro", "Martins", "Carvalho", "Almeida", "Lopes", "Soares", "Fernandes",
	"Vieira", "Barbosa", "Rocha", "Dias", "Nascimento", "Andrade", "Moreira", "Nunes", "Marques",
	"Machado", "Mendes", "Freitas", "Cardoso", "Ramos", "Gonçalves", "Santana", "Teixeira",
	"Araújo", "Pinto", "Cavalcanti", "Monteiro", "Moura",
}

var companySuffixes = []string{ //nolint:gochecknoglobals // word list
	"S/A", "S.A.", "Ltda.", "- ME", "- EI", "e Filhos",
}

var cityPrefixes = []string{ //nolint:gochecknoglobals // word list
	"Nova", "Velha", "Grande", "Vila", "Município de",
}

var citySuffixes = []string{ //nolint:gochecknoglobals // word list
	"do Sul", "do Norte", "de Minas", "do Campo", "Grande", "da Serra", "do Oeste", "de Goiás",
	"Paulista", "da Mata", "Alegre", "da Praia", "das Flores", "das Pedras", "dos Dourados",
	"do Amparo", "do Galho", "da Prata", "Verde",
}

type state struct {
	code string
	name string
}

var states = []state{ //nolint:gochecknoglobals // the 27 federative units
	{"AC", "Acre"}, {"AL", "Alagoas"}, {"AP", "Amapá"}, {"AM", "Amazonas"}, {"BA", "Bahia"},
	{"CE", "Ceará"}, {"DF", "Distrito Federal"}, {"ES", "Espírito Santo"}, {"GO", "Goiás"},
	{"MA", "Maranhão"}, {"MT", "Mato Grosso"}, {"MS", "Mato Grosso do Sul"}, {"MG", "Minas Gerais"},
	{"PA", "Pará"}, {"PB", "Paraíba"}, {"PR", "Paraná"}, {"PE", "Pernambuco"}, {"PI", "Piauí"},
	{"RJ", "Rio de Janeiro"}, {"RN", "Rio Grande do Norte"}, {"RS", "Rio Grande do Sul"},
	{"RO", "Rondônia"}, {"RR", "Roraima"}, {"SC", "Santa Catarina"}, {"SP", "São Paulo"},
	{"SE", "Sergipe"}, {"TO", "Tocantins"},
}
