package synth

// Country is the only country the generator emits.
const Country = "Brasil"

//nolint:gochecknoglobals // categorical pools
var (
	customerTypes     = []string{"B2B", "B2C", "Pessoa Física", "Pessoa Jurídica"}
	salesChannels     = []string{"Loja física", "Online", "Aplicativo", "Telefone", "Representante"}
	productCategories = []string{"Eletrônicos", "Roupas", "Alimentos", "Livros", "Móveis", "Outros"}
	serviceTypes      = []string{"Consultoria", "Suporte", "Treinamento", "Desenvolvimento", "Outros"}
	plans             = []string{"Básico", "Premium", "Gratuito", "Teste"}
	ageRanges         = []string{"18-25", "26-35", "36-45", "46-55", "55+"}
	genders           = []string{"Masculino", "Feminino", "Outro"}
	trafficSources    = []string{"Busca orgânica", "Anúncio pago", "Rede social", "Email", "Referência", "Direto"}
	devices           = []string{"Desktop", "Mobile", "Tablet"}
	operatingSystems  = []string{"Windows", "macOS", "Linux", "Android", "iOS"}
	browsers          = []string{"Chrome", "Firefox", "Safari", "Edge", "Outro"}
	features          = []string{"FuncA", "FuncB", "FuncC", "Outra"}
)
