package csvout

// KPIHeader is the general-mode column schema: a sequential id followed by
// the 89 record fields. Column order is part of the output contract.
//
//nolint:gochecknoglobals // fixed schema
var KPIHeader = []string{
	"registro_id", "data", "ano", "mes", "dia", "segmento", "empresa", "cidade",
	"numero_clientes", "ticket_medio", "receita", "custo", "lucro",
	"indice_satisfacao", "taxa_ocupacao", "taxa_crescimento",
	"custo_marketing", "investimento_publicidade",
	"previsao_vendas", "previsao_custos",
	"sensibilidade_negocios", "indice_correcao", "programacao_linear",
	"regiao", "estado", "pais", "tipo_cliente", "canal_venda",
	"categoria_produto", "tipo_servico", "plano", "faixa_etaria",
	"genero", "fonte_trafego", "dispositivo", "sistema_operacional",
	"navegador", "quantidade_produtos", "custo_por_cliente",
	"receita_por_cliente", "lucro_por_cliente", "desconto_medio",
	"percentual_desconto", "taxa_conversao", "vendas_por_vendedor",
	"comissao_vendas", "valor_impostos", "frete_medio",
	"pedidos_por_cliente", "LTV", "CAC", "MRR", "ARR",
	"receita_media_diaria", "custo_por_clique", "custo_por_mil_impressoes",
	"taxa_de_clique", "impressoes", "cliques", "leads_gerados",
	"custo_por_lead", "ROAS", "avaliacao_media", "numero_avaliacoes",
	"NPS", "CSAT", "reclamacoes", "tempo_medio_resposta",
	"tempo_medio_entrega", "taxa_devolucao", "nivel_estoque",
	"giro_estoque", "custo_estoque", "numero_fornecedores",
	"taxa_de_defeito", "usuarios_ativos", "tempo_medio_sessao",
	"taxa_retencao", "churn_rate", "funcionalidade_mais_usada",
	"numero_sessoes", "RevPAR", "taxa_evasao",
	"tempo_medio_atendimento", "despesa_administrativa",
	"despesa_com_pessoal", "despesa_fixa", "despesa_variavel",
	"despesa_tributaria", "despesa_financeira",
}

// HotelHeader is the hotel-mode column schema.
//
//nolint:gochecknoglobals // fixed schema
var HotelHeader = []string{
	"id_registro", "data", "ano", "mes", "dia",
	"nome_hotel", "total_quartos", "ocupacao_diaria",
	"nome_cliente", "tipo_de_quarto", "forma_de_pagamento",
	"quantidade_quartos", "quantidade_diarias", "valor_diaria",
	"valor_total_diarias", "valor_outros_consumos", "total_pago",
	"despesa_fixa", "despesa_variavel", "despesa_mao_obra_direta",
	"despesa_financeira", "despesa_administrativa",
	"quartos_ocupados_dia", "receita_quartos_dia", "receita_total_dia",
	"custo_total_dia", "lucro_operacional_bruto_dia",
	"adr_dia", "revpar_dia", "trevpar_dia", "goppar_dia",
}
