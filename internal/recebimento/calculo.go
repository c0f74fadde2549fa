package recebimento

import "github.com/sistemacomissoes/api-vendas/internal/plano"

// CalcularValorLiquido computa o valor líquido a receber de uma venda após o
// desconto do consultor e a taxa do plano. Taxa percentual incide sobre o
// valor já descontado, não sobre o bruto. O resultado pode ser negativo.
func CalcularValorLiquido(valorPlano, desconto, valorTaxa float64, tipoTaxa plano.TipoTaxa) float64 {
	liquido := valorPlano - desconto
	switch tipoTaxa {
	case plano.TaxaPercentual:
		liquido -= liquido * (valorTaxa / 100)
	default:
		liquido -= valorTaxa
	}
	return liquido
}
