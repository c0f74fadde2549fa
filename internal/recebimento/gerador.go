package recebimento

import (
	"errors"
	"time"

	"github.com/sistemacomissoes/api-vendas/internal/parcela"
	"github.com/sistemacomissoes/api-vendas/internal/plano"
)

// Intervalo padrão entre parcelas do cronograma.
const DiasEntreParcelas = 30

var (
	ErrSemParcelas         = errors.New("plano sem parcelas cadastradas")
	ErrNumeroParcela       = errors.New("número de parcela deve ser maior ou igual a 1")
	ErrPercentualNegativo  = errors.New("porcentagem de parcela não pode ser negativa")
	ErrParcelasForaDeOrdem = errors.New("parcelas fora de ordem ou com número repetido")
)

// VendaFinanceira carrega os campos de uma venda que determinam o cronograma.
type VendaFinanceira struct {
	VendaID      uint
	ValorPlano   float64
	Desconto     float64
	TipoTaxa     plano.TipoTaxa
	ValorTaxa    float64
	DataVigencia time.Time
}

// GerarCronograma monta o conjunto completo de controles de recebimento de
// uma venda a partir da quebra de parcelas do plano.
//
// A primeira parcela incide sobre o valor líquido (absorve desconto e taxa)
// e vence 30 dias após a vigência. As demais incidem sobre o valor bruto do
// plano e vencem 30 dias após a data efetiva da parcela anterior — na
// geração inicial nenhuma parcela tem recebimento real, então a cadeia parte
// da data prevista da primeira.
//
// Função pura: valida e calcula, sem tocar no banco. Nada é escrito quando a
// quebra de parcelas é rejeitada.
func GerarCronograma(v VendaFinanceira, parcelas []parcela.Parcela) ([]ControleDeRecebimento, error) {
	if len(parcelas) == 0 {
		return nil, ErrSemParcelas
	}
	anteriorNumero := 0
	for _, p := range parcelas {
		if p.NumeroParcela < 1 {
			return nil, ErrNumeroParcela
		}
		if p.PorcentagemParcela < 0 {
			return nil, ErrPercentualNegativo
		}
		if p.NumeroParcela <= anteriorNumero {
			return nil, ErrParcelasForaDeOrdem
		}
		anteriorNumero = p.NumeroParcela
	}

	liquido := CalcularValorLiquido(v.ValorPlano, v.Desconto, v.ValorTaxa, v.TipoTaxa)

	controles := make([]ControleDeRecebimento, 0, len(parcelas))
	var dataAnterior time.Time
	for i, p := range parcelas {
		var valor float64
		if i == 0 {
			valor = liquido * (p.PorcentagemParcela / 100)
			dataAnterior = v.DataVigencia
		} else {
			valor = v.ValorPlano * (p.PorcentagemParcela / 100)
		}
		prevista := dataAnterior.AddDate(0, 0, DiasEntreParcelas)

		controles = append(controles, ControleDeRecebimento{
			VendaID:                 v.VendaID,
			ParcelaID:               p.ID,
			ValorParcela:            valor,
			DataPrevistaRecebimento: prevista,
			Status:                  StatusNaoRecebido,
		})
		dataAnterior = prevista
	}
	return controles, nil
}
