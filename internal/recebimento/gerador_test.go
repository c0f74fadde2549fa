package recebimento

import (
	"testing"
	"time"

	"github.com/sistemacomissoes/api-vendas/internal/parcela"
	"github.com/sistemacomissoes/api-vendas/internal/plano"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parcelasDeTeste(porcentagens ...float64) []parcela.Parcela {
	parcelas := make([]parcela.Parcela, 0, len(porcentagens))
	for i, pct := range porcentagens {
		parcelas = append(parcelas, parcela.Parcela{
			ID:                 uint(i + 1),
			PlanoID:            1,
			NumeroParcela:      i + 1,
			PorcentagemParcela: pct,
		})
	}
	return parcelas
}

func TestGerarCronograma_CenarioCompleto(t *testing.T) {
	vigencia := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	v := VendaFinanceira{
		VendaID:      7,
		ValorPlano:   1000,
		Desconto:     100,
		TipoTaxa:     plano.TaxaPercentual,
		ValorTaxa:    10,
		DataVigencia: vigencia,
	}

	controles, err := GerarCronograma(v, parcelasDeTeste(50, 30, 20))
	require.NoError(t, err)
	require.Len(t, controles, 3)

	// Primeira parcela incide sobre o líquido (810), demais sobre o bruto.
	assert.InDelta(t, 405, controles[0].ValorParcela, 1e-9)
	assert.InDelta(t, 300, controles[1].ValorParcela, 1e-9)
	assert.InDelta(t, 200, controles[2].ValorParcela, 1e-9)

	// Cadeia de vencimentos parte da vigência + 30 dias.
	assert.Equal(t, vigencia.AddDate(0, 0, 30), controles[0].DataPrevistaRecebimento)
	assert.Equal(t, vigencia.AddDate(0, 0, 60), controles[1].DataPrevistaRecebimento)
	assert.Equal(t, vigencia.AddDate(0, 0, 90), controles[2].DataPrevistaRecebimento)

	for _, c := range controles {
		assert.Equal(t, StatusNaoRecebido, c.Status)
		assert.Equal(t, uint(7), c.VendaID)
		assert.Nil(t, c.DataRecebimento)
	}
}

func TestGerarCronograma_ParcelaUnica(t *testing.T) {
	vigencia := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	v := VendaFinanceira{
		VendaID:      1,
		ValorPlano:   800,
		Desconto:     0,
		TipoTaxa:     plano.TaxaFixa,
		ValorTaxa:    40,
		DataVigencia: vigencia,
	}

	controles, err := GerarCronograma(v, parcelasDeTeste(100))
	require.NoError(t, err)
	require.Len(t, controles, 1)
	assert.InDelta(t, 760, controles[0].ValorParcela, 1e-9)
	assert.Equal(t, vigencia.AddDate(0, 0, 30), controles[0].DataPrevistaRecebimento)
}

func TestGerarCronograma_ValorLiquidoNegativo(t *testing.T) {
	v := VendaFinanceira{
		ValorPlano:   100,
		Desconto:     150,
		TipoTaxa:     plano.TaxaFixa,
		ValorTaxa:    0,
		DataVigencia: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	controles, err := GerarCronograma(v, parcelasDeTeste(50, 50))
	require.NoError(t, err)
	// Primeira parcela absorve o líquido negativo; a segunda segue o bruto.
	assert.InDelta(t, -25, controles[0].ValorParcela, 1e-9)
	assert.InDelta(t, 50, controles[1].ValorParcela, 1e-9)
}

func TestGerarCronograma_QuebrasInvalidas(t *testing.T) {
	v := VendaFinanceira{
		ValorPlano:   1000,
		DataVigencia: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("sem parcelas", func(t *testing.T) {
		_, err := GerarCronograma(v, nil)
		assert.ErrorIs(t, err, ErrSemParcelas)
	})

	t.Run("porcentagem negativa", func(t *testing.T) {
		parcelas := parcelasDeTeste(50, 50)
		parcelas[1].PorcentagemParcela = -10
		_, err := GerarCronograma(v, parcelas)
		assert.ErrorIs(t, err, ErrPercentualNegativo)
	})

	t.Run("número de parcela inválido", func(t *testing.T) {
		parcelas := parcelasDeTeste(100)
		parcelas[0].NumeroParcela = 0
		_, err := GerarCronograma(v, parcelas)
		assert.ErrorIs(t, err, ErrNumeroParcela)
	})

	t.Run("fora de ordem", func(t *testing.T) {
		parcelas := parcelasDeTeste(50, 50)
		parcelas[0].NumeroParcela = 2
		parcelas[1].NumeroParcela = 1
		_, err := GerarCronograma(v, parcelas)
		assert.ErrorIs(t, err, ErrParcelasForaDeOrdem)
	})

	t.Run("número repetido", func(t *testing.T) {
		parcelas := parcelasDeTeste(50, 50)
		parcelas[1].NumeroParcela = 1
		_, err := GerarCronograma(v, parcelas)
		assert.ErrorIs(t, err, ErrParcelasForaDeOrdem)
	})
}

func TestGerarCronograma_SomaDosValores(t *testing.T) {
	vigencia := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	v := VendaFinanceira{
		ValorPlano:   1000,
		Desconto:     100,
		TipoTaxa:     plano.TaxaPercentual,
		ValorTaxa:    10,
		DataVigencia: vigencia,
	}

	controles, err := GerarCronograma(v, parcelasDeTeste(50, 30, 20))
	require.NoError(t, err)

	liquido := CalcularValorLiquido(v.ValorPlano, v.Desconto, v.ValorTaxa, v.TipoTaxa)
	esperado := liquido*0.5 + v.ValorPlano*0.3 + v.ValorPlano*0.2

	var soma float64
	for _, c := range controles {
		soma += c.ValorParcela
	}
	assert.InDelta(t, esperado, soma, 1e-9)
}
