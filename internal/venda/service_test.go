package venda

import (
	"testing"
	"time"

	"github.com/sistemacomissoes/api-vendas/internal/cliente"
	"github.com/sistemacomissoes/api-vendas/internal/consultor"
	"github.com/sistemacomissoes/api-vendas/internal/parcela"
	"github.com/sistemacomissoes/api-vendas/internal/plano"
	"github.com/sistemacomissoes/api-vendas/internal/recebimento"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func novoBancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&cliente.Cliente{},
		&consultor.Consultor{},
		&plano.Plano{},
		&parcela.Parcela{},
		&Venda{},
		&recebimento.ControleDeRecebimento{},
	))
	return db
}

// Cadastra cliente, consultor e um plano PME com taxa percentual de 10% e
// quebra 50/30/20.
func semearBase(t *testing.T, db *gorm.DB) (cliente.Cliente, consultor.Consultor, plano.Plano) {
	t.Helper()

	cli := cliente.Cliente{Nome: "Empresa Alfa"}
	require.NoError(t, db.Create(&cli).Error)

	con := consultor.Consultor{Nome: "Maria", Email: "maria@corretora.com"}
	require.NoError(t, db.Create(&con).Error)

	p := plano.Plano{
		Operadora:            "Operadora Azul",
		Tipo:                 "PME",
		ComissionamentoTotal: 100,
		NumeroParcelas:       3,
		TipoTaxa:             plano.TaxaPercentual,
		ValorTaxa:            10,
	}
	require.NoError(t, db.Create(&p).Error)

	for i, pct := range []float64{50, 30, 20} {
		require.NoError(t, db.Create(&parcela.Parcela{
			PlanoID:            p.ID,
			NumeroParcela:      i + 1,
			PorcentagemParcela: pct,
		}).Error)
	}
	return cli, con, p
}

func novaVenda(t *testing.T, db *gorm.DB, cli cliente.Cliente, con consultor.Consultor, p plano.Plano, proposta string, vigencia time.Time) *Venda {
	t.Helper()
	v := &Venda{
		NumeroProposta:    proposta,
		ClienteID:         cli.ID,
		PlanoID:           p.ID,
		ConsultorID:       con.ID,
		ValorPlano:        1000,
		DescontoConsultor: 100,
		DataVenda:         vigencia.AddDate(0, 0, -5),
		DataVigencia:      vigencia,
		DataVencimento:    vigencia.AddDate(1, 0, 0),
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func TestRegerarRecebimentos_GeraConjuntoCompleto(t *testing.T) {
	db := novoBancoDeTeste(t)
	cli, con, p := semearBase(t, db)
	vigencia := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	v := novaVenda(t, db, cli, con, p, "PROP-001", vigencia)

	require.NoError(t, RegerarRecebimentos(db, v))

	controles, err := recebimento.NewRepository(db).ListByVendaID(v.ID)
	require.NoError(t, err)
	require.Len(t, controles, 3)

	assert.InDelta(t, 405, controles[0].ValorParcela, 1e-9)
	assert.InDelta(t, 300, controles[1].ValorParcela, 1e-9)
	assert.InDelta(t, 200, controles[2].ValorParcela, 1e-9)
	assert.WithinDuration(t, vigencia.AddDate(0, 0, 30), controles[0].DataPrevistaRecebimento, time.Second)
	assert.WithinDuration(t, vigencia.AddDate(0, 0, 60), controles[1].DataPrevistaRecebimento, time.Second)
	assert.WithinDuration(t, vigencia.AddDate(0, 0, 90), controles[2].DataPrevistaRecebimento, time.Second)
	for _, c := range controles {
		assert.Equal(t, recebimento.StatusNaoRecebido, c.Status)
	}
}

func TestRegerarRecebimentos_RegeneracaoIdempotenteDescartaHistorico(t *testing.T) {
	db := novoBancoDeTeste(t)
	cli, con, p := semearBase(t, db)
	vigencia := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	v := novaVenda(t, db, cli, con, p, "PROP-002", vigencia)

	require.NoError(t, RegerarRecebimentos(db, v))
	repo := recebimento.NewRepository(db)
	antes, err := repo.ListByVendaID(v.ID)
	require.NoError(t, err)

	// Lança um recebimento no conjunto antigo.
	recebida := vigencia.AddDate(0, 0, 40)
	antes[0].DataRecebimento = &recebida
	antes[0].Status = recebimento.StatusRecebido
	require.NoError(t, db.Save(&antes[0]).Error)

	require.NoError(t, RegerarRecebimentos(db, v))
	depois, err := repo.ListByVendaID(v.ID)
	require.NoError(t, err)
	require.Len(t, depois, len(antes))

	for i := range depois {
		// Mesmos valores e datas, registros novos.
		assert.InDelta(t, antes[i].ValorParcela, depois[i].ValorParcela, 1e-9)
		assert.WithinDuration(t, antes[i].DataPrevistaRecebimento, depois[i].DataPrevistaRecebimento, time.Second)
		assert.NotEqual(t, antes[i].ID, depois[i].ID)
		// Histórico de recebimento não sobrevive à regeneração.
		assert.Equal(t, recebimento.StatusNaoRecebido, depois[i].Status)
		assert.Nil(t, depois[i].DataRecebimento)
	}
}

func TestRegerarRecebimentos_PlanoSemParcelasNaoEscreveNada(t *testing.T) {
	db := novoBancoDeTeste(t)
	cli, con, _ := semearBase(t, db)

	vazio := plano.Plano{
		Operadora: "Operadora Verde",
		Tipo:      "PF",
		TipoTaxa:  plano.TaxaFixa,
	}
	require.NoError(t, db.Create(&vazio).Error)

	vigencia := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	v := novaVenda(t, db, cli, con, vazio, "PROP-003", vigencia)

	// Controle pré-existente simula um conjunto antigo que não pode ser
	// destruído por uma geração rejeitada.
	existente := recebimento.ControleDeRecebimento{
		VendaID: v.ID, ParcelaID: 99, ValorParcela: 10,
		DataPrevistaRecebimento: vigencia,
		Status:                  recebimento.StatusNaoRecebido,
	}
	require.NoError(t, db.Create(&existente).Error)

	err := RegerarRecebimentos(db, v)
	assert.ErrorIs(t, err, recebimento.ErrSemParcelas)

	var total int64
	require.NoError(t, db.Model(&recebimento.ControleDeRecebimento{}).
		Where("venda_id = ?", v.ID).Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestMetricasDoConsultor(t *testing.T) {
	db := novoBancoDeTeste(t)
	cli, con, p := semearBase(t, db)
	vigencia := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	v1 := novaVenda(t, db, cli, con, p, "PROP-010", vigencia)
	v2 := novaVenda(t, db, cli, con, p, "PROP-011", vigencia)
	require.NoError(t, RegerarRecebimentos(db, v1))
	require.NoError(t, RegerarRecebimentos(db, v2))

	repo := recebimento.NewRepository(db)
	controles, err := repo.ListByVendaID(v1.ID)
	require.NoError(t, err)

	recebida := vigencia.AddDate(0, 0, 30)
	controles[0].DataRecebimento = &recebida
	controles[0].Status = recebimento.StatusRecebido
	require.NoError(t, db.Save(&controles[0]).Error)

	vendas, err := repo.CountVendasByConsultor(con.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), vendas)

	recebido, err := repo.SumValorByConsultorEStatus(con.ID, recebimento.StatusRecebido)
	require.NoError(t, err)
	assert.InDelta(t, 405, recebido, 1e-9)

	aReceber, err := repo.SumValorByConsultorEStatus(con.ID,
		recebimento.StatusNaoRecebido, recebimento.StatusAtrasado)
	require.NoError(t, err)
	// 300+200 da venda 1 + 405+300+200 da venda 2
	assert.InDelta(t, 1405, aReceber, 1e-9)
}
