package recebimento

import (
	"testing"
	"time"

	"github.com/sistemacomissoes/api-vendas/internal/parcela"
	"github.com/sistemacomissoes/api-vendas/internal/plano"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func novoBancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&parcela.Parcela{}, &ControleDeRecebimento{}))
	return db
}

// Cadastra a quebra de parcelas, gera o cronograma e grava tudo no banco.
func semearCronograma(t *testing.T, db *gorm.DB, vendaID uint, vigencia time.Time, porcentagens ...float64) []ControleDeRecebimento {
	t.Helper()

	parcelas := make([]parcela.Parcela, 0, len(porcentagens))
	for i, pct := range porcentagens {
		parcelas = append(parcelas, parcela.Parcela{
			PlanoID:            1,
			NumeroParcela:      i + 1,
			PorcentagemParcela: pct,
		})
	}
	require.NoError(t, db.Create(&parcelas).Error)

	controles, err := GerarCronograma(VendaFinanceira{
		VendaID:      vendaID,
		ValorPlano:   1000,
		Desconto:     100,
		TipoTaxa:     plano.TaxaPercentual,
		ValorTaxa:    10,
		DataVigencia: vigencia,
	}, parcelas)
	require.NoError(t, err)
	require.NoError(t, db.Create(&controles).Error)
	return controles
}

func TestRevisarDatasSubsequentes_RecebimentoAntecipaCadeia(t *testing.T) {
	db := novoBancoDeTeste(t)
	vigencia := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	controles := semearCronograma(t, db, 1, vigencia, 50, 30, 20)

	// Parcela 1 recebida 45 dias após a vigência.
	recebida := vigencia.AddDate(0, 0, 45)
	primeira := controles[0]
	primeira.DataRecebimento = &recebida
	primeira.Status = StatusRecebido
	require.NoError(t, db.Save(&primeira).Error)

	require.NoError(t, RevisarDatasSubsequentes(db, 1, 1, recebida))

	repo := NewRepository(db)
	atualizados, err := repo.ListByVendaID(1)
	require.NoError(t, err)
	require.Len(t, atualizados, 3)

	assert.WithinDuration(t, vigencia.AddDate(0, 0, 75), atualizados[1].DataPrevistaRecebimento, time.Second)
	assert.WithinDuration(t, vigencia.AddDate(0, 0, 105), atualizados[2].DataPrevistaRecebimento, time.Second)
	// A parcela que disparou a revisão não é tocada.
	assert.WithinDuration(t, vigencia.AddDate(0, 0, 30), atualizados[0].DataPrevistaRecebimento, time.Second)
}

func TestRevisarDatasSubsequentes_LimparDataRestauraCadeia(t *testing.T) {
	db := novoBancoDeTeste(t)
	vigencia := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	controles := semearCronograma(t, db, 1, vigencia, 50, 30, 20)

	recebida := vigencia.AddDate(0, 0, 45)
	primeira := controles[0]
	primeira.DataRecebimento = &recebida
	require.NoError(t, db.Save(&primeira).Error)
	require.NoError(t, RevisarDatasSubsequentes(db, 1, 1, recebida))

	// Painel limpa a data lançada por engano: a cadeia volta a partir da
	// data prevista da parcela 1.
	primeira.DataRecebimento = nil
	require.NoError(t, db.Save(&primeira).Error)
	require.NoError(t, RevisarDatasSubsequentes(db, 1, 1, primeira.DataPrevistaRecebimento))

	atualizados, err := NewRepository(db).ListByVendaID(1)
	require.NoError(t, err)
	assert.WithinDuration(t, vigencia.AddDate(0, 0, 60), atualizados[1].DataPrevistaRecebimento, time.Second)
	assert.WithinDuration(t, vigencia.AddDate(0, 0, 90), atualizados[2].DataPrevistaRecebimento, time.Second)
}

func TestRevisarDatasSubsequentes_ParcelaIntermediariaAncoraNaDataReal(t *testing.T) {
	db := novoBancoDeTeste(t)
	vigencia := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	controles := semearCronograma(t, db, 1, vigencia, 40, 30, 20, 10)

	// Parcela 2 já foi recebida com 10 dias de atraso; a revisão disparada
	// pela parcela 1 deve reancorar a parcela 3 na data real da 2.
	recebidaP2 := vigencia.AddDate(0, 0, 70)
	segunda := controles[1]
	segunda.DataRecebimento = &recebidaP2
	segunda.Status = StatusRecebido
	require.NoError(t, db.Save(&segunda).Error)

	recebidaP1 := vigencia.AddDate(0, 0, 35)
	primeira := controles[0]
	primeira.DataRecebimento = &recebidaP1
	primeira.Status = StatusRecebido
	require.NoError(t, db.Save(&primeira).Error)

	require.NoError(t, RevisarDatasSubsequentes(db, 1, 1, recebidaP1))

	atualizados, err := NewRepository(db).ListByVendaID(1)
	require.NoError(t, err)
	// Parcela 2: prevista recalculada a partir da data real da 1.
	assert.WithinDuration(t, vigencia.AddDate(0, 0, 65), atualizados[1].DataPrevistaRecebimento, time.Second)
	// Parcela 3: encadeia na data real da 2, não na prevista.
	assert.WithinDuration(t, recebidaP2.AddDate(0, 0, 30), atualizados[2].DataPrevistaRecebimento, time.Second)
	// Parcela 4: segue a prevista recalculada da 3.
	assert.WithinDuration(t, recebidaP2.AddDate(0, 0, 60), atualizados[3].DataPrevistaRecebimento, time.Second)
}

func TestRevisarDatasSubsequentes_NaoTocaOutrasVendas(t *testing.T) {
	db := novoBancoDeTeste(t)
	vigencia := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	semearCronograma(t, db, 1, vigencia, 50, 50)
	outra := semearCronograma(t, db, 2, vigencia, 50, 50)

	recebida := vigencia.AddDate(0, 0, 90)
	require.NoError(t, RevisarDatasSubsequentes(db, 1, 1, recebida))

	intactos, err := NewRepository(db).ListByVendaID(2)
	require.NoError(t, err)
	assert.WithinDuration(t, outra[1].DataPrevistaRecebimento, intactos[1].DataPrevistaRecebimento, time.Second)
}

func TestDataRecebimentoMudou(t *testing.T) {
	d1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	mesmaData := d1

	assert.False(t, DataRecebimentoMudou(nil, nil))
	assert.False(t, DataRecebimentoMudou(&d1, &mesmaData))
	assert.True(t, DataRecebimentoMudou(nil, &d1))
	assert.True(t, DataRecebimentoMudou(&d1, nil))
	assert.True(t, DataRecebimentoMudou(&d1, &d2))
}
