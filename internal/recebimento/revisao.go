package recebimento

import (
	"time"

	"gorm.io/gorm"
)

// RevisarDatasSubsequentes recalcula as datas previstas de todas as parcelas
// de uma venda posteriores à parcela de número aposNumero, encadeando cada
// data prevista na data efetiva da parcela anterior + 30 dias.
//
// dataBase é a data efetiva da parcela que disparou a revisão. Um único
// passo para frente cobre toda a cadeia; só persiste as linhas cuja data
// prevista realmente mudou.
func RevisarDatasSubsequentes(db *gorm.DB, vendaID uint, aposNumero int, dataBase time.Time) error {
	var controles []ControleDeRecebimento
	err := db.
		Joins("JOIN parcelas ON parcelas.id = controle_de_recebimentos.parcela_id").
		Where("controle_de_recebimentos.venda_id = ? AND parcelas.numero_parcela > ?", vendaID, aposNumero).
		Order("parcelas.numero_parcela ASC").
		Find(&controles).Error
	if err != nil {
		return err
	}

	dataAnterior := dataBase
	for i := range controles {
		c := &controles[i]
		prevista := dataAnterior.AddDate(0, 0, DiasEntreParcelas)
		if !c.DataPrevistaRecebimento.Equal(prevista) {
			if err := db.Model(&ControleDeRecebimento{}).
				Where("id = ?", c.ID).
				Update("data_prevista_recebimento", prevista).Error; err != nil {
				return err
			}
			c.DataPrevistaRecebimento = prevista
		}
		dataAnterior = c.DataEfetiva()
	}
	return nil
}

// DataRecebimentoMudou compara a data de recebimento persistida com a nova.
// A revisão em cascata só dispara quando elas diferem (incluindo setar ou
// limpar a data).
func DataRecebimentoMudou(antiga, nova *time.Time) bool {
	if antiga == nil && nova == nil {
		return false
	}
	if antiga == nil || nova == nil {
		return true
	}
	return !antiga.Equal(*nova)
}
