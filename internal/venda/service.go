package venda

import (
	"github.com/sistemacomissoes/api-vendas/internal/parcela"
	"github.com/sistemacomissoes/api-vendas/internal/plano"
	"github.com/sistemacomissoes/api-vendas/internal/recebimento"
	"gorm.io/gorm"
)

// RegerarRecebimentos descarta e recria o conjunto completo de controles de
// recebimento de uma venda dentro da transação recebida.
//
// A geração valida a quebra de parcelas antes de qualquer escrita: se o
// plano estiver sem parcelas ou com a quebra inconsistente, nada é apagado.
// Recebimentos já lançados no conjunto antigo são perdidos — é o mesmo
// comportamento do salvamento de venda do sistema legado.
func RegerarRecebimentos(tx *gorm.DB, v *Venda) error {
	var p plano.Plano
	if err := tx.First(&p, v.PlanoID).Error; err != nil {
		return err
	}

	var parcelas []parcela.Parcela
	if err := tx.
		Where("plano_id = ?", v.PlanoID).
		Order("numero_parcela ASC").
		Find(&parcelas).Error; err != nil {
		return err
	}

	controles, err := recebimento.GerarCronograma(recebimento.VendaFinanceira{
		VendaID:      v.ID,
		ValorPlano:   v.ValorPlano,
		Desconto:     v.DescontoConsultor,
		TipoTaxa:     p.TipoTaxa,
		ValorTaxa:    p.ValorTaxa,
		DataVigencia: v.DataVigencia,
	}, parcelas)
	if err != nil {
		return err
	}

	repo := recebimento.NewRepository(tx)
	if err := repo.DeleteByVendaID(nil, v.ID); err != nil {
		return err
	}
	return repo.CreateInBatch(controles)
}
