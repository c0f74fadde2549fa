// internal/recebimento/model.go
package recebimento

import (
	"time"

	"github.com/sistemacomissoes/api-vendas/internal/parcela"
	"gorm.io/gorm"
)

// Status do controle de recebimento. Recebido é terminal: nenhuma ação o
// reverte para Não Recebido.
type Status string

const (
	StatusNaoRecebido Status = "Não Recebido"
	StatusRecebido    Status = "Recebido"
	StatusAtrasado    Status = "Atrasado"
)

// ControleDeRecebimento representa uma parcela de comissão agendada de uma
// venda. O número de sequência vem da Parcela do plano referenciada.
type ControleDeRecebimento struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	VendaID   uint `gorm:"not null;index" json:"vendaId"`
	ParcelaID uint `gorm:"not null;index" json:"parcelaId"`

	ValorParcela            float64    `gorm:"not null;default:0" json:"valorParcela"`
	DataPrevistaRecebimento time.Time  `gorm:"not null" json:"dataPrevistaRecebimento"`
	DataRecebimento         *time.Time `json:"dataRecebimento"`
	Status                  Status     `gorm:"size:20;not null;default:'Não Recebido';index" json:"status"`
	NumeroExtrato           string     `gorm:"size:100" json:"numeroExtrato"`

	Parcela parcela.Parcela `gorm:"foreignKey:ParcelaID" json:"parcela"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DataEfetiva retorna a data de liquidação efetiva da parcela: a data real de
// recebimento quando existe, senão a data prevista.
func (c *ControleDeRecebimento) DataEfetiva() time.Time {
	if c.DataRecebimento != nil {
		return *c.DataRecebimento
	}
	return c.DataPrevistaRecebimento
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ControleDeRecebimento{})
}
