package venda

import (
	"time"

	"github.com/sistemacomissoes/api-vendas/internal/cliente"
	"github.com/sistemacomissoes/api-vendas/internal/consultor"
	"github.com/sistemacomissoes/api-vendas/internal/plano"
	"github.com/sistemacomissoes/api-vendas/internal/recebimento"
	"gorm.io/gorm"
)

// Venda representa uma proposta fechada de um consultor para um cliente.
// É dona exclusiva dos seus controles de recebimento: qualquer alteração na
// venda descarta e regenera o conjunto inteiro.
type Venda struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	NumeroProposta string `gorm:"size:100;not null;unique" json:"numeroProposta"`

	ClienteID   uint `gorm:"not null;index" json:"clienteId"`
	PlanoID     uint `gorm:"not null;index" json:"planoId"`
	ConsultorID uint `gorm:"not null;index" json:"consultorId"`

	ValorPlano        float64 `gorm:"not null;default:0" json:"valorPlano"`
	DescontoConsultor float64 `gorm:"not null;default:0" json:"descontoConsultor"`

	DataVenda      time.Time `gorm:"not null" json:"dataVenda"`
	DataVigencia   time.Time `gorm:"not null" json:"dataVigencia"`
	DataVencimento time.Time `gorm:"not null" json:"dataVencimento"`

	Cliente   cliente.Cliente     `gorm:"foreignKey:ClienteID" json:"cliente"`
	Plano     plano.Plano         `gorm:"foreignKey:PlanoID" json:"plano"`
	Consultor consultor.Consultor `gorm:"foreignKey:ConsultorID" json:"consultor"`

	ControlesDeRecebimento []recebimento.ControleDeRecebimento `gorm:"foreignKey:VendaID;constraint:OnDelete:CASCADE" json:"parcelasRecebimento"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Venda{})
}
