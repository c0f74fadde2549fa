package plano

import (
	"time"

	"github.com/sistemacomissoes/api-vendas/internal/parcela"
	"gorm.io/gorm"
)

// TipoTaxa define como a taxa do plano é aplicada sobre o valor da venda.
type TipoTaxa string

const (
	TaxaFixa       TipoTaxa = "Fixa"
	TaxaPercentual TipoTaxa = "Percentual"
)

// Plano representa um produto comissionável de uma operadora.
// A combinação operadora + tipo é única.
type Plano struct {
	ID                   uint     `gorm:"primaryKey" json:"id"`
	Operadora            string   `gorm:"size:255;not null;uniqueIndex:idx_operadora_tipo" json:"operadora"`
	Tipo                 string   `gorm:"size:50;not null;uniqueIndex:idx_operadora_tipo" json:"tipo"` // "PME", "PF" ou "Adesão"
	ComissionamentoTotal float64  `gorm:"not null;default:0" json:"comissionamentoTotal"`              // ex: 300.00 (%)
	NumeroParcelas       int      `gorm:"not null;default:0" json:"numeroParcelas"`
	TipoTaxa             TipoTaxa `gorm:"size:20;not null;default:'Fixa'" json:"tipoTaxa"`
	ValorTaxa            float64  `gorm:"not null;default:0" json:"valorTaxa"`

	// Associação com a quebra de porcentagens por parcela
	Parcelas []parcela.Parcela `gorm:"foreignKey:PlanoID;constraint:OnDelete:CASCADE" json:"parcelas"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Plano{})
}
