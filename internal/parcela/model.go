// internal/parcela/model.go
package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Parcela representa a porcentagem da comissão atribuída à k-ésima parcela
// de um plano. A ordenação por NumeroParcela é significativa.
type Parcela struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	PlanoID            uint      `gorm:"not null;index" json:"planoId"`
	NumeroParcela      int       `gorm:"not null" json:"numeroParcela"`
	PorcentagemParcela float64   `gorm:"not null;default:0" json:"porcentagemParcela"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parcela{})
}
