package cliente

import "gorm.io/gorm"

// Cliente é o titular do plano vendido. Referenciado pelas vendas, nunca
// possuído por elas.
type Cliente struct {
	gorm.Model
	Nome     string `gorm:"size:255;not null" json:"nome"`
	Telefone string `gorm:"size:20" json:"telefone"`
	Email    string `gorm:"size:255" json:"email"`
	Endereco string `json:"endereco"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
