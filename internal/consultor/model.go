package consultor

import "gorm.io/gorm"

// Consultor é o agente responsável pela venda.
type Consultor struct {
	gorm.Model
	Nome     string `gorm:"size:255;not null" json:"nome"`
	Telefone string `gorm:"size:20" json:"telefone"`
	Email    string `gorm:"size:255;unique" json:"email"`
	Senha    string `json:"-"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Consultor{})
}
