// internal/venda/repository.go
package venda

import "gorm.io/gorm"

// Repository encapsula operações de banco para Venda.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func preloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Cliente").
		Preload("Plano").
		Preload("Consultor").
		Preload("ControlesDeRecebimento", func(db *gorm.DB) *gorm.DB {
			return db.
				Select("controle_de_recebimentos.*").
				Joins("JOIN parcelas ON parcelas.id = controle_de_recebimentos.parcela_id").
				Order("parcelas.numero_parcela ASC")
		}).
		Preload("ControlesDeRecebimento.Parcela")
}

// FindByID retorna uma venda com associações e recebimentos carregados.
func (r *Repository) FindByID(id uint) (*Venda, error) {
	var v Venda
	if err := preloads(r.DB).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) ListAll() ([]Venda, error) {
	var vendas []Venda
	err := preloads(r.DB).Find(&vendas).Error
	return vendas, err
}

// ExistsByNumeroProposta verifica duplicidade do identificador externo.
func (r *Repository) ExistsByNumeroProposta(numero string, exceptID uint) (bool, error) {
	var total int64
	err := r.DB.Model(&Venda{}).
		Where("numero_proposta = ? AND id <> ?", numero, exceptID).
		Count(&total).Error
	return total > 0, err
}
