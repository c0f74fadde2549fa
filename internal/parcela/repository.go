// internal/parcela/repository.go
package parcela

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Parcelas de um plano.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CreateForPlano cria uma parcela vinculada a um plano específico.
func (r *Repository) CreateForPlano(planoID uint, p *Parcela) error {
	p.PlanoID = planoID
	return r.DB.Create(p).Error
}

// FindByID busca uma única parcela pelo seu ID.
func (r *Repository) FindByID(id uint) (*Parcela, error) {
	var parcela Parcela
	if err := r.DB.First(&parcela, id).Error; err != nil {
		return nil, err
	}
	return &parcela, nil
}

// ListByPlanoID busca todas as parcelas de um plano, ordenadas pelo número.
func (r *Repository) ListByPlanoID(planoID uint) ([]Parcela, error) {
	var parcelas []Parcela
	err := r.DB.
		Where("plano_id = ?", planoID).
		Order("numero_parcela ASC").
		Find(&parcelas).Error
	return parcelas, err
}

// Update atualiza todos os campos de uma parcela existente (Save exige PK).
func (r *Repository) Update(parcela *Parcela) error {
	return r.DB.Save(parcela).Error
}

// DeleteByID apaga a parcela; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeleteByID(id uint) error {
	res := r.DB.Delete(&Parcela{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
