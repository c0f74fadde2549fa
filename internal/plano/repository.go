// internal/plano/repository.go
package plano

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Plano) error {
	return r.DB.Create(p).Error
}

// FindByID retorna o plano com suas parcelas pré-carregadas em ordem.
func (r *Repository) FindByID(id uint) (*Plano, error) {
	var p Plano
	err := r.DB.
		Preload("Parcelas", func(db *gorm.DB) *gorm.DB {
			return db.Order("numero_parcela ASC")
		}).
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListAll() ([]Plano, error) {
	var planos []Plano
	err := r.DB.
		Preload("Parcelas", func(db *gorm.DB) *gorm.DB {
			return db.Order("numero_parcela ASC")
		}).
		Find(&planos).Error
	return planos, err
}

func (r *Repository) Update(p *Plano) error {
	return r.DB.Save(p).Error
}

func (r *Repository) DeleteByID(id uint) error {
	res := r.DB.Delete(&Plano{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
