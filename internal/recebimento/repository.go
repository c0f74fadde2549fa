// internal/recebimento/repository.go
package recebimento

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Controles de Recebimento.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

/* ========================= CRUD básico ========================= */

// CreateInBatch cria múltiplos controles de uma vez (ignora se vazio).
func (r *Repository) CreateInBatch(controles []ControleDeRecebimento) error {
	if len(controles) == 0 {
		return nil
	}
	return r.DB.Create(&controles).Error
}

// FindByID busca um controle pelo ID, com a parcela do plano carregada.
func (r *Repository) FindByID(id uint) (*ControleDeRecebimento, error) {
	var c ControleDeRecebimento
	if err := r.DB.Preload("Parcela").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByVendaID busca todos os controles de uma venda, ordenados pelo número
// da parcela do plano.
func (r *Repository) ListByVendaID(vendaID uint) ([]ControleDeRecebimento, error) {
	var controles []ControleDeRecebimento
	err := r.DB.
		Preload("Parcela").
		Joins("JOIN parcelas ON parcelas.id = controle_de_recebimentos.parcela_id").
		Where("controle_de_recebimentos.venda_id = ?", vendaID).
		Order("parcelas.numero_parcela ASC").
		Find(&controles).Error
	return controles, err
}

// ListByStatus busca todos os controles com um determinado status.
func (r *Repository) ListByStatus(status Status) ([]ControleDeRecebimento, error) {
	var controles []ControleDeRecebimento
	err := r.DB.
		Preload("Parcela").
		Where("status = ?", status).
		Order("data_prevista_recebimento ASC").
		Find(&controles).Error
	return controles, err
}

// Update atualiza todos os campos de um controle existente (Save exige PK).
func (r *Repository) Update(c *ControleDeRecebimento) error {
	return r.DB.Save(c).Error
}

// DeleteByVendaID apaga todos os controles de uma venda.
func (r *Repository) DeleteByVendaID(db *gorm.DB, vendaID uint) error {
	if db == nil {
		db = r.DB
	}
	return db.Where("venda_id = ?", vendaID).Delete(&ControleDeRecebimento{}).Error
}

/* ============================= Atualizações parciais ============================= */

// UpdateNumeroExtrato atualiza o campo 'numero_extrato' de um controle.
func (r *Repository) UpdateNumeroExtrato(id uint, numero string) error {
	return r.DB.Model(&ControleDeRecebimento{}).
		Where("id = ?", id).
		Update("numero_extrato", numero).Error
}

/* ============================= Varredura de atraso ============================= */

// MarcarAtrasados move para Atrasado todo controle Não Recebido cuja data
// prevista já passou. Transição monotônica disparada na leitura da visão de
// atrasados; nunca toca controles Recebidos nem vencimentos futuros.
func (r *Repository) MarcarAtrasados(hoje time.Time) (int64, error) {
	res := r.DB.Model(&ControleDeRecebimento{}).
		Where("status = ? AND data_prevista_recebimento < ?", StatusNaoRecebido, hoje).
		Update("status", StatusAtrasado)
	return res.RowsAffected, res.Error
}

/* ======================= Métricas por consultor ======================= */

// SumValorByConsultorEStatus soma os valores das parcelas de todas as vendas
// de um consultor com um determinado status.
func (r *Repository) SumValorByConsultorEStatus(consultorID uint, status ...Status) (float64, error) {
	var total float64
	err := r.DB.Model(&ControleDeRecebimento{}).
		Joins("JOIN vendas ON vendas.id = controle_de_recebimentos.venda_id").
		Where("vendas.consultor_id = ? AND controle_de_recebimentos.status IN ?", consultorID, status).
		Select("COALESCE(SUM(valor_parcela), 0)").
		Scan(&total).Error
	return total, err
}

// CountVendasByConsultor conta as vendas distintas de um consultor que
// possuem controles gerados.
func (r *Repository) CountVendasByConsultor(consultorID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&ControleDeRecebimento{}).
		Joins("JOIN vendas ON vendas.id = controle_de_recebimentos.venda_id").
		Where("vendas.consultor_id = ?", consultorID).
		Distinct("controle_de_recebimentos.venda_id").
		Count(&total).Error
	return total, err
}
