package cliente

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, c *Cliente) error
	BuscarPorID(db *gorm.DB, id uint) (*Cliente, error)
	ListarTodos(db *gorm.DB) ([]Cliente, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Cliente) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Cliente) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cliente, error) {
	var cliente Cliente
	err := db.First(&cliente, id).Error
	return &cliente, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cliente, error) {
	var clientes []Cliente
	err := db.Find(&clientes).Error
	return clientes, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Cliente) error {
	var existente Cliente
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Telefone = novosDados.Telefone
	existente.Email = novosDados.Email
	existente.Endereco = novosDados.Endereco

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Cliente{}, id).Error
}
