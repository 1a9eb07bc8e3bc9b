package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/anonimax/anonimax-server/internal/model"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetBySlug(slug string) (*model.Category, error) {
	var category model.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Seed insere as categorias padrão quando ainda não existem.
func (r *CategoryRepository) Seed() error {
	defaults := []model.Category{
		{Name: "Serviços", Slug: "servicos", Description: "Serviços em geral"},
		{Name: "Produtos", Slug: "produtos", Description: "Venda de produtos"},
		{Name: "Imóveis", Slug: "imoveis", Description: "Aluguel e venda de imóveis"},
		{Name: "Veículos", Slug: "veiculos", Description: "Carros, motos e afins"},
		{Name: "Empregos", Slug: "empregos", Description: "Vagas e freelas"},
		{Name: "Outros", Slug: "outros", Description: "Tudo que não se encaixa acima"},
	}

	for _, c := range defaults {
		var existing model.Category
		err := r.db.Where("slug = ?", c.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := r.db.Create(&c).Error; err != nil {
			return err
		}
	}
	return nil
}
