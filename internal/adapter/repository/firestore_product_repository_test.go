package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tokohub/internal/domain/entity"
	"tokohub/internal/domain/repository"
)

func TestMatchesTextEmptyCriteriaMatchAll(t *testing.T) {
	p := &entity.Product{Name: "Anything", Category: "Misc"}

	assert.True(t, matchesText(p, repository.ProductFilter{}))
}

func TestMatchesTextCaseInsensitive(t *testing.T) {
	p := &entity.Product{Name: "Handwoven Basket", Category: "Home Decor", Subcategory: "Storage"}

	assert.True(t, matchesText(p, repository.ProductFilter{NameContains: "WOVEN"}))
	assert.True(t, matchesText(p, repository.ProductFilter{CategoryContains: "decor"}))
	assert.True(t, matchesText(p, repository.ProductFilter{SubcategoryContains: "stor"}))
	assert.False(t, matchesText(p, repository.ProductFilter{NameContains: "ceramic"}))
}

func TestMatchesTextAllCriteriaMustHold(t *testing.T) {
	p := &entity.Product{Name: "Handwoven Basket", Category: "Home Decor"}

	assert.False(t, matchesText(p, repository.ProductFilter{
		NameContains:     "basket",
		CategoryContains: "kitchen",
	}))
}
