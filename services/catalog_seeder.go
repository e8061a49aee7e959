package services

import (
	"gin-foodcart/models"
	"gin-foodcart/repositories"
)

// DefaultProducts カタログが空のときに投入する初期商品
func DefaultProducts() []models.Product {
	return []models.Product{
		{Name: "Cheeseburger", Category: "Burgers"},
		{Name: "Hamburger", Category: "Burgers"},
		{Name: "Caesar", Category: "Salads"},
		{Name: "Greek", Category: "Salads"},
		{Name: "Cola", Category: "Drinks"},
		{Name: "Fanta", Category: "Drinks"},
	}
}

// SeedIfEmpty 商品が1件もない場合だけ初期商品を登録し、登録件数を返す
// コミットは呼び出し側で行う（トランザクション上のリポジトリを渡すこと）
func SeedIfEmpty(repository repositories.IProductRepository) (int, error) {
	count, err := repository.CountProducts()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, product := range DefaultProducts() {
		if _, err := repository.InsertProduct(product.Name, product.Category); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
