package helper

import (
	"fmt"

	"dinebook/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func GenerateUniqueRestaurantSlug(tx *gorm.DB, name string) (string, error) {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		if err := tx.Model(&model.Restaurant{}).
			Where("slug = ?", result).
			Count(&count).Error; err != nil {
			return "", err
		}

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result, nil
}
