package product_controller

import (
	"gorm.io/gorm"

	"github.com/BassamElsayed2/e-commerceCp/services"
)

var productService *services.ProductService

// Init wires the product service against the database handle and the blob
// storage collaborator. Called once from main.
func Init(db *gorm.DB, images services.ImageStore) {
	productService = services.NewProductService(db, images)
}

// InitCloudinary builds the Cloudinary-backed store and wires the service.
func InitCloudinary(db *gorm.DB, cloudName, apiKey, apiSecret string) error {
	store, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	Init(db, store)
	return nil
}
