package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"ca_practice/config"
	"ca_practice/internal/global"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections đăng ký các collections MongoDB vào registry toàn cục
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.AccessTokens,
		global.MongoDB_ColNames.Clients,
		global.MongoDB_ColNames.Documents,
		global.MongoDB_ColNames.DocumentCategories,
		global.MongoDB_ColNames.Returns,
		global.MongoDB_ColNames.ReturnTypes,
		global.MongoDB_ColNames.Invoices,
		global.MongoDB_ColNames.Payments,
		global.MongoDB_ColNames.Requests,
		global.MongoDB_ColNames.Notifications,
	}

	for _, name := range colNames {
		if err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}
		logrus.Infof("Collection %s registered successfully", name)
	}

	return nil
}
