package inits

import (
	"article-admin/app/server/backend"
	"article-admin/app/server/constants"
	"article-admin/app/server/models"
	"fmt"
	"github.com/alexedwards/argon2id"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB 打开数据库连接、迁移表结构，并在配置了初始管理员时写入启动数据
func DB(conn string, adminEmail string, adminPassword string) (db *gorm.DB, err error) {
	// 打开连接
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if adminEmail != "" {
		if err = initData(db, adminEmail, adminPassword); err != nil {
			return nil, fmt.Errorf("failed to init data into database: %w", err)
		}
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AuthUser{},
		&models.Admin{},
		&models.Article{},
	)
}

func initData(db *gorm.DB, email string, password string) (err error) {
	// 查询现有记录数量
	var counter int64

	if err = db.Model(&models.AuthUser{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter != 0 {
		// 已有用户，不再导入
		return nil
	}

	// 创建密码
	var hash string
	if hash, err = argon2id.CreateHash(password, argon2id.DefaultParams); err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	// 认证用户与管理员记录一起写入
	return db.Transaction(func(tx *gorm.DB) error {
		user := models.AuthUser{
			Email:    backend.NormalizeEmail(email),
			Password: hash,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create auth user: %w", err)
		}

		if err := tx.Create(&models.Admin{
			ID:    user.ID,
			Email: user.Email,
			Role:  constants.RoleAdmin,
		}).Error; err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		return nil
	})
}
