package storage

import (
	"fmt"

	"MindMirrorGo/config"
)

// NewStorage 根据 STORAGE_BACKEND 创建存储
func NewStorage(cfg config.Config) (Storage, error) {
	switch cfg.StorageBackend {
	case "memory":
		return NewMemoryStorage(), nil
	case "database":
		db, err := config.OpenDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("数据库连接失败: %w", err)
		}
		return NewGormStorage(db), nil
	default:
		return nil, fmt.Errorf("不支持的存储后端: %s", cfg.StorageBackend)
	}
}
