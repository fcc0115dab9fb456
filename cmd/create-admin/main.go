package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"hostel-admin/config"
	"hostel-admin/internal/dto"
	"hostel-admin/internal/repository"
	"hostel-admin/internal/service"
	"hostel-admin/pkg/database"
	applogger "hostel-admin/pkg/logger"
)

// 创建管理员账号：
//
//	go run ./cmd/create-admin -username warden -email warden@example.com -password '...'
func main() {
	configPath := flag.String("config", "", "配置文件路径")
	username := flag.String("username", "", "登录用户名")
	email := flag.String("email", "", "邮箱")
	password := flag.String("password", "", "密码（至少 8 位）")
	flag.Parse()

	if *username == "" || len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "用法: create-admin -username <name> -email <email> -password <至少 8 位>")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "数据库连接失败: %v\n", err)
		os.Exit(1)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	repo := repository.NewRepository(db)
	authSvc := service.NewAuthService(repo, nil, nil, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := authSvc.CreateAdmin(ctx, &dto.CreateAdminRequest{
		Username: *username,
		Email:    *email,
		Password: *password,
	})
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		fmt.Fprintf(os.Stderr, "用户名 %q 已存在\n", *username)
		os.Exit(1)
	case errors.Is(err, service.ErrAuthTablesMissing):
		fmt.Fprintln(os.Stderr, "users 表不存在，请先启动服务执行数据库迁移")
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "创建管理员失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("管理员创建成功: %s (%s) id=%s\n", user.Username, user.Email, user.UserID)
}
