package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/share_registry/configs"
	"github.com/share_registry/internal/auth"
	"github.com/share_registry/internal/handlers"
	"github.com/share_registry/internal/repositories"
	"github.com/share_registry/internal/routes"
	"github.com/share_registry/internal/services"
	"github.com/share_registry/internal/storage"
	"github.com/share_registry/pkg/db"
	"github.com/share_registry/pkg/logging"
)

// app 持有一次进程运行所需的配置与服务
type app struct {
	cfg       configs.Configuration
	caseRepos services.CaseRepositories
	documents services.DocumentService
	cleanup   []func()
}

// bootstrap 加载配置、初始化日志并连接数据库
func bootstrap(ctx context.Context) (*app, error) {
	envLevel := os.Getenv("LOG_LEVEL")
	if _, err := logging.Init(envLevel); err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	configs.LoadConfig()
	cfg := configs.AppConfig
	if cfg.LogLevel != envLevel {
		if _, err := logging.Init(cfg.LogLevel); err != nil {
			return nil, fmt.Errorf("初始化日志失败: %w", err)
		}
	}

	if err := db.InitDB(cfg); err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, cleanup: []func(){db.CloseDB}}

	conn := db.GetDB()
	a.caseRepos = services.CaseRepositories{
		Cases:        repositories.NewGormCaseRepository(conn),
		Folios:       repositories.NewGormFolioRepository(conn),
		ShareHolders: repositories.NewGormShareHolderRepository(conn),
		LegalHeirs:   repositories.NewGormLegalHeirRepository(conn),
		Nominations:  repositories.NewGormNominationRepository(conn),
	}

	opts := services.DocumentOptions{
		OutputDir:         cfg.OutputDir,
		IncludeAffidavits: cfg.IncludeAffidavits,
	}
	if cfg.ObjectStore.Enabled() {
		archiver, err := storage.NewMinioArchiver(ctx, cfg.ObjectStore)
		if err != nil {
			// 归档是可选功能，连接失败不阻止启动
			logging.L().Warn("对象存储不可用，文档包不会归档", zap.Error(err))
		} else {
			opts.Archiver = archiver
		}
	}
	a.documents = services.NewDocumentService(a.caseRepos, opts)
	return a, nil
}

func (a *app) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	logging.Sync()
}

// denylist 配置了 REDIS_URL 时使用 Redis，否则使用进程内存
func (a *app) denylist() (auth.Denylist, error) {
	if a.cfg.RedisURL == "" {
		logging.L().Info("REDIS_URL 未设置，Token 拒绝列表保存在内存中")
		return auth.NewMemoryDenylist(), nil
	}
	d, err := auth.NewRedisDenylist(a.cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	a.cleanup = append(a.cleanup, func() { d.Close() })
	return d, nil
}

func (a *app) router(denylist auth.Denylist) *gin.Engine {
	conn := db.GetDB()
	companyRepo := repositories.NewGormCompanyRepository(conn)
	registrarRepo := repositories.NewGormRegistrarRepository(conn)
	branchRepo := repositories.NewGormRegistrarBranchRepository(conn)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.MaxMultipartMemory = handlers.MaxUploadSize + 1<<20

	routes.SetupRoutes(router, routes.Handlers{
		Auth: handlers.NewAuthHandler(
			services.NewAuthService(repositories.NewGormUserRepository(conn), denylist, a.cfg.JWTSecret),
		),
		Cases: handlers.NewCaseHandler(
			services.NewCaseService(a.caseRepos, a.cfg.UploadDir),
			a.documents,
		),
		Companies: handlers.NewCompanyHandler(services.NewCompanyService(companyRepo, branchRepo)),
		Registrars: handlers.NewRegistrarHandler(
			services.NewRegistrarService(registrarRepo),
			services.NewRegistrarBranchService(branchRepo, registrarRepo),
		),
		NameChanges: handlers.NewNameChangeHandler(
			services.NewNameChangeService(repositories.NewGormNameChangeRepository(conn), companyRepo),
		),
	}, a.cfg.JWTSecret, denylist)
	return router
}

// requestLogger 用 zap 记录每个请求
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.L().Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("clientIP", c.ClientIP()),
		)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	denylist, err := a.denylist()
	if err != nil {
		return err
	}
	router := a.router(denylist)

	logging.L().Info("Server starting", zap.String("port", a.cfg.ServerPort))
	return router.Run(":" + a.cfg.ServerPort)
}

func runBundle(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	zipPath, err := a.documents.GenerateDocumentBundle(cmd.Context(), bundleCaseID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), zipPath)
	return nil
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	hash, err := services.HashPassword(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
