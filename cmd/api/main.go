package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	"github.com/originmobi/pdv-fiscal/internal/application/notafiscal"
	"github.com/originmobi/pdv-fiscal/internal/application/venda"
	infranfe "github.com/originmobi/pdv-fiscal/internal/infrastructure/nfe"
	"github.com/originmobi/pdv-fiscal/internal/infrastructure/postgres"
	"github.com/originmobi/pdv-fiscal/internal/infrastructure/storage"
	"github.com/originmobi/pdv-fiscal/pkg/config"
	"github.com/originmobi/pdv-fiscal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	notaRepo := postgres.NewNotaFiscalRepository(pool)
	totaisRepo := postgres.NewTotaisRepository(pool)
	serieRepo := postgres.NewSerieRepository(pool)
	pessoaRepo := postgres.NewPessoaRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)

	vendaUC := venda.NewVendaUseCase(vendaRepo)

	xmlStore := storage.NewXMLStore(afero.NewOsFs(), cfg.Fiscal.XMLDir)
	notaUC := notafiscal.NewNotaFiscalUseCase(
		notaRepo, totaisRepo, serieRepo, pessoaRepo, empresaRepo,
		infranfe.NewXMLBuilder(), xmlStore, cfg.Fiscal.TipoEmissao,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		emitidas, err := notaUC.TotalEmitidas(c.Context())
		if err != nil {
			log.Error().Err(err).Msg("contar notas emitidas")
			return c.Status(fiber.StatusServiceUnavailable).
				JSON(fiber.Map{"status": "error"})
		}
		abertas, err := vendaUC.QtdAbertas(c.Context())
		if err != nil {
			log.Error().Err(err).Msg("contar vendas abertas")
			return c.Status(fiber.StatusServiceUnavailable).
				JSON(fiber.Map{"status": "error"})
		}
		return c.JSON(fiber.Map{
			"status":         "ok",
			"service":        cfg.App.Name,
			"notas_emitidas": emitidas,
			"vendas_abertas": abertas,
		})
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}
}
