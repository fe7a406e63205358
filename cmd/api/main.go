package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/salaobella/salao-api/internal/application/agenda"
	"github.com/salaobella/salao-api/internal/application/auth"
	"github.com/salaobella/salao-api/internal/application/estoque"
	"github.com/salaobella/salao-api/internal/application/financeiro"
	"github.com/salaobella/salao-api/internal/application/orcamento"
	"github.com/salaobella/salao-api/internal/application/usecase"
	inframail "github.com/salaobella/salao-api/internal/infrastructure/mail"
	infrapdf "github.com/salaobella/salao-api/internal/infrastructure/pdf"
	"github.com/salaobella/salao-api/internal/infrastructure/postgres"
	httpRouter "github.com/salaobella/salao-api/internal/interfaces/http"
	"github.com/salaobella/salao-api/pkg/config"
	"github.com/salaobella/salao-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	// Repositórios sobre o pool (fora de transação)
	produtoRepo := postgres.NewProdutoRepository(pool)
	movimentacaoRepo := postgres.NewMovimentacaoRepository(pool)
	vinculoRepo := postgres.NewVinculoRepository(pool)
	servicoRepo := postgres.NewServicoRepository(pool)
	profissionalRepo := postgres.NewProfissionalRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	configuracaoRepo := postgres.NewConfiguracaoRepository(pool)
	agendamentoRepo := postgres.NewAgendamentoRepository(pool)
	orcamentoRepo := postgres.NewOrcamentoRepository(pool)
	financeiroRepo := postgres.NewFinanceiroRepository(pool)
	contaPagarRepo := postgres.NewContaPagarRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Estoque
	movimentacaoUC := estoque.NewRegistrarMovimentacaoUseCase(txRunner)
	produtoUC := estoque.NewProdutoUseCase(txRunner, produtoRepo, movimentacaoRepo)
	vinculoUC := estoque.NewVinculoUseCase(vinculoRepo)

	// Orçamentos
	mailer := inframail.NewGomailSender(cfg.SMTP)
	pdfGenerator := infrapdf.NewMarotoOrcamentoGenerator()
	criarOrcamentoUC := orcamento.NewCriarOrcamentoUseCase(txRunner, orcamentoRepo)
	listarOrcamentoUC := orcamento.NewListarOrcamentosUseCase(orcamentoRepo)
	enviarOrcamentoUC := orcamento.NewEnviarOrcamentoUseCase(orcamentoRepo, mailer, pdfGenerator)
	pdfOrcamentoUC := orcamento.NewPDFUseCase(orcamentoRepo, pdfGenerator)

	// Agenda
	agendamentoUC := agenda.NewAgendamentoUseCase(agendamentoRepo, servicoRepo, profissionalRepo)
	concluirUC := agenda.NewConcluirAgendamentoUseCase(txRunner, agendamentoRepo, vinculoRepo, movimentacaoUC)
	feedUC := agenda.NewFeedUseCase(profissionalRepo, agendamentoRepo, servicoRepo)

	// Financeiro
	comissaoUC := financeiro.NewComissaoUseCase(financeiroRepo)
	contasPagarUC := financeiro.NewContasPagarUseCase(contaPagarRepo)
	fluxoCaixaUC := financeiro.NewFluxoCaixaUseCase(financeiroRepo)

	// Cadastros e configurações
	servicoUC := usecase.NewServicoUseCase(servicoRepo)
	profissionalUC := usecase.NewProfissionalUseCase(profissionalRepo)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)
	configuracaoUC := usecase.NewConfiguracaoUseCase(configuracaoRepo)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Salão Bella API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProdutoUC:       produtoUC,
		MovimentacaoUC:  movimentacaoUC,
		VinculoUC:       vinculoUC,
		CriarOrcamento:  criarOrcamentoUC,
		ListarOrcamento: listarOrcamentoUC,
		EnviarOrcamento: enviarOrcamentoUC,
		PDFOrcamento:    pdfOrcamentoUC,
		AgendamentoUC:   agendamentoUC,
		ConcluirUC:      concluirUC,
		FeedUC:          feedUC,
		ComissaoUC:      comissaoUC,
		ContasPagarUC:   contasPagarUC,
		FluxoCaixaUC:    fluxoCaixaUC,
		ServicoUC:       servicoUC,
		ProfissionalUC:  profissionalUC,
		FornecedorUC:    fornecedorUC,
		ConfiguracaoUC:  configuracaoUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
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
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
