package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salaobella/salao-api/internal/application/agenda"
	"github.com/salaobella/salao-api/internal/application/auth"
	"github.com/salaobella/salao-api/internal/application/estoque"
	"github.com/salaobella/salao-api/internal/application/financeiro"
	"github.com/salaobella/salao-api/internal/application/orcamento"
	"github.com/salaobella/salao-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProdutoUC       *estoque.ProdutoUseCase
	MovimentacaoUC  *estoque.RegistrarMovimentacaoUseCase
	VinculoUC       *estoque.VinculoUseCase
	CriarOrcamento  *orcamento.CriarOrcamentoUseCase
	ListarOrcamento *orcamento.ListarOrcamentosUseCase
	EnviarOrcamento *orcamento.EnviarOrcamentoUseCase
	PDFOrcamento    *orcamento.PDFUseCase
	AgendamentoUC   *agenda.AgendamentoUseCase
	ConcluirUC      *agenda.ConcluirAgendamentoUseCase
	FeedUC          *agenda.FeedUseCase
	ComissaoUC      *financeiro.ComissaoUseCase
	ContasPagarUC   *financeiro.ContasPagarUseCase
	FluxoCaixaUC    *financeiro.FluxoCaixaUseCase
	ServicoUC       *usecase.ServicoUseCase
	ProfissionalUC  *usecase.ProfissionalUseCase
	FornecedorUC    *usecase.FornecedorUseCase
	ConfiguracaoUC  *usecase.ConfiguracaoUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Feed iCalendar (público, autenticado por token de agenda)
	agendaHandler := NewAgendaHandler(deps.AgendamentoUC, deps.ConcluirUC, deps.FeedUC)
	api.Get("/agenda/:professionalId/feed.ics", agendaHandler.Feed)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Estoque (protegido)
	inventory := protected.Group("/inventory")
	estoqueHandler := NewEstoqueHandler(deps.ProdutoUC, deps.MovimentacaoUC)
	inventory.Post("/products", estoqueHandler.CadastrarProduto)
	inventory.Get("/products", estoqueHandler.ListarProdutos)
	inventory.Post("/products/deplete", estoqueHandler.EsgotarProduto)
	inventory.Get("/products/:id/movements", estoqueHandler.ListarMovimentacoes)
	inventory.Post("/movements", estoqueHandler.RegistrarMovimentacao)

	// Vínculos serviço×produto (protegido)
	vinculoHandler := NewVinculoHandler(deps.VinculoUC)
	inventory.Get("/service-product-links", vinculoHandler.Listar)
	inventory.Post("/service-product-links", vinculoHandler.Criar)
	inventory.Put("/service-product-links/:id", vinculoHandler.Atualizar)
	inventory.Delete("/service-product-links/:id", vinculoHandler.Excluir)

	// Orçamentos (protegido)
	quotes := protected.Group("/quotes")
	orcamentoHandler := NewOrcamentoHandler(deps.CriarOrcamento, deps.ListarOrcamento, deps.EnviarOrcamento, deps.PDFOrcamento)
	quotes.Post("/", orcamentoHandler.Criar)
	quotes.Get("/", orcamentoHandler.Listar)
	quotes.Get("/painel", orcamentoHandler.ListarPainel)
	quotes.Post("/:id/send", orcamentoHandler.Enviar)
	quotes.Get("/:id/pdf", orcamentoHandler.GerarPDF)

	// Agendamentos (protegido)
	appointments := protected.Group("/appointments")
	appointments.Post("/", agendaHandler.Criar)
	appointments.Get("/", agendaHandler.Listar)
	appointments.Put("/:id", agendaHandler.Atualizar)
	appointments.Delete("/:id", agendaHandler.Excluir)
	appointments.Post("/:id/concluir", agendaHandler.Concluir)

	// Financeiro (protegido)
	fin := protected.Group("/financeiro")
	financeiroHandler := NewFinanceiroHandler(deps.ComissaoUC, deps.ContasPagarUC, deps.FluxoCaixaUC)
	fin.Get("/comissoes", financeiroHandler.Comissoes)
	fin.Get("/contas-pagar", financeiroHandler.ListarContasPagar)
	fin.Post("/contas-pagar", financeiroHandler.CriarContaPagar)
	fin.Put("/contas-pagar/:id", financeiroHandler.AtualizarStatusConta)
	fin.Get("/fluxo-caixa", financeiroHandler.FluxoCaixa)

	// Cadastros (protegido)
	cadastroHandler := NewCadastroHandler(deps.ServicoUC, deps.ProfissionalUC, deps.FornecedorUC)
	services := protected.Group("/services")
	services.Post("/", cadastroHandler.CriarServico)
	services.Get("/", cadastroHandler.ListarServicos)
	services.Put("/:id", cadastroHandler.AtualizarServico)

	professionals := protected.Group("/professionals")
	professionals.Post("/", cadastroHandler.CriarProfissional)
	professionals.Get("/", cadastroHandler.ListarProfissionais)
	professionals.Put("/:id", cadastroHandler.AtualizarProfissional)
	professionals.Post("/:id/renovar-token", cadastroHandler.RenovarTokenProfissional)

	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", cadastroHandler.CriarFornecedor)
	suppliers.Get("/", cadastroHandler.ListarFornecedores)
	suppliers.Put("/:id", cadastroHandler.AtualizarFornecedor)

	// Configurações (protegido)
	configuracaoHandler := NewConfiguracaoHandler(deps.ConfiguracaoUC)
	settings := protected.Group("/settings")
	settings.Get("/:chave", configuracaoHandler.Obter)
	settings.Put("/:chave", configuracaoHandler.Definir)
}
