package estoque

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// ProdutoUseCase cadastro, esgotamento e listagem de produtos.
// As três escritas do cadastro (produto, movimentação inicial, lote) rodam em
// uma única transação: o comportamento de referência fazia chamadas
// independentes e podia deixar produto sem movimentação em caso de falha.
type ProdutoUseCase struct {
	txRunner    TxRunner
	produtoRepo repository.ProdutoRepository
	movRepo     repository.MovimentacaoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(txRunner TxRunner, produtoRepo repository.ProdutoRepository, movRepo repository.MovimentacaoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{txRunner: txRunner, produtoRepo: produtoRepo, movRepo: movRepo}
}

// Cadastrar cria o produto, a movimentação de entrada inicial (origem
// "Cadastro") quando a quantidade inicial é positiva e, havendo validade,
// um lote com código determinístico sobre o instante de criação.
func (uc *ProdutoUseCase) Cadastrar(ctx context.Context, criadoPor string, in dto.CadastrarProdutoRequest) (*dto.CadastrarProdutoResponse, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.PrecoVenda.LessThan(in.PrecoCusto) {
		return nil, domain.ErrEntradaInvalida
	}
	if in.QuantidadeAtual < 0 || in.QuantidadeMinima < 0 {
		return nil, domain.ErrEntradaInvalida
	}

	validade := NormalizarData(in.Validade)
	now := time.Now()
	produto := &entity.Produto{
		ID:                    uuid.New().String(),
		Nome:                  nome,
		Categoria:             in.Categoria,
		QuantidadeAtual:       in.QuantidadeAtual,
		QuantidadeMinima:      in.QuantidadeMinima,
		PrecoCusto:            in.PrecoCusto,
		PrecoVenda:            in.PrecoVenda,
		Validade:              validade,
		FornecedorPrincipalID: in.FornecedorPrincipalID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
		loteRepo repository.LoteRepository,
	) error {
		if err := produtoRepo.Create(produto); err != nil {
			return err
		}
		if in.QuantidadeAtual <= 0 {
			return nil
		}
		mov := &entity.MovimentacaoEstoque{
			ID:         uuid.New().String(),
			ProdutoID:  produto.ID,
			Tipo:       entity.MovimentacaoEntrada,
			Quantidade: in.QuantidadeAtual,
			Origem:     entity.OrigemCadastro,
			Validade:   validade,
			CreatedAt:  now,
			CreatedBy:  criadoPor,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if validade == nil {
			return nil
		}
		lote := &entity.LoteProduto{
			ID:         uuid.New().String(),
			ProdutoID:  produto.ID,
			Codigo:     "LOTE-" + now.Format("20060102150405"),
			Validade:   *validade,
			Quantidade: in.QuantidadeAtual,
			CreatedAt:  now,
		}
		return loteRepo.Create(lote)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CadastrarProdutoResponse{ID: produto.ID, Nome: produto.Nome}, nil
}

// Esgotar zera o estoque de um produto registrando uma saída pela quantidade
// inteira (origem "Esgotar"). Produto já zerado é no-op informativo, sem
// movimentação nova.
func (uc *ProdutoUseCase) Esgotar(ctx context.Context, criadoPor, produtoID string) (*dto.EsgotarProdutoResponse, error) {
	if produtoID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	var resp *dto.EsgotarProdutoResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
		_ repository.LoteRepository,
	) error {
		produto, err := produtoRepo.GetForUpdate(produtoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNaoEncontrado
		}
		if produto.QuantidadeAtual == 0 {
			resp = &dto.EsgotarProdutoResponse{OK: true, JaZerado: true}
			return nil
		}
		mov := &entity.MovimentacaoEstoque{
			ID:         uuid.New().String(),
			ProdutoID:  produto.ID,
			Tipo:       entity.MovimentacaoSaida,
			Quantidade: produto.QuantidadeAtual,
			Origem:     entity.OrigemEsgotar,
			Validade:   produto.Validade,
			CreatedAt:  time.Now(),
			CreatedBy:  criadoPor,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := produtoRepo.UpdateQuantidade(produto.ID, 0); err != nil {
			return err
		}
		resp = &dto.EsgotarProdutoResponse{OK: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Listar devolve os produtos paginados.
func (uc *ProdutoUseCase) Listar(limit, offset int) ([]dto.ProdutoResponse, error) {
	produtos, err := uc.produtoRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, dto.ProdutoResponse{
			ID:                    p.ID,
			Nome:                  p.Nome,
			Categoria:             p.Categoria,
			QuantidadeAtual:       p.QuantidadeAtual,
			QuantidadeMinima:      p.QuantidadeMinima,
			PrecoCusto:            p.PrecoCusto,
			PrecoVenda:            p.PrecoVenda,
			Validade:              p.Validade,
			FornecedorPrincipalID: p.FornecedorPrincipalID,
			AbaixoDoMinimo:        p.AbaixoDoMinimo(),
		})
	}
	return out, nil
}

// Movimentacoes devolve o histórico de um produto (mais recentes primeiro).
func (uc *ProdutoUseCase) Movimentacoes(produtoID string, limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	if produtoID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	return uc.movRepo.ListByProduto(produtoID, limit, offset)
}
