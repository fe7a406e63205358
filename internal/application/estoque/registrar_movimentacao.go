package estoque

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salaobella/salao-api/internal/application/dto"
	"github.com/salaobella/salao-api/internal/domain"
	"github.com/salaobella/salao-api/internal/domain/entity"
	"github.com/salaobella/salao-api/internal/domain/repository"
)

// RegistrarMovimentacaoUseCase aplica movimentações ao razão de estoque de
// forma transacional, com bloqueio de linha (SELECT FOR UPDATE) no produto.
// O bloqueio serializa movimentações concorrentes sobre o mesmo produto: duas
// leituras simultâneas da quantidade nunca passam juntas pela checagem de
// estoque não negativo.
type RegistrarMovimentacaoUseCase struct {
	txRunner TxRunner
}

// NewRegistrarMovimentacaoUseCase constrói o caso de uso.
func NewRegistrarMovimentacaoUseCase(txRunner TxRunner) *RegistrarMovimentacaoUseCase {
	return &RegistrarMovimentacaoUseCase{txRunner: txRunner}
}

// MovimentacaoInput entrada para registrar uma movimentação.
// Para entrada/saida a quantidade deve ser positiva; ajuste carrega o próprio
// sinal e não pode ser zero.
type MovimentacaoInput struct {
	ProdutoID  string
	Tipo       string
	Quantidade int
	Origem     string
	CriadoPor  string
}

// Registrar valida a entrada, abre a transação, bloqueia a linha do produto e
// aplica o delta. Falha com ErrEstoqueInsuficiente se o resultado for negativo;
// nesse caso nada é gravado (a checagem precede as duas escritas).
func (uc *RegistrarMovimentacaoUseCase) Registrar(ctx context.Context, input MovimentacaoInput) (*dto.RegistrarMovimentacaoResponse, error) {
	if input.ProdutoID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	switch input.Tipo {
	case entity.MovimentacaoEntrada, entity.MovimentacaoSaida:
		if input.Quantidade <= 0 {
			return nil, domain.ErrEntradaInvalida
		}
	case entity.MovimentacaoAjuste:
		if input.Quantidade == 0 {
			return nil, domain.ErrEntradaInvalida
		}
	default:
		return nil, domain.ErrEntradaInvalida
	}

	var resp *dto.RegistrarMovimentacaoResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
		_ repository.LoteRepository,
	) error {
		produto, err := produtoRepo.GetForUpdate(input.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNaoEncontrado
		}

		mov := &entity.MovimentacaoEstoque{
			ID:         uuid.New().String(),
			ProdutoID:  produto.ID,
			Tipo:       input.Tipo,
			Quantidade: input.Quantidade,
			Origem:     input.Origem,
			Validade:   produto.Validade,
			CreatedAt:  time.Now(),
			CreatedBy:  input.CriadoPor,
		}
		novaQtd := produto.QuantidadeAtual + mov.Delta()
		if novaQtd < 0 {
			return domain.ErrEstoqueInsuficiente
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := produtoRepo.UpdateQuantidade(produto.ID, novaQtd); err != nil {
			return err
		}
		resp = &dto.RegistrarMovimentacaoResponse{ID: mov.ID, QuantidadeAtual: novaQtd}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// RegistrarSaidaEmTx executa uma saída usando os repositórios fornecidos
// (mesma transação do chamador). Usado pela conclusão de atendimento para
// baixar produtos vinculados junto com a mudança de status.
func (uc *RegistrarMovimentacaoUseCase) RegistrarSaidaEmTx(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
	produtoID string,
	quantidade int,
	origem, criadoPor string,
	now time.Time,
) (novaQtd int, err error) {
	produto, err := produtoRepo.GetForUpdate(produtoID)
	if err != nil {
		return 0, err
	}
	if produto == nil {
		return 0, domain.ErrNaoEncontrado
	}
	novaQtd = produto.QuantidadeAtual - quantidade
	if novaQtd < 0 {
		return 0, domain.ErrEstoqueInsuficiente
	}
	mov := &entity.MovimentacaoEstoque{
		ID:         uuid.New().String(),
		ProdutoID:  produtoID,
		Tipo:       entity.MovimentacaoSaida,
		Quantidade: quantidade,
		Origem:     origem,
		Validade:   produto.Validade,
		CreatedAt:  now,
		CreatedBy:  criadoPor,
	}
	if err := movRepo.Create(mov); err != nil {
		return 0, err
	}
	if err := produtoRepo.UpdateQuantidade(produtoID, novaQtd); err != nil {
		return 0, err
	}
	return novaQtd, nil
}
