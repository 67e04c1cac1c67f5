package repository

import (
	"context"

	"github.com/hugohenrick/pdv-negocios/internal/domain/category"
	"github.com/hugohenrick/pdv-negocios/internal/domain/product"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sale"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sequence"
	"github.com/hugohenrick/pdv-negocios/internal/domain/tenant"
)

// Stores expõe os repositórios vinculados a uma mesma transação. Todas as
// leituras e escritas feitas através de um Stores compartilham a mesma
// visão transacional do banco.
type Stores interface {
	Tenants() tenant.Repository
	Categories() category.Repository
	Products() product.Repository
	Sales() sale.Repository
	Sequences() sequence.Repository
}

// UnitOfWork delimita uma unidade atômica de trabalho. WithinTx abre uma
// transação, entrega os repositórios transacionais à função e faz commit se
// ela retornar nil; qualquer erro (ou panic) provoca rollback completo, sem
// estado parcial.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(s Stores) error) error
}
