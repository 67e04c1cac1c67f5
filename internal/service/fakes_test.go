package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/hugohenrick/pdv-negocios/internal/domain/category"
	"github.com/hugohenrick/pdv-negocios/internal/domain/product"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sale"
	"github.com/hugohenrick/pdv-negocios/internal/domain/sequence"
	"github.com/hugohenrick/pdv-negocios/internal/domain/tenant"
	"github.com/hugohenrick/pdv-negocios/pkg/repository"
)

// memState é o estado compartilhado dos repositórios em memória usados nos
// testes. As chaves de produto combinam tenant e ID para reproduzir o
// isolamento entre negócios.
type memState struct {
	tenants    map[string]*tenant.Tenant
	categories map[string]*category.Category
	products   map[string]*product.Product
	sequences  map[string]*sequence.InvoiceSequence
	sales      map[string]*sale.Sale
	saleOrder  []string
}

func newMemState() *memState {
	return &memState{
		tenants:    make(map[string]*tenant.Tenant),
		categories: make(map[string]*category.Category),
		products:   make(map[string]*product.Product),
		sequences:  make(map[string]*sequence.InvoiceSequence),
		sales:      make(map[string]*sale.Sale),
	}
}

var tenantNotFoundErr = errors.New("negócio não encontrado")

func productKey(tenantID, id string) string {
	return tenantID + "/" + id
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.tenants {
		t := *v
		c.tenants[k] = &t
	}
	for k, v := range s.categories {
		cat := *v
		c.categories[k] = &cat
	}
	for k, v := range s.products {
		p := *v
		c.products[k] = &p
	}
	for k, v := range s.sequences {
		seq := *v
		c.sequences[k] = &seq
	}
	for k, v := range s.sales {
		sl := *v
		sl.Items = make([]*sale.SaleItem, len(v.Items))
		for i, it := range v.Items {
			item := *it
			sl.Items[i] = &item
		}
		c.sales[k] = &sl
	}
	c.saleOrder = append([]string(nil), s.saleOrder...)
	return c
}

// memEnv reúne a unidade de trabalho e o estado comprometido. WithinTx roda a
// função sobre uma cópia do estado e só a publica no commit, de modo que um
// erro no meio da transação não deixa estado parcial, como em um rollback.
type memEnv struct {
	mu    sync.Mutex
	state *memState
}

func newMemEnv() *memEnv {
	return &memEnv{state: newMemState()}
}

func (e *memEnv) WithinTx(ctx context.Context, fn func(s repository.Stores) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	work := e.state.clone()
	if err := fn(&memStores{state: work}); err != nil {
		return err
	}
	e.state = work
	return nil
}

// seed aplica mutações diretamente no estado comprometido
func (e *memEnv) seed(fn func(s *memState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.state)
}

// snapshot lê o estado comprometido com segurança
func (e *memEnv) snapshot() *memState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

var _ repository.UnitOfWork = (*memEnv)(nil)

// memStores entrega os repositórios ligados a uma transação em andamento
type memStores struct {
	state *memState
}

func (s *memStores) Tenants() tenant.Repository      { return &memTenantRepo{state: s.state} }
func (s *memStores) Categories() category.Repository { return &memCategoryRepo{state: s.state} }
func (s *memStores) Products() product.Repository    { return &memProductRepo{state: s.state} }
func (s *memStores) Sales() sale.Repository          { return &memSaleRepo{state: s.state} }
func (s *memStores) Sequences() sequence.Repository  { return &memSequenceRepo{state: s.state} }

type memTenantRepo struct {
	state *memState
}

func (r *memTenantRepo) Create(ctx context.Context, t *tenant.Tenant) error {
	c := *t
	r.state.tenants[t.ID] = &c
	return nil
}

func (r *memTenantRepo) FindByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	t, ok := r.state.tenants[id]
	if !ok {
		return nil, tenantNotFoundErr
	}
	c := *t
	return &c, nil
}

func (r *memTenantRepo) List(ctx context.Context, limit, offset int) ([]*tenant.Tenant, error) {
	out := make([]*tenant.Tenant, 0, len(r.state.tenants))
	for _, t := range r.state.tenants {
		c := *t
		out = append(out, &c)
	}
	return out, nil
}

func (r *memTenantRepo) Update(ctx context.Context, t *tenant.Tenant) error {
	c := *t
	r.state.tenants[t.ID] = &c
	return nil
}

func (r *memTenantRepo) Delete(ctx context.Context, id string) error {
	delete(r.state.tenants, id)
	return nil
}

func (r *memTenantRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.state.tenants[id]
	return ok, nil
}

func (r *memTenantRepo) Count(ctx context.Context) (int, error) {
	return len(r.state.tenants), nil
}

type memCategoryRepo struct {
	state *memState
}

func (r *memCategoryRepo) Create(ctx context.Context, c *category.Category) error {
	cp := *c
	r.state.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) FindByID(ctx context.Context, tenantID, id string) (*category.Category, error) {
	c, ok := r.state.categories[id]
	if !ok || c.TenantID != tenantID {
		return nil, category.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) List(ctx context.Context, tenantID string) ([]*category.Category, error) {
	out := make([]*category.Category, 0)
	for _, c := range r.state.categories {
		if c.TenantID == tenantID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memProductRepo struct {
	state *memState
}

func (r *memProductRepo) Create(ctx context.Context, p *product.Product) error {
	c := *p
	r.state.products[productKey(p.TenantID, p.ID)] = &c
	return nil
}

func (r *memProductRepo) FindByID(ctx context.Context, tenantID, id string) (*product.Product, error) {
	p, ok := r.state.products[productKey(tenantID, id)]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	c := *p
	return &c, nil
}

func (r *memProductRepo) FindByEAN(ctx context.Context, tenantID, eanCode string) (*product.Product, error) {
	for _, p := range r.state.products {
		if p.TenantID == tenantID && p.EANCode == eanCode && p.IsActive() {
			c := *p
			return &c, nil
		}
	}
	return nil, product.ErrProductNotFound
}

func (r *memProductRepo) Search(ctx context.Context, tenantID, term string, limit, offset int) ([]*product.Product, error) {
	out := make([]*product.Product, 0)
	for _, p := range r.state.products {
		if p.TenantID != tenantID || !p.IsActive() {
			continue
		}
		if term == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) || p.EANCode == term {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memProductRepo) FindLowStock(ctx context.Context, tenantID string) ([]*product.Product, error) {
	out := make([]*product.Product, 0)
	for _, p := range r.state.products {
		if p.TenantID == tenantID && p.IsActive() && p.NeedsRestock() {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memProductRepo) FindForSale(ctx context.Context, tenantID, id string) (*product.Product, error) {
	p, ok := r.state.products[productKey(tenantID, id)]
	if !ok || !p.IsActive() {
		return nil, product.ErrProductNotFound
	}
	c := *p
	return &c, nil
}

func (r *memProductRepo) DecrementStock(ctx context.Context, tenantID, id string, quantity int) (int, error) {
	p, ok := r.state.products[productKey(tenantID, id)]
	if !ok {
		return 0, product.ErrProductNotFound
	}
	if p.Stock < quantity {
		return 0, product.ErrInsufficientStock
	}
	p.Stock -= quantity
	return p.Stock, nil
}

func (r *memProductRepo) IncrementStock(ctx context.Context, tenantID, id string, quantity int) (int, error) {
	p, ok := r.state.products[productKey(tenantID, id)]
	if !ok {
		return 0, product.ErrProductNotFound
	}
	p.Stock += quantity
	return p.Stock, nil
}

func (r *memProductRepo) Update(ctx context.Context, p *product.Product) error {
	key := productKey(p.TenantID, p.ID)
	if _, ok := r.state.products[key]; !ok {
		return product.ErrProductNotFound
	}
	c := *p
	r.state.products[key] = &c
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, tenantID, id string) error {
	p, ok := r.state.products[productKey(tenantID, id)]
	if !ok {
		return product.ErrProductNotFound
	}
	p.Deactivate()
	return nil
}

func (r *memProductRepo) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	count := 0
	for _, p := range r.state.products {
		if p.TenantID == tenantID && p.IsActive() {
			count++
		}
	}
	return count, nil
}

type memSequenceRepo struct {
	state *memState
}

func (r *memSequenceRepo) Create(ctx context.Context, s *sequence.InvoiceSequence) error {
	c := *s
	r.state.sequences[s.TenantID] = &c
	return nil
}

func (r *memSequenceRepo) FindByTenant(ctx context.Context, tenantID string) (*sequence.InvoiceSequence, error) {
	s, ok := r.state.sequences[tenantID]
	if !ok {
		return nil, sequence.ErrNotConfigured
	}
	c := *s
	return &c, nil
}

func (r *memSequenceRepo) AllocateNext(ctx context.Context, tenantID string) (string, error) {
	s, ok := r.state.sequences[tenantID]
	if !ok {
		return "", sequence.ErrNotConfigured
	}
	number := s.NextNumber
	s.NextNumber++
	return sequence.Format(s.Prefix, number), nil
}

type memSaleRepo struct {
	state *memState
}

func (r *memSaleRepo) Create(ctx context.Context, s *sale.Sale) error {
	c := *s
	c.Items = nil
	r.state.sales[s.ID] = &c
	r.state.saleOrder = append(r.state.saleOrder, s.ID)
	return nil
}

func (r *memSaleRepo) CreateItem(ctx context.Context, item *sale.SaleItem) error {
	s, ok := r.state.sales[item.SaleID]
	if !ok {
		return sale.ErrSaleNotFound
	}
	c := *item
	s.Items = append(s.Items, &c)
	return nil
}

func (r *memSaleRepo) FindByID(ctx context.Context, tenantID, id string) (*sale.Sale, error) {
	s, ok := r.state.sales[id]
	if !ok || s.TenantID != tenantID {
		return nil, sale.ErrSaleNotFound
	}
	c := *s
	return &c, nil
}

func (r *memSaleRepo) FindRecent(ctx context.Context, tenantID string, limit int) ([]*sale.Sale, error) {
	out := make([]*sale.Sale, 0)
	for i := len(r.state.saleOrder) - 1; i >= 0 && len(out) < limit; i-- {
		s := r.state.sales[r.state.saleOrder[i]]
		if s.TenantID == tenantID {
			c := *s
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memSaleRepo) FindReceipt(ctx context.Context, tenantID, id string) (*sale.Receipt, error) {
	s, ok := r.state.sales[id]
	if !ok || s.TenantID != tenantID {
		return nil, sale.ErrSaleNotFound
	}
	receipt := &sale.Receipt{Sale: *s}
	if t, ok := r.state.tenants[tenantID]; ok {
		receipt.TenantName = t.Name
		receipt.TenantDocument = t.Document
		receipt.TenantAddress = t.Address
		receipt.TenantPhone = t.Phone
		receipt.TenantEmail = t.Email
	}
	return receipt, nil
}

func (r *memSaleRepo) FindByPeriod(ctx context.Context, tenantID string, start, end time.Time) ([]*sale.Sale, error) {
	out := make([]*sale.Sale, 0)
	for _, id := range r.state.saleOrder {
		s := r.state.sales[id]
		if s.TenantID == tenantID && !s.CreatedAt.Before(start) && s.CreatedAt.Before(end) {
			c := *s
			out = append(out, &c)
		}
	}
	return out, nil
}

// memSaleReader é o repositório de leitura ligado ao estado comprometido,
// espelhando o repositório ligado ao pool usado em produção
type memSaleReader struct {
	env *memEnv
}

func (r *memSaleReader) Create(ctx context.Context, s *sale.Sale) error {
	panic("leituras apenas")
}

func (r *memSaleReader) CreateItem(ctx context.Context, item *sale.SaleItem) error {
	panic("leituras apenas")
}

func (r *memSaleReader) FindByID(ctx context.Context, tenantID, id string) (*sale.Sale, error) {
	return (&memSaleRepo{state: r.env.snapshot()}).FindByID(ctx, tenantID, id)
}

func (r *memSaleReader) FindRecent(ctx context.Context, tenantID string, limit int) ([]*sale.Sale, error) {
	return (&memSaleRepo{state: r.env.snapshot()}).FindRecent(ctx, tenantID, limit)
}

func (r *memSaleReader) FindReceipt(ctx context.Context, tenantID, id string) (*sale.Receipt, error) {
	return (&memSaleRepo{state: r.env.snapshot()}).FindReceipt(ctx, tenantID, id)
}

func (r *memSaleReader) FindByPeriod(ctx context.Context, tenantID string, start, end time.Time) ([]*sale.Sale, error) {
	return (&memSaleRepo{state: r.env.snapshot()}).FindByPeriod(ctx, tenantID, start, end)
}
