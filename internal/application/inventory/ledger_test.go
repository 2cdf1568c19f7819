package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/ecolosur/catalogo-api/internal/application/inventory"
	"github.com/ecolosur/catalogo-api/internal/domain"
	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	inv "github.com/ecolosur/catalogo-api/internal/domain/inventory"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El mutex del store emula la serialización que en PostgreSQL
// da el bloqueo de fila (SELECT FOR UPDATE); el snapshot emula el Rollback.
// ─────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]entity.Product
	movements []entity.InventoryMovement
	sales     []entity.Sale

	// forceDupSKU hace que Create de movimientos falle siempre con
	// ErrDuplicate, para probar el agotamiento de reintentos.
	forceDupSKU bool
}

func newMemStore() *memStore {
	return &memStore{products: make(map[string]entity.Product)}
}

func (s *memStore) addProduct(id string, qty int64, active bool) {
	s.products[id] = entity.Product{
		ID:       id,
		Name:     "Producto " + id,
		Price:    decimal.NewFromInt(35),
		Quantity: qty,
		IsActive: active,
	}
}

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
	saleRepo repository.SaleRepository,
) error) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Snapshot para simular rollback
	prodSnap := make(map[string]entity.Product, len(s.products))
	for k, v := range s.products {
		prodSnap[k] = v
	}
	movSnap := len(s.movements)
	saleSnap := len(s.sales)

	err := fn(&memProductRepo{s}, &memMovementRepo{s}, &memSaleRepo{s})
	if err != nil {
		s.products = prodSnap
		s.movements = s.movements[:movSnap]
		s.sales = s.sales[:saleSnap]
	}
	return err
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = *p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.s.products[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}
func (r *memProductRepo) GetBySlug(string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *memProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = *p; return nil }
func (r *memProductRepo) UpdateQuantity(id string, quantity int64) error {
	p := r.s.products[id]
	p.Quantity = quantity
	r.s.products[id] = p
	return nil
}
func (r *memProductRepo) List(repository.ProductFilter, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.s.products, id); return nil }

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.InventoryMovement) error {
	if r.s.forceDupSKU {
		return domain.ErrDuplicate
	}
	for _, existing := range r.s.movements {
		if existing.SKU == m.SKU {
			return domain.ErrDuplicate
		}
	}
	r.s.movements = append(r.s.movements, *m)
	return nil
}
func (r *memMovementRepo) GetBySKU(sku string) (*entity.InventoryMovement, error) {
	for _, m := range r.s.movements {
		if m.SKU == sku {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *memMovementRepo) LastSKU() (string, error) {
	best, bestSeq := "", -1
	for _, m := range r.s.movements {
		seq, err := inv.ParseSKU(m.SKU)
		if err != nil {
			continue
		}
		if seq > bestSeq {
			best, bestSeq = m.SKU, seq
		}
	}
	return best, nil
}
func (r *memMovementRepo) ListByProduct(string, int, int) ([]*entity.InventoryMovement, error) {
	return nil, nil
}
func (r *memMovementRepo) List(int, int) ([]*entity.InventoryMovement, error) { return nil, nil }

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	r.s.sales = append(r.s.sales, *sale)
	return nil
}
func (r *memSaleRepo) GetByID(string) (*entity.Sale, error) { return nil, nil }
func (r *memSaleRepo) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*entity.Sale, error) {
	return nil, nil
}
func (r *memSaleRepo) List(*time.Time, *time.Time, int, int) ([]*entity.Sale, error) {
	return nil, nil
}

func newLedger(s *memStore) *appinv.StockLedger {
	return appinv.NewStockLedger(&memTxRunner{store: s}, &memProductRepo{s}, nil)
}

type countingInvalidator struct{ calls int }

func (i *countingInvalidator) Invalidate(context.Context) error {
	i.calls++
	return nil
}

func newLedgerWithCache(s *memStore, cache appinv.CacheInvalidator) *appinv.StockLedger {
	return appinv.NewStockLedger(&memTxRunner{store: s}, &memProductRepo{s}, cache)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ventas
// ─────────────────────────────────────────────────────────────────────────────

func TestRecordSale_DescuentaStock(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 10, true)
	ledger := newLedger(s)

	res, err := ledger.RecordSale(context.Background(), appinv.SaleInput{
		ProductID: "p1", Quantity: 3, SoldPrice: decimal.RequireFromString("20.00"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.SaleID)
	assert.Equal(t, int64(7), res.RemainingQuantity)
	assert.Equal(t, int64(7), s.products["p1"].Quantity)
	require.Len(t, s.sales, 1)
	assert.True(t, s.sales[0].SoldPrice.Equal(decimal.RequireFromString("20.00")))
}

func TestRecordSale_StockInsuficienteNoCambiaNada(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 7, true)
	ledger := newLedger(s)

	_, err := ledger.RecordSale(context.Background(), appinv.SaleInput{
		ProductID: "p1", Quantity: 10, SoldPrice: decimal.RequireFromString("20.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(7), s.products["p1"].Quantity, "la cantidad no debe cambiar en un rechazo")
	assert.Empty(t, s.sales, "no debe quedar venta registrada")
}

func TestRecordSale_CantidadInvalida(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 10, true)
	ledger := newLedger(s)

	for _, qty := range []int64{0, -3} {
		_, err := ledger.RecordSale(context.Background(), appinv.SaleInput{
			ProductID: "p1", Quantity: qty, SoldPrice: decimal.NewFromInt(20),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}

func TestRecordSale_PrecioNegativo(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 10, true)
	ledger := newLedger(s)

	_, err := ledger.RecordSale(context.Background(), appinv.SaleInput{
		ProductID: "p1", Quantity: 1, SoldPrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordSale_ProductoInactivoONoExiste(t *testing.T) {
	s := newMemStore()
	s.addProduct("inactivo", 10, false)
	ledger := newLedger(s)

	_, err := ledger.RecordSale(context.Background(), appinv.SaleInput{
		ProductID: "inactivo", Quantity: 1, SoldPrice: decimal.NewFromInt(20),
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = ledger.RecordSale(context.Background(), appinv.SaleInput{
		ProductID: "fantasma", Quantity: 1, SoldPrice: decimal.NewFromInt(20),
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// Escenario del contrato: stock 10, venta de 3 a 20.00 deja 7; la venta
// siguiente de 10 falla y deja 7.
func TestRecordSale_EscenarioContrato(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 10, true)
	ledger := newLedger(s)
	ctx := context.Background()
	price := decimal.RequireFromString("20.00")

	res, err := ledger.RecordSale(ctx, appinv.SaleInput{ProductID: "p1", Quantity: 3, SoldPrice: price})
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.RemainingQuantity)

	_, err = ledger.RecordSale(ctx, appinv.SaleInput{ProductID: "p1", Quantity: 10, SoldPrice: price})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	qty, err := ledger.CurrentStock(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), qty)
}

func TestRecordSale_ConcurrenciaNuncaNegativo(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 10, true)
	ledger := newLedger(s)

	const intentos = 25
	var wg sync.WaitGroup
	var okCount, stockErrCount int64
	var mu sync.Mutex

	for i := 0; i < intentos; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.RecordSale(context.Background(), appinv.SaleInput{
				ProductID: "p1", Quantity: 1, SoldPrice: decimal.NewFromInt(20),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				okCount++
			case err == domain.ErrInsufficientStock:
				stockErrCount++
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), okCount, "deben pasar exactamente las ventas que agotan el stock")
	assert.Equal(t, int64(intentos-10), stockErrCount)
	assert.Equal(t, int64(0), s.products["p1"].Quantity, "el stock termina en cero, nunca negativo")
	assert.Len(t, s.sales, 10)
}

// ─────────────────────────────────────────────────────────────────────────────
// Movimientos
// ─────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_EntradaYSecuenciaSKU(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 7, true)
	ledger := newLedger(s)
	ctx := context.Background()

	res, err := ledger.RecordMovement(ctx, "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, "P000", res.SKU)
	assert.Equal(t, int64(12), res.NewQuantity)

	res, err = ledger.RecordMovement(ctx, "p1", 3)
	require.NoError(t, err)
	assert.Equal(t, "P001", res.SKU)
	assert.Equal(t, int64(15), res.NewQuantity)
}

func TestRecordMovement_PermiteNegativo(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 5, true)
	ledger := newLedger(s)

	// Solo las ventas rechazan stock insuficiente; un ajuste puede dejar
	// la cantidad bajo cero (corrección de un conteo equivocado).
	res, err := ledger.RecordMovement(context.Background(), "p1", -8)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), res.NewQuantity)
}

func TestRecordMovement_DeltaCero(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 5, true)
	ledger := newLedger(s)

	_, err := ledger.RecordMovement(context.Background(), "p1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Empty(t, s.movements)
}

func TestRecordMovement_ProductoNoExiste(t *testing.T) {
	ledger := newLedger(newMemStore())
	_, err := ledger.RecordMovement(context.Background(), "fantasma", 5)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRecordMovement_ProductoInactivoPermitido(t *testing.T) {
	// Un producto inactivo sigue aceptando ajustes de inventario;
	// solo las ventas exigen producto activo.
	s := newMemStore()
	s.addProduct("p1", 0, false)
	ledger := newLedger(s)

	res, err := ledger.RecordMovement(context.Background(), "p1", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.NewQuantity)
}

func TestRecordMovement_SKUsConcurrentesDistintos(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 0, true)
	s.addProduct("p2", 0, true)
	ledger := newLedger(s)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		productID := "p1"
		if i%2 == 0 {
			productID = "p2"
		}
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := ledger.RecordMovement(context.Background(), id, 1)
			assert.NoError(t, err)
		}(productID)
	}
	wg.Wait()

	require.Len(t, s.movements, n)
	seen := make(map[string]bool, n)
	for _, m := range s.movements {
		assert.False(t, seen[m.SKU], "SKU duplicado: %s", m.SKU)
		seen[m.SKU] = true
	}
	// Bajo ejecución serializada la secuencia no tiene huecos
	for i := 0; i < n; i++ {
		assert.True(t, seen[inv.FormatSKU(i)], "falta el SKU %s", inv.FormatSKU(i))
	}
}

func TestRecordMovement_ReintentosAgotados(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 9, true)
	s.forceDupSKU = true
	ledger := newLedger(s)

	_, err := ledger.RecordMovement(context.Background(), "p1", 5)
	assert.ErrorIs(t, err, domain.ErrConflictRetry)
	assert.Equal(t, int64(9), s.products["p1"].Quantity, "rollback: sin efecto parcial")
	assert.Empty(t, s.movements)
}

// ─────────────────────────────────────────────────────────────────────────────
// Propiedad del libro de stock: para cualquier secuencia de operaciones, la
// cantidad final es Q0 + Σ deltas de movimientos − Σ cantidades vendidas,
// contando solo las operaciones que terminaron bien.
// ─────────────────────────────────────────────────────────────────────────────

func TestLedger_PropiedadDeSuma(t *testing.T) {
	s := newMemStore()
	const q0 = int64(10)
	s.addProduct("p1", q0, true)
	ledger := newLedger(s)
	ctx := context.Background()
	price := decimal.NewFromInt(30)

	type op struct {
		sale  bool
		qty   int64 // cantidad de venta o delta de movimiento
	}
	ops := []op{
		{sale: true, qty: 4},   // ok: 6
		{sale: true, qty: 9},   // falla: insuficiente
		{sale: false, qty: 12}, // ok: 18
		{sale: true, qty: 15},  // ok: 3
		{sale: false, qty: -5}, // ok: -2 (permitido en movimientos)
		{sale: true, qty: 1},   // falla: insuficiente
		{sale: false, qty: 7},  // ok: 5
	}

	var soldSum, deltaSum int64
	for _, o := range ops {
		if o.sale {
			_, err := ledger.RecordSale(ctx, appinv.SaleInput{ProductID: "p1", Quantity: o.qty, SoldPrice: price})
			if err == nil {
				soldSum += o.qty
			} else {
				require.ErrorIs(t, err, domain.ErrInsufficientStock)
			}
		} else {
			_, err := ledger.RecordMovement(ctx, "p1", o.qty)
			require.NoError(t, err)
			deltaSum += o.qty
		}
		// Lectura inmediata refleja el efecto exactamente una vez
		qty, err := ledger.CurrentStock(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, q0+deltaSum-soldSum, qty)
	}

	assert.Equal(t, q0+deltaSum-soldSum, s.products["p1"].Quantity)
}

func TestCurrentStock_ProductoNoExiste(t *testing.T) {
	ledger := newLedger(newMemStore())
	_, err := ledger.CurrentStock(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// Caché del catálogo: el storefront publica in_stock y availability, así que
// una venta que agota el stock no puede dejar la entrada cacheada viva hasta
// que venza el TTL.
// ─────────────────────────────────────────────────────────────────────────────

func TestRecordSale_AgotaStockEInvalidaCache(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 1, true)
	cache := &countingInvalidator{}
	ledger := newLedgerWithCache(s, cache)

	res, err := ledger.RecordSale(context.Background(), appinv.SaleInput{
		ProductID: "p1", Quantity: 1, SoldPrice: decimal.NewFromInt(35),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.RemainingQuantity)
	assert.Equal(t, 1, cache.calls, "el commit de la venta debe invalidar el catálogo cacheado")
}

func TestRecordSale_RechazadaNoInvalidaCache(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 2, true)
	cache := &countingInvalidator{}
	ledger := newLedgerWithCache(s, cache)

	_, err := ledger.RecordSale(context.Background(), appinv.SaleInput{
		ProductID: "p1", Quantity: 5, SoldPrice: decimal.NewFromInt(35),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Zero(t, cache.calls, "un rollback no cambia el stock publicado")
}

func TestRecordMovement_InvalidaCacheSoloEnCommit(t *testing.T) {
	s := newMemStore()
	s.addProduct("p1", 0, true)
	cache := &countingInvalidator{}
	ledger := newLedgerWithCache(s, cache)
	ctx := context.Background()

	_, err := ledger.RecordMovement(ctx, "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.calls)

	_, err = ledger.RecordMovement(ctx, "fantasma", 5)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, 1, cache.calls, "un movimiento fallido no invalida")
}
