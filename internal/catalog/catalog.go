package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/GavrielAldrich/PI-Inne/internal/cache"
	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/model"
	"github.com/GavrielAldrich/PI-Inne/internal/store"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL  = 5 * time.Minute
	notFoundTTL = time.Minute
	allKey      = "products:all"
	notFound    = "notfound"
)

func productKey(id int) string { return fmt.Sprintf("product:%d", id) }

// Catalog reads products through Redis and invalidates on every write.
// Cache failures are logged and the database answers instead.
type Catalog struct {
	db    database.Querier
	cache cache.Cache
	ttl   time.Duration
}

func New(db database.Querier, c cache.Cache, ttl time.Duration) *Catalog {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Catalog{db: db, cache: c, ttl: ttl}
}

func (c *Catalog) List(ctx context.Context) ([]model.Product, error) {
	data, err := c.cache.Get(ctx, allKey).Bytes()
	switch {
	case err == nil:
		var products []model.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
		log.Printf("catalog: bad cached product list (continuing with DB): %v", err)
	case errors.Is(err, redis.Nil):
	default:
		log.Printf("catalog: redis error (continuing with DB): %v", err)
	}

	products, err := store.ListProducts(ctx, c.db)
	if err != nil {
		return nil, err
	}
	c.put(ctx, allKey, products, c.ttl)
	return products, nil
}

// Get returns store.ErrNotFound (wrapped) for unknown ids; misses are
// remembered for a minute.
func (c *Catalog) Get(ctx context.Context, id int) (*model.Product, error) {
	key := productKey(id)
	data, err := c.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == notFound {
			return nil, fmt.Errorf("Catalog.Get: %w", store.ErrNotFound)
		}
		var p model.Product
		if err := json.Unmarshal(data, &p); err == nil {
			return &p, nil
		}
		log.Printf("catalog: bad cached product %d (continuing with DB): %v", id, err)
	case errors.Is(err, redis.Nil):
	default:
		log.Printf("catalog: redis error (continuing with DB): %v", err)
	}

	p, err := store.GetProductByID(ctx, c.db, id)
	if errors.Is(err, store.ErrNotFound) {
		if err := c.cache.Set(ctx, key, notFound, notFoundTTL).Err(); err != nil {
			log.Printf("catalog: failed to cache notfound: %v", err)
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	c.put(ctx, key, p, c.ttl)
	return p, nil
}

// Load reads the product from the database, skipping the cache. Admin
// edits use it: a row written back from a stale entry would undo an
// earlier change.
func (c *Catalog) Load(ctx context.Context, id int) (*model.Product, error) {
	return store.GetProductByID(ctx, c.db, id)
}

func (c *Catalog) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	created, err := store.CreateProduct(ctx, c.db, p)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, created.ID)
	return created, nil
}

func (c *Catalog) Update(ctx context.Context, p *model.Product) error {
	err := store.UpdateProduct(ctx, c.db, p)
	c.invalidate(ctx, p.ID)
	return err
}

func (c *Catalog) Delete(ctx context.Context, id int) error {
	err := store.DeleteProduct(ctx, c.db, id)
	c.invalidate(ctx, id)
	return err
}

func (c *Catalog) put(ctx context.Context, key string, v any, ttl time.Duration) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("catalog: failed to marshal %s: %v", key, err)
		return
	}
	if err := c.cache.Set(ctx, key, b, ttl).Err(); err != nil {
		log.Printf("catalog: failed to cache %s: %v", key, err)
	}
}

func (c *Catalog) invalidate(ctx context.Context, id int) {
	if err := c.cache.Del(ctx, productKey(id), allKey).Err(); err != nil {
		log.Printf("catalog: failed to invalidate product %d: %v", id, err)
	}
}
