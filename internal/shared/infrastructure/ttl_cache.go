package infrastructure

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// TTLCache implémente Cache au-dessus de jellydator/ttlcache
type TTLCache struct {
	cache *ttlcache.Cache[string, any]
}

// NewTTLCache crée un cache ttlcache avec un TTL par défaut et démarre son nettoyage
func NewTTLCache(defaultTTL time.Duration) *TTLCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, any](defaultTTL),
		ttlcache.WithDisableTouchOnHit[string, any](),
	)
	go cache.Start()
	return &TTLCache{cache: cache}
}

// Get récupère une valeur non expirée
func (c *TTLCache) Get(key string) (any, bool) {
	item := c.cache.Get(key)
	if item == nil || item.IsExpired() {
		return nil, false
	}
	return item.Value(), true
}

// Set ajoute ou met à jour une valeur
func (c *TTLCache) Set(key string, value any, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// Delete supprime une entrée
func (c *TTLCache) Delete(key string) {
	c.cache.Delete(key)
}

// Clear vide le cache
func (c *TTLCache) Clear() {
	c.cache.DeleteAll()
}

// Len retourne le nombre d'entrées
func (c *TTLCache) Len() int {
	return c.cache.Len()
}

// Close arrête le nettoyage automatique
func (c *TTLCache) Close() {
	c.cache.Stop()
}
