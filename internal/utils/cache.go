package utils

import (
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem 包装缓存数据和过期时间
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// FeedCache 首页列表的本地缓存。TTL 内返回的永远是存入时的快照，
// 底层数据变了也不管，到期或显式 Clear 才会重新计算。
type FeedCache struct {
	lruCache *lru.Cache[string, CacheItem]
	ttl      time.Duration
	now      func() time.Time // 可替换时钟，测试用
}

// NewFeedCache 创建缓存实例，ttl 为统一的过期时间
func NewFeedCache(ttl time.Duration) *FeedCache {
	// 容量 500 足够覆盖首页的所有分页
	l, err := lru.New[string, CacheItem](500)
	if err != nil {
		log.Fatalf("Failed to create LRU cache: %v", err)
	}
	return &FeedCache{
		lruCache: l,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Set 写入缓存，过期时间为构造时指定的 TTL
func (c *FeedCache) Set(key string, data interface{}) {
	c.lruCache.Add(key, CacheItem{
		Data:      data,
		ExpiresAt: c.now().Add(c.ttl),
	})
}

// Get 读取缓存，不存在或已过期返回 nil
func (c *FeedCache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}

	// 检查过期
	if c.now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}

	return val.Data
}

// GetOrCompute 命中直接返回缓存值；未命中时调用 compute 并把结果写入缓存。
// 并发重算时后写的覆盖先写的，各方算出的值等价，无需加锁。
func (c *FeedCache) GetOrCompute(key string, compute func() interface{}) interface{} {
	if data := c.Get(key); data != nil {
		return data
	}
	data := compute()
	c.Set(key, data)
	return data
}

// Delete 删除指定缓存
func (c *FeedCache) Delete(key string) {
	c.lruCache.Remove(key)
}

// Clear 立即清空全部缓存，不等 TTL
func (c *FeedCache) Clear() {
	c.lruCache.Purge()
}
