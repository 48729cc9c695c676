package store

import (
	"context"
	"fmt"
	"strings"
)

// Content kinds cached per day and child.
const (
	KindStory      = "story"
	KindDevotional = "devotional"
	KindStoryImage = "story_image"
)

// ContentCache keeps generated content for one calendar day and child name,
// so a child sees the same story all day.
type ContentCache struct {
	kv *KV
}

// ContentKey builds the cache key for kind on date for name.
func ContentKey(kind, date, name string) string {
	return fmt.Sprintf("%s%s_%s_%s", KeyPrefix, kind, date, name)
}

// Load decodes a cached entry into v, reporting whether one existed.
func (c *ContentCache) Load(ctx context.Context, kind, date, name string, v any) (bool, error) {
	return c.kv.GetJSON(ctx, ContentKey(kind, date, name), v)
}

// Store saves v as the entry for kind on date for name.
func (c *ContentCache) Store(ctx context.Context, kind, date, name string, v any) error {
	return c.kv.PutJSON(ctx, ContentKey(kind, date, name), v)
}

// Prune deletes entries of kind for any day other than keepDate.
func (c *ContentCache) Prune(ctx context.Context, kind, keepDate string) (int, error) {
	prefix := KeyPrefix + kind + "_"
	keys, err := c.kv.Keys(ctx, prefix)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, k := range keys {
		if strings.HasPrefix(k, prefix+keepDate+"_") {
			continue
		}
		// "story_" also prefixes "story_image_" keys.
		if kind == KindStory && strings.HasPrefix(k, KeyPrefix+KindStoryImage+"_") {
			continue
		}
		if err := c.kv.Delete(ctx, k); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
