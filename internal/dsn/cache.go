/*
 * Copyright (c) 2026 Firefly Software Solutions Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dsn

import (
	"os"
	"sync"
	"time"

	"flysql/internal/logging"
)

// cacheEntry pairs a parsed file with the stat signature it was read at.
type cacheEntry struct {
	modTime time.Time
	size    int64
	file    *File
}

// Cache is a read-through cache of parsed connections files keyed by path.
// A cached entry is reused only while the file's modification time and size
// are unchanged; edits on disk are picked up on the next Load.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	logger  *logging.Logger
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		logger:  logging.NewLogger("dsn"),
	}
}

// Load returns the parsed connections file at path, reading from disk only
// when the cached copy is missing or stale.
func (c *Cache) Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[path]; ok {
		if entry.modTime.Equal(info.ModTime()) && entry.size == info.Size() {
			return entry.file, nil
		}
		c.logger.Debug("Connections file changed, reloading", "path", path)
	}

	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.entries[path] = cacheEntry{
		modTime: info.ModTime(),
		size:    info.Size(),
		file:    f,
	}
	c.logger.Debug("Loaded connections file", "path", path, "sections", len(f.sections))
	return f, nil
}

// Invalidate drops the cached entry for path, if any.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}
