/*
 * serdec-go
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

package serdec

import "sync"

// ArenaPool hands out reset arenas built from a fixed Config, letting
// repeated parses reuse memory instead of allocating a fresh Arena each
// time. A zero ArenaPool is not usable; use NewArenaPool.
type ArenaPool struct {
	cfg  Config
	pool sync.Pool
}

// NewArenaPool creates a pool that builds arenas with cfg.
func NewArenaPool(cfg Config) *ArenaPool {
	p := &ArenaPool{cfg: cfg}
	p.pool.New = func() any { return NewArena(p.cfg) }
	return p
}

// Get returns an arena, either freshly created or a reused one reset to
// its first block.
func (p *ArenaPool) Get() *Arena {
	return p.pool.Get().(*Arena)
}

// Put resets a and returns it to the pool. Put(nil) and Put of an
// already-destroyed arena are no-ops.
func (p *ArenaPool) Put(a *Arena) {
	if !a.valid() {
		return
	}
	a.Reset()
	p.pool.Put(a)
}
