package db

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Nixie-Tech-LLC/cragline-cms/internal/model"
)

var (
	// ErrDuplicate mirrors a unique constraint violation.
	ErrDuplicate = errors.New("duplicate key value violates unique constraint")
	// ErrForeignKey mirrors a foreign key constraint violation.
	ErrForeignKey = errors.New("insert or update violates foreign key constraint")
)

// row wraps a record with its insertion sequence so equal sort keys keep a stable order.
type row[T any] struct {
	seq    uint64
	record T
}

// MemoryStore is an in-memory Store used when no database is configured and in tests.
// It enforces the same unique and foreign key rules as the SQL schema.
type MemoryStore struct {
	mu         sync.RWMutex
	seq        uint64
	now        func() time.Time
	pages      map[uuid.UUID]*row[model.Page]
	blocks     map[uuid.UUID]*row[model.ContentBlock]
	navigation map[uuid.UUID]*row[model.NavigationEntry]
	settings   map[uuid.UUID]*row[model.Setting]
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:        func() time.Time { return time.Now().UTC() },
		pages:      make(map[uuid.UUID]*row[model.Page]),
		blocks:     make(map[uuid.UUID]*row[model.ContentBlock]),
		navigation: make(map[uuid.UUID]*row[model.NavigationEntry]),
		settings:   make(map[uuid.UUID]*row[model.Setting]),
	}
}

func (m *MemoryStore) nextSeq() uint64 {
	m.seq++
	return m.seq
}

func sortedRows[T any](rows map[uuid.UUID]*row[T], keep func(T) bool, less func(a, b *row[T]) int) []T {
	list := make([]*row[T], 0, len(rows))
	for _, r := range rows {
		if keep == nil || keep(r.record) {
			list = append(list, r)
		}
	}
	slices.SortFunc(list, less)
	out := make([]T, 0, len(list))
	for _, r := range list {
		out = append(out, r.record)
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// ---- pages ----

func (m *MemoryStore) ListPages(_ context.Context) ([]model.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedRows(m.pages, nil, func(a, b *row[model.Page]) int {
		if c := b.record.CreatedAt.Compare(a.record.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	}), nil
}

func (m *MemoryStore) GetPage(_ context.Context, id uuid.UUID) (model.PageWithBlocks, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.pages[id]
	if !ok {
		return model.PageWithBlocks{}, notFound("pages", id)
	}
	return model.PageWithBlocks{
		Page:          r.record,
		ContentBlocks: m.blocksOf(id),
	}, nil
}

func (m *MemoryStore) CreatePage(_ context.Context, in model.NewPage) (model.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.slugTaken(in.Slug, uuid.Nil) {
		return model.Page{}, fmt.Errorf("%w %q", ErrDuplicate, "pages_slug_key")
	}
	now := m.now()
	p := model.Page{
		ID:              uuid.New(),
		Title:           in.Title,
		Slug:            in.Slug,
		MetaDescription: cloneString(in.MetaDescription),
		Status:          in.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	m.pages[p.ID] = &row[model.Page]{seq: m.nextSeq(), record: p}
	return p, nil
}

func (m *MemoryStore) UpdatePage(_ context.Context, id uuid.UUID, patch model.PagePatch) (model.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.pages[id]
	if !ok {
		return model.Page{}, notFound("pages", id)
	}
	p := r.record
	if patch.Slug != nil && m.slugTaken(*patch.Slug, id) {
		return model.Page{}, fmt.Errorf("%w %q", ErrDuplicate, "pages_slug_key")
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.MetaDescription != nil {
		p.MetaDescription = cloneString(patch.MetaDescription)
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	p.UpdatedAt = m.now()
	r.record = p
	return p, nil
}

func (m *MemoryStore) DeletePage(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pages[id]; !ok {
		return notFound("pages", id)
	}
	delete(m.pages, id)
	for bid, b := range m.blocks {
		if b.record.PageID == id {
			delete(m.blocks, bid)
		}
	}
	return nil
}

func (m *MemoryStore) slugTaken(slug string, except uuid.UUID) bool {
	for id, r := range m.pages {
		if id != except && r.record.Slug == slug {
			return true
		}
	}
	return false
}

// ---- content blocks ----

func (m *MemoryStore) blocksOf(pageID uuid.UUID) []model.ContentBlock {
	blocks := sortedRows(m.blocks,
		func(b model.ContentBlock) bool { return b.PageID == pageID },
		func(a, b *row[model.ContentBlock]) int {
			if c := cmp.Compare(a.record.Order, b.record.Order); c != 0 {
				return c
			}
			return cmp.Compare(a.seq, b.seq)
		})
	for i := range blocks {
		blocks[i].Content = bytes.Clone(blocks[i].Content)
	}
	return blocks
}

func (m *MemoryStore) ListContentBlocks(_ context.Context, pageID uuid.UUID) ([]model.ContentBlock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.blocksOf(pageID), nil
}

func (m *MemoryStore) GetContentBlock(_ context.Context, id uuid.UUID) (model.ContentBlock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.blocks[id]
	if !ok {
		return model.ContentBlock{}, notFound("content_blocks", id)
	}
	b := r.record
	b.Content = bytes.Clone(b.Content)
	return b, nil
}

func (m *MemoryStore) CreateContentBlock(_ context.Context, in model.NewContentBlock) (model.ContentBlock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pages[in.PageID]; !ok {
		return model.ContentBlock{}, fmt.Errorf("%w %q", ErrForeignKey, "content_blocks_page_id_fkey")
	}
	content := bytes.Clone(in.Content)
	if len(content) == 0 {
		content = model.Document("{}")
	}
	now := m.now()
	b := model.ContentBlock{
		ID:          uuid.New(),
		PageID:      in.PageID,
		Identifier:  in.Identifier,
		ContentType: in.ContentType,
		Content:     content,
		Order:       in.Order,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.blocks[b.ID] = &row[model.ContentBlock]{seq: m.nextSeq(), record: b}
	b.Content = bytes.Clone(content)
	return b, nil
}

func (m *MemoryStore) UpdateContentBlock(_ context.Context, id uuid.UUID, patch model.ContentBlockPatch) (model.ContentBlock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.blocks[id]
	if !ok {
		return model.ContentBlock{}, notFound("content_blocks", id)
	}
	b := r.record
	if patch.PageID != nil {
		if _, ok := m.pages[*patch.PageID]; !ok {
			return model.ContentBlock{}, fmt.Errorf("%w %q", ErrForeignKey, "content_blocks_page_id_fkey")
		}
		b.PageID = *patch.PageID
	}
	if patch.Identifier != nil {
		b.Identifier = *patch.Identifier
	}
	if patch.ContentType != nil {
		b.ContentType = *patch.ContentType
	}
	if patch.Content != nil {
		b.Content = bytes.Clone(patch.Content)
	}
	if patch.Order != nil {
		b.Order = *patch.Order
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	b.UpdatedAt = m.now()
	r.record = b
	b.Content = bytes.Clone(b.Content)
	return b, nil
}

func (m *MemoryStore) DeleteContentBlock(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blocks[id]; !ok {
		return notFound("content_blocks", id)
	}
	delete(m.blocks, id)
	return nil
}

// ---- navigation ----

func (m *MemoryStore) ListNavigation(_ context.Context) ([]model.NavigationEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedRows(m.navigation, nil, func(a, b *row[model.NavigationEntry]) int {
		if c := cmp.Compare(a.record.Order, b.record.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	}), nil
}

func (m *MemoryStore) GetNavigationEntry(_ context.Context, id uuid.UUID) (model.NavigationEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.navigation[id]
	if !ok {
		return model.NavigationEntry{}, notFound("navigation_menu", id)
	}
	return r.record, nil
}

func (m *MemoryStore) CreateNavigationEntry(_ context.Context, in model.NewNavigationEntry) (model.NavigationEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if in.ParentID != nil {
		if _, ok := m.navigation[*in.ParentID]; !ok {
			return model.NavigationEntry{}, fmt.Errorf("%w %q", ErrForeignKey, "navigation_menu_parent_id_fkey")
		}
	}
	now := m.now()
	n := model.NavigationEntry{
		ID:        uuid.New(),
		Label:     in.Label,
		URL:       in.URL,
		ParentID:  in.ParentID,
		Order:     in.Order,
		IsActive:  in.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.navigation[n.ID] = &row[model.NavigationEntry]{seq: m.nextSeq(), record: n}
	return n, nil
}

func (m *MemoryStore) UpdateNavigationEntry(_ context.Context, id uuid.UUID, patch model.NavigationEntryPatch) (model.NavigationEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.navigation[id]
	if !ok {
		return model.NavigationEntry{}, notFound("navigation_menu", id)
	}
	n := r.record
	if patch.ParentID != nil {
		if _, ok := m.navigation[*patch.ParentID]; !ok {
			return model.NavigationEntry{}, fmt.Errorf("%w %q", ErrForeignKey, "navigation_menu_parent_id_fkey")
		}
		parent := *patch.ParentID
		n.ParentID = &parent
	}
	if patch.Label != nil {
		n.Label = *patch.Label
	}
	if patch.URL != nil {
		n.URL = *patch.URL
	}
	if patch.Order != nil {
		n.Order = *patch.Order
	}
	if patch.IsActive != nil {
		n.IsActive = *patch.IsActive
	}
	n.UpdatedAt = m.now()
	r.record = n
	return n, nil
}

func (m *MemoryStore) DeleteNavigationEntry(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.navigation[id]; !ok {
		return notFound("navigation_menu", id)
	}
	delete(m.navigation, id)
	for _, r := range m.navigation {
		if r.record.ParentID != nil && *r.record.ParentID == id {
			r.record.ParentID = nil
		}
	}
	return nil
}

// ---- settings ----

func (m *MemoryStore) ListSettings(_ context.Context, group string) ([]model.Setting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keep func(model.Setting) bool
	if group != "" {
		keep = func(s model.Setting) bool { return s.Group == group }
	}
	out := sortedRows(m.settings, keep, func(a, b *row[model.Setting]) int {
		if c := cmp.Compare(a.record.Group, b.record.Group); c != 0 {
			return c
		}
		return cmp.Compare(a.record.Key, b.record.Key)
	})
	for i := range out {
		out[i].Value = bytes.Clone(out[i].Value)
	}
	return out, nil
}

func (m *MemoryStore) GetSetting(_ context.Context, id uuid.UUID) (model.Setting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.settings[id]
	if !ok {
		return model.Setting{}, notFound("settings", id)
	}
	s := r.record
	s.Value = bytes.Clone(s.Value)
	return s, nil
}

func (m *MemoryStore) CreateSetting(_ context.Context, in model.NewSetting) (model.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.keyTaken(in.Key, uuid.Nil) {
		return model.Setting{}, fmt.Errorf("%w %q", ErrDuplicate, "settings_key_key")
	}
	group := in.Group
	if group == "" {
		group = "general"
	}
	now := m.now()
	s := model.Setting{
		ID:          uuid.New(),
		Key:         in.Key,
		Value:       bytes.Clone(in.Value),
		Group:       group,
		Description: cloneString(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.settings[s.ID] = &row[model.Setting]{seq: m.nextSeq(), record: s}
	s.Value = bytes.Clone(s.Value)
	return s, nil
}

func (m *MemoryStore) UpdateSetting(_ context.Context, id uuid.UUID, patch model.SettingPatch) (model.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.settings[id]
	if !ok {
		return model.Setting{}, notFound("settings", id)
	}
	if patch.Key != nil && m.keyTaken(*patch.Key, id) {
		return model.Setting{}, fmt.Errorf("%w %q", ErrDuplicate, "settings_key_key")
	}
	s := r.record
	if patch.Key != nil {
		s.Key = *patch.Key
	}
	if patch.Value != nil {
		s.Value = bytes.Clone(patch.Value)
	}
	if patch.Group != nil {
		s.Group = *patch.Group
	}
	if patch.Description != nil {
		s.Description = cloneString(patch.Description)
	}
	s.UpdatedAt = m.now()
	r.record = s
	s.Value = bytes.Clone(s.Value)
	return s, nil
}

func (m *MemoryStore) DeleteSetting(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.settings[id]; !ok {
		return notFound("settings", id)
	}
	delete(m.settings, id)
	return nil
}

func (m *MemoryStore) keyTaken(key string, except uuid.UUID) bool {
	for id, r := range m.settings {
		if id != except && r.record.Key == key {
			return true
		}
	}
	return false
}
