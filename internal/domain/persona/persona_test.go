package persona

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogFind(t *testing.T) {
	catalog := NewDefaultCatalog()
	def := catalog.Default()
	require.Equal(t, "narendra_modi", def.ID)

	tests := []struct {
		name   string
		id     string
		wantID string
	}{
		{name: "known id", id: "chandler_bing", wantID: "chandler_bing"},
		{name: "last entry", id: "roasty_mcburn", wantID: "roasty_mcburn"},
		{name: "empty id falls back", id: "", wantID: def.ID},
		{name: "unknown id falls back", id: "gordon_ramsay", wantID: def.ID},
		{name: "case sensitive", id: "Chandler_Bing", wantID: def.ID},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := catalog.Find(tt.id)
			require.Equal(t, tt.wantID, got.ID)
			require.NotEmpty(t, got.PromptFragment)
		})
	}
}

func TestCatalogUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range NewDefaultCatalog().List() {
		require.False(t, seen[p.ID], "duplicate persona id %s", p.ID)
		seen[p.ID] = true
		require.NotEmpty(t, p.DisplayName)
		require.NotEmpty(t, p.ImageRef)
	}
	require.Len(t, seen, 9)
}

func TestNewCatalogClampsDefault(t *testing.T) {
	custom := []Persona{
		{ID: "a", PromptFragment: "A"},
		{ID: "b", PromptFragment: "B"},
		{ID: "a", PromptFragment: "shadowed"},
	}
	catalog := NewCatalog(custom, 7)
	require.Equal(t, "a", catalog.Default().ID)
	require.Equal(t, "A", catalog.Find("a").PromptFragment)

	catalog = NewCatalog(custom, 1)
	require.Equal(t, "b", catalog.Find("missing").ID)

	require.Equal(t, "narendra_modi", NewCatalog(nil, 0).Default().ID)
}

func TestCatalogListIsACopy(t *testing.T) {
	catalog := NewDefaultCatalog()
	list := catalog.List()
	list[0].ID = "mutated"
	require.Equal(t, "narendra_modi", catalog.Default().ID)
}

func TestCatalogConcurrentReads(t *testing.T) {
	catalog := NewDefaultCatalog()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range catalog.List() {
				if got := catalog.Find(p.ID).ID; got != p.ID {
					t.Errorf("find %s returned %s", p.ID, got)
				}
			}
		}()
	}
	wg.Wait()
}
