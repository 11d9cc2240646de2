package mood

import (
	"testing"

	"github.com/kittleik/intrusive-thoughts/internal/statefile"
)

func TestCatalogFind(t *testing.T) {
	cat := Catalog{BaseMoods: []Definition{
		{ID: "curious", Name: "Curious"},
		{ID: "cozy", Name: "Cozy"},
	}}

	def, ok := cat.Find("cozy")
	if !ok || def.Name != "Cozy" {
		t.Fatalf("expected Cozy, got %+v ok=%v", def, ok)
	}
	if _, ok := cat.Find("missing"); ok {
		t.Fatal("unknown id should not be found")
	}
}

func TestBaseWeightsDefault(t *testing.T) {
	cat := Catalog{BaseMoods: []Definition{
		{ID: "curious", Weight: 1.2},
		{ID: "cozy"},
	}}
	w := cat.BaseWeights()
	if w["curious"] != 1.2 {
		t.Fatalf("expected 1.2, got %f", w["curious"])
	}
	if w["cozy"] != 1.0 {
		t.Fatalf("unset weight should default to 1, got %f", w["cozy"])
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	store := statefile.NewMem()

	if _, err := LoadCatalog(store); err == nil {
		t.Fatal("missing catalog must error")
	}

	store.SetRaw(CatalogFile, []byte("{bad json"))
	if _, err := LoadCatalog(store); err == nil {
		t.Fatal("corrupt catalog must error")
	}

	store.SetRaw(CatalogFile, []byte(`{"base_moods": []}`))
	if _, err := LoadCatalog(store); err == nil {
		t.Fatal("empty base_moods must error")
	}

	store.SetRaw(CatalogFile, []byte(`{"base_moods": [{"id": "curious", "name": "Curious"}]}`))
	cat, err := LoadCatalog(store)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cat.BaseMoods) != 1 {
		t.Fatalf("unexpected catalog %+v", cat)
	}
}

func TestHistoryDegrades(t *testing.T) {
	store := statefile.NewMem()

	h, status := LoadHistory(store)
	if status != statefile.NotFound || len(h.History) != 0 {
		t.Fatalf("expected empty history, got %+v/%s", h, status)
	}

	h.History = append(h.History, HistoryEntry{Date: "2026-03-10", MoodID: "curious"})
	if err := SaveHistory(store, h); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, status := LoadHistory(store)
	if status != statefile.Found || len(got.History) != 1 || got.History[0].MoodID != "curious" {
		t.Fatalf("round trip failed: %+v/%s", got, status)
	}
}

func TestDispositionDegrades(t *testing.T) {
	store := statefile.NewMem()

	if _, status := LoadDisposition(store); status != statefile.NotFound {
		t.Fatalf("expected not_found, got %s", status)
	}

	store.SetRaw(DispositionFile, []byte("oops"))
	if d, status := LoadDisposition(store); status != statefile.Corrupt || d.ID != "" {
		t.Fatalf("expected empty/corrupt, got %+v/%s", d, status)
	}

	if err := SaveDisposition(store, Disposition{ID: "cozy", Name: "Cozy"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	d, status := LoadDisposition(store)
	if status != statefile.Found || d.ID != "cozy" {
		t.Fatalf("round trip failed: %+v/%s", d, status)
	}
}
