package mood

import (
	"fmt"

	"github.com/kittleik/intrusive-thoughts/internal/statefile"
)

// #region file-names

const (
	CatalogFile     = "moods.json"
	HistoryFile     = "mood_history.json"
	DispositionFile = "today_mood.json"
)

// #endregion file-names

// #region catalog-load

// LoadCatalog reads moods.json. A missing or unparseable catalog is a
// configuration error: no mood can be selected without it.
func LoadCatalog(store statefile.Store) (Catalog, error) {
	var cat Catalog
	status, err := store.Load(CatalogFile, &cat)
	switch status {
	case statefile.Found:
		if len(cat.BaseMoods) == 0 {
			return Catalog{}, fmt.Errorf("%s: no base_moods defined", CatalogFile)
		}
		return cat, nil
	case statefile.NotFound:
		return Catalog{}, fmt.Errorf("%s not found", CatalogFile)
	default:
		return Catalog{}, fmt.Errorf("%s invalid: %w", CatalogFile, err)
	}
}

// #endregion catalog-load

// #region history

// LoadHistory reads mood_history.json. Missing or corrupt history degrades
// to an empty record; the selector just loses that influence channel.
func LoadHistory(store statefile.Store) (History, statefile.Status) {
	var h History
	status, _ := store.Load(HistoryFile, &h)
	if status != statefile.Found {
		return History{}, status
	}
	return h, status
}

// SaveHistory rewrites mood_history.json.
func SaveHistory(store statefile.Store, h History) error {
	return store.Save(HistoryFile, h)
}

// #endregion history

// #region disposition

// LoadDisposition reads today_mood.json. Missing or corrupt content
// degrades to no disposition.
func LoadDisposition(store statefile.Store) (Disposition, statefile.Status) {
	var d Disposition
	status, _ := store.Load(DispositionFile, &d)
	if status != statefile.Found {
		return Disposition{}, status
	}
	return d, status
}

// SaveDisposition rewrites today_mood.json.
func SaveDisposition(store statefile.Store, d Disposition) error {
	return store.Save(DispositionFile, d)
}

// #endregion disposition
