package feed

import (
	"fmt"

	"github.com/Bitlatte/docfeed/internal/model"
	"github.com/Bitlatte/docfeed/internal/store"
)

// Publish writes f to st under key.
func Publish(st *store.Store, key string, f model.Feed) error {
	if err := st.Publish(key, f); err != nil {
		return fmt.Errorf("publish feed: %w", err)
	}
	return nil
}

// Lookup reads the feed published under key. Nothing published, or a value of
// another type, reads as the empty feed.
func Lookup(st *store.Store, key string) model.Feed {
	if st == nil {
		return model.Feed{}
	}
	v, ok := st.Get(key)
	if !ok {
		return model.Feed{}
	}
	f, ok := v.(model.Feed)
	if !ok {
		return model.Feed{}
	}
	return f
}
