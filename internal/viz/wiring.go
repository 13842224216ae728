package viz

import (
	"log/slog"
	"sort"

	"github.com/san-kum/rollgrid/internal/logging"
	"github.com/san-kum/rollgrid/internal/slides"
)

// Wire maps keys to slides from trigger id bindings. Bindings whose
// trigger names no enabled slide are skipped with a warning, and
// enabled slides without a binding simply have no key.
func Wire(bindings map[string]string, enabled []slides.Slide) map[string]slides.Slide {
	ctx := logging.PackageCtx("viz")
	byID := make(map[string]slides.Slide, len(enabled))
	for _, s := range enabled {
		byID[s.ID()] = s
	}

	ids := make([]string, 0, len(bindings))
	for id := range bindings {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	keys := make(map[string]slides.Slide, len(bindings))
	for _, id := range ids {
		key := bindings[id]
		s, ok := byID[id]
		if !ok {
			slog.WarnContext(ctx, "trigger has no enabled slide, skipping", slog.String("trigger", id))
			continue
		}
		if key == "" {
			slog.WarnContext(ctx, "trigger has no key, skipping", slog.String("trigger", id))
			continue
		}
		if prev, taken := keys[key]; taken {
			slog.WarnContext(ctx, "key already bound, skipping", slog.String("trigger", id), slog.String("key", key), slog.String("bound_to", prev.ID()))
			continue
		}
		keys[key] = s
	}
	return keys
}

// KeyFor returns the key bound to s, if any.
func KeyFor(keys map[string]slides.Slide, s slides.Slide) (string, bool) {
	found := ""
	for k, v := range keys {
		if v == s && (found == "" || k < found) {
			found = k
		}
	}
	return found, found != ""
}
