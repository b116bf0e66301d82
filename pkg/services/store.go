package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/kerbaras/maniverse/pkg/data"
	"github.com/kerbaras/maniverse/pkg/logging"
)

// Storage keys for the two halves of a selection.
const (
	ShapeKey = "selectedShape"
	ColorKey = "selectedColor"
)

var (
	ErrUnknownShape = errors.New("shape is not in the catalog")
	ErrUnknownColor = errors.New("color is not in the catalog")
)

// SelectionStore holds the current design and mirrors it to a KeyValueStore.
// Storage failures are logged and never surface to the caller.
type SelectionStore struct {
	kv  data.KeyValueStore
	log *log.Logger
	sel data.Selection
}

func NewSelectionStore(kv data.KeyValueStore, logger *log.Logger) *SelectionStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &SelectionStore{kv: kv, log: logger}
}

// Load replaces the in-memory selection with whatever can be restored.
// Each half is restored on its own; anything missing, malformed or no longer
// in the catalog comes back absent.
func (s *SelectionStore) Load() data.Selection {
	s.sel = data.Selection{}

	var shape data.NailShape
	if s.read(ShapeKey, &shape) {
		if canonical, ok := data.ShapeByID(shape.ID); ok {
			s.sel.Shape = &canonical
		} else {
			s.log.Debug("ignoring stored shape not in catalog", "id", shape.ID)
		}
	}

	var color data.NailColor
	if s.read(ColorKey, &color) {
		if canonical, ok := data.ColorByID(color.ID); ok {
			s.sel.Color = &canonical
		} else {
			s.log.Debug("ignoring stored color not in catalog", "id", color.ID)
		}
	}

	return s.Selection()
}

func (s *SelectionStore) Selection() data.Selection {
	return s.sel
}

func (s *SelectionStore) SetShape(shape data.NailShape) error {
	canonical, ok := data.ShapeByID(shape.ID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownShape, shape.ID)
	}
	s.sel.Shape = &canonical
	s.write(ShapeKey, canonical)
	return nil
}

func (s *SelectionStore) SetColor(color data.NailColor) error {
	canonical, ok := data.ColorByID(color.ID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColor, color.ID)
	}
	s.sel.Color = &canonical
	s.write(ColorKey, canonical)
	return nil
}

// Reset clears the selection and forgets the persisted copy, so a restart
// does not bring the old design back.
func (s *SelectionStore) Reset() {
	s.sel = data.Selection{}
	for _, key := range []string{ShapeKey, ColorKey} {
		if err := s.kv.Delete(key); err != nil {
			s.log.Warn("failed to clear stored selection", "key", key, "err", err)
		}
	}
}

func (s *SelectionStore) read(key string, v any) bool {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Warn("failed to read stored selection", "key", key, "err", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.log.Debug("ignoring malformed stored selection", "key", key, "err", err)
		return false
	}
	return true
}

func (s *SelectionStore) write(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("failed to encode selection", "key", key, "err", err)
		return
	}
	if err := s.kv.Set(key, string(raw)); err != nil {
		s.log.Warn("failed to persist selection", "key", key, "err", err)
	}
}
