package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fadedpez/chicago/internal/types"
	"github.com/fadedpez/chicago/pkg/entities"
)

// FileRepository keeps round history in memory and mirrors every saved round
// to a JSON file. Statistics are rebuilt from the rounds on load.
type FileRepository struct {
	*MemoryRepository
	path string
	mu   sync.Mutex
}

// NewFileRepository opens the history file at path, creating it on the first
// save if it does not exist
func NewFileRepository(path string) (*FileRepository, error) {
	r := &FileRepository{
		MemoryRepository: NewMemoryRepository(),
		path:             path,
	}

	if err := r.load(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to load round history", err)
	}

	return r, nil
}

// SaveRoundResult stores a round and rewrites the history file
func (r *FileRepository) SaveRoundResult(ctx context.Context, result *entities.RoundResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.MemoryRepository.SaveRoundResult(ctx, result); err != nil {
		return err
	}
	if err := r.save(); err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to write round history", err)
	}
	return nil
}

func (r *FileRepository) load() error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var games map[string][]*entities.RoundResult
	if err := json.Unmarshal(data, &games); err != nil {
		return err
	}

	for _, rounds := range games {
		for _, round := range rounds {
			if err := r.MemoryRepository.SaveRoundResult(context.Background(), round); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *FileRepository) save() error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	r.MemoryRepository.mu.RLock()
	data, err := json.MarshalIndent(r.MemoryRepository.gameRounds, "", "  ")
	r.MemoryRepository.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal rounds: %w", err)
	}

	// Replace the file atomically
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return os.Rename(tmp, r.path)
}
