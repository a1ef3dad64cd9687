package save

import (
	"context"
	"fmt"

	"github.com/vincent-heng/rpgsim/game/entity"
	"github.com/vincent-heng/rpgsim/game/util"
)

// FileStore keeps the save line in a plain text file
type FileStore struct {
	fileName string
}

func NewFileStore(fileName string) *FileStore {
	return &FileStore{fileName: fileName}
}

func (s *FileStore) Location() string {
	return s.fileName
}

func (s *FileStore) Save(_ context.Context, c *entity.Character) error {
	line, err := Encode(c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveWrite, err)
	}

	if err := util.WriteFile(s.fileName, line); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveWrite, err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context) (*entity.Character, error) {
	if !util.FileExists(s.fileName) {
		return nil, fmt.Errorf("%w: no save at %s", ErrSaveRead, s.fileName)
	}

	line, err := util.ReadFirstLine(s.fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveRead, err)
	}

	c, err := Decode(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveRead, err)
	}
	return c, nil
}
