package booking

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// FileStore хранит JSON массив бронирований в локальном файле (CLI).
// Формат совпадает с RedisStore.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append перезаписывает файл целиком через временный файл и rename
func (s *FileStore) Append(_ context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.read()
	if err != nil {
		return fmt.Errorf("%w: Append - booking %s: %v", ErrSave, booking.ID, err)
	}

	data, err := encodeBookings(append(decodeBookings(raw), booking))
	if err != nil {
		return fmt.Errorf("%w: Append - encode: %v", ErrSave, err)
	}

	if err := s.write(data); err != nil {
		return fmt.Errorf("%w: Append - booking %s: %v", ErrSave, booking.ID, err)
	}

	return nil
}

func (s *FileStore) List(_ context.Context) ([]*domain.Booking, error) {
	return s.find(domain.BookingsFilter{})
}

func (s *FileStore) ListByCenter(_ context.Context, centerID string) ([]*domain.Booking, error) {
	return s.find(domain.BookingsFilter{CenterID: &centerID})
}

func (s *FileStore) ListByService(_ context.Context, serviceID string) ([]*domain.Booking, error) {
	return s.find(domain.BookingsFilter{ServiceID: &serviceID})
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: Clear: %v", ErrSave, err)
	}
	return nil
}

func (s *FileStore) find(filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrLoad, s.path, err)
	}

	return filterBookings(decodeBookings(raw), filter), nil
}

// read отсутствующий файл - пустое хранилище
func (s *FileStore) read() ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return raw, err
}

func (s *FileStore) write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".bookings-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
