package rawdb

import (
	"fmt"
	"path/filepath"

	"github.com/c2h5oh/datasize"
	"github.com/gofrs/flock"
	"github.com/ledgerwatch/erigon-lib/kv"
	"github.com/ledgerwatch/erigon-lib/kv/mdbx"
	"github.com/ledgerwatch/erigon-lib/kv/memdb"
	"github.com/ledgerwatch/log/v3"
	"golang.org/x/sync/semaphore"
)

// NewMemoryDatabase opens an ephemeral store for tests.
func NewMemoryDatabase() kv.RwDB {
	return memdb.New("")
}

// Store is an open transaction store plus the lock guarding its directory.
type Store struct {
	DB      kv.RwDB
	dirLock *flock.Flock
}

// Close releases the database and the datadir lock.
func (s *Store) Close() {
	s.DB.Close()
	if s.dirLock != nil {
		s.dirLock.Unlock()
	}
}

// Open opens (or creates) the transaction store under datadir. An empty
// datadir yields an in-memory store. The directory is flock-guarded to keep
// a second process from opening the same store.
func Open(datadir string, readonly bool, logger log.Logger) (*Store, error) {
	if datadir == "" {
		return &Store{DB: memdb.New("")}, nil
	}

	dirLock := flock.New(filepath.Join(datadir, "LOCK"))
	locked, err := dirLock.TryLock()
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, fmt.Errorf("datadir already used by another process: %s", datadir)
	}

	dbPath := filepath.Join(datadir, "txstore")
	logger.Info("Opening Database", "label", "txstore", "path", dbPath)
	roTxsLimiter := semaphore.NewWeighted(32)
	opts := mdbx.NewMDBX(logger).
		Path(dbPath).Label(kv.TxPoolDB).
		RoTxsLimiter(roTxsLimiter).
		GrowthStep(16 * datasize.MB)
	if readonly {
		opts = opts.Readonly()
	}
	db, err := opts.Open()
	if err != nil {
		dirLock.Unlock()
		return nil, err
	}
	return &Store{DB: db, dirLock: dirLock}, nil
}
